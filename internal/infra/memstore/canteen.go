package memstore

import (
	"context"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// CanteenStore serves both the write repository and the snapshot directory.
type CanteenStore struct {
	store *Store
}

func NewCanteenStore(s *Store) *CanteenStore {
	return &CanteenStore{store: s}
}

var (
	_ shared.CanteenRepository = (*CanteenStore)(nil)
	_ shared.CanteenDirectory  = (*CanteenStore)(nil)
)

func (c *CanteenStore) Create(_ context.Context, ct *canteen.Canteen) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := c.store.clock.Now()
	c.store.canteens[ct.ID()] = canteen.ReconstructCanteen(
		ct.ID(), ct.Name(), ct.Location(), ct.Capacity(), ct.Hours(), ct.OwnerID(), now, now)
	c.store.canteenOrder = append(c.store.canteenOrder, ct.ID())
	return nil
}

func (c *CanteenStore) FindByID(_ context.Context, id uuid.UUID) (*canteen.Canteen, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	ct, ok := c.store.canteens[id]
	if !ok {
		return nil, infra.WrapRepoErr("canteen not found", errNotFound, infra.KindNotFound)
	}
	return copyCanteen(ct), nil
}

func (c *CanteenStore) Update(_ context.Context, ct *canteen.Canteen) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	prev, ok := c.store.canteens[ct.ID()]
	if !ok {
		return infra.WrapRepoErr("canteen not found", errNotFound, infra.KindNotFound)
	}
	c.store.canteens[ct.ID()] = canteen.ReconstructCanteen(
		ct.ID(), ct.Name(), ct.Location(), ct.Capacity(), ct.Hours(), ct.OwnerID(),
		prev.CreatedAt(), c.store.clock.Now())
	return nil
}

func (c *CanteenStore) Delete(_ context.Context, id uuid.UUID) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if _, ok := c.store.canteens[id]; !ok {
		return infra.WrapRepoErr("canteen not found", errNotFound, infra.KindNotFound)
	}
	// Reservation records are kept forever, cancelled ones included, and
	// they reference the canteen the way the relational schema does.
	for _, res := range c.store.reservations {
		if res.CanteenID() == id {
			return infra.WrapRepoErr("canteen is referenced by reservations", errInUse, infra.KindConflict)
		}
	}
	delete(c.store.canteens, id)
	for i, cid := range c.store.canteenOrder {
		if cid == id {
			c.store.canteenOrder = append(c.store.canteenOrder[:i], c.store.canteenOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (c *CanteenStore) ByID(_ context.Context, id uuid.UUID) (*shared.CanteenSnapshot, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	ct, ok := c.store.canteens[id]
	if !ok {
		return nil, infra.WrapRepoErr("canteen not found", errNotFound, infra.KindNotFound)
	}
	return snapshotOf(ct), nil
}

func (c *CanteenStore) All(_ context.Context) ([]*shared.CanteenSnapshot, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	out := make([]*shared.CanteenSnapshot, 0, len(c.store.canteenOrder))
	for _, id := range c.store.canteenOrder {
		if ct, ok := c.store.canteens[id]; ok {
			out = append(out, snapshotOf(ct))
		}
	}
	return out, nil
}

func copyCanteen(ct *canteen.Canteen) *canteen.Canteen {
	hours := make(canteen.WorkingHours, len(ct.Hours()))
	copy(hours, ct.Hours())
	return canteen.ReconstructCanteen(
		ct.ID(), ct.Name(), ct.Location(), ct.Capacity(), hours, ct.OwnerID(),
		ct.CreatedAt(), ct.UpdatedAt())
}

func snapshotOf(ct *canteen.Canteen) *shared.CanteenSnapshot {
	hours := make(canteen.WorkingHours, len(ct.Hours()))
	copy(hours, ct.Hours())
	return &shared.CanteenSnapshot{
		ID:       ct.ID(),
		Name:     ct.Name(),
		Location: ct.Location(),
		Capacity: ct.Capacity(),
		Hours:    hours,
		OwnerID:  ct.OwnerID(),
	}
}
