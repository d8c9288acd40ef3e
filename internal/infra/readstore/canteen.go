package readstore

import (
	"context"
	"errors"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CanteenReadStore serves canteen snapshots with working hours attached.
type CanteenReadStore struct {
	db db.Executor
}

func NewCanteenReadStore(exec db.Executor) *CanteenReadStore {
	return &CanteenReadStore{db: exec}
}

func (r *CanteenReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.CanteenSnapshot, error) {
	const query = `
		SELECT id, name, location, capacity, owner_id
		FROM canteens
		WHERE id = $1`

	snap := &shared.CanteenSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Location, &snap.Capacity, &snap.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("canteen not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find canteen by ID", err)
	}

	hoursByID, err := r.loadHours(ctx, []uuid.UUID{snap.ID})
	if err != nil {
		return nil, err
	}
	snap.Hours = hoursByID[snap.ID]
	return snap, nil
}

func (r *CanteenReadStore) All(ctx context.Context) ([]*shared.CanteenSnapshot, error) {
	const query = `
		SELECT id, name, location, capacity, owner_id
		FROM canteens
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list canteens", err)
	}
	defer rows.Close()

	var snaps []*shared.CanteenSnapshot
	var ids []uuid.UUID
	for rows.Next() {
		snap := &shared.CanteenSnapshot{}
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.Location, &snap.Capacity, &snap.OwnerID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan canteen", err)
		}
		snaps = append(snaps, snap)
		ids = append(ids, snap.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list canteens", err)
	}

	hoursByID, err := r.loadHours(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, snap := range snaps {
		snap.Hours = hoursByID[snap.ID]
	}
	return snaps, nil
}

func (r *CanteenReadStore) loadHours(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]canteen.WorkingHours, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
		SELECT canteen_id, meal, from_min, to_min
		FROM canteen_working_hours
		WHERE canteen_id = ANY($1)
		ORDER BY canteen_id, from_min`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]canteen.WorkingHours, len(ids))
	for rows.Next() {
		var (
			canteenID      uuid.UUID
			meal           string
			fromMin, toMin int
		)
		if err := rows.Scan(&canteenID, &meal, &fromMin, &toMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours", err)
		}
		out[canteenID] = append(out[canteenID], canteen.Period{
			Meal: timeslot.Meal(meal),
			From: timeslot.TimeOfDay(fromMin),
			To:   timeslot.TimeOfDay(toMin),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	return out, nil
}
