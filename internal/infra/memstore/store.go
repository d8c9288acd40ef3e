// Package memstore is a process-local storage backend. It backs tests and
// STORE_DRIVER=memory deployments with the same ports the postgres
// implementation serves.
package memstore

import (
	"context"
	"errors"
	"sync"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errNotFound  = errors.New("record not found")
	errDuplicate = errors.New("duplicate key")
	errInUse     = errors.New("record referenced")
)

type occKey struct {
	canteen uuid.UUID
	date    timeslot.Date
	tick    timeslot.TimeOfDay
}

// Store holds every table behind one mutex. A unit of work takes the write
// lock for its whole span, which serializes bookings the way the postgres
// backend's transaction plus advisory lock does.
type Store struct {
	mu sync.RWMutex

	students     map[uuid.UUID]*student.Student
	emailIndex   map[string]uuid.UUID
	canteens     map[uuid.UUID]*canteen.Canteen
	canteenOrder []uuid.UUID
	reservations map[uuid.UUID]*reservation.Reservation
	occupancy    map[occKey]int

	clock clock.Clock
}

func New(clk clock.Clock) *Store {
	return &Store{
		students:     make(map[uuid.UUID]*student.Student),
		emailIndex:   make(map[string]uuid.UUID),
		canteens:     make(map[uuid.UUID]*canteen.Canteen),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		occupancy:    make(map[occKey]int),
		clock:        clk,
	}
}

// Within runs fn under the store's write lock. There is no rollback journal;
// TryReserve is all-or-nothing on its own and the booking path compensates
// released ticks explicitly.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memTx{store: s})
}

var _ shared.UnitOfWork = (*Store)(nil)

type memTx struct {
	store *Store
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{store: t.store}
}

func (t *memTx) Ledger() shared.CapacityLedger {
	return &ledger{store: t.store}
}

// ledger mutates tick counters under the lock already held by Within.
type ledger struct {
	store *Store
}

func (l *ledger) Occupancy(_ context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error) {
	return l.store.occupancy[occKey{canteen: canteenID, date: date, tick: tick}], nil
}

func (l *ledger) TryReserve(_ context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error {
	for _, tick := range ticks {
		if l.store.occupancy[occKey{canteen: canteenID, date: date, tick: tick}] >= capacity {
			return shared.SlotFullError{Tick: tick}
		}
	}
	for _, tick := range ticks {
		l.store.occupancy[occKey{canteen: canteenID, date: date, tick: tick}]++
	}
	return nil
}

func (l *ledger) Release(_ context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error {
	for _, tick := range ticks {
		key := occKey{canteen: canteenID, date: date, tick: tick}
		if l.store.occupancy[key] > 0 {
			l.store.occupancy[key]--
		}
	}
	return nil
}

// Occupancies implements the availability read side.
func (s *Store) Occupancies(_ context.Context, canteenID uuid.UUID, date timeslot.Date) (map[timeslot.TimeOfDay]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[timeslot.TimeOfDay]int)
	for key, occ := range s.occupancy {
		if key.canteen == canteenID && key.date == date && occ > 0 {
			out[key.tick] = occ
		}
	}
	return out, nil
}
