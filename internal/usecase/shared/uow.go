package shared

import (
	"context"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/timeslot"

	"github.com/google/uuid"
)

// UnitOfWork brackets the duplicate-check, capacity-check-and-increment and
// record write of a booking (or the mark-and-release of a cancellation) into
// one isolation boundary. The postgres implementation uses a transaction with
// retry on serialization failure; the in-memory implementation a store mutex.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transactional repositories. All mutation of reservation
// records and tick counters goes through here.
type Tx interface {
	Reservations() ReservationRepository
	Ledger() CapacityLedger
}

// ReservationRepository is the write side of reservation record storage.
// Records are never deleted; cancellation is a status update.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindActiveByStudentOnDate returns the student's Active reservations on
	// the date across all canteens, for overlap checking.
	FindActiveByStudentOnDate(ctx context.Context, studentID uuid.UUID, date timeslot.Date) ([]*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
}

// CapacityLedger tracks the count of Active reservations per
// (canteen, date, tick). Counters are mutated only through TryReserve and
// Release; raw counter access is never exposed.
type CapacityLedger interface {
	Occupancy(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error)
	// TryReserve atomically verifies every tick has occupancy < capacity and
	// increments all of them; on a full tick it increments none and returns a
	// SlotFullError naming the first full tick.
	TryReserve(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error
	// Release decrements each tick's occupancy by one, floored at zero.
	Release(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error
}

// SlotFullError reports the first tick that was at capacity.
type SlotFullError struct {
	Tick timeslot.TimeOfDay
}

func (e SlotFullError) Error() string {
	return "slot at " + e.Tick.String() + " is fully booked"
}
