package reservation

import (
	"errors"
	"time"

	"canteen-reservation/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

type Reservation struct {
	id        uuid.UUID
	studentID uuid.UUID
	canteenID uuid.UUID
	date      timeslot.Date
	start     timeslot.TimeOfDay
	duration  timeslot.Duration
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	studentID, canteenID uuid.UUID,
	date timeslot.Date,
	start timeslot.TimeOfDay,
	duration timeslot.Duration,
) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		studentID: studentID,
		canteenID: canteenID,
		date:      date,
		start:     start,
		duration:  duration,
		status:    StatusActive,
	}
}

func ReconstructReservation(
	id, studentID, canteenID uuid.UUID,
	date timeslot.Date,
	start timeslot.TimeOfDay,
	duration timeslot.Duration,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		studentID: studentID,
		canteenID: canteenID,
		date:      date,
		start:     start,
		duration:  duration,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Cancel performs the single legal transition Active -> Cancelled.
// Cancelled is terminal; records are retained, never deleted.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// Ticks returns the 30-minute tick start times the reservation occupies.
func (r *Reservation) Ticks() []timeslot.TimeOfDay {
	return timeslot.TicksFor(r.start, r.duration)
}

// OverlapsSpan reports whether the reservation shares a tick with a span
// starting at start with the given duration on the same date.
func (r *Reservation) OverlapsSpan(date timeslot.Date, start timeslot.TimeOfDay, d timeslot.Duration) bool {
	if r.date.Compare(date) != 0 {
		return false
	}
	return timeslot.Overlaps(r.start, r.duration, start, d)
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) StudentID() uuid.UUID        { return r.studentID }
func (r *Reservation) CanteenID() uuid.UUID        { return r.canteenID }
func (r *Reservation) Date() timeslot.Date         { return r.date }
func (r *Reservation) Start() timeslot.TimeOfDay   { return r.start }
func (r *Reservation) Duration() timeslot.Duration { return r.duration }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
