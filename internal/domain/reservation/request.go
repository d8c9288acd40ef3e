package reservation

import (
	"errors"
	"fmt"
	"time"

	"canteen-reservation/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrMissingStudentID = errors.New("studentId is required")
	ErrMissingCanteenID = errors.New("canteenId is required")
	ErrHourAlignedStart = errors.New("60-minute reservations must start on the hour")
)

// BookingRequest is a shape-validated booking, normalized from raw input.
// Validation here is purely syntactic; calendar and capacity checks happen
// against the canteen snapshot.
type BookingRequest struct {
	StudentID uuid.UUID
	CanteenID uuid.UUID
	Date      timeslot.Date
	Start     timeslot.TimeOfDay
	Duration  timeslot.Duration
}

// NewBookingRequest validates field shapes: a calendar date, an HH:mm time,
// a duration of 30 or 60 minutes, and hour-aligned starts for 60 minutes.
func NewBookingRequest(studentID, canteenID uuid.UUID, date, start string, durationMin int) (BookingRequest, error) {
	if studentID == uuid.Nil {
		return BookingRequest{}, ErrMissingStudentID
	}
	if canteenID == uuid.Nil {
		return BookingRequest{}, ErrMissingCanteenID
	}

	d, err := timeslot.ParseDate(date)
	if err != nil {
		return BookingRequest{}, fmt.Errorf("date: %w", err)
	}
	t, err := timeslot.ParseTimeOfDay(start)
	if err != nil {
		return BookingRequest{}, fmt.Errorf("time: %w", err)
	}
	dur, err := timeslot.NewDuration(durationMin)
	if err != nil {
		return BookingRequest{}, err
	}
	if dur == timeslot.DurationHour && !t.OnHour() {
		return BookingRequest{}, ErrHourAlignedStart
	}

	return BookingRequest{
		StudentID: studentID,
		CanteenID: canteenID,
		Date:      d,
		Start:     t,
		Duration:  dur,
	}, nil
}

// Ticks returns the tick start times the booking would occupy.
func (b BookingRequest) Ticks() []timeslot.TimeOfDay {
	return timeslot.TicksFor(b.Start, b.Duration)
}

// StartsBefore reports whether the booking's date+time lies strictly before
// the given instant, compared in that instant's location.
func (b BookingRequest) StartsBefore(now time.Time) bool {
	return b.Date.At(b.Start, now.Location()).Before(now)
}
