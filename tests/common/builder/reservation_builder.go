//go:build unit || e2e

package builder

import (
	domreservation "canteen-reservation/internal/domain/reservation"
	reqdto "canteen-reservation/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	StudentID   uuid.UUID
	CanteenID   uuid.UUID
	Date        string
	Time        string
	DurationMin int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		StudentID:   uuid.New(),
		CanteenID:   uuid.New(),
		Date:        "2030-06-10",
		Time:        "12:00",
		DurationMin: 30,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (domreservation.BookingRequest, error) {
	return domreservation.NewBookingRequest(b.StudentID, b.CanteenID, b.Date, b.Time, b.DurationMin)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CanteenID: b.CanteenID,
		Date:      b.Date,
		Time:      b.Time,
		Duration:  b.DurationMin,
	}
}
