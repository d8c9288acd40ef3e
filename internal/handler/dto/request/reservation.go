package request

import (
	"canteen-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CanteenID uuid.UUID `json:"canteen_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Time      string    `json:"time" binding:"required"`
	Duration  int       `json:"duration" binding:"required"`
}

func (r CreateReservationRequest) ToParams(studentID uuid.UUID) commands.CreateReservationParams {
	return commands.CreateReservationParams{
		StudentID:   studentID,
		CanteenID:   r.CanteenID,
		Date:        r.Date,
		Time:        r.Time,
		DurationMin: r.Duration,
	}
}
