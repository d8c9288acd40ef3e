package request

import (
	"canteen-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type WorkingHoursPeriod struct {
	Meal string `json:"meal" binding:"required"`
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type CreateCanteenRequest struct {
	Name         string               `json:"name" binding:"required"`
	Location     string               `json:"location" binding:"required"`
	Capacity     int                  `json:"capacity" binding:"required"`
	WorkingHours []WorkingHoursPeriod `json:"working_hours" binding:"required"`
}

func (r CreateCanteenRequest) ToParams(requesterID uuid.UUID) commands.CreateCanteenParams {
	return commands.CreateCanteenParams{
		RequesterID:  requesterID,
		Name:         r.Name,
		Location:     r.Location,
		Capacity:     r.Capacity,
		WorkingHours: toPeriodInputs(r.WorkingHours),
	}
}

// UpdateCanteenRequest carries a partial update; absent fields stay unchanged.
type UpdateCanteenRequest struct {
	Name         *string              `json:"name,omitempty"`
	Location     *string              `json:"location,omitempty"`
	Capacity     *int                 `json:"capacity,omitempty"`
	WorkingHours []WorkingHoursPeriod `json:"working_hours,omitempty"`
}

func (r UpdateCanteenRequest) ToParams(requesterID, canteenID uuid.UUID) commands.UpdateCanteenParams {
	p := commands.UpdateCanteenParams{
		RequesterID: requesterID,
		CanteenID:   canteenID,
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
	}
	if r.WorkingHours != nil {
		p.WorkingHours = toPeriodInputs(r.WorkingHours)
	}
	return p
}

func toPeriodInputs(periods []WorkingHoursPeriod) []commands.PeriodInput {
	out := make([]commands.PeriodInput, len(periods))
	for i, p := range periods {
		out[i] = commands.PeriodInput{Meal: p.Meal, From: p.From, To: p.To}
	}
	return out
}
