package response

import (
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PeriodResponse struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CanteenResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	Capacity     int              `json:"capacity"`
	WorkingHours []PeriodResponse `json:"workingHours"`
}

func FromCanteenView(rm *queries.CanteenView) *CanteenResponse {
	resp := &CanteenResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromCanteenViews(rms []*queries.CanteenView) []*CanteenResponse {
	out := make([]*CanteenResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCanteenView(rm)
	}
	return out
}
