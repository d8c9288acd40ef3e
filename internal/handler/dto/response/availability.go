package response

import (
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotAvailabilityResponse struct {
	Date              string `json:"date"`
	Meal              string `json:"meal"`
	StartTime         string `json:"startTime"`
	RemainingCapacity int    `json:"remainingCapacity"`
}

type CanteenAvailabilityResponse struct {
	CanteenID uuid.UUID                  `json:"canteenId"`
	Name      string                     `json:"name"`
	Slots     []SlotAvailabilityResponse `json:"slots"`
}

func FromCanteenStatusView(rm *queries.CanteenStatusView) *CanteenAvailabilityResponse {
	resp := &CanteenAvailabilityResponse{}
	_ = copier.Copy(resp, rm)
	if resp.Slots == nil {
		resp.Slots = []SlotAvailabilityResponse{}
	}
	return resp
}

func FromCanteenStatusViews(rms []*queries.CanteenStatusView) []*CanteenAvailabilityResponse {
	out := make([]*CanteenAvailabilityResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromCanteenStatusView(rm)
	}
	return out
}
