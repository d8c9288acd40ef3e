package queries

import (
	"context"
	"fmt"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityParams is the raw date/time window of an availability query.
type AvailabilityParams struct {
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
	DurationMin int
}

type AvailabilityQueries interface {
	// CanteenStatus reports the open slots of one canteen with remaining
	// capacity per slot, ascending by (date, start time).
	CanteenStatus(ctx context.Context, canteenID uuid.UUID, p AvailabilityParams) (*CanteenStatusView, error)
	// AllCanteens fans the same computation out per canteen, preserving
	// canteen enumeration order.
	AllCanteens(ctx context.Context, p AvailabilityParams) ([]*CanteenStatusView, error)
}

type availabilityQueriesImpl struct {
	canteens  shared.CanteenDirectory
	occupancy OccupancyReader
}

func NewAvailabilityQueries(canteens shared.CanteenDirectory, occupancy OccupancyReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		canteens:  canteens,
		occupancy: occupancy,
	}
}

func (q *availabilityQueriesImpl) CanteenStatus(ctx context.Context, canteenID uuid.UUID, p AvailabilityParams) (*CanteenStatusView, error) {
	window, duration, err := p.parse()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := q.canteens.ByID(ctx, canteenID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCanteenNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return q.statusFor(ctx, snap, window, duration)
}

func (q *availabilityQueriesImpl) AllCanteens(ctx context.Context, p AvailabilityParams) ([]*CanteenStatusView, error) {
	window, duration, err := p.parse()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snaps, err := q.canteens.All(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*CanteenStatusView, 0, len(snaps))
	for _, snap := range snaps {
		view, err := q.statusFor(ctx, snap, window, duration)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// statusFor walks the generated slots in order, fetching occupancy one
// canteen day at a time; slots arrive grouped by date so each day is read
// once.
func (q *availabilityQueriesImpl) statusFor(
	ctx context.Context,
	snap *shared.CanteenSnapshot,
	window timeslot.Range,
	duration timeslot.Duration,
) (*CanteenStatusView, error) {
	view := &CanteenStatusView{
		CanteenID: snap.ID,
		Name:      snap.Name,
		Slots:     []SlotAvailability{},
	}

	var (
		day       map[timeslot.TimeOfDay]int
		dayLoaded bool
		dayDate   timeslot.Date
	)

	for slot := range timeslot.Generate(window, duration, snap.Hours) {
		if !dayLoaded || dayDate.Compare(slot.Date) != 0 {
			var err error
			day, err = q.occupancy.Occupancies(ctx, snap.ID, slot.Date)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			dayDate, dayLoaded = slot.Date, true
		}

		// The binding constraint of a 60-minute slot is its more
		// occupied tick.
		occupied := 0
		for _, tick := range slot.Ticks() {
			if c := day[tick]; c > occupied {
				occupied = c
			}
		}

		remaining := snap.Capacity - occupied
		if remaining < 0 {
			remaining = 0
		}

		view.Slots = append(view.Slots, SlotAvailability{
			Date:              slot.Date.String(),
			Meal:              slot.Meal.String(),
			StartTime:         slot.Start.String(),
			RemainingCapacity: remaining,
		})
	}

	return view, nil
}

func (p AvailabilityParams) parse() (timeslot.Range, timeslot.Duration, error) {
	startDate, err := timeslot.ParseDate(p.StartDate)
	if err != nil {
		return timeslot.Range{}, 0, fmt.Errorf("startDate: %w", err)
	}
	endDate, err := timeslot.ParseDate(p.EndDate)
	if err != nil {
		return timeslot.Range{}, 0, fmt.Errorf("endDate: %w", err)
	}
	startTime, err := timeslot.ParseTimeOfDay(p.StartTime)
	if err != nil {
		return timeslot.Range{}, 0, fmt.Errorf("startTime: %w", err)
	}
	endTime, err := timeslot.ParseTimeOfDay(p.EndTime)
	if err != nil {
		return timeslot.Range{}, 0, fmt.Errorf("endTime: %w", err)
	}
	duration, err := timeslot.NewDuration(p.DurationMin)
	if err != nil {
		return timeslot.Range{}, 0, err
	}

	window := timeslot.Range{
		StartDate: startDate,
		StartTime: startTime,
		EndDate:   endDate,
		EndTime:   endTime,
	}
	return window, duration, nil
}
