package queries

import (
	"context"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CanteenQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CanteenView, error)
	List(ctx context.Context) ([]*CanteenView, error)
}

type canteenQueriesImpl struct {
	canteens shared.CanteenDirectory
}

func NewCanteenQueries(canteens shared.CanteenDirectory) CanteenQueries {
	return &canteenQueriesImpl{canteens: canteens}
}

func (q *canteenQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CanteenView, error) {
	snap, err := q.canteens.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCanteenNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return canteenViewFromSnapshot(snap), nil
}

func (q *canteenQueriesImpl) List(ctx context.Context) ([]*CanteenView, error) {
	snaps, err := q.canteens.All(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]*CanteenView, len(snaps))
	for i, snap := range snaps {
		views[i] = canteenViewFromSnapshot(snap)
	}
	return views, nil
}

func canteenViewFromSnapshot(snap *shared.CanteenSnapshot) *CanteenView {
	periods := make([]PeriodView, len(snap.Hours))
	for i, p := range snap.Hours {
		periods[i] = PeriodView{
			Meal: p.Meal.String(),
			From: p.From.String(),
			To:   p.To.String(),
		}
	}
	return &CanteenView{
		ID:           snap.ID,
		Name:         snap.Name,
		Location:     snap.Location,
		Capacity:     snap.Capacity,
		WorkingHours: periods,
	}
}
