package queries

import (
	"context"
	"fmt"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByStudent returns the student's reservations, cancelled included,
	// with date in [startDate, endDate], ordered by (date asc, time asc).
	ListByStudent(ctx context.Context, studentID uuid.UUID, startDate, endDate string) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID, startDate, endDate string) ([]*ReservationView, error) {
	start, err := timeslot.ParseDate(startDate)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("startDate: %w", err), errs.ErrDomainValidation)
	}
	end, err := timeslot.ParseDate(endDate)
	if err != nil {
		return nil, errs.Mark(fmt.Errorf("endDate: %w", err), errs.ErrDomainValidation)
	}

	views, err := q.store.FindByStudentInRange(ctx, studentID, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
