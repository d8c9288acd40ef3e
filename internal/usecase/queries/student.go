package queries

import (
	"context"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type StudentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error)
}

type studentQueriesImpl struct {
	students shared.StudentDirectory
}

func NewStudentQueries(students shared.StudentDirectory) StudentQueries {
	return &studentQueriesImpl{students: students}
}

func (q *studentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StudentView, error) {
	snap, err := q.students.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStudentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &StudentView{
		ID:      snap.ID,
		Name:    snap.Name,
		Email:   snap.Email,
		IsAdmin: snap.IsAdmin,
	}, nil
}
