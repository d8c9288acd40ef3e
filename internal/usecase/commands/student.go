package commands

import (
	"context"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"
)

type RegisterStudentParams struct {
	Name    string
	Email   string
	IsAdmin bool
}

type StudentCommands interface {
	// Register creates a student account. Emails are unique.
	Register(ctx context.Context, p RegisterStudentParams) (*queries.StudentView, error)
}

type studentCommandsImpl struct {
	repo  shared.StudentRepository
	views queries.StudentQueries
}

func NewStudentCommands(repo shared.StudentRepository, views queries.StudentQueries) StudentCommands {
	return &studentCommandsImpl{repo: repo, views: views}
}

func (u *studentCommandsImpl) Register(ctx context.Context, p RegisterStudentParams) (*queries.StudentView, error) {
	s, err := student.NewStudent(p.Name, p.Email, p.IsAdmin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.repo.Create(ctx, s); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.views.GetByID(ctx, s.ID())
}
