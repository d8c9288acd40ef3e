package repository

import (
	"context"
	"errors"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type StudentRepository struct {
	db db.Executor
}

func NewStudentRepository(exec db.Executor) *StudentRepository {
	return &StudentRepository{db: exec}
}

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	const query = `
		INSERT INTO students (id, name, email, is_admin, created_at)
		VALUES ($1, $2, $3, $4, now())`

	_, err := r.db.Exec(ctx, query, s.ID(), s.Name(), s.Email(), s.IsAdmin())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create student", err)
	}
	return nil
}
