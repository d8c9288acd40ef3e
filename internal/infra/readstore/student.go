package readstore

import (
	"context"
	"errors"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StudentReadStore struct {
	db db.Executor
}

func NewStudentReadStore(exec db.Executor) *StudentReadStore {
	return &StudentReadStore{db: exec}
}

func (r *StudentReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.StudentSnapshot, error) {
	const query = `
		SELECT id, name, email, is_admin
		FROM students
		WHERE id = $1`

	snap := &shared.StudentSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("student not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find student by ID", err)
	}
	return snap, nil
}
