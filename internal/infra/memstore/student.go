package memstore

import (
	"context"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// StudentStore serves both the write repository and the snapshot directory.
type StudentStore struct {
	store *Store
}

func NewStudentStore(s *Store) *StudentStore {
	return &StudentStore{store: s}
}

var (
	_ shared.StudentRepository = (*StudentStore)(nil)
	_ shared.StudentDirectory  = (*StudentStore)(nil)
)

func (r *StudentStore) Create(_ context.Context, s *student.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.emailIndex[s.Email()]; taken {
		return infra.WrapRepoErr("email already in use", errDuplicate, infra.KindDuplicateKey)
	}
	r.store.students[s.ID()] = student.ReconstructStudent(
		s.ID(), s.Name(), s.Email(), s.IsAdmin(), r.store.clock.Now())
	r.store.emailIndex[s.Email()] = s.ID()
	return nil
}

func (r *StudentStore) ByID(_ context.Context, id uuid.UUID) (*shared.StudentSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.students[id]
	if !ok {
		return nil, infra.WrapRepoErr("student not found", errNotFound, infra.KindNotFound)
	}
	return &shared.StudentSnapshot{
		ID:      s.ID(),
		Name:    s.Name(),
		Email:   s.Email(),
		IsAdmin: s.IsAdmin(),
	}, nil
}
