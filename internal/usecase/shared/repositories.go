package shared

import (
	"context"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/student"

	"github.com/google/uuid"
)

// CanteenRepository is the write side of canteen storage, used by the admin
// management operations. Booking reads go through CanteenDirectory instead.
type CanteenRepository interface {
	Create(ctx context.Context, c *canteen.Canteen) error
	FindByID(ctx context.Context, id uuid.UUID) (*canteen.Canteen, error)
	Update(ctx context.Context, c *canteen.Canteen) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentRepository is the write side of student storage. Create surfaces an
// email collision as a DUPLICATE_KEY repository error.
type StudentRepository interface {
	Create(ctx context.Context, s *student.Student) error
}
