package shared

import (
	"context"

	"canteen-reservation/internal/domain/canteen"

	"github.com/google/uuid"
)

// CanteenSnapshot is the read-only canteen view supplied to the booking path.
// Capacity and working hours are immutable for the span of one transaction.
type CanteenSnapshot struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int
	Hours    canteen.WorkingHours
	OwnerID  uuid.UUID
}

type StudentSnapshot struct {
	ID      uuid.UUID
	Name    string
	Email   string
	IsAdmin bool
}

// CanteenDirectory resolves canteen snapshots. The core never mutates
// canteen metadata through this.
type CanteenDirectory interface {
	ByID(ctx context.Context, id uuid.UUID) (*CanteenSnapshot, error)
	All(ctx context.Context) ([]*CanteenSnapshot, error)
}

// StudentDirectory resolves student identity and the admin flag.
type StudentDirectory interface {
	ByID(ctx context.Context, id uuid.UUID) (*StudentSnapshot, error)
}
