package commands

import (
	"context"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type PeriodInput struct {
	Meal string
	From string
	To   string
}

type CreateCanteenParams struct {
	RequesterID  uuid.UUID
	Name         string
	Location     string
	Capacity     int
	WorkingHours []PeriodInput
}

// UpdateCanteenParams is a partial update. Nil fields are left unchanged;
// a non-nil WorkingHours replaces the whole schedule.
type UpdateCanteenParams struct {
	RequesterID  uuid.UUID
	CanteenID    uuid.UUID
	Name         *string
	Location     *string
	Capacity     *int
	WorkingHours []PeriodInput
}

type CanteenCommands interface {
	// Create registers a canteen owned by the requesting admin.
	Create(ctx context.Context, p CreateCanteenParams) (*queries.CanteenView, error)
	// Update applies a partial update. Only the owning admin may update.
	Update(ctx context.Context, p UpdateCanteenParams) (*queries.CanteenView, error)
	// Delete removes a canteen. Only the owning admin may delete.
	Delete(ctx context.Context, requesterID, canteenID uuid.UUID) error
}

type canteenCommandsImpl struct {
	repo     shared.CanteenRepository
	students shared.StudentDirectory
	views    queries.CanteenQueries
}

func NewCanteenCommands(
	repo shared.CanteenRepository,
	students shared.StudentDirectory,
	views queries.CanteenQueries,
) CanteenCommands {
	return &canteenCommandsImpl{repo: repo, students: students, views: views}
}

func (u *canteenCommandsImpl) Create(ctx context.Context, p CreateCanteenParams) (*queries.CanteenView, error) {
	if err := u.requireAdmin(ctx, p.RequesterID); err != nil {
		return nil, err
	}

	hours, err := buildWorkingHours(p.WorkingHours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	c, err := canteen.NewCanteen(p.Name, p.Location, p.Capacity, hours, p.RequesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.repo.Create(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.views.GetByID(ctx, c.ID())
}

func (u *canteenCommandsImpl) Update(ctx context.Context, p UpdateCanteenParams) (*queries.CanteenView, error) {
	if err := u.requireAdmin(ctx, p.RequesterID); err != nil {
		return nil, err
	}

	c, err := u.repo.FindByID(ctx, p.CanteenID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCanteenNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if c.OwnerID() != p.RequesterID {
		return nil, errs.ErrAdminRequired
	}

	var hours canteen.WorkingHours
	if p.WorkingHours != nil {
		hours, err = buildWorkingHours(p.WorkingHours)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.ApplyUpdate(p.Name, p.Location, p.Capacity, hours); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.repo.Update(ctx, c); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCanteenNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.views.GetByID(ctx, c.ID())
}

func (u *canteenCommandsImpl) Delete(ctx context.Context, requesterID, canteenID uuid.UUID) error {
	if err := u.requireAdmin(ctx, requesterID); err != nil {
		return err
	}

	c, err := u.repo.FindByID(ctx, canteenID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCanteenNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if c.OwnerID() != requesterID {
		return errs.ErrAdminRequired
	}

	if err := u.repo.Delete(ctx, canteenID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCanteenNotFound
		}
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrCanteenHasReservations
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *canteenCommandsImpl) requireAdmin(ctx context.Context, studentID uuid.UUID) error {
	snap, err := u.students.ByID(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrStudentNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.IsAdmin {
		return errs.ErrAdminRequired
	}
	return nil
}

func buildWorkingHours(inputs []PeriodInput) (canteen.WorkingHours, error) {
	periods := make([]canteen.Period, 0, len(inputs))
	for _, in := range inputs {
		p, err := canteen.NewPeriod(in.Meal, in.From, in.To)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return canteen.NewWorkingHours(periods)
}
