package commands

import (
	"context"
	"errors"
	"log/slog"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	StudentID   uuid.UUID
	CanteenID   uuid.UUID
	Date        string
	Time        string
	DurationMin int
}

type ReservationCommands interface {
	// Create books a slot: shape validation, canteen/student resolution,
	// past and working-hours checks, then duplicate check, capacity
	// reservation and record write inside one isolation boundary.
	Create(ctx context.Context, p CreateReservationParams) (*queries.ReservationView, error)
	// Cancel marks a reservation Cancelled and releases its ticks.
	// Cancelling an already-cancelled reservation surfaces as not found.
	Cancel(ctx context.Context, reservationID, requestingStudentID uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	canteens shared.CanteenDirectory
	students shared.StudentDirectory
	views    queries.ReservationQueries
	clock    clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	canteens shared.CanteenDirectory,
	students shared.StudentDirectory,
	views queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		canteens: canteens,
		students: students,
		views:    views,
		clock:    clk,
	}
}

func (u *reservationCommandsImpl) Create(ctx context.Context, p CreateReservationParams) (*queries.ReservationView, error) {
	req, err := reservation.NewBookingRequest(p.StudentID, p.CanteenID, p.Date, p.Time, p.DurationMin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := u.canteens.ByID(ctx, req.CanteenID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCanteenNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := u.students.ByID(ctx, req.StudentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStudentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if req.StartsBefore(u.clock.Now()) {
		return nil, errs.ErrPastDateTime
	}

	if !snap.Hours.CoversSlot(req.Start, req.Duration) {
		return nil, errs.ErrOutsideWorkingHours
	}

	res := reservation.NewReservation(req.StudentID, req.CanteenID, req.Date, req.Start, req.Duration)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Duplicate check is global: an Active reservation overlapping
		// any requested tick blocks the booking regardless of canteen.
		existing, err := tx.Reservations().FindActiveByStudentOnDate(ctx, req.StudentID, req.Date)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, held := range existing {
			if held.OverlapsSpan(req.Date, req.Start, req.Duration) {
				return errs.ErrDuplicateBooking
			}
		}

		if err := tx.Ledger().TryReserve(ctx, req.CanteenID, req.Date, req.Ticks(), snap.Capacity); err != nil {
			var full shared.SlotFullError
			if errors.As(err, &full) {
				return errs.Mark(err, errs.ErrSlotFull)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			// Counter backends that outlive the transaction need the
			// increments undone explicitly.
			if relErr := tx.Ledger().Release(ctx, req.CanteenID, req.Date, req.Ticks()); relErr != nil {
				slog.Warn("failed to release ticks after create failure",
					"reservation_id", res.ID(), "error", relErr.Error())
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the committed view from the read store.
	view, err := u.views.GetByID(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, requestingStudentID uuid.UUID) (*queries.ReservationView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if res.StudentID() != requestingStudentID {
			return errs.ErrNotReservationOwner
		}

		if err := res.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrAlreadyCancelled)
		}

		// Mark before releasing so a concurrent availability read never
		// sees freed capacity for a nominally Active reservation.
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Ledger().Release(ctx, res.CanteenID(), res.Date(), res.Ticks()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.views.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
