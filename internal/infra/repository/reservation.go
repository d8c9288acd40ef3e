package repository

import (
	"context"
	"errors"
	"time"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.Executor
}

func NewReservationRepository(exec db.Executor) *ReservationRepository {
	return &ReservationRepository{db: exec}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (id, student_id, canteen_id, date, start_min, duration_min, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := r.db.Exec(ctx, query,
		res.ID(), res.StudentID(), res.CanteenID(),
		res.Date().String(), int(res.Start()), res.Duration().Minutes(), res.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, student_id, canteen_id, date, start_min, duration_min, status, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// FindActiveByStudentOnDate takes a per-student advisory lock scoped to the
// surrounding transaction before reading, so two concurrent bookings by the
// same student cannot both pass the overlap check.
func (r *ReservationRepository) FindActiveByStudentOnDate(ctx context.Context, studentID uuid.UUID, date timeslot.Date) ([]*reservation.Reservation, error) {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, studentID); err != nil {
		return nil, infra.WrapRepoErr("failed to acquire student lock", err)
	}

	const query = `
		SELECT id, student_id, canteen_id, date, start_min, duration_min, status, created_at, updated_at
		FROM reservations
		WHERE student_id = $1 AND date = $2 AND status = 'Active'`

	rows, err := r.db.Query(ctx, query, studentID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active reservations", err)
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const query = `UPDATE reservations SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, studentID, canteenID uuid.UUID
		date                     time.Time
		startMin, durationMin    int
		status                   string
		createdAt, updatedAt     time.Time
	)
	if err := row.Scan(&id, &studentID, &canteenID, &date, &startMin, &durationMin, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		id, studentID, canteenID,
		timeslot.NewDate(date.Year(), date.Month(), date.Day()),
		timeslot.TimeOfDay(startMin),
		timeslot.Duration(durationMin),
		reservation.Status(status),
		createdAt, updatedAt,
	), nil
}
