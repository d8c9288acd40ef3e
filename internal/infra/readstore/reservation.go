package readstore

import (
	"context"
	"errors"
	"time"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.Executor
}

func NewReservationReadStore(exec db.Executor) *ReservationReadStore {
	return &ReservationReadStore{db: exec}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT id, student_id, canteen_id, date, start_min, duration_min, status, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByStudentInRange(ctx context.Context, studentID uuid.UUID, start, end timeslot.Date) ([]*queries.ReservationView, error) {
	const query = `
		SELECT id, student_id, canteen_id, date, start_min, duration_min, status, created_at, updated_at
		FROM reservations
		WHERE student_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_min`

	rows, err := r.db.Query(ctx, query, studentID, start.String(), end.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var out []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return out, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
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
	return &queries.ReservationView{
		ID:          id,
		StudentID:   studentID,
		CanteenID:   canteenID,
		Date:        timeslot.NewDate(date.Year(), date.Month(), date.Day()).String(),
		Time:        timeslot.TimeOfDay(startMin).String(),
		DurationMin: durationMin,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
