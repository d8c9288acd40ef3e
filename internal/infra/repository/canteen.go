package repository

import (
	"context"
	"errors"
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeForeignKeyViolation = "23503"

// CanteenRepository persists canteens and their working-hours rows. Writes
// touch two tables, so each mutation runs in its own short transaction.
type CanteenRepository struct {
	pool *pgxpool.Pool
}

func NewCanteenRepository(pool *pgxpool.Pool) *CanteenRepository {
	return &CanteenRepository{pool: pool}
}

func (r *CanteenRepository) Create(ctx context.Context, c *canteen.Canteen) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		const query = `
			INSERT INTO canteens (id, name, location, capacity, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, now(), now())`

		if _, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Location(), c.Capacity(), c.OwnerID()); err != nil {
			return infra.WrapRepoErr("failed to create canteen", err)
		}
		return insertWorkingHours(ctx, tx, c.ID(), c.Hours())
	})
}

func (r *CanteenRepository) FindByID(ctx context.Context, id uuid.UUID) (*canteen.Canteen, error) {
	const query = `
		SELECT id, name, location, capacity, owner_id, created_at, updated_at
		FROM canteens
		WHERE id = $1`

	var (
		cid, ownerID         uuid.UUID
		name, location       string
		capacity             int
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(&cid, &name, &location, &capacity, &ownerID, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("canteen not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find canteen by ID", err)
	}

	hours, err := loadWorkingHours(ctx, r.pool, cid)
	if err != nil {
		return nil, err
	}
	return canteen.ReconstructCanteen(cid, name, location, capacity, hours, ownerID, createdAt, updatedAt), nil
}

func (r *CanteenRepository) Update(ctx context.Context, c *canteen.Canteen) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		const query = `
			UPDATE canteens
			SET name = $2, location = $3, capacity = $4, updated_at = now()
			WHERE id = $1`

		tag, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Location(), c.Capacity())
		if err != nil {
			return infra.WrapRepoErr("failed to update canteen", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("canteen not found", pgx.ErrNoRows, infra.KindNotFound)
		}

		// Working hours are replaced wholesale.
		if _, err := tx.Exec(ctx, `DELETE FROM canteen_working_hours WHERE canteen_id = $1`, c.ID()); err != nil {
			return infra.WrapRepoErr("failed to clear working hours", err)
		}
		return insertWorkingHours(ctx, tx, c.ID(), c.Hours())
	})
}

func (r *CanteenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM canteens WHERE id = $1`, id)
	if err != nil {
		// Reservation rows are never deleted, so their foreign key blocks
		// removing any canteen that was ever booked.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr("canteen is referenced by reservations", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to delete canteen", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("canteen not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CanteenRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func insertWorkingHours(ctx context.Context, exec db.Executor, canteenID uuid.UUID, hours canteen.WorkingHours) error {
	const query = `
		INSERT INTO canteen_working_hours (canteen_id, meal, from_min, to_min)
		VALUES ($1, $2, $3, $4)`

	for _, p := range hours {
		if _, err := exec.Exec(ctx, query, canteenID, p.Meal.String(), int(p.From), int(p.To)); err != nil {
			return infra.WrapRepoErr("failed to insert working hours", err)
		}
	}
	return nil
}

func loadWorkingHours(ctx context.Context, exec db.Executor, canteenID uuid.UUID) (canteen.WorkingHours, error) {
	const query = `
		SELECT meal, from_min, to_min
		FROM canteen_working_hours
		WHERE canteen_id = $1
		ORDER BY from_min`

	rows, err := exec.Query(ctx, query, canteenID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	defer rows.Close()

	var periods []canteen.Period
	for rows.Next() {
		var (
			meal         string
			fromMin, toMin int
		)
		if err := rows.Scan(&meal, &fromMin, &toMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours", err)
		}
		periods = append(periods, canteen.Period{
			Meal: timeslot.Meal(meal),
			From: timeslot.TimeOfDay(fromMin),
			To:   timeslot.TimeOfDay(toMin),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}
	return canteen.WorkingHours(periods), nil
}
