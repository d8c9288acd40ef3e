package repository

import (
	"context"
	"errors"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SlotLedger keeps tick occupancy counters in the slot_occupancy table.
// It must run inside the booking transaction: TryReserve increments tick by
// tick and relies on transaction rollback to undo earlier increments when a
// later tick turns out to be full.
type SlotLedger struct {
	db db.Executor
}

func NewSlotLedger(exec db.Executor) *SlotLedger {
	return &SlotLedger{db: exec}
}

func (l *SlotLedger) Occupancy(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error) {
	const query = `
		SELECT occupied FROM slot_occupancy
		WHERE canteen_id = $1 AND date = $2 AND tick_min = $3`

	var occupied int
	err := l.db.QueryRow(ctx, query, canteenID, date.String(), int(tick)).Scan(&occupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read tick occupancy", err)
	}
	return occupied, nil
}

func (l *SlotLedger) TryReserve(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error {
	// The conditional upsert increments only while occupied < capacity;
	// a full tick matches no row and RETURNING yields nothing.
	const query = `
		INSERT INTO slot_occupancy (canteen_id, date, tick_min, occupied)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (canteen_id, date, tick_min)
		DO UPDATE SET occupied = slot_occupancy.occupied + 1
		WHERE slot_occupancy.occupied < $4
		RETURNING occupied`

	for _, tick := range ticks {
		var occupied int
		err := l.db.QueryRow(ctx, query, canteenID, date.String(), int(tick), capacity).Scan(&occupied)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shared.SlotFullError{Tick: tick}
			}
			return infra.WrapRepoErr("failed to reserve tick", err)
		}
	}
	return nil
}

func (l *SlotLedger) Release(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error {
	const query = `
		UPDATE slot_occupancy
		SET occupied = GREATEST(occupied - 1, 0)
		WHERE canteen_id = $1 AND date = $2 AND tick_min = $3`

	for _, tick := range ticks {
		if _, err := l.db.Exec(ctx, query, canteenID, date.String(), int(tick)); err != nil {
			return infra.WrapRepoErr("failed to release tick", err)
		}
	}
	return nil
}
