package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"slices"
	"time"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra/repository"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	// ledger, when set, replaces the transactional slot_occupancy counters
	// with an external backend (redis). Each attempt journals its
	// reservations and releases them when the transaction does not commit.
	ledger shared.CapacityLedger
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

func NewPostgresUoWWithLedger(pool *pgxpool.Pool, ledger shared.CapacityLedger) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, ledger: ledger}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		var journal *journaledLedger
		ledger := u.ledger
		if u.ledger != nil {
			journal = &journaledLedger{inner: u.ledger}
			ledger = journal
		}
		tx := &pgTx{dbtx: pgxTx, ledger: ledger}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		// External counters do not roll back with the transaction. Undo the
		// reservations this attempt recorded before retrying or giving up,
		// or a rerun of fn would count the same ticks twice.
		if journal != nil {
			journal.rollback(ctx, attempt+1)
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgx.Tx

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	ledger          shared.CapacityLedger
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Ledger() shared.CapacityLedger {
	if t.ledger == nil {
		t.ledger = repository.NewSlotLedger(t.dbtx)
	}
	return t.ledger
}

var _ shared.Tx = (*pgTx)(nil)

type reservedBatch struct {
	canteenID uuid.UUID
	date      timeslot.Date
	ticks     []timeslot.TimeOfDay
}

// journaledLedger wraps an external capacity ledger for the span of one
// transaction attempt. Successful reservations are recorded so rollback can
// undo increments the database transaction cannot take back.
type journaledLedger struct {
	inner    shared.CapacityLedger
	reserved []reservedBatch
}

var _ shared.CapacityLedger = (*journaledLedger)(nil)

func (j *journaledLedger) Occupancy(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error) {
	return j.inner.Occupancy(ctx, canteenID, date, tick)
}

func (j *journaledLedger) TryReserve(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error {
	if err := j.inner.TryReserve(ctx, canteenID, date, ticks, capacity); err != nil {
		return err
	}
	j.reserved = append(j.reserved, reservedBatch{canteenID: canteenID, date: date, ticks: ticks})
	return nil
}

func (j *journaledLedger) Release(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error {
	if err := j.inner.Release(ctx, canteenID, date, ticks); err != nil {
		return err
	}
	for i, b := range j.reserved {
		if b.canteenID == canteenID && b.date == date && slices.Equal(b.ticks, ticks) {
			j.reserved = append(j.reserved[:i], j.reserved[i+1:]...)
			break
		}
	}
	return nil
}

func (j *journaledLedger) rollback(ctx context.Context, attempt int) {
	for _, b := range j.reserved {
		if err := j.inner.Release(ctx, b.canteenID, b.date, b.ticks); err != nil {
			slog.Warn("failed to release reserved ticks after rollback",
				"attempt", attempt,
				"canteen_id", b.canteenID.String(),
				"date", b.date.String(),
				"error", err.Error())
		}
	}
	j.reserved = nil
}
