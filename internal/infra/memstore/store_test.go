//go:build unit

package memstore_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra/memstore"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memstore.Store {
	return memstore.New(clock.NewMockClock(time.Date(2030, time.June, 1, 8, 0, 0, 0, time.UTC)))
}

func mustDate(t *testing.T, s string) timeslot.Date {
	t.Helper()
	d, err := timeslot.ParseDate(s)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, s string) timeslot.TimeOfDay {
	t.Helper()
	tod, err := timeslot.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestLedgerTryReserve(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")

	t.Run("fills a tick up to capacity", func(t *testing.T) {
		store := newStore()
		ticks := []timeslot.TimeOfDay{mustTime(t, "12:00")}

		for i := 0; i < 2; i++ {
			err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Ledger().TryReserve(ctx, canteenID, date, ticks, 2)
			})
			require.NoError(t, err)
		}

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date, ticks, 2)
		})
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)
		assert.Equal(t, "12:00", full.Tick.String())
	})

	t.Run("all or nothing across ticks", func(t *testing.T) {
		store := newStore()
		first := mustTime(t, "12:00")
		second := mustTime(t, "12:30")

		// Fill the second tick only.
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date, []timeslot.TimeOfDay{second}, 1)
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date, []timeslot.TimeOfDay{first, second}, 1)
		})
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)
		assert.Equal(t, "12:30", full.Tick.String())

		occ, err := store.Occupancies(ctx, canteenID, date)
		require.NoError(t, err)
		assert.NotContains(t, occ, first, "the first tick must not be incremented when the second is full")
		assert.Equal(t, 1, occ[second])
	})

	t.Run("thirty and sixty minute bookings share ticks", func(t *testing.T) {
		store := newStore()
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date,
				timeslot.TicksFor(mustTime(t, "12:00"), timeslot.DurationHour), 1)
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date,
				[]timeslot.TimeOfDay{mustTime(t, "12:30")}, 1)
		})
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)
		assert.Equal(t, "12:30", full.Tick.String())
	})
}

func TestLedgerRelease(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")
	ticks := []timeslot.TimeOfDay{mustTime(t, "12:00")}

	t.Run("release frees capacity", func(t *testing.T) {
		store := newStore()
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Ledger().TryReserve(ctx, canteenID, date, ticks, 1); err != nil {
				return err
			}
			return tx.Ledger().Release(ctx, canteenID, date, ticks)
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().TryReserve(ctx, canteenID, date, ticks, 1)
		})
		assert.NoError(t, err)
	})

	t.Run("release floors at zero", func(t *testing.T) {
		store := newStore()
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Ledger().Release(ctx, canteenID, date, ticks)
		})
		require.NoError(t, err)

		occ, err := store.Occupancies(ctx, canteenID, date)
		require.NoError(t, err)
		assert.Empty(t, occ)
	})
}

func TestWithinSerializesBookings(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")
	ticks := []timeslot.TimeOfDay{mustTime(t, "12:00")}

	const attempts = 32
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Ledger().TryReserve(ctx, canteenID, date, ticks, 1)
			})
			if err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())

	occ, err := store.Occupancies(ctx, canteenID, date)
	require.NoError(t, err)
	assert.Equal(t, 1, occ[ticks[0]])
}

func TestReservationRepo(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")

	book := func(t *testing.T, store *memstore.Store, start string, d timeslot.Duration) *reservation.Reservation {
		t.Helper()
		res := reservation.NewReservation(studentID, canteenID, date, mustTime(t, start), d)
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Ledger().TryReserve(ctx, canteenID, date, res.Ticks(), 10); err != nil {
				return err
			}
			return tx.Reservations().Create(ctx, res)
		})
		require.NoError(t, err)
		return res
	}

	t.Run("find by id returns a copy", func(t *testing.T) {
		store := newStore()
		res := book(t, store, "12:00", timeslot.DurationHalfHour)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err := tx.Reservations().FindByID(ctx, res.ID())
			require.NoError(t, err)
			assert.Equal(t, res.ID(), got.ID())
			assert.False(t, got.CreatedAt().IsZero(), "create stamps the clock time")

			// Mutating the returned value must not leak into the store.
			require.NoError(t, got.Cancel())
			return nil
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err := tx.Reservations().FindByID(ctx, res.ID())
			require.NoError(t, err)
			assert.True(t, got.IsActive())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("active by student on date skips cancelled", func(t *testing.T) {
		store := newStore()
		kept := book(t, store, "12:00", timeslot.DurationHalfHour)
		dropped := book(t, store, "18:00", timeslot.DurationHalfHour)

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().UpdateStatus(ctx, dropped.ID(), reservation.StatusCancelled)
		})
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			active, err := tx.Reservations().FindActiveByStudentOnDate(ctx, studentID, date)
			require.NoError(t, err)
			require.Len(t, active, 1)
			assert.Equal(t, kept.ID(), active[0].ID())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("cancel round trip restores occupancy", func(t *testing.T) {
		store := newStore()
		res := book(t, store, "12:00", timeslot.DurationHour)

		occ, err := store.Occupancies(ctx, canteenID, date)
		require.NoError(t, err)
		assert.Equal(t, 1, occ[mustTime(t, "12:00")])
		assert.Equal(t, 1, occ[mustTime(t, "12:30")])

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Reservations().UpdateStatus(ctx, res.ID(), reservation.StatusCancelled); err != nil {
				return err
			}
			return tx.Ledger().Release(ctx, canteenID, date, res.Ticks())
		})
		require.NoError(t, err)

		occ, err = store.Occupancies(ctx, canteenID, date)
		require.NoError(t, err)
		assert.Empty(t, occ)
	})
}
