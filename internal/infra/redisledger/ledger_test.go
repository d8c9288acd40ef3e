//go:build unit

package redisledger_test

import (
	"context"
	"testing"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra/redisledger"
	"canteen-reservation/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *redisledger.Ledger {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisledger.NewLedger(client)
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

func TestTryReserve(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")

	t.Run("increments up to capacity then reports the full tick", func(t *testing.T) {
		ledger := newLedger(t)
		ticks := []timeslot.TimeOfDay{mustTime(t, "12:00")}

		require.NoError(t, ledger.TryReserve(ctx, canteenID, date, ticks, 2))
		require.NoError(t, ledger.TryReserve(ctx, canteenID, date, ticks, 2))

		err := ledger.TryReserve(ctx, canteenID, date, ticks, 2)
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)
		assert.Equal(t, "12:00", full.Tick.String())

		occ, err := ledger.Occupancy(ctx, canteenID, date, ticks[0])
		require.NoError(t, err)
		assert.Equal(t, 2, occ)
	})

	t.Run("touches nothing when a later tick is full", func(t *testing.T) {
		ledger := newLedger(t)
		first := mustTime(t, "12:00")
		second := mustTime(t, "12:30")

		require.NoError(t, ledger.TryReserve(ctx, canteenID, date, []timeslot.TimeOfDay{second}, 1))

		err := ledger.TryReserve(ctx, canteenID, date, []timeslot.TimeOfDay{first, second}, 1)
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)
		assert.Equal(t, "12:30", full.Tick.String())

		occ, err := ledger.Occupancy(ctx, canteenID, date, first)
		require.NoError(t, err)
		assert.Equal(t, 0, occ)
	})

	t.Run("canteens do not share counters", func(t *testing.T) {
		ledger := newLedger(t)
		ticks := []timeslot.TimeOfDay{mustTime(t, "12:00")}

		require.NoError(t, ledger.TryReserve(ctx, canteenID, date, ticks, 1))
		assert.NoError(t, ledger.TryReserve(ctx, uuid.New(), date, ticks, 1))
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")
	ticks := []timeslot.TimeOfDay{mustTime(t, "12:00"), mustTime(t, "12:30")}

	t.Run("frees a full slot", func(t *testing.T) {
		ledger := newLedger(t)
		require.NoError(t, ledger.TryReserve(ctx, canteenID, date, ticks, 1))
		require.NoError(t, ledger.Release(ctx, canteenID, date, ticks))
		assert.NoError(t, ledger.TryReserve(ctx, canteenID, date, ticks, 1))
	})

	t.Run("floors at zero", func(t *testing.T) {
		ledger := newLedger(t)
		require.NoError(t, ledger.Release(ctx, canteenID, date, ticks))

		occ, err := ledger.Occupancy(ctx, canteenID, date, ticks[0])
		require.NoError(t, err)
		assert.Equal(t, 0, occ)
	})
}

func TestOccupancies(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date := mustDate(t, "2030-06-10")

	ledger := newLedger(t)
	require.NoError(t, ledger.TryReserve(ctx, canteenID, date,
		[]timeslot.TimeOfDay{mustTime(t, "12:00"), mustTime(t, "12:30")}, 5))
	require.NoError(t, ledger.TryReserve(ctx, canteenID, date,
		[]timeslot.TimeOfDay{mustTime(t, "12:00")}, 5))

	occ, err := ledger.Occupancies(ctx, canteenID, date)
	require.NoError(t, err)
	assert.Equal(t, map[timeslot.TimeOfDay]int{
		mustTime(t, "12:00"): 2,
		mustTime(t, "12:30"): 1,
	}, occ)

	t.Run("other dates are empty", func(t *testing.T) {
		occ, err := ledger.Occupancies(ctx, canteenID, mustDate(t, "2030-06-11"))
		require.NoError(t, err)
		assert.Empty(t, occ)
	})
}
