//go:build unit

package uow

import (
	"context"
	"fmt"
	"testing"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLedger stands in for a counter backend that outlives transactions.
type countingLedger struct {
	counts map[string]int
}

func newCountingLedger() *countingLedger {
	return &countingLedger{counts: make(map[string]int)}
}

func (l *countingLedger) key(canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) string {
	return fmt.Sprintf("%s/%s/%d", canteenID, date, tick)
}

func (l *countingLedger) Occupancy(_ context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error) {
	return l.counts[l.key(canteenID, date, tick)], nil
}

func (l *countingLedger) TryReserve(_ context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error {
	for _, tick := range ticks {
		if l.counts[l.key(canteenID, date, tick)] >= capacity {
			return shared.SlotFullError{Tick: tick}
		}
	}
	for _, tick := range ticks {
		l.counts[l.key(canteenID, date, tick)]++
	}
	return nil
}

func (l *countingLedger) Release(_ context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error {
	for _, tick := range ticks {
		k := l.key(canteenID, date, tick)
		if l.counts[k] > 0 {
			l.counts[k]--
		}
	}
	return nil
}

var _ shared.CapacityLedger = (*countingLedger)(nil)

func TestJournaledLedger(t *testing.T) {
	ctx := context.Background()
	canteenID := uuid.New()
	date, err := timeslot.ParseDate("2030-06-10")
	require.NoError(t, err)
	start, err := timeslot.ParseTimeOfDay("12:00")
	require.NoError(t, err)
	ticks := []timeslot.TimeOfDay{start, start.Add(30)}

	t.Run("rollback undoes reservations of a failed attempt", func(t *testing.T) {
		backend := newCountingLedger()
		journal := &journaledLedger{inner: backend}

		require.NoError(t, journal.TryReserve(ctx, canteenID, date, ticks, 5))
		occ, _ := backend.Occupancy(ctx, canteenID, date, start)
		require.Equal(t, 1, occ)

		journal.rollback(ctx, 1)

		for _, tick := range ticks {
			occ, _ := backend.Occupancy(ctx, canteenID, date, tick)
			assert.Zero(t, occ)
		}
	})

	t.Run("rollback after rollback is a no-op", func(t *testing.T) {
		backend := newCountingLedger()
		require.NoError(t, backend.TryReserve(ctx, canteenID, date, ticks, 5))

		journal := &journaledLedger{inner: backend}
		require.NoError(t, journal.TryReserve(ctx, canteenID, date, ticks, 5))
		journal.rollback(ctx, 1)
		journal.rollback(ctx, 2)

		occ, _ := backend.Occupancy(ctx, canteenID, date, start)
		assert.Equal(t, 1, occ)
	})

	t.Run("released reservations are not released again", func(t *testing.T) {
		backend := newCountingLedger()
		// Another student's booking must survive the rollback.
		require.NoError(t, backend.TryReserve(ctx, canteenID, date, ticks, 5))

		journal := &journaledLedger{inner: backend}
		require.NoError(t, journal.TryReserve(ctx, canteenID, date, ticks, 5))
		require.NoError(t, journal.Release(ctx, canteenID, date, ticks))
		journal.rollback(ctx, 1)

		occ, _ := backend.Occupancy(ctx, canteenID, date, start)
		assert.Equal(t, 1, occ)
	})

	t.Run("failed reservation leaves no journal entry", func(t *testing.T) {
		backend := newCountingLedger()
		require.NoError(t, backend.TryReserve(ctx, canteenID, date, ticks, 1))

		journal := &journaledLedger{inner: backend}
		err := journal.TryReserve(ctx, canteenID, date, ticks, 1)
		var full shared.SlotFullError
		require.ErrorAs(t, err, &full)

		journal.rollback(ctx, 1)

		occ, _ := backend.Occupancy(ctx, canteenID, date, start)
		assert.Equal(t, 1, occ)
	})
}
