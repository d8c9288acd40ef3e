//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra/memstore"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityFixture struct {
	store   *memstore.Store
	queries queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()
	store := memstore.New(clock.NewMockClock(time.Date(2030, time.June, 1, 8, 0, 0, 0, time.UTC)))
	canteens := memstore.NewCanteenStore(store)
	return &availabilityFixture{
		store:   store,
		queries: queries.NewAvailabilityQueries(canteens, store),
	}
}

func (f *availabilityFixture) addCanteen(t *testing.T, name string, capacity int, specs ...[3]string) uuid.UUID {
	t.Helper()
	periods := make([]canteen.Period, 0, len(specs))
	for _, spec := range specs {
		p, err := canteen.NewPeriod(spec[0], spec[1], spec[2])
		require.NoError(t, err)
		periods = append(periods, p)
	}
	hours, err := canteen.NewWorkingHours(periods)
	require.NoError(t, err)
	c, err := canteen.NewCanteen(name, "Building A", capacity, hours, uuid.New())
	require.NoError(t, err)
	require.NoError(t, memstore.NewCanteenStore(f.store).Create(context.Background(), c))
	return c.ID()
}

func (f *availabilityFixture) occupy(t *testing.T, canteenID uuid.UUID, date, start string, d timeslot.Duration, count int) {
	t.Helper()
	day, err := timeslot.ParseDate(date)
	require.NoError(t, err)
	tod, err := timeslot.ParseTimeOfDay(start)
	require.NoError(t, err)

	err = f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for i := 0; i < count; i++ {
			if err := tx.Ledger().TryReserve(ctx, canteenID, day, timeslot.TicksFor(tod, d), count); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func breakfastParams(d int) queries.AvailabilityParams {
	return queries.AvailabilityParams{
		StartDate:   "2030-06-10",
		StartTime:   "07:00",
		EndDate:     "2030-06-10",
		EndTime:     "09:00",
		DurationMin: d,
	}
}

func TestCanteenStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("remaining capacity per slot", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		id := f.addCanteen(t, "Main Hall", 3, [3]string{"breakfast", "07:00", "09:00"})
		f.occupy(t, id, "2030-06-10", "07:30", timeslot.DurationHalfHour, 2)

		view, err := f.queries.CanteenStatus(ctx, id, breakfastParams(30))
		require.NoError(t, err)
		assert.Equal(t, id, view.CanteenID)
		assert.Equal(t, "Main Hall", view.Name)

		require.Len(t, view.Slots, 4)
		byStart := make(map[string]queries.SlotAvailability, len(view.Slots))
		for _, s := range view.Slots {
			byStart[s.StartTime] = s
		}
		assert.Equal(t, 3, byStart["07:00"].RemainingCapacity)
		assert.Equal(t, 1, byStart["07:30"].RemainingCapacity)
		assert.Equal(t, 3, byStart["08:00"].RemainingCapacity)
		assert.Equal(t, "breakfast", byStart["07:00"].Meal)
		assert.Equal(t, "2030-06-10", byStart["07:00"].Date)
	})

	t.Run("hour slot is bound by its fuller tick", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		id := f.addCanteen(t, "Main Hall", 5, [3]string{"breakfast", "07:00", "09:00"})
		f.occupy(t, id, "2030-06-10", "07:30", timeslot.DurationHalfHour, 4)

		view, err := f.queries.CanteenStatus(ctx, id, breakfastParams(60))
		require.NoError(t, err)
		require.Len(t, view.Slots, 2)
		assert.Equal(t, "07:00", view.Slots[0].StartTime)
		assert.Equal(t, 1, view.Slots[0].RemainingCapacity, "07:00-08:00 is bound by the busier 07:30 tick")
		assert.Equal(t, "08:00", view.Slots[1].StartTime)
		assert.Equal(t, 5, view.Slots[1].RemainingCapacity)
	})

	t.Run("remaining capacity floors at zero", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		id := f.addCanteen(t, "Main Hall", 1, [3]string{"breakfast", "07:00", "09:00"})
		f.occupy(t, id, "2030-06-10", "07:00", timeslot.DurationHalfHour, 1)

		view, err := f.queries.CanteenStatus(ctx, id, breakfastParams(30))
		require.NoError(t, err)
		assert.Equal(t, 0, view.Slots[0].RemainingCapacity)
	})

	t.Run("window with no working hours yields an empty slot list", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		id := f.addCanteen(t, "Main Hall", 5, [3]string{"dinner", "17:30", "20:00"})

		view, err := f.queries.CanteenStatus(ctx, id, breakfastParams(30))
		require.NoError(t, err)
		assert.NotNil(t, view.Slots)
		assert.Empty(t, view.Slots)
	})

	t.Run("unknown canteen", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		_, err := f.queries.CanteenStatus(ctx, uuid.New(), breakfastParams(30))
		assert.ErrorIs(t, err, errs.ErrCanteenNotFound)
	})

	t.Run("malformed window", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		id := f.addCanteen(t, "Main Hall", 5, [3]string{"breakfast", "07:00", "09:00"})

		p := breakfastParams(30)
		p.StartTime = "7am"
		_, err := f.queries.CanteenStatus(ctx, id, p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)

		p = breakfastParams(45)
		_, err = f.queries.CanteenStatus(ctx, id, p)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestAllCanteens(t *testing.T) {
	ctx := context.Background()
	f := newAvailabilityFixture(t)
	first := f.addCanteen(t, "Main Hall", 5, [3]string{"breakfast", "07:00", "09:00"})
	second := f.addCanteen(t, "North Hall", 2, [3]string{"breakfast", "07:00", "08:00"})

	views, err := f.queries.AllCanteens(ctx, breakfastParams(30))
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, first, views[0].CanteenID)
	assert.Len(t, views[0].Slots, 4)
	assert.Equal(t, second, views[1].CanteenID)
	assert.Len(t, views[1].Slots, 2)
}
