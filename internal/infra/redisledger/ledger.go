package redisledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// keyTTL outlives any bookable date far enough that counters for past days
// age out on their own.
const keyTTL = 7 * 24 * time.Hour

// tryReserveScript checks every tick key against capacity before touching
// any of them, then increments them all. Returns 0 on success or the
// 1-based index of the first full tick.
var tryReserveScript = redis.NewScript(`
for i, key in ipairs(KEYS) do
	local occ = tonumber(redis.call('GET', key) or '0')
	if occ >= tonumber(ARGV[1]) then
		return i
	end
end
for _, key in ipairs(KEYS) do
	redis.call('INCR', key)
	redis.call('EXPIRE', key, ARGV[2])
end
return 0
`)

// releaseScript decrements each key, floored at zero.
var releaseScript = redis.NewScript(`
for _, key in ipairs(KEYS) do
	local occ = tonumber(redis.call('GET', key) or '0')
	if occ > 0 then
		redis.call('DECR', key)
	end
end
return 0
`)

// Ledger keeps tick occupancy counters in redis, one key per
// (canteen, date, tick). All multi-key mutation goes through Lua scripts so
// concurrent bookings never observe a partial increment.
type Ledger struct {
	client *redis.Client
}

func NewLedger(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

var _ shared.CapacityLedger = (*Ledger)(nil)

func tickKey(canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) string {
	return fmt.Sprintf("canteen:%s:date:%s:tick:%d", canteenID, date, int(tick))
}

func (l *Ledger) Occupancy(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, tick timeslot.TimeOfDay) (int, error) {
	val, err := l.client.Get(ctx, tickKey(canteenID, date, tick)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read tick occupancy", err)
	}
	occ, err := strconv.Atoi(val)
	if err != nil {
		return 0, infra.WrapRepoErr("corrupt tick counter", err)
	}
	return occ, nil
}

func (l *Ledger) TryReserve(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay, capacity int) error {
	keys := make([]string, len(ticks))
	for i, tick := range ticks {
		keys[i] = tickKey(canteenID, date, tick)
	}

	res, err := tryReserveScript.Run(ctx, l.client, keys, capacity, int(keyTTL.Seconds())).Int()
	if err != nil {
		return infra.WrapRepoErr("failed to reserve ticks", err)
	}
	if res > 0 {
		return shared.SlotFullError{Tick: ticks[res-1]}
	}
	return nil
}

func (l *Ledger) Release(ctx context.Context, canteenID uuid.UUID, date timeslot.Date, ticks []timeslot.TimeOfDay) error {
	keys := make([]string, len(ticks))
	for i, tick := range ticks {
		keys[i] = tickKey(canteenID, date, tick)
	}

	if err := releaseScript.Run(ctx, l.client, keys).Err(); err != nil {
		return infra.WrapRepoErr("failed to release ticks", err)
	}
	return nil
}

// Occupancies reads the whole day's tick counters with one MGET over the 48
// possible tick keys.
func (l *Ledger) Occupancies(ctx context.Context, canteenID uuid.UUID, date timeslot.Date) (map[timeslot.TimeOfDay]int, error) {
	ticksPerDay := 24 * 60 / timeslot.TickMinutes
	keys := make([]string, 0, ticksPerDay)
	ticks := make([]timeslot.TimeOfDay, 0, ticksPerDay)
	for min := 0; min < 24*60; min += timeslot.TickMinutes {
		tick := timeslot.TimeOfDay(min)
		ticks = append(ticks, tick)
		keys = append(keys, tickKey(canteenID, date, tick))
	}

	vals, err := l.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read tick occupancies", err)
	}

	out := make(map[timeslot.TimeOfDay]int)
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		occ, err := strconv.Atoi(s)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt tick counter", err)
		}
		if occ > 0 {
			out[ticks[i]] = occ
		}
	}
	return out, nil
}
