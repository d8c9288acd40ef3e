package readstore

import (
	"context"

	"canteen-reservation/internal/domain/timeslot"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"

	"github.com/google/uuid"
)

// OccupancyReadStore reads committed tick counters from slot_occupancy.
// Availability built on these reads is a point-in-time report.
type OccupancyReadStore struct {
	db db.Executor
}

func NewOccupancyReadStore(exec db.Executor) *OccupancyReadStore {
	return &OccupancyReadStore{db: exec}
}

func (r *OccupancyReadStore) Occupancies(ctx context.Context, canteenID uuid.UUID, date timeslot.Date) (map[timeslot.TimeOfDay]int, error) {
	const query = `
		SELECT tick_min, occupied
		FROM slot_occupancy
		WHERE canteen_id = $1 AND date = $2 AND occupied > 0`

	rows, err := r.db.Query(ctx, query, canteenID, date.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read tick occupancies", err)
	}
	defer rows.Close()

	out := make(map[timeslot.TimeOfDay]int)
	for rows.Next() {
		var tickMin, occupied int
		if err := rows.Scan(&tickMin, &occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tick occupancy", err)
		}
		out[timeslot.TimeOfDay(tickMin)] = occupied
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tick occupancies", err)
	}
	return out, nil
}
