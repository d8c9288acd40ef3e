package timeslot

import "iter"

// Calendar classifies a 30-minute tick into the meal period that contains it
// entirely. A canteen's working hours satisfy this.
type Calendar interface {
	ClassifyTick(t TimeOfDay) (Meal, bool)
}

// Range is a half-open date/time window for slot enumeration. The start time
// applies only to the first date and the end time only to the last; interior
// dates span 00:00-23:59.
type Range struct {
	StartDate Date
	StartTime TimeOfDay
	EndDate   Date
	EndTime   TimeOfDay
}

// Generate lazily enumerates the bookable slots of the given duration inside
// r, ascending by (date, start). The sequence is finite and restartable.
//
// Ticks are walked in 30-minute steps regardless of the requested duration.
// A candidate is emitted when its start tick classifies into a meal period
// and, for 60-minute slots, the start is on the hour and the following tick
// classifies into the same period. A slot whose span would cross the
// effective end of the day is excluded.
func Generate(r Range, d Duration, cal Calendar) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for date := r.StartDate; !date.After(r.EndDate); date = date.Next() {
			dayStart := TimeOfDay(0)
			if date.Compare(r.StartDate) == 0 {
				dayStart = r.StartTime
			}
			dayEnd := TimeOfDay(23*60 + 59)
			if date.Compare(r.EndDate) == 0 {
				dayEnd = r.EndTime
			}

			for tick := dayStart; tick.Add(d.Minutes()) <= dayEnd; tick = tick.Add(TickMinutes) {
				slot, ok := slotAt(date, tick, d, cal)
				if !ok {
					continue
				}
				if !yield(slot) {
					return
				}
			}
		}
	}
}

func slotAt(date Date, start TimeOfDay, d Duration, cal Calendar) (Slot, bool) {
	meal, ok := cal.ClassifyTick(start)
	if !ok {
		return Slot{}, false
	}

	if d == DurationHour {
		if !start.OnHour() {
			return Slot{}, false
		}
		nextMeal, ok := cal.ClassifyTick(start.Add(TickMinutes))
		if !ok || nextMeal != meal {
			return Slot{}, false
		}
	}

	return Slot{Date: date, Start: start, Meal: meal, Duration: d}, true
}
