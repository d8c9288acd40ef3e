package timeslot

// Slot is a derived bookable unit: one tick for 30 minutes, two adjacent
// ticks for 60 minutes. Slots are computed, never stored.
type Slot struct {
	Date     Date
	Start    TimeOfDay
	Meal     Meal
	Duration Duration
}

// Ticks returns the 30-minute tick start times the slot occupies, in order.
func (s Slot) Ticks() []TimeOfDay {
	return TicksFor(s.Start, s.Duration)
}

// TicksFor enumerates the tick start times a reservation at start with the
// given duration occupies.
func TicksFor(start TimeOfDay, d Duration) []TimeOfDay {
	ticks := make([]TimeOfDay, 0, d.TickCount())
	for i := 0; i < d.TickCount(); i++ {
		ticks = append(ticks, start.Add(i*TickMinutes))
	}
	return ticks
}

// Overlaps reports whether two reservations share at least one tick.
func Overlaps(aStart TimeOfDay, aDur Duration, bStart TimeOfDay, bDur Duration) bool {
	aEnd := aStart.Add(aDur.Minutes())
	bEnd := bStart.Add(bDur.Minutes())
	return aStart < bEnd && bStart < aEnd
}
