package canteen

import (
	"errors"
	"fmt"
	"sort"

	"canteen-reservation/internal/domain/timeslot"
)

var (
	ErrNoWorkingHours          = errors.New("at least one working hours period is required")
	ErrPeriodOrder             = errors.New("working hours 'from' must be before 'to'")
	ErrPeriodTooShort          = errors.New("working hours period must be at least 30 minutes")
	ErrPeriodsOverlap          = errors.New("working hours periods cannot overlap")
	ErrInvalidWorkingHoursTime = errors.New("invalid working hours time")
)

// Period is a named meal window [From, To) in minutes-of-day.
type Period struct {
	Meal timeslot.Meal
	From timeslot.TimeOfDay
	To   timeslot.TimeOfDay
}

func NewPeriod(meal, from, to string) (Period, error) {
	m, err := timeslot.NewMeal(meal)
	if err != nil {
		return Period{}, err
	}
	f, err := timeslot.ParseTimeOfDay(from)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidWorkingHoursTime, from)
	}
	t, err := timeslot.ParseTimeOfDay(to)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidWorkingHoursTime, to)
	}
	return Period{Meal: m, From: f, To: t}, nil
}

// WorkingHours is a canteen's set of meal periods, kept sorted by From.
type WorkingHours []Period

func NewWorkingHours(periods []Period) (WorkingHours, error) {
	if len(periods) == 0 {
		return nil, ErrNoWorkingHours
	}

	hours := make(WorkingHours, len(periods))
	copy(hours, periods)
	sort.Slice(hours, func(i, j int) bool { return hours[i].From < hours[j].From })

	for i, p := range hours {
		if p.From >= p.To {
			return nil, fmt.Errorf("%w: %s >= %s", ErrPeriodOrder, p.From, p.To)
		}
		if int(p.To-p.From) < timeslot.TickMinutes {
			return nil, fmt.Errorf("%w: %s-%s", ErrPeriodTooShort, p.From, p.To)
		}
		if i > 0 && hours[i-1].To > p.From {
			return nil, fmt.Errorf("%w: %s-%s and %s-%s",
				ErrPeriodsOverlap, hours[i-1].From, hours[i-1].To, p.From, p.To)
		}
	}

	return hours, nil
}

// Classify returns the meal period whose [From, To) contains t. Periods are
// disjoint by construction; the first match in sorted order wins.
func (h WorkingHours) Classify(t timeslot.TimeOfDay) (timeslot.Meal, bool) {
	for _, p := range h {
		if t >= p.From && t < p.To {
			return p.Meal, true
		}
	}
	return "", false
}

// ClassifyTick returns the meal period that contains the whole 30-minute
// tick starting at t. A tick straddling a period boundary belongs to no meal.
func (h WorkingHours) ClassifyTick(t timeslot.TimeOfDay) (timeslot.Meal, bool) {
	for _, p := range h {
		if t >= p.From && t.Add(timeslot.TickMinutes) <= p.To {
			return p.Meal, true
		}
	}
	return "", false
}

// CoversSlot reports whether a reservation starting at t with the given
// duration is bookable: every occupied tick sits in the same meal period,
// and 60-minute slots begin on the hour.
func (h WorkingHours) CoversSlot(t timeslot.TimeOfDay, d timeslot.Duration) bool {
	meal, ok := h.ClassifyTick(t)
	if !ok {
		return false
	}
	if d == timeslot.DurationHour {
		if !t.OnHour() {
			return false
		}
		next, ok := h.ClassifyTick(t.Add(timeslot.TickMinutes))
		if !ok || next != meal {
			return false
		}
	}
	return true
}
