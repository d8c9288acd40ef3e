package timeslot

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, must be HH:mm")
	ErrInvalidDateFormat = errors.New("invalid date format, must be YYYY-MM-DD")
	ErrInvalidDuration   = errors.New("duration must be 30 or 60")
	ErrInvalidMeal       = errors.New("meal must be breakfast, lunch, or dinner")
)

// TickMinutes is the smallest unit of capacity accounting.
const TickMinutes = 30

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return TimeOfDay(hour*60 + minute), nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Add returns the time shifted by m minutes. The result may exceed 23:59;
// callers walking ticks rely on the overflow to detect day boundaries.
func (t TimeOfDay) Add(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

// OnHour reports whether the time falls on an even hour boundary (:00).
func (t TimeOfDay) OnHour() bool {
	return t.Minute() == 0
}

// Date is a calendar date without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func (d Date) Year() int        { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int         { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) Next() Date {
	t := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Compare returns -1, 0 or 1 by calendar order.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// At combines the date with a clock time in the given location.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), 0, 0, loc)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Duration is a bookable slot length in minutes.
type Duration int

const (
	DurationHalfHour Duration = 30
	DurationHour     Duration = 60
)

func NewDuration(minutes int) (Duration, error) {
	switch Duration(minutes) {
	case DurationHalfHour, DurationHour:
		return Duration(minutes), nil
	default:
		return 0, ErrInvalidDuration
	}
}

func (d Duration) Minutes() int { return int(d) }

// TickCount is the number of 30-minute ticks the duration occupies.
func (d Duration) TickCount() int { return int(d) / TickMinutes }

// Meal names a working-hours period.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

func NewMeal(s string) (Meal, error) {
	switch Meal(s) {
	case MealBreakfast, MealLunch, MealDinner:
		return Meal(s), nil
	default:
		return "", ErrInvalidMeal
	}
}

func (m Meal) String() string { return string(m) }
