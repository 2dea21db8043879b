package instant

import (
	"time"

	"github.com/jinzhu/now"
)

// Calendar holds the locale-like settings that affect start/end of unit.
//
// The zero value starts weeks on Sunday.
type Calendar struct {
	WeekStart time.Weekday
}

// DefaultCalendar starts weeks on Sunday.
var DefaultCalendar = Calendar{WeekStart: time.Sunday}

// StartOf returns the first instant of the unit containing t, using
// DefaultCalendar.
func StartOf(t time.Time, u Unit) (time.Time, error) {
	return DefaultCalendar.StartOf(t, u)
}

// EndOf returns the last instant of the unit containing t, using
// DefaultCalendar.
func EndOf(t time.Time, u Unit) (time.Time, error) {
	return DefaultCalendar.EndOf(t, u)
}

// StartOf returns the first instant of the calendar unit containing t,
// in t's location.
func (c Calendar) StartOf(t time.Time, u Unit) (time.Time, error) {
	n := c.with(t)
	switch u {
	case Year:
		return n.BeginningOfYear(), nil
	case Month:
		return n.BeginningOfMonth(), nil
	case Week:
		return n.BeginningOfWeek(), nil
	case Day:
		return n.BeginningOfDay(), nil
	case Hour:
		return n.BeginningOfHour(), nil
	case Minute:
		return n.BeginningOfMinute(), nil
	case Second:
		return t.Truncate(time.Second), nil
	}
	return time.Time{}, unsupportedUnit(string(u))
}

// EndOf returns the last representable instant of the calendar unit
// containing t, in t's location.
func (c Calendar) EndOf(t time.Time, u Unit) (time.Time, error) {
	n := c.with(t)
	switch u {
	case Year:
		return n.EndOfYear(), nil
	case Month:
		return n.EndOfMonth(), nil
	case Week:
		return n.EndOfWeek(), nil
	case Day:
		return n.EndOfDay(), nil
	case Hour:
		return n.EndOfHour(), nil
	case Minute:
		return n.EndOfMinute(), nil
	case Second:
		return t.Truncate(time.Second).Add(time.Second - time.Nanosecond), nil
	}
	return time.Time{}, unsupportedUnit(string(u))
}

func (c Calendar) with(t time.Time) *now.Now {
	cfg := &now.Config{WeekStartDay: c.WeekStart}
	return cfg.With(t)
}

// Add returns t advanced by n units. Negative n moves backwards.
//
// Calendar units keep the wall clock: adding one day across a DST change
// keeps the same local time. Month and year steps clamp the day of month.
func Add(t time.Time, n int, u Unit) (time.Time, error) {
	switch u {
	case Year:
		return addMonths(t, 12*n), nil
	case Month:
		return addMonths(t, n), nil
	case Week:
		return t.AddDate(0, 0, 7*n), nil
	case Day:
		return t.AddDate(0, 0, n), nil
	}
	if d, ok := u.fixed(); ok {
		return t.Add(time.Duration(n) * d), nil
	}
	return time.Time{}, unsupportedUnit(string(u))
}

// addMonths moves t by n months, clamping the day to the length of the
// target month.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
