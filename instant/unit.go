package instant

import "time"

// Unit is a calendar or fixed-length unit of time.
type Unit string

// Supported units. Millisecond is accepted by Add and Diff only; the other
// seven are the calendar keywords accepted everywhere.
const (
	Year        Unit = "year"
	Month       Unit = "month"
	Week        Unit = "week"
	Day         Unit = "day"
	Hour        Unit = "hour"
	Minute      Unit = "minute"
	Second      Unit = "second"
	Millisecond Unit = "millisecond"
)

// CalendarUnits lists the units that have a start and an end relative to
// a reference instant, largest first.
var CalendarUnits = []Unit{Year, Month, Week, Day, Hour, Minute, Second}

// aliases maps accepted keywords to their unit. Short forms are case
// sensitive: "M" is month, "m" is minute.
var aliases = map[string]Unit{
	"year": Year, "years": Year, "y": Year,
	"month": Month, "months": Month, "M": Month,
	"week": Week, "weeks": Week, "w": Week,
	"day": Day, "days": Day, "d": Day,
	"hour": Hour, "hours": Hour, "h": Hour,
	"minute": Minute, "minutes": Minute, "m": Minute,
	"second": Second, "seconds": Second, "s": Second,
	"millisecond": Millisecond, "milliseconds": Millisecond, "ms": Millisecond,
}

// ParseUnit resolves a unit keyword, its plural, or its short form.
func ParseUnit(s string) (Unit, error) {
	if u, ok := aliases[s]; ok {
		return u, nil
	}
	return "", unsupportedUnit(s)
}

// IsCalendar reports whether u is one of CalendarUnits.
func (u Unit) IsCalendar() bool {
	switch u {
	case Year, Month, Week, Day, Hour, Minute, Second:
		return true
	}
	return false
}

// String returns the canonical keyword.
func (u Unit) String() string {
	return string(u)
}

// fixed returns the length of u when it does not depend on the calendar.
func (u Unit) fixed() (time.Duration, bool) {
	switch u {
	case Hour:
		return time.Hour, true
	case Minute:
		return time.Minute, true
	case Second:
		return time.Second, true
	case Millisecond:
		return time.Millisecond, true
	}
	return 0, false
}
