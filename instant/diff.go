package instant

import "time"

// Diff returns a - b expressed in u, truncated toward zero.
//
// Fixed units divide the millisecond difference. Day and week compare wall
// clocks, so a day that is 23 or 25 hours long across a DST change still
// counts as one. Month and year use the fractional month distance anchored
// on whichever endpoint has the later day of month.
func Diff(a, b time.Time, u Unit) (int64, error) {
	ms := Millis(a) - Millis(b)
	switch u {
	case Year:
		return int64(monthDiff(a, b) / 12), nil
	case Month:
		return int64(monthDiff(a, b)), nil
	case Week:
		return (ms + zoneDelta(a, b)) / (7 * 24 * time.Hour).Milliseconds(), nil
	case Day:
		return (ms + zoneDelta(a, b)) / (24 * time.Hour).Milliseconds(), nil
	}
	if d, ok := u.fixed(); ok {
		return ms / d.Milliseconds(), nil
	}
	return 0, unsupportedUnit(string(u))
}

// zoneDelta is the difference in UTC offset between a and b, in
// milliseconds.
func zoneDelta(a, b time.Time) int64 {
	_, oa := a.Zone()
	_, ob := b.Zone()
	return int64(oa-ob) * 1000
}

// monthDiff returns the signed, fractional number of months from b to a.
func monthDiff(a, b time.Time) float64 {
	if b.Day() < a.Day() {
		return -monthDiff(b, a)
	}
	whole := (a.Year()-b.Year())*12 + int(a.Month()-b.Month())
	anchor := addMonths(b, whole)
	var adjust float64
	if a.Before(anchor) {
		prev := addMonths(b, whole-1)
		adjust = float64(a.Sub(anchor)) / float64(anchor.Sub(prev))
	} else {
		next := addMonths(b, whole+1)
		adjust = float64(a.Sub(anchor)) / float64(next.Sub(anchor))
	}
	return float64(whole) + adjust
}
