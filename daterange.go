package daterange

import (
	"time"

	"github.com/roach88/daterange/instant"
)

// DateRange is a closed interval [Start, End] of instants.
//
// The zero value is the zero-length range at the zero time.
type DateRange struct {
	start time.Time
	end   time.Time
}

// New returns the range between a and b. If b is before a the endpoints
// are swapped; reversed input is accepted, not rejected.
func New(a, b time.Time) DateRange {
	if b.Before(a) {
		a, b = b, a
	}
	return DateRange{start: a, end: b}
}

// Start returns the first instant of the range.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last instant of the range.
func (r DateRange) End() time.Time {
	return r.end
}

// Clone returns a range with the same endpoints.
func (r DateRange) Clone() DateRange {
	return DateRange{start: r.start, end: r.end}
}

// IsZero reports whether both endpoints are the zero time.
func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Equal reports whether both endpoints are the same instants as o's.
// Locations are ignored, as with time.Time.Equal.
func (r DateRange) Equal(o DateRange) bool {
	return r.start.Equal(o.start) && r.end.Equal(o.end)
}

// Duration returns End - Start.
func (r DateRange) Duration() time.Duration {
	return r.end.Sub(r.start)
}

// Millis returns the length of the range in milliseconds. It is the value
// to use wherever a range takes part in numeric comparisons.
func (r DateRange) Millis() int64 {
	return instant.Millis(r.end) - instant.Millis(r.start)
}

// Diff returns End - Start in unit u, truncated toward zero.
func (r DateRange) Diff(u instant.Unit) (int64, error) {
	return instant.Diff(r.end, r.start, u)
}

// Center returns the instant halfway between Start and End.
func (r DateRange) Center() time.Time {
	return r.start.Add(r.Duration() / 2)
}

// Native returns the endpoints as a pair.
func (r DateRange) Native() [2]time.Time {
	return [2]time.Time{r.start, r.end}
}

// String returns the ISO 8601 interval form "start/end".
func (r DateRange) String() string {
	return instant.Format(r.start) + "/" + instant.Format(r.end)
}
