package daterange

import (
	"time"

	"github.com/roach88/daterange/instant"
)

// Contains reports whether t lies in the range, ends included.
func (r DateRange) Contains(t time.Time) bool {
	return instant.BeforeOrEqual(r.start, t) && instant.AfterOrEqual(r.end, t)
}

// ContainsRange reports whether o lies entirely inside the range, ends
// included. Every range contains itself.
func (r DateRange) ContainsRange(o DateRange) bool {
	return instant.BeforeOrEqual(r.start, o.start) && instant.AfterOrEqual(r.end, o.end)
}

// Within reports whether t lies in r. It is r.Contains(t) read from the
// instant's side.
func Within(t time.Time, r DateRange) bool {
	return r.Contains(t)
}

// Overlaps reports whether the two ranges share at least one instant.
func (r DateRange) Overlaps(o DateRange) bool {
	_, ok := r.Intersect(o)
	return ok
}

// Intersect returns the part of the range shared with o. The second
// result is false when the ranges are disjoint.
//
// The cases are checked in order and the first match wins:
//
//	[--r--]          o overlaps r's end     -> [o.start, r.end]
//	   {--o--}
//
//	   [--r--]       o overlaps r's start   -> [r.start, o.end]
//	{--o--}
//
//	  [-r-]          o strictly encloses r  -> r
//	{---o---}
//
//	[---r---]        r encloses o           -> o
//	  {-o-}
//
// Touching ends count as overlapping: [1,5] and [5,9] intersect in [5,5].
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	switch {
	case instant.BeforeOrEqual(r.start, o.start) &&
		instant.BeforeOrEqual(o.start, r.end) &&
		r.end.Before(o.end):
		return DateRange{start: o.start, end: r.end}, true

	case o.start.Before(r.start) &&
		instant.BeforeOrEqual(r.start, o.end) &&
		instant.BeforeOrEqual(o.end, r.end):
		return DateRange{start: r.start, end: o.end}, true

	case o.start.Before(r.start) && r.end.Before(o.end):
		return r, true

	case instant.BeforeOrEqual(r.start, o.start) && instant.BeforeOrEqual(o.end, r.end):
		return o, true
	}
	return DateRange{}, false
}

// Add returns the union of the range and o when they overlap. Disjoint
// ranges are never merged and yield false.
func (r DateRange) Add(o DateRange) (DateRange, bool) {
	if !r.Overlaps(o) {
		return DateRange{}, false
	}
	return DateRange{
		start: instant.Min(r.start, o.start),
		end:   instant.Max(r.end, o.end),
	}, true
}

// subtractCase names the branch Subtract takes for a pair of ranges.
type subtractCase int

const (
	subtractDisjoint subtractCase = iota // no overlap, r unchanged
	subtractCovered                      // o covers r, nothing left
	subtractLeft                         // o trims r's start
	subtractRight                        // o trims r's end
	subtractInner                        // o inside r, two pieces left
	subtractFallback                     // none of the above
)

// classifySubtract picks the branch of r \ o. The order matters: a range
// equal to o is covered, not trimmed.
func (r DateRange) classifySubtract(o DateRange) subtractCase {
	switch {
	case !r.Overlaps(o):
		return subtractDisjoint
	case instant.BeforeOrEqual(o.start, r.start) && instant.BeforeOrEqual(r.end, o.end):
		return subtractCovered
	case instant.BeforeOrEqual(o.start, r.start) &&
		o.end.Before(r.end) &&
		instant.BeforeOrEqual(r.start, o.end):
		return subtractLeft
	case instant.BeforeOrEqual(o.start, r.end) &&
		r.start.Before(o.start) &&
		instant.BeforeOrEqual(r.end, o.end):
		return subtractRight
	case instant.BeforeOrEqual(r.start, o.start) && instant.BeforeOrEqual(o.end, r.end):
		return subtractInner
	}
	return subtractFallback
}

// Subtract returns the parts of the range not covered by o, in order.
//
// The result has zero, one or two elements. Pieces are closed ranges, so
// they share their boundary instant with o; zero-length pieces are kept.
func (r DateRange) Subtract(o DateRange) []DateRange {
	switch r.classifySubtract(o) {
	case subtractCovered:
		return []DateRange{}
	case subtractLeft:
		return []DateRange{{start: o.end, end: r.end}}
	case subtractRight:
		return []DateRange{{start: r.start, end: o.start}}
	case subtractInner:
		return []DateRange{
			{start: r.start, end: o.start},
			{start: o.end, end: r.end},
		}
	}
	return []DateRange{r}
}
