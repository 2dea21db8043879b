package daterange

import (
	"iter"
	"time"

	"github.com/roach88/daterange/instant"
)

// By returns the instants Start, Start+1u, Start+2u, ... that fall inside
// the range, End included when it is reached exactly.
//
// Each step is taken from the previous cursor, so month steps from Jan 31
// go Feb 29, Mar 29, ... The sequence is finite and can be ranged over any
// number of times. An unknown unit yields nothing.
func (r DateRange) By(u instant.Unit) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		cursor := r.start
		for r.Contains(cursor) {
			next, err := instant.Add(cursor, 1, u)
			if err != nil {
				return
			}
			if !yield(cursor) {
				return
			}
			cursor = next
		}
	}
}

// ByRange steps through the range using step's length as the stride.
//
// With n = floor(r.Duration() / step.Millis()) it yields Start + i*step
// for i = 0..n, so n+1 instants in total. The stride is counted in whole
// milliseconds but every value is offset from the exact Start, so none
// falls outside the range. A step shorter than one millisecond cannot
// advance and yields nothing.
func (r DateRange) ByRange(step DateRange) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		stride := step.Millis()
		if stride <= 0 {
			return
		}
		n := r.Duration().Milliseconds() / stride
		for i := int64(0); i <= n; i++ {
			if !yield(r.start.Add(time.Duration(i*stride) * time.Millisecond)) {
				return
			}
		}
	}
}

// Each calls fn for every instant of r.By(u) until fn returns false.
// It returns r so calls can be chained.
func (r DateRange) Each(u instant.Unit, fn func(time.Time) bool) DateRange {
	for t := range r.By(u) {
		if !fn(t) {
			break
		}
	}
	return r
}

// EachRange calls fn for every instant of r.ByRange(step) until fn
// returns false. It returns r so calls can be chained.
func (r DateRange) EachRange(step DateRange, fn func(time.Time) bool) DateRange {
	for t := range r.ByRange(step) {
		if !fn(t) {
			break
		}
	}
	return r
}
