// Package daterange provides a closed interval between two instants and
// the set algebra over it.
//
// A DateRange always satisfies Start <= End: constructors swap reversed
// endpoints silently rather than failing. Both ends are inclusive, so a
// range that ends exactly where another begins overlaps it in that single
// instant, and a zero-length range (Start == End) is a legal value that
// every operation handles.
//
// Operations:
//   - Contains / ContainsRange / Within: inclusive membership
//   - Intersect / Overlaps: the shared part, if any
//   - Add: union of two overlapping ranges
//   - Subtract: what remains after removing another range (0, 1 or 2 pieces)
//   - By / ByRange / Each / EachRange: finite, restartable iteration
//
// DateRange is an immutable value type. Operations never modify their
// receiver, so values may be shared between goroutines freely.
//
// Instant handling (parsing, calendar arithmetic, formatting) lives in the
// instant subpackage.
package daterange
