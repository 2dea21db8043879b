// Package instant adapts time.Time into the point-in-time capability the
// daterange algebra consumes.
//
// The algebra itself only needs ordering (Before, Equal, After), pairwise
// Min and Max, calendar-aware Add and Diff, start/end of a calendar Unit,
// a canonical text form and millisecond coercion. Everything here is a thin
// layer over the standard time package and github.com/jinzhu/now; there is
// no separate Instant type, time.Time is the instant.
//
// Key behaviors:
//   - Month and year arithmetic clamps to the last day of shorter months
//     (Jan 31 + 1 month = Feb 28/29), never overflowing into the next month.
//   - Diff truncates toward zero in the requested unit.
//   - Precision below one millisecond is not guaranteed by Millis/FromMillis.
//   - Weeks start on Sunday unless a Calendar says otherwise.
package instant
