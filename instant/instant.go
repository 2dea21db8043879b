package instant

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Layout is the canonical text form produced by Format.
const Layout = time.RFC3339

// layouts are tried in order by Parse. Layouts without a zone are
// interpreted in the location handed to ParseIn.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

var errEmpty = errors.New("empty input")

// Parse parses s as an ISO 8601 style timestamp. Timestamps without a
// zone offset are taken to be UTC.
func Parse(s string) (time.Time, error) {
	return ParseIn(s, time.UTC)
}

// ParseIn parses s like Parse, resolving zoneless timestamps in loc.
//
// The input is NFKC-normalized first, so full-width digits and
// punctuation are accepted.
func ParseIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	v := strings.TrimSpace(norm.NFKC.String(s))
	if v == "" {
		return time.Time{}, invalidInstant(s, errEmpty)
	}
	var first error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, v, loc)
		if err == nil {
			return t, nil
		}
		if first == nil {
			first = err
		}
	}
	return time.Time{}, invalidInstant(s, first)
}

// Coerce turns an endpoint-like value into a time.Time.
//
// Accepted inputs:
//   - time.Time and non-nil *time.Time, returned as is
//   - string, parsed with Parse
//   - int64 and int, milliseconds since the Unix epoch (UTC)
//
// Anything else yields an ErrCodeInvalidInstant error.
func Coerce(v any) (time.Time, error) {
	return CoerceIn(v, time.UTC)
}

// CoerceIn is Coerce with zoneless strings and epoch milliseconds
// resolved in loc.
func CoerceIn(v any, loc *time.Location) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, invalidInstant(v, errors.New("nil time"))
		}
		return *val, nil
	case string:
		return ParseIn(val, loc)
	case int64:
		return FromMillis(val, loc), nil
	case int:
		return FromMillis(int64(val), loc), nil
	default:
		return time.Time{}, invalidInstant(v, errors.New("unsupported type"))
	}
}

// Format returns the canonical RFC 3339 text of t.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Millis returns t as milliseconds since the Unix epoch.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis returns the instant ms milliseconds after the Unix epoch,
// expressed in loc (UTC when loc is nil).
func FromMillis(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.UnixMilli(ms).In(loc)
}

// Min returns the earlier of a and b, preferring a when they are equal.
func Min(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b, preferring a when they are equal.
func Max(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// BeforeOrEqual reports whether a is before or the same instant as b.
func BeforeOrEqual(a, b time.Time) bool {
	return !a.After(b)
}

// AfterOrEqual reports whether a is after or the same instant as b.
func AfterOrEqual(a, b time.Time) bool {
	return !a.Before(b)
}
