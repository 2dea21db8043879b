package daterange

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/daterange/instant"
)

// Separator splits the two halves of the "start/end" text form.
const Separator = "/"

// Source is an input shape From can turn into a DateRange. The
// implementations are Endpoints, Sequence and Interval.
type Source interface {
	endpoints() (start, end any, err error)
}

// Endpoints is a pair of endpoint-like values. Each may be anything
// instant.Coerce accepts.
type Endpoints struct {
	Start any
	End   any
}

func (e Endpoints) endpoints() (any, any, error) {
	return e.Start, e.End, nil
}

// Sequence is an ordered list of exactly two endpoint-like values, as
// decoded from a JSON or YAML array.
type Sequence []any

func (s Sequence) endpoints() (any, any, error) {
	if len(s) != 2 {
		return nil, nil, malformed(fmt.Sprintf("%v", []any(s)),
			fmt.Sprintf("sequence must have 2 elements, got %d", len(s)))
	}
	return s[0], s[1], nil
}

// Interval is the ISO 8601 text form "start/end".
type Interval string

func (i Interval) endpoints() (any, any, error) {
	v := norm.NFKC.String(string(i))
	if strings.Count(v, Separator) != 1 {
		return nil, nil, malformed(string(i), "expected exactly one \"/\" between start and end")
	}
	start, end, _ := strings.Cut(v, Separator)
	return start, end, nil
}

// From builds a DateRange from any Source, with zoneless text and epoch
// milliseconds read as UTC.
//
// Shape problems return an *Error. Endpoints that are not valid instants
// return the instant package's error as is.
func From(src Source) (DateRange, error) {
	return FromIn(src, time.UTC)
}

// FromIn is From with zoneless text and epoch milliseconds read in loc.
func FromIn(src Source, loc *time.Location) (DateRange, error) {
	a, b, err := src.endpoints()
	if err != nil {
		return DateRange{}, err
	}
	start, err := instant.CoerceIn(a, loc)
	if err != nil {
		return DateRange{}, err
	}
	end, err := instant.CoerceIn(b, loc)
	if err != nil {
		return DateRange{}, err
	}
	return New(start, end), nil
}

// Parse parses the "start/end" form produced by String.
func Parse(s string) (DateRange, error) {
	return From(Interval(s))
}

// ParseIn parses the "start/end" form, reading zoneless endpoints in loc.
func ParseIn(s string, loc *time.Location) (DateRange, error) {
	return FromIn(Interval(s), loc)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level variables.
func MustParse(s string) DateRange {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Of returns the calendar unit u that contains ref, from its first to its
// last instant. Weeks start on Sunday.
func Of(ref time.Time, u instant.Unit) (DateRange, error) {
	return OfCalendar(ref, u, instant.DefaultCalendar)
}

// OfCalendar is Of with the week start taken from cal.
func OfCalendar(ref time.Time, u instant.Unit, cal instant.Calendar) (DateRange, error) {
	if !u.IsCalendar() {
		return DateRange{}, &Error{
			Code:    ErrCodeUnsupportedUnit,
			Message: "unit has no calendar start and end",
			Input:   string(u),
		}
	}
	start, err := cal.StartOf(ref, u)
	if err != nil {
		return DateRange{}, err
	}
	end, err := cal.EndOf(ref, u)
	if err != nil {
		return DateRange{}, err
	}
	return New(start, end), nil
}
