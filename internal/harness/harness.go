package harness

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/daterange"
	"github.com/roach88/daterange/instant"
)

// Runner executes scenarios against the date range algebra.
type Runner struct {
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for step tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner. Logs are discarded unless WithLogger is given.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a scenario with a default Runner.
func Run(scenario *Scenario) (*Result, error) {
	return NewRunner().Run(context.Background(), scenario)
}

// env is the per-scenario execution state.
type env struct {
	loc    *time.Location
	cal    instant.Calendar
	ranges map[string]daterange.DateRange
}

// Run executes every step of the scenario in order.
//
// Errors returned by Run mean the scenario itself could not be set up
// (unknown location, malformed named range). Step failures and
// expectation mismatches are reported in the Result.
func (r *Runner) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	e, err := newEnv(scenario)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("running scenario",
		"name", scenario.Name,
		"location", e.loc.String(),
		"steps", len(scenario.Steps))

	result := NewResult()
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		args, values, saved, stepErr := e.execute(step)
		event := result.AddTrace(step.Op, args, values, stepErr)

		r.logger.Debug("step",
			"seq", event.Seq,
			"op", step.Op,
			"result", len(values),
			"error", event.Error)

		if step.Save != "" && stepErr == nil {
			if saved == nil {
				result.AddError(fmt.Sprintf("steps[%d]: %s: cannot save %q: result is not a single range", i, step.Op, step.Save))
			} else {
				e.ranges[step.Save] = *saved
			}
		}

		for _, msg := range checkExpect(step.Expect, values, stepErr) {
			result.AddError(fmt.Sprintf("steps[%d]: %s: %s", i, step.Op, msg))
		}
	}

	return result, nil
}

func newEnv(scenario *Scenario) (*env, error) {
	e := &env{
		loc:    time.UTC,
		cal:    instant.DefaultCalendar,
		ranges: make(map[string]daterange.DateRange, len(scenario.Ranges)),
	}

	if scenario.Location != "" {
		loc, err := time.LoadLocation(scenario.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid location %q: %w", scenario.Location, err)
		}
		e.loc = loc
	}

	if scenario.WeekStart != "" {
		day, err := ParseWeekday(scenario.WeekStart)
		if err != nil {
			return nil, err
		}
		e.cal = instant.Calendar{WeekStart: day}
	}

	for name, text := range scenario.Ranges {
		rng, err := daterange.ParseIn(text, e.loc)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", name, err)
		}
		e.ranges[name] = rng
	}

	return e, nil
}

// ParseWeekday resolves an English weekday name, full or three-letter,
// case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// resolve looks up a named range, falling back to parsing ref as a
// literal "start/end" range.
func (e *env) resolve(ref string) (daterange.DateRange, error) {
	if rng, ok := e.ranges[ref]; ok {
		return rng, nil
	}
	return daterange.ParseIn(ref, e.loc)
}

// execute runs one step. It returns the trace arguments, the result in
// canonical text form and, for single-range results, the range itself.
func (e *env) execute(step Step) (args, values []string, saved *daterange.DateRange, err error) {
	switch step.Op {
	case OpIntersect, OpUnion:
		a, b, err := e.pair(step)
		if err != nil {
			return nil, nil, nil, err
		}
		args = []string{a.String(), b.String()}
		var (
			out daterange.DateRange
			ok  bool
		)
		if step.Op == OpIntersect {
			out, ok = a.Intersect(b)
		} else {
			out, ok = a.Add(b)
		}
		if !ok {
			return args, nil, nil, nil
		}
		return args, []string{out.String()}, &out, nil

	case OpSubtract:
		a, b, err := e.pair(step)
		if err != nil {
			return nil, nil, nil, err
		}
		args = []string{a.String(), b.String()}
		pieces := a.Subtract(b)
		values = make([]string, len(pieces))
		for i, p := range pieces {
			values[i] = p.String()
		}
		if len(pieces) == 1 {
			saved = &pieces[0]
		}
		return args, values, saved, nil

	case OpOverlaps:
		a, b, err := e.pair(step)
		if err != nil {
			return nil, nil, nil, err
		}
		return []string{a.String(), b.String()}, []string{strconv.FormatBool(a.Overlaps(b))}, nil, nil

	case OpContains:
		a, err := e.resolve(step.Range)
		if err != nil {
			return nil, nil, nil, err
		}
		if step.Instant != "" {
			t, err := instant.ParseIn(step.Instant, e.loc)
			if err != nil {
				return nil, nil, nil, err
			}
			return []string{a.String(), instant.Format(t)}, []string{strconv.FormatBool(a.Contains(t))}, nil, nil
		}
		b, err := e.resolve(step.Other)
		if err != nil {
			return nil, nil, nil, err
		}
		return []string{a.String(), b.String()}, []string{strconv.FormatBool(a.ContainsRange(b))}, nil, nil

	case OpBy:
		a, err := e.resolve(step.Range)
		if err != nil {
			return nil, nil, nil, err
		}
		u, err := instant.ParseUnit(step.Unit)
		if err != nil {
			return nil, nil, nil, err
		}
		args = withLimit([]string{a.String(), u.String()}, step.Limit)
		return args, collect(a.By(u), step.Limit), nil, nil

	case OpByRange:
		a, b, err := e.pair(step)
		if err != nil {
			return nil, nil, nil, err
		}
		args = withLimit([]string{a.String(), b.String()}, step.Limit)
		return args, collect(a.ByRange(b), step.Limit), nil, nil

	case OpOf:
		t, err := instant.ParseIn(step.Instant, e.loc)
		if err != nil {
			return nil, nil, nil, err
		}
		u, err := instant.ParseUnit(step.Unit)
		if err != nil {
			return nil, nil, nil, err
		}
		args = []string{instant.Format(t), u.String()}
		out, err := daterange.OfCalendar(t, u, e.cal)
		if err != nil {
			return args, nil, nil, err
		}
		return args, []string{out.String()}, &out, nil

	case OpDiff:
		a, err := e.resolve(step.Range)
		if err != nil {
			return nil, nil, nil, err
		}
		u := instant.Millisecond
		if step.Unit != "" {
			if u, err = instant.ParseUnit(step.Unit); err != nil {
				return nil, nil, nil, err
			}
		}
		args = []string{a.String(), u.String()}
		n, err := a.Diff(u)
		if err != nil {
			return args, nil, nil, err
		}
		return args, []string{strconv.FormatInt(n, 10)}, nil, nil

	case OpCenter:
		a, err := e.resolve(step.Range)
		if err != nil {
			return nil, nil, nil, err
		}
		return []string{a.String()}, []string{instant.Format(a.Center())}, nil, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown op %q", step.Op)
}

func (e *env) pair(step Step) (daterange.DateRange, daterange.DateRange, error) {
	a, err := e.resolve(step.Range)
	if err != nil {
		return daterange.DateRange{}, daterange.DateRange{}, err
	}
	b, err := e.resolve(step.Other)
	if err != nil {
		return daterange.DateRange{}, daterange.DateRange{}, err
	}
	return a, b, nil
}

func withLimit(args []string, limit int) []string {
	if limit > 0 {
		args = append(args, "limit="+strconv.Itoa(limit))
	}
	return args
}

// collect formats the instants of seq, stopping after limit values when
// limit is positive.
func collect(seq iter.Seq[time.Time], limit int) []string {
	values := []string{}
	for t := range seq {
		values = append(values, instant.Format(t))
		if limit > 0 && len(values) >= limit {
			break
		}
	}
	return values
}

// checkExpect compares a step outcome against its expect clause.
func checkExpect(expect *ExpectClause, values []string, err error) []string {
	if expect == nil {
		if err != nil {
			return []string{fmt.Sprintf("unexpected error: %v", err)}
		}
		return nil
	}

	if expect.Error != "" {
		if err == nil {
			return []string{fmt.Sprintf("expected error containing %q, got none", expect.Error)}
		}
		if !strings.Contains(err.Error(), expect.Error) {
			return []string{fmt.Sprintf("expected error containing %q, got %q", expect.Error, err.Error())}
		}
		return nil
	}

	if err != nil {
		return []string{fmt.Sprintf("unexpected error: %v", err)}
	}

	want := expect.Values
	if want == nil {
		want = []string{}
	}
	if values == nil {
		values = []string{}
	}
	if !slices.Equal(want, values) {
		return []string{fmt.Sprintf("expected %v, got %v", want, values)}
	}
	return nil
}
