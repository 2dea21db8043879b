package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/daterange"
	"github.com/roach88/daterange/instant"
	"github.com/roach88/daterange/internal/harness"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Config    string // path to a TOML file
	Location  string // IANA zone for zoneless input
	Layout    string // Go time layout for printed instants
	WeekStart string // first day of the week for span

	// Clock supplies "now". Defaults to SystemClock.
	Clock Clock

	// IDs generates JSON trace IDs. Defaults to UUIDv7Generator.
	IDs IDGenerator

	loc    *time.Location
	cal    instant.Calendar
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the daterange CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWith(&RootOptions{
		Clock: SystemClock{},
		IDs:   UUIDv7Generator{},
	})
}

// NewRootCommandWith creates the root command around caller-supplied
// options, so tests can inject a fixed clock and ID generator.
func NewRootCommandWith(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daterange",
		Short: "daterange - closed date range algebra",
		Long: `Intersect, merge, subtract and iterate closed date ranges.

Ranges are written as "start/end" with ISO 8601 endpoints, for example
2024-01-01/2024-01-31 or 2024-01-01T09:00:00+01:00/2024-01-01T17:00:00+01:00.
Reversed endpoints are accepted and swapped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "TOML configuration file")
	cmd.PersistentFlags().StringVar(&opts.Location, "location", "UTC", "time zone for timestamps without an offset")
	cmd.PersistentFlags().StringVar(&opts.Layout, "layout", time.RFC3339, "Go time layout for printed instants")
	cmd.PersistentFlags().StringVar(&opts.WeekStart, "week-start", "sunday", "first day of the week")

	// Add subcommands
	cmd.AddCommand(NewIntersectCommand(opts))
	cmd.AddCommand(NewUnionCommand(opts))
	cmd.AddCommand(NewSubtractCommand(opts))
	cmd.AddCommand(NewOverlapsCommand(opts))
	cmd.AddCommand(NewContainsCommand(opts))
	cmd.AddCommand(NewSpanCommand(opts))
	cmd.AddCommand(NewIterCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// setup merges the configuration file into the flags and resolves the
// location, calendar and logger used by every command.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.Config != "" {
		cfg, err := LoadConfig(o.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg.apply(o, cmd.Flags())
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	loc, err := time.LoadLocation(o.Location)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid location %q", o.Location), err)
	}
	o.loc = loc

	day, err := harness.ParseWeekday(o.WeekStart)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid week start", err)
	}
	o.cal = instant.Calendar{WeekStart: day}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	o.logger.Debug("options resolved",
		"location", loc.String(),
		"week_start", day.String(),
		"format", o.Format)

	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// location returns the resolved zone, UTC before setup has run.
func (o *RootOptions) location() *time.Location {
	if o.loc == nil {
		return time.UTC
	}
	return o.loc
}

func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

func (o *RootOptions) now() time.Time {
	if o.Clock == nil {
		return time.Now().In(o.location())
	}
	return o.Clock.Now().In(o.location())
}

// parseRange reads a "start/end" argument in the configured location.
func (o *RootOptions) parseRange(arg string) (daterange.DateRange, error) {
	r, err := daterange.ParseIn(arg, o.location())
	if err != nil {
		return daterange.DateRange{}, err
	}
	o.log().Debug("parsed range", "input", arg, "range", r.String())
	return r, nil
}

// parseInstant reads a single timestamp argument in the configured location.
func (o *RootOptions) parseInstant(arg string) (time.Time, error) {
	return instant.ParseIn(arg, o.location())
}

// formatInstant prints t with the configured layout.
func (o *RootOptions) formatInstant(t time.Time) string {
	layout := o.Layout
	if layout == "" {
		layout = instant.Layout
	}
	return t.Format(layout)
}

// formatRange prints r as "start/end" with the configured layout.
func (o *RootOptions) formatRange(r daterange.DateRange) string {
	return o.formatInstant(r.Start()) + daterange.Separator + o.formatInstant(r.End())
}

// formatter builds the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		IDs:       o.IDs,
	}
}
