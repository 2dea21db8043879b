package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/daterange"
	"github.com/roach88/daterange/instant"
)

// NewSpanCommand creates the span command.
func NewSpanCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "span <unit> [instant]",
		Short: "Print the calendar unit containing an instant",
		Long: `Print the year, month, week, day, hour, minute or second containing an
instant, from its first to its last moment. The instant defaults to now.

Weeks start on the day given by --week-start.

Examples:
  daterange span month 2024-02-14
  daterange span week --week-start monday`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)

			u, err := instant.ParseUnit(args[0])
			if err != nil {
				return f.Fail(err)
			}

			ref := rootOpts.now()
			if len(args) == 2 {
				if ref, err = rootOpts.parseInstant(args[1]); err != nil {
					return f.Fail(err)
				}
			}

			r, err := daterange.OfCalendar(ref, u, rootOpts.cal)
			if err != nil {
				return f.Fail(err)
			}
			return f.Success(rootOpts.rangeResult(r, true))
		},
	}
}
