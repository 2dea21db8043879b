package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/daterange/instant"
)

// InfoOptions holds flags for the info command.
type InfoOptions struct {
	*RootOptions
	Unit string
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InfoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "info <range>",
		Short: "Describe a range",
		Long: `Print the endpoints, length, midpoint and the length in --unit of a range.

The unit length is truncated toward zero, so a range of 36 hours is 1 day.

Example:
  daterange info 2024-01-01/2024-01-10 --unit day`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := opts.formatter(cmd)

			r, err := opts.parseRange(args[0])
			if err != nil {
				return f.Fail(err)
			}
			u, err := instant.ParseUnit(opts.Unit)
			if err != nil {
				return f.Fail(err)
			}
			diff, err := r.Diff(u)
			if err != nil {
				return f.Fail(err)
			}

			return f.Success(InfoResult{
				Start:    opts.formatInstant(r.Start()),
				End:      opts.formatInstant(r.End()),
				Duration: r.Duration().String(),
				Millis:   r.Millis(),
				Center:   opts.formatInstant(r.Center()),
				Unit:     u.String(),
				Diff:     diff,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Unit, "unit", "u", "day", "unit for the length")

	return cmd
}
