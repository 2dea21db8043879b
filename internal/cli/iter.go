package cli

import (
	"iter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/daterange/instant"
)

// IterOptions holds flags for the iter command.
type IterOptions struct {
	*RootOptions
	By    string // calendar unit
	Step  string // range whose length is the stride
	Limit int    // stop after this many instants (0 = all)
}

// NewIterCommand creates the iter command.
func NewIterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "iter <range>",
		Short: "List instants inside a range",
		Long: `List the instants of a range, one per line, starting at its start.

With --by the cursor advances one calendar unit at a time; month steps
from the 31st clamp to the end of shorter months and continue from there.
With --step the stride is the length of the given range, and a
zero-length step lists nothing.

Examples:
  daterange iter 2024-01-01/2024-01-10 --by day
  daterange iter 2024-01-01/2024-01-02 --step 2024-01-01T00:00/2024-01-01T06:00
  daterange iter 2024-01-01/2024-12-31 --by week --limit 4`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIter(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "", "calendar unit to step by")
	cmd.Flags().StringVar(&opts.Step, "step", "", "range whose length is the step")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "stop after n instants (0 = no limit)")
	cmd.MarkFlagsMutuallyExclusive("by", "step")
	cmd.MarkFlagsOneRequired("by", "step")

	return cmd
}

func runIter(opts *IterOptions, cmd *cobra.Command, arg string) error {
	f := opts.formatter(cmd)

	if opts.Limit < 0 {
		return f.Fail(NewExitError(ExitCommandError, "--limit must be non-negative"))
	}

	r, err := opts.parseRange(arg)
	if err != nil {
		return f.Fail(err)
	}

	var seq iter.Seq[time.Time]
	if opts.By != "" {
		u, err := instant.ParseUnit(opts.By)
		if err != nil {
			return f.Fail(err)
		}
		seq = r.By(u)
	} else {
		step, err := opts.parseRange(opts.Step)
		if err != nil {
			return f.Fail(err)
		}
		seq = r.ByRange(step)
	}

	out := InstantsResult{Instants: []string{}}
	for t := range seq {
		out.Instants = append(out.Instants, opts.formatInstant(t))
		if opts.Limit > 0 && len(out.Instants) >= opts.Limit {
			break
		}
	}
	opts.log().Debug("iteration done", "range", r.String(), "count", len(out.Instants))

	return f.Success(out)
}
