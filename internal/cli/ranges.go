package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/daterange"
)

// NewIntersectCommand creates the intersect command.
func NewIntersectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <range> <range>",
		Short: "Print the part two ranges share",
		Long: `Print the part two ranges share, or "none" when they are disjoint.

Ranges are closed, so ranges that touch intersect in a single instant.

Example:
  daterange intersect 2024-01-01/2024-01-10 2024-01-05/2024-01-15`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(rootOpts, cmd, args, func(a, b daterange.DateRange) any {
				r, ok := a.Intersect(b)
				return rootOpts.rangeResult(r, ok)
			})
		},
	}
}

// NewUnionCommand creates the union command.
func NewUnionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "union <range> <range>",
		Short: "Merge two overlapping ranges",
		Long: `Merge two ranges into the smallest range covering both.

Disjoint ranges are never merged and print "none".

Example:
  daterange union 2024-01-01/2024-01-10 2024-01-05/2024-01-15`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(rootOpts, cmd, args, func(a, b daterange.DateRange) any {
				r, ok := a.Add(b)
				return rootOpts.rangeResult(r, ok)
			})
		},
	}
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subtract <range> <range>",
		Short: "Print what remains of the first range after removing the second",
		Long: `Print the zero, one or two pieces of the first range not covered by the
second, one per line. The pieces keep the shared boundary instants.

Example:
  daterange subtract 2024-01-01/2024-01-10 2024-01-03/2024-01-05`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(rootOpts, cmd, args, func(a, b daterange.DateRange) any {
				pieces := a.Subtract(b)
				out := RangesResult{Ranges: make([]string, len(pieces))}
				for i, p := range pieces {
					out.Ranges[i] = rootOpts.formatRange(p)
				}
				return out
			})
		},
	}
}

// NewOverlapsCommand creates the overlaps command.
func NewOverlapsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps <range> <range>",
		Short: "Report whether two ranges share an instant",
		Long: `Print true when two ranges share at least one instant.

Example:
  daterange overlaps 2024-01-01/2024-01-05 2024-01-05/2024-01-09`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(rootOpts, cmd, args, func(a, b daterange.DateRange) any {
				return BoolResult{Value: a.Overlaps(b)}
			})
		},
	}
}

// NewContainsCommand creates the contains command.
func NewContainsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <range> <instant|range>",
		Short: "Report whether a range contains an instant or another range",
		Long: `Report whether a range contains an instant or another range.

The second argument is read as a range when it contains "/", and as an
instant otherwise. Both ends of the range are included.

Examples:
  daterange contains 2024-01-01/2024-01-10 2024-01-10
  daterange contains 2024-01-01/2024-01-10 2024-01-02/2024-01-03`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			r, err := rootOpts.parseRange(args[0])
			if err != nil {
				return f.Fail(err)
			}

			if strings.Contains(args[1], daterange.Separator) {
				o, err := rootOpts.parseRange(args[1])
				if err != nil {
					return f.Fail(err)
				}
				return f.Success(BoolResult{Value: r.ContainsRange(o)})
			}

			t, err := rootOpts.parseInstant(args[1])
			if err != nil {
				return f.Fail(err)
			}
			return f.Success(BoolResult{Value: r.Contains(t)})
		},
	}
}

// runBinary parses two range arguments, applies op and prints its result.
func runBinary(opts *RootOptions, cmd *cobra.Command, args []string, op func(a, b daterange.DateRange) any) error {
	f := opts.formatter(cmd)

	a, err := opts.parseRange(args[0])
	if err != nil {
		return f.Fail(err)
	}
	b, err := opts.parseRange(args[1])
	if err != nil {
		return f.Fail(err)
	}

	return f.Success(op(a, b))
}

func (o *RootOptions) rangeResult(r daterange.DateRange, ok bool) RangeResult {
	if !ok {
		return RangeResult{}
	}
	return RangeResult{Found: true, Range: o.formatRange(r)}
}
