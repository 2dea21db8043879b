package cli

import (
	"fmt"
	"strings"
)

// RangeResult is a single optional range.
type RangeResult struct {
	Found bool   `json:"found"`
	Range string `json:"range,omitempty"`
}

// String prints the range, or "none" when there is no result.
func (r RangeResult) String() string {
	if !r.Found {
		return "none"
	}
	return r.Range
}

// RangesResult is an ordered list of ranges.
type RangesResult struct {
	Ranges []string `json:"ranges"`
}

// String prints one range per line, or "none" for an empty list.
func (r RangesResult) String() string {
	if len(r.Ranges) == 0 {
		return "none"
	}
	return strings.Join(r.Ranges, "\n")
}

// BoolResult is the answer to a predicate.
type BoolResult struct {
	Value bool `json:"value"`
}

func (r BoolResult) String() string {
	return fmt.Sprintf("%t", r.Value)
}

// InstantsResult is the output of an iteration.
type InstantsResult struct {
	Instants []string `json:"instants"`
}

// String prints one instant per line. An empty iteration prints nothing.
func (r InstantsResult) String() string {
	return strings.Join(r.Instants, "\n")
}

// InfoResult describes a range.
type InfoResult struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration string `json:"duration"`
	Millis   int64  `json:"millis"`
	Center   string `json:"center"`
	Unit     string `json:"unit"`
	Diff     int64  `json:"diff"`
}

func (r InfoResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "start:    %s\n", r.Start)
	fmt.Fprintf(&b, "end:      %s\n", r.End)
	fmt.Fprintf(&b, "duration: %s\n", r.Duration)
	fmt.Fprintf(&b, "millis:   %d\n", r.Millis)
	fmt.Fprintf(&b, "center:   %s\n", r.Center)
	fmt.Fprintf(&b, "%ss: %d", r.Unit, r.Diff)
	return b.String()
}
