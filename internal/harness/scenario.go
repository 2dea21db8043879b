package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a date range scenario.
// Scenarios name a few ranges, run a list of operations against them and
// check each result.
type Scenario struct {
	// Name uniquely identifies this scenario.
	// It is also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Location is the IANA zone used for zoneless timestamps.
	// Defaults to UTC.
	Location string `yaml:"location,omitempty"`

	// WeekStart is the first day of the week for "of" steps
	// (e.g., "monday"). Defaults to sunday.
	WeekStart string `yaml:"week_start,omitempty"`

	// Ranges are named ranges in "start/end" form, referenced by steps.
	Ranges map[string]string `yaml:"ranges,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single operation.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// Range is the receiver: a name from Scenario.Ranges or a literal
	// "start/end" string.
	Range string `yaml:"range,omitempty"`

	// Other is the argument range for binary operations and the step
	// range for by_range. Named or literal, like Range.
	Other string `yaml:"other,omitempty"`

	// Instant is the point argument for contains and of.
	Instant string `yaml:"instant,omitempty"`

	// Unit is the unit keyword for by, of and diff.
	Unit string `yaml:"unit,omitempty"`

	// Limit stops iteration after this many instants. Zero means no limit.
	Limit int `yaml:"limit,omitempty"`

	// Save stores a single-range result under this name for later steps.
	Save string `yaml:"save,omitempty"`

	// Expect specifies the expected result.
	// If nil, the step is only recorded in the trace.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Values is the exact expected result, in canonical text form:
	// ranges as "start/end", instants as RFC 3339, booleans and
	// integers as their literal text. An empty list expects no result.
	Values []string `yaml:"values"`

	// Error, if set, expects the step to fail with an error containing
	// this text. Values is ignored.
	Error string `yaml:"error,omitempty"`
}

// Supported step operations.
const (
	OpIntersect = "intersect"
	OpUnion     = "union"
	OpSubtract  = "subtract"
	OpOverlaps  = "overlaps"
	OpContains  = "contains"
	OpBy        = "by"
	OpByRange   = "by_range"
	OpOf        = "of"
	OpDiff      = "diff"
	OpCenter    = "center"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "step:" vs "steps:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Range and instant syntax is checked when the scenario runs.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep checks the arguments a step needs for its op.
func validateStep(index int, s *Step) error {
	if s.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if s.Limit < 0 {
		return fmt.Errorf("steps[%d]: limit must be non-negative", index)
	}

	switch s.Op {
	case OpIntersect, OpUnion, OpSubtract, OpOverlaps, OpByRange:
		if s.Range == "" || s.Other == "" {
			return fmt.Errorf("steps[%d]: range and other are required for %s", index, s.Op)
		}
	case OpContains:
		if s.Range == "" {
			return fmt.Errorf("steps[%d]: range is required for contains", index)
		}
		if (s.Other == "") == (s.Instant == "") {
			return fmt.Errorf("steps[%d]: contains needs exactly one of other or instant", index)
		}
	case OpBy:
		if s.Range == "" || s.Unit == "" {
			return fmt.Errorf("steps[%d]: range and unit are required for by", index)
		}
	case OpOf:
		if s.Instant == "" || s.Unit == "" {
			return fmt.Errorf("steps[%d]: instant and unit are required for of", index)
		}
	case OpDiff, OpCenter:
		if s.Range == "" {
			return fmt.Errorf("steps[%d]: range is required for %s", index, s.Op)
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	return nil
}
