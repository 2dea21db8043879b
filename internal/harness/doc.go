// Package harness runs YAML scenarios against the date range algebra and
// records a deterministic trace of every step.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: month_overlap
//	description: "What this scenario validates"
//	location: UTC          # optional, zone for zoneless timestamps
//	week_start: monday     # optional, first day of the week for "of"
//	ranges:
//	  jan: 2024-01-01/2024-01-31
//	  mid: 2024-01-15/2024-02-15
//	steps:
//	  - op: intersect
//	    range: jan
//	    other: mid
//	    save: overlap
//	    expect:
//	      values: ["2024-01-15T00:00:00Z/2024-01-31T00:00:00Z"]
//	  - op: by
//	    range: overlap
//	    unit: week
//	    limit: 2
//
// Steps refer to ranges by name or by literal "start/end" text. A step
// with a save key stores its single-range result for later steps.
//
// # Operations
//
//   - intersect, union, subtract, overlaps: range and other
//   - contains: range and one of other or instant
//   - by: range and unit, optional limit
//   - by_range: range and other (the step), optional limit
//   - of: instant and unit
//   - diff: range and optional unit (milliseconds by default)
//   - center: range
//
// # Golden Traces
//
// Every step is recorded as a TraceEvent with its canonical arguments and
// results. RunWithGolden compares the trace against {dir}/{name}.golden
// using goldie; pass -update to rewrite.
package harness
