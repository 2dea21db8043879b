package harness

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq    int      `json:"seq"`
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Result []string `json:"result"`
	Error  string   `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success.
	// True if every expect clause matched.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	// Used for golden comparison.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step to the trace, numbering it from 1.
func (r *Result) AddTrace(op string, args, result []string, err error) TraceEvent {
	event := TraceEvent{
		Seq:    len(r.Trace) + 1,
		Op:     op,
		Args:   nonNil(args),
		Result: nonNil(result),
	}
	if err != nil {
		event.Error = err.Error()
	}
	r.Trace = append(r.Trace, event)
	return event
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
