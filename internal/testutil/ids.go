package testutil

// FixedIDGenerator generates the same trace ID every time.
//
// The CLI stamps every JSON response with a trace ID. Using a fixed
// generator makes that output reproducible for golden comparison.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a new fixed trace ID generator.
//
// If id is empty, Generate() returns "test-trace-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-trace-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed trace ID.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
