package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedIDGenerator("trace-1")
	assert.Equal(t, "trace-1", gen.Generate())
	assert.Equal(t, "trace-1", gen.Generate())
}

func TestFixedIDGenerator_EmptyDefaults(t *testing.T) {
	gen := NewFixedIDGenerator("")
	assert.Equal(t, "test-trace-default", gen.Generate())
}
