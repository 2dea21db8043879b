package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGoldie returns a goldie instance reading testdata/golden.
// Regenerate with: go test ./internal/cli -update
func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestInfoCommand_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"info_text", []string{"info", "2024-01-01/2024-01-10"}},
		{"info_hours_text", []string{"info", "2024-01-01T00:00/2024-01-02T12:00", "--unit", "h"}},
		{"info_json", []string{"--format", "json", "info", "2024-01-01/2024-01-10", "-u", "week"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestInfoCommand_DiffTruncates(t *testing.T) {
	stdout, _, err := execute(t, "info", "2024-01-01T00:00/2024-01-02T12:00")
	require.NoError(t, err)
	assert.Contains(t, stdout, "days: 1\n")
}

func TestInfoCommand_UnknownUnit(t *testing.T) {
	_, _, err := execute(t, "info", "2024-01-01/2024-01-10", "--unit", "fortnight")
	require.Error(t, err)
	assert.Equal(t, "UNSUPPORTED_UNIT", ErrorCode(err))
}
