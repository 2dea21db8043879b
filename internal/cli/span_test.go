package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/daterange/internal/testutil"
)

func TestSpanCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "month_of_instant",
			args: []string{"span", "month", "2024-02-14"},
			want: "2024-02-01T00:00:00Z/2024-02-29T23:59:59Z\n",
		},
		{
			name: "defaults_to_clock",
			args: []string{"span", "day"},
			want: "2024-02-14T00:00:00Z/2024-02-14T23:59:59Z\n",
		},
		{
			name: "short_unit",
			args: []string{"span", "h"},
			want: "2024-02-14T10:00:00Z/2024-02-14T10:59:59Z\n",
		},
		{
			name: "week_sunday_default",
			args: []string{"span", "week"},
			want: "2024-02-11T00:00:00Z/2024-02-17T23:59:59Z\n",
		},
		{
			name: "week_monday",
			args: []string{"--week-start", "mon", "span", "week"},
			want: "2024-02-12T00:00:00Z/2024-02-18T23:59:59Z\n",
		},
		{
			name: "clock_in_location",
			args: []string{"--location", "America/New_York", "span", "day"},
			want: "2024-02-14T00:00:00-05:00/2024-02-14T23:59:59-05:00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestSpanCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"unknown_unit", []string{"span", "fortnight"}, "UNSUPPORTED_UNIT"},
		{"non_calendar_unit", []string{"span", "ms"}, "UNSUPPORTED_UNIT"},
		{"bad_instant", []string{"span", "day", "tomorrow"}, "INVALID_INSTANT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Equal(t, tt.wantCode, ErrorCode(err))
		})
	}
}

func TestSpanCommand_FollowsClock(t *testing.T) {
	clock := testutil.NewFixedClock(testNow)
	spanDay := func() string {
		t.Helper()
		stdout := &bytes.Buffer{}
		cmd := NewRootCommandWith(&RootOptions{
			Clock: clock,
			IDs:   testutil.NewFixedIDGenerator("test-trace-001"),
		})
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"span", "day"})
		require.NoError(t, cmd.Execute())
		return stdout.String()
	}

	assert.Equal(t, "2024-02-14T00:00:00Z/2024-02-14T23:59:59Z\n", spanDay())

	clock.Advance(14 * time.Hour)
	assert.Equal(t, "2024-02-15T00:00:00Z/2024-02-15T23:59:59Z\n", spanDay())

	clock.Set(time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2024-12-31T00:00:00Z/2024-12-31T23:59:59Z\n", spanDay())
}
