package cli

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/daterange/internal/testutil"
)

// testNow is the fixed "now" used by command tests: Wednesday 14 Feb 2024.
var testNow = time.Date(2024, time.February, 14, 10, 30, 0, 0, time.UTC)

// newTestOptions returns root options with a fixed clock and trace ID.
func newTestOptions() *RootOptions {
	return &RootOptions{
		Clock: testutil.NewFixedClock(testNow),
		IDs:   testutil.NewFixedIDGenerator("test-trace-001"),
	}
}

// execute runs the full command tree with args and captures its output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommandWith(newTestOptions())
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "daterange", cmd.Use)
	assert.Contains(t, cmd.Long, "start/end")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"intersect", "union", "subtract", "overlaps", "contains", "span", "iter", "info", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	locationFlag := cmd.PersistentFlags().Lookup("location")
	require.NotNil(t, locationFlag)
	assert.Equal(t, "UTC", locationFlag.DefValue)

	layoutFlag := cmd.PersistentFlags().Lookup("layout")
	require.NotNil(t, layoutFlag)
	assert.Equal(t, time.RFC3339, layoutFlag.DefValue)

	weekFlag := cmd.PersistentFlags().Lookup("week-start")
	require.NotNil(t, weekFlag)
	assert.Equal(t, "sunday", weekFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestIterCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	iterCmd, _, err := cmd.Find([]string{"iter"})
	require.NoError(t, err)

	for _, name := range []string{"by", "step", "limit"} {
		assert.NotNil(t, iterCmd.Flags().Lookup(name), "flag %s", name)
	}
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	jobsFlag := testCmd.Flags().Lookup("jobs")
	require.NotNil(t, jobsFlag)
	assert.Equal(t, "j", jobsFlag.Shorthand)
	assert.Equal(t, "4", jobsFlag.DefValue)
	assert.NotNil(t, testCmd.Flags().Lookup("update"))
	assert.NotNil(t, testCmd.Flags().Lookup("filter"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "overlaps", "--format", "xml", "2024-01-01/2024-01-02", "2024-01-02/2024-01-03")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidLocation(t *testing.T) {
	_, _, err := execute(t, "span", "day", "--location", "Nowhere/Special")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid location "Nowhere/Special"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidWeekStart(t *testing.T) {
	_, _, err := execute(t, "span", "week", "--week-start", "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid week start")
}

func TestVerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "overlaps", "2024-01-01/2024-01-05", "2024-01-05/2024-01-09")
	require.NoError(t, err)
	assert.Equal(t, "true\n", stdout)
	assert.Contains(t, stderr, "options resolved")
	assert.Contains(t, stderr, "parsed range")
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "overlaps", "2024-01-01/2024-01-05", "2024-01-05/2024-01-09")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
