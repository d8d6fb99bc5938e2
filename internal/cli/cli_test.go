package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/agentdesk/internal/cli"
	"github.com/rshade/agentdesk/internal/config"
)

const testDirectory = `agents:
  - id: a1
    name: Alice Smith
    dial_number: "1001"
  - id: a2
    name: Bob Jones
  - id: a3
    name: ""
queues:
  - id: q1
    name: Sales
  - id: q2
    name: Support
  - id: q3
    name: Billing
entry_points:
  - id: ep1
    name: Main Line
  - id: ep2
    name: After Hours
address_book:
  - id: d1
    name: Carol
    number: "+14155550100"
  - id: d2
    name: Dave
    number: "+14155550111"
wrapup_reasons:
  - id: w1
    name: Resolved
    default: true
  - id: w2
    name: Escalated
outdial_ani:
  - number: "+18005550199"
    name: Main
`

// setupCLITest isolates AGENTDESK_HOME, writes the test directory file into
// it and disables the page cache. It returns the home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvDirectory, "")
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv("AGENTDESK_CACHE_ENABLED", "false")
	t.Setenv("AGENTDESK_CACHE_DIR", "")
	require.NoError(t, os.WriteFile(filepath.Join(home, "directory.yaml"), []byte(testDirectory), 0o600))
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
		config.CloseLogFile()
	})
	return home
}

// execute runs the root command with args and returns the combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
