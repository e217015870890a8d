//go:build windows

package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedExecutable(path string, err error) func() (string, error) {
	return func() (string, error) {
		return path, err
	}
}

func TestHandleBasedCommandLine(t *testing.T) {
	cases := []struct {
		name       string
		executable func() (string, error)
		want       string
	}{
		{"backslash", fixedExecutable(`C:\Games\rsplaunch.exe`, nil), `"C:\Games\woof.exe" "@C:\Temp\woof.rsp"`},
		{"slash", fixedExecutable(`C:/Games/rsplaunch.exe`, nil), `"C:/Games/woof.exe" "@C:\Temp\woof.rsp"`},
		{"no separator", fixedExecutable(`rsplaunch.exe`, nil), `"woof.exe" "@C:\Temp\woof.rsp"`},
		{"error", fixedExecutable(`C:\Games\rsplaunch.exe`, errors.New("no module")), `"woof.exe" "@C:\Temp\woof.rsp"`},
		{"nil", nil, `"woof.exe" "@C:\Temp\woof.rsp"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := HandleBased{Executable: tc.executable}
			assert.Equal(t, tc.want, h.CommandLine("woof.exe", `@C:\Temp\woof.rsp`))
		})
	}
}

func TestHandleBasedMissingCompanion(t *testing.T) {
	h := HandleBased{Executable: fixedExecutable(filepath.Join(t.TempDir(), "rsplaunch.exe"), nil)}
	assert.Equal(t, ExitFailure, h.Spawn("missing.exe", "@args.rsp"))
}

// TestCompanionExit stands in for the companion: the test binary is started
// again by HandleBased and exits with RSPLAUNCH_COMPANION_EXIT.
func TestCompanionExit(t *testing.T) {
	code := os.Getenv("RSPLAUNCH_COMPANION_EXIT")
	if code == "" {
		t.Skip("only runs as a companion")
	}
	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	os.Exit(n)
}

func TestHandleBasedReturnsExitCode(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)
	h := HandleBased{Executable: os.Executable}

	for _, code := range []int{0, 1, 7, 42} {
		t.Setenv("RSPLAUNCH_COMPANION_EXIT", strconv.Itoa(code))
		assert.Equal(t, code, h.Spawn(filepath.Base(exe), "-test.run=^TestCompanionExit$"), "exit code %d", code)
	}
}
