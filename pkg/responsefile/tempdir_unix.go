//go:build !windows

package responsefile

import "os"

// TempDir returns $TMPDIR, or /tmp when it is not set.
func TempDir() string {
	if dir := os.Getenv("TMPDIR"); dir != "" {
		return dir
	}
	return "/tmp"
}
