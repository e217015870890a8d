//go:build windows

package responsefile

import "os"

// TempDir returns %TEMP%, or the current directory when it is not set.
func TempDir() string {
	if dir := os.Getenv("TEMP"); dir != "" {
		return dir
	}
	return "."
}
