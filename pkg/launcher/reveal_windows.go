//go:build windows

package launcher

import (
	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"
)

// OpenFolder shows path in Explorer. ShellExecute's "greater than 32 means
// success" rule is already folded into the returned error.
func OpenFolder(path string) bool {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return false
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	if err := windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWDEFAULT); err != nil {
		log.Debug("Failed to open folder", "path", path, "error", err)
		return false
	}
	return true
}
