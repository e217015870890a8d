//go:build unix

package launcher

import (
	"os/exec"

	"github.com/charmbracelet/log"
)

// OpenFolder shows path in the desktop file manager and reports whether the
// opener exited successfully.
func OpenFolder(path string) bool {
	cmd := exec.Command(openerCommand, path)
	if err := cmd.Run(); err != nil {
		log.Debug("Failed to open folder", "opener", openerCommand, "path", path, "error", err)
		return false
	}
	return true
}
