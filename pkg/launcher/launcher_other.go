//go:build !unix && !windows

package launcher

import (
	"runtime"

	"github.com/charmbracelet/log"
)

const executableSuffix = ""

var _ ProcessSpawner = Unsupported{}

// Unsupported is the spawner on platforms without process creation.
type Unsupported struct{}

func (Unsupported) Spawn(program, arg string) int {
	log.Error("Starting a companion is not supported", "os", runtime.GOOS, "program", program)
	return ExitFailure
}

func newSpawner(_ []string) ProcessSpawner {
	return Unsupported{}
}

func OpenFolder(path string) bool {
	log.Debug("Opening folders is not supported", "os", runtime.GOOS, "path", path)
	return false
}
