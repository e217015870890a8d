//go:build windows

package launcher

import "os"

const executableSuffix = ".exe"

func newSpawner(_ []string) ProcessSpawner {
	return HandleBased{Executable: os.Executable}
}
