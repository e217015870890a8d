//go:build windows

package launcher

import (
	"strings"
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"
)

var _ ProcessSpawner = HandleBased{}

// stillActive is the exit code GetExitCodeProcess reports for a running process.
const stillActive = 259

// HandleBased starts the companion from the directory of the running
// executable with CreateProcess and waits on the process handle.
type HandleBased struct {
	// Executable returns the path of the running executable.
	Executable func() (string, error)
}

// CommandLine builds `"<exe dir>\<program>" "<arg>"`.
func (h HandleBased) CommandLine(program, arg string) string {
	dir := ""
	if h.Executable != nil {
		if exe, err := h.Executable(); err == nil {
			if sep := strings.LastIndexAny(exe, `\/`); sep >= 0 {
				dir = exe[:sep+1]
			}
		}
	}
	return `"` + dir + program + `" "` + arg + `"`
}

func (h HandleBased) Spawn(program, arg string) int {
	cmdline := h.CommandLine(program, arg)
	command, err := windows.UTF16PtrFromString(cmdline)
	if err != nil {
		log.Error("Invalid command line", "command", cmdline, "error", err)
		return ExitFailure
	}

	var startupInfo windows.StartupInfo
	var procInfo windows.ProcessInformation
	startupInfo.Cb = uint32(unsafe.Sizeof(startupInfo))

	err = windows.CreateProcess(nil, command, nil, nil, false, 0, nil, nil, &startupInfo, &procInfo)
	if err != nil {
		log.Error("Failed to start companion", "command", cmdline, "error", err)
		return ExitFailure
	}
	defer windows.CloseHandle(procInfo.Process)
	defer windows.CloseHandle(procInfo.Thread)

	log.Debug("Companion started", "command", cmdline, "pid", procInfo.ProcessId)
	return waitForProcessExit(procInfo.Process)
}

func waitForProcessExit(process windows.Handle) int {
	for {
		if _, err := windows.WaitForSingleObject(process, windows.INFINITE); err != nil {
			log.Error("Failed to wait for companion", "error", err)
			return ExitFailure
		}

		var exitCode uint32
		if err := windows.GetExitCodeProcess(process, &exitCode); err != nil {
			log.Error("Failed to read companion exit code", "error", err)
			return ExitFailure
		}
		if exitCode != stillActive {
			return int(exitCode)
		}
	}
}
