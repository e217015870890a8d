//go:build unix

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
)

var _ ProcessSpawner = ForkExec{}

// ForkExec starts the companion from the directory the launcher was invoked
// from and waits for it with wait4.
type ForkExec struct {
	// Argv0 is the launcher's own invocation path.
	Argv0 string
}

// CompanionPath puts program next to Argv0. Without a directory in Argv0 the
// bare program name is returned and resolved through PATH when spawning.
func (f ForkExec) CompanionPath(program string) string {
	sep := strings.LastIndexByte(f.Argv0, os.PathSeparator)
	if sep < 0 {
		return program
	}
	return f.Argv0[:sep+1] + program
}

func (f ForkExec) Spawn(program, arg string) int {
	path := f.CompanionPath(program)
	argv := []string{path, arg}

	if !strings.ContainsRune(path, os.PathSeparator) {
		resolved, err := exec.LookPath(path)
		if err != nil && !errors.Is(err, exec.ErrDot) {
			log.Error("Companion not found", "program", path, "error", err)
			return ExitFailure
		}
		path = resolved
	}

	pid, err := syscall.ForkExec(path, argv, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{os.Stdin.Fd(), os.Stdout.Fd(), os.Stderr.Fd()},
	})
	if err != nil {
		log.Error("Failed to start companion", "path", path, "error", err)
		return ExitFailure
	}

	log.Debug("Companion started", "path", path, "pid", pid)
	return waitForChild(pid)
}

// waitForChild blocks until pid terminates. Only a normal exit with a status
// other than ExecFailedStatus is reported as is.
func waitForChild(pid int) int {
	var status syscall.WaitStatus
	for {
		_, err := syscall.Wait4(pid, &status, 0, nil)
		if err == nil {
			break
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		log.Error("Failed to wait for companion", "pid", pid, "error", err)
		return ExitFailure
	}

	switch {
	case status.Exited() && status.ExitStatus() != ExecFailedStatus:
		return status.ExitStatus()
	case status.Exited():
		log.Debug("Companion reported exec failure", "pid", pid)
	case status.Signaled():
		log.Debug("Companion killed by signal", "pid", pid, "signal", status.Signal())
	}
	return ExitFailure
}
