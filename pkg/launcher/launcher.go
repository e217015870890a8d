package launcher

import (
	"github.com/charmbracelet/log"
	"limeal.fr/rsplaunch/pkg/responsefile"
)

const (
	DefaultCompanion  = "woof"
	DefaultNamePrefix = "woof"

	// ExitFailure is returned when the launcher itself failed: the companion
	// could not be started, could not be waited on, or did not exit normally.
	ExitFailure = -1

	// ExecFailedStatus is the exit status a forked child uses when it could
	// not replace its image with the companion. A companion that really exits
	// with 128 is indistinguishable from this and is reported as ExitFailure.
	ExecFailedStatus = 0x80
)

// ProcessSpawner runs program with a single argument, blocks until it has
// exited and returns its exit code, or ExitFailure.
type ProcessSpawner interface {
	Spawn(program, arg string) int
}

type Launcher struct {
	args       []string
	companion  string
	tempDir    string
	namePrefix string
	strict     bool
	spawner    ProcessSpawner
}

type Option func(*Launcher)

// WithCompanion sets the bare name of the companion executable, without any
// platform suffix.
func WithCompanion(name string) Option {
	return func(l *Launcher) {
		if name != "" {
			l.companion = name
		}
	}
}

// WithTempDir stores response files in dir instead of the platform temp
// directory.
func WithTempDir(dir string) Option {
	return func(l *Launcher) {
		l.tempDir = dir
	}
}

func WithNamePrefix(prefix string) Option {
	return func(l *Launcher) {
		if prefix != "" {
			l.namePrefix = prefix
		}
	}
}

// WithStrictWrites makes ExecuteAndWait refuse to spawn the companion when an
// append to the response file failed.
func WithStrictWrites(strict bool) Option {
	return func(l *Launcher) {
		l.strict = strict
	}
}

func WithSpawner(spawner ProcessSpawner) Option {
	return func(l *Launcher) {
		if spawner != nil {
			l.spawner = spawner
		}
	}
}

// New creates a launcher for the given argument vector. args[0] is the path
// the launcher was invoked with; the rest are passed through to the companion
// by PassThroughArguments.
func New(args []string, options ...Option) *Launcher {
	l := &Launcher{
		args:       append([]string(nil), args...),
		companion:  DefaultCompanion,
		namePrefix: DefaultNamePrefix,
	}
	for _, option := range options {
		option(l)
	}
	if l.spawner == nil {
		l.spawner = newSpawner(l.args)
	}

	log.Debug("Launcher ready", "companion", l.CompanionExecutable(), "tempDir", l.TempDir(), "strict", l.strict)
	return l
}

// Args returns a copy of the argument vector the launcher was built with.
func (l *Launcher) Args() []string {
	return append([]string(nil), l.args...)
}

// CompanionExecutable is the companion's file name on this platform.
func (l *Launcher) CompanionExecutable() string {
	return l.companion + executableSuffix
}

// TempDir is where response files are created.
func (l *Launcher) TempDir() string {
	if l.tempDir != "" {
		return l.tempDir
	}
	return responsefile.TempDir()
}
