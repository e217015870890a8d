package launcher

import (
	"errors"

	"github.com/charmbracelet/log"
	"limeal.fr/rsplaunch/pkg/responsefile"
)

// ErrNoResponseFile is reported by a context that was not created by
// CreateExecuteContext or NewExecuteContext.
var ErrNoResponseFile = errors.New("execute context has no response file")

// ExecuteContext is one launch request: a response file being filled in,
// then handed to the companion by ExecuteAndWait. It cannot be reused.
type ExecuteContext struct {
	responseFile *responsefile.Writer
	done         bool
}

// CreateExecuteContext opens a fresh, uniquely named response file.
func (l *Launcher) CreateExecuteContext() (*ExecuteContext, error) {
	w, err := responsefile.Create(l.TempDir(), responsefile.UniqueName(l.namePrefix))
	if err != nil {
		return nil, err
	}

	log.Debug("Response file created", "path", w.Path())
	return &ExecuteContext{responseFile: w}, nil
}

// NewExecuteContext is CreateExecuteContext for callers that have no way to
// continue without a response file: it terminates the process on failure.
func (l *Launcher) NewExecuteContext() *ExecuteContext {
	ctx, err := l.CreateExecuteContext()
	if err != nil {
		log.Fatal("Error opening response file", "dir", l.TempDir(), "error", err)
	}
	return ctx
}

// ResponseFile returns the path of the context's response file.
func (c *ExecuteContext) ResponseFile() string {
	if c.responseFile == nil {
		return ""
	}
	return c.responseFile.Path()
}

// AddCmdLineParameter appends one formatted line to the response file. The
// line is written as is; use responsefile.EscapeArgument for raw arguments.
func (c *ExecuteContext) AddCmdLineParameter(format string, args ...any) {
	if c.responseFile == nil {
		return
	}
	c.responseFile.AppendLine(format, args...)
}

// Err reports the append failures collected so far.
func (c *ExecuteContext) Err() error {
	if c.responseFile == nil {
		return ErrNoResponseFile
	}
	return c.responseFile.Err()
}

// ExecuteAndWait finalizes the response file, runs the companion with
// @<response file> as its only argument, waits for it, removes the response
// file and returns the companion's exit code (or ExitFailure).
func (l *Launcher) ExecuteAndWait(c *ExecuteContext) int {
	if c == nil || c.responseFile == nil {
		log.Error("Execute context has no response file")
		return ExitFailure
	}
	if c.done {
		log.Error("Execute context already used")
		return ExitFailure
	}
	c.done = true

	path := c.responseFile.Path()
	defer responsefile.Remove(path)

	if err := c.responseFile.Finalize(); err != nil {
		log.Debug("Failed to close response file", "path", path, "error", err)
	}

	if l.strict {
		if err := c.responseFile.Err(); err != nil {
			log.Error("Response file is incomplete, not starting companion", "path", path, "error", err)
			return ExitFailure
		}
	}

	program := l.CompanionExecutable()
	log.Debug("Starting companion", "program", program, "responseFile", path)

	result := l.spawner.Spawn(program, "@"+path)

	log.Debug("Companion exited", "program", program, "code", result)
	return result
}
