package responsefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const Extension = ".rsp"

// ErrFinalized is recorded when a line is appended after Finalize.
var ErrFinalized = errors.New("response file already finalized")

// Writer owns one response file on disk and the stream used to fill it.
type Writer struct {
	path   string
	stream *os.File
	err    error
}

// UniqueName returns a file name of the form <prefix>-<uuid>.rsp so that two
// launchers running at the same time never share a response file.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString() + Extension
}

// Create opens dir/name for writing, truncating any previous content.
func Create(dir, name string) (*Writer, error) {
	path := filepath.Join(dir, name)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	stream, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open response file: %w", err)
	}

	return &Writer{
		path:   path,
		stream: stream,
	}, nil
}

func (w *Writer) Path() string {
	return w.path
}

// AppendLine writes one formatted line. Failures do not stop later appends;
// they are collected and can be inspected with Err.
func (w *Writer) AppendLine(format string, args ...any) {
	if w.stream == nil {
		w.record(ErrFinalized)
		return
	}

	if _, err := fmt.Fprintf(w.stream, format, args...); err != nil {
		w.record(fmt.Errorf("append line: %w", err))
		return
	}
	if _, err := fmt.Fprintln(w.stream); err != nil {
		w.record(fmt.Errorf("append line: %w", err))
	}
}

func (w *Writer) record(err error) {
	w.err = errors.Join(w.err, err)
}

// Err returns every append failure seen so far, or nil.
func (w *Writer) Err() error {
	return w.err
}

// Finalize closes the stream. Only the first call does anything.
func (w *Writer) Finalize() error {
	if w.stream == nil {
		return nil
	}
	err := w.stream.Close()
	w.stream = nil
	if err != nil {
		return fmt.Errorf("close response file: %w", err)
	}
	return nil
}

func (w *Writer) Finalized() bool {
	return w.stream == nil
}

// Remove deletes the response file at path. It never fails: a file that is
// already gone counts as removed, anything else is retried a few times (a
// child that just exited on windows can still hold the file) and then dropped.
func Remove(path string) {
	err := retry.Do(
		func() error {
			err := os.Remove(path)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Debug("Failed to remove response file", "path", path, "error", err)
	}
}
