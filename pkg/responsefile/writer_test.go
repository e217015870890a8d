package responsefile_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"limeal.fr/rsplaunch/pkg/responsefile"
)

func TestUniqueName(t *testing.T) {
	a := responsefile.UniqueName("woof")
	b := responsefile.UniqueName("woof")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "woof-"))
	assert.True(t, strings.HasSuffix(a, responsefile.Extension))
}

func TestCreateAndRemove(t *testing.T) {
	dir := t.TempDir()

	w, err := responsefile.Create(dir, "test.rsp")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.FileExists(t, w.Path())
	assert.False(t, w.Finalized())

	require.NoError(t, w.Finalize())
	assert.True(t, w.Finalized())
	assert.FileExists(t, w.Path())

	responsefile.Remove(w.Path())
	assert.NoFileExists(t, w.Path())

	// removing twice is fine
	responsefile.Remove(w.Path())
}

func TestCreateFailsInMissingDirectory(t *testing.T) {
	_, err := responsefile.Create(filepath.Join(t.TempDir(), "missing"), "test.rsp")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	w, err := responsefile.Create(t.TempDir(), "round.rsp")
	require.NoError(t, err)

	for _, arg := range []string{"hello", "with space", "plain"} {
		w.AppendLine("%s", responsefile.EscapeArgument(arg))
	}
	require.NoError(t, w.Finalize())
	require.NoError(t, w.Err())

	raw, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, "hello\n\"with space\"\nplain\n", string(raw))

	args, err := responsefile.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "with space", "plain"}, args)
}

func TestAppendLineFormats(t *testing.T) {
	w, err := responsefile.Create(t.TempDir(), "fmt.rsp")
	require.NoError(t, err)

	w.AppendLine("-warp %d %d", 1, 3)
	w.AppendLine("-file")
	require.NoError(t, w.Finalize())

	raw, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, "-warp 1 3\n-file\n", string(raw))
}

func TestFinalizeIsIdempotent(t *testing.T) {
	w, err := responsefile.Create(t.TempDir(), "twice.rsp")
	require.NoError(t, err)

	assert.NoError(t, w.Finalize())
	assert.NoError(t, w.Finalize())
}

func TestAppendAfterFinalizeIsRecorded(t *testing.T) {
	w, err := responsefile.Create(t.TempDir(), "late.rsp")
	require.NoError(t, err)

	w.AppendLine("early")
	require.NoError(t, w.Finalize())
	assert.NoError(t, w.Err())

	w.AppendLine("late")
	assert.True(t, errors.Is(w.Err(), responsefile.ErrFinalized))

	args, err := responsefile.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, []string{"early"}, args)
}

func TestFailedAppendDoesNotAbortBatch(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs /dev/full")
	}
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("needs /dev/full")
	}

	w, err := responsefile.Create("/dev", "full")
	require.NoError(t, err)
	defer w.Finalize()

	w.AppendLine("one")
	first := w.Err()
	require.Error(t, first)

	w.AppendLine("two")
	second := w.Err()
	require.Error(t, second)
	assert.NotEqual(t, first.Error(), second.Error(), "second append should have been attempted")
}
