//go:build windows

package responsefile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"limeal.fr/rsplaunch/pkg/responsefile"
)

func TestTempDir(t *testing.T) {
	t.Setenv("TEMP", `D:\scratch`)
	assert.Equal(t, `D:\scratch`, responsefile.TempDir())

	t.Setenv("TEMP", "")
	assert.Equal(t, ".", responsefile.TempDir())
}
