package responsefile

import (
	"strings"
	"unicode"
)

// NeedsEscape reports whether arg contains any whitespace.
func NeedsEscape(arg string) bool {
	return strings.IndexFunc(arg, unicode.IsSpace) >= 0
}

// EscapeArgument wraps arg in double quotes when it contains whitespace.
// Embedded quotes are left alone: the reader on the other side only strips
// one pair of surrounding quotes per line.
func EscapeArgument(arg string) string {
	if NeedsEscape(arg) {
		return `"` + arg + `"`
	}
	return arg
}
