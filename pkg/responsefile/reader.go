package responsefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"limeal.fr/rsplaunch/pkg/utils"
)

// Loader returns the raw content behind an @reference.
type Loader func(ref string) ([]byte, error)

// Parse reads one argument per line. A line wrapped in double quotes has the
// quotes removed; nothing else is unescaped.
func Parse(r io.Reader) ([]string, error) {
	args := []string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) >= 2 && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) {
			line = line[1 : len(line)-1]
		}
		args = append(args, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read response file: %w", err)
	}

	return args, nil
}

func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open response file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Expand replaces every @reference in args[1:] with the arguments parsed from
// the referenced content. Expansion is a single level: arguments read from a
// reference are kept as they are, even when they start with @.
func Expand(args []string, load Loader) ([]string, error) {
	if load == nil {
		load = os.ReadFile
	}
	if len(args) == 0 {
		return args, nil
	}

	expanded := []string{args[0]}
	for _, arg := range args[1:] {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		ref := strings.TrimPrefix(arg, "@")
		content, err := load(ref)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", utils.RedactURI(ref), err)
		}
		lines, err := Parse(strings.NewReader(string(content)))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", utils.RedactURI(ref), err)
		}
		expanded = append(expanded, lines...)
	}

	return expanded, nil
}
