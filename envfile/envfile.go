// Package envfile loads environment variables from dotenv-style files.
//
// Files are read through a vfs.FileSystem, so production code can read
// from the real filesystem (osfs) while tests read from an in-memory one
// (memoryfs), mirroring the isolation the env package provides for the
// environment itself.
package envfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"go.hackfix.me/env"
)

// Parse reads dotenv-style content from r: one NAME=VALUE pair per line.
// Blank lines and lines starting with '#' are skipped, an optional
// "export " prefix is allowed, and values may be wrapped in single or
// double quotes. A non-empty line without '=' is an error.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		name, value, found := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("invalid variable definition on line %d: %q", n, line)
		}

		vars[name] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading environment file: %w", err)
	}

	return vars, nil
}

// Load reads and parses the environment file at path.
func Load(fsys vfs.FileSystem, path string) (map[string]string, error) {
	data, err := vfs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed reading environment file: %w", err)
	}

	vars, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed parsing environment file %q: %w", path, err)
	}

	return vars, nil
}

// Apply sets all given variables on e, overwriting any existing values.
func Apply(e env.Environment, vars map[string]string) error {
	for name, value := range vars {
		if err := e.SetVar(name, value); err != nil {
			return fmt.Errorf("failed setting environment variable %q: %w", name, err)
		}
	}
	return nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if (value[0] == '"' && value[len(value)-1] == '"') ||
		(value[0] == '\'' && value[len(value)-1] == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
