package env

import (
	"slices"
	"strings"
)

// Load parses a list of NAME=VALUE pairs, in the format returned by
// os.Environ, into a map. Entries without a name are skipped, and entries
// without a value are mapped to the empty string.
func Load(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// Map collects all variables of e into a map.
func Map(e Environment) map[string]string {
	vars := make(map[string]string)
	for name, value := range e.Vars() {
		vars[name] = value
	}
	return vars
}

// Environ returns all variables of e as a sorted list of NAME=VALUE
// pairs, in the format returned by os.Environ.
func Environ(e Environment) []string {
	environ := make([]string, 0)
	for name, value := range e.Vars() {
		environ = append(environ, name+"="+value)
	}
	slices.Sort(environ)
	return environ
}

// GetDefault returns the value of the named variable, or fallback if the
// variable is not set or its value is invalid.
func GetDefault(e Environment, name, fallback string) string {
	value, err := e.Var(name)
	if err != nil {
		return fallback
	}
	return value
}
