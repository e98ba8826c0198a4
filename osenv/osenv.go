// Package osenv implements env.Environment over the real process
// environment table.
package osenv

import (
	"iter"
	"maps"
	"os"
	"unicode/utf8"

	"go.hackfix.me/env"
)

// Env is the real process environment. It is stateless: every operation
// delegates directly to the OS primitives, so mutations are process-wide
// and observable by any other code in the same process that reads the
// environment, including code that bypasses this abstraction. No locking
// is performed beyond what the OS primitives provide themselves, so
// concurrent mutation must be coordinated by the caller if needed.
//
// All Env values reference the same underlying process environment. When
// testing, memenv.Env should likely be used instead.
type Env struct{}

var _ env.Environment = (*Env)(nil)

// New returns a handle to the process environment.
func New() *Env {
	return &Env{}
}

// Var returns the value of the named variable from the process
// environment. It returns an env.NotPresentError if the variable is not
// set, and an env.InvalidValueError if its value contains invalid UTF-8.
func (e *Env) Var(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", env.NotPresentError{Name: name}
	}
	if !utf8.ValidString(value) {
		return "", env.InvalidValueError{Name: name, Value: value}
	}
	return value, nil
}

// LookupVar returns the raw value of the named variable from the process
// environment, and whether the variable is set.
func (e *Env) LookupVar(name string) (string, bool) {
	return os.LookupEnv(name)
}

// SetVar sets the named process environment variable. It fails only if
// the OS rejects the name or value, e.g. a name containing '=' or a NUL
// byte.
func (e *Env) SetVar(name, value string) error {
	return os.Setenv(name, value)
}

// RemoveVar removes the named variable from the process environment.
// Removing a variable that is not set is a no-op.
func (e *Env) RemoveVar(name string) error {
	return os.Unsetenv(name)
}

// Vars returns a sequence over a snapshot of the process environment
// taken at call time. Mutations made after the call, by any code in the
// process, are not reflected in the returned sequence.
func (e *Env) Vars() iter.Seq2[string, string] {
	return maps.All(env.Load(os.Environ()))
}
