// Package memenv implements env.Environment over a private in-memory
// store, for isolating tests from the real process environment.
package memenv

import (
	"iter"
	"maps"
	"sync"
	"unicode/utf8"

	"go.hackfix.me/env"
)

// Env is a fake process environment backed by a private map. Mutations
// are confined to the instance: they are never observable by other
// instances or by the real process environment. To keep environment
// state from leaking between tests, use a new instance per test.
//
// The map is guarded by a mutex, so a single instance can be shared by
// concurrent callers, though the intended usage is one instance per
// sequential test.
type Env struct {
	mx   sync.RWMutex
	vars map[string]string
}

var _ env.Environment = (*Env)(nil)

// New returns an empty environment.
func New() *Env {
	return &Env{vars: make(map[string]string)}
}

// NewFrom returns an environment pre-seeded with the given variables.
// The map is copied, so later changes to it don't affect the returned
// environment.
func NewFrom(vars map[string]string) *Env {
	e := New()
	maps.Copy(e.vars, vars)
	return e
}

// Var returns the value of the named variable. It returns an
// env.NotPresentError if the variable is not set, and an
// env.InvalidValueError if its value contains invalid UTF-8.
func (e *Env) Var(name string) (string, error) {
	e.mx.RLock()
	value, ok := e.vars[name]
	e.mx.RUnlock()

	if !ok {
		return "", env.NotPresentError{Name: name}
	}
	if !utf8.ValidString(value) {
		return "", env.InvalidValueError{Name: name, Value: value}
	}
	return value, nil
}

// LookupVar returns the raw value of the named variable, and whether the
// variable is set.
func (e *Env) LookupVar(name string) (string, bool) {
	e.mx.RLock()
	defer e.mx.RUnlock()
	value, ok := e.vars[name]
	return value, ok
}

// SetVar sets the named variable, overwriting any previous value. It
// never fails.
func (e *Env) SetVar(name, value string) error {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.vars[name] = value
	return nil
}

// RemoveVar removes the named variable. Removing a variable that is not
// set is a no-op. It never fails.
func (e *Env) RemoveVar(name string) error {
	e.mx.Lock()
	defer e.mx.Unlock()
	delete(e.vars, name)
	return nil
}

// Vars returns a sequence over a snapshot of the environment taken at
// call time. Mutations made after the call are not reflected in the
// returned sequence.
func (e *Env) Vars() iter.Seq2[string, string] {
	e.mx.RLock()
	vars := maps.Clone(e.vars)
	e.mx.RUnlock()
	return maps.All(vars)
}
