package env

import "iter"

// Environment is the interface to a process environment.
type Environment interface {
	// Var returns the value of the named variable, checking that it is
	// valid UTF-8. It returns a NotPresentError if the variable is not
	// set, and an InvalidValueError if the value contains invalid UTF-8.
	// If UTF-8 validation is not needed, use LookupVar instead.
	Var(name string) (string, error)

	// LookupVar returns the raw value of the named variable, without
	// checking that it is valid UTF-8, and whether the variable is set.
	LookupVar(name string) (string, bool)

	// SetVar sets the named variable to value, creating it if it doesn't
	// exist, and overwriting its value otherwise.
	SetVar(name, value string) error

	// RemoveVar removes the named variable. Removing a variable that is
	// not set is a no-op.
	RemoveVar(name string) error

	// Vars returns a sequence of all (name, value) pairs defined at the
	// moment of the call. The sequence is a snapshot: mutations made
	// after the call are not reflected in it, and iterating it multiple
	// times yields the same pairs. Iteration order is unspecified, and
	// callers must not rely on it.
	Vars() iter.Seq2[string, string]
}
