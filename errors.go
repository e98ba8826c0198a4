package env

import (
	"errors"
	"fmt"
)

// NotPresentError represents a lookup of a variable that is not set in
// the environment. It is the common "unset" case, and callers are
// expected to handle it, e.g. by falling back to a default value.
type NotPresentError struct {
	Name string
}

// Error returns a string representation of the error.
func (e NotPresentError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Name)
}

// InvalidValueError represents a variable whose raw value contains
// invalid UTF-8. The process environment permits arbitrary byte
// sequences, so this is only expected from environments backed by the
// real process table, and usually indicates an encoding mismatch. Value
// contains the raw bytes; use LookupVar to retrieve them without
// validation.
type InvalidValueError struct {
	Name  string
	Value string
}

// Error returns a string representation of the error.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("environment variable %q contains invalid UTF-8", e.Name)
}

// IsNotPresent reports whether any error in err's tree is a
// NotPresentError.
func IsNotPresent(err error) bool {
	var npErr NotPresentError
	return errors.As(err, &npErr)
}

// IsInvalidValue reports whether any error in err's tree is an
// InvalidValueError.
func IsInvalidValue(err error) bool {
	var ivErr InvalidValueError
	return errors.As(err, &ivErr)
}
