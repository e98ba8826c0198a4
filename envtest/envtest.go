// Package envtest provides helpers for testing env.Environment
// implementations, including the behavioral contract all of them must
// satisfy.
package envtest

import (
	"crypto/rand"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/env"
)

// invalidUTF8 is a byte sequence that is not valid UTF-8. Process
// environments accept it, but env.Environment.Var must reject it.
var invalidUTF8 = string([]byte{0x66, 0x6f, 0x80, 0x6f})

// RandName returns a unique uppercase variable name. Using a unique name
// per test case avoids clashes with variables already set in the real
// process environment.
func RandName() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = 'A' + b[i]%26
	}
	return "ENVTEST_" + string(b)
}

// TestEnvironment runs the behavioral contract shared by all Environment
// implementations against instances produced by newEnv. Variables set
// during the run use unique random names and are removed on cleanup, so
// it is safe for providers backed by the real process environment.
func TestEnvironment(t *testing.T, newEnv func() env.Environment) {
	t.Run("set_then_var", func(t *testing.T) {
		e := newEnv()
		name, value := RandName(), RandName()
		setVar(t, e, name, value)

		got, err := e.Var(name)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("var_not_present", func(t *testing.T) {
		e := newEnv()
		_, err := e.Var(RandName())

		require.Error(t, err)
		assert.True(t, env.IsNotPresent(err))
		assert.False(t, env.IsInvalidValue(err))
	})

	t.Run("var_invalid_utf8", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, invalidUTF8)

		_, err := e.Var(name)
		require.Error(t, err)
		assert.True(t, env.IsInvalidValue(err))

		var ivErr env.InvalidValueError
		require.ErrorAs(t, err, &ivErr)
		assert.Equal(t, name, ivErr.Name)
		assert.Equal(t, invalidUTF8, ivErr.Value)
	})

	t.Run("var_empty_value", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, "")

		got, err := e.Var(name)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("lookup_var", func(t *testing.T) {
		e := newEnv()
		name, value := RandName(), RandName()
		setVar(t, e, name, value)

		got, ok := e.LookupVar(name)
		assert.True(t, ok)
		assert.Equal(t, value, got)
	})

	t.Run("lookup_var_not_present", func(t *testing.T) {
		e := newEnv()
		got, ok := e.LookupVar(RandName())

		assert.False(t, ok)
		assert.Equal(t, "", got)
	})

	t.Run("lookup_var_invalid_utf8", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, invalidUTF8)

		got, ok := e.LookupVar(name)
		assert.True(t, ok)
		assert.Equal(t, invalidUTF8, got)
	})

	t.Run("set_var_overwrites", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, "first")
		setVar(t, e, name, "second")

		got, err := e.Var(name)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("remove_var", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, RandName())

		require.NoError(t, e.RemoveVar(name))

		_, err := e.Var(name)
		assert.True(t, env.IsNotPresent(err))
	})

	t.Run("remove_var_idempotent", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, RandName())

		require.NoError(t, e.RemoveVar(name))
		require.NoError(t, e.RemoveVar(name))

		_, err := e.Var(name)
		assert.True(t, env.IsNotPresent(err))
	})

	t.Run("remove_var_not_present", func(t *testing.T) {
		e := newEnv()
		assert.NoError(t, e.RemoveVar(RandName()))
	})

	t.Run("vars_contains_set_variables", func(t *testing.T) {
		e := newEnv()
		want := map[string]string{
			RandName(): "a",
			RandName(): "b",
			RandName(): "c",
		}
		for name, value := range want {
			setVar(t, e, name, value)
		}

		got := env.Map(e)
		for name, value := range want {
			assert.Equal(t, value, got[name])
		}
	})

	t.Run("vars_appears_once_after_overwrite", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, "first")
		setVar(t, e, name, "second")

		var count int
		for n, v := range e.Vars() {
			if n == name {
				count++
				assert.Equal(t, "second", v)
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("vars_is_snapshot", func(t *testing.T) {
		e := newEnv()
		name := RandName()
		setVar(t, e, name, "before")

		seq := e.Vars()
		setVar(t, e, name, "after")

		assert.Equal(t, "before", seqValue(seq, name))
	})

	t.Run("vars_is_restartable", func(t *testing.T) {
		e := newEnv()
		name, value := RandName(), RandName()
		setVar(t, e, name, value)

		seq := e.Vars()
		assert.Equal(t, value, seqValue(seq, name))
		assert.Equal(t, value, seqValue(seq, name))
	})
}

// setVar sets a variable on e and registers its removal as test cleanup,
// in case e is backed by the real process environment.
func setVar(t *testing.T, e env.Environment, name, value string) {
	t.Helper()
	require.NoError(t, e.SetVar(name, value))
	t.Cleanup(func() {
		e.RemoveVar(name) //nolint:errcheck // Best-effort cleanup.
	})
}

func seqValue(seq iter.Seq2[string, string], name string) string {
	var value string
	seq(func(n, v string) bool {
		if n == name {
			value = v
			return false
		}
		return true
	})
	return value
}
