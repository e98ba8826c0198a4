package osenv

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/env"
	"go.hackfix.me/env/envtest"
)

// These tests mutate the real process environment, so they must not run
// in parallel. Unique variable names keep them from clashing with
// variables inherited from the test runner.

func TestEnvironment(t *testing.T) {
	envtest.TestEnvironment(t, func() env.Environment {
		return New()
	})
}

func TestMutationsAreProcessWide(t *testing.T) {
	e := New()
	name := envtest.RandName()
	t.Cleanup(func() { os.Unsetenv(name) })

	// Writes through the provider are visible to direct readers of the
	// process environment, and vice versa.
	require.NoError(t, e.SetVar(name, "via_provider"))
	assert.Equal(t, "via_provider", os.Getenv(name))

	require.NoError(t, os.Setenv(name, "via_os"))
	got, err := e.Var(name)
	require.NoError(t, err)
	assert.Equal(t, "via_os", got)

	require.NoError(t, e.RemoveVar(name))
	_, ok := os.LookupEnv(name)
	assert.False(t, ok)
}

func TestAllInstancesShareTheProcessTable(t *testing.T) {
	a, b := New(), New()
	name := envtest.RandName()
	t.Cleanup(func() { os.Unsetenv(name) })

	require.NoError(t, a.SetVar(name, "shared"))

	got, err := b.Var(name)
	require.NoError(t, err)
	assert.Equal(t, "shared", got)
}

func TestVarsSnapshotsProcessTable(t *testing.T) {
	e := New()
	name := envtest.RandName()
	t.Cleanup(func() { os.Unsetenv(name) })

	require.NoError(t, os.Setenv(name, "present"))
	assert.Equal(t, env.Load(os.Environ()), env.Map(e))

	seq := e.Vars()
	require.NoError(t, os.Unsetenv(name))

	// The sequence was produced before the removal.
	var found bool
	for n := range seq {
		if n == name {
			found = true
		}
	}
	assert.True(t, found)
}
