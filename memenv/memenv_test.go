package memenv

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/env"
	"go.hackfix.me/env/envtest"
)

func TestEnvironment(t *testing.T) {
	t.Parallel()

	envtest.TestEnvironment(t, func() env.Environment {
		return New()
	})
}

func TestInstanceIsolation(t *testing.T) {
	t.Parallel()

	a, b := New(), New()

	require.NoError(t, a.SetVar("SHARED_NAME", "from_a"))
	require.NoError(t, b.SetVar("SHARED_NAME", "from_b"))
	require.NoError(t, b.RemoveVar("SHARED_NAME"))

	got, err := a.Var("SHARED_NAME")
	require.NoError(t, err)
	assert.Equal(t, "from_a", got)

	_, err = b.Var("SHARED_NAME")
	assert.True(t, env.IsNotPresent(err))
}

func TestNewFrom(t *testing.T) {
	t.Parallel()

	seed := map[string]string{"A": "1", "B": "2"}
	e := NewFrom(seed)

	got, err := e.Var("A")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	// The seed map was copied, so mutations in either direction are not
	// shared.
	seed["C"] = "3"
	_, err = e.Var("C")
	assert.True(t, env.IsNotPresent(err))

	require.NoError(t, e.SetVar("D", "4"))
	assert.NotContains(t, seed, "D")
}

func TestVarsComplete(t *testing.T) {
	t.Parallel()

	want := map[string]string{"A": "1", "B": "2", "C": "3"}
	e := NewFrom(want)

	// Exactly the seeded pairs, and no others.
	assert.Equal(t, want, env.Map(e))
}

func TestEmptyAfterRemove(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.SetVar("A", "1"))
	require.NoError(t, e.RemoveVar("A"))

	_, err := e.Var("A")
	assert.True(t, env.IsNotPresent(err))
	assert.Empty(t, env.Map(e))
}

func TestConfigLocationFallback(t *testing.T) {
	t.Parallel()

	e := New()
	_, err := e.Var("CONFIG_LOCATION")
	assert.True(t, env.IsNotPresent(err))

	require.NoError(t, e.SetVar("CONFIG_LOCATION", "/a/user/specified/location"))

	got, err := e.Var("CONFIG_LOCATION")
	require.NoError(t, err)
	assert.Equal(t, "/a/user/specified/location", got)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	e := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("NAME_%d", i)
			_ = e.SetVar(name, "value")
			_, _ = e.Var(name)
			_ = e.RemoveVar(name)
			for range e.Vars() {
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, env.Map(e))
}
