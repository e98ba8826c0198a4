package envtest

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRandNameIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		name := RandName()
		assert.False(t, seen[name])
		seen[name] = true
	}
}

func TestRandNameFormat(t *testing.T) {
	t.Parallel()

	name := RandName()
	assert.Regexp(t, `^ENVTEST_[A-Z]{12}$`, name)
	assert.True(t, utf8.ValidString(name))
}
