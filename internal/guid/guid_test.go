package guid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Format(t *testing.T) {
	g := New()
	assert.Len(t, g, Length)
	assert.True(t, Valid(g))
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		g := New()
		assert.False(t, seen[g], "duplicate GUID %s", g)
		seen[g] = true
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("0123456789abcdef0123456789abcdef"))
	assert.False(t, Valid("0123456789ABCDEF0123456789ABCDEF"))
	assert.False(t, Valid("short"))
	assert.False(t, Valid("0123456789abcdef0123456789abcdeg"))
}
