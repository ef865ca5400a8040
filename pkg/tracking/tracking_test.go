package tracking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID("")
	assert.Len(t, id, TokenLength)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestNewIDWithPrefix(t *testing.T) {
	id := NewID("CB-")
	assert.True(t, strings.HasPrefix(id, "CB-"))
	assert.Len(t, id, len("CB-")+TokenLength)
}

func TestNewIDIsRandom(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("")
		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
}
