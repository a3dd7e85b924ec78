package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateGameID()
		assert.Len(t, id, 32)
		assert.True(t, IsGameID(id))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestIsGameID(t *testing.T) {
	assert.False(t, IsGameID(""))
	assert.False(t, IsGameID("not-an-id"))
	assert.False(t, IsGameID("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"))
	assert.False(t, IsGameID("123e4567-e89b-12d3-a456-426614174000"))
}
