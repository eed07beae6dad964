package utils

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""

	for i := 0; i < 1000; i++ {
		id := GenerateID()

		_, err := ulid.ParseStrict(id)
		require.NoError(t, err, "id %q must be a valid ULID", id)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true

		// Монотонность: каждый следующий ID больше предыдущего
		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}
}
