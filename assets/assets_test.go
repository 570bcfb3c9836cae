package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledArenasLoad(t *testing.T) {
	names, err := ArenaNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"arena", "boss"}, names)

	for _, name := range names {
		data, err := LoadArena(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data.SolidRects, name)
		assert.NotEmpty(t, data.EnemySpawns, name)
		assert.Contains(t, data.PatrolPaths, "player", name)
	}
}
