package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	data, err := LoadArena(os.DirFS("testdata"), "mini.tmx")
	require.NoError(t, err)

	assert.Equal(t, "mini", data.Name)
	assert.Equal(t, 160, data.MapWidth)
	assert.Equal(t, 96, data.MapHeight)

	// Rows are merged into runs.
	assert.ElementsMatch(t, []SolidRect{
		{X: 32, Y: 48, W: 32, H: 16},
		{X: 96, Y: 48, W: 32, H: 16},
		{X: 0, Y: 80, W: 160, H: 16},
	}, data.SolidRects)

	assert.Equal(t, SpawnPoint{X: 24, Y: 80}, data.PlayerSpawn)

	require.Len(t, data.EnemySpawns, 2)
	assert.Equal(t, EnemySpawn{X: 40, Y: 80, Kind: "grunt", Name: "early"}, data.EnemySpawns[0])
	assert.Equal(t, EnemySpawn{X: 120, Y: 80, Kind: "archer", Name: "late"}, data.EnemySpawns[1])

	assert.Equal(t, []Point{{X: 16, Y: 72}, {X: 116, Y: 72}}, data.PatrolPaths["player"])
	assert.Equal(t, []Rect{{X: 0, Y: 96, W: 160, H: 32}}, data.DeadZones)
}

func TestLoadArenaRequiresPlayerSpawn(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "nospawn.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(os.DirFS("testdata"), "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	mini, err := os.ReadFile("testdata/mini.tmx")
	require.NoError(t, err)
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: mini},
		"levels/a.tmx": {Data: mini},
	}

	arenas, names, err := LoadAllArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)
	assert.Equal(t, "a", arenas["a"].Name)
}

func TestLoadAllArenasEmpty(t *testing.T) {
	_, _, err := LoadAllArenas(fstest.MapFS{"levels/readme.txt": {}}, "levels")
	assert.ErrorIs(t, err, ErrNoLevels)
}
