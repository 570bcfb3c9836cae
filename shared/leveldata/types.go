// Package leveldata parses TMX arenas into plain data. It has no
// dependencies on ebitengine, donburi or resolv.
package leveldata

// ArenaData holds everything the arena host needs from a TMX file.
type ArenaData struct {
	Name        string
	SolidRects  []SolidRect
	PlayerSpawn SpawnPoint
	EnemySpawns []EnemySpawn
	PatrolPaths map[string][]Point
	DeadZones   []Rect
	MapWidth    int
	MapHeight   int
}

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

// SolidRect is a run of solid tiles merged along a row.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is the feet position of a spawn.
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawn is an enemy spawn read from the EnemySpawn object group.
type EnemySpawn struct {
	X, Y float64
	Kind string
	Name string
}
