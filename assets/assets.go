package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/doomerang-ai/shared/leveldata"
)

// LevelsDir is the directory of the bundled arenas inside Levels.
const LevelsDir = "levels"

//go:embed all:levels
var levelFS embed.FS

// Levels is the filesystem holding the bundled arenas.
var Levels fs.FS = levelFS

// LoadArena loads a bundled arena by stem name.
func LoadArena(name string) (*leveldata.ArenaData, error) {
	return leveldata.LoadArena(levelFS, LevelsDir+"/"+name+".tmx")
}

// ArenaNames lists the bundled arenas.
func ArenaNames() ([]string, error) {
	_, names, err := leveldata.LoadAllArenas(levelFS, LevelsDir)
	return names, err
}
