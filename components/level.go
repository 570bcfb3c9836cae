package components

import (
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.ArenaData
}

var Level = donburi.NewComponentType[LevelData]()
