package components

import (
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind     enemyai.Kind
	Behavior enemyai.Behavior
	Spawn    leveldata.EnemySpawn // where to respawn
}

var Enemy = donburi.NewComponentType[EnemyData]()
