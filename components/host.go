package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/yohamta/donburi"
)

// HostData is the singleton linking systems to the AI collaborators of the
// world and the tuned config every enemy reads.
type HostData struct {
	Host *enemyai.Host
	AI   *config.AIConfig
}

var Host = donburi.NewComponentType[HostData]()
