package viewer

import (
	"image/color"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var kindColors = map[enemyai.Kind]color.RGBA{
	enemyai.KindArcher: config.Green,
	enemyai.KindMage:   config.Purple,
	enemyai.KindGrunt:  config.Red,
	enemyai.KindBoss:   config.Orange,
}

var (
	solidColor    = color.RGBA{100, 100, 100, 255}
	deadZoneColor = color.RGBA{120, 0, 0, 255}
	corpseColor   = color.RGBA{60, 60, 60, 255}
)

// DrawObjects outlines every collider in the world's space, offset by the
// camera and culled to the screen.
func DrawObjects(world donburi.World, screen *ebiten.Image, camera gamemath.Vec2) {
	spaceEntry, ok := components.Space.First(world)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())
	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < camera.X || obj.X > camera.X+viewW || obj.Y+obj.H < camera.Y || obj.Y > camera.Y+viewH {
			continue
		}

		x := float32(obj.X - camera.X)
		y := float32(obj.Y - camera.Y)
		w, h := float32(obj.W), float32(obj.H)

		c, filled := objectColor(obj)
		if filled {
			vector.FillRect(screen, x, y, w, h, c, false)
			continue
		}
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

func objectColor(obj *resolv.Object) (color.RGBA, bool) {
	entry, _ := obj.Data.(*donburi.Entry)
	valid := entry != nil && entry.Valid()

	switch {
	case obj.HasTags(tags.ResolvSolid):
		return solidColor, true
	case obj.HasTags(tags.ResolvDeadZone):
		return deadZoneColor, false
	case obj.HasTags(tags.ResolvPlayer):
		return config.Blue, true
	case obj.HasTags(tags.ResolvProjectile) && valid:
		p := components.Projectile.Get(entry)
		if prefab, ok := config.Projectiles[p.Kind]; ok {
			return prefab.Color, true
		}
		return config.White, true
	case obj.HasTags(tags.ResolvEnemy) && valid:
		if entry.HasComponent(components.Death) {
			return corpseColor, false
		}
		return kindColors[components.Enemy.Get(entry).Kind], false
	}
	return color.RGBA{0, 255, 255, 255}, false
}
