// Package viewer renders an arena with ebitengine for debugging enemy
// behavior.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-ai/arena"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game steps the arena once per ebiten update. P pauses, N steps one tick
// while paused, L toggles enemy labels and Escape quits.
type Game struct {
	arena      *arena.Arena
	width      int
	height     int
	camera     gamemath.Vec2
	paused     bool
	showLabels bool
}

func New(a *arena.Arena, width, height int) *Game {
	g := &Game{
		arena:      a,
		width:      width,
		height:     height,
		showLabels: true,
	}
	g.followPlayer()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.showLabels = !g.showLabels
	}

	if !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.arena.Step()
	}
	g.followPlayer()
	return nil
}

// followPlayer centers the camera on the player, clamped to the level.
func (g *Game) followPlayer() {
	pos, ok := g.arena.PlayerPosition()
	if !ok {
		return
	}
	level := g.arena.Level()
	maxX := float64(level.MapWidth - g.width)
	maxY := float64(level.MapHeight - g.height)
	g.camera = gamemath.V(
		gamemath.Clamp(pos.X-float64(g.width)/2, 0, max(maxX, 0)),
		gamemath.Clamp(pos.Y-float64(g.height)/2, 0, max(maxY, 0)),
	)
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	DrawObjects(g.arena.World(), screen, g.camera)
	if g.showLabels {
		g.drawLabels(screen)
	}
	g.drawHUD(screen)
}

func (g *Game) drawLabels(screen *ebiten.Image) {
	for _, e := range g.arena.Status() {
		if e.Dead {
			continue
		}
		x := int(e.Position.X - g.camera.X - 16)
		y := int(e.Position.Y - g.camera.Y - 48)
		label := fmt.Sprintf("%s %d", e.Kind, e.Health)
		if e.State != "" {
			label += "\n" + e.State
		}
		ebitenutil.DebugPrintAt(screen, label, x, y)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.arena.Summary()
	status := ""
	if g.paused {
		status = " [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s %s t=%.1fs%s\nkills %d  projectiles %d  player hits %d  deaths %d",
		s.Level, s.Difficulty, s.Seconds, status,
		s.TotalKills(), s.ProjectilesFired, s.PlayerHits, s.PlayerDeaths,
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
