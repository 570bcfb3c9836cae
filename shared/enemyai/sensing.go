package enemyai

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// Sensors is the per-tick snapshot of short range probes.
type Sensors struct {
	Grounded   bool
	WallAhead  bool
	LedgeAhead bool
	EnemyAhead bool
}

// SpatialQuery wraps the raycasts shared by every enemy.
type SpatialQuery struct {
	physics Physics
	cfg     *config.SensorConfig
}

func NewSpatialQuery(physics Physics, cfg *config.SensorConfig) *SpatialQuery {
	return &SpatialQuery{physics: physics, cfg: cfg}
}

// LineOfSight reports whether nothing on the ground layer lies between from
// and to. Without a physics provider it fails closed.
func (q *SpatialQuery) LineOfSight(from, to gamemath.Vec2) bool {
	if q.physics == nil {
		return false
	}
	delta := to.Sub(from)
	dist := delta.Len()
	if dist == 0 {
		return true
	}
	hit, ok := q.physics.Raycast(from, delta.Scale(1/dist), dist, LayerGround)
	return !ok || hit.Distance >= dist
}

// GroundBelow returns the Y of the first ground surface below pos within
// maxDist. Hits nearer than MinHitDistance mean the ray started inside
// geometry and are not trusted.
func (q *SpatialQuery) GroundBelow(pos gamemath.Vec2, maxDist float64) (float64, bool) {
	if q.physics == nil {
		return 0, false
	}
	hit, ok := q.physics.Raycast(pos, gamemath.Down, maxDist, LayerGround)
	if !ok || hit.Distance < q.cfg.MinHitDistance {
		return 0, false
	}
	return hit.Point.Y, true
}

// WallDistance returns the distance to the first ground-layer hit along dir.
func (q *SpatialQuery) WallDistance(from, dir gamemath.Vec2, maxDist float64) (float64, bool) {
	if q.physics == nil {
		return 0, false
	}
	hit, ok := q.physics.Raycast(from, dir, maxDist, LayerGround)
	if !ok {
		return 0, false
	}
	return hit.Distance, true
}

// Sense casts the ground, wall, ledge and enemy probes for a body centered
// at pos. It does not mutate anything.
func (q *SpatialQuery) Sense(pos, size gamemath.Vec2, facing float64) Sensors {
	var s Sensors
	if q.physics == nil {
		return s
	}
	half := size.Scale(0.5)
	feet := pos.Y + half.Y

	// Probe from just inside the collider so a body resting on ground
	// never starts its ray inside the floor.
	for _, x := range []float64{pos.X, pos.X - half.X + 1, pos.X + half.X - 1} {
		if _, ok := q.physics.Raycast(gamemath.V(x, feet-1), gamemath.Down, q.cfg.GroundProbe+1, LayerGround); ok {
			s.Grounded = true
			break
		}
	}

	forward := gamemath.V(facing, 0)
	if _, ok := q.physics.Raycast(pos, forward, half.X+q.cfg.WallProbe, LayerGround); ok {
		s.WallAhead = true
	}

	if s.Grounded {
		probe := gamemath.V(pos.X+facing*(half.X+q.cfg.LedgeProbeAhead), feet-1)
		if _, ok := q.physics.Raycast(probe, gamemath.Down, q.cfg.LedgeProbeDepth+1, LayerGround); !ok {
			s.LedgeAhead = true
		}
	}

	r := q.cfg.EnemyProbeRadius
	center := gamemath.V(pos.X+facing*(half.X+r), pos.Y)
	s.EnemyAhead = q.physics.OverlapCircle(center, r, LayerEnemy)
	return s
}

// VerticalObstacle reports whether geometry separates a body at pos from a
// target above it: either the ceiling ray up to the target's height or the
// direct line is blocked.
func (q *SpatialQuery) VerticalObstacle(pos, target gamemath.Vec2) bool {
	rise := pos.Y - target.Y
	if rise <= 0 {
		return false
	}
	if _, ok := q.WallDistance(pos, gamemath.Up, rise); ok {
		return true
	}
	return !q.LineOfSight(pos, target)
}

// FindGroundLevel searches straight down with each distance in turn, then
// repeats the longest search at each lateral offset.
func (q *SpatialQuery) FindGroundLevel(pos gamemath.Vec2, distances, lateral []float64) (float64, bool) {
	longest := 0.0
	for _, d := range distances {
		if y, ok := q.GroundBelow(pos, d); ok {
			return y, true
		}
		longest = math.Max(longest, d)
	}
	for _, off := range lateral {
		if y, ok := q.GroundBelow(gamemath.V(pos.X+off, pos.Y), longest); ok {
			return y, true
		}
	}
	return 0, false
}
