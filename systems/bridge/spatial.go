package bridge

import (
	"math"

	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolvPhysics answers enemyai queries against the objects of a resolv
// space. The caster's own object is never reported.
type ResolvPhysics struct {
	space *resolv.Space
	self  *resolv.Object
}

var _ enemyai.Physics = (*ResolvPhysics)(nil)

func NewResolvPhysics(space *resolv.Space, self *resolv.Object) *ResolvPhysics {
	return &ResolvPhysics{space: space, self: self}
}

// LayerTags maps a query mask to the resolv tags it covers.
func LayerTags(mask enemyai.Layer) []string {
	var out []string
	if mask&enemyai.LayerGround != 0 {
		out = append(out, tags.ResolvSolid)
	}
	if mask&enemyai.LayerEnemy != 0 {
		out = append(out, tags.ResolvEnemy)
	}
	if mask&enemyai.LayerPlayer != 0 {
		out = append(out, tags.ResolvPlayer)
	}
	return out
}

func (p *ResolvPhysics) candidates(mask enemyai.Layer) []*resolv.Object {
	if p.space == nil {
		return nil
	}
	wanted := LayerTags(mask)
	var out []*resolv.Object
	for _, obj := range p.space.Objects() {
		if obj == p.self {
			continue
		}
		for _, tag := range wanted {
			if obj.HasTags(tag) {
				out = append(out, obj)
				break
			}
		}
	}
	return out
}

// Raycast returns the nearest object of mask crossed by the segment
// origin + dir*[0, maxDist]. A ray starting inside an object hits it at 0.
func (p *ResolvPhysics) Raycast(origin, dir gamemath.Vec2, maxDist float64, mask enemyai.Layer) (enemyai.Hit, bool) {
	if maxDist <= 0 || dir.IsZero() {
		return enemyai.Hit{}, false
	}
	dir = dir.Normalized()

	var (
		best    = math.Inf(1)
		bestObj *resolv.Object
	)
	for _, obj := range p.candidates(mask) {
		t, ok := rayBox(origin, dir, obj.X, obj.Y, obj.X+obj.W, obj.Y+obj.H)
		if ok && t <= maxDist && t < best {
			best, bestObj = t, obj
		}
	}
	if bestObj == nil {
		return enemyai.Hit{}, false
	}
	return enemyai.Hit{
		Point:    origin.Add(dir.Scale(best)),
		Distance: best,
		Target:   HandleOf(bestObj),
	}, true
}

// OverlapCircle reports whether any object of mask intersects the circle.
func (p *ResolvPhysics) OverlapCircle(center gamemath.Vec2, radius float64, mask enemyai.Layer) bool {
	for _, obj := range p.candidates(mask) {
		nearest := gamemath.V(
			gamemath.Clamp(center.X, obj.X, obj.X+obj.W),
			gamemath.Clamp(center.Y, obj.Y, obj.Y+obj.H),
		)
		if nearest.Sub(center).Len() <= radius {
			return true
		}
	}
	return false
}

// HandleOf returns the handle of the entity owning obj, if any.
func HandleOf(obj *resolv.Object) enemyai.Handle {
	if e, ok := obj.Data.(*donburi.Entry); ok && e != nil && e.Valid() {
		return enemyai.Handle(e.Entity())
	}
	return enemyai.NoHandle
}

// rayBox is the slab test. dir must be normalized.
func rayBox(o, dir gamemath.Vec2, minX, minY, maxX, maxY float64) (float64, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	axes := [2]struct{ o, d, lo, hi float64 }{
		{o.X, dir.X, minX, maxX},
		{o.Y, dir.Y, minY, maxY},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return 0, false
			}
			continue
		}
		t1 := (a.lo - a.o) / a.d
		t2 := (a.hi - a.o) / a.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
