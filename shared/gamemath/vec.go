package gamemath

import "math"

// Vec2 is a 2D vector in screen space (+Y is down).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

var (
	Up    = Vec2{X: 0, Y: -1}
	Down  = Vec2{X: 0, Y: 1}
	Left  = Vec2{X: -1, Y: 0}
	Right = Vec2{X: 1, Y: 0}
)

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Normalized returns the unit vector of v, or the zero vector when v has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// MirrorX flips the X component when dir is negative.
func (v Vec2) MirrorX(dir float64) Vec2 {
	if dir < 0 {
		return Vec2{X: -v.X, Y: v.Y}
	}
	return v
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
