package enemyai

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

type fakeClock struct {
	now, dt float64
}

func (c *fakeClock) Now() float64       { return c.now }
func (c *fakeClock) DeltaTime() float64 { return c.dt }

func (c *fakeClock) advance() { c.now += c.dt }

// fakeBody stores whatever the AI sets and never integrates velocity.
type fakeBody struct {
	pos, vel  gamemath.Vec2
	size      gamemath.Vec2
	kinematic bool
}

func (b *fakeBody) Position() gamemath.Vec2     { return b.pos }
func (b *fakeBody) SetPosition(p gamemath.Vec2) { b.pos = p }
func (b *fakeBody) Velocity() gamemath.Vec2     { return b.vel }
func (b *fakeBody) SetVelocity(v gamemath.Vec2) { b.vel = v }
func (b *fakeBody) SetKinematic(k bool)         { b.kinematic = k }
func (b *fakeBody) Size() gamemath.Vec2         { return b.size }

type box struct {
	min, max gamemath.Vec2
	layer    Layer
}

func solid(x0, y0, x1, y1 float64) box {
	return box{min: gamemath.V(x0, y0), max: gamemath.V(x1, y1), layer: LayerGround}
}

// boxPhysics answers queries against axis aligned boxes. A ray starting
// inside a box hits it at distance zero.
type boxPhysics struct {
	boxes    []box
	raycasts int
}

func (p *boxPhysics) Raycast(o, d gamemath.Vec2, maxDist float64, mask Layer) (Hit, bool) {
	p.raycasts++
	best := math.Inf(1)
	for _, b := range p.boxes {
		if b.layer&mask == 0 {
			continue
		}
		if t, ok := slab(o, d, b); ok && t <= maxDist && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return Hit{}, false
	}
	return Hit{Point: o.Add(d.Scale(best)), Distance: best}, true
}

func (p *boxPhysics) OverlapCircle(c gamemath.Vec2, r float64, mask Layer) bool {
	for _, b := range p.boxes {
		if b.layer&mask == 0 {
			continue
		}
		nx := gamemath.Clamp(c.X, b.min.X, b.max.X)
		ny := gamemath.Clamp(c.Y, b.min.Y, b.max.Y)
		if gamemath.V(nx, ny).Dist(c) <= r {
			return true
		}
	}
	return false
}

func slab(o, d gamemath.Vec2, b box) (float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	axes := [][4]float64{
		{o.X, d.X, b.min.X, b.max.X},
		{o.Y, d.Y, b.min.Y, b.max.Y},
	}
	for _, a := range axes {
		origin, dir, lo, hi := a[0], a[1], a[2], a[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

type fakeLocator struct {
	handle    Handle
	pos       gamemath.Vec2
	present   bool
	findCalls int
	posCalls  int
}

func (l *fakeLocator) FindPlayerByTag() (Handle, bool) {
	l.findCalls++
	return l.handle, l.present
}

func (l *fakeLocator) GetPosition(h Handle) (gamemath.Vec2, bool) {
	l.posCalls++
	if !l.present || h != l.handle {
		return gamemath.Vec2{}, false
	}
	return l.pos, true
}

type damageCall struct {
	target Handle
	amount int
}

type recordingSink struct {
	damage    []damageCall
	knockback []gamemath.Vec2
}

func (s *recordingSink) ApplyDamage(t Handle, amount int) {
	s.damage = append(s.damage, damageCall{target: t, amount: amount})
}

func (s *recordingSink) ApplyKnockback(_ Handle, impulse gamemath.Vec2) {
	s.knockback = append(s.knockback, impulse)
}

type recordingFactory struct {
	specs []ProjectileSpec
	err   error
	next  Handle
}

func (f *recordingFactory) SpawnProjectile(spec ProjectileSpec) (Handle, error) {
	if f.err != nil {
		return NoHandle, f.err
	}
	f.specs = append(f.specs, spec)
	f.next++
	return 1000 + f.next, nil
}

type recordingAnimator struct {
	triggers []string
}

func (a *recordingAnimator) SetTrigger(name string) { a.triggers = append(a.triggers, name) }

func (a *recordingAnimator) count(name string) int {
	n := 0
	for _, t := range a.triggers {
		if t == name {
			n++
		}
	}
	return n
}

type recordingAudio struct {
	events []string
}

func (a *recordingAudio) PlayOneShot(event string, _ gamemath.Vec2) {
	a.events = append(a.events, event)
}

const playerHandle Handle = 7

// rig wires one enemy to recording doubles standing on a wide floor whose
// top is at y=0.
type rig struct {
	clock   *fakeClock
	body    *fakeBody
	phys    *boxPhysics
	player  *fakeLocator
	sink    *recordingSink
	factory *recordingFactory
	anim    *recordingAnimator
	audio   *recordingAudio
	ai      *config.AIConfig
}

func newRig(pos, size gamemath.Vec2) *rig {
	ai := config.DefaultAI()
	return &rig{
		clock:   &fakeClock{dt: 1.0 / 60},
		body:    &fakeBody{pos: pos, size: size},
		phys:    &boxPhysics{boxes: []box{solid(-2000, 0, 2000, 64)}},
		player:  &fakeLocator{handle: playerHandle},
		sink:    &recordingSink{},
		factory: &recordingFactory{},
		anim:    &recordingAnimator{},
		audio:   &recordingAudio{},
		ai:      &ai,
	}
}

func (r *rig) deps() Deps {
	return Deps{
		Host: &Host{
			Clock:       r.clock,
			Player:      r.player,
			Damage:      r.sink,
			Projectiles: r.factory,
			Audio:       r.audio,
			Log:         logger.Discard(),
		},
		Self:     3,
		Body:     r.body,
		Physics:  r.phys,
		Animator: r.anim,
	}
}

func (r *rig) placePlayer(x, y float64) {
	r.player.present = true
	r.player.pos = gamemath.V(x, y)
}
