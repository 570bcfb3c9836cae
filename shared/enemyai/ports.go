package enemyai

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
)

// Handle identifies an entity owned by the host.
type Handle uint64

// NoHandle is never handed out by a host.
const NoHandle Handle = 0

// Layer is a collision layer bitmask used by queries.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerEnemy
	LayerPlayer
)

// Hit is the nearest intersection reported by a raycast.
type Hit struct {
	Point    gamemath.Vec2
	Distance float64
	Target   Handle
}

// Clock is the only time source of the core.
type Clock interface {
	Now() float64
	DeltaTime() float64
}

// Physics answers spatial queries. Implementations exclude the querying
// enemy's own collider.
type Physics interface {
	Raycast(origin, dir gamemath.Vec2, maxDist float64, mask Layer) (Hit, bool)
	OverlapCircle(center gamemath.Vec2, radius float64, mask Layer) bool
}

// Body is the host-owned transform and rigid body of one enemy. Position is
// the center of the collider.
type Body interface {
	Position() gamemath.Vec2
	SetPosition(gamemath.Vec2)
	Velocity() gamemath.Vec2
	SetVelocity(gamemath.Vec2)
	SetKinematic(bool)
	Size() gamemath.Vec2
}

// PlayerLocator resolves the player entity.
type PlayerLocator interface {
	FindPlayerByTag() (Handle, bool)
	GetPosition(Handle) (gamemath.Vec2, bool)
}

// DamageSink applies the effects of landed attacks.
type DamageSink interface {
	ApplyDamage(target Handle, amount int)
	ApplyKnockback(target Handle, impulse gamemath.Vec2)
}

// ProjectileSpec describes a projectile to spawn.
type ProjectileSpec struct {
	Kind      string
	Position  gamemath.Vec2
	Direction gamemath.Vec2 // normalized
	Speed     float64
	Damage    int
	Owner     Handle
}

type ProjectileFactory interface {
	SpawnProjectile(ProjectileSpec) (Handle, error)
}

type Animator interface {
	SetTrigger(name string)
}

type AudioCue interface {
	PlayOneShot(event string, pos gamemath.Vec2)
}

// Host bundles the collaborators shared by every enemy in a world.
type Host struct {
	Clock       Clock
	Player      PlayerLocator
	Damage      DamageSink
	Projectiles ProjectileFactory
	Audio       AudioCue
	Log         logrus.FieldLogger
}

// Deps are the per-enemy collaborators.
type Deps struct {
	Host     *Host
	Self     Handle
	Body     Body
	Physics  Physics
	Animator Animator
}

type nopAnimator struct{}

func (nopAnimator) SetTrigger(string) {}

type nopAudio struct{}

func (nopAudio) PlayOneShot(string, gamemath.Vec2) {}

type nopDamage struct{}

func (nopDamage) ApplyDamage(Handle, int)              {}
func (nopDamage) ApplyKnockback(Handle, gamemath.Vec2) {}
