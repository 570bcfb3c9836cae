package enemyai

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// Archer closes to a fraction of its bow range and shoots.
type Archer struct {
	*Enemy
	cfg *config.ArcherConfig
	bow *ProjectileAttacker
}

func NewArcher(deps Deps, ai *config.AIConfig) *Archer {
	e := newEnemy(KindArcher, deps, &ai.Archer.Stats, ai)
	return &Archer{
		Enemy: e,
		cfg:   &ai.Archer,
		bow:   NewProjectileAttacker(e, &ai.Archer.Bow),
	}
}

func (a *Archer) Bow() *ProjectileAttacker { return a.bow }

func (a *Archer) Update() {
	if a.dead {
		return
	}
	a.RefreshPlayerTracking(a.now())
	if !a.PlayerInRange() {
		a.Stop()
		return
	}
	a.UpdateFacing()
	s := a.Sense()

	dist := a.PlayerDistance()
	if dist > a.bow.Range()*a.cfg.ApproachFraction {
		// Ranged units hold at platform edges instead of walking off.
		if s.Grounded && (s.LedgeAhead || s.WallAhead) {
			a.Stop()
			a.Attack()
			return
		}
		dir := gamemath.Sign(a.Player.Position().X - a.Body.Position().X)
		a.MoveHorizontal(dir, a.Speed())
		return
	}
	a.Stop()
	a.Attack()
}

func (a *Archer) FixedUpdate() {}

// Attack looses an arrow when the bow allows it.
func (a *Archer) Attack() {
	if !a.Player.Valid() {
		return
	}
	target := a.Player.Position()
	if !a.bow.CanAttack(target) {
		return
	}
	if a.bow.ShootProjectile(target, "") {
		a.trigger(config.AnimAttack)
		a.cue(config.SoundArrowShot)
	}
}
