package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// File is the on-disk layout of a tuning overlay. Fields left out of the
// YAML keep their current value.
type File struct {
	AI          AIConfig                        `yaml:"ai"`
	Physics     PhysicsConfig                   `yaml:"physics"`
	Player      PlayerConfig                    `yaml:"player"`
	Projectiles map[string]ProjectileTypeConfig `yaml:"projectiles"`
	Arena       ArenaConfig                     `yaml:"arena"`
}

// Snapshot copies the current globals.
func Snapshot() File {
	f := File{
		AI:          AI,
		Physics:     Physics,
		Player:      Player,
		Projectiles: maps.Clone(Projectiles),
		Arena:       Arena,
	}
	f.AI.Boss.GroundSearchDistances = append([]float64(nil), AI.Boss.GroundSearchDistances...)
	f.AI.Boss.GroundLateralOffsets = append([]float64(nil), AI.Boss.GroundLateralOffsets...)
	return f
}

// Decode overlays data onto a snapshot of the current globals.
func Decode(data []byte) (File, error) {
	f := Snapshot()
	colors := make(map[string]ProjectileTypeConfig, len(f.Projectiles))
	maps.Copy(colors, f.Projectiles)

	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	// Colors are not part of the file format.
	for name, p := range f.Projectiles {
		if p.Color.A == 0 {
			if prev, ok := colors[name]; ok {
				p.Color = prev.Color
			} else {
				p.Color = White
			}
			f.Projectiles[name] = p
		}
	}
	return f, nil
}

// Apply replaces the globals with f. Enemies holding pointers into AI see
// the new values on their next tick.
func Apply(f File) {
	AI = f.AI
	Physics = f.Physics
	Player = f.Player
	Projectiles = f.Projectiles
	Arena = f.Arena
}

// LoadFile reads, validates and applies a YAML overlay.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(data)
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	Apply(f)
	return nil
}

// Validate reports every out-of-range value in f.
func (f File) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(f.Arena.TickRate > 0, "arena.tick_rate must be positive, got %d", f.Arena.TickRate)
	check(f.Arena.CellSize > 0, "arena.cell_size must be positive, got %d", f.Arena.CellSize)
	if _, ok := ParseDifficulty(f.Arena.Difficulty); !ok {
		check(false, "arena.difficulty %q is not easy, normal or hard", f.Arena.Difficulty)
	}
	check(f.Physics.Gravity >= 0, "physics.gravity must not be negative")
	check(f.Player.Health > 0, "player.health must be positive")

	ai := f.AI
	check(ai.Tracking.CheckInterval >= 0, "ai.tracking.check_interval must not be negative")
	check(ai.Sensors.MinHitDistance >= 0, "ai.sensors.min_hit_distance must not be negative")

	stats := func(name string, s EnemyStats) {
		check(s.Health > 0, "ai.%s.stats.health must be positive", name)
		check(s.Speed >= 0, "ai.%s.stats.speed must not be negative", name)
		check(s.Width > 0 && s.Height > 0, "ai.%s.stats size must be positive", name)
	}
	ranged := func(name string, r RangedAttackConfig) {
		check(r.Cooldown >= 0, "ai.%s.cooldown must not be negative", name)
		check(r.Range > 0, "ai.%s.range must be positive", name)
		check(r.ProjectileSpeed > 0, "ai.%s.projectile_speed must be positive", name)
		_, ok := f.Projectiles[r.Kind]
		check(ok, "ai.%s.kind %q has no projectile prefab", name, r.Kind)
	}

	stats("archer", ai.Archer.Stats)
	ranged("archer.bow", ai.Archer.Bow)
	check(ai.Archer.ApproachFraction > 0 && ai.Archer.ApproachFraction <= 1,
		"ai.archer.approach_fraction must be in (0, 1]")

	stats("mage", ai.Mage.Stats)
	ranged("mage.fireball", ai.Mage.Fireball)
	check(ai.Mage.TeleportCooldown >= 0, "ai.mage.teleport_cooldown must not be negative")

	g := ai.Grunt
	stats("grunt", g.Stats)
	check(g.MaxJumpAttempts >= 1, "ai.grunt.max_jump_attempts must be at least 1")
	check(g.StuckCheckWindow > 0 && g.StuckCheckWindow <= g.StuckJumpAfter && g.StuckJumpAfter <= g.StuckReverseAfter,
		"ai.grunt stuck thresholds must satisfy 0 < window <= jump_after <= reverse_after")
	check(g.AttackWindup <= g.AttackDuration, "ai.grunt.attack_windup must not exceed attack_duration")

	b := ai.Boss
	stats("boss", b.Stats)
	ranged("boss.breath", b.Breath)
	ranged("boss.flying", b.Flying)
	check(b.PhaseTrigger == PhaseTriggerDamage || b.PhaseTrigger == PhaseTriggerTimer,
		"ai.boss.phase_trigger %q is not damage or timer", b.PhaseTrigger)
	check(b.HeightChangeDuration > 0, "ai.boss.height_change_duration must be positive")
	check(len(b.GroundSearchDistances) > 0, "ai.boss.ground_search_distances must not be empty")

	return errors.Join(errs...)
}
