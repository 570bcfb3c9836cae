package config

import "strings"

// Difficulty scales enemy durability and attack pacing.
type Difficulty int

// The zero value is DifficultyNormal.
const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

// DifficultyConfig holds the multipliers applied to a spawned enemy.
type DifficultyConfig struct {
	HealthScale   float64 // multiplies Stats.Health
	CooldownScale float64 // multiplies every attack cooldown
	DamageScale   float64 // multiplies outgoing damage
}

// Difficulties maps each preset to its multipliers.
var Difficulties map[Difficulty]DifficultyConfig

func init() {
	Difficulties = map[Difficulty]DifficultyConfig{
		DifficultyEasy: {
			HealthScale:   0.75,
			CooldownScale: 1.4, // slower volleys
			DamageScale:   0.6,
		},
		DifficultyNormal: {
			HealthScale:   1.0,
			CooldownScale: 1.0,
			DamageScale:   1.0,
		},
		DifficultyHard: {
			HealthScale:   1.5,
			CooldownScale: 0.7,
			DamageScale:   1.3,
		},
	}
}

// ParseDifficulty maps a preset name to its Difficulty. Unknown names fall
// back to normal and report false.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return DifficultyEasy, true
	case "normal", "":
		return DifficultyNormal, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyNormal, false
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "normal"
}

// Scaled returns a copy of cfg with the difficulty multipliers applied.
func (c DifficultyConfig) Scaled(cfg AIConfig) AIConfig {
	out := cfg
	scaleHealth := func(s *EnemyStats) {
		s.Health = max(1, int(float64(s.Health)*c.HealthScale))
	}
	scaleRanged := func(r *RangedAttackConfig) {
		r.Cooldown *= c.CooldownScale
		r.Damage = max(1, int(float64(r.Damage)*c.DamageScale))
	}

	scaleHealth(&out.Archer.Stats)
	scaleRanged(&out.Archer.Bow)

	scaleHealth(&out.Mage.Stats)
	scaleRanged(&out.Mage.Fireball)

	scaleHealth(&out.Grunt.Stats)
	out.Grunt.AttackCooldown *= c.CooldownScale
	out.Grunt.Damage = max(1, int(float64(out.Grunt.Damage)*c.DamageScale))

	scaleHealth(&out.Boss.Stats)
	scaleRanged(&out.Boss.Breath)
	scaleRanged(&out.Boss.Flying)
	out.Boss.BiteCooldown *= c.CooldownScale
	out.Boss.BiteDamage = max(1, int(float64(out.Boss.BiteDamage)*c.DamageScale))
	out.Boss.ContactDamage = max(1, int(float64(out.Boss.ContactDamage)*c.DamageScale))
	// Slices are shared with the source config; copy so callers can mutate.
	out.Boss.GroundSearchDistances = append([]float64(nil), cfg.Boss.GroundSearchDistances...)
	out.Boss.GroundLateralOffsets = append([]float64(nil), cfg.Boss.GroundLateralOffsets...)
	return out
}
