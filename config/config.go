package config

import "image/color"

// TrackingConfig controls how often enemies re-resolve the player.
type TrackingConfig struct {
	CheckInterval   float64 `yaml:"check_interval"`   // seconds between player lookups; trades staleness for query cost
	FacingThreshold float64 `yaml:"facing_threshold"` // min horizontal offset before an enemy flips to face the player
}

// SensorConfig contains the probe lengths used by the shared spatial queries.
type SensorConfig struct {
	GroundProbe      float64 `yaml:"ground_probe"`       // distance below the feet that still counts as grounded
	WallProbe        float64 `yaml:"wall_probe"`         // forward ray length at mid height
	LedgeProbeAhead  float64 `yaml:"ledge_probe_ahead"`  // how far ahead of the feet the ledge probe starts
	LedgeProbeDepth  float64 `yaml:"ledge_probe_depth"`  // drop depth that counts as a ledge
	EnemyProbeRadius float64 `yaml:"enemy_probe_radius"` // overlap radius of the enemy-ahead probe
	MinHitDistance   float64 `yaml:"min_hit_distance"`   // hits closer than this mean the ray started inside geometry
}

// EnemyStats are the fields every enemy kind shares.
type EnemyStats struct {
	Name            string  `yaml:"name"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`            // px/s
	DetectionRadius float64 `yaml:"detection_radius"` // px
	JumpSpeed       float64 `yaml:"jump_speed"`       // px/s upward impulse
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
}

// RangedAttackConfig configures one ProjectileAttacker.
type RangedAttackConfig struct {
	Kind            string  `yaml:"kind"` // projectile prefab key, see Projectiles
	Cooldown        float64 `yaml:"cooldown"`
	Range           float64 `yaml:"range"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Damage          int     `yaml:"damage"`
	SpawnOffsetX    float64 `yaml:"spawn_offset_x"` // mirrored by shot direction
	SpawnOffsetY    float64 `yaml:"spawn_offset_y"`
}

type ArcherConfig struct {
	Stats            EnemyStats         `yaml:"stats"`
	Bow              RangedAttackConfig `yaml:"bow"`
	ApproachFraction float64            `yaml:"approach_fraction"` // approach while distance > range*fraction
}

type MageConfig struct {
	Stats             EnemyStats         `yaml:"stats"`
	Fireball          RangedAttackConfig `yaml:"fireball"`
	HoverHeight       float64            `yaml:"hover_height"`    // px above the player
	HoverAmplitude    float64            `yaml:"hover_amplitude"` // px
	HoverFrequency    float64            `yaml:"hover_frequency"` // rad/s
	FollowGain        float64            `yaml:"follow_gain"`     // velocity per px of error
	CastWindup        float64            `yaml:"cast_windup"`
	TeleportThreshold float64            `yaml:"teleport_threshold"`
	TeleportCooldown  float64            `yaml:"teleport_cooldown"`
	TeleportDistance  float64            `yaml:"teleport_distance"`
	TeleportDuration  float64            `yaml:"teleport_duration"` // fade time, busy for its length
}

type GruntConfig struct {
	Stats EnemyStats `yaml:"stats"`

	// Melee
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackWindup   float64 `yaml:"attack_windup"`   // time until the hit frame
	AttackDuration float64 `yaml:"attack_duration"` // busy time of a swing
	Damage         int     `yaml:"damage"`
	KnockbackX     float64 `yaml:"knockback_x"`
	KnockbackY     float64 `yaml:"knockback_y"`

	// Navigation
	StandOffDistance    float64 `yaml:"stand_off_distance"`
	VerticalThreshold   float64 `yaml:"vertical_threshold"`    // player counts as above when higher than this
	CautiousSpeedFactor float64 `yaml:"cautious_speed_factor"` // speed multiplier near ledges
	MaxJumpHeight       float64 `yaml:"max_jump_height"`
	MaxJumpDistance     float64 `yaml:"max_jump_distance"`
	MaxJumpAttempts     int     `yaml:"max_jump_attempts"`
	JumpCooldown        float64 `yaml:"jump_cooldown"`
	JumpTimeout         float64 `yaml:"jump_timeout"` // give up waiting for a landing after this
	PathStability       float64 `yaml:"path_stability"`
	ArrivalTolerance    float64 `yaml:"arrival_tolerance"`
	LateralProbeStep    float64 `yaml:"lateral_probe_step"`
	LateralProbeCount   int     `yaml:"lateral_probe_count"`

	// Stuck detection
	StuckCheckWindow  float64 `yaml:"stuck_check_window"`
	StuckJumpAfter    float64 `yaml:"stuck_jump_after"`
	StuckReverseAfter float64 `yaml:"stuck_reverse_after"`
	StuckMinSpeed     float64 `yaml:"stuck_min_speed"` // px/s of displacement that counts as moving
}

// PhaseTrigger selects what flips the boss between grounded and flying.
type PhaseTrigger string

const (
	PhaseTriggerDamage PhaseTrigger = "damage"
	PhaseTriggerTimer  PhaseTrigger = "timer"
)

type BossConfig struct {
	Stats EnemyStats `yaml:"stats"`

	// Phases
	PhaseTrigger               PhaseTrigger `yaml:"phase_trigger"`
	PhaseChangeDamageThreshold int          `yaml:"phase_change_damage_threshold"`
	PhaseChangeCooldown        float64      `yaml:"phase_change_cooldown"`
	PhaseInterval              float64      `yaml:"phase_interval"` // timer trigger only
	HeightChangeDuration       float64      `yaml:"height_change_duration"`

	// Flight
	FlyHeight  float64 `yaml:"fly_height"` // px above sensed ground
	FlySpeed   float64 `yaml:"fly_speed"`
	FollowGain float64 `yaml:"follow_gain"`
	HeightLerp float64 `yaml:"height_lerp"` // per second

	// Grounded attacks
	BiteRange      float64            `yaml:"bite_range"`
	BiteCooldown   float64            `yaml:"bite_cooldown"`
	BiteDamage     int                `yaml:"bite_damage"`
	BiteKnockbackX float64            `yaml:"bite_knockback_x"`
	BiteKnockbackY float64            `yaml:"bite_knockback_y"`
	Breath         RangedAttackConfig `yaml:"breath"`
	BreathDuration float64            `yaml:"breath_duration"`

	// Flying attack
	Flying RangedAttackConfig `yaml:"flying"`

	// Contact
	ContactDamage    int     `yaml:"contact_damage"`
	ContactKnockback float64 `yaml:"contact_knockback"`

	// Ground sensing
	GroundSenseInterval   float64   `yaml:"ground_sense_interval"`
	GroundSearchDistances []float64 `yaml:"ground_search_distances"`
	GroundLateralOffsets  []float64 `yaml:"ground_lateral_offsets"`
	FallbackGroundOffset  float64   `yaml:"fallback_ground_offset"`
}

// AIConfig groups the tuning of every enemy kind.
type AIConfig struct {
	Tracking TrackingConfig `yaml:"tracking"`
	Sensors  SensorConfig   `yaml:"sensors"`
	Archer   ArcherConfig   `yaml:"archer"`
	Mage     MageConfig     `yaml:"mage"`
	Grunt    GruntConfig    `yaml:"grunt"`
	Boss     BossConfig     `yaml:"boss"`
}

// PhysicsConfig contains the arena's integration constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/s^2
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // px/s
	Friction     float64 `yaml:"friction"`       // px/s lost per tick on ground when no drive
}

// PlayerConfig describes the arena's scripted player dummy.
type PlayerConfig struct {
	Health         int     `yaml:"health"`
	InvulnTime     float64 `yaml:"invuln_time"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	AttackDamage   int     `yaml:"attack_damage"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	StunTime       float64 `yaml:"stun_time"` // seconds the dummy stops patrolling after knockback
}

// ProjectileTypeConfig describes a projectile prefab.
type ProjectileTypeConfig struct {
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Knockback float64    `yaml:"knockback"`
	Lifetime  float64    `yaml:"lifetime"`
	Color     color.RGBA `yaml:"-"`
}

// ArenaConfig contains the headless host settings.
type ArenaConfig struct {
	TickRate      int     `yaml:"tick_rate"`
	DeathDuration float64 `yaml:"death_duration"` // seconds between Die and despawn
	RespawnDelay  float64 `yaml:"respawn_delay"`  // 0 disables respawns
	CellSize      int     `yaml:"cell_size"`
	Difficulty    string  `yaml:"difficulty"`
}

// Global configuration instances
var AI AIConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Projectiles map[string]ProjectileTypeConfig
var Arena ArenaConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	SetDefaults()
}

// SetDefaults restores every global to its built-in value.
func SetDefaults() {
	AI = DefaultAI()

	Physics = PhysicsConfig{
		Gravity:      1800,
		MaxFallSpeed: 600,
		Friction:     30,
	}

	Player = PlayerConfig{
		Health:         300,
		InvulnTime:     0.75,
		PatrolSpeed:    90,
		PatrolDistance: 96,
		Width:          16,
		Height:         40,
		AttackDamage:   20,
		AttackRange:    40,
		AttackCooldown: 0.8,
		StunTime:       0.3,
	}

	Projectiles = map[string]ProjectileTypeConfig{
		"arrow":         {Width: 12, Height: 3, Knockback: 120, Lifetime: 3, Color: Yellow},
		"fireball":      {Width: 10, Height: 10, Knockback: 180, Lifetime: 4, Color: Orange},
		"breath":        {Width: 16, Height: 12, Knockback: 240, Lifetime: 1.5, Color: Red},
		"fireball_huge": {Width: 20, Height: 20, Knockback: 300, Lifetime: 5, Color: Red},
	}

	Arena = ArenaConfig{
		TickRate:      60,
		DeathDuration: 1.0,
		RespawnDelay:  0,
		CellSize:      16,
		Difficulty:    "normal",
	}
}

// DefaultAI returns the built-in enemy tuning.
func DefaultAI() AIConfig {
	return AIConfig{
		Tracking: TrackingConfig{
			CheckInterval:   0.2,
			FacingThreshold: 4,
		},
		Sensors: SensorConfig{
			GroundProbe:      4,
			WallProbe:        12,
			LedgeProbeAhead:  6,
			LedgeProbeDepth:  24,
			EnemyProbeRadius: 6,
			MinHitDistance:   0.5,
		},
		Archer: ArcherConfig{
			Stats: EnemyStats{
				Name:            "Archer",
				Health:          40,
				Speed:           90,
				DetectionRadius: 320,
				JumpSpeed:       420,
				Width:           16,
				Height:          36,
			},
			Bow: RangedAttackConfig{
				Kind:            "arrow",
				Cooldown:        1.5,
				Range:           240,
				ProjectileSpeed: 360,
				Damage:          15,
				SpawnOffsetX:    10,
				SpawnOffsetY:    -6,
			},
			ApproachFraction: 0.8,
		},
		Mage: MageConfig{
			Stats: EnemyStats{
				Name:            "Mage",
				Health:          35,
				Speed:           120,
				DetectionRadius: 360,
				Width:           16,
				Height:          32,
			},
			Fireball: RangedAttackConfig{
				Kind:            "fireball",
				Cooldown:        2.5,
				Range:           280,
				ProjectileSpeed: 240,
				Damage:          25,
				SpawnOffsetX:    8,
			},
			HoverHeight:       72,
			HoverAmplitude:    6,
			HoverFrequency:    3,
			FollowGain:        3,
			CastWindup:        0.6,
			TeleportThreshold: 96,
			TeleportCooldown:  4,
			TeleportDistance:  160,
			TeleportDuration:  0.4,
		},
		Grunt: GruntConfig{
			Stats: EnemyStats{
				Name:            "Grunt",
				Health:          60,
				Speed:           130,
				DetectionRadius: 280,
				JumpSpeed:       520,
				Width:           16,
				Height:          40,
			},
			AttackRange:    32,
			AttackCooldown: 1.0,
			AttackWindup:   0.25,
			AttackDuration: 0.5,
			Damage:         30,
			KnockbackX:     240,
			KnockbackY:     -180,

			StandOffDistance:    24,
			VerticalThreshold:   32,
			CautiousSpeedFactor: 0.4,
			MaxJumpHeight:       72,
			MaxJumpDistance:     96,
			MaxJumpAttempts:     2,
			JumpCooldown:        0.4,
			JumpTimeout:         1.5,
			PathStability:       1.0,
			ArrivalTolerance:    6,
			LateralProbeStep:    32,
			LateralProbeCount:   6,

			StuckCheckWindow:  2,
			StuckJumpAfter:    3,
			StuckReverseAfter: 6,
			StuckMinSpeed:     8,
		},
		Boss: BossConfig{
			Stats: EnemyStats{
				Name:            "DaBigBoss",
				Health:          600,
				Speed:           70,
				DetectionRadius: 520,
				Width:           64,
				Height:          48,
			},
			PhaseTrigger:               PhaseTriggerDamage,
			PhaseChangeDamageThreshold: 100,
			PhaseChangeCooldown:        2,
			PhaseInterval:              12,
			HeightChangeDuration:       2,

			FlyHeight:  120,
			FlySpeed:   110,
			FollowGain: 2,
			HeightLerp: 2.5,

			BiteRange:      56,
			BiteCooldown:   1.2,
			BiteDamage:     45,
			BiteKnockbackX: 360,
			BiteKnockbackY: -240,
			Breath: RangedAttackConfig{
				Kind:            "breath",
				Cooldown:        2,
				Range:           200,
				ProjectileSpeed: 260,
				Damage:          30,
				SpawnOffsetX:    28,
				SpawnOffsetY:    -8,
			},
			BreathDuration: 0.8,

			Flying: RangedAttackConfig{
				Kind:            "fireball_huge",
				Cooldown:        1.8,
				Range:           420,
				ProjectileSpeed: 280,
				Damage:          35,
				SpawnOffsetY:    20,
			},

			ContactDamage:    10,
			ContactKnockback: 90,

			GroundSenseInterval:   0.25,
			GroundSearchDistances: []float64{200, 400, 800},
			GroundLateralOffsets:  []float64{-48, 48, -96, 96},
			FallbackGroundOffset:  160,
		},
	}
}
