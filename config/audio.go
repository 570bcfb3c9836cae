package config

// Sound event ids passed to the AudioCue port. Hosts map them to assets.
const (
	SoundEnemyDeath    = "enemy/death"
	SoundEnemyHurt     = "enemy/hurt"
	SoundEnemyJump     = "enemy/jump"
	SoundArrowShot     = "archer/shot"
	SoundFireballCast  = "mage/cast"
	SoundTeleport      = "mage/teleport"
	SoundGruntSwing    = "grunt/swing"
	SoundBossBite      = "boss/bite"
	SoundBossBreath    = "boss/breath"
	SoundBossTakeoff   = "boss/takeoff"
	SoundBossLand      = "boss/land"
	SoundBossFireball  = "boss/fireball"
	SoundProjectileHit = "projectile/hit"
)

// SoundConfig maps sound events to file paths and volume.
type SoundConfig struct {
	SFXPaths          map[string]string
	VolumeMultipliers map[string]float64
}

var Sound SoundConfig

func init() {
	Sound = SoundConfig{
		SFXPaths: map[string]string{
			SoundEnemyDeath:    "audio/sfx/death.wav",
			SoundEnemyHurt:     "audio/sfx/hit.wav",
			SoundEnemyJump:     "audio/sfx/jump.wav",
			SoundArrowShot:     "audio/sfx/arrow.wav",
			SoundFireballCast:  "audio/sfx/fireball.wav",
			SoundTeleport:      "audio/sfx/teleport.wav",
			SoundGruntSwing:    "audio/sfx/punch.wav",
			SoundBossBite:      "audio/sfx/bite.wav",
			SoundBossBreath:    "audio/sfx/breath.wav",
			SoundBossTakeoff:   "audio/sfx/wings.wav",
			SoundBossLand:      "audio/sfx/land.wav",
			SoundBossFireball:  "audio/sfx/fireball.wav",
			SoundProjectileHit: "audio/sfx/hit.wav",
		},
		VolumeMultipliers: map[string]float64{
			SoundEnemyDeath: 1.2,
			SoundBossLand:   1.5,
		},
	}
}

// Volume returns the volume multiplier for a sound event.
func (s SoundConfig) Volume(event string) float64 {
	if v, ok := s.VolumeMultipliers[event]; ok {
		return v
	}
	return 1.0
}
