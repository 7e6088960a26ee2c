package config

import (
	_ "embed"
)

//go:embed defaults/starfire.yaml
var defaultStarfireYAML []byte

// DefaultStarfireConfig returns the reference configuration.
// It must stay in sync with defaults/starfire.yaml.
func DefaultStarfireConfig() StarfireConfig {
	return StarfireConfig{
		Arena: ArenaConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			Width:           50,
			Height:          50,
			Speed:           5,
			BottomMargin:    20,
			MaxHealth:       3,
			DashDistance:    100,
			DashCooldownMs:  3000,
			InvincibilityMs: 1000,
		},
		Projectile: ProjectileConfig{
			Width:          5,
			Height:         10,
			Speed:          10,
			FireCooldownMs: 500,
		},
		Obstacles: ObstacleConfig{
			Width:       20,
			Height:      20,
			Speed:       3,
			SpawnChance: 0.02,
			Variants:    4,
		},
		Scoring: ScoringConfig{
			ObstacleReward: 10,
		},
		Particles: ParticleConfig{
			Count:    20,
			Lifetime: 30,
			MinSpeed: 1.0,
			MaxSpeed: 4.0,
		},
		Stars: StarConfig{
			Count:         200,
			MinBrightness: 100,
			MaxBrightness: 255,
			MinSpeed:      1,
			MaxSpeed:      2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStarfireYAML
}
