// Package config provides YAML-based configuration loading for Star Fire.
// Every tunable constant of the simulation lives in StarfireConfig, which is
// built once and handed to the engine at construction.
package config

// StarfireConfig contains all configuration for the Star Fire game.
type StarfireConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Particles  ParticleConfig   `yaml:"particles"`
	Stars      StarConfig       `yaml:"stars"`
}

// ArenaConfig defines the logical play field in arena units.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship size, movement and ability timings.
type PlayerConfig struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	Speed           int   `yaml:"speed"`         // Units per tick while a direction is held
	BottomMargin    int   `yaml:"bottom_margin"` // Gap between ship and arena bottom
	MaxHealth       int   `yaml:"max_health"`
	DashDistance    int   `yaml:"dash_distance"`
	DashCooldownMs  int64 `yaml:"dash_cooldown_ms"`
	InvincibilityMs int64 `yaml:"invincibility_ms"`
}

// ProjectileConfig defines the single forward shot.
type ProjectileConfig struct {
	Width          int   `yaml:"width"`
	Height         int   `yaml:"height"`
	Speed          int   `yaml:"speed"`
	FireCooldownMs int64 `yaml:"fire_cooldown_ms"`
}

// ObstacleConfig defines falling hazards and how often they appear.
type ObstacleConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       int     `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability of one spawn per tick
	Variants    int     `yaml:"variants"`     // Number of sprite variants
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	ObstacleReward int `yaml:"obstacle_reward"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	Count    int     `yaml:"count"`    // Particles per explosion
	Lifetime int     `yaml:"lifetime"` // Ticks
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// StarConfig defines the background starfield.
type StarConfig struct {
	Count         int `yaml:"count"`
	MinBrightness int `yaml:"min_brightness"`
	MaxBrightness int `yaml:"max_brightness"`
	MinSpeed      int `yaml:"min_speed"`
	MaxSpeed      int `yaml:"max_speed"`
}

// PlayerStartX returns the x position that centres the ship.
func (c StarfireConfig) PlayerStartX() int {
	return c.Arena.Width/2 - c.Player.Width/2
}

// PlayerY returns the fixed y position of the ship.
func (c StarfireConfig) PlayerY() int {
	return c.Arena.Height - c.Player.Height - c.Player.BottomMargin
}

// PlayerMaxX returns the rightmost legal x of the ship.
func (c StarfireConfig) PlayerMaxX() int {
	return c.Arena.Width - c.Player.Width
}
