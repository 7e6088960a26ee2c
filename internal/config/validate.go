package config

import "fmt"

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
// It returns the first problem found.
func (c StarfireConfig) Validate() error {
	positives := []struct {
		field string
		value int
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"player.max_health", c.Player.MaxHealth},
		{"projectile.width", c.Projectile.Width},
		{"projectile.height", c.Projectile.Height},
		{"projectile.speed", c.Projectile.Speed},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.variants", c.Obstacles.Variants},
		{"particles.count", c.Particles.Count},
		{"particles.lifetime", c.Particles.Lifetime},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %d", p.value)}
		}
	}

	if c.Player.Width > c.Arena.Width {
		return ValidationError{Field: "player.width", Message: "wider than the arena"}
	}
	if c.Obstacles.Width > c.Arena.Width {
		return ValidationError{Field: "obstacles.width", Message: "wider than the arena"}
	}
	if c.Player.BottomMargin < 0 {
		return ValidationError{Field: "player.bottom_margin", Message: fmt.Sprintf("must not be negative, got %d", c.Player.BottomMargin)}
	}
	if c.PlayerY() < 0 {
		return ValidationError{Field: "player.bottom_margin", Message: "ship does not fit in the arena"}
	}
	if c.Player.DashDistance < 0 {
		return ValidationError{Field: "player.dash_distance", Message: "must not be negative"}
	}

	durations := []struct {
		field string
		value int64
	}{
		{"player.dash_cooldown_ms", c.Player.DashCooldownMs},
		{"player.invincibility_ms", c.Player.InvincibilityMs},
		{"projectile.fire_cooldown_ms", c.Projectile.FireCooldownMs},
	}
	for _, d := range durations {
		if d.value < 0 {
			return ValidationError{Field: d.field, Message: fmt.Sprintf("must not be negative, got %d", d.value)}
		}
	}

	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		return ValidationError{Field: "obstacles.spawn_chance", Message: "must be within [0, 1]"}
	}
	if c.Particles.MinSpeed < 0 || c.Particles.MaxSpeed < c.Particles.MinSpeed {
		return ValidationError{Field: "particles.max_speed", Message: "speed range is inverted or negative"}
	}
	if c.Stars.Count < 0 {
		return ValidationError{Field: "stars.count", Message: "must not be negative"}
	}
	if c.Stars.MaxBrightness < c.Stars.MinBrightness || c.Stars.MaxSpeed < c.Stars.MinSpeed {
		return ValidationError{Field: "stars", Message: "brightness or speed range is inverted"}
	}
	return nil
}
