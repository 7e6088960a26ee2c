package starfire

import (
	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
)

// Player is the ship. Timers are absolute engine milliseconds.
type Player struct {
	X, Y   int
	Health int

	Invincible      bool
	invincibleUntil int64

	DashReady   bool
	dashReadyAt int64
}

func newPlayer(cfg config.StarfireConfig) *Player {
	return &Player{
		X:         cfg.PlayerStartX(),
		Y:         cfg.PlayerY(),
		Health:    cfg.Player.MaxHealth,
		DashReady: true,
	}
}

// Box returns the ship's collision box.
func (p *Player) Box(cfg config.PlayerConfig) core.Rect {
	return core.NewRect(p.X, p.Y, cfg.Width, cfg.Height)
}

// refresh expires invincibility and dash cooldown. Called once per tick.
func (p *Player) refresh(now int64) {
	if p.Invincible && now >= p.invincibleUntil {
		p.Invincible = false
	}
	if !p.DashReady && now >= p.dashReadyAt {
		p.DashReady = true
	}
}

// step moves one speed unit in dir, clamped to [0, maxX].
func (p *Player) step(dir int, cfg config.PlayerConfig, maxX int) {
	p.X = core.Clamp(p.X+dir*cfg.Speed, 0, maxX)
}

// dash teleports by the dash distance in dir and starts the cooldown.
// It reports false when the dash is not ready or dir is zero.
func (p *Player) dash(dir int, now int64, cfg config.PlayerConfig, maxX int) bool {
	if dir == 0 || !p.DashReady {
		return false
	}
	p.X = core.Clamp(p.X+dir*cfg.DashDistance, 0, maxX)
	p.DashReady = false
	p.dashReadyAt = now + cfg.DashCooldownMs
	return true
}

// takeDamage removes one health point unless the ship is invincible.
// It reports whether damage was applied.
func (p *Player) takeDamage(now int64, cfg config.PlayerConfig) bool {
	if p.Invincible || p.Health <= 0 {
		return false
	}
	p.Health--
	p.Invincible = true
	p.invincibleUntil = now + cfg.InvincibilityMs
	return true
}
