package starfire

import (
	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
)

// Projectile is the single forward shot. It is reused, never reallocated,
// for the whole run.
type Projectile struct {
	X, Y    int
	Visible bool
}

// Box returns the shot's collision box.
func (p *Projectile) Box(cfg config.ProjectileConfig) core.Rect {
	return core.NewRect(p.X, p.Y, cfg.Width, cfg.Height)
}

// launch places the shot at (x, y) and shows it.
func (p *Projectile) launch(x, y int) {
	p.X = x
	p.Y = y
	p.Visible = true
}

// advance moves the shot up and hides it once it leaves the top.
func (p *Projectile) advance(speed int) {
	if !p.Visible {
		return
	}
	p.Y -= speed
	if p.Y < 0 {
		p.Visible = false
	}
}

func (p *Projectile) hide() {
	p.Visible = false
}
