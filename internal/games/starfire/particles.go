package starfire

import (
	"math"

	"github.com/vovakirdan/star-fire/internal/config"
)

// Particle is one spark of an explosion. It never affects gameplay.
type Particle struct {
	X, Y      float64
	DX, DY    float64
	Life      int     // Remaining ticks
	Alpha     float64 // Opacity in [0, 1], derived from Life
	ColorSeed int     // Green channel of an orange shade, [0, 155)
}

// Explosion is a burst of particles created in one go.
type Explosion struct {
	Particles   []Particle
	initialLife int
}

func newExplosion(x, y int, cfg config.ParticleConfig, rng Rand) Explosion {
	e := Explosion{
		Particles:   make([]Particle, cfg.Count),
		initialLife: cfg.Lifetime,
	}
	spread := cfg.MaxSpeed - cfg.MinSpeed
	for i := range e.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.MinSpeed + rng.Float64()*spread
		e.Particles[i] = Particle{
			X:         float64(x),
			Y:         float64(y),
			DX:        math.Cos(angle) * speed,
			DY:        math.Sin(angle) * speed,
			Life:      cfg.Lifetime,
			Alpha:     1,
			ColorSeed: rng.Intn(155),
		}
	}
	return e
}

// update advances every particle one tick and drops the expired ones.
func (e *Explosion) update() {
	live := e.Particles[:0]
	for _, p := range e.Particles {
		p.X += p.DX
		p.Y += p.DY
		p.Life--
		p.Alpha = math.Max(0, float64(p.Life)/float64(e.initialLife))
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.Particles = live
}

// Active reports whether any particle is still alive.
func (e *Explosion) Active() bool {
	return len(e.Particles) > 0
}

// updateExplosions advances all bursts and prunes finished ones.
func updateExplosions(explosions []Explosion) []Explosion {
	live := explosions[:0]
	for i := range explosions {
		explosions[i].update()
		if explosions[i].Active() {
			live = append(live, explosions[i])
		}
	}
	for i := len(live); i < len(explosions); i++ {
		explosions[i] = Explosion{}
	}
	return live
}
