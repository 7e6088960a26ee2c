package starfire

import (
	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
)

// ObstacleID is stable for the lifetime of an obstacle within a run.
type ObstacleID uint64

// Obstacle is a falling hazard.
type Obstacle struct {
	ID      ObstacleID
	X, Y    int
	Variant int // Sprite variant, cosmetic only

	dead bool
}

// Box returns the obstacle's collision box.
func (o *Obstacle) Box(cfg config.ObstacleConfig) core.Rect {
	return core.NewRect(o.X, o.Y, cfg.Width, cfg.Height)
}

// obstacleArena stores live obstacles in insertion order.
// Removal marks an entry dead; sweep compacts the slice once per tick so
// indices stay valid while the resolver walks it.
type obstacleArena struct {
	items  []Obstacle
	nextID ObstacleID
}

func (a *obstacleArena) reset() {
	a.items = a.items[:0]
	a.nextID = 0
}

func (a *obstacleArena) add(x, variant int) ObstacleID {
	a.nextID++
	a.items = append(a.items, Obstacle{ID: a.nextID, X: x, Variant: variant})
	return a.nextID
}

func (a *obstacleArena) kill(i int) {
	a.items[i].dead = true
}

func (a *obstacleArena) sweep() {
	live := a.items[:0]
	for _, o := range a.items {
		if !o.dead {
			live = append(live, o)
		}
	}
	// Clear the tail so dead entries don't linger in the backing array
	for i := len(live); i < len(a.items); i++ {
		a.items[i] = Obstacle{}
	}
	a.items = live
}

func (a *obstacleArena) len() int {
	return len(a.items)
}

// Contact is the outcome of testing one obstacle against the world.
type Contact uint8

const (
	ContactNone       Contact = iota // Still falling, touching nothing
	ContactOffscreen                 // Bottom edge left the arena
	ContactPlayer                    // Hit the ship
	ContactProjectile                // Hit by the shot
)

// String returns the contact name.
func (c Contact) String() string {
	switch c {
	case ContactNone:
		return "none"
	case ContactOffscreen:
		return "offscreen"
	case ContactPlayer:
		return "player"
	case ContactProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// classify decides what an obstacle box touches this tick.
// Leaving the arena wins over everything, and the ship wins over the shot,
// so one obstacle can never both score and deal damage.
func classify(obstacle core.Rect, arenaH int, player core.Rect, shot *Projectile, shotBox core.Rect) Contact {
	if obstacle.Bottom() > arenaH {
		return ContactOffscreen
	}
	if obstacle.Intersects(player) {
		return ContactPlayer
	}
	if shot != nil && shot.Visible && obstacle.Intersects(shotBox) {
		return ContactProjectile
	}
	return ContactNone
}
