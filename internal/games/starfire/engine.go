// Package starfire implements Star Fire, a vertical arcade shooter: the ship
// dodges and shoots falling obstacles, dashes sideways on a cooldown and
// survives as long as it can.
//
// Engine is the simulation. It is single-threaded and frame-stepped: one
// Tick per frame, all mutation happens inside that call, and every cooldown is
// a timestamp compared against the caller's clock. Game wraps the engine for
// the arcade registry and draws it into a character screen.
package starfire

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
)

// Rand is the randomness the engine needs. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// RunStats counts what happened during the current (or last) run.
type RunStats struct {
	Shots  int
	Kills  int
	Hits   int // Damage actually taken
	Dashes int
}

// Engine owns every entity and advances the simulation.
type Engine struct {
	cfg    config.StarfireConfig
	rng    Rand
	logger *log.Logger

	phase      Phase
	player     *Player
	projectile *Projectile
	obstacles  obstacleArena
	explosions []Explosion
	stars      []Star

	score           int
	startedAt       int64
	elapsed         int64
	fireLockedUntil int64
	stats           RunStats

	edges core.EdgeDetector
}

// EngineOption customises an Engine at construction.
type EngineOption func(*Engine)

// WithRand replaces the default time-seeded randomness.
func WithRand(r Rand) EngineOption {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine in the menu phase.
// cfg is assumed valid; see config.StarfireConfig.Validate.
func NewEngine(cfg config.StarfireConfig, opts ...EngineOption) *Engine {
	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
		phase:  PhaseMenu,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.stars = newStarfield(cfg, e.rng)
	return e
}

// Tick advances the simulation by one fixed step at time nowMillis.
// Confirm and restart react only to the tick they are first pressed on.
func (e *Engine) Tick(in core.InputFrame, nowMillis int64) FrameEvents {
	var events FrameEvents
	pressed := e.edges.Pressed(in)

	switch e.phase {
	case PhaseMenu:
		if pressed.Has(core.ActionConfirm) {
			e.startRun(nowMillis)
			events = append(events, Event{Kind: EventPhaseChanged, Phase: PhasePlaying})
		}
	case PhasePlaying:
		events = e.stepPlaying(in, nowMillis, events)
	case PhaseGameOver:
		if pressed.Has(core.ActionRestart) {
			e.returnToMenu()
			events = append(events, Event{Kind: EventPhaseChanged, Phase: PhaseMenu})
		}
	}

	e.explosions = updateExplosions(e.explosions)
	for i := range e.stars {
		e.stars[i].twinkle(e.cfg.Stars, e.cfg.Arena.Height)
	}
	if e.phase == PhasePlaying {
		e.elapsed = nowMillis - e.startedAt
	}
	return events
}

// stepPlaying runs one gameplay tick: abilities, movement, the shot,
// obstacle resolution, spawning and firing, in that order.
func (e *Engine) stepPlaying(in core.InputFrame, now int64, events FrameEvents) FrameEvents {
	pc := e.cfg.Player
	maxX := e.cfg.PlayerMaxX()

	e.player.refresh(now)

	// A dash replaces the normal step for this tick. Holding both directions
	// is no direction at all.
	dir := in.Direction()
	fromX := e.player.X
	if in.Has(core.ActionDash) && e.player.dash(dir, now, pc, maxX) {
		e.stats.Dashes++
		events = append(events, Event{Kind: EventPlayerDashed, FromX: fromX, X: e.player.X, Y: e.player.Y})
		e.logger.Debug("dash", "from", fromX, "to", e.player.X)
	} else if dir != 0 {
		e.player.step(dir, pc, maxX)
	}

	e.projectile.advance(e.cfg.Projectile.Speed)

	events = e.resolveObstacles(now, events)
	if e.phase != PhasePlaying {
		return events
	}

	e.maybeSpawnObstacle()

	if in.Has(core.ActionFire) && e.fire(now) {
		events = append(events, Event{Kind: EventProjectileFired, X: e.projectile.X, Y: e.projectile.Y})
	}
	return events
}

// resolveObstacles moves every obstacle and settles its contact.
// Resolution stops as soon as the run ends.
func (e *Engine) resolveObstacles(now int64, events FrameEvents) FrameEvents {
	oc := e.cfg.Obstacles
	playerBox := e.player.Box(e.cfg.Player)
	shotBox := e.projectile.Box(e.cfg.Projectile)

	for i := range e.obstacles.items {
		o := &e.obstacles.items[i]
		o.Y += oc.Speed

		switch classify(o.Box(oc), e.cfg.Arena.Height, playerBox, e.projectile, shotBox) {
		case ContactNone:
		case ContactOffscreen:
			e.obstacles.kill(i)
		case ContactPlayer:
			cx, cy := playerBox.Center()
			e.spawnExplosion(cx, cy)
			e.obstacles.kill(i)
			if !e.player.takeDamage(now, e.cfg.Player) {
				continue
			}
			e.stats.Hits++
			events = append(events, Event{Kind: EventPlayerDamaged, X: cx, Y: cy, Health: e.player.Health})
			e.logger.Debug("player hit", "health", e.player.Health)
			if e.player.Health == 0 {
				e.endRun(now)
				events = append(events, Event{Kind: EventPhaseChanged, Phase: PhaseGameOver})
				e.obstacles.sweep()
				return events
			}
		case ContactProjectile:
			e.spawnExplosion(o.X, o.Y)
			e.projectile.hide()
			e.obstacles.kill(i)
			e.score += e.cfg.Scoring.ObstacleReward
			e.stats.Kills++
			events = append(events, Event{Kind: EventObstacleDestroyed, X: o.X, Y: o.Y, ObstacleID: o.ID})
		}
	}

	e.obstacles.sweep()
	return events
}

// maybeSpawnObstacle adds one obstacle at the top with the configured chance.
func (e *Engine) maybeSpawnObstacle() {
	oc := e.cfg.Obstacles
	if e.rng.Float64() >= oc.SpawnChance {
		return
	}
	x := e.rng.Intn(e.cfg.Arena.Width - oc.Width + 1)
	e.obstacles.add(x, e.rng.Intn(oc.Variants))
}

// fire launches the shot from the ship's nose unless it is already in
// flight or the fire-rate lock is still held.
func (e *Engine) fire(now int64) bool {
	if e.projectile.Visible || now < e.fireLockedUntil {
		return false
	}
	x := e.player.X + e.cfg.Player.Width/2 - e.cfg.Projectile.Width/2
	e.projectile.launch(x, e.player.Y)
	e.fireLockedUntil = now + e.cfg.Projectile.FireCooldownMs
	e.stats.Shots++
	return true
}

func (e *Engine) spawnExplosion(x, y int) {
	e.explosions = append(e.explosions, newExplosion(x, y, e.cfg.Particles, e.rng))
}

func (e *Engine) startRun(now int64) {
	e.player = newPlayer(e.cfg)
	e.projectile = &Projectile{}
	e.obstacles.reset()
	e.explosions = e.explosions[:0]
	e.score = 0
	e.startedAt = now
	e.elapsed = 0
	e.fireLockedUntil = 0
	e.stats = RunStats{}
	e.phase = PhasePlaying
	e.logger.Info("run started", "at", now)
}

func (e *Engine) endRun(now int64) {
	e.elapsed = now - e.startedAt
	e.phase = PhaseGameOver
	e.logger.Info("run over",
		"score", e.score,
		"elapsed_ms", e.elapsed,
		"kills", e.stats.Kills,
		"shots", e.stats.Shots,
	)
}

func (e *Engine) returnToMenu() {
	e.player = nil
	e.projectile = nil
	e.obstacles.reset()
	e.explosions = e.explosions[:0]
	e.score = 0
	e.elapsed = 0
	e.phase = PhaseMenu
	e.logger.Info("back to menu")
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// ElapsedMillis returns the run time: live while playing, frozen after game
// over, zero in the menu.
func (e *Engine) ElapsedMillis() int64 {
	return e.elapsed
}

// Health returns the ship's health, or 0 when no run exists.
func (e *Engine) Health() int {
	if e.player == nil {
		return 0
	}
	return e.player.Health
}

// Stats returns counters for the current or last run.
func (e *Engine) Stats() RunStats {
	return e.stats
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.StarfireConfig {
	return e.cfg
}
