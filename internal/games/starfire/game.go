package starfire

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/registry"
)

// GameID is the registry identifier of Star Fire.
const GameID = "starfire"

// configPath stores the custom config path set via CLI
var configPath string

// logger is shared by every engine the registry creates.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new engines. nil restores the silent
// default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Minimum screen that still shows a playable arena.
const (
	minScreenW = 20
	minScreenH = 8
)

// Game adapts the engine to the arcade registry. It owns the logical clock
// and the render-only state (dash trail, blink phase).
type Game struct {
	runtime core.RuntimeConfig
	engine  *Engine

	tick   int64
	now    int64
	events FrameEvents
	trail  dashTrail

	tooSmall bool
}

// New creates a Star Fire game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Star Fire"
}

// Reset loads the configuration and builds a fresh engine in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadStarfire(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultStarfireConfig()
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig is Reset with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.StarfireConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.engine = NewEngine(cfg,
		WithRand(rand.New(rand.NewSource(seed))),
		WithLogger(logger),
	)

	g.tick = 0
	g.now = 0
	g.events = nil
	g.trail.reset()
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Resize updates the screen size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the engine by one tick of the logical clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.now = g.runtime.MillisAt(g.tick)
	g.events = g.engine.Tick(in, g.now)

	for _, ev := range g.events {
		switch ev.Kind {
		case EventPlayerDashed:
			g.trail.start(ev.FromX, ev.Y)
		case EventPhaseChanged:
			g.trail.reset()
		}
	}
	g.trail.update(g.engine.player)

	return core.StepResult{State: g.State()}
}

// State returns the summary the platform shows and records.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{InMenu: true}
	}
	return core.GameState{
		Score:         g.engine.Score(),
		ElapsedMillis: g.engine.ElapsedMillis(),
		GameOver:      g.engine.Phase() == PhaseGameOver,
		InMenu:        g.engine.Phase() == PhaseMenu,
	}
}

// Events returns the events of the last Step.
func (g *Game) Events() FrameEvents {
	return g.events
}

// Snapshot returns the current frame of the engine.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// RunStats returns the counters of the current or last run.
func (g *Game) RunStats() RunStats {
	return g.engine.Stats()
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// NowMillis returns the logical clock.
func (g *Game) NowMillis() int64 {
	return g.now
}
