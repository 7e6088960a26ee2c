package starfire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/registry"
)

func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 50, Seed: 42}, config.DefaultStarfireConfig())
	return g
}

func screenText(s *core.Screen) string {
	return s.String()
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "starfire", g.ID())
	assert.Equal(t, "Star Fire", g.Title())
}

func TestGameLogicalClock(t *testing.T) {
	g := newTestGame(t, 80, 24)
	confirm := core.NewInputFrame(core.ActionConfirm)

	res := g.Step(confirm)
	assert.Equal(t, int64(20), g.NowMillis())
	assert.False(t, res.State.InMenu)

	for range 50 {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, int64(1000), g.State().ElapsedMillis, "50 ticks at 50 Hz is one second")
}

func TestGameClockAtRatesNotDividingASecond(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, config.DefaultStarfireConfig())

	g.Step(core.NewInputFrame(core.ActionConfirm))
	for range 600 {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, int64(601*1000/60), g.NowMillis())
	assert.Equal(t, int64(10000), g.State().ElapsedMillis, "600 ticks at 60 Hz is ten seconds")
}

func TestGameClockCapsTickRate(t *testing.T) {
	cfg := config.DefaultStarfireConfig()
	cfg.Obstacles.SpawnChance = 0
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 2000, Seed: 42}, cfg)

	for range 10 {
		g.Step(core.InputFrame{})
	}
	assert.Equal(t, int64(10), g.NowMillis(), "the clock keeps moving at the capped rate")

	g.Step(core.NewInputFrame(core.ActionConfirm))
	g.Step(core.NewInputFrame(core.ActionRight, core.ActionDash))
	require.True(t, g.Events().Has(EventPlayerDashed))
	require.False(t, g.engine.player.DashReady)

	for range cfg.Player.DashCooldownMs {
		g.Step(core.InputFrame{})
	}
	assert.True(t, g.engine.player.DashReady, "cooldown expires one tick per millisecond")
}

func TestGameStateFollowsPhase(t *testing.T) {
	g := newTestGame(t, 80, 24)
	assert.True(t, g.State().InMenu)

	g.Step(core.NewInputFrame(core.ActionConfirm))
	st := g.State()
	assert.False(t, st.InMenu)
	assert.False(t, st.GameOver)

	g.engine.player.Health = 1
	g.engine.obstacles.add(g.engine.player.X, 0)
	g.engine.obstacles.items[0].Y = g.engine.player.Y - 10
	res := g.Step(core.InputFrame{})

	assert.True(t, res.State.GameOver)
	assert.True(t, g.Events().Has(EventPhaseChanged))
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	text := screenText(screen)
	assert.Contains(t, text, "S T A R   F I R E")
	assert.Contains(t, text, "Press ENTER to start")
	assert.NotContains(t, text, "Score:")
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	g.Step(core.NewInputFrame(core.ActionFire))
	g.engine.obstacles.add(0, 3)

	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "♥♥♥")
	assert.Contains(t, hud, "DASH")

	text := screenText(screen)
	assert.Contains(t, text, "█", "ship")
	assert.Contains(t, text, "|", "shot")
	assert.Equal(t, '&', screen.GetCell(0, 1).Rune, "variant 3 obstacle in the top-left corner")
}

func TestRenderBlinkWhileInvincible(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Step(core.NewInputFrame(core.ActionConfirm))

	g.engine.player.Invincible = true
	g.engine.player.invincibleUntil = 1 << 40

	visible := 0
	for range 20 {
		g.Step(core.InputFrame{})
		g.Render(screen)
		if strings.Contains(screenText(screen), "█") {
			visible++
		}
	}
	assert.Greater(t, visible, 0)
	assert.Less(t, visible, 20)
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	g.engine.score = 70
	g.engine.player.Health = 1
	g.engine.obstacles.add(g.engine.player.X, 0)
	g.engine.obstacles.items[0].Y = g.engine.player.Y - 10
	g.Step(core.InputFrame{})

	g.Render(screen)

	text := screenText(screen)
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "Final score: 70")
	assert.Contains(t, text, "Press R")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 10, 5)
	screen := core.NewScreen(10, 5)

	g.Render(screen)
	assert.Contains(t, screenText(screen), "Too small")

	g.Resize(80, 24)
	screen.Resize(80, 24)
	g.Render(screen)
	assert.Contains(t, screenText(screen), "Press ENTER")
}

func TestDashStartsTrail(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.Step(core.NewInputFrame(core.ActionConfirm))
	g.Step(core.NewInputFrame(core.ActionRight, core.ActionDash))

	require.NotEmpty(t, g.trail.images)
	assert.Equal(t, 225, g.trail.images[0].X)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screenText(screen), "░")
}

func TestAutopilotSession(t *testing.T) {
	g := newTestGame(t, 80, 24)
	pilot := NewAutopilot()
	cfg := g.Engine().Config()

	shots, kills := 0, 0
	for range 50000 {
		g.Step(pilot.Next(g.Snapshot(), cfg))
		shots += g.Events().Count(EventProjectileFired)
		kills += g.Events().Count(EventObstacleDestroyed)

		if g.Engine().Phase() == PhasePlaying {
			require.Positive(t, g.Engine().Health())
		}
	}

	assert.Positive(t, shots)
	assert.Positive(t, kills)
}

func TestAutopilotPulsesConfirm(t *testing.T) {
	pilot := NewAutopilot()
	cfg := config.DefaultStarfireConfig()
	menu := Snapshot{Phase: PhaseMenu}

	first := pilot.Next(menu, cfg)
	second := pilot.Next(menu, cfg)
	assert.NotEqual(t, first.Has(core.ActionConfirm), second.Has(core.ActionConfirm))
}

func TestAutopilotDodges(t *testing.T) {
	pilot := NewAutopilot()
	cfg := config.DefaultStarfireConfig()
	snap := Snapshot{
		Phase:  PhasePlaying,
		Player: &PlayerView{X: 225, Y: 430, Health: 3, DashReady: true},
		Obstacles: []ObstacleView{
			{ID: 1, X: 230, Y: 380},
		},
	}

	in := pilot.Next(snap, cfg)
	assert.True(t, in.Has(core.ActionRight), "threat left of centre, move right")
	assert.True(t, in.Has(core.ActionDash))
	assert.False(t, in.Has(core.ActionFire))
}
