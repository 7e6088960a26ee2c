package starfire

import (
	"fmt"

	"github.com/vovakirdan/star-fire/internal/core"
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// blinkPeriodMs is how long the ship stays visible, then hidden, while
// invincible.
const blinkPeriodMs = 100

// obstacleGlyphs maps sprite variants to a glyph and colour.
var obstacleGlyphs = []struct {
	r rune
	c core.Color
}{
	{'#', core.ColorOrange},
	{'@', core.ColorRed},
	{'%', core.ColorMagenta},
	{'&', core.ColorYellow},
}

// viewport maps arena units onto the screen area below the HUD.
type viewport struct {
	arenaW, arenaH int
	cols, rows     int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	cfg := g.engine.Config()
	return viewport{
		arenaW: cfg.Arena.Width,
		arenaH: cfg.Arena.Height,
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows,
	}
}

func (v viewport) cell(x, y int) (int, int) {
	return x * v.cols / v.arenaW, hudRows + y*v.rows/v.arenaH
}

// rect scales an arena box to cells; every entity covers at least one cell.
func (v viewport) rect(x, y, w, h int) core.Rect {
	x0, y0 := v.cell(x, y)
	x1, y1 := v.cell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// plot sets a cell inside the arena area, leaving the HUD row alone.
func plot(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < hudRows {
		return
	}
	dst.SetColored(x, y, r, c)
}

func fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			plot(dst, x, y, ch, c)
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.engine == nil {
		dst.DrawTextCentered(dst.Height()/2, "Too small", core.ColorYellow)
		return
	}

	snap := g.engine.Snapshot()
	vp := g.viewport(dst)

	g.renderStars(dst, vp, snap)

	switch snap.Phase {
	case PhaseMenu:
		g.renderMenu(dst)
		return
	case PhasePlaying, PhaseGameOver:
	}

	g.renderHUD(dst, snap)
	g.renderObstacles(dst, vp, snap)
	g.renderProjectile(dst, vp, snap)
	g.renderTrail(dst, vp)
	g.renderPlayer(dst, vp, snap)
	g.renderExplosions(dst, vp, snap)

	if snap.Phase == PhaseGameOver {
		g.renderGameOver(dst, snap)
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := FormatHUD(snap.Score, snap.Health(), snap.ElapsedMillis)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	if snap.Player != nil && snap.Player.DashReady {
		label := "DASH"
		dst.DrawTextColored(dst.Width()-len(label)-1, 0, label, core.ColorBrightCyan)
	}
}

func (g *Game) renderStars(dst *core.Screen, vp viewport, snap Snapshot) {
	for _, s := range snap.Stars {
		x, y := vp.cell(s.X, s.Y)
		plot(dst, x, y, '.', core.ShadeGray(s.Brightness))
	}
}

func (g *Game) renderObstacles(dst *core.Screen, vp viewport, snap Snapshot) {
	oc := g.engine.Config().Obstacles
	for _, o := range snap.Obstacles {
		glyph := obstacleGlyphs[o.Variant%len(obstacleGlyphs)]
		fill(dst, vp.rect(o.X, o.Y, oc.Width, oc.Height), glyph.r, glyph.c)
	}
}

func (g *Game) renderProjectile(dst *core.Screen, vp viewport, snap Snapshot) {
	if snap.Projectile == nil || !snap.Projectile.Visible {
		return
	}
	pc := g.engine.Config().Projectile
	fill(dst, vp.rect(snap.Projectile.X, snap.Projectile.Y, pc.Width, pc.Height), '|', core.ColorBrightYellow)
}

func (g *Game) renderTrail(dst *core.Screen, vp viewport) {
	pc := g.engine.Config().Player
	for _, img := range g.trail.images {
		c := core.ColorBlue
		if img.Alpha() > 0.5 {
			c = core.ColorCyan
		}
		fill(dst, vp.rect(img.X, img.Y, pc.Width, pc.Height), '░', c)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp viewport, snap Snapshot) {
	p := snap.Player
	if p == nil || p.Health <= 0 {
		return
	}
	if p.Invincible && (g.now/blinkPeriodMs)%2 == 1 {
		return
	}

	r := vp.rect(p.X, p.Y, g.engine.Config().Player.Width, g.engine.Config().Player.Height)
	fill(dst, r, '█', core.ColorBrightCyan)
	plot(dst, r.X+r.W/2, r.Y, '▲', core.ColorBrightWhite)
}

func (g *Game) renderExplosions(dst *core.Screen, vp viewport, snap Snapshot) {
	for _, ex := range snap.Explosions {
		for _, p := range ex.Particles {
			x, y := vp.cell(int(p.X), int(p.Y))
			plot(dst, x, y, particleRune(p.Alpha), particleColor(p))
		}
	}
}

func particleRune(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '*'
	case alpha > 0.33:
		return '+'
	default:
		return '.'
	}
}

// particleColor picks an orange shade from the seed and fades to red.
func particleColor(p ParticleView) core.Color {
	if p.Alpha <= 0.33 {
		return core.ColorRed
	}
	switch {
	case p.ColorSeed < 50:
		return core.ColorDarkOrange
	case p.ColorSeed < 100:
		return core.ColorOrange
	default:
		return core.ColorBrightYellow
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "S T A R   F I R E", core.ColorBrightYellow)
	dst.DrawTextCentered(mid-1, "Press ENTER to start", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, "←/→ move   ↑ fire   ↓ + direction dash", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Q to quit", core.ColorDarkGray)
}

func (g *Game) renderGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", snap.Score),
		fmt.Sprintf("Survived: %ds", snap.ElapsedMillis/1000),
		"Press R to return to the menu",
	}

	maxLen := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > maxLen {
			maxLen = n
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
