package starfire

// Snapshot is a read-only copy of the frame for rendering, HUD and audio.
// Nothing in it aliases engine state.
type Snapshot struct {
	Phase         Phase
	Player        *PlayerView     // nil in the menu
	Projectile    *ProjectileView // nil in the menu
	Obstacles     []ObstacleView
	Explosions    []ExplosionView
	Stars         []StarView
	Score         int
	ElapsedMillis int64
}

// PlayerView is the visible state of the ship.
type PlayerView struct {
	X, Y       int
	Health     int
	Invincible bool
	DashReady  bool
}

// ProjectileView is the visible state of the shot.
type ProjectileView struct {
	X, Y    int
	Visible bool
}

// ObstacleView is the visible state of one obstacle.
type ObstacleView struct {
	ID      ObstacleID
	X, Y    int
	Variant int
}

// ExplosionView holds the live particles of one burst.
type ExplosionView struct {
	Particles []ParticleView
}

// ParticleView is one spark.
type ParticleView struct {
	X, Y      float64
	Alpha     float64
	ColorSeed int
}

// StarView is one background star.
type StarView struct {
	X, Y       int
	Brightness int
}

// Snapshot copies the current frame.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         e.phase,
		Score:         e.score,
		ElapsedMillis: e.elapsed,
	}

	if e.player != nil {
		s.Player = &PlayerView{
			X:          e.player.X,
			Y:          e.player.Y,
			Health:     e.player.Health,
			Invincible: e.player.Invincible,
			DashReady:  e.player.DashReady,
		}
	}
	if e.projectile != nil {
		s.Projectile = &ProjectileView{
			X:       e.projectile.X,
			Y:       e.projectile.Y,
			Visible: e.projectile.Visible,
		}
	}

	s.Obstacles = make([]ObstacleView, 0, e.obstacles.len())
	for _, o := range e.obstacles.items {
		s.Obstacles = append(s.Obstacles, ObstacleView{ID: o.ID, X: o.X, Y: o.Y, Variant: o.Variant})
	}

	s.Explosions = make([]ExplosionView, 0, len(e.explosions))
	for _, ex := range e.explosions {
		view := ExplosionView{Particles: make([]ParticleView, len(ex.Particles))}
		for i, p := range ex.Particles {
			view.Particles[i] = ParticleView{X: p.X, Y: p.Y, Alpha: p.Alpha, ColorSeed: p.ColorSeed}
		}
		s.Explosions = append(s.Explosions, view)
	}

	s.Stars = make([]StarView, len(e.stars))
	for i, st := range e.stars {
		s.Stars[i] = StarView{X: st.X, Y: st.Y, Brightness: st.Brightness}
	}
	return s
}

// Health returns the ship's health in the snapshot, 0 without a ship.
func (s Snapshot) Health() int {
	if s.Player == nil {
		return 0
	}
	return s.Player.Health
}
