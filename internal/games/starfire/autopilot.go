package starfire

import (
	"github.com/vovakirdan/star-fire/internal/config"
	"github.com/vovakirdan/star-fire/internal/core"
)

// Autopilot plays the game from snapshots alone. It drives headless
// simulations and soak tests; it is not meant to be good.
type Autopilot struct {
	// DangerZone is how far above the ship (in arena units) an obstacle
	// counts as a threat.
	DangerZone int
	// DashZone is how close a threat must be before the autopilot dashes.
	DashZone int

	pulse bool
}

// NewAutopilot returns an autopilot with defaults tuned for the stock
// configuration.
func NewAutopilot() *Autopilot {
	return &Autopilot{DangerZone: 150, DashZone: 60}
}

// Next returns the intents for the next tick.
func (a *Autopilot) Next(snap Snapshot, cfg config.StarfireConfig) core.InputFrame {
	// Confirm and restart only fire on edges, so hold them every other tick.
	a.pulse = !a.pulse

	switch snap.Phase {
	case PhaseMenu:
		if a.pulse {
			return core.NewInputFrame(core.ActionConfirm)
		}
		return core.InputFrame{}
	case PhaseGameOver:
		if a.pulse {
			return core.NewInputFrame(core.ActionRestart)
		}
		return core.InputFrame{}
	case PhasePlaying:
	}

	if snap.Player == nil {
		return core.InputFrame{}
	}
	p := snap.Player
	pc := cfg.Player
	oc := cfg.Obstacles
	lane := core.NewRect(p.X-oc.Width, 0, pc.Width+2*oc.Width, p.Y)
	centre := p.X + pc.Width/2

	var in core.InputFrame

	// Dodge the nearest obstacle falling into the ship's lane.
	threat := -1
	for i, o := range snap.Obstacles {
		box := core.NewRect(o.X, o.Y, oc.Width, oc.Height)
		if !box.Intersects(lane) || p.Y-box.Bottom() > a.DangerZone {
			continue
		}
		if threat < 0 || o.Y > snap.Obstacles[threat].Y {
			threat = i
		}
	}
	if threat >= 0 && !p.Invincible {
		o := snap.Obstacles[threat]
		dir := core.ActionLeft
		if o.X+oc.Width/2 < centre || p.X == 0 {
			dir = core.ActionRight
		}
		if p.X >= cfg.PlayerMaxX() {
			dir = core.ActionLeft
		}
		in = in.With(dir)
		if p.DashReady && p.Y-(o.Y+oc.Height) < a.DashZone {
			in = in.With(core.ActionDash)
		}
		return in
	}

	// Otherwise line up under the lowest obstacle and shoot.
	target := -1
	for i, o := range snap.Obstacles {
		if target < 0 || o.Y > snap.Obstacles[target].Y {
			target = i
		}
	}
	if target < 0 {
		return in
	}
	aim := snap.Obstacles[target].X + oc.Width/2
	switch {
	case aim < centre-pc.Speed:
		in = in.With(core.ActionLeft)
	case aim > centre+pc.Speed:
		in = in.With(core.ActionRight)
	}
	if core.Abs(aim-centre) <= oc.Width/2 {
		in = in.With(core.ActionFire)
	}
	return in
}
