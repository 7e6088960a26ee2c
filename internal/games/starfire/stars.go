package starfire

import "github.com/vovakirdan/star-fire/internal/config"

// Star is a background dot that twinkles and drifts down.
type Star struct {
	X, Y       int
	Brightness int
	delta      int
	speed      int
}

func newStarfield(cfg config.StarfireConfig, rng Rand) []Star {
	sc := cfg.Stars
	stars := make([]Star, sc.Count)
	for i := range stars {
		delta := 1
		if rng.Intn(2) == 0 {
			delta = -1
		}
		stars[i] = Star{
			X:          rng.Intn(cfg.Arena.Width),
			Y:          rng.Intn(cfg.Arena.Height),
			Brightness: sc.MinBrightness + rng.Intn(sc.MaxBrightness-sc.MinBrightness+1),
			delta:      delta,
			speed:      sc.MinSpeed + rng.Intn(sc.MaxSpeed-sc.MinSpeed+1),
		}
	}
	return stars
}

// twinkle bounces brightness inside its range and moves the star down,
// wrapping to the top past the bottom edge.
func (s *Star) twinkle(sc config.StarConfig, height int) {
	s.Brightness += s.delta
	if s.Brightness > sc.MaxBrightness {
		s.Brightness = sc.MaxBrightness
		s.delta = -1
	} else if s.Brightness < sc.MinBrightness {
		s.Brightness = sc.MinBrightness
		s.delta = 1
	}

	s.Y += s.speed
	if s.Y > height {
		s.Y = 0
	}
}
