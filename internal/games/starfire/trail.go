package starfire

const (
	trailFrames = 6
	trailFade   = 0.1
	// trailLife is how many frames an afterimage takes to fade out.
	trailLife = int(1 / trailFade)
)

// afterImage is a fading copy of the ship left behind by a dash.
type afterImage struct {
	X, Y int
	age  int
}

// Alpha is the opacity of the image, falling by trailFade per frame.
func (a afterImage) Alpha() float64 {
	return 1 - float64(a.age)*trailFade
}

// dashTrail records afterimages for a few frames after each dash.
// It lives on the render side and never touches the simulation.
type dashTrail struct {
	framesLeft int
	images     []afterImage
}

// start begins a new trail at the position the ship dashed from.
func (t *dashTrail) start(fromX, y int) {
	t.framesLeft = trailFrames
	t.images = append(t.images, afterImage{X: fromX, Y: y})
}

// update fades existing images and, while the trail is running, drops a
// new one at the ship's current position.
func (t *dashTrail) update(p *Player) {
	live := t.images[:0]
	for _, img := range t.images {
		img.age++
		if img.age < trailLife {
			live = append(live, img)
		}
	}
	t.images = live

	if t.framesLeft > 0 && p != nil {
		t.images = append(t.images, afterImage{X: p.X, Y: p.Y})
		t.framesLeft--
	}
}

func (t *dashTrail) reset() {
	t.framesLeft = 0
	t.images = t.images[:0]
}
