package page

// glideTicks is the length of a smooth scroll at 60 ticks per second.
const glideTicks = 30

// Scroller owns the viewport scroll position. Wheel and key input move it
// directly; nav clicks start a glide that eases toward the target over half
// a second. Direct input always cancels an in-flight glide so the page never
// fights the user.
type Scroller struct {
	Pos float64

	from, to float64
	tick     int
	gliding  bool
}

// Gliding reports whether a smooth scroll is in flight.
func (sc *Scroller) Gliding() bool { return sc.gliding }

// GlideTo starts a smooth scroll toward target, clamped to [0, max].
func (sc *Scroller) GlideTo(target, max float64) {
	sc.from = sc.Pos
	sc.to = clamp(target, 0, max)
	sc.tick = 0
	sc.gliding = true
}

// ScrollBy moves the position immediately by delta, clamped to [0, max],
// cancelling any glide.
func (sc *Scroller) ScrollBy(delta, max float64) {
	sc.ScrollTo(sc.Pos+delta, max)
}

// ScrollTo jumps the position immediately, clamped to [0, max], cancelling
// any glide.
func (sc *Scroller) ScrollTo(pos, max float64) {
	sc.gliding = false
	sc.Pos = clamp(pos, 0, max)
}

// Update advances an in-flight glide by one tick.
func (sc *Scroller) Update() {
	if !sc.gliding {
		return
	}
	sc.tick++
	t := float64(sc.tick) / glideTicks
	if t >= 1 {
		sc.Pos = sc.to
		sc.gliding = false
		return
	}
	sc.Pos = sc.from + (sc.to-sc.from)*easeOutCubic(t)
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
