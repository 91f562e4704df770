// Package particles implements the two particle systems on the page: the
// ambient background field that drifts forever, and the confetti burst that
// rains down once and ends. Both take their randomness from the caller so
// runs can be reproduced.
package particles

import (
	"math"
	"math/rand"
)

const (
	ambientMaxSpeed   = 0.25
	ambientMinRadius  = 1.0
	ambientMaxRadius  = 3.0
	ambientMinOpacity = 0.2
	ambientMaxOpacity = 0.7
)

// Ambient is one background dot. Size and opacity are fixed at spawn; only
// the position changes.
type Ambient struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// Field is the immortal background layer. Dots drift at constant velocity
// and wrap around the edges, so the population never changes.
type Field struct {
	W, H float64
	Dots []Ambient

	rng *rand.Rand
}

// NewField spawns count dots uniformly over a w by h area.
func NewField(count int, w, h float64, rng *rand.Rand) *Field {
	f := &Field{W: w, H: h, rng: rng, Dots: make([]Ambient, count)}
	for i := range f.Dots {
		f.Dots[i] = Ambient{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      between(rng, -ambientMaxSpeed, ambientMaxSpeed),
			VY:      between(rng, -ambientMaxSpeed, ambientMaxSpeed),
			Radius:  between(rng, ambientMinRadius, ambientMaxRadius),
			Opacity: between(rng, ambientMinOpacity, ambientMaxOpacity),
		}
	}
	return f
}

// Update advances every dot one tick and wraps it back into bounds.
func (f *Field) Update() {
	for i := range f.Dots {
		d := &f.Dots[i]
		d.X = wrap(d.X+d.VX, f.W)
		d.Y = wrap(d.Y+d.VY, f.H)
	}
}

// SetBounds adopts a new area. Existing dots keep their positions; the next
// wrap folds any that ended up outside back in. Nothing is rescaled.
func (f *Field) SetBounds(w, h float64) {
	f.W = w
	f.H = h
}

// wrap folds v into [0, extent). Values exactly at the extent land on 0.
func wrap(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	m := math.Mod(v, extent)
	if m < 0 {
		m += extent
	}
	return m
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
