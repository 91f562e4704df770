package particles

import (
	"math"
	"math/rand"
)

const (
	// Pieces spawn just above the top edge so they enter the frame
	// already falling.
	spawnY = -10

	confettiMaxDrift = 3.0
	confettiMinFall  = 2.0
	confettiMaxFall  = 5.0
	confettiMaxSpin  = 0.2
	confettiMinSize  = 4.0
	confettiMaxSize  = 9.0
)

// Confetto is one falling square. Velocity is fixed at spawn; there is no
// gravity, only the constant fall plus sideways drift and spin.
type Confetto struct {
	X, Y   float64
	VX, VY float64
	Rot    float64
	Spin   float64
	Size   float64
	Hue    int
}

// Burst is a one-shot confetti shower. It spawns across the top of the
// area, falls through it, and reports completion exactly once when the last
// piece has left.
type Burst struct {
	W, H   float64
	Pieces []Confetto
}

// NewBurst spawns count pieces across the top of a w by h area. hues is the
// palette size; each piece picks an index into it.
func NewBurst(count int, w, h float64, hues int, rng *rand.Rand) *Burst {
	b := &Burst{W: w, H: h, Pieces: make([]Confetto, count)}
	for i := range b.Pieces {
		b.Pieces[i] = Confetto{
			X:    rng.Float64() * w,
			Y:    spawnY,
			VX:   between(rng, -confettiMaxDrift, confettiMaxDrift),
			VY:   between(rng, confettiMinFall, confettiMaxFall),
			Rot:  rng.Float64() * 2 * math.Pi,
			Spin: between(rng, -confettiMaxSpin, confettiMaxSpin),
			Size: between(rng, confettiMinSize, confettiMaxSize),
			Hue:  rng.Intn(hues),
		}
	}
	return b
}

// Update advances the shower one tick. Pieces are dropped once they fall
// below the bottom edge. It returns true on the tick the last piece leaves
// and false on every other call, including calls after the burst is spent.
func (b *Burst) Update() bool {
	if len(b.Pieces) == 0 {
		return false
	}
	kept := b.Pieces[:0]
	for _, p := range b.Pieces {
		p.X += p.VX
		p.Y += p.VY
		p.Rot += p.Spin
		if p.Y > b.H {
			continue
		}
		kept = append(kept, p)
	}
	b.Pieces = kept
	return len(b.Pieces) == 0
}

// Active reports whether any pieces are still falling.
func (b *Burst) Active() bool { return len(b.Pieces) > 0 }

// SetBounds adopts a new area without touching piece positions.
func (b *Burst) SetBounds(w, h float64) {
	b.W = w
	b.H = h
}
