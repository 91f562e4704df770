package particles

import (
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	if got := wrap(805, 800); got != 5 {
		t.Errorf("wrap(805, 800) = %v, want 5", got)
	}
	if got := wrap(-3, 800); got != 797 {
		t.Errorf("wrap(-3, 800) = %v, want 797", got)
	}
	// The extent itself is out of range and folds to zero.
	if got := wrap(800, 800); got != 0 {
		t.Errorf("wrap(800, 800) = %v, want 0", got)
	}
	if got := wrap(42, 800); got != 42 {
		t.Errorf("wrap(42, 800) = %v, want 42", got)
	}
}

func TestFieldStaysInBounds(t *testing.T) {
	f := NewField(50, 800, 600, rand.New(rand.NewSource(1)))
	for tick := 0; tick < 1000; tick++ {
		f.Update()
	}
	if len(f.Dots) != 50 {
		t.Fatalf("population changed: %d dots", len(f.Dots))
	}
	for i, d := range f.Dots {
		if d.X < 0 || d.X >= 800 || d.Y < 0 || d.Y >= 600 {
			t.Errorf("dot %d escaped to (%v, %v)", i, d.X, d.Y)
		}
	}
}

func TestFieldSpawnRanges(t *testing.T) {
	f := NewField(200, 800, 600, rand.New(rand.NewSource(2)))
	for i, d := range f.Dots {
		if d.Radius < ambientMinRadius || d.Radius > ambientMaxRadius {
			t.Errorf("dot %d radius = %v", i, d.Radius)
		}
		if d.Opacity < ambientMinOpacity || d.Opacity > ambientMaxOpacity {
			t.Errorf("dot %d opacity = %v", i, d.Opacity)
		}
		if d.VX < -ambientMaxSpeed || d.VX > ambientMaxSpeed {
			t.Errorf("dot %d vx = %v", i, d.VX)
		}
		if d.VY < -ambientMaxSpeed || d.VY > ambientMaxSpeed {
			t.Errorf("dot %d vy = %v", i, d.VY)
		}
	}
}

func TestFieldVelocityAndLookFixed(t *testing.T) {
	f := NewField(10, 800, 600, rand.New(rand.NewSource(3)))
	before := make([]Ambient, len(f.Dots))
	copy(before, f.Dots)
	for tick := 0; tick < 100; tick++ {
		f.Update()
	}
	for i, d := range f.Dots {
		if d.VX != before[i].VX || d.VY != before[i].VY {
			t.Errorf("dot %d velocity drifted", i)
		}
		if d.Radius != before[i].Radius || d.Opacity != before[i].Opacity {
			t.Errorf("dot %d changed size or opacity", i)
		}
	}
}

func TestSetBoundsKeepsPositions(t *testing.T) {
	f := NewField(0, 800, 600, rand.New(rand.NewSource(4)))
	f.Dots = []Ambient{{X: 700, Y: 500, VX: 1, VY: 1}}
	f.SetBounds(400, 300)
	if f.Dots[0].X != 700 || f.Dots[0].Y != 500 {
		t.Errorf("resize rescaled dot to (%v, %v)", f.Dots[0].X, f.Dots[0].Y)
	}
	// The next update folds the stray dot into the new area.
	f.Update()
	d := f.Dots[0]
	if d.X < 0 || d.X >= 400 || d.Y < 0 || d.Y >= 300 {
		t.Errorf("dot not folded into new bounds: (%v, %v)", d.X, d.Y)
	}
}

func TestFieldDeterministic(t *testing.T) {
	a := NewField(20, 800, 600, rand.New(rand.NewSource(7)))
	b := NewField(20, 800, 600, rand.New(rand.NewSource(7)))
	for tick := 0; tick < 50; tick++ {
		a.Update()
		b.Update()
	}
	for i := range a.Dots {
		if a.Dots[i] != b.Dots[i] {
			t.Fatalf("dot %d diverged: %+v vs %+v", i, a.Dots[i], b.Dots[i])
		}
	}
}
