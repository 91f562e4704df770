package app

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/iburimskiy/deskfolio/internal/page"
)

func TestNavEntriesDoNotOverlap(t *testing.T) {
	l := layout{1280, 800}
	secs := page.NewDocument().Sections
	for i := 0; i < len(secs)-1; i++ {
		a := l.navEntry(secs, i)
		b := l.navEntry(secs, i+1)
		if a.Max.X > b.Min.X {
			t.Errorf("nav entries %d and %d overlap: %v / %v", i, i+1, a, b)
		}
	}
	last := l.navEntry(secs, len(secs)-1)
	if last.Max.X > l.themeButton().Min.X {
		t.Errorf("last nav entry %v runs into the theme button %v", last, l.themeButton())
	}
}

func TestScrollThumbStaysOnTrack(t *testing.T) {
	l := layout{1280, 800}
	track := l.scrollTrack()
	for _, pos := range []float64{0, 1000, 2760} {
		thumb := l.scrollThumb(pos, 2760, 3560)
		if thumb.Min.Y < track.Min.Y || thumb.Max.Y > track.Max.Y+1 {
			t.Errorf("thumb %v off track %v at pos %v", thumb, track, pos)
		}
	}
	top := l.scrollThumb(0, 2760, 3560)
	bottom := l.scrollThumb(2760, 2760, 3560)
	if top.Min.Y >= bottom.Min.Y {
		t.Error("thumb does not move down the track")
	}
}

func TestTrackToScrollClamps(t *testing.T) {
	l := layout{1280, 800}
	if got := l.trackToScroll(-50, 2000); got != 0 {
		t.Errorf("above track = %v, want 0", got)
	}
	if got := l.trackToScroll(5000, 2000); got != 2000 {
		t.Errorf("below track = %v, want max", got)
	}
}

func TestFormLayoutStacksWithoutOverlap(t *testing.T) {
	l := layout{1280, 800}
	contact := page.NewDocument().ByID(page.SectionContact)
	fl := l.form(contact)

	prevBottom := 0
	for f := 0; f < len(fl.inputs); f++ {
		if fl.inputs[f].Min.Y < prevBottom {
			t.Errorf("input %d overlaps previous control", f)
		}
		prevBottom = fl.inputs[f].Max.Y
		if fl.labels[f].Max.Y > fl.inputs[f].Min.Y {
			t.Errorf("label %d overlaps its input", f)
		}
	}
	if fl.submit.Min.Y < prevBottom {
		t.Error("submit button overlaps the message input")
	}
	if fl.submit.Max.Y > int(contact.Offset+contact.Extent) {
		t.Errorf("form spills out of the contact section: %v > %v", fl.submit.Max.Y, contact.Offset+contact.Extent)
	}
}

func TestViewRect(t *testing.T) {
	r := viewRect(image.Rect(100, 500, 200, 540), 400)
	if r.Min.Y != 100 || r.Max.Y != 140 || r.Min.X != 100 {
		t.Errorf("viewRect = %v", r)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("noise mapping pipeline for field recordings", 15)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 15 {
			t.Errorf("line %d too long: %q", i, line)
		}
	}
	if wrapText("short", 40) != "short" {
		t.Error("short text was rewrapped")
	}
	// A single overlong word stays on its own line rather than vanishing.
	if wrapText("supercalifragilistic", 5) != "supercalifragilistic" {
		t.Error("overlong word mangled")
	}
}

func TestFadePremultiplies(t *testing.T) {
	c := fade(color.RGBA{200, 100, 50, 255}, 0.5)
	if c.A != 127 {
		t.Errorf("alpha = %d, want 127", c.A)
	}
	if c.R != 100 || c.G != 50 || c.B != 25 {
		t.Errorf("rgb = (%d,%d,%d), want premultiplied (100,50,25)", c.R, c.G, c.B)
	}
	if out := fade(color.RGBA{10, 10, 10, 255}, 2); out.A != 255 {
		t.Errorf("alpha above 1 not clamped: %+v", out)
	}
}

func TestLerpRGBAEndpoints(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{100, 200, 50, 255}
	if got := lerpRGBA(a, b, 0); got != a {
		t.Errorf("t=0 gives %v", got)
	}
	if got := lerpRGBA(a, b, 1); got != b {
		t.Errorf("t=1 gives %v", got)
	}
	mid := lerpRGBA(a, b, 0.5)
	if mid.R != 50 || mid.G != 100 || mid.B != 25 {
		t.Errorf("midpoint = %v", mid)
	}
}
