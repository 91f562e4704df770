package app

import (
	"image"

	"github.com/iburimskiy/deskfolio/internal/form"
	"github.com/iburimskiy/deskfolio/internal/page"
)

// Fixed chrome dimensions. The document itself lays out in page; these are
// the overlay pieces that stay glued to the window.
const (
	headerHeight = 64
	navEntryPad  = 20
	navSpacing   = 8

	themeButtonW = 120
	themeButtonH = 32

	contentX      = 80
	charW         = 8 // approximate debug font advance
	lineH         = 16
	headingScale  = 2
	heroCTAOffset = 380

	scrollbarW     = 6
	scrollbarInset = 4

	bannerW = 440
	bannerH = 36

	backTopSize = 44

	skipChipW = 150
	skipChipH = 28
)

// layout resolves hit rectangles for the current window size. Rebuilt on
// demand; it holds no state beyond the dimensions it was given.
type layout struct {
	w, h int
}

func (l layout) header() image.Rectangle {
	return image.Rect(0, 0, l.w, headerHeight)
}

func (l layout) themeButton() image.Rectangle {
	x := l.w - themeButtonW - 20
	y := (headerHeight - themeButtonH) / 2
	return image.Rect(x, y, x+themeButtonW, y+themeButtonH)
}

// navEntry returns the hit rect of the i-th nav label, laid out right to
// left starting from the theme button.
func (l layout) navEntry(sections []*page.Section, i int) image.Rectangle {
	right := l.themeButton().Min.X - 16
	for j := len(sections) - 1; j > i; j-- {
		right -= len(sections[j].Title)*charW + navEntryPad + navSpacing
	}
	w := len(sections[i].Title)*charW + navEntryPad
	y := (headerHeight - 24) / 2
	return image.Rect(right-w, y, right, y+24)
}

func (l layout) skipChip() image.Rectangle {
	return image.Rect(16, 14, 16+skipChipW, 14+skipChipH)
}

func (l layout) banner() image.Rectangle {
	x := (l.w - bannerW) / 2
	return image.Rect(x, headerHeight+12, x+bannerW, headerHeight+12+bannerH)
}

func (l layout) backTop() image.Rectangle {
	return image.Rect(l.w-backTopSize-20, l.h-backTopSize-20, l.w-20, l.h-20)
}

func (l layout) scrollTrack() image.Rectangle {
	x := l.w - scrollbarW - scrollbarInset
	return image.Rect(x, headerHeight+scrollbarInset, x+scrollbarW, l.h-scrollbarInset)
}

// scrollThumb maps the scroll position into the track.
func (l layout) scrollThumb(scrollY, maxScroll, docH float64) image.Rectangle {
	track := l.scrollTrack()
	trackH := float64(track.Dy())
	if docH <= 0 || maxScroll <= 0 {
		return track
	}
	thumbH := trackH * float64(l.h) / docH
	if thumbH < 40 {
		thumbH = 40
	}
	if thumbH > trackH {
		thumbH = trackH
	}
	y := float64(track.Min.Y) + (trackH-thumbH)*(scrollY/maxScroll)
	return image.Rect(track.Min.X, int(y), track.Max.X, int(y+thumbH))
}

// trackToScroll converts a y coordinate on the track back into a scroll
// position, for dragging the thumb.
func (l layout) trackToScroll(mouseY int, maxScroll float64) float64 {
	track := l.scrollTrack()
	span := float64(track.Dy())
	if span <= 0 {
		return 0
	}
	frac := float64(mouseY-track.Min.Y) / span
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac * maxScroll
}

// heroCTA is the call-to-action button in the hero section, in document
// coordinates.
func (l layout) heroCTA(hero *page.Section) image.Rectangle {
	x := contentX
	y := int(hero.Offset) + heroCTAOffset
	return image.Rect(x, y, x+180, y+44)
}

// formLayout places the contact form inside the contact section, in document
// coordinates.
type formLayout struct {
	labels [form.FieldCount]image.Rectangle
	inputs [form.FieldCount]image.Rectangle
	submit image.Rectangle
}

func (l layout) form(contact *page.Section) formLayout {
	const (
		inputW   = 420
		inputH   = 36
		messageH = 120
		gap      = 14
	)
	var fl formLayout
	x := contentX
	y := int(contact.Offset) + 150

	heights := [form.FieldCount]int{inputH, inputH, messageH}
	for f := 0; f < int(form.FieldCount); f++ {
		fl.labels[f] = image.Rect(x, y, x+inputW, y+lineH)
		y += lineH + 4
		fl.inputs[f] = image.Rect(x, y, x+inputW, y+heights[f])
		y += heights[f] + gap + lineH // room for an error line
	}
	fl.submit = image.Rect(x, y, x+140, y+40)
	return fl
}

// viewRect converts a document-space rectangle to screen space for the
// current scroll position.
func viewRect(r image.Rectangle, scrollY float64) image.Rectangle {
	return r.Sub(image.Pt(0, int(scrollY)))
}

func ptIn(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
