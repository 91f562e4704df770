package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/deskfolio/internal/form"
	"github.com/iburimskiy/deskfolio/internal/page"
)

const (
	wheelStep = 40.0
	arrowStep = 60.0
)

func (a *App) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// The code listener sees every key press regardless of focus, like a
	// document-level handler.
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if a.code.observe(k) {
			a.launchConfetti()
		}
	}

	if err := a.handleKeys(); err != nil {
		return err
	}
	a.handleMouse()
	return nil
}

func (a *App) handleKeys() error {
	max := a.doc.MaxScroll(float64(a.height))

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			a.setFocus(prevFocus(a.focus))
		} else {
			a.setFocus(nextFocus(a.focus))
		}
	}

	if a.focus.editing() {
		a.handleTyping()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.toggleTheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleReducedMotion()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.toggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.showOutbox()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.activate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if a.focus == focusNone {
			a.scroll.ScrollBy(float64(a.height-headerHeight), max)
		} else {
			a.activate()
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		a.scroll.ScrollBy(arrowStep/6, max)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		a.scroll.ScrollBy(-arrowStep/6, max)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		a.scroll.ScrollBy(float64(a.height-headerHeight), max)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		a.scroll.ScrollBy(-float64(a.height-headerHeight), max)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		a.scroll.ScrollTo(0, max)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		a.scroll.ScrollTo(max, max)
	}
	return nil
}

// handleTyping feeds printable input into the focused form field.
func (a *App) handleTyping() {
	for _, r := range ebiten.AppendInputChars(nil) {
		a.form.Type(r)
	}

	// Backspace repeats while held.
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if d == 1 || (d >= 30 && d%3 == 0) {
		a.form.Backspace()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if a.focus == focusMessage {
			a.form.Type('\n')
		} else {
			// Enter in a single-line input submits, like a real form.
			a.submit()
		}
	}
}

func (a *App) handleMouse() {
	mx, my := ebiten.CursorPosition()
	l := layout{a.width, a.height}
	max := a.doc.MaxScroll(float64(a.height))

	if _, wy := ebiten.Wheel(); wy != 0 {
		a.scroll.ScrollBy(-wy*wheelStep, max)
	}

	// Scrollbar dragging, same shape as any seek bar: jump on press, track
	// the cursor while held.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.dragging = false
	}
	if a.dragging {
		a.scroll.ScrollTo(l.trackToScroll(my, max), max)
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	switch {
	case ptIn(mx, my, l.scrollTrack()):
		a.dragging = true
		a.scroll.ScrollTo(l.trackToScroll(my, max), max)

	case ptIn(mx, my, l.themeButton()):
		a.setFocus(focusTheme)
		a.toggleTheme()

	case my < headerHeight:
		for i := range a.doc.Sections {
			if ptIn(mx, my, l.navEntry(a.doc.Sections, i)) {
				a.setFocus(focusNavHome + focusID(i))
				a.glideToSection(i)
				a.sounds.NavTick()
				return
			}
		}
		a.setFocus(focusNone)

	case a.nav.Scrolled && ptIn(mx, my, l.backTop()):
		if a.reduceMotion {
			a.scroll.ScrollTo(0, max)
		} else {
			a.scroll.GlideTo(0, max)
		}

	default:
		a.handleDocumentClick(mx, my+int(a.scroll.Pos), l)
	}
}

// handleDocumentClick resolves a click in document coordinates: form
// controls, the hero call to action, or a blur on empty space. A section
// still revealing draws its content lower, so hit rects carry the same rise.
func (a *App) handleDocumentClick(x, docY int, l layout) {
	if hero := a.doc.ByID(page.SectionHome); hero != nil {
		if ptIn(x, docY, l.heroCTA(hero).Add(image.Pt(0, revealRiseOf(hero)))) {
			a.glideToSection(len(a.doc.Sections) - 1)
			a.sounds.NavTick()
			return
		}
	}

	contact := a.doc.ByID(page.SectionContact)
	if contact == nil {
		a.setFocus(focusNone)
		return
	}
	fl := l.form(contact)
	rise := image.Pt(0, revealRiseOf(contact))

	for f := form.FieldName; f < form.FieldCount; f++ {
		if ptIn(x, docY, fl.inputs[f].Add(rise)) {
			a.setFocus(focusName + focusID(f))
			return
		}
	}
	if ptIn(x, docY, fl.submit.Add(rise)) {
		a.setFocus(focusSubmit)
		a.submit()
		return
	}

	a.setFocus(focusNone)
}
