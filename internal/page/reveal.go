package page

const (
	// RevealMargin pulls the trigger line above the viewport bottom so a
	// section starts animating once it is meaningfully on screen, not at
	// the first sliver.
	RevealMargin = 120

	// revealStep finishes the fade in 24 ticks, 400ms at 60 TPS.
	revealStep = 1.0 / 24
)

// AdvanceReveals progresses section reveal animations by one tick.
//
// A section triggers once its top crosses the line RevealMargin above the
// viewport bottom. From then on its progress only moves forward, even if the
// user scrolls away mid-animation, and once it reaches 1 the section is left
// alone for good. With reduceMotion set, triggering snaps straight to 1.
func AdvanceReveals(d *Document, scrollY, viewportH float64, reduceMotion bool) {
	line := scrollY + viewportH - RevealMargin
	for _, s := range d.Sections {
		if s.done {
			continue
		}
		if !s.triggered && s.Offset < line {
			s.triggered = true
		}
		if !s.triggered {
			continue
		}
		if reduceMotion {
			s.Reveal = 1
		} else {
			s.Reveal += revealStep
		}
		if s.Reveal >= 1 {
			s.Reveal = 1
			s.done = true
		}
	}
}
