package page

const (
	// LookaheadBias shifts the probe point below the viewport top so a
	// section highlights slightly before its top edge reaches the header.
	LookaheadBias = 100

	// ScrolledThreshold is how far the page must move before the header
	// switches to its elevated treatment. Exactly at the threshold still
	// counts as top of page.
	ScrolledThreshold = 50
)

// NavState is what the header needs to draw itself: which nav entry is
// highlighted and whether the page has scrolled away from the top.
type NavState struct {
	ActiveID string
	Scrolled bool
}

// Track computes the nav state for a scroll position. It is a pure function
// of its inputs: same position, same sections, same previous state gives the
// same answer every time.
//
// The probe point is the scroll position plus LookaheadBias. The first
// section containing the probe wins; sections are laid out without overlap
// so there is never more than one. When no section contains the probe (a gap,
// or past the end of the document) the previously active entry stays
// highlighted rather than dropping to none.
func Track(prev NavState, scrollY float64, sections []*Section) NavState {
	next := NavState{
		ActiveID: prev.ActiveID,
		Scrolled: scrollY > ScrolledThreshold,
	}
	probe := scrollY + LookaheadBias
	for _, s := range sections {
		if s.Contains(probe) {
			next.ActiveID = s.ID
			break
		}
	}
	return next
}
