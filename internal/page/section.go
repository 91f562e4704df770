// Package page models the scrollable document: its sections, the scroll-spy
// tracker that keeps navigation in sync, smooth scrolling, and the one-shot
// reveal animations. Everything here is plain state driven by the app loop;
// nothing reaches back into rendering or input.
package page

// Section is one region of the document, addressable from the header nav.
type Section struct {
	ID    string
	Title string

	// Offset is the document Y of the section top, Extent its height.
	// Both are set by Document.Relayout.
	Offset float64
	Extent float64

	// Reveal runs 0..1 once the section scrolls into view and never
	// rewinds. triggered latches the start, done stops further checks.
	Reveal    float64
	triggered bool
	done      bool
}

// Contains reports whether a document Y coordinate falls inside the section.
// The top edge is inclusive, the bottom exclusive, so adjacent sections never
// claim the same line.
func (s *Section) Contains(y float64) bool {
	return y >= s.Offset && y < s.Offset+s.Extent
}

// Document is the full scrollable page.
type Document struct {
	Sections []*Section
	Height   float64
}

// Relayout stacks the sections top to bottom and recomputes the total
// height. Extents are content-driven and survive viewport resizes unchanged.
func (d *Document) Relayout() {
	y := 0.0
	for _, s := range d.Sections {
		s.Offset = y
		y += s.Extent
	}
	d.Height = y
}

// ByID returns the section with the given id, or nil.
func (d *Document) ByID(id string) *Section {
	for _, s := range d.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// MaxScroll is the largest valid scroll position for a viewport of the given
// height. A document shorter than the viewport cannot scroll at all.
func (d *Document) MaxScroll(viewportH float64) float64 {
	max := d.Height - viewportH
	if max < 0 {
		return 0
	}
	return max
}
