package page

import "testing"

func trackerSections() []*Section {
	return []*Section{
		{ID: "intro", Offset: 0, Extent: 500},
		{ID: "work", Offset: 500, Extent: 700},
		{ID: "contact", Offset: 1200, Extent: 800},
	}
}

func TestTrackUsesLookahead(t *testing.T) {
	secs := trackerSections()
	// 550 on its own sits in the first section, but the probe at 650
	// lands in the second.
	got := Track(NavState{}, 550, secs)
	if got.ActiveID != "work" {
		t.Errorf("active = %q, want work", got.ActiveID)
	}
}

func TestTrackTopOfPage(t *testing.T) {
	secs := trackerSections()
	got := Track(NavState{}, 0, secs)
	if got.ActiveID != "intro" {
		t.Errorf("active = %q, want intro", got.ActiveID)
	}
	if got.Scrolled {
		t.Error("scrolled = true at top of page")
	}
}

func TestTrackScrolledThreshold(t *testing.T) {
	secs := trackerSections()
	if Track(NavState{}, ScrolledThreshold, secs).Scrolled {
		t.Error("scrolled = true exactly at the threshold")
	}
	if !Track(NavState{}, ScrolledThreshold+1, secs).Scrolled {
		t.Error("scrolled = false just past the threshold")
	}
}

func TestTrackBoundaryBelongsToLowerSection(t *testing.T) {
	secs := trackerSections()
	// Probe exactly at 500: first section is half-open, so the second
	// owns the boundary.
	got := Track(NavState{}, 400, secs)
	if got.ActiveID != "work" {
		t.Errorf("active = %q, want work", got.ActiveID)
	}
}

func TestTrackSticksPastDocumentEnd(t *testing.T) {
	secs := trackerSections()
	st := Track(NavState{}, 1500, secs)
	if st.ActiveID != "contact" {
		t.Fatalf("active = %q, want contact", st.ActiveID)
	}
	// Probe beyond the last section keeps the previous highlight.
	st = Track(st, 2500, secs)
	if st.ActiveID != "contact" {
		t.Errorf("active past end = %q, want contact to stick", st.ActiveID)
	}
}

func TestTrackSticksAcrossGaps(t *testing.T) {
	secs := []*Section{
		{ID: "intro", Offset: 0, Extent: 300},
		{ID: "work", Offset: 600, Extent: 300},
	}
	st := Track(NavState{}, 0, secs)
	if st.ActiveID != "intro" {
		t.Fatalf("active = %q, want intro", st.ActiveID)
	}
	// Probe at 400 falls in the gap between the sections.
	st = Track(st, 300, secs)
	if st.ActiveID != "intro" {
		t.Errorf("active in gap = %q, want intro to stick", st.ActiveID)
	}
}

func TestTrackIsPure(t *testing.T) {
	secs := trackerSections()
	prev := NavState{ActiveID: "intro"}
	first := Track(prev, 800, secs)
	second := Track(prev, 800, secs)
	if first != second {
		t.Errorf("same inputs gave %+v then %+v", first, second)
	}
	// Feeding the result back with an unchanged position is a no-op.
	third := Track(first, 800, secs)
	if third != first {
		t.Errorf("re-tracking changed state: %+v -> %+v", first, third)
	}
}

func TestRelayoutStacksSections(t *testing.T) {
	d := &Document{Sections: []*Section{
		{ID: "a", Extent: 500},
		{ID: "b", Extent: 700},
		{ID: "c", Extent: 800},
	}}
	d.Relayout()

	wantOffsets := []float64{0, 500, 1200}
	for i, s := range d.Sections {
		if s.Offset != wantOffsets[i] {
			t.Errorf("section %s offset = %v, want %v", s.ID, s.Offset, wantOffsets[i])
		}
	}
	if d.Height != 2000 {
		t.Errorf("height = %v, want 2000", d.Height)
	}
}

func TestMaxScroll(t *testing.T) {
	d := &Document{Height: 2000}
	if got := d.MaxScroll(800); got != 1200 {
		t.Errorf("max scroll = %v, want 1200", got)
	}
	// A document shorter than the viewport cannot scroll.
	short := &Document{Height: 500}
	if got := short.MaxScroll(800); got != 0 {
		t.Errorf("max scroll of short document = %v, want 0", got)
	}
}

func TestByID(t *testing.T) {
	d := NewDocument()
	if s := d.ByID(SectionSkills); s == nil || s.Title != "Skills" {
		t.Errorf("ByID(skills) = %+v", s)
	}
	if s := d.ByID("nope"); s != nil {
		t.Errorf("ByID(nope) = %+v, want nil", s)
	}
}
