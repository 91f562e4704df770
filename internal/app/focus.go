package app

import "github.com/iburimskiy/deskfolio/internal/form"

// focusID identifies one keyboard-focusable control, in tab order. The skip
// chip comes first so the very first Tab press offers a jump past the nav,
// the way the page's hidden skip link works for screen readers.
type focusID int

const (
	focusNone focusID = iota
	focusSkip
	focusNavHome
	focusNavAbout
	focusNavSkills
	focusNavProjects
	focusNavContact
	focusTheme
	focusName
	focusEmail
	focusMessage
	focusSubmit

	focusEnd // sentinel
)

// nextFocus advances in tab order, wrapping from the last control to the
// first.
func nextFocus(cur focusID) focusID {
	n := cur + 1
	if n >= focusEnd {
		n = focusSkip
	}
	return n
}

// prevFocus walks tab order backwards, wrapping from the first control to
// the last.
func prevFocus(cur focusID) focusID {
	if cur <= focusSkip {
		return focusEnd - 1
	}
	return cur - 1
}

// navIndex maps a nav focus id to its section index, or -1.
func (f focusID) navIndex() int {
	if f >= focusNavHome && f <= focusNavContact {
		return int(f - focusNavHome)
	}
	return -1
}

// formField maps a field focus id to its form field, or NoField.
func (f focusID) formField() form.Field {
	switch f {
	case focusName:
		return form.FieldName
	case focusEmail:
		return form.FieldEmail
	case focusMessage:
		return form.FieldMessage
	default:
		return form.NoField
	}
}

// editing reports whether this focus id captures printable keys.
func (f focusID) editing() bool {
	return f.formField() != form.NoField
}
