// Package form holds the contact form state: field values, focus, validation
// and the simulated send. It knows nothing about rendering or input devices;
// the app layer feeds it runes and reads back values and errors.
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field indexes the three inputs in tab order.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage

	FieldCount
)

// NoField marks the form as unfocused.
const NoField Field = -1

const minMessageLen = 10

var fieldLimits = [FieldCount]int{80, 120, 1000}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Labels for rendering and error copy.
var fieldLabels = [FieldCount]string{"Name", "Email", "Message"}

// Label returns the display name of a field.
func (f Field) Label() string {
	if f < 0 || f >= FieldCount {
		return ""
	}
	return fieldLabels[f]
}

// Form is the contact form state.
type Form struct {
	Values [FieldCount]string
	Errors [FieldCount]string
	Focus  Field
}

// New returns an empty, unfocused form.
func New() *Form {
	return &Form{Focus: NoField}
}

// SetFocus moves the caret to a field, or to NoField to blur.
func (f *Form) SetFocus(field Field) {
	f.Focus = field
}

// Type appends a rune to the focused field. Control characters are ignored
// except for newlines in the message body. Editing a field clears its
// validation error.
func (f *Form) Type(r rune) {
	if f.Focus < 0 || f.Focus >= FieldCount {
		return
	}
	if r == '\n' && f.Focus != FieldMessage {
		return
	}
	if r != '\n' && (r < 0x20 || r == 0x7f) {
		return
	}
	if utf8.RuneCountInString(f.Values[f.Focus]) >= fieldLimits[f.Focus] {
		return
	}
	f.Values[f.Focus] += string(r)
	f.Errors[f.Focus] = ""
}

// Backspace deletes the last rune of the focused field.
func (f *Form) Backspace() {
	if f.Focus < 0 || f.Focus >= FieldCount {
		return
	}
	v := f.Values[f.Focus]
	if v == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(v)
	f.Values[f.Focus] = v[:len(v)-size]
	f.Errors[f.Focus] = ""
}

// Validate checks every field, records per-field error messages and reports
// whether the form may be submitted.
func (f *Form) Validate() bool {
	name := strings.TrimSpace(f.Values[FieldName])
	email := strings.TrimSpace(f.Values[FieldEmail])
	message := strings.TrimSpace(f.Values[FieldMessage])

	f.Errors[FieldName] = ""
	f.Errors[FieldEmail] = ""
	f.Errors[FieldMessage] = ""

	if name == "" {
		f.Errors[FieldName] = "Please enter your name"
	}
	switch {
	case email == "":
		f.Errors[FieldEmail] = "Please enter your email"
	case !emailPattern.MatchString(email):
		f.Errors[FieldEmail] = "Please enter a valid email address"
	}
	if utf8.RuneCountInString(message) < minMessageLen {
		f.Errors[FieldMessage] = "Message must be at least 10 characters"
	}

	return f.Errors[FieldName] == "" && f.Errors[FieldEmail] == "" && f.Errors[FieldMessage] == ""
}

// Reset clears values and errors after a successful send. Focus is kept so
// keyboard users are not thrown somewhere else.
func (f *Form) Reset() {
	for i := range f.Values {
		f.Values[i] = ""
		f.Errors[i] = ""
	}
}

// HasErrors reports whether any field currently shows a validation message.
func (f *Form) HasErrors() bool {
	for _, e := range f.Errors {
		if e != "" {
			return true
		}
	}
	return false
}
