package form

import (
	"strings"
	"testing"
)

func TestTypeIntoFocusedField(t *testing.T) {
	f := New()
	f.SetFocus(FieldName)
	for _, r := range "Ilya" {
		f.Type(r)
	}
	if f.Values[FieldName] != "Ilya" {
		t.Errorf("name = %q", f.Values[FieldName])
	}
	if f.Values[FieldEmail] != "" {
		t.Errorf("email picked up input: %q", f.Values[FieldEmail])
	}
}

func TestTypeUnfocusedIsNoop(t *testing.T) {
	f := New()
	f.Type('x')
	for i, v := range f.Values {
		if v != "" {
			t.Errorf("field %d = %q without focus", i, v)
		}
	}
}

func TestBackspaceHandlesMultibyte(t *testing.T) {
	f := New()
	f.SetFocus(FieldName)
	for _, r := range "Ильё" {
		f.Type(r)
	}
	f.Backspace()
	if f.Values[FieldName] != "Иль" {
		t.Errorf("name after backspace = %q", f.Values[FieldName])
	}
	f.Backspace()
	f.Backspace()
	f.Backspace()
	f.Backspace() // one extra on empty
	if f.Values[FieldName] != "" {
		t.Errorf("name = %q, want empty", f.Values[FieldName])
	}
}

func TestNewlineOnlyInMessage(t *testing.T) {
	f := New()
	f.SetFocus(FieldName)
	f.Type('\n')
	if f.Values[FieldName] != "" {
		t.Errorf("newline accepted in name: %q", f.Values[FieldName])
	}
	f.SetFocus(FieldMessage)
	f.Type('a')
	f.Type('\n')
	f.Type('b')
	if f.Values[FieldMessage] != "a\nb" {
		t.Errorf("message = %q", f.Values[FieldMessage])
	}
}

func TestTypeRespectsLimit(t *testing.T) {
	f := New()
	f.SetFocus(FieldName)
	for i := 0; i < fieldLimits[FieldName]+20; i++ {
		f.Type('x')
	}
	if got := len(f.Values[FieldName]); got != fieldLimits[FieldName] {
		t.Errorf("name length = %d, want %d", got, fieldLimits[FieldName])
	}
}

func TestValidateEmptyForm(t *testing.T) {
	f := New()
	if f.Validate() {
		t.Fatal("empty form validated")
	}
	for i := Field(0); i < FieldCount; i++ {
		if f.Errors[i] == "" {
			t.Errorf("field %s has no error", i.Label())
		}
	}
}

func TestValidateEmailShape(t *testing.T) {
	valid := []string{"a@b.co", "ilya@burimskiy.dev", "a.b+c@d.e.fg"}
	invalid := []string{"plain", "a@b", "@b.co", "a@.co", "a@b.", "a b@c.de", "a@b c.de"}

	f := New()
	f.Values[FieldName] = "Ilya"
	f.Values[FieldMessage] = strings.Repeat("x", minMessageLen)

	for _, e := range valid {
		f.Values[FieldEmail] = e
		if !f.Validate() {
			t.Errorf("%q rejected: %q", e, f.Errors[FieldEmail])
		}
	}
	for _, e := range invalid {
		f.Values[FieldEmail] = e
		if f.Validate() {
			t.Errorf("%q accepted", e)
		}
	}
}

func TestValidateMessageLength(t *testing.T) {
	f := New()
	f.Values[FieldName] = "Ilya"
	f.Values[FieldEmail] = "a@b.co"
	f.Values[FieldMessage] = strings.Repeat("x", minMessageLen-1)
	if f.Validate() {
		t.Error("nine character message accepted")
	}
	f.Values[FieldMessage] = strings.Repeat("x", minMessageLen)
	if !f.Validate() {
		t.Errorf("ten character message rejected: %q", f.Errors[FieldMessage])
	}
}

func TestValidateTrimsWhitespace(t *testing.T) {
	f := New()
	f.Values[FieldName] = "   "
	f.Values[FieldEmail] = " a@b.co "
	f.Values[FieldMessage] = "   padding does not count   "
	if f.Validate() {
		t.Error("whitespace-only name accepted")
	}
	if f.Errors[FieldEmail] != "" {
		t.Errorf("padded email rejected: %q", f.Errors[FieldEmail])
	}
}

func TestEditingClearsFieldError(t *testing.T) {
	f := New()
	f.Validate()
	if f.Errors[FieldName] == "" {
		t.Fatal("expected a name error")
	}
	f.SetFocus(FieldName)
	f.Type('I')
	if f.Errors[FieldName] != "" {
		t.Errorf("error survived editing: %q", f.Errors[FieldName])
	}
	if f.Errors[FieldEmail] == "" {
		t.Error("editing one field cleared another field's error")
	}
}

func TestReset(t *testing.T) {
	f := New()
	f.SetFocus(FieldMessage)
	f.Type('x')
	f.Validate()
	f.Reset()
	for i, v := range f.Values {
		if v != "" {
			t.Errorf("field %d value = %q after reset", i, v)
		}
	}
	if f.HasErrors() {
		t.Error("errors survived reset")
	}
	if f.Focus != FieldMessage {
		t.Errorf("focus = %v after reset, want unchanged", f.Focus)
	}
}
