package mask

import "testing"

func TestPresets(t *testing.T) {
	if got := CardNumber().String(); got != "XXXX XXXX XXXX XXXX" {
		t.Fatalf("card number template = %q", got)
	}
	if got := CardNumberWithDashes().String(); got != "XXXX-XXXX-XXXX-XXXX" {
		t.Fatalf("card number dashes template = %q", got)
	}

	for _, name := range []string{"card-number", "CardNumber", " card "} {
		m, ok := Preset(name)
		if !ok || m.String() != "XXXX XXXX XXXX XXXX" {
			t.Fatalf("preset %q = (%q, %v)", name, m.String(), ok)
		}
	}
	if _, ok := Preset("iban"); ok {
		t.Fatalf("unexpected preset match")
	}
	if got := Resolve("card-number-dashes").String(); got != "XXXX-XXXX-XXXX-XXXX" {
		t.Fatalf("resolve preset = %q", got)
	}
	if got := Resolve("XX/XX").String(); got != "XX/XX" {
		t.Fatalf("resolve custom = %q", got)
	}
}

func TestMask_Positions(t *testing.T) {
	m := Custom("XX/XX")

	if m.Len() != 5 || m.Placeholders() != 4 {
		t.Fatalf("len=%d placeholders=%d", m.Len(), m.Placeholders())
	}
	if !m.IsLiteral(2) || m.IsLiteral(0) || m.IsLiteral(9) || m.IsLiteral(-1) {
		t.Fatalf("literal classification wrong")
	}
	if r, ok := m.LiteralAt(2); !ok || r != '/' {
		t.Fatalf("literal at 2 = (%q, %v)", r, ok)
	}
	if r, ok := m.FirstLiteral(); !ok || r != '/' {
		t.Fatalf("first literal = (%q, %v)", r, ok)
	}
	if _, ok := New("XXXX").FirstLiteral(); ok {
		t.Fatalf("expected no literal")
	}
}

func TestMask_Zero(t *testing.T) {
	var m Mask
	if !m.IsZero() || !New("").IsZero() {
		t.Fatalf("expected zero mask")
	}
	if m.Complete("") {
		t.Fatalf("zero mask is never complete")
	}
}

func TestMask_Complete(t *testing.T) {
	m := CardNumberWithDashes()
	if !m.Complete("1234-5678-9012-3456") {
		t.Fatalf("expected complete")
	}
	if m.Complete("1234-5678-9012-345") {
		t.Fatalf("short text is not complete")
	}
	if m.Complete("1234 5678 9012 3456") {
		t.Fatalf("wrong separators are not complete")
	}
}

func TestMask_Full(t *testing.T) {
	m := CardNumber()
	typed := NewFormatter(m).Format("4111111111111111")
	if !m.Full(typed) {
		t.Fatalf("typed card number %q should fill the mask", typed)
	}
	if m.Complete(typed) {
		t.Fatalf("typed text %q carries separators after the literal positions", typed)
	}
	if m.Full("4111") {
		t.Fatalf("short text is not full")
	}
	if (Mask{}).Full("anything") {
		t.Fatalf("zero mask is never full")
	}
}

func TestMask_RuneTemplates(t *testing.T) {
	m := New("XX·XX")
	if m.Len() != 5 {
		t.Fatalf("expected rune length 5, got %d", m.Len())
	}
	f := NewFormatter(m)
	if got := f.Format("1234"); got != "123·4" {
		t.Fatalf("unexpected format %q", got)
	}
}
