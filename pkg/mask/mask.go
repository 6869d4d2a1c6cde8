package mask

import "strings"

// Placeholder marks a user-editable position inside a mask template.
const Placeholder = 'X'

// Preset names understood by Preset.
const (
	PresetCardNumber       = "card-number"
	PresetCardNumberDashes = "card-number-dashes"
)

const (
	cardNumberTemplate       = "XXXX XXXX XXXX XXXX"
	cardNumberDashesTemplate = "XXXX-XXXX-XXXX-XXXX"
)

// Mask is an immutable input template. The zero value represents "no mask".
type Mask struct {
	template []rune
}

// New builds a mask from a template string.
func New(template string) Mask {
	if template == "" {
		return Mask{}
	}
	return Mask{template: []rune(template)}
}

// Custom is an alias of New kept for callers that read better with an explicit
// "custom template" constructor next to the presets.
func Custom(template string) Mask {
	return New(template)
}

// CardNumber returns the space separated 16 digit card mask.
func CardNumber() Mask {
	return New(cardNumberTemplate)
}

// CardNumberWithDashes returns the dash separated 16 digit card mask.
func CardNumberWithDashes() Mask {
	return New(cardNumberDashesTemplate)
}

// Preset resolves a named preset. Names are matched case-insensitively; a few
// camelCase spellings used by older payloads are accepted too.
func Preset(name string) (Mask, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PresetCardNumber, "cardnumber", "card":
		return CardNumber(), true
	case PresetCardNumberDashes, "cardnumberwithdashes", "card-dashes":
		return CardNumberWithDashes(), true
	default:
		return Mask{}, false
	}
}

// Resolve returns the preset for value when it names one, otherwise value is
// treated as a literal template.
func Resolve(value string) Mask {
	if m, ok := Preset(value); ok {
		return m
	}
	return New(value)
}

// String returns the template text.
func (m Mask) String() string {
	return string(m.template)
}

// IsZero reports whether no template is attached.
func (m Mask) IsZero() bool {
	return len(m.template) == 0
}

// Len is the expanded length of the mask in runes.
func (m Mask) Len() int {
	return len(m.template)
}

// IsLiteral reports whether position i holds a literal. Out of range positions
// are not literals.
func (m Mask) IsLiteral(i int) bool {
	_, ok := m.LiteralAt(i)
	return ok
}

// LiteralAt returns the literal rune at position i.
func (m Mask) LiteralAt(i int) (rune, bool) {
	if i < 0 || i >= len(m.template) {
		return 0, false
	}
	r := m.template[i]
	if r == Placeholder {
		return 0, false
	}
	return r, true
}

// FirstLiteral returns the first literal rune of the template. Deletion and
// strip rules use it as "the" separator.
func (m Mask) FirstLiteral() (rune, bool) {
	for _, r := range m.template {
		if r != Placeholder {
			return r, true
		}
	}
	return 0, false
}

// Placeholders counts the user-editable positions.
func (m Mask) Placeholders() int {
	count := 0
	for _, r := range m.template {
		if r == Placeholder {
			count++
		}
	}
	return count
}

// Full reports whether text has reached the mask length, the point at which
// the formatter drops further insertions. Unlike Complete it does not check
// where separators sit, which matters because separators are appended after
// the rune typed at a literal position.
func (m Mask) Full(text string) bool {
	return !m.IsZero() && len([]rune(text)) >= len(m.template)
}

// Complete reports whether text fills the whole mask with every literal in
// place.
func (m Mask) Complete(text string) bool {
	if m.IsZero() {
		return false
	}
	runes := []rune(text)
	if len(runes) != len(m.template) {
		return false
	}
	for i, r := range runes {
		if lit, ok := m.LiteralAt(i); ok && r != lit {
			return false
		}
	}
	return true
}
