package mask

import "strings"

// Action tells the host widget how to treat a proposed edit.
type Action int

const (
	// ActionDefault lets the host perform its own single-rune insert/delete
	// and then append Decision.Suffix when it is not empty.
	ActionDefault Action = iota
	// ActionReplace discards the host edit; the buffer becomes Decision.Text.
	ActionReplace
	// ActionDrop discards the host edit and leaves the buffer untouched. It is
	// only produced for insertions that would grow the text past the mask.
	ActionDrop
)

func (a Action) String() string {
	switch a {
	case ActionDefault:
		return "default"
	case ActionReplace:
		return "replace"
	case ActionDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Edit is a single proposed change. An empty Replacement deletes the rune at
// Location (the index of the rune before the caret on backspace); otherwise
// Replacement is inserted at Location.
type Edit struct {
	Location    int
	Replacement string
}

// Insert builds an insertion edit.
func Insert(location int, replacement string) Edit {
	return Edit{Location: location, Replacement: replacement}
}

// Delete builds a deletion edit.
func Delete(location int) Edit {
	return Edit{Location: location}
}

// IsDelete reports whether the edit removes text.
func (e Edit) IsDelete() bool {
	return e.Replacement == ""
}

// Decision is the formatter verdict for one Edit.
type Decision struct {
	Action Action
	// Text is the full replacement buffer for ActionReplace.
	Text string
	// Suffix is appended after the host's default edit for ActionDefault.
	Suffix string
}

// Apply folds the decision into current, returning the resulting text and
// caret position. Hosts that interpret decisions themselves do not need it.
func (d Decision) Apply(current string, edit Edit) (string, int) {
	text := []rune(current)
	loc := clamp(edit.Location, 0, len(text))

	switch d.Action {
	case ActionReplace:
		return d.Text, runeCount(d.Text)
	case ActionDrop:
		return current, loc
	}

	cursor := loc
	if edit.IsDelete() {
		if loc < len(text) {
			text = append(text[:loc:loc], text[loc+1:]...)
		}
	} else {
		ins := []rune(edit.Replacement)
		text = insertRunes(text, loc, ins...)
		cursor = loc + len(ins)
	}
	if d.Suffix != "" {
		text = append(text, []rune(d.Suffix)...)
		cursor = len(text)
	}
	return string(text), cursor
}

// Formatter applies a Mask to edits. The zero value has no mask and passes
// every edit through. Formatter holds no per-call state, so a single value can
// serve any number of fields.
type Formatter struct {
	mask Mask
}

// NewFormatter binds a formatter to m.
func NewFormatter(m Mask) Formatter {
	return Formatter{mask: m}
}

// Mask returns the attached mask.
func (f Formatter) Mask() Mask {
	return f.mask
}

// Decide evaluates edit against the current text.
func (f Formatter) Decide(current string, edit Edit) Decision {
	if f.mask.IsZero() {
		return Decision{Action: ActionDefault}
	}
	text := []rune(current)
	if edit.Location < 0 || edit.Location > len(text) {
		return Decision{Action: ActionDefault}
	}
	if edit.IsDelete() {
		return f.decideDelete(text, edit.Location)
	}
	runes := []rune(edit.Replacement)
	if len(runes) > 1 {
		return f.decidePaste(current, edit)
	}
	return f.decideInsert(text, edit.Location, runes[0])
}

// Apply decides edit and folds the result into current.
func (f Formatter) Apply(current string, edit Edit) (string, int) {
	return f.Decide(current, edit).Apply(current, edit)
}

// Format types raw at the end of an empty buffer one rune at a time, the way
// a user would, and returns the resulting text.
func (f Formatter) Format(raw string) string {
	text := ""
	for _, r := range raw {
		text, _ = f.Apply(text, Insert(runeCount(text), string(r)))
	}
	return text
}

// Strip removes every rune equal to the mask's first literal. The match is by
// value, so a typed rune equal to the separator is removed as well. The bool
// is false when no mask is attached.
func (f Formatter) Strip(text string) (string, bool) {
	if f.mask.IsZero() {
		return "", false
	}
	sep, ok := f.mask.FirstLiteral()
	if !ok {
		return text, true
	}
	return strings.Map(func(r rune) rune {
		if r == sep {
			return -1
		}
		return r
	}, text), true
}

// decideDelete removes the separator together with the rune before it when
// the rune being deleted sits right after a separator.
func (f Formatter) decideDelete(text []rune, loc int) Decision {
	if loc == 0 {
		return Decision{Action: ActionDefault}
	}
	sep, ok := f.mask.FirstLiteral()
	if !ok || text[loc-1] != sep {
		return Decision{Action: ActionDefault}
	}
	keep := len(text) - 2
	if keep < 0 {
		keep = 0
	}
	return Decision{Action: ActionReplace, Text: string(text[:keep])}
}

func (f Formatter) decideInsert(text []rune, loc int, r rune) Decision {
	if loc >= f.mask.Len() || len(text) >= f.mask.Len() {
		return Decision{Action: ActionDrop}
	}
	sep, atSeparator := f.mask.LiteralAt(loc)

	if loc == len(text) {
		// The suffix is skipped when it would run past a trailing literal.
		if atSeparator && loc+2 <= f.mask.Len() {
			return Decision{Action: ActionDefault, Suffix: string(sep)}
		}
		return Decision{Action: ActionDefault}
	}

	if atSeparator {
		// Groups are four placeholders wide: skip the separator and the slot
		// after it.
		idx := clamp(loc+2, 0, len(text))
		return Decision{Action: ActionReplace, Text: string(insertRunes(text, idx, r))}
	}

	last := len(text) - 1
	if lit, ok := f.mask.LiteralAt(last + 1); ok {
		out := insertRunes(text, loc, r)
		out = insertRunes(out, last+1, lit)
		return Decision{Action: ActionReplace, Text: string(out)}
	}
	return Decision{Action: ActionReplace, Text: string(insertRunes(text, loc, r))}
}

// decidePaste folds a multi-rune replacement into the text. At the end of the
// text the runes are typed as consecutive keystrokes. Elsewhere the pasted
// runes are spliced into the stripped value at the caret and the result is
// formatted again, so the text after the caret keeps following the pasted
// runes. Runes that no longer fit are dropped from the end.
func (f Formatter) decidePaste(current string, edit Edit) Decision {
	text := []rune(current)
	if len(text) >= f.mask.Len() {
		return Decision{Action: ActionDrop}
	}

	var out string
	if edit.Location == len(text) {
		out = current
		for _, r := range edit.Replacement {
			step := Insert(runeCount(out), string(r))
			d := f.Decide(out, step)
			if d.Action == ActionDrop {
				break
			}
			out, _ = d.Apply(out, step)
		}
	} else {
		head, _ := f.Strip(string(text[:edit.Location]))
		pasted, _ := f.Strip(edit.Replacement)
		tail, _ := f.Strip(string(text[edit.Location:]))
		out = f.Format(head + pasted + tail)
	}

	if out == current {
		return Decision{Action: ActionDrop}
	}
	return Decision{Action: ActionReplace, Text: out}
}

func insertRunes(text []rune, idx int, ins ...rune) []rune {
	out := make([]rune, 0, len(text)+len(ins))
	out = append(out, text[:idx]...)
	out = append(out, ins...)
	return append(out, text[idx:]...)
}

func runeCount(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
