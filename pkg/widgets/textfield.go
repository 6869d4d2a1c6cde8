package widgets

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/mask"
	"github.com/goliatone/go-formwidgets/pkg/notify"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// accessorySide is the edge length of the left and right accessory slots.
const accessorySide = 20

// DefaultPaddings are the text field insets: 12 top and bottom, 16 left and
// right.
func DefaultPaddings() layout.Insets {
	return layout.Insets{Top: 12, Left: 16, Bottom: 12, Right: 16}
}

// Notification info keys.
const (
	InfoText     = "text"
	InfoDecision = "decision"
)

// TextField is a single-line text buffer with a caret. When a mask is
// attached every edit is routed through a mask.Formatter and its decision is
// honoured exactly.
type TextField struct {
	name      string
	text      string
	cursor    int
	formatter mask.Formatter
	paddings  layout.Insets

	placeholder Placeholder
	leftView    *Accessory
	rightView   *Accessory

	delegate  Delegate
	center    *notify.Center
	logger    *zap.Logger
	editing   bool
	disabled  bool
	secure    bool
	maxLength int
}

// NewTextField constructs a field. Relevant options: WithMask, WithPaddings,
// WithDelegate, WithNotificationCenter, WithLogger, WithSecureEntry,
// WithMaxLength, WithName.
func NewTextField(options ...Option) *TextField {
	cfg := newConfig(options...)
	return newTextField(cfg)
}

func newTextField(cfg config) *TextField {
	f := &TextField{
		name:      cfg.name,
		formatter: mask.NewFormatter(cfg.mask),
		paddings:  DefaultPaddings(),
		delegate:  cfg.delegate,
		center:    cfg.center,
		logger:    cfg.logger,
		secure:    cfg.secure,
		maxLength: cfg.maxLength,
	}
	if cfg.paddings != nil {
		f.paddings = *cfg.paddings
	}
	f.applyMask()
	return f
}

// Name returns the label the field was built with.
func (f *TextField) Name() string { return f.name }

// Text returns the displayed text, separators included.
func (f *TextField) Text() string { return f.text }

// Cursor returns the caret position in runes.
func (f *TextField) Cursor() int { return f.cursor }

// SetText replaces the buffer without consulting the mask and moves the caret
// to the end.
func (f *TextField) SetText(text string) {
	f.text = text
	f.cursor = len([]rune(text))
}

// SetCursor moves the caret, clamped to the text.
func (f *TextField) SetCursor(pos int) {
	n := len([]rune(f.text))
	switch {
	case pos < 0:
		pos = 0
	case pos > n:
		pos = n
	}
	f.cursor = pos
}

// Mask returns the attached mask.
func (f *TextField) Mask() mask.Mask { return f.formatter.Mask() }

// SetMask attaches m and turns the placeholder into the mask template, keeping
// the placeholder styling. A zero mask detaches masking and leaves the
// placeholder alone.
func (f *TextField) SetMask(m mask.Mask) {
	f.formatter = mask.NewFormatter(m)
	f.applyMask()
}

func (f *TextField) applyMask() {
	m := f.formatter.Mask()
	if m.IsZero() {
		return
	}
	f.placeholder = Placeholder{
		Text:       m.String(),
		Font:       f.placeholder.Font,
		Color:      f.placeholder.Color,
		HeadIndent: f.placeholder.HeadIndent,
	}
}

// UnmaskedText strips the mask separator from the text. The bool is false
// when no mask is attached. Computed on every call.
func (f *TextField) UnmaskedText() (string, bool) {
	return f.formatter.Strip(f.text)
}

// Value returns the unmasked text for masked fields and the text otherwise.
func (f *TextField) Value() string {
	if raw, ok := f.UnmaskedText(); ok {
		return raw
	}
	return f.text
}

// Complete reports whether a masked field is filled to the mask length.
// Unmasked fields are complete when non-empty.
func (f *TextField) Complete() bool {
	m := f.formatter.Mask()
	if m.IsZero() {
		return f.text != ""
	}
	return m.Full(f.text)
}

// Paddings returns the insets applied to the text rectangles.
func (f *TextField) Paddings() layout.Insets { return f.paddings }

// SetPaddings replaces the insets.
func (f *TextField) SetPaddings(insets layout.Insets) { f.paddings = insets }

// TextRect is the rectangle text is drawn in.
func (f *TextField) TextRect(bounds layout.Rect) layout.Rect {
	return f.paddings.Inset(bounds)
}

// PlaceholderRect is the rectangle the placeholder is drawn in.
func (f *TextField) PlaceholderRect(bounds layout.Rect) layout.Rect {
	return f.paddings.Inset(bounds)
}

// EditingRect is the rectangle text is drawn in while editing.
func (f *TextField) EditingRect(bounds layout.Rect) layout.Rect {
	return f.paddings.Inset(bounds)
}

// RightViewRect is the 20x20 slot at the trailing edge, inset by the right
// padding and two points below the top padding.
func (f *TextField) RightViewRect(bounds layout.Rect) layout.Rect {
	return layout.Rect{
		X:      bounds.Width - (accessorySide + f.paddings.Right),
		Y:      f.paddings.Top + 2,
		Width:  accessorySide,
		Height: accessorySide,
	}
}

// LeftViewRect is the 20x20 slot at the leading edge. Its x offset is the
// right padding, so icons sit symmetrically with the right slot.
func (f *TextField) LeftViewRect(bounds layout.Rect) layout.Rect {
	return layout.Rect{
		X:      f.paddings.Right,
		Y:      f.paddings.Top + 2,
		Width:  accessorySide,
		Height: accessorySide,
	}
}

// Placeholder returns the placeholder.
func (f *TextField) Placeholder() Placeholder { return f.placeholder }

// SetPlaceholder replaces the placeholder.
func (f *TextField) SetPlaceholder(p Placeholder) { f.placeholder = p }

// SetPlaceholderIcon attaches icon after the placeholder text, centred on the
// placeholder font's cap height.
func (f *TextField) SetPlaceholderIcon(icon layout.Icon) {
	attachment := NewAttachment(icon, f.placeholder.Font)
	f.placeholder.Icon = &attachment
}

// SetPlaceholderPadding sets the placeholder head indent.
func (f *TextField) SetPlaceholderPadding(indent float64) {
	f.placeholder.HeadIndent = indent
}

// LeftView returns the leading accessory, if any.
func (f *TextField) LeftView() *Accessory { return f.leftView }

// RightView returns the trailing accessory, if any.
func (f *TextField) RightView() *Accessory { return f.rightView }

// SetLeftView sets the leading accessory. Nil removes it.
func (f *TextField) SetLeftView(a *Accessory) { f.leftView = a }

// SetRightView sets the trailing accessory. Nil removes it.
func (f *TextField) SetRightView(a *Accessory) { f.rightView = a }

// Secure reports whether the text should be obscured when drawn.
func (f *TextField) Secure() bool { return f.secure }

// Enabled reports whether the field accepts edits and focus.
func (f *TextField) Enabled() bool { return !f.disabled }

// SetEnabled toggles the field. Disabling an editing field ends editing.
func (f *TextField) SetEnabled(enabled bool) {
	if !enabled && f.editing {
		f.EndEditing()
	}
	f.disabled = !enabled
}

// IsEditing reports whether the field has focus.
func (f *TextField) IsEditing() bool { return f.editing }

// ShouldChange proposes replacing the text at location with replacement (an
// empty replacement deletes the rune at location). The formatter decides and
// the field applies the decision to its buffer and caret. The returned
// decision is what was applied.
func (f *TextField) ShouldChange(location int, replacement string) mask.Decision {
	edit := mask.Edit{Location: location, Replacement: replacement}
	if f.disabled {
		return mask.Decision{Action: mask.ActionDrop}
	}

	decision := f.formatter.Decide(f.text, edit)
	if decision.Action == mask.ActionDefault && f.exceedsMaxLength(edit) {
		decision = mask.Decision{Action: mask.ActionDrop}
	}

	before := f.text
	f.text, f.cursor = decision.Apply(f.text, edit)
	f.logger.Debug("text field edit",
		zap.String("field", f.name),
		zap.Int("location", location),
		zap.Int("replacement_len", len([]rune(replacement))),
		zap.Stringer("action", decision.Action),
	)

	if f.text != before {
		if observer, ok := f.delegate.(ChangeObserver); ok {
			observer.DidChange(f, edit, decision)
		}
		f.post(notify.TextDidChange, map[string]any{
			InfoText:     f.text,
			InfoDecision: decision,
		})
	}
	return decision
}

func (f *TextField) exceedsMaxLength(edit mask.Edit) bool {
	if f.maxLength <= 0 || !f.formatter.Mask().IsZero() || edit.IsDelete() {
		return false
	}
	return len([]rune(f.text))+len([]rune(edit.Replacement)) > f.maxLength
}

// Type enters s one rune at a time at the caret, as keystrokes.
func (f *TextField) Type(s string) {
	for _, r := range s {
		f.ShouldChange(f.cursor, string(r))
	}
}

// Replace clears the buffer and types s. With a mask attached, runes equal to
// the mask separator are skipped so formatted and raw values produce the same
// text. Disabled fields are left untouched.
func (f *TextField) Replace(s string) {
	if f.disabled {
		return
	}
	before := f.text
	f.text, f.cursor = "", 0
	sep, hasSep := f.formatter.Mask().FirstLiteral()
	for _, r := range s {
		if hasSep && r == sep {
			continue
		}
		f.ShouldChange(f.cursor, string(r))
	}
	if f.text == "" && before != "" {
		f.post(notify.TextDidChange, map[string]any{InfoText: ""})
	}
}

// Backspace deletes the rune before the caret. It is a no-op at the start of
// the text.
func (f *TextField) Backspace() mask.Decision {
	if f.cursor == 0 {
		return mask.Decision{Action: mask.ActionDrop}
	}
	return f.ShouldChange(f.cursor-1, "")
}

// Paste inserts s at the caret as a single edit.
func (f *TextField) Paste(s string) mask.Decision {
	if s == "" {
		return mask.Decision{Action: mask.ActionDrop}
	}
	return f.ShouldChange(f.cursor, s)
}

// BeginEditing gives the field focus unless it is disabled or the delegate
// refuses. Observers of notify.TextDidBeginEditing are told.
func (f *TextField) BeginEditing() bool {
	if f.disabled {
		return false
	}
	if f.editing {
		return true
	}
	if approver, ok := f.delegate.(BeginEditingApprover); ok && !approver.ShouldBeginEditing(f) {
		return false
	}
	f.editing = true
	if observer, ok := f.delegate.(BeginEditingObserver); ok {
		observer.DidBeginEditing(f)
	}
	f.post(notify.TextDidBeginEditing, nil)
	return true
}

// EndEditing drops focus unless the delegate refuses.
func (f *TextField) EndEditing() bool {
	if !f.editing {
		return true
	}
	if approver, ok := f.delegate.(EndEditingApprover); ok && !approver.ShouldEndEditing(f) {
		return false
	}
	f.editing = false
	if observer, ok := f.delegate.(EndEditingObserver); ok {
		observer.DidEndEditing(f)
	}
	f.post(notify.TextDidEndEditing, nil)
	return true
}

// Clear empties the text unless the delegate refuses.
func (f *TextField) Clear() bool {
	if f.disabled {
		return false
	}
	if approver, ok := f.delegate.(ClearApprover); ok && !approver.ShouldClear(f) {
		return false
	}
	if f.text == "" {
		return true
	}
	f.text = ""
	f.cursor = 0
	f.post(notify.TextDidChange, map[string]any{InfoText: ""})
	return true
}

// Return reports whether the return key should be processed.
func (f *TextField) Return() bool {
	if approver, ok := f.delegate.(ReturnApprover); ok {
		return approver.ShouldReturn(f)
	}
	return true
}

// SetDelegate replaces the delegate.
func (f *TextField) SetDelegate(d Delegate) { f.delegate = d }

func (f *TextField) post(name notify.Name, info map[string]any) {
	if f.center == nil {
		return
	}
	f.center.Post(notify.Notification{Name: name, Sender: f, Info: info})
}

// placeholderStyle applies font and color to the current placeholder.
func (f *TextField) placeholderStyle(font tokens.Font, color tokens.Color) {
	f.placeholder.Font = font
	f.placeholder.Color = color
	if f.placeholder.Icon != nil {
		attachment := NewAttachment(f.placeholder.Icon.Icon, font)
		f.placeholder.Icon = &attachment
	}
}
