package widgets

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/mask"
	"github.com/goliatone/go-formwidgets/pkg/notify"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Outlets a text field view resource must declare.
const (
	OutletTitle     = "titleLabel"
	OutletTextField = "textField"
	OutletError     = "errorLabel"
)

var (
	// ErrMissingOutlet is returned when a resource lacks a required outlet.
	ErrMissingOutlet = errors.New("widgets: resource is missing an outlet")
	// ErrIconNotFound is returned when an icon name is not in the icon set.
	ErrIconNotFound = errors.New("widgets: icon not found")
)

// IconPosition places a field icon.
type IconPosition int

const (
	IconLeft IconPosition = iota
	IconRight
)

func (p IconPosition) String() string {
	if p == IconRight {
		return "right"
	}
	return "left"
}

// ParseIconPosition maps "left"/"right" (any case) to a position. Anything
// else is left.
func ParseIconPosition(raw string) IconPosition {
	if strings.EqualFold(strings.TrimSpace(raw), "right") {
		return IconRight
	}
	return IconLeft
}

// iconFrameHeight is the nominal height of icon views before the field lays
// them out in its accessory slots.
const iconFrameHeight = 10

// TextFieldView is a text field with a title above it, an error label below
// it and optional icons. Its border follows the field state: focused fields
// use the primary color, errors the error color.
type TextFieldView struct {
	container *Container
	field     *TextField
	table     tokens.Table
	icons     *layout.IconSet
	center    *notify.Center
	logger    *zap.Logger

	title        string
	placeholder  string
	errorText    string
	iconPosition IconPosition
	focused      bool
	correct      bool

	observers []notify.Token
}

// NewTextFieldView loads the text field view resource and builds the view and
// its field. Options are shared with the field.
func NewTextFieldView(options ...Option) (*TextFieldView, error) {
	cfg := newConfig(options...)
	container, err := NewContainer(cfg.factory, layout.TextFieldViewResource, options...)
	if err != nil {
		return nil, err
	}
	for _, outlet := range []string{OutletTitle, OutletTextField, OutletError} {
		if !container.Resource().HasOutlet(outlet) {
			return nil, fmt.Errorf("%w: %s has no %q", ErrMissingOutlet, container.Resource().Name, outlet)
		}
	}

	v := &TextFieldView{
		container: container,
		field:     newTextField(cfg),
		table:     cfg.table,
		icons:     cfg.icons,
		center:    cfg.center,
		logger:    cfg.logger,
	}
	v.observeEditing()
	v.applyPlaceholder()
	return v, nil
}

func (v *TextFieldView) observeEditing() {
	v.observers = append(v.observers,
		v.center.Observe(notify.TextDidBeginEditing, v.field, func(notify.Notification) {
			v.focused = true
		}),
		v.center.Observe(notify.TextDidEndEditing, v.field, func(notify.Notification) {
			v.focused = false
		}),
	)
}

// Close stops observing editing notifications. Views on a shared center must
// be closed or their observers stay registered.
func (v *TextFieldView) Close() {
	for _, token := range v.observers {
		v.center.Remove(token)
	}
	v.observers = nil
}

// Field returns the underlying text field.
func (v *TextFieldView) Field() *TextField { return v.field }

// Container returns the layout container.
func (v *TextFieldView) Container() *Container { return v.container }

// Tokens returns the design tokens in use.
func (v *TextFieldView) Tokens() tokens.Table { return v.table }

// SetTokens restyles the view.
func (v *TextFieldView) SetTokens(table tokens.Table) {
	v.table = table
	v.restylePlaceholder()
}

// Title returns the title text.
func (v *TextFieldView) Title() string { return v.title }

// SetTitle sets the title. An empty title hides the label.
func (v *TextFieldView) SetTitle(title string) { v.title = title }

// TitleHidden reports whether the title label is hidden.
func (v *TextFieldView) TitleHidden() bool { return v.title == "" }

// SetPlaceholder sets the placeholder text, styled with headline4 at 16pt in
// ink primary. A later SetMask replaces the text with the mask template.
func (v *TextFieldView) SetPlaceholder(text string) {
	v.placeholder = text
	v.applyPlaceholder()
}

func (v *TextFieldView) applyPlaceholder() {
	if v.placeholder != "" {
		current := v.field.Placeholder()
		current.Text = v.placeholder
		v.field.SetPlaceholder(current)
	}
	v.restylePlaceholder()
}

func (v *TextFieldView) restylePlaceholder() {
	v.field.placeholderStyle(v.table.FieldTypography().Placeholder, v.table.Palette().InkPrimary)
}

// SetMask attaches m to the field.
func (v *TextFieldView) SetMask(m mask.Mask) {
	v.field.SetMask(m)
}

// UnmaskedText returns the field text without mask separators.
func (v *TextFieldView) UnmaskedText() (string, bool) {
	return v.field.UnmaskedText()
}

// SetPaddings sets the field paddings.
func (v *TextFieldView) SetPaddings(insets layout.Insets) {
	v.field.SetPaddings(insets)
}

// ErrorText returns the current error message.
func (v *TextFieldView) ErrorText() string { return v.errorText }

// HasError reports whether an error message is shown.
func (v *TextFieldView) HasError() bool { return v.errorText != "" }

// SetErrorText shows message below the field, switches the border to the
// error color and puts the error icon in the right slot. An empty message is
// ignored; use ClearError to leave the error state.
func (v *TextFieldView) SetErrorText(message string) {
	if message == "" {
		return
	}
	v.errorText = message
	v.correct = false
	if err := v.AddErrorIcon(""); err != nil {
		v.logger.Warn("error icon unavailable", zap.Error(err))
	}
}

// ClearError hides the error label and removes the error icon.
func (v *TextFieldView) ClearError() {
	if v.errorText == "" {
		return
	}
	v.errorText = ""
	if right := v.field.RightView(); right != nil && right.Icon.Name == layout.ErrorIcon {
		v.field.SetRightView(nil)
	}
}

// SetCorrect marks the value as accepted, switching to the correct state.
func (v *TextFieldView) SetCorrect(correct bool) {
	v.correct = correct
	if correct {
		v.ClearError()
	}
}

// SetEnabled toggles the field.
func (v *TextFieldView) SetEnabled(enabled bool) {
	v.field.SetEnabled(enabled)
}

// IconPosition returns where AddIcon places icons.
func (v *TextFieldView) IconPosition() IconPosition { return v.iconPosition }

// SetIconPosition sets where AddIcon places icons.
func (v *TextFieldView) SetIconPosition(position IconPosition) {
	v.iconPosition = position
}

// AddIcon shows the named icon. On the right it fills the right slot; on the
// left the left padding grows by the icon width plus the icon gap.
func (v *TextFieldView) AddIcon(name string) error {
	accessory, err := v.iconAccessory(name)
	if err != nil {
		return err
	}
	if v.iconPosition == IconRight {
		v.field.SetRightView(accessory)
		return nil
	}
	paddings := v.field.Paddings()
	paddings.Left += accessory.Frame.Width + v.table.FieldMetrics().IconGap
	v.field.SetPaddings(paddings)
	v.field.SetLeftView(accessory)
	return nil
}

// AddErrorIcon puts name, or layout.ErrorIcon when empty, in the right slot.
func (v *TextFieldView) AddErrorIcon(name string) error {
	if name == "" {
		name = layout.ErrorIcon
	}
	accessory, err := v.iconAccessory(name)
	if err != nil {
		return err
	}
	v.field.SetRightView(accessory)
	return nil
}

func (v *TextFieldView) iconAccessory(name string) (*Accessory, error) {
	icon, ok := v.icons.Icon(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrIconNotFound, name)
	}
	return &Accessory{
		Icon: icon,
		Frame: layout.Rect{
			Width:  v.field.Paddings().Right,
			Height: iconFrameHeight,
		},
	}, nil
}

// State derives the visual state. Precedence: disabled, focused, error,
// correct, filled, default.
func (v *TextFieldView) State() tokens.FieldState {
	switch {
	case !v.field.Enabled():
		return tokens.StateDisabled
	case v.focused:
		return tokens.StateFocused
	case v.errorText != "":
		return tokens.StateError
	case v.correct:
		return tokens.StateCorrect
	case v.field.Text() != "":
		return tokens.StateFilled
	default:
		return tokens.StateDefault
	}
}

// Style returns the colors for the current state.
func (v *TextFieldView) Style() tokens.FieldColors {
	return v.table.FieldColors(v.State())
}

// BorderColor is the field border color for the current state.
func (v *TextFieldView) BorderColor() tokens.Color {
	return v.Style().Border
}
