package widgets

import (
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Snapshot is an immutable description of a view for renderers.
type Snapshot struct {
	Name          string
	Title         string
	TitleHidden   bool
	Text          string
	DisplayText   string
	Value         string
	Cursor        int
	Placeholder   Placeholder
	Mask          string
	ErrorText     string
	State         tokens.FieldState
	Colors        tokens.FieldColors
	Typography    tokens.FieldTypography
	Metrics       tokens.FieldMetrics
	Bounds        layout.Rect
	TextRect      layout.Rect
	LeftView      *Accessory
	LeftViewRect  layout.Rect
	RightView     *Accessory
	RightViewRect layout.Rect
	Shadow        layout.Shadow
	Secure        bool
	Editing       bool
	Enabled       bool
	Complete      bool
}

// secureRune replaces each rune of secure text when displayed.
const secureRune = "•"

// Snapshot captures the current state of the view.
func (v *TextFieldView) Snapshot() Snapshot {
	f := v.field
	bounds := v.container.ContentFrame()
	display := f.Text()
	if f.Secure() {
		display = strings.Repeat(secureRune, len([]rune(display)))
	}

	snap := Snapshot{
		Name:        f.Name(),
		Title:       v.title,
		TitleHidden: v.TitleHidden(),
		Text:        f.Text(),
		DisplayText: display,
		Value:       f.Value(),
		Cursor:      f.Cursor(),
		Placeholder: f.Placeholder(),
		Mask:        f.Mask().String(),
		ErrorText:   v.errorText,
		State:       v.State(),
		Colors:      v.Style(),
		Typography:  v.table.FieldTypography(),
		Metrics:     v.table.FieldMetrics(),
		Bounds:      bounds,
		TextRect:    f.TextRect(bounds),
		Shadow:      v.container.Shadow(),
		Secure:      f.Secure(),
		Editing:     f.IsEditing(),
		Enabled:     f.Enabled(),
		Complete:    f.Complete(),
	}
	if left := f.LeftView(); left != nil {
		copied := *left
		snap.LeftView = &copied
		snap.LeftViewRect = f.LeftViewRect(bounds)
	}
	if right := f.RightView(); right != nil {
		copied := *right
		snap.RightView = &copied
		snap.RightViewRect = f.RightViewRect(bounds)
	}
	return snap
}
