package widgets

import (
	"math"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Placeholder is the styled hint shown while a field is empty.
type Placeholder struct {
	Text       string
	Font       tokens.Font
	Color      tokens.Color
	HeadIndent float64
	// Icon trails the text when set.
	Icon *Attachment
}

// IsZero reports whether no placeholder is set.
func (p Placeholder) IsZero() bool {
	return p.Text == "" && p.Icon == nil
}

// Attachment is an inline icon laid out on the text baseline.
type Attachment struct {
	Icon   layout.Icon
	Bounds layout.Rect
}

// NewAttachment centres icon on the cap height of font. The vertical offset is
// rounded to whole points before halving.
func NewAttachment(icon layout.Icon, font tokens.Font) Attachment {
	offset := int(math.Round(font.CapHeight()-icon.Size.Height)) / 2
	return Attachment{
		Icon: icon,
		Bounds: layout.Rect{
			Y:      float64(offset),
			Width:  icon.Size.Width,
			Height: icon.Size.Height,
		},
	}
}

// Accessory is an icon shown beside the text.
type Accessory struct {
	Icon  layout.Icon
	Frame layout.Rect
}
