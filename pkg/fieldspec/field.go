package fieldspec

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/mask"
)

// Icon positions accepted by Field.IconPosition.
const (
	IconLeft  = "left"
	IconRight = "right"
)

// Formats with a built-in meaning.
const (
	FormatCreditCard = "credit-card"
	FormatPassword   = "password"
)

// HintWidget selects the widget kind explicitly.
const HintWidget = "widget"

// ErrInvalidField is wrapped by validation failures.
var ErrInvalidField = errors.New("fieldspec: invalid field")

// Field declares one text input. Mask is a preset name (card-number,
// card-number-dashes) or a template where X marks an input position.
type Field struct {
	Name         string            `json:"name" yaml:"name"`
	Title        string            `json:"title,omitempty" yaml:"title,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Mask         string            `json:"mask,omitempty" yaml:"mask,omitempty"`
	Format       string            `json:"format,omitempty" yaml:"format,omitempty"`
	Icon         string            `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconPosition string            `json:"iconPosition,omitempty" yaml:"iconPosition,omitempty"`
	Required     bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Secret       bool              `json:"secret,omitempty" yaml:"secret,omitempty"`
	MaxLength    int               `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Default      string            `json:"default,omitempty" yaml:"default,omitempty"`
	Hints        map[string]string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// ResolvedMask returns the mask the field edits through. A credit-card format
// without an explicit mask uses the space separated card preset.
func (f Field) ResolvedMask() mask.Mask {
	if strings.TrimSpace(f.Mask) != "" {
		return mask.Resolve(f.Mask)
	}
	if strings.EqualFold(strings.TrimSpace(f.Format), FormatCreditCard) {
		return mask.CardNumber()
	}
	return mask.Mask{}
}

// Masked reports whether the field edits through a mask.
func (f Field) Masked() bool {
	return !f.ResolvedMask().IsZero()
}

// Label returns Title, falling back to the field name.
func (f Field) Label() string {
	if title := strings.TrimSpace(f.Title); title != "" {
		return title
	}
	return f.Name
}

// Hint returns the named hint.
func (f Field) Hint(key string) string {
	if f.Hints == nil {
		return ""
	}
	return strings.TrimSpace(f.Hints[key])
}

// Validate checks the declaration is usable.
func (f Field) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidField)
	}
	switch strings.ToLower(strings.TrimSpace(f.IconPosition)) {
	case "", IconLeft, IconRight:
	default:
		return fmt.Errorf("%w: %s: icon position %q is not left or right", ErrInvalidField, f.Name, f.IconPosition)
	}
	if f.MaxLength < 0 {
		return fmt.Errorf("%w: %s: negative maxLength", ErrInvalidField, f.Name)
	}
	if m := f.ResolvedMask(); !m.IsZero() && m.Placeholders() == 0 {
		return fmt.Errorf("%w: %s: mask %q has no input positions", ErrInvalidField, f.Name, m)
	}
	return nil
}

// Form is an ordered set of fields.
type Form struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field looks up a field by name.
func (f Form) Field(name string) (Field, bool) {
	idx := slices.IndexFunc(f.Fields, func(field Field) bool { return field.Name == name })
	if idx < 0 {
		return Field{}, false
	}
	return f.Fields[idx], true
}

// Validate checks every field and rejects duplicate names.
func (f Form) Validate() error {
	seen := make(map[string]struct{}, len(f.Fields))
	for _, field := range f.Fields {
		if err := field.Validate(); err != nil {
			return err
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidField, field.Name)
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}
