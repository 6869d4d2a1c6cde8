package tokens

import (
	"fmt"
	"sort"
	"strings"
)

// FieldState enumerates the visual states of a text field.
type FieldState int

const (
	StateDefault FieldState = iota
	StateFocused
	StateFilled
	StateError
	StateDisabled
	StateCorrect
)

func (s FieldState) String() string {
	switch s {
	case StateFocused:
		return "focused"
	case StateFilled:
		return "filled"
	case StateError:
		return "error"
	case StateDisabled:
		return "disabled"
	case StateCorrect:
		return "correct"
	default:
		return "default"
	}
}

// FieldColors are the colors a text field uses in one state.
type FieldColors struct {
	Title      Color
	Text       Color
	ErrorLabel Color
	Border     Color
}

// FieldTypography are the fonts used by a text field.
type FieldTypography struct {
	Title       Font
	Text        Font
	Placeholder Font
	ErrorLabel  Font
}

// FieldMetrics hold the geometry shared by text fields.
type FieldMetrics struct {
	CornerRadius float64
	BorderWidth  float64
	// IconGap separates a leading icon from the text.
	IconGap float64
	// IconSize is the side of the square accessory view slots.
	IconSize float64
}

// DefaultFieldMetrics returns the stock geometry.
func DefaultFieldMetrics() FieldMetrics {
	return FieldMetrics{CornerRadius: 8, BorderWidth: 1, IconGap: 10, IconSize: 20}
}

// Table is an immutable design-token table. Use New to construct one; the
// zero value carries no colors.
type Table struct {
	name       string
	palette    Palette
	scheme     ColorScheme
	typography Typography
	metrics    FieldMetrics
}

// Option customises a Table during construction.
type Option func(*Table)

// WithName labels the table. Names surface in go-theme exports.
func WithName(name string) Option {
	return func(t *Table) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			t.name = trimmed
		}
	}
}

// WithPalette replaces the palette.
func WithPalette(p Palette) Option {
	return func(t *Table) {
		t.palette = p
	}
}

// WithColorScheme replaces the semantic scheme.
func WithColorScheme(s ColorScheme) Option {
	return func(t *Table) {
		t.scheme = s
	}
}

// WithTypography replaces the type scale.
func WithTypography(ty Typography) Option {
	return func(t *Table) {
		t.typography = ty
	}
}

// WithFieldMetrics replaces the field geometry.
func WithFieldMetrics(m FieldMetrics) Option {
	return func(t *Table) {
		t.metrics = m
	}
}

// WithColor overrides one color by token key (see ColorKeys). Unknown keys are
// ignored.
func WithColor(key string, c Color) Option {
	return func(t *Table) {
		if slot, ok := colorSlots[normalizeKey(key)]; ok {
			*slot(t) = c
		}
	}
}

// WithFont overrides one typography slot by key (see FontKeys). Unknown keys
// are ignored.
func WithFont(key string, f Font) Option {
	return func(t *Table) {
		if slot, ok := fontSlots[normalizeKey(key)]; ok {
			*slot(t) = f
		}
	}
}

// DefaultName names the stock table.
const DefaultName = "default"

// New builds a table from the stock tokens plus options.
func New(options ...Option) Table {
	t := Table{
		name:       DefaultName,
		palette:    DefaultPalette(),
		scheme:     DefaultColorScheme(),
		typography: DefaultTypography(),
		metrics:    DefaultFieldMetrics(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&t)
	}
	return t
}

// Default returns the stock table.
func Default() Table {
	return New()
}

// With derives a new table from t with options applied. t is left unchanged.
func (t Table) With(options ...Option) Table {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&t)
	}
	return t
}

func (t Table) Name() string { return t.name }
func (t Table) Palette() Palette { return t.palette }
func (t Table) Scheme() ColorScheme { return t.scheme }
func (t Table) Typography() Typography { return t.typography }
func (t Table) FieldMetrics() FieldMetrics { return t.metrics }

// Color looks up a color by token key.
func (t Table) Color(key string) (Color, bool) {
	slot, ok := colorSlots[normalizeKey(key)]
	if !ok {
		return Color{}, false
	}
	return *slot(&t), true
}

// Font looks up a typography slot by key.
func (t Table) Font(key string) (Font, bool) {
	slot, ok := fontSlots[normalizeKey(key)]
	if !ok {
		return Font{}, false
	}
	return *slot(&t), true
}

// FieldColors resolves the colors for a field in state.
func (t Table) FieldColors(state FieldState) FieldColors {
	base := FieldColors{
		Title:      t.palette.InkPrimary,
		Text:       t.palette.InkPrimary,
		ErrorLabel: t.scheme.Error,
		Border:     t.palette.LightTertiary,
	}
	switch state {
	case StateFocused:
		base.Border = t.scheme.Primary
	case StateError:
		base.Border = t.scheme.Error
	case StateDisabled:
		base.Title = t.palette.InkSecondary
		base.Text = t.palette.InkTertiary
		base.Border = t.palette.LightSecondary
	case StateCorrect:
		base.Border = t.palette.Forest
	}
	return base
}

// FieldTypography resolves the fonts for text fields: the title uses
// headline2 and the placeholder headline4, both at 16pt; errors use caption.
func (t Table) FieldTypography() FieldTypography {
	return FieldTypography{
		Title:       t.typography.Headline2.WithSize(16),
		Text:        t.typography.Body1,
		Placeholder: t.typography.Headline4.WithSize(16),
		ErrorLabel:  t.typography.Caption,
	}
}

func (t Table) String() string {
	return fmt.Sprintf("tokens.Table(%s)", t.name)
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimPrefix(key, "color.")
	key = strings.TrimPrefix(key, "font.")
	return strings.ReplaceAll(key, "_", "-")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
