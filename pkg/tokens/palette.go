package tokens

// Palette lists the raw brand colors. Field names describe the role the color
// plays in the product rather than its hue.
type Palette struct {
	SpecialGray       Color
	OldBackgroundGray Color

	InkPrimary   Color
	InkSecondary Color
	InkTertiary  Color

	LightSecondary Color
	LightTertiary  Color

	CyanBlue    Color
	DarkYellow  Color
	LightYellow Color
	DarkBlue    Color
	LightBlue   Color
	Forest      Color
	LightForest Color

	InfoGray   Color
	BorderGray Color
}

// ColorScheme maps semantic roles to colors.
type ColorScheme struct {
	Primary      Color
	Secondary    Color
	Error        Color
	Surface      Color
	Background   Color
	OnPrimary    Color
	OnSecondary  Color
	OnSurface    Color
	OnBackground Color
	OnError      Color
}

// DefaultPalette returns the stock palette.
func DefaultPalette() Palette {
	ink := MustHex("#181A22")
	return Palette{
		SpecialGray:       MustHex("#C0C0C0"),
		OldBackgroundGray: MustHex("#F7F7F7"),
		InkPrimary:        MustHex("#33343D"),
		InkSecondary:      MustHex("#686A79"),
		InkTertiary:       ink.WithAlpha(0.3),
		LightSecondary:    ink.WithAlpha(0.04),
		LightTertiary:     ink.WithAlpha(0.1),
		CyanBlue:          MustHex("#0B7FFE"),
		DarkYellow:        MustHex("#A68400"),
		LightYellow:       MustHex("#FFEFD2"),
		DarkBlue:          MustHex("#005785"),
		LightBlue:         MustHex("#E8F2FF"),
		Forest:            MustHex("#13574B"),
		LightForest:       MustHex("#E7FEF8"),
		InfoGray:          MustHex("#686A79"),
		BorderGray:        MustHex("#A6A5A5"),
	}
}

// DefaultColorScheme returns the stock semantic scheme.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      MustHex("#4230DD"),
		Secondary:    MustHex("#E7FEF8"),
		Error:        MustHex("#D4152C"),
		Surface:      White,
		Background:   MustHex("#F3F8FF"),
		OnPrimary:    White,
		OnSecondary:  MustHex("#4230DD"),
		OnSurface:    MustHex("#06022B"),
		OnBackground: MustHex("#06022B"),
		OnError:      White,
	}
}

// colorSlots maps token keys to table fields. Keys are shared by the loader,
// the go-theme export, and FromTokens.
var colorSlots = map[string]func(*Table) *Color{
	"special-gray":        func(t *Table) *Color { return &t.palette.SpecialGray },
	"old-background-gray": func(t *Table) *Color { return &t.palette.OldBackgroundGray },
	"ink-primary":         func(t *Table) *Color { return &t.palette.InkPrimary },
	"ink-secondary":       func(t *Table) *Color { return &t.palette.InkSecondary },
	"ink-tertiary":        func(t *Table) *Color { return &t.palette.InkTertiary },
	"light-secondary":     func(t *Table) *Color { return &t.palette.LightSecondary },
	"light-tertiary":      func(t *Table) *Color { return &t.palette.LightTertiary },
	"cyan-blue":           func(t *Table) *Color { return &t.palette.CyanBlue },
	"dark-yellow":         func(t *Table) *Color { return &t.palette.DarkYellow },
	"light-yellow":        func(t *Table) *Color { return &t.palette.LightYellow },
	"dark-blue":           func(t *Table) *Color { return &t.palette.DarkBlue },
	"light-blue":          func(t *Table) *Color { return &t.palette.LightBlue },
	"forest":              func(t *Table) *Color { return &t.palette.Forest },
	"light-forest":        func(t *Table) *Color { return &t.palette.LightForest },
	"info-gray":           func(t *Table) *Color { return &t.palette.InfoGray },
	"border-gray":         func(t *Table) *Color { return &t.palette.BorderGray },
	"primary":             func(t *Table) *Color { return &t.scheme.Primary },
	"secondary":           func(t *Table) *Color { return &t.scheme.Secondary },
	"error":               func(t *Table) *Color { return &t.scheme.Error },
	"surface":             func(t *Table) *Color { return &t.scheme.Surface },
	"background":          func(t *Table) *Color { return &t.scheme.Background },
	"on-primary":          func(t *Table) *Color { return &t.scheme.OnPrimary },
	"on-secondary":        func(t *Table) *Color { return &t.scheme.OnSecondary },
	"on-surface":          func(t *Table) *Color { return &t.scheme.OnSurface },
	"on-background":       func(t *Table) *Color { return &t.scheme.OnBackground },
	"on-error":            func(t *Table) *Color { return &t.scheme.OnError },
}

// ColorKeys lists every color token key in sorted order.
func ColorKeys() []string {
	return sortedKeys(colorSlots)
}
