package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight is a CSS-style numeric font weight.
type Weight int

const (
	WeightRegular  Weight = 400
	WeightMedium   Weight = 500
	WeightSemibold Weight = 600
	WeightBold     Weight = 700
	WeightHeavy    Weight = 800
	WeightBlack    Weight = 900
)

var weightNames = map[string]Weight{
	"regular":  WeightRegular,
	"medium":   WeightMedium,
	"semibold": WeightSemibold,
	"bold":     WeightBold,
	"heavy":    WeightHeavy,
	"black":    WeightBlack,
}

// ParseWeight accepts a weight name ("semibold") or number ("600").
func ParseWeight(raw string) (Weight, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if w, ok := weightNames[value]; ok {
		return w, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 100 || n > 900 {
		return 0, fmt.Errorf("tokens: invalid font weight %q", raw)
	}
	return Weight(n), nil
}

func (w Weight) String() string {
	for name, weight := range weightNames {
		if weight == w {
			return name
		}
	}
	return strconv.Itoa(int(w))
}

// SystemFallback is the family used when a named face is unavailable.
const SystemFallback = "system-ui"

// defaultCapHeight approximates the SF Pro cap height as a share of the em.
const defaultCapHeight = 0.705

// Font describes a typeface at a given size.
type Font struct {
	Family   string
	Fallback string
	Weight   Weight
	Size     float64
	// CapHeightRatio is the cap height as a fraction of Size. Zero means the
	// SF Pro default.
	CapHeightRatio float64
}

// WithSize returns a copy of f at size.
func (f Font) WithSize(size float64) Font {
	f.Size = size
	return f
}

// CapHeight returns the cap height in points.
func (f Font) CapHeight() float64 {
	ratio := f.CapHeightRatio
	if ratio <= 0 {
		ratio = defaultCapHeight
	}
	return f.Size * ratio
}

// CSS renders a CSS font shorthand.
func (f Font) CSS() string {
	fallback := f.Fallback
	if fallback == "" {
		fallback = SystemFallback
	}
	size := strconv.FormatFloat(f.Size, 'f', -1, 64)
	if f.Family == "" {
		return fmt.Sprintf("%d %spx %s", f.Weight, size, fallback)
	}
	return fmt.Sprintf("%d %spx '%s', %s", f.Weight, size, f.Family, fallback)
}

// SFProDisplay returns the SF Pro Display face for weight at size. Heavy uses
// the SF Pro Text face, the only heavy cut shipped with the app fonts.
func SFProDisplay(weight Weight, size float64) Font {
	family := map[Weight]string{
		WeightRegular:  "SFProDisplay-Regular",
		WeightMedium:   "SFProDisplay-Medium",
		WeightSemibold: "SFProDisplay-Semibold",
		WeightBold:     "SFProDisplay-Bold",
		WeightHeavy:    "SFProText-Heavy",
		WeightBlack:    "SFProDisplay-Black",
	}[weight]
	return Font{Family: family, Fallback: SystemFallback, Weight: weight, Size: size}
}

// Named text styles.
func FontH2() Font { return SFProDisplay(WeightSemibold, 24) }
func FontH3() Font { return SFProDisplay(WeightSemibold, 20) }
func FontH4() Font { return SFProDisplay(WeightSemibold, 18) }
func FontBody() Font { return SFProDisplay(WeightRegular, 16) }
func FontBodySemibold() Font { return SFProDisplay(WeightSemibold, 16) }
func FontSubtitle() Font { return SFProDisplay(WeightRegular, 14) }
func FontCaption() Font { return SFProDisplay(WeightRegular, 12) }
func FontButton() Font { return SFProDisplay(WeightMedium, 18) }
func FontRewardsSubtitle() Font { return SFProDisplay(WeightRegular, 18) }
func FontRewardsButton() Font { return SFProDisplay(WeightHeavy, 18) }

// Typography assigns fonts to the type scale slots.
type Typography struct {
	Headline1 Font
	Headline2 Font
	Headline3 Font
	Headline4 Font
	Headline5 Font
	Headline6 Font
	Subtitle1 Font
	Subtitle2 Font
	Body1     Font
	Body2     Font
	Caption   Font
	Caption2  Font
	Button    Font
	Overline  Font
}

// DefaultTypography maps the named text styles onto the type scale.
func DefaultTypography() Typography {
	return Typography{
		Headline1: SFProDisplay(WeightBold, 28),
		Headline2: FontH2(),
		Headline3: FontH3(),
		Headline4: FontH4(),
		Headline5: FontBodySemibold(),
		Headline6: SFProDisplay(WeightSemibold, 14),
		Subtitle1: FontRewardsSubtitle(),
		Subtitle2: FontSubtitle(),
		Body1:     FontBody(),
		Body2:     SFProDisplay(WeightRegular, 14),
		Caption:   FontCaption(),
		Caption2:  SFProDisplay(WeightRegular, 11),
		Button:    FontButton(),
		Overline:  SFProDisplay(WeightMedium, 10),
	}
}

var fontSlots = map[string]func(*Table) *Font{
	"headline1": func(t *Table) *Font { return &t.typography.Headline1 },
	"headline2": func(t *Table) *Font { return &t.typography.Headline2 },
	"headline3": func(t *Table) *Font { return &t.typography.Headline3 },
	"headline4": func(t *Table) *Font { return &t.typography.Headline4 },
	"headline5": func(t *Table) *Font { return &t.typography.Headline5 },
	"headline6": func(t *Table) *Font { return &t.typography.Headline6 },
	"subtitle1": func(t *Table) *Font { return &t.typography.Subtitle1 },
	"subtitle2": func(t *Table) *Font { return &t.typography.Subtitle2 },
	"body1":     func(t *Table) *Font { return &t.typography.Body1 },
	"body2":     func(t *Table) *Font { return &t.typography.Body2 },
	"caption":   func(t *Table) *Font { return &t.typography.Caption },
	"caption2":  func(t *Table) *Font { return &t.typography.Caption2 },
	"button":    func(t *Table) *Font { return &t.typography.Button },
	"overline":  func(t *Table) *Font { return &t.typography.Overline },
}

// FontKeys lists every typography slot key in sorted order.
func FontKeys() []string {
	return sortedKeys(fontSlots)
}
