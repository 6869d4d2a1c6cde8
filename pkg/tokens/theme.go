package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrNoManifest is returned when a theme selection carries no manifest.
var ErrNoManifest = errors.New("tokens: theme selection has no manifest")

// Tokens flattens the table into go-theme token keys:
//
//	color.<key>           -> "#RRGGBB" or "#RRGGBBAA"
//	font.<slot>.family    -> face name
//	font.<slot>.weight    -> numeric weight
//	font.<slot>.size      -> points
//	field.<metric>        -> points
func (t Table) Tokens() map[string]string {
	out := make(map[string]string, len(colorSlots)+3*len(fontSlots)+4)
	for key, slot := range colorSlots {
		out["color."+key] = slot(&t).HexA()
	}
	for key, slot := range fontSlots {
		f := slot(&t)
		out["font."+key+".family"] = f.Family
		out["font."+key+".weight"] = strconv.Itoa(int(f.Weight))
		out["font."+key+".size"] = formatFloat(f.Size)
	}
	out["field.corner-radius"] = formatFloat(t.metrics.CornerRadius)
	out["field.border-width"] = formatFloat(t.metrics.BorderWidth)
	out["field.icon-gap"] = formatFloat(t.metrics.IconGap)
	out["field.icon-size"] = formatFloat(t.metrics.IconSize)
	return out
}

// CSSVars derives CSS custom properties from Tokens: "color.primary" becomes
// "--color-primary".
func (t Table) CSSVars() map[string]string {
	return cssVars(t.Tokens())
}

// Manifest exports the table as a go-theme manifest.
func (t Table) Manifest(version string) *theme.Manifest {
	return &theme.Manifest{
		Name:    t.name,
		Version: version,
		Tokens:  t.Tokens(),
	}
}

// RendererConfig exports the table as the go-theme renderer configuration the
// HTML renderer consumes.
func (t Table) RendererConfig(variant string) *theme.RendererConfig {
	tokens := t.Tokens()
	return &theme.RendererConfig{
		Theme:   t.name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: cssVars(tokens),
	}
}

// FromTokens rebuilds a table from go-theme style tokens on top of the stock
// table. Keys outside the color/font/field namespaces are ignored so manifests
// can carry unrelated tokens.
func FromTokens(name string, tokens map[string]string) (Table, error) {
	t := New(WithName(name))
	for _, key := range sortedKeys(tokens) {
		value := tokens[key]
		if err := t.applyToken(key, value); err != nil {
			return Table{}, err
		}
	}
	return t, nil
}

// FromSelection builds a table from a go-theme selection, overlaying the
// selected variant's tokens on the manifest tokens.
func FromSelection(sel *theme.Selection) (Table, error) {
	if sel == nil || sel.Manifest == nil {
		return Table{}, ErrNoManifest
	}
	merged := make(map[string]string, len(sel.Manifest.Tokens))
	for key, value := range sel.Manifest.Tokens {
		merged[key] = value
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			merged[key] = value
		}
	}
	name := sel.Theme
	if name == "" {
		name = sel.Manifest.Name
	}
	return FromTokens(name, merged)
}

// Select resolves name/variant through selector and builds a table from the
// result.
func Select(selector theme.ThemeSelector, name, variant string) (Table, error) {
	if selector == nil {
		return Table{}, errors.New("tokens: theme selector is nil")
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		return Table{}, fmt.Errorf("tokens: select theme %q/%q: %w", name, variant, err)
	}
	return FromSelection(sel)
}

func (t *Table) applyToken(key, value string) error {
	switch {
	case strings.HasPrefix(key, "color."):
		slot, ok := colorSlots[strings.TrimPrefix(key, "color.")]
		if !ok {
			return nil
		}
		c, err := ParseHex(value)
		if err != nil {
			return fmt.Errorf("tokens: %s: %w", key, err)
		}
		*slot(t) = c
	case strings.HasPrefix(key, "font."):
		parts := strings.Split(strings.TrimPrefix(key, "font."), ".")
		if len(parts) != 2 {
			return nil
		}
		slot, ok := fontSlots[parts[0]]
		if !ok {
			return nil
		}
		f := slot(t)
		switch parts[1] {
		case "family":
			f.Family = strings.TrimSpace(value)
		case "weight":
			w, err := ParseWeight(value)
			if err != nil {
				return fmt.Errorf("tokens: %s: %w", key, err)
			}
			f.Weight = w
		case "size":
			size, err := parsePositive(value)
			if err != nil {
				return fmt.Errorf("tokens: %s: %w", key, err)
			}
			f.Size = size
		}
	case strings.HasPrefix(key, "field."):
		var target *float64
		switch strings.TrimPrefix(key, "field.") {
		case "corner-radius":
			target = &t.metrics.CornerRadius
		case "border-width":
			target = &t.metrics.BorderWidth
		case "icon-gap":
			target = &t.metrics.IconGap
		case "icon-size":
			target = &t.metrics.IconSize
		default:
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || v < 0 {
			return fmt.Errorf("tokens: %s: invalid metric %q", key, value)
		}
		*target = v
	}
	return nil
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out["--"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return out
}

func parsePositive(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", v)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
