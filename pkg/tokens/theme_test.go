package tokens_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

func TestTable_TokensRoundTrip(t *testing.T) {
	original := tokens.Default().With(
		tokens.WithName("brand"),
		tokens.WithColor("primary", tokens.MustHex("#123456")),
		tokens.WithColor("ink-tertiary", tokens.MustHex("#181A2280")),
	)

	flat := original.Tokens()
	if flat["color.primary"] != "#123456" {
		t.Fatalf("color.primary = %q", flat["color.primary"])
	}
	if flat["font.headline2.weight"] != "600" || flat["font.headline2.size"] != "24" {
		t.Fatalf("headline2 tokens = %q/%q", flat["font.headline2.weight"], flat["font.headline2.size"])
	}
	if flat["field.corner-radius"] != "8" {
		t.Fatalf("corner radius = %q", flat["field.corner-radius"])
	}

	rebuilt, err := tokens.FromTokens("brand", flat)
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if rebuilt.Scheme().Primary.Hex() != "#123456" {
		t.Fatalf("primary = %s", rebuilt.Scheme().Primary)
	}
	if got := rebuilt.Palette().InkTertiary.HexA(); got != "#181A2280" {
		t.Fatalf("ink tertiary = %s", got)
	}
	if rebuilt.FieldMetrics() != original.FieldMetrics() {
		t.Fatalf("metrics = %#v", rebuilt.FieldMetrics())
	}
}

func TestTable_CSSVars(t *testing.T) {
	vars := tokens.Default().CSSVars()
	if vars["--color-primary"] != "#4230DD" {
		t.Fatalf("--color-primary = %q", vars["--color-primary"])
	}
	if vars["--font-body1-size"] != "16" {
		t.Fatalf("--font-body1-size = %q", vars["--font-body1-size"])
	}
	if vars["--field-border-width"] != "1" {
		t.Fatalf("--field-border-width = %q", vars["--field-border-width"])
	}
}

func TestTable_RendererConfig(t *testing.T) {
	cfg := tokens.Default().With(tokens.WithName("acme")).RendererConfig("dark")
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("config = %#v", cfg)
	}
	if cfg.Tokens["color.error"] != "#D4152C" {
		t.Fatalf("tokens not exported: %#v", cfg.Tokens["color.error"])
	}
	if cfg.CSSVars["--color-error"] != "#D4152C" {
		t.Fatalf("css vars not exported: %#v", cfg.CSSVars["--color-error"])
	}

	manifest := tokens.Default().Manifest("1.2.0")
	if manifest.Name != tokens.DefaultName || manifest.Version != "1.2.0" || len(manifest.Tokens) == 0 {
		t.Fatalf("manifest = %#v", manifest)
	}
}

func TestFromTokens_IgnoresForeignKeysRejectsBadValues(t *testing.T) {
	table, err := tokens.FromTokens("acme", map[string]string{
		"brand":           "#654321",
		"color.unknown":   "#000000",
		"font.nope.size":  "12",
		"spacing.gutter":  "4",
		"color.secondary": "#00FF00",
	})
	if err != nil {
		t.Fatalf("FromTokens: %v", err)
	}
	if table.Scheme().Secondary.Hex() != "#00FF00" {
		t.Fatalf("secondary = %s", table.Scheme().Secondary)
	}

	bad := []map[string]string{
		{"color.primary": "blue"},
		{"font.body1.size": "-3"},
		{"font.body1.weight": "thin"},
		{"field.icon-gap": "wide"},
	}
	for _, tokensIn := range bad {
		if _, err := tokens.FromTokens("acme", tokensIn); err == nil {
			t.Fatalf("expected error for %v", tokensIn)
		}
	}
}

func TestSelect_OverlaysVariant(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"color.primary":   "#111111",
				"color.secondary": "#222222",
			},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"color.primary": "#333333"}},
			},
		},
	}}

	table, err := tokens.Select(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0].name != "acme" || selector.calls[0].variant != "dark" {
		t.Fatalf("selector calls = %#v", selector.calls)
	}
	if table.Name() != "acme" {
		t.Fatalf("name = %q", table.Name())
	}
	if table.Scheme().Primary.Hex() != "#333333" {
		t.Fatalf("variant not applied: %s", table.Scheme().Primary)
	}
	if table.Scheme().Secondary.Hex() != "#222222" {
		t.Fatalf("base token lost: %s", table.Scheme().Secondary)
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := tokens.Select(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}

	boom := errors.New("boom")
	if _, err := tokens.Select(&stubThemeSelector{err: boom}, "acme", ""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}

	empty := &stubThemeSelector{selection: &theme.Selection{Theme: "acme"}}
	if _, err := tokens.Select(empty, "acme", ""); !errors.Is(err, tokens.ErrNoManifest) {
		t.Fatalf("expected ErrNoManifest, got %v", err)
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
