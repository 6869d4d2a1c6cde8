package tokens_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

func TestDefault_Scheme(t *testing.T) {
	table := tokens.Default()
	if table.Name() != tokens.DefaultName {
		t.Fatalf("name = %q", table.Name())
	}

	scheme := table.Scheme()
	want := map[string]string{
		"primary":       "#4230DD",
		"secondary":     "#E7FEF8",
		"error":         "#D4152C",
		"surface":       "#FFFFFF",
		"background":    "#F3F8FF",
		"on-secondary":  "#4230DD",
		"on-background": "#06022B",
	}
	got := map[string]string{
		"primary":       scheme.Primary.HexA(),
		"secondary":     scheme.Secondary.HexA(),
		"error":         scheme.Error.HexA(),
		"surface":       scheme.Surface.HexA(),
		"background":    scheme.Background.HexA(),
		"on-secondary":  scheme.OnSecondary.HexA(),
		"on-background": scheme.OnBackground.HexA(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scheme mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_LookupByKey(t *testing.T) {
	table := tokens.Default()
	for _, key := range []string{"primary", "color.primary", "COLOR.Primary", "on_primary"} {
		if _, ok := table.Color(key); !ok {
			t.Fatalf("Color(%q) not found", key)
		}
	}
	if _, ok := table.Color("does-not-exist"); ok {
		t.Fatalf("unexpected color for unknown key")
	}
	if len(tokens.ColorKeys()) == 0 || len(tokens.FontKeys()) == 0 {
		t.Fatalf("expected non-empty key lists")
	}

	f, ok := table.Font("font.headline2")
	if !ok {
		t.Fatalf("headline2 missing")
	}
	if f.Weight != tokens.WeightSemibold || f.Size != 24 {
		t.Fatalf("headline2 = %#v", f)
	}
}

func TestTable_WithDoesNotMutate(t *testing.T) {
	base := tokens.Default()
	red := tokens.MustHex("#FF0000")
	derived := base.With(
		tokens.WithName("brand"),
		tokens.WithColor("primary", red),
		tokens.WithFont("body1", tokens.SFProDisplay(tokens.WeightBold, 15)),
	)

	if derived.Name() != "brand" {
		t.Fatalf("name = %q", derived.Name())
	}
	if got := derived.Scheme().Primary; got != red {
		t.Fatalf("primary = %v", got)
	}
	if got := base.Scheme().Primary.Hex(); got != "#4230DD" {
		t.Fatalf("base mutated: %s", got)
	}
	if got := derived.Typography().Body1.Size; got != 15 {
		t.Fatalf("body1 size = %v", got)
	}
	if got := base.Typography().Body1.Size; got != 16 {
		t.Fatalf("base body1 mutated: %v", got)
	}
}

func TestTable_FieldColors(t *testing.T) {
	table := tokens.Default()
	palette := table.Palette()
	scheme := table.Scheme()

	cases := []struct {
		state  tokens.FieldState
		border tokens.Color
	}{
		{tokens.StateDefault, palette.LightTertiary},
		{tokens.StateFilled, palette.LightTertiary},
		{tokens.StateFocused, scheme.Primary},
		{tokens.StateError, scheme.Error},
		{tokens.StateDisabled, palette.LightSecondary},
		{tokens.StateCorrect, palette.Forest},
	}
	for _, tc := range cases {
		got := table.FieldColors(tc.state)
		if got.Border != tc.border {
			t.Fatalf("%s border = %v, want %v", tc.state, got.Border, tc.border)
		}
		if got.ErrorLabel != scheme.Error {
			t.Fatalf("%s error label = %v", tc.state, got.ErrorLabel)
		}
	}

	disabled := table.FieldColors(tokens.StateDisabled)
	if disabled.Text != palette.InkTertiary || disabled.Title != palette.InkSecondary {
		t.Fatalf("disabled colors = %#v", disabled)
	}
}

func TestTable_FieldTypography(t *testing.T) {
	ty := tokens.Default().FieldTypography()
	if ty.Title.Size != 16 || ty.Title.Weight != tokens.WeightSemibold {
		t.Fatalf("title font = %#v", ty.Title)
	}
	if ty.Placeholder.Size != 16 || ty.Placeholder.Family != "SFProDisplay-Semibold" {
		t.Fatalf("placeholder font = %#v", ty.Placeholder)
	}
	if ty.ErrorLabel.Size != 12 {
		t.Fatalf("error font = %#v", ty.ErrorLabel)
	}
}

func TestFont_CSSAndCapHeight(t *testing.T) {
	f := tokens.FontRewardsButton()
	if f.Family != "SFProText-Heavy" {
		t.Fatalf("heavy family = %q", f.Family)
	}
	if got := f.CSS(); got != "800 18px 'SFProText-Heavy', system-ui" {
		t.Fatalf("CSS = %q", got)
	}
	if got := (tokens.Font{Weight: tokens.WeightRegular, Size: 12}).CSS(); got != "400 12px system-ui" {
		t.Fatalf("CSS without family = %q", got)
	}
	custom := tokens.Font{Size: 10, CapHeightRatio: 0.5}
	if got := custom.CapHeight(); got != 5 {
		t.Fatalf("CapHeight = %v", got)
	}
}

func TestParseWeight(t *testing.T) {
	cases := map[string]tokens.Weight{
		"semibold": tokens.WeightSemibold,
		" Heavy ":  tokens.WeightHeavy,
		"300":      tokens.Weight(300),
	}
	for in, want := range cases {
		got, err := tokens.ParseWeight(in)
		if err != nil || got != want {
			t.Fatalf("ParseWeight(%q) = %v, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "thin", "1000", "50"} {
		if _, err := tokens.ParseWeight(in); err == nil {
			t.Fatalf("ParseWeight(%q) should fail", in)
		}
	}
	if tokens.WeightMedium.String() != "medium" {
		t.Fatalf("String = %q", tokens.WeightMedium.String())
	}
}
