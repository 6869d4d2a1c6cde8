package fieldspec_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
)

func TestParse_YAML(t *testing.T) {
	data := []byte(`
id: checkout
title: Checkout
fields:
  - name: card
    title: Card number
    mask: card-number-dashes
    icon: Card
    iconPosition: right
    required: true
  - name: pin
    secret: true
    maxLength: 4
    hints:
      widget: secret
`)
	form, err := fieldspec.Parse(data, "checkout.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := fieldspec.Form{
		ID:    "checkout",
		Title: "Checkout",
		Fields: []fieldspec.Field{
			{Name: "card", Title: "Card number", Mask: "card-number-dashes", Icon: "Card", IconPosition: "right", Required: true},
			{Name: "pin", Secret: true, MaxLength: 4, Hints: map[string]string{"widget": "secret"}},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/zip.json": {Data: []byte(`{"id":"zip","fields":[{"name":"zip","mask":"XXXXX-XXXX"}]}`)},
	}
	form, err := fieldspec.ParseFS(fsys, "forms/zip.json")
	if err != nil {
		t.Fatalf("ParseFS: %v", err)
	}
	if len(form.Fields) != 1 || form.Fields[0].ResolvedMask().String() != "XXXXX-XXXX" {
		t.Fatalf("form = %#v", form)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"":                                   "is empty",
		"fields: [unterminated":              "invalid JSON or YAML",
		"fields:\n  - title: nameless\n":      "name is required",
		"fields:\n  - name: a\n  - name: a\n": "duplicate field",
	}
	for input, want := range cases {
		_, err := fieldspec.Parse([]byte(input), "form.yaml")
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("Parse(%q) error = %v, want mention of %q", input, err, want)
		}
	}

	if _, err := fieldspec.ParseFS(fstest.MapFS{}, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}
