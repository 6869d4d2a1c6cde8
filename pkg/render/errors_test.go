package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formwidgets/pkg/render"
)

func TestMapErrorPayload(t *testing.T) {
	fields := []string{"card_number", "card_holder", "expiry"}
	payload := map[string][]string{
		"/body/card_number":          {"Card number is invalid"},
		"request.card_holder":        {" Name is required ", "Name is required"},
		"$.data.expiry[0]":           {"Expiry is in the past"},
		"non_field_errors":           {"Card declined"},
		"request/body/unknown-field": {"Should fall back to form errors"},
		"":                           {"Unscoped form error"},
		"cvc":                        {"   "},
	}

	mapped := render.MapErrorPayload(fields, payload)

	wantFields := map[string][]string{
		"card_number": {"Card number is invalid"},
		"card_holder": {"Name is required"},
		"expiry":      {"Expiry is in the past"},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Unscoped form error", "Card declined", "Should fall back to form errors"}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload([]string{"a"}, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %#v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
