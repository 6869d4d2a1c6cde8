package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Renderer: "html",
		Output:   "json",
		Form:     FormConfig{Preset: "payment-card"},
		Theme:    ThemeConfig{Variant: "light"},
		TUI:      TUIConfig{MaxAttempts: 3},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileEnvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formwidgets.yaml")
	content := strings.Join([]string{
		"renderer: tui",
		"output: pretty",
		"form:",
		"  openapi: api.yaml",
		"  operation: createCard",
		"theme:",
		"  variant: dark",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FORMWIDGETS_OUTPUT", "form")
	t.Setenv("FORMWIDGETS_TUI_MAX_ATTEMPTS", "5")

	cfg, err := Load(Options{File: path, Overrides: map[string]any{"renderer": "bubble"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Renderer != "bubble" {
		t.Fatalf("override should win, renderer = %q", cfg.Renderer)
	}
	if cfg.Output != "form" {
		t.Fatalf("env should beat the file, output = %q", cfg.Output)
	}
	if cfg.TUI.MaxAttempts != 5 {
		t.Fatalf("max attempts = %d", cfg.TUI.MaxAttempts)
	}
	if cfg.Form.OpenAPI != "api.yaml" || cfg.Form.Operation != "createCard" || cfg.Theme.Variant != "dark" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"renderer":  {"renderer": "pdf"},
		"output":    {"output": "xml"},
		"operation": {"form.openapi": "api.yaml"},
		"variant":   {"theme.variant": "sepia"},
	}
	for name, overrides := range cases {
		if _, err := Load(Options{Overrides: overrides}); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	if _, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for a missing explicit file")
	}
}
