package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/internal/config"
	"github.com/goliatone/go-formwidgets/internal/logging"
	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/bubble"
	"github.com/goliatone/go-formwidgets/pkg/renderers/html"
	"github.com/goliatone/go-formwidgets/pkg/renderers/tui"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"env":       "env",
	"renderer":  "renderer",
	"output":    "output",
	"out":       "out_file",
	"preset":    "form.preset",
	"form":      "form.file",
	"openapi":   "form.openapi",
	"operation": "form.operation",
	"theme-dir": "theme.dir",
	"theme":     "theme.name",
	"variant":   "theme.variant",
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "formwidgets: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("formwidgets", flag.ContinueOnError)
	configFile := flags.String("config", "", "config file (formwidgets.yaml in the working directory when empty)")
	envFile := flags.String("env-file", ".env", "dotenv file loaded before reading FORMWIDGETS_ variables")
	for name, key := range flagKeys {
		flags.String(name, "", "overrides "+key)
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	// A missing .env is normal; only an explicit path must exist.
	if err := godotenv.Load(*envFile); err != nil && isFlagSet(flags, "env-file") {
		return fmt.Errorf("load env file %s: %w", *envFile, err)
	}

	overrides := make(map[string]any)
	flags.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.Load(config.Options{File: *configFile, Overrides: overrides})
	if err != nil {
		return err
	}

	logger, err := logging.New("formwidgets", cfg.Env)
	if err != nil {
		return err
	}
	defer logging.SafeSync(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, contentType, err := generate(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("form rendered",
		zap.String("renderer", cfg.Renderer),
		zap.String("content_type", contentType),
		zap.Int("bytes", len(out)),
	)

	if cfg.OutFile != "" {
		if err := os.WriteFile(cfg.OutFile, out, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(stdout, "Form written to %s\n", cfg.OutFile)
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

// generate builds the configured form and renders it with the configured
// renderer.
func generate(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]byte, string, error) {
	table, err := loadTokens(cfg.Theme)
	if err != nil {
		return nil, "", err
	}
	spec, err := loadForm(ctx, cfg.Form)
	if err != nil {
		return nil, "", err
	}

	form, err := render.Build(spec, nil, widgets.WithTokens(table), widgets.WithLogger(logger))
	if err != nil {
		return nil, "", err
	}
	defer form.Close()

	registry, err := newRegistry(cfg, table, logger)
	if err != nil {
		return nil, "", err
	}
	renderer, err := registry.Get(cfg.Renderer)
	if err != nil {
		return nil, "", err
	}

	out, err := renderer.Render(ctx, form, render.RenderOptions{Variant: cfg.Theme.Variant})
	if err != nil {
		return nil, "", fmt.Errorf("render %s: %w", cfg.Renderer, err)
	}
	return out, renderer.ContentType(), nil
}

func newRegistry(cfg config.Config, table tokens.Table, logger *zap.Logger) (*render.Registry, error) {
	format, err := render.ParseOutputFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	htmlRenderer, err := html.New(html.WithTokens(table), html.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	tuiRenderer, err := tui.New(
		tui.WithOutputFormat(format),
		tui.WithMaxAttempts(cfg.TUI.MaxAttempts),
		tui.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	bubbleRenderer, err := bubble.New(bubble.WithOutputFormat(format), bubble.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	for _, r := range []render.Renderer{htmlRenderer, tuiRenderer, bubbleRenderer} {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

var presets = map[string]func() fieldspec.Form{
	"payment-card": fieldspec.PaymentCard,
}

func loadForm(ctx context.Context, cfg config.FormConfig) (fieldspec.Form, error) {
	switch {
	case cfg.OpenAPI != "":
		return fieldspec.FromOpenAPIFS(ctx, os.DirFS(filepath.Dir(cfg.OpenAPI)), filepath.Base(cfg.OpenAPI), cfg.Operation)
	case cfg.File != "":
		return fieldspec.ParseFS(os.DirFS(filepath.Dir(cfg.File)), filepath.Base(cfg.File))
	}
	preset, ok := presets[cfg.Preset]
	if !ok {
		return fieldspec.Form{}, fmt.Errorf("unknown form preset %q", cfg.Preset)
	}
	return preset(), nil
}

func loadTokens(cfg config.ThemeConfig) (tokens.Table, error) {
	if cfg.Dir == "" {
		return tokens.Default(), nil
	}
	store, err := tokens.LoadFS(os.DirFS(cfg.Dir))
	if err != nil {
		return tokens.Table{}, err
	}
	name := cfg.Name
	if name == "" {
		names := store.Names()
		if len(names) != 1 {
			return tokens.Table{}, errors.New("theme.name is required when the theme directory holds several tables")
		}
		name = names[0]
	}
	table, ok := store.Table(name)
	if !ok {
		return tokens.Table{}, fmt.Errorf("theme %q not found in %s", name, cfg.Dir)
	}
	return table, nil
}

func isFlagSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
