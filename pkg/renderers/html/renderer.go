package html

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/render"
	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	gotemplate "github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Name identifies the renderer in a render.Registry.
const Name = "html"

// Renderer turns form snapshots into an HTML form. Field state colors and
// geometry are emitted as inline custom properties; the token table is
// exported through go-theme as a :root style block.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	table     tokens.Table
	hasTable  bool
	logger    *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		table:     cfg.table,
		hasTable:  cfg.hasTable,
		logger:    cfg.logger,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render prepares the form with options (prefill, server errors) and renders
// it.
func (r *Renderer) Render(ctx context.Context, form *render.Form, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("html renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("html renderer: form is required")
	}
	if r.templates == nil {
		return nil, errors.New("html renderer: template renderer is nil")
	}

	form.Prepare(options)

	table := r.table
	if !r.hasTable {
		table = tokens.Default()
		if len(form.Views) > 0 {
			table = form.Views[0].Tokens()
		}
	}
	themeConfig := table.RendererConfig(options.Variant)

	formID := formIdentifier(form.Spec.ID)
	fields := make([]fieldData, 0, len(form.Views))
	for _, view := range form.Views {
		spec, _ := form.Spec.Field(view.Field().Name())
		fields = append(fields, newFieldData(formID, view.Snapshot(), spec.Required))
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"form": formData{
			ID:          formID,
			Title:       form.Spec.Title,
			Description: sanitizeDescription(form.Spec.Description),
			Errors:      form.FormErrors(),
		},
		"theme": themeData{
			Name:    themeConfig.Theme,
			Variant: themeConfig.Variant,
			Style:   cssVarsStyle(themeConfig.CSSVars),
		},
		"hidden": render.SortedHiddenFields(options.Hidden),
		"fields": fields,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	r.logger.Debug("rendered form",
		zap.String("form", formID),
		zap.Int("fields", len(fields)),
		zap.String("variant", options.Variant),
	)
	return []byte(result), nil
}

type formData struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Errors      []string `json:"errors"`
}

type themeData struct {
	Name    string `json:"name"`
	Variant string `json:"variant"`
	Style   string `json:"style"`
}

type fieldData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	TitleHidden bool   `json:"titleHidden"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
	Mask        string `json:"mask"`
	MaxLength   int    `json:"maxLength"`
	InputType   string `json:"inputType"`
	State       string `json:"state"`
	Style       string `json:"style"`
	Error       string `json:"error"`
	LeftIcon    string `json:"leftIcon"`
	RightIcon   string `json:"rightIcon"`
	Required    bool   `json:"required"`
	Disabled    bool   `json:"disabled"`
}

func newFieldData(formID string, snap widgets.Snapshot, required bool) fieldData {
	data := fieldData{
		ID:          formID + "-" + snap.Name,
		Name:        snap.Name,
		Title:       snap.Title,
		TitleHidden: snap.TitleHidden,
		Value:       snap.Text,
		Placeholder: snap.Placeholder.Text,
		Mask:        snap.Mask,
		MaxLength:   len([]rune(snap.Mask)),
		InputType:   "text",
		State:       snap.State.String(),
		Style:       fieldStyle(snap),
		Error:       snap.ErrorText,
		Required:    required,
		Disabled:    !snap.Enabled,
	}
	if snap.Secure {
		data.InputType = "password"
		data.Value = ""
	}
	if snap.LeftView != nil {
		data.LeftIcon = layout.SanitizeIconMarkup(snap.LeftView.Icon.Markup)
	}
	if snap.RightView != nil {
		data.RightIcon = layout.SanitizeIconMarkup(snap.RightView.Icon.Markup)
	}
	return data
}

// fieldStyle emits the per-state colors and geometry as custom properties.
func fieldStyle(snap widgets.Snapshot) string {
	props := []string{
		"--fw-border-color: " + snap.Colors.Border.CSS(),
		"--fw-title-color: " + snap.Colors.Title.CSS(),
		"--fw-text-color: " + snap.Colors.Text.CSS(),
		"--fw-error-color: " + snap.Colors.ErrorLabel.CSS(),
		"--fw-placeholder-color: " + snap.Placeholder.Color.CSS(),
		"--fw-corner-radius: " + px(snap.Metrics.CornerRadius),
		"--fw-border-width: " + px(snap.Metrics.BorderWidth),
		"--fw-padding: " + strings.Join([]string{
			px(snap.TextRect.Y),
			px(snap.Bounds.Width - snap.TextRect.X - snap.TextRect.Width),
			px(snap.Bounds.Height - snap.TextRect.Y - snap.TextRect.Height),
			px(snap.TextRect.X),
		}, " "),
	}
	return strings.Join(props, "; ")
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func formIdentifier(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "fw-form"
	}
	return id
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// sanitizeDescription keeps basic inline formatting in form descriptions.
func sanitizeDescription(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "strong", "i", "em", "br", "p", "code")
		policy.AllowAttrs("href").OnElements("a")
		policy.RequireNoFollowOnLinks(true)
		policy.AllowStandardURLs()
		descriptionPolicy = policy
	})
	return descriptionPolicy.Sanitize(raw)
}
