package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/termstyle"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Renderer implements render.Renderer for prompt driven terminal sessions.
// Answers are typed into the form's text fields so masks format them exactly
// as they would in an interactive widget.
type Renderer struct {
	driver            PromptDriver
	outputFormat      render.OutputFormat
	submitTransformer SubmitTransformer
	styles            *termstyle.Styles
	maxAttempts       int
	logger            *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: render.OutputFormatJSON,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if _, err := render.ParseOutputFormat(string(r.outputFormat)); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render prompts for every field in order and returns the collected values
// serialized in the configured output format.
func (r *Renderer) Render(ctx context.Context, form *render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("tui: form is nil")
	}

	form.Prepare(opts)
	styles := r.stylesFor(form)

	if title := strings.TrimSpace(form.Spec.Title); title != "" {
		if err := r.driver.Info(ctx, styles.FormTitle.Render(title)); err != nil {
			return nil, err
		}
	}
	for _, message := range form.FormErrors() {
		if err := r.driver.Info(ctx, styles.Error.Render(message)); err != nil {
			return nil, err
		}
	}

	for _, view := range form.Views {
		if err := r.promptView(ctx, form, view, styles); err != nil {
			return nil, err
		}
	}

	values := form.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	r.logger.Debug("tui form collected",
		zap.String("form", form.Spec.ID),
		zap.Int("values", len(values)),
	)
	return r.outputFormat.Encode(values)
}

func (r *Renderer) promptView(ctx context.Context, form *render.Form, view *widgets.TextFieldView, styles termstyle.Styles) error {
	field := view.Field()
	if !field.Enabled() {
		return nil
	}
	spec, _ := form.Spec.Field(field.Name())

	if view.HasError() {
		if err := r.driver.Info(ctx, styles.Error.Render(view.ErrorText())); err != nil {
			return err
		}
	}

	cfg := InputConfig{
		Message: spec.Label(),
		Help:    promptHelp(spec.Description, field.Mask().String()),
	}
	if !field.Secure() {
		cfg.Default = field.Text()
	}

	attempts := 0
	for {
		var (
			answer string
			err    error
		)
		if field.Secure() {
			answer, err = r.driver.Password(ctx, cfg)
		} else {
			answer, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		replay(field, answer)
		problem := form.FieldProblem(field.Name())
		if problem == "" {
			view.ClearError()
			return nil
		}

		view.SetErrorText(problem)
		attempts++
		r.logger.Debug("tui answer rejected",
			zap.String("field", field.Name()),
			zap.Int("attempt", attempts),
		)
		if err := r.driver.Info(ctx, styles.Error.Render(problem)); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempts >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, field.Name())
		}
		if !field.Secure() {
			cfg.Default = field.Text()
		}
	}
}

func (r *Renderer) stylesFor(form *render.Form) termstyle.Styles {
	if r.styles != nil {
		return *r.styles
	}
	if len(form.Views) > 0 {
		return termstyle.New(form.Views[0].Tokens())
	}
	return termstyle.New(tokens.Default())
}

// replay types answer into field inside one editing session so the field's
// formatter and notifications see it as keystrokes.
func replay(field *widgets.TextField, answer string) {
	field.BeginEditing()
	field.Replace(strings.TrimSpace(answer))
	field.EndEditing()
}

func promptHelp(description, template string) string {
	parts := make([]string, 0, 2)
	if d := strings.TrimSpace(description); d != "" {
		parts = append(parts, d)
	}
	if template != "" {
		parts = append(parts, "Format: "+template)
	}
	return strings.Join(parts, "\n")
}
