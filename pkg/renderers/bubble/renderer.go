package bubble

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/termstyle"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// ErrAborted is returned when the user cancels the program.
var ErrAborted = errors.New("bubble: aborted")

// Renderer runs a bubbletea program over the form and returns the submitted
// values in the configured output format.
type Renderer struct {
	input        io.Reader
	output       io.Writer
	outputFormat render.OutputFormat
	styles       *termstyle.Styles
	programOpts  []tea.ProgramOption
	logger       *zap.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a renderer reading the process terminal by default.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
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
		return nil, fmt.Errorf("bubble: %w", err)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "bubble"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return r.outputFormat.ContentType()
}

// Render runs the program until the form is submitted or cancelled.
func (r *Renderer) Render(ctx context.Context, form *render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("bubble: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("bubble: form is nil")
	}

	form.Prepare(opts)
	model := NewModel(form, r.stylesFor(form))

	final, err := tea.NewProgram(model, r.programOptions(ctx)...).Run()
	if err != nil {
		return nil, fmt.Errorf("bubble: run program: %w", err)
	}
	return r.Collect(final)
}

// Collect turns a finished model into output. It is split from Render so the
// model can be driven without a terminal.
func (r *Renderer) Collect(final tea.Model) ([]byte, error) {
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("bubble: unexpected model %T", final)
	}
	if m.Aborted() || !m.Submitted() {
		return nil, ErrAborted
	}
	values := m.form.Values()
	r.logger.Debug("bubble form submitted",
		zap.String("form", m.form.Spec.ID),
		zap.Int("values", len(values)),
	)
	return r.outputFormat.Encode(values)
}

func (r *Renderer) programOptions(ctx context.Context) []tea.ProgramOption {
	out := []tea.ProgramOption{tea.WithContext(ctx)}
	if r.input != nil {
		out = append(out, tea.WithInput(r.input))
	}
	if r.output != nil {
		out = append(out, tea.WithOutput(r.output))
	}
	return append(out, r.programOpts...)
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
