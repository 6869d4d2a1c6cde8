package bubble

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/termstyle"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithInput reads keys from in instead of the terminal.
func WithInput(in io.Reader) Option {
	return func(r *Renderer) {
		r.input = in
	}
}

// WithOutput draws to out instead of the terminal.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		r.output = out
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format render.OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithStyles overrides the styles derived from the form's token table.
func WithStyles(styles termstyle.Styles) Option {
	return func(r *Renderer) {
		r.styles = &styles
	}
}

// WithProgramOptions passes extra options to tea.NewProgram.
func WithProgramOptions(options ...tea.ProgramOption) Option {
	return func(r *Renderer) {
		r.programOpts = append(r.programOpts, options...)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
