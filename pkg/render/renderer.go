package render

import (
	"context"
)

// Renderer presents a Form and returns its output: markup for static
// renderers, serialized values for interactive ones.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form *Form, options RenderOptions) ([]byte, error)
}
