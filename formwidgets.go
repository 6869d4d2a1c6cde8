package formwidgets

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
	"github.com/goliatone/go-formwidgets/pkg/mask"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/html"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Form aliases render.Form, the built views of a declaration.
type Form = render.Form

// DefaultTokens returns the stock design-token table.
func DefaultTokens() tokens.Table {
	return tokens.Default()
}

// NewMaskedField builds a titled text field view that edits through m.
func NewMaskedField(m mask.Mask, options ...widgets.Option) (*widgets.TextFieldView, error) {
	opts := append([]widgets.Option{widgets.WithMask(m)}, options...)
	return widgets.NewTextFieldView(opts...)
}

// Build validates spec and builds its views with the built-in widget kinds.
func Build(spec fieldspec.Form, options ...widgets.Option) (*Form, error) {
	return render.Build(spec, nil, options...)
}

// GenerateHTML builds spec and renders it as an HTML form. The views are
// released before returning.
func GenerateHTML(ctx context.Context, spec fieldspec.Form, options RenderOptions, htmlOptions ...html.Option) ([]byte, error) {
	form, err := Build(spec)
	if err != nil {
		return nil, err
	}
	defer form.Close()

	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, options)
}

// GenerateHTMLFromOpenAPI derives a form from the request body of operationID
// in an OpenAPI document and renders it as HTML.
func GenerateHTMLFromOpenAPI(ctx context.Context, document []byte, operationID string, options RenderOptions, htmlOptions ...html.Option) ([]byte, error) {
	spec, err := fieldspec.FromOpenAPI(ctx, document, operationID)
	if err != nil {
		return nil, err
	}
	return GenerateHTML(ctx, spec, options, htmlOptions...)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
