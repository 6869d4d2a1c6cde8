package fieldspec

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Extension keys read from request schema properties.
const (
	ExtMask         = "x-mask"
	ExtPlaceholder  = "x-placeholder"
	ExtTitle        = "x-title"
	ExtIcon         = "x-icon"
	ExtIconPosition = "x-icon-position"
	ExtWidget       = "x-widget"
	ExtOrder        = "x-order"
)

// ErrOperationNotFound is returned when the document has no operation by the
// requested id.
var ErrOperationNotFound = errors.New("fieldspec: operation not found")

// OpenAPIOptions configures FromOpenAPI.
type OpenAPIOptions struct {
	// Validate runs kin-openapi document validation before extraction.
	Validate bool
	// AllowExternalRefs lets the loader follow $refs outside the document.
	AllowExternalRefs bool
}

// OpenAPIOption mutates OpenAPIOptions.
type OpenAPIOption func(*OpenAPIOptions)

// WithValidation toggles document validation.
func WithValidation(enabled bool) OpenAPIOption {
	return func(opts *OpenAPIOptions) {
		opts.Validate = enabled
	}
}

// WithExternalRefs toggles external reference resolution.
func WithExternalRefs(enabled bool) OpenAPIOption {
	return func(opts *OpenAPIOptions) {
		opts.AllowExternalRefs = enabled
	}
}

// Operations lists the operation ids of a document in sorted order.
// Operations without an id are listed as "<method>:<path>".
func Operations(ctx context.Context, raw []byte, options ...OpenAPIOption) ([]string, error) {
	spec, err := loadSpec(ctx, raw, newOpenAPIOptions(options...))
	if err != nil {
		return nil, err
	}
	ops := collectOperations(spec)
	ids := make([]string, 0, len(ops))
	for id := range ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// FromOpenAPI builds a form from the request body schema of operationID.
// Properties become fields ordered by x-order and then name.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string, options ...OpenAPIOption) (Form, error) {
	spec, err := loadSpec(ctx, raw, newOpenAPIOptions(options...))
	if err != nil {
		return Form{}, err
	}
	ops := collectOperations(spec)
	op, ok := ops[operationID]
	if !ok {
		return Form{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	form := Form{
		ID:          operationID,
		Title:       op.Summary,
		Description: op.Description,
	}
	if schema == nil {
		return form, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	type ordered struct {
		field Field
		order float64
	}
	entries := make([]ordered, 0, len(schema.Properties))
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isStringSchema(ref.Value) {
			continue
		}
		field := convertProperty(name, ref.Value)
		_, field.Required = required[name]
		order, ok := numberExtension(ref.Value.Extensions, ExtOrder)
		if !ok {
			order = math.MaxFloat64
		}
		entries = append(entries, ordered{field: field, order: order})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order == entries[j].order {
			return entries[i].field.Name < entries[j].field.Name
		}
		return entries[i].order < entries[j].order
	})
	for _, entry := range entries {
		form.Fields = append(form.Fields, entry.field)
	}

	if err := form.Validate(); err != nil {
		return Form{}, fmt.Errorf("fieldspec: operation %q: %w", operationID, err)
	}
	return form, nil
}

// FromOpenAPIFS reads name from fsys and calls FromOpenAPI.
func FromOpenAPIFS(ctx context.Context, fsys fs.FS, name, operationID string, options ...OpenAPIOption) (Form, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Form{}, fmt.Errorf("fieldspec: read %s: %w", name, err)
	}
	return FromOpenAPI(ctx, raw, operationID, options...)
}

func newOpenAPIOptions(options ...OpenAPIOption) OpenAPIOptions {
	cfg := OpenAPIOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func loadSpec(ctx context.Context, raw []byte, opts OpenAPIOptions) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("fieldspec: openapi document is empty")
	}
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("fieldspec: load openapi document: %w", err)
	}
	if opts.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("fieldspec: validate openapi document: %w", err)
		}
	}
	return spec, nil
}

func collectOperations(spec *openapi3.T) map[string]*openapi3.Operation {
	ops := make(map[string]*openapi3.Operation)
	if spec == nil || spec.Paths == nil {
		return ops
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			ops[id] = op
		}
	}
	return ops
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func isStringSchema(schema *openapi3.Schema) bool {
	if schema.Type == nil {
		return true
	}
	for _, t := range schema.Type.Slice() {
		if t == openapi3.TypeString {
			return true
		}
	}
	return false
}

func convertProperty(name string, schema *openapi3.Schema) Field {
	field := Field{
		Name:         name,
		Title:        stringExtension(schema.Extensions, ExtTitle),
		Placeholder:  stringExtension(schema.Extensions, ExtPlaceholder),
		Description:  schema.Description,
		Mask:         stringExtension(schema.Extensions, ExtMask),
		Format:       schema.Format,
		Icon:         stringExtension(schema.Extensions, ExtIcon),
		IconPosition: strings.ToLower(stringExtension(schema.Extensions, ExtIconPosition)),
		Secret:       strings.EqualFold(schema.Format, FormatPassword),
	}
	if field.Title == "" {
		field.Title = schema.Title
	}
	if schema.MaxLength != nil {
		field.MaxLength = int(*schema.MaxLength)
	}
	if def, ok := schema.Default.(string); ok {
		field.Default = def
	}
	if widget := stringExtension(schema.Extensions, ExtWidget); widget != "" {
		field.Hints = map[string]string{HintWidget: widget}
	}
	return field
}

func stringExtension(ext map[string]any, key string) string {
	if ext == nil {
		return ""
	}
	switch v := ext[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

func numberExtension(ext map[string]any, key string) (float64, bool) {
	if ext == nil {
		return 0, false
	}
	switch v := ext[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
