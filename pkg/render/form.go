package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// ErrFieldNotFound is returned when a form has no view for a field name.
var ErrFieldNotFound = errors.New("render: field not found")

// Form is an ordered set of built views plus the declaration they came from.
// Renderers read snapshots from it and interactive renderers drive its fields.
type Form struct {
	Spec  fieldspec.Form
	Views []*widgets.TextFieldView

	errors []string
}

// Build validates spec and builds one view per field through registry. A nil
// registry uses the built-in widget kinds.
func Build(spec fieldspec.Form, registry *widgets.Registry, options ...widgets.Option) (*Form, error) {
	if registry == nil {
		registry = widgets.NewRegistry()
	}
	views, err := registry.BuildForm(spec, options...)
	if err != nil {
		return nil, err
	}
	return &Form{Spec: spec, Views: views}, nil
}

// Close releases every view.
func (f *Form) Close() {
	if f == nil {
		return
	}
	for _, view := range f.Views {
		view.Close()
	}
}

// View returns the view for the field name.
func (f *Form) View(name string) (*widgets.TextFieldView, bool) {
	if f == nil {
		return nil, false
	}
	for _, view := range f.Views {
		if view.Field().Name() == name {
			return view, true
		}
	}
	return nil, false
}

// Names lists the field names in order.
func (f *Form) Names() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Views))
	for _, view := range f.Views {
		names = append(names, view.Field().Name())
	}
	return names
}

// Snapshots captures every view in order.
func (f *Form) Snapshots() []widgets.Snapshot {
	if f == nil {
		return nil
	}
	out := make([]widgets.Snapshot, 0, len(f.Views))
	for _, view := range f.Views {
		out = append(out, view.Snapshot())
	}
	return out
}

// Values returns the submitted value per field: the unmasked text for masked
// fields and the raw text otherwise. Empty optional fields are omitted.
func (f *Form) Values() map[string]string {
	if f == nil {
		return nil
	}
	out := make(map[string]string, len(f.Views))
	for _, view := range f.Views {
		value := view.Field().Value()
		if value == "" && !f.required(view.Field().Name()) {
			continue
		}
		out[view.Field().Name()] = value
	}
	return out
}

// Fill types value into the named field after clearing it. Formatted and raw
// values give the same text.
func (f *Form) Fill(name, value string) error {
	view, ok := f.View(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	view.Field().Replace(value)
	return nil
}

// Prefill types every known value into its field. Unknown names are ignored.
func (f *Form) Prefill(values map[string]string) {
	for name, value := range values {
		if _, ok := f.View(name); !ok {
			continue
		}
		_ = f.Fill(name, value)
	}
}

// Check validates the current values: required fields must be filled and
// masked fields must be complete. Failing views get an error message; views
// that pass have their error cleared. It reports whether every field passed.
func (f *Form) Check() bool {
	if f == nil {
		return true
	}
	ok := true
	for _, view := range f.Views {
		message := f.fieldProblem(view)
		if message == "" {
			view.ClearError()
			continue
		}
		view.SetErrorText(message)
		ok = false
	}
	return ok
}

// FieldProblem describes why the named field fails Check, or returns "".
func (f *Form) FieldProblem(name string) string {
	view, ok := f.View(name)
	if !ok {
		return ""
	}
	return f.fieldProblem(view)
}

func (f *Form) fieldProblem(view *widgets.TextFieldView) string {
	field := view.Field()
	spec, _ := f.Spec.Field(field.Name())
	label := spec.Label()
	switch {
	case field.Text() == "":
		if spec.Required {
			return fmt.Sprintf("%s is required", label)
		}
	case !field.Mask().IsZero() && !field.Complete():
		return fmt.Sprintf("%s is incomplete", label)
	}
	return ""
}

// ApplyErrors shows mapped field errors on their views and keeps form-level
// messages for FormErrors.
func (f *Form) ApplyErrors(mapping ErrorMapping) {
	if f == nil {
		return
	}
	for name, messages := range mapping.Fields {
		view, ok := f.View(name)
		if !ok || len(messages) == 0 {
			f.errors = MergeFormErrors(f.errors, messages...)
			continue
		}
		view.SetErrorText(strings.Join(messages, " "))
	}
	f.errors = MergeFormErrors(f.errors, mapping.Form...)
}

// FormErrors returns the form-level messages collected by ApplyErrors.
func (f *Form) FormErrors() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.errors...)
}

// Prepare applies the per-render options: prefilled values first, then
// server errors.
func (f *Form) Prepare(options RenderOptions) {
	if f == nil {
		return
	}
	f.Prefill(options.Values)
	if len(options.Errors) > 0 {
		f.ApplyErrors(MapErrorPayload(f.Names(), options.Errors))
	}
}

func (f *Form) required(name string) bool {
	spec, ok := f.Spec.Field(name)
	return ok && spec.Required
}
