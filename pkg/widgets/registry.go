package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwidgets/pkg/fieldspec"
	"github.com/goliatone/go-formwidgets/pkg/notify"
)

// Built-in widget kinds exposed by the registry.
const (
	KindMasked = "masked"
	KindSecret = "secret"
	KindText   = "text"
)

// ErrUnknownKind is returned when no builder is registered for a kind.
var ErrUnknownKind = errors.New("widgets: unknown widget kind")

// Matcher decides whether a widget kind should handle the supplied field.
type Matcher func(field fieldspec.Field) bool

// Builder constructs a view for a field.
type Builder func(field fieldspec.Field, options ...Option) (*TextFieldView, error)

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widget kinds for fields based on explicit hints or
// registered matchers, and builds views through per-kind builders. Higher
// priority wins; ties fall back to registration order.
type Registry struct {
	mu       sync.RWMutex
	rules    []rule
	builders map[string]Builder
}

// NewRegistry constructs a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	reg := &Registry{builders: make(map[string]Builder)}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided kind name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// RegisterBuilder sets the builder for kind, replacing any previous one.
func (r *Registry) RegisterBuilder(kind string, builder Builder) {
	if r == nil || builder == nil {
		return
	}
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[trimmed] = builder
}

// Resolve returns the widget kind for a field. An explicit "widget" hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field fieldspec.Field) (string, bool) {
	if explicit := field.Hint(fieldspec.HintWidget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Build resolves the kind for field and runs its builder.
func (r *Registry) Build(field fieldspec.Field, options ...Option) (*TextFieldView, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	kind, ok := r.Resolve(field)
	if !ok {
		kind = KindText
	}
	r.mu.RLock()
	builder, ok := r.builders[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (field %s)", ErrUnknownKind, kind, field.Name)
	}
	return builder(field, options...)
}

// BuildForm builds a view per field, in order. The views share a notification
// center of their own unless WithNotificationCenter is passed. Views built
// before a failure are closed.
func (r *Registry) BuildForm(form fieldspec.Form, options ...Option) ([]*TextFieldView, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	options = append([]Option{WithNotificationCenter(notify.NewCenter())}, options...)
	views := make([]*TextFieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		view, err := r.Build(field, options...)
		if err != nil {
			for _, built := range views {
				built.Close()
			}
			return nil, fmt.Errorf("widgets: build %s: %w", field.Name, err)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *Registry) registerBuiltins() {
	r.Register(KindMasked, 90, func(field fieldspec.Field) bool {
		return field.Masked()
	})

	r.Register(KindSecret, 80, func(field fieldspec.Field) bool {
		return field.Secret
	})

	r.Register(KindText, 0, func(fieldspec.Field) bool {
		return true
	})

	r.builders[KindMasked] = func(field fieldspec.Field, options ...Option) (*TextFieldView, error) {
		return buildView(field, withOptions(options, WithMask(field.ResolvedMask()))...)
	}
	r.builders[KindSecret] = func(field fieldspec.Field, options ...Option) (*TextFieldView, error) {
		return buildView(field, withOptions(options, WithSecureEntry(true), WithMaxLength(field.MaxLength))...)
	}
	r.builders[KindText] = func(field fieldspec.Field, options ...Option) (*TextFieldView, error) {
		return buildView(field, withOptions(options, WithMaxLength(field.MaxLength))...)
	}
}

func buildView(field fieldspec.Field, options ...Option) (*TextFieldView, error) {
	view, err := NewTextFieldView(withOptions(options, WithName(field.Name))...)
	if err != nil {
		return nil, err
	}
	view.SetTitle(field.Title)
	if field.Placeholder != "" {
		view.SetPlaceholder(field.Placeholder)
	}
	if field.Icon != "" {
		view.SetIconPosition(ParseIconPosition(field.IconPosition))
		if err := view.AddIcon(field.Icon); err != nil {
			view.Close()
			return nil, err
		}
	}
	if field.Default != "" {
		view.Field().Replace(field.Default)
	}
	return view, nil
}

func withOptions(base []Option, extra ...Option) []Option {
	out := make([]Option, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
