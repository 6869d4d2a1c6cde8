package layout

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Well-known resource names shipped in the embedded set.
const (
	TextFieldViewResource = "TextFieldView"
	ContainerViewResource = "ContainerView"
)

// ErrResourceNotFound is returned when a factory has no resource by the
// requested name.
var ErrResourceNotFound = errors.New("layout: resource not found")

// Resource describes a composite view: its intrinsic size, named outlets, the
// insets its content is pinned with, and its decoration.
type Resource struct {
	Name       string
	Source     string
	Size       Size
	Outlets    []string
	Pin        Insets
	Background tokens.Color
	Shadow     Shadow
	Metadata   map[string]string
}

// HasOutlet reports whether the resource declares outlet.
func (r Resource) HasOutlet(outlet string) bool {
	return slices.Contains(r.Outlets, outlet)
}

// Bounds returns the resource's intrinsic rectangle.
func (r Resource) Bounds() Rect {
	return RectOf(r.Size)
}

// ContentRect returns the frame of content pinned to every edge of bounds.
func (r Resource) ContentRect(bounds Rect) Rect {
	return r.Pin.Inset(bounds)
}

// Factory loads view resources by name.
type Factory interface {
	Load(name string) (Resource, error)
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(name string) (Resource, error)

// Load calls f.
func (f FactoryFunc) Load(name string) (Resource, error) {
	return f(name)
}

// Store keeps parsed resources. It is safe for concurrent readers when treated
// as immutable after construction.
type Store struct {
	resources map[string]Resource
}

// Load implements Factory.
func (s *Store) Load(name string) (Resource, error) {
	res, ok := s.Resource(name)
	if !ok {
		return Resource{}, fmt.Errorf("%w: %q", ErrResourceNotFound, name)
	}
	return res, nil
}

// Resource returns the named resource.
func (s *Store) Resource(name string) (Resource, bool) {
	if s == nil {
		return Resource{}, false
	}
	res, ok := s.resources[name]
	if !ok {
		return Resource{}, false
	}
	res.Outlets = slices.Clone(res.Outlets)
	return res, true
}

// Names lists the resources in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any resources.
func (s *Store) Empty() bool {
	return s == nil || len(s.resources) == 0
}
