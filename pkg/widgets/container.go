package widgets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Container is a view built from a layout resource. Its content view is pinned
// to every edge with a clear background.
type Container struct {
	resource layout.Resource
	bounds   layout.Rect
	shadow   layout.Shadow
	logger   *zap.Logger
}

// NewContainer loads the named resource from factory.
func NewContainer(factory layout.Factory, name string, options ...Option) (*Container, error) {
	if factory == nil {
		return nil, fmt.Errorf("widgets: container %q: layout factory is nil", name)
	}
	resource, err := factory.Load(name)
	if err != nil {
		return nil, fmt.Errorf("widgets: container %q: %w", name, err)
	}
	cfg := newConfig(options...)
	return &Container{
		resource: resource,
		bounds:   resource.Bounds(),
		logger:   cfg.logger,
	}, nil
}

// Resource returns the layout resource the container was built from.
func (c *Container) Resource() layout.Resource { return c.resource }

// Bounds returns the container rectangle.
func (c *Container) Bounds() layout.Rect { return c.bounds }

// SetBounds resizes the container; the content frame follows.
func (c *Container) SetBounds(bounds layout.Rect) { c.bounds = bounds }

// ContentFrame is the frame of the pinned content view.
func (c *Container) ContentFrame() layout.Rect {
	return c.resource.ContentRect(c.bounds)
}

// ContentBackground is always clear so the container background shows.
func (c *Container) ContentBackground() tokens.Color { return tokens.Clear }

// Background is the container's own fill from its resource.
func (c *Container) Background() tokens.Color { return c.resource.Background }

// HasShadow reports whether a shadow is drawn (opacity above zero).
func (c *Container) HasShadow() bool { return c.shadow.Visible() }

// Shadow returns the current shadow.
func (c *Container) Shadow() layout.Shadow { return c.shadow }

// SetShadow turns the shadow on or off. Turning it on uses the resource shadow
// when it declares a visible one and DefaultShadow otherwise.
func (c *Container) SetShadow(on bool) {
	if !on {
		c.shadow = c.shadow.Hidden()
		return
	}
	if c.resource.Shadow.Visible() {
		c.AddShadow(c.resource.Shadow)
		return
	}
	c.AddShadow(layout.DefaultShadow())
}

// AddShadow sets an explicit shadow.
func (c *Container) AddShadow(shadow layout.Shadow) {
	c.shadow = shadow
	c.logger.Debug("container shadow",
		zap.String("resource", c.resource.Name),
		zap.Float64("opacity", shadow.Opacity),
		zap.Float64("radius", shadow.Radius),
	)
}
