package widgets

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidgets/pkg/layout"
	"github.com/goliatone/go-formwidgets/pkg/mask"
	"github.com/goliatone/go-formwidgets/pkg/notify"
	"github.com/goliatone/go-formwidgets/pkg/tokens"
)

// Option configures widgets at construction. Options that do not apply to a
// given widget are ignored by it.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	center    *notify.Center
	table     tokens.Table
	hasTable  bool
	factory   layout.Factory
	icons     *layout.IconSet
	delegate  Delegate
	mask      mask.Mask
	paddings  *layout.Insets
	secure    bool
	maxLength int
	name      string
}

func newConfig(options ...Option) config {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.center == nil {
		cfg.center = notify.Default()
	}
	if !cfg.hasTable {
		cfg.table = tokens.Default()
	}
	if cfg.factory == nil {
		cfg.factory = layout.Default()
	}
	if cfg.icons == nil {
		cfg.icons = layout.DefaultIcons()
	}
	return cfg
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNotificationCenter sets the center editing notifications are posted
// on. Standalone widgets default to notify.Default(), where a view keeps its
// observers until Close is called. Registry.BuildForm defaults to a center
// per form.
func WithNotificationCenter(center *notify.Center) Option {
	return func(c *config) {
		if center != nil {
			c.center = center
		}
	}
}

// WithTokens sets the design tokens views are styled with.
func WithTokens(table tokens.Table) Option {
	return func(c *config) {
		c.table = table
		c.hasTable = true
	}
}

// WithFactory sets the layout factory views and containers load from.
func WithFactory(factory layout.Factory) Option {
	return func(c *config) {
		if factory != nil {
			c.factory = factory
		}
	}
}

// WithIcons sets the icon set views look icons up in.
func WithIcons(icons *layout.IconSet) Option {
	return func(c *config) {
		if icons != nil {
			c.icons = icons
		}
	}
}

// WithDelegate sets the delegate text fields forward editing callbacks to.
func WithDelegate(delegate Delegate) Option {
	return func(c *config) {
		c.delegate = delegate
	}
}

// WithMask attaches a mask to text fields.
func WithMask(m mask.Mask) Option {
	return func(c *config) {
		c.mask = m
	}
}

// WithPaddings overrides the text field paddings.
func WithPaddings(insets layout.Insets) Option {
	return func(c *config) {
		c.paddings = &insets
	}
}

// WithSecureEntry hides the text when rendered.
func WithSecureEntry(secure bool) Option {
	return func(c *config) {
		c.secure = secure
	}
}

// WithMaxLength caps unmasked text fields at n runes. Masked fields are
// bounded by their mask.
func WithMaxLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithName labels the widget in logs and snapshots.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
