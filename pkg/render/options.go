package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without rebuilding the form.
type RenderOptions struct {
	// Values pre-populates fields by name. Values are typed through the field
	// so masked fields receive their separators.
	Values map[string]string
	// Errors surfaces server-side validation feedback keyed by field name or
	// path. Unknown paths become form-level errors.
	Errors map[string][]string
	// Variant selects the theme variant for renderers that emit theme
	// configuration (for example "dark").
	Variant string
	// Hidden carries extra name/value pairs emitted as hidden inputs by
	// markup renderers.
	Hidden map[string]string
}
