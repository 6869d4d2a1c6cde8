// Package tokens holds the design-token table shared by the formwidgets
// widgets and renderers: a color palette, a semantic color scheme, per-state
// field colors, and a typography scheme built on SF Pro Display faces with a
// system fallback.
//
// A Table is immutable once constructed with New and is passed explicitly to
// widgets instead of being read from package globals. Tables can be exported
// as go-theme manifests or renderer configs, rebuilt from a go-theme
// selection, or loaded from YAML/JSON documents through LoadFS.
package tokens
