// Package layout loads the view resources that describe how composite widgets
// are assembled: their intrinsic size, the outlets they expose, the edges their
// content is pinned to, and optional shadows. Resources are JSON or YAML
// documents read from an fs.FS; a default set is embedded. The package also
// loads SVG icon sets, sanitising the markup before it reaches a renderer.
package layout
