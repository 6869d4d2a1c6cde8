// Package render defines the contract between built widget forms and the
// renderers that present them (HTML, prompt driven terminal sessions and the
// interactive bubbletea program), plus the registry used to select a renderer
// by name.
package render
