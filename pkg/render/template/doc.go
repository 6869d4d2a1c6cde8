// Package template defines the template engine seam markup renderers rely on.
package template
