// Package fieldspec declares the text fields a form is made of. Declarations
// come from Go literals, from JSON/YAML form files, or from the request body
// schema of an OpenAPI operation, where the x-mask, x-placeholder and related
// extensions (or a credit-card format) describe masked input.
package fieldspec
