// Package uischema loads UI overlays that enrich form models with display
// copy: labels, placeholders, option labels, help text, validation messages,
// field order and form-level text such as the title and the success notice.
// The overlay keeps presentation out of the form definition; Decorator applies
// it to a model built by the openapi package.
package uischema
