// Package pongo adapts a pongo2 template set to template.TemplateRenderer.
// Data passed to templates is normalised into plain maps so structs are
// addressed by their json tag names.
package pongo
