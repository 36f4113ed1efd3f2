package template

import (
	"io"
)

// TemplateRenderer executes a named template. The rendered output is returned
// and copied to every writer in out.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}
