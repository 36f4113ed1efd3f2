package render

import (
	"context"

	"github.com/goliatone/go-userform/pkg/model"
)

// Renderer converts a FormModel plus the live form state into bytes (HTML,
// plain text, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}
