package render

import (
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-userform/pkg/form"
)

// RenderOptions describe per-request data that renderers use to reflect the
// controller state without mutating the form model.
type RenderOptions struct {
	// View is the controller snapshot: current values, visible errors and the
	// success flag.
	View form.View
	// DismissAfter is how long the success notice stays up. Renderers without
	// a live connection use it to fade the notice client side.
	DismissAfter time.Duration
	// DismissURL is where the notice close control posts to.
	DismissURL string
	// Theme carries resolved tokens and CSS variables.
	Theme *theme.RendererConfig
	// Hidden lists extra hidden inputs emitted inside the form.
	Hidden []HiddenField
}

// HiddenField represents a hidden form input emitted alongside the visible
// fields.
type HiddenField struct {
	Name  string
	Value string
}
