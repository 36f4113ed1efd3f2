package vanilla

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-userform/pkg/render"
)

// DefaultThemeName names the bundled theme.
const DefaultThemeName = "userform"

// PagePartial is the theme template key selecting the page template.
const PagePartial = "forms.page"

// Variants of the bundled theme.
const (
	VariantLight = "light"
	VariantDark  = "dark"
)

// DefaultManifest describes the bundled theme. Base tokens are the light
// palette; the dark variant overrides colours only.
func DefaultManifest(assetPrefix string) *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"font-family": "system-ui, -apple-system, sans-serif",
			"radius":      "8px",
			"surface":     "#f5f5f5",
			"card":        "#ffffff",
			"text":        "#1f2933",
			"muted":       "#52606d",
			"border":      "#c4cdd5",
			"primary":     "#1976d2",
			"on-primary":  "#ffffff",
			"danger":      "#c62828",
			"success":     "#2e7d32",
			"on-success":  "#ffffff",
		},
		Templates: map[string]string{
			PagePartial: pageTemplate,
		},
		Assets: theme.Assets{
			Prefix: assetPrefix,
			Files: map[string]string{
				StylesheetName: StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			VariantLight: {},
			VariantDark: {
				Tokens: map[string]string{
					"surface": "#121212",
					"card":    "#1e1e1e",
					"text":    "#e4e7eb",
					"muted":   "#9aa5b1",
					"border":  "#3e4c59",
					"primary": "#90caf9",
					"danger":  "#ef9a9a",
					"success": "#66bb6a",
				},
			},
		},
	}
}

// Theme registers the bundled manifest and resolves variant into renderer
// configuration. An empty assetPrefix leaves the stylesheet inline.
func Theme(variant, assetPrefix string) (*theme.RendererConfig, error) {
	manifest := DefaultManifest(assetPrefix)
	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("vanilla renderer: register theme: %w", err)
	}

	cfg, err := render.RendererConfig(&theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	})
	if err != nil {
		return nil, err
	}
	if assetPrefix == "" {
		cfg.AssetURL = nil
	}
	return cfg, nil
}
