package render_test

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-userform/pkg/render"
)

func testManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
			"ink":   "#000000",
		},
		Templates: map[string]string{
			"forms.page": "themes/acme/page.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme/",
			Files: map[string]string{
				"stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"stylesheet": "theme.dark.css",
					},
				},
			},
		},
	}
}

func TestRendererConfig_MergesVariant(t *testing.T) {
	manifest := testManifest()
	cfg, err := render.RendererConfig(&theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest})
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}

	if cfg.Tokens["brand"] != "#654321" || cfg.Tokens["ink"] != "#000000" {
		t.Fatalf("tokens not merged: %#v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens: %#v", cfg.CSSVars)
	}
	if cfg.Partials["forms.page"] != "themes/acme/page.tmpl" {
		t.Fatalf("partials not copied: %#v", cfg.Partials)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.dark.css" {
		t.Fatalf("asset url mismatch: %s", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("unknown asset should resolve to empty, got %s", got)
	}
	if manifest.Tokens["brand"] != "#123456" {
		t.Fatalf("manifest tokens must not be mutated")
	}

	if got := render.CSSVarsStyle(cfg); got != "--brand: #654321; --ink: #000000;" {
		t.Fatalf("css vars style mismatch: %q", got)
	}
}

func TestRendererConfig_BaseTokensWithoutVariant(t *testing.T) {
	cfg, err := render.RendererConfig(&theme.Selection{Manifest: testManifest()})
	if err != nil {
		t.Fatalf("renderer config: %v", err)
	}
	if cfg.Theme != "acme" || cfg.Tokens["brand"] != "#123456" {
		t.Fatalf("unexpected base config: %#v", cfg)
	}
}

func TestRendererConfig_Errors(t *testing.T) {
	if _, err := render.RendererConfig(nil); err == nil {
		t.Fatalf("expected error for nil selection")
	}
	_, err := render.RendererConfig(&theme.Selection{Variant: "sepia", Manifest: testManifest()})
	if !errors.Is(err, render.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestCSSVarsStyle_Nil(t *testing.T) {
	if got := render.CSSVarsStyle(nil); got != "" {
		t.Fatalf("expected empty style, got %q", got)
	}
}
