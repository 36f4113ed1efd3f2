package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrUnknownVariant is returned when a selection names a variant the manifest
// does not declare.
var ErrUnknownVariant = errors.New("render: unknown theme variant")

// RendererConfig flattens a theme selection into the config renderers
// consume: variant tokens override base tokens and every token is exposed as
// a `--<token>` CSS variable. An empty variant selects the base tokens.
func RendererConfig(selection *theme.Selection) (*theme.RendererConfig, error) {
	if selection == nil || selection.Manifest == nil {
		return nil, errors.New("render: theme selection requires a manifest")
	}
	manifest := selection.Manifest

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	files := copyStringMap(manifest.Assets.Files)

	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		override, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("%w: %q (theme %s)", ErrUnknownVariant, variant, manifest.Name)
		}
		tokens = mergeStringMap(tokens, override.Tokens)
		partials = mergeStringMap(partials, override.Templates)
		files = mergeStringMap(files, override.Assets.Files)
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	name := selection.Theme
	if name == "" {
		name = manifest.Name
	}
	prefix := strings.TrimRight(manifest.Assets.Prefix, "/")

	return &theme.RendererConfig{
		Theme:    name,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + strings.TrimLeft(file, "/")
		},
	}, nil
}

// CSSVarsStyle renders CSS variables as a sorted declaration list suitable
// for a `:root { ... }` block.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
