// Package themes maps theme names to the colour palettes the drawing
// backends consume. Palettes are declared as a theme manifest with token
// maps, so a variant only has to override the tokens it changes.
package themes

import (
	"fmt"
	"image/color"
	"strconv"

	theme "github.com/goliatone/go-theme"

	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// Token keys used by the built-in manifest.
const (
	tokenPaper  = "color.paper"
	tokenInk    = "color.ink"
	tokenAccent = "color.accent"
	tokenMuted  = "color.muted"
	tokenLabel  = "color.label"
)

// Palette carries the resolved colours for one rendering run.
type Palette struct {
	Name   string
	Paper  color.RGBA // page background
	Ink    color.RGBA // primary line work
	Accent color.RGBA // ecliptic, sighting edges
	Muted  color.RGBA // construction and hour lines
	Label  color.RGBA // engraved text
}

// Manifest returns the built-in theme manifest. The base tokens are the
// default print palette; the "dark" variant overrides them for screen use.
func Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "astrolabe",
		Version: "1.0.0",
		Tokens: map[string]string{
			tokenPaper:  "#ffffff",
			tokenInk:    "#1a1a1a",
			tokenAccent: "#b3322e",
			tokenMuted:  "#6b6b6b",
			tokenLabel:  "#1a1a1a",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					tokenPaper:  "#14181c",
					tokenInk:    "#e6e1d3",
					tokenAccent: "#ff6b5e",
					tokenMuted:  "#8a8f98",
					tokenLabel:  "#e6e1d3",
				},
			},
		},
	}
}

// Select resolves a theme name to a selection over the built-in manifest.
func Select(t settings.Theme) (theme.Selection, error) {
	m := Manifest()
	switch t {
	case settings.ThemeDefault:
		return theme.Selection{Theme: m.Name, Manifest: m}, nil
	case settings.ThemeDark:
		if _, ok := m.Variants["dark"]; !ok {
			return theme.Selection{}, fmt.Errorf("themes: manifest %q has no dark variant", m.Name)
		}
		return theme.Selection{Theme: m.Name, Variant: "dark", Manifest: m}, nil
	}
	return theme.Selection{}, fmt.Errorf("themes: unknown theme %q", t)
}

// Resolve returns the palette for a theme name.
func Resolve(t settings.Theme) (Palette, error) {
	sel, err := Select(t)
	if err != nil {
		return Palette{}, err
	}
	return PaletteFrom(sel)
}

// PaletteFrom materializes the palette a selection describes, applying
// variant token overrides on top of the manifest base tokens.
func PaletteFrom(sel theme.Selection) (Palette, error) {
	if sel.Manifest == nil {
		return Palette{}, fmt.Errorf("themes: selection without manifest")
	}
	tokens := make(map[string]string, len(sel.Manifest.Tokens))
	for k, v := range sel.Manifest.Tokens {
		tokens[k] = v
	}
	if sel.Variant != "" {
		variant, ok := sel.Manifest.Variants[sel.Variant]
		if !ok {
			return Palette{}, fmt.Errorf("themes: manifest %q has no variant %q", sel.Manifest.Name, sel.Variant)
		}
		for k, v := range variant.Tokens {
			tokens[k] = v
		}
	}

	name := sel.Theme
	if sel.Variant != "" {
		name = sel.Theme + "/" + sel.Variant
	}
	p := Palette{Name: name}
	for _, bind := range []struct {
		key string
		dst *color.RGBA
	}{
		{tokenPaper, &p.Paper},
		{tokenInk, &p.Ink},
		{tokenAccent, &p.Accent},
		{tokenMuted, &p.Muted},
		{tokenLabel, &p.Label},
	} {
		hex, ok := tokens[bind.key]
		if !ok {
			return Palette{}, fmt.Errorf("themes: manifest %q missing token %q", sel.Manifest.Name, bind.key)
		}
		c, err := ParseHex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("themes: token %q: %w", bind.key, err)
		}
		*bind.dst = c
	}
	return p, nil
}

// ParseHex parses "#rrggbb" into an opaque RGBA colour.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("malformed colour %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// Hex renders a colour as "#rrggbb" for the SVG backend.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
