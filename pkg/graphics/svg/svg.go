// Package svg renders drawings as standalone SVG documents sized in
// millimetres. Geometry is written at a fixed 0.1mm resolution, which keeps
// coordinates integral and well under laser-cutter tolerance.
package svg

import (
	"context"
	"fmt"
	"html"
	"image/color"
	"io"
	"strings"
	"sync"

	svgo "github.com/ajstarks/svgo"
	"github.com/microcosm-cc/bluemonday"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/themes"
)

// unitsPerMM fixes the viewBox resolution.
const unitsPerMM = 10

// Renderer writes SVG. The zero value is not usable; call New.
type Renderer struct {
	fontFamily string
}

// Option adjusts the renderer.
type Option func(*Renderer)

// WithFontFamily overrides the font stack used for engraved text.
func WithFontFamily(family string) Option {
	return func(r *Renderer) { r.fontFamily = family }
}

// New builds an SVG renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{fontFamily: "Helvetica, Arial, sans-serif"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format implements graphics.Renderer.
func (r *Renderer) Format() graphics.Format { return graphics.FormatSVG }

// Extension implements graphics.Renderer.
func (r *Renderer) Extension() string { return ".svg" }

// Render implements graphics.Renderer.
func (r *Renderer) Render(ctx context.Context, w io.Writer, page graphics.Page, draw func(graphics.Canvas) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("svg: render: %w", err)
	}
	doc := svgo.New(w)
	doc.Startunit(int(page.Width), int(page.Height), "mm",
		fmt.Sprintf(`viewBox="0 0 %d %d"`, mmToUnit(page.Width), mmToUnit(page.Height)))
	c := &canvas{doc: doc, page: page, font: r.fontFamily}
	if err := draw(c); err != nil {
		return fmt.Errorf("svg: draw: %w", err)
	}
	for c.open > 0 {
		c.PopClip()
	}
	doc.End()
	return nil
}

var _ graphics.Renderer = (*Renderer)(nil)

type canvas struct {
	doc   *svgo.SVG
	page  graphics.Page
	font  string
	clips int
	open  int
}

var _ graphics.Canvas = (*canvas)(nil)

func (c *canvas) devX(x float64) int {
	cx, _ := c.page.Center()
	return mmToUnit(cx + x)
}

func (c *canvas) devY(y float64) int {
	_, cy := c.page.Center()
	return mmToUnit(cy - y)
}

func (c *canvas) Background(col color.RGBA) {
	c.doc.Rect(0, 0, mmToUnit(c.page.Width), mmToUnit(c.page.Height),
		fmt.Sprintf(`fill="%s" stroke="none"`, themes.Hex(col)))
}

func (c *canvas) Line(x1, y1, x2, y2 float64, s graphics.Stroke) {
	c.doc.Line(c.devX(x1), c.devY(y1), c.devX(x2), c.devY(y2), strokeAttrs(s))
}

func (c *canvas) Circle(cx, cy, r float64, s graphics.Stroke) {
	c.doc.Circle(c.devX(cx), c.devY(cy), mmToUnit(r), strokeAttrs(s))
}

func (c *canvas) Polyline(pts []graphics.Point, s graphics.Stroke) {
	if len(pts) < 2 {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i] = c.devX(p.X)
		ys[i] = c.devY(p.Y)
	}
	c.doc.Polyline(xs, ys, strokeAttrs(s))
}

func (c *canvas) Dot(cx, cy, r float64, col color.RGBA) {
	c.doc.Circle(c.devX(cx), c.devY(cy), mmToUnit(r),
		fmt.Sprintf(`fill="%s" stroke="none"`, themes.Hex(col)))
}

func (c *canvas) Text(s string, x, y float64, t graphics.TextStyle) {
	label := sanitizeLabel(s)
	if label == "" {
		return
	}
	dx, dy := c.devX(x), c.devY(y)
	attrs := fmt.Sprintf(`fill="%s" font-family="%s" font-size="%d" text-anchor="%s" dominant-baseline="central"`,
		themes.Hex(t.Color), c.font, mmToUnit(t.Size), anchorName(t.Anchor))
	if t.Rotation != 0 {
		c.doc.Gtransform(fmt.Sprintf("rotate(%.2f,%d,%d)", -t.Rotation, dx, dy))
		c.doc.Text(dx, dy, label, attrs)
		c.doc.Gend()
		return
	}
	c.doc.Text(dx, dy, label, attrs)
}

func (c *canvas) PushClipCircle(cx, cy, r float64) {
	c.clips++
	id := fmt.Sprintf("clip-%d", c.clips)
	c.doc.ClipPath(fmt.Sprintf(`id="%s"`, id))
	c.doc.Circle(c.devX(cx), c.devY(cy), mmToUnit(r))
	c.doc.ClipEnd()
	c.doc.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	c.open++
}

func (c *canvas) PopClip() {
	if c.open == 0 {
		return
	}
	c.doc.Gend()
	c.open--
}

func mmToUnit(mm float64) int {
	if mm >= 0 {
		return int(mm*unitsPerMM + 0.5)
	}
	return -int(-mm*unitsPerMM + 0.5)
}

func strokeAttrs(s graphics.Stroke) string {
	w := mmToUnit(s.Width)
	if w < 1 {
		w = 1
	}
	attrs := fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round"`,
		themes.Hex(s.Color), w)
	if len(s.Dash) > 0 {
		segs := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			segs[i] = fmt.Sprintf("%d", mmToUnit(d))
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(segs, " "))
	}
	return attrs
}

func anchorName(a graphics.Anchor) string {
	switch a {
	case graphics.AnchorStart:
		return "start"
	case graphics.AnchorEnd:
		return "end"
	}
	return "middle"
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabel strips any markup from engraved text before it is embedded
// in the document. The sanitizer HTML-escapes its output, so the entities
// are unescaped again and the XML writer applies its own escaping exactly
// once.
func sanitizeLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(strings.TrimSpace(labelPolicy.Sanitize(trimmed)))
}
