// Package raster renders drawings as PNG images. Text is set in the Go
// regular face shipped with golang.org/x/image, scaled to the physical
// size the drawing asks for at the renderer's resolution.
package raster

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
)

// Renderer writes PNG. The zero value is not usable; call New.
type Renderer struct {
	dpi float64

	fontOnce sync.Once
	font     *sfnt.Font
	fontErr  error
}

// Option adjusts the renderer.
type Option func(*Renderer)

// WithDPI overrides the raster resolution. The default of 300 matches what
// print shops expect.
func WithDPI(dpi float64) Option {
	return func(r *Renderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// New builds a PNG renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{dpi: 300}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format implements graphics.Renderer.
func (r *Renderer) Format() graphics.Format { return graphics.FormatPNG }

// Extension implements graphics.Renderer.
func (r *Renderer) Extension() string { return ".png" }

// Render implements graphics.Renderer.
func (r *Renderer) Render(ctx context.Context, w io.Writer, page graphics.Page, draw func(graphics.Canvas) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("raster: render: %w", err)
	}
	fnt, err := r.loadFont()
	if err != nil {
		return fmt.Errorf("raster: font: %w", err)
	}

	scale := r.dpi / 25.4
	dc := gg.NewContext(
		int(math.Round(page.Width*scale)),
		int(math.Round(page.Height*scale)),
	)
	dc.SetLineCap(gg.LineCapRound)

	c := &canvas{
		dc:    dc,
		page:  page,
		scale: scale,
		font:  fnt,
		faces: make(map[int]font.Face),
	}
	if err := draw(c); err != nil {
		return fmt.Errorf("raster: draw: %w", err)
	}
	for c.open > 0 {
		c.PopClip()
	}
	if c.err != nil {
		return fmt.Errorf("raster: text: %w", c.err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

func (r *Renderer) loadFont() (*sfnt.Font, error) {
	r.fontOnce.Do(func() {
		r.font, r.fontErr = opentype.Parse(goregular.TTF)
	})
	return r.font, r.fontErr
}

var _ graphics.Renderer = (*Renderer)(nil)

type canvas struct {
	dc    *gg.Context
	page  graphics.Page
	scale float64
	font  *sfnt.Font
	faces map[int]font.Face
	open  int
	err   error
}

var _ graphics.Canvas = (*canvas)(nil)

func (c *canvas) dev(x, y float64) (float64, float64) {
	cx, cy := c.page.Center()
	return (cx + x) * c.scale, (cy - y) * c.scale
}

func (c *canvas) applyStroke(s graphics.Stroke) {
	c.dc.SetColor(s.Color)
	w := s.Width * c.scale
	if w < 1 {
		w = 1
	}
	c.dc.SetLineWidth(w)
	if len(s.Dash) == 0 {
		c.dc.SetDash()
		return
	}
	dash := make([]float64, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = d * c.scale
	}
	c.dc.SetDash(dash...)
}

func (c *canvas) Background(col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *canvas) Line(x1, y1, x2, y2 float64, s graphics.Stroke) {
	c.applyStroke(s)
	dx1, dy1 := c.dev(x1, y1)
	dx2, dy2 := c.dev(x2, y2)
	c.dc.DrawLine(dx1, dy1, dx2, dy2)
	c.dc.Stroke()
}

func (c *canvas) Circle(cx, cy, r float64, s graphics.Stroke) {
	c.applyStroke(s)
	dx, dy := c.dev(cx, cy)
	c.dc.DrawCircle(dx, dy, r*c.scale)
	c.dc.Stroke()
}

func (c *canvas) Polyline(pts []graphics.Point, s graphics.Stroke) {
	if len(pts) < 2 {
		return
	}
	c.applyStroke(s)
	dx, dy := c.dev(pts[0].X, pts[0].Y)
	c.dc.MoveTo(dx, dy)
	for _, p := range pts[1:] {
		px, py := c.dev(p.X, p.Y)
		c.dc.LineTo(px, py)
	}
	c.dc.Stroke()
}

func (c *canvas) Dot(cx, cy, r float64, col color.RGBA) {
	c.dc.SetColor(col)
	dx, dy := c.dev(cx, cy)
	c.dc.DrawCircle(dx, dy, r*c.scale)
	c.dc.Fill()
}

func (c *canvas) Text(s string, x, y float64, t graphics.TextStyle) {
	if s == "" {
		return
	}
	face, err := c.face(t.Size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return
	}
	c.dc.SetFontFace(face)
	c.dc.SetColor(t.Color)
	dx, dy := c.dev(x, y)
	ax := 0.5
	switch t.Anchor {
	case graphics.AnchorStart:
		ax = 0
	case graphics.AnchorEnd:
		ax = 1
	}
	if t.Rotation != 0 {
		c.dc.Push()
		c.dc.RotateAbout(gg.Radians(-t.Rotation), dx, dy)
		c.dc.DrawStringAnchored(s, dx, dy, ax, 0.5)
		c.dc.Pop()
		return
	}
	c.dc.DrawStringAnchored(s, dx, dy, ax, 0.5)
}

func (c *canvas) face(sizeMM float64) (font.Face, error) {
	px := int(math.Round(sizeMM * c.scale))
	if px < 4 {
		px = 4
	}
	if f, ok := c.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[px] = f
	return f, nil
}

func (c *canvas) PushClipCircle(cx, cy, r float64) {
	c.dc.Push()
	dx, dy := c.dev(cx, cy)
	c.dc.DrawCircle(dx, dy, r*c.scale)
	c.dc.Clip()
	c.open++
}

func (c *canvas) PopClip() {
	if c.open == 0 {
		return
	}
	c.dc.Pop()
	c.open--
}
