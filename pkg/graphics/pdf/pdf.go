// Package pdf renders drawings as single-page PDF documents using the core
// Helvetica font, so no font files need to ship with the binary.
package pdf

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
)

// Renderer writes PDF. The zero value is not usable; call New.
type Renderer struct {
	compress bool
}

// Option adjusts the renderer.
type Option func(*Renderer)

// WithCompression toggles stream compression. Uncompressed output is easier
// to inspect when debugging geometry.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// New builds a PDF renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Format implements graphics.Renderer.
func (r *Renderer) Format() graphics.Format { return graphics.FormatPDF }

// Extension implements graphics.Renderer.
func (r *Renderer) Extension() string { return ".pdf" }

// Render implements graphics.Renderer.
func (r *Renderer) Render(ctx context.Context, w io.Writer, page graphics.Page, draw func(graphics.Canvas) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("pdf: render: %w", err)
	}
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	doc.SetCompression(r.compress)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	c := &canvas{
		doc:       doc,
		page:      page,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}
	if err := draw(c); err != nil {
		return fmt.Errorf("pdf: draw: %w", err)
	}
	for c.open > 0 {
		c.PopClip()
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf: output: %w", err)
	}
	return nil
}

var _ graphics.Renderer = (*Renderer)(nil)

type canvas struct {
	doc       *fpdf.Fpdf
	page      graphics.Page
	translate func(string) string
	open      int
}

var _ graphics.Canvas = (*canvas)(nil)

func (c *canvas) dev(x, y float64) (float64, float64) {
	cx, cy := c.page.Center()
	return cx + x, cy - y
}

func (c *canvas) Background(col color.RGBA) {
	c.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.doc.Rect(0, 0, c.page.Width, c.page.Height, "F")
}

func (c *canvas) applyStroke(s graphics.Stroke) {
	c.doc.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	w := s.Width
	if w <= 0 {
		w = 0.1
	}
	c.doc.SetLineWidth(w)
	c.doc.SetDashPattern(append([]float64(nil), s.Dash...), 0)
}

func (c *canvas) Line(x1, y1, x2, y2 float64, s graphics.Stroke) {
	c.applyStroke(s)
	dx1, dy1 := c.dev(x1, y1)
	dx2, dy2 := c.dev(x2, y2)
	c.doc.Line(dx1, dy1, dx2, dy2)
}

func (c *canvas) Circle(cx, cy, r float64, s graphics.Stroke) {
	c.applyStroke(s)
	dx, dy := c.dev(cx, cy)
	c.doc.Circle(dx, dy, r, "D")
}

func (c *canvas) Polyline(pts []graphics.Point, s graphics.Stroke) {
	if len(pts) < 2 {
		return
	}
	c.applyStroke(s)
	dx, dy := c.dev(pts[0].X, pts[0].Y)
	c.doc.MoveTo(dx, dy)
	for _, p := range pts[1:] {
		px, py := c.dev(p.X, p.Y)
		c.doc.LineTo(px, py)
	}
	c.doc.DrawPath("D")
}

func (c *canvas) Dot(cx, cy, r float64, col color.RGBA) {
	c.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
	dx, dy := c.dev(cx, cy)
	c.doc.Circle(dx, dy, r, "F")
}

func (c *canvas) Text(s string, x, y float64, t graphics.TextStyle) {
	if s == "" {
		return
	}
	const ptPerMM = 72.0 / 25.4
	c.doc.SetFont("Helvetica", "", t.Size*ptPerMM)
	c.doc.SetTextColor(int(t.Color.R), int(t.Color.G), int(t.Color.B))

	label := c.translate(s)
	width := c.doc.GetStringWidth(label)
	dx, dy := c.dev(x, y)
	switch t.Anchor {
	case graphics.AnchorMiddle:
		dx -= width / 2
	case graphics.AnchorEnd:
		dx -= width
	}
	// Shift from the optical middle down to the baseline.
	dy += t.Size * 0.35

	if t.Rotation != 0 {
		ax, ay := c.dev(x, y)
		c.doc.TransformBegin()
		c.doc.TransformRotate(t.Rotation, ax, ay)
		c.doc.Text(dx, dy, label)
		c.doc.TransformEnd()
		return
	}
	c.doc.Text(dx, dy, label)
}

func (c *canvas) PushClipCircle(cx, cy, r float64) {
	dx, dy := c.dev(cx, cy)
	c.doc.ClipCircle(dx, dy, r, false)
	c.open++
}

func (c *canvas) PopClip() {
	if c.open == 0 {
		return
	}
	c.doc.ClipEnd()
	c.open--
}
