// Package graphics defines the drawing contract shared by every output
// backend. Parts draw onto a Canvas in plate coordinates: millimetres, the
// origin at the page centre, +x to the right and +y up. A Renderer owns the
// translation from plate coordinates to one concrete file format.
package graphics

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
)

// Format identifies an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ErrUnknownFormat reports a format name outside the supported set.
var ErrUnknownFormat = errors.New("graphics: unknown format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	switch f {
	case FormatPNG, FormatSVG, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Formats lists the supported formats in their conventional order.
func Formats() []Format { return []Format{FormatPNG, FormatSVG, FormatPDF} }

// Page is the physical sheet a part is drawn on, in millimetres.
type Page struct {
	Width  float64
	Height float64
}

// Center returns the page centre, which plate coordinates treat as origin.
func (p Page) Center() (x, y float64) { return p.Width / 2, p.Height / 2 }

// Point is a plate coordinate in millimetres.
type Point struct {
	X float64
	Y float64
}

// Stroke describes line work. Width is in millimetres; an empty Dash slice
// draws solid.
type Stroke struct {
	Width float64
	Color color.RGBA
	Dash  []float64
}

// Anchor positions text horizontally relative to its anchor point. Vertical
// alignment is always the optical middle.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

// TextStyle describes engraved text. Size is the glyph height in
// millimetres. Rotation is in degrees counterclockwise about the anchor, as
// seen on the rendered page.
type TextStyle struct {
	Size     float64
	Color    color.RGBA
	Rotation float64
	Anchor   Anchor
}

// Canvas is the drawing surface handed to a part. Implementations are not
// safe for concurrent use; a part draws from a single goroutine.
type Canvas interface {
	// Background fills the whole page.
	Background(c color.RGBA)
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64, s Stroke)
	// Circle strokes a full circle.
	Circle(cx, cy, r float64, s Stroke)
	// Polyline strokes consecutive segments between the points.
	Polyline(pts []Point, s Stroke)
	// Dot fills a small disc.
	Dot(cx, cy, r float64, c color.RGBA)
	// Text engraves a label at the anchor point.
	Text(s string, x, y float64, t TextStyle)
	// PushClipCircle intersects the clip region with a disc. Clips nest;
	// every push must be balanced by PopClip.
	PushClipCircle(cx, cy, r float64)
	// PopClip restores the clip region in effect before the matching push.
	PopClip()
}

// Renderer writes one drawing in one format.
type Renderer interface {
	// Format names the format this renderer produces.
	Format() Format
	// Extension returns the filename extension, including the dot.
	Extension() string
	// Render opens a canvas for the page, runs draw on it, and writes the
	// finished image to w.
	Render(ctx context.Context, w io.Writer, page Page, draw func(Canvas) error) error
}

// ArcPoints approximates a circular arc as a polyline. Angles are degrees
// counterclockwise from the +x axis; the arc runs from a1 toward a2 in
// whichever direction the sign of a2-a1 indicates. Steps of at most one
// degree keep the chord error far below printing resolution.
func ArcPoints(cx, cy, r, a1, a2 float64) []Point {
	span := a2 - a1
	n := int(math.Ceil(math.Abs(span)))
	if n < 8 {
		n = 8
	}
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := (a1 + span*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}
