// Package parts builds the printable components of the instrument: the two
// faces of the mother, the rete, the rule and the latitude-specific climate,
// plus a composite that layers parts onto a single page. Every part is
// constructed from one Settings value and knows how to render itself to a
// file in any registered format.
package parts

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/graphics/pdf"
	"github.com/khaledhosny/astrolabe/pkg/graphics/raster"
	"github.com/khaledhosny/astrolabe/pkg/graphics/svg"
	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/text"
	"github.com/khaledhosny/astrolabe/pkg/themes"
)

// Component is the capability every part exposes: draw yourself and write
// the result to path. The path carries no extension; the renderer for the
// requested format appends its own.
type Component interface {
	RenderToFile(ctx context.Context, path string, format graphics.Format) error
}

// Part kinds, used as filename stems.
const (
	KindMotherFront = "mother_front"
	KindMotherBack  = "mother_back"
	KindRete        = "rete"
	KindRule        = "rule"
	KindClimate     = "climate"
	KindCombined    = "mother_front_combi"
)

// Physical layout in millimetres. Every part shares one square page so
// composites can overlay cleanly around a common pivot.
const (
	pageSide = 210.0

	// radiusEquator anchors the stereographic scale; everything else
	// follows from it.
	radiusEquator = 55.0

	limbOuter     = 98.0 // outer cut of the mother
	limbInner     = 90.0 // inner edge of the limb ring
	climateRadius = 89.5 // climate disc, sits inside the limb
	reteRadius    = 84.8 // rete cut, just clear of the outer tropic
)

var pageSize = graphics.Page{Width: pageSide, Height: pageSide}

// drawer is the internal face of a part: composites replay children through
// it onto a shared canvas.
type drawer interface {
	kind() string
	page() graphics.Page
	draw(c graphics.Canvas) error
}

// part carries what every concrete part needs.
type part struct {
	cfg        settings.Settings
	palette    themes.Palette
	labels     text.Labeler
	registry   *graphics.Registry
	pg         graphics.Page
	translator text.Translator
}

// Option adjusts part construction.
type Option func(*part)

// WithRegistry renders through the given renderer registry instead of the
// built-in one. Tests use this to capture drawing without touching disk.
func WithRegistry(r *graphics.Registry) Option {
	return func(p *part) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithTranslator overrides the string catalogue used for engraved labels.
func WithTranslator(t text.Translator) Option {
	return func(p *part) { p.translator = t }
}

func newPart(cfg settings.Settings, opts ...Option) (part, error) {
	palette, err := themes.Resolve(cfg.Theme)
	if err != nil {
		return part{}, fmt.Errorf("parts: %w", err)
	}
	p := part{
		cfg:      cfg,
		palette:  palette,
		registry: defaultRegistry(),
		pg:       pageSize,
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.labels = text.NewLabeler(cfg.Language, p.translator)
	return p, nil
}

func (p *part) page() graphics.Page { return p.pg }

// renderToFile resolves the renderer, creates the target file and streams
// the drawing into it. The palette background is painted before draw runs,
// so draw implementations never paint it themselves and can be layered.
func (p *part) renderToFile(ctx context.Context, path string, format graphics.Format, draw func(graphics.Canvas) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("parts: render %s: %w", path, err)
	}
	renderer, err := p.registry.Get(format)
	if err != nil {
		return fmt.Errorf("parts: render %s: %w", path, err)
	}
	full := path + renderer.Extension()
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("parts: render %s: %w", full, err)
		}
	}
	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("parts: render: %w", err)
	}
	err = renderer.Render(ctx, f, p.pg, func(c graphics.Canvas) error {
		c.Background(p.palette.Paper)
		return draw(c)
	})
	if err != nil {
		f.Close()
		return fmt.Errorf("parts: render %s: %w", full, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("parts: render %s: %w", full, err)
	}
	return nil
}

var (
	registryOnce    sync.Once
	builtinRegistry *graphics.Registry
)

func defaultRegistry() *graphics.Registry {
	registryOnce.Do(func() {
		builtinRegistry = graphics.NewRegistry()
		builtinRegistry.MustRegister(raster.New())
		builtinRegistry.MustRegister(svg.New())
		builtinRegistry.MustRegister(pdf.New())
	})
	return builtinRegistry
}

// DefaultRegistry exposes the built-in renderer registry (png, svg, pdf).
func DefaultRegistry() *graphics.Registry { return defaultRegistry() }

// Stroke and text helpers bound to the part's palette. Widths in mm.
func (p *part) ink(w float64) graphics.Stroke {
	return graphics.Stroke{Width: w, Color: p.palette.Ink}
}

func (p *part) muted(w float64) graphics.Stroke {
	return graphics.Stroke{Width: w, Color: p.palette.Muted}
}

func (p *part) accent(w float64) graphics.Stroke {
	return graphics.Stroke{Width: w, Color: p.palette.Accent}
}

func (p *part) dashed(w float64) graphics.Stroke {
	return graphics.Stroke{Width: w, Color: p.palette.Muted, Dash: []float64{1.5, 1.5}}
}

func (p *part) label(size float64) graphics.TextStyle {
	return graphics.TextStyle{Size: size, Color: p.palette.Label}
}

var romanNumerals = [...]string{"I", "II", "III", "IIII", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

// roman returns the hour numeral for h in 1..12, using the horological IIII.
func roman(h int) string {
	if h < 1 || h > 12 {
		return ""
	}
	return romanNumerals[h-1]
}

// arcThrough returns a polyline tracing the circular arc from p1 to p3
// passing through p2. Nearly collinear triples degrade to straight segments.
func arcThrough(x1, y1, x2, y2, x3, y3 float64) []graphics.Point {
	cx, cy, r, ok := projection.Circumcircle(x1, y1, x2, y2, x3, y3)
	if !ok {
		return []graphics.Point{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	}
	a1 := angleAbout(cx, cy, x1, y1)
	a2 := angleAbout(cx, cy, x2, y2)
	a3 := angleAbout(cx, cy, x3, y3)
	ccw := normDeg(a3 - a1)
	mid := normDeg(a2 - a1)
	if mid <= ccw {
		return graphics.ArcPoints(cx, cy, r, a1, a1+ccw)
	}
	return graphics.ArcPoints(cx, cy, r, a1, a1-(360-ccw))
}

func angleAbout(cx, cy, x, y float64) float64 {
	return projection.Degrees(math.Atan2(y-cy, x-cx))
}

func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// radial returns the points at radii r1 and r2 along the direction angle
// degrees counterclockwise from +x.
func radial(angle, r1, r2 float64) (x1, y1, x2, y2 float64) {
	s, c := math.Sincos(projection.Radians(angle))
	return r1 * c, r1 * s, r2 * c, r2 * s
}
