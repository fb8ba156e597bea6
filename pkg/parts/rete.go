package parts

import (
	"context"
	"math"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/internal/stars"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/text"
)

// Rete is the rotating star map: the ecliptic ring graduated in zodiac
// signs, pointers for the bright stars, and the structural bars that hold
// the cut-out together.
type Rete struct {
	part
}

var (
	_ Component = (*Rete)(nil)
	_ drawer    = (*Rete)(nil)
)

// Stars dimmer than this get a pointer but no engraved name.
const reteNameLimit = 1.6

// NewRete builds the rete for one instrument.
func NewRete(cfg settings.Settings, opts ...Option) (*Rete, error) {
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Rete{part: p}, nil
}

// RenderToFile implements Component.
func (r *Rete) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return r.renderToFile(ctx, path, format, r.draw)
}

func (r *Rete) kind() string { return KindRete }

func (r *Rete) draw(c graphics.Canvas) error {
	// Outer cut, just outside the far tropic.
	c.Circle(0, 0, reteRadius, r.ink(0.4))

	r.drawEclipticRing(c)
	r.drawStars(c)
	r.drawBars(c)
	r.drawPivot(c)
	return nil
}

// drawEclipticRing engraves the off-centre ecliptic band, graduated into
// the twelve signs. Sign boundaries point at the ring's own centre, not the
// pivot.
func (r *Rete) drawEclipticRing(c graphics.Canvas) {
	southern := r.cfg.Southern()
	ex, ey, er := projection.EclipticCircle(radiusEquator, southern)
	const band = 5.0
	c.Circle(ex, ey, er, r.accent(0.3))
	c.Circle(ex, ey, er-band, r.accent(0.2))

	for sign := 0; sign < 12; sign++ {
		lambda := float64(sign) * 30
		x, y := projection.EclipticPoint(lambda, radiusEquator, southern)
		a := projection.Degrees(math.Atan2(y-ey, x-ex))
		bx := ex + (er-band)*math.Cos(projection.Radians(a))
		by := ey + (er-band)*math.Sin(projection.Radians(a))
		c.Line(bx, by, x, y, r.accent(0.2))

		mx, my := projection.EclipticPoint(lambda+15, radiusEquator, southern)
		ma := projection.Degrees(math.Atan2(my-ey, mx-ex))
		lx := ex + (er-band/2)*math.Cos(projection.Radians(ma))
		ly := ey + (er-band/2)*math.Sin(projection.Radians(ma))
		style := r.label(2.0)
		style.Rotation = ma - 90
		c.Text(r.labels.Label(text.ZodiacKey(sign+1)), lx, ly, style)
	}
}

// drawStars places a pointer for every catalogue star that projects inside
// the outer cut. On a southern instrument the sky is mirrored, which
// PlatePoint handles.
func (r *Rete) drawStars(c graphics.Canvas) {
	southern := r.cfg.Southern()
	for _, s := range stars.All() {
		x, y := projection.PlatePoint(s.RAHours, s.DecDegrees, radiusEquator, southern)
		if math.Hypot(x, y) > reteRadius-3 {
			continue
		}
		// Pointer: a short spike aimed at the star from the pivot side.
		d := math.Hypot(x, y)
		if d > 4 {
			ux, uy := x/d, y/d
			c.Line(x-6*ux, y-6*uy, x, y, r.ink(0.25))
		}
		c.Dot(x, y, 0.8, r.palette.Ink)
		if s.Magnitude <= reteNameLimit {
			style := r.label(1.8)
			style.Anchor = graphics.AnchorStart
			c.Text(s.Name, x+1.5, y+1.5, style)
		}
	}
}

// drawBars engraves the structural frame: the equatorial band and the
// meridian bar that keep the cut-out rigid.
func (r *Rete) drawBars(c graphics.Canvas) {
	const barHalf = 2.5
	chord := math.Sqrt(reteRadius*reteRadius - barHalf*barHalf)
	c.Line(-chord, barHalf, chord, barHalf, r.muted(0.2))
	c.Line(-chord, -barHalf, chord, -barHalf, r.muted(0.2))
	c.Line(barHalf, -chord, barHalf, chord, r.muted(0.2))
	c.Line(-barHalf, -chord, -barHalf, chord, r.muted(0.2))
}
