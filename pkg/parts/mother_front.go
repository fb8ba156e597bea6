package parts

import (
	"context"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// MotherFront is the front face of the mother: the limb with its degree and
// hour scales, plus the guide circles the climate sits inside. The climate
// itself is a separate part so it can be swapped per latitude.
type MotherFront struct {
	part
}

var (
	_ Component = (*MotherFront)(nil)
	_ drawer    = (*MotherFront)(nil)
)

// NewMotherFront builds the front face for one instrument.
func NewMotherFront(cfg settings.Settings, opts ...Option) (*MotherFront, error) {
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &MotherFront{part: p}, nil
}

// RenderToFile implements Component.
func (m *MotherFront) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return m.renderToFile(ctx, path, format, m.draw)
}

func (m *MotherFront) kind() string { return KindMotherFront }

func (m *MotherFront) draw(c graphics.Canvas) error {
	// Limb: outer cut line and the inner edge the climate drops into.
	c.Circle(0, 0, limbOuter, m.ink(0.4))
	c.Circle(0, 0, limbInner, m.ink(0.2))

	// Degree graduations on the limb, 1 degree apart with heavier marks
	// every 5.
	for deg := 0; deg < 360; deg++ {
		inner := limbOuter - 1.5
		s := m.ink(0.1)
		if deg%5 == 0 {
			inner = limbOuter - 2.5
			s = m.ink(0.2)
		}
		x1, y1, x2, y2 := radial(float64(deg), inner, limbOuter)
		c.Line(x1, y1, x2, y2, s)
	}

	// The 24-hour scale: one numeral per 15 degrees, noon at the top.
	// Numbered I..XII twice, as on the brass originals.
	hourRadius := (limbOuter + limbInner) / 2
	for h := 0; h < 24; h++ {
		angle := 90 - float64(h)*15
		x, y, _, _ := radial(angle, hourRadius, hourRadius)
		style := m.label(3.2)
		style.Rotation = angle - 90
		c.Text(roman((h+11)%12+1), x, y, style)
		tx1, ty1, tx2, ty2 := radial(angle-7.5, limbInner, limbOuter)
		c.Line(tx1, ty1, tx2, ty2, m.ink(0.2))
	}

	// Guide circles for positioning the climate: the tropics and the
	// equator, engraved faintly inside the hollow.
	inner, outer := projection.Tropics(radiusEquator)
	c.Circle(0, 0, inner, m.muted(0.1))
	c.Circle(0, 0, radiusEquator, m.muted(0.15))
	c.Circle(0, 0, outer, m.muted(0.1))

	m.drawPivot(c)
	return nil
}

// drawPivot marks the centre hole shared by every part.
func (p *part) drawPivot(c graphics.Canvas) {
	c.Circle(0, 0, 1.5, p.ink(0.3))
	c.Dot(0, 0, 0.4, p.palette.Ink)
}
