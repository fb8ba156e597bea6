package parts

import (
	"context"
	"fmt"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/text"
)

// MotherBack is the back face of the mother: an altitude scale on the limb,
// the zodiac ring, a calendar ring aligned with the Sun's position along the
// ecliptic, and (on the full instrument) a shadow square.
type MotherBack struct {
	part
}

var (
	_ Component = (*MotherBack)(nil)
	_ drawer    = (*MotherBack)(nil)
)

// Ring radii on the back, outermost first.
const (
	backAltScale = 93.0
	backZodiacIn = 86.0
	backMonthIn  = 79.0
)

// monthStart holds the day of year each month begins on (non-leap year).
var monthStart = [12]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

// NewMotherBack builds the back face for one instrument.
func NewMotherBack(cfg settings.Settings, opts ...Option) (*MotherBack, error) {
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &MotherBack{part: p}, nil
}

// RenderToFile implements Component.
func (m *MotherBack) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return m.renderToFile(ctx, path, format, m.draw)
}

func (m *MotherBack) kind() string { return KindMotherBack }

func (m *MotherBack) draw(c graphics.Canvas) error {
	c.Circle(0, 0, limbOuter, m.ink(0.4))

	m.drawAltitudeScale(c)
	m.drawZodiacRing(c)
	m.drawCalendarRing(c)
	if m.cfg.Type == settings.TypeFull {
		m.drawShadowSquare(c)
	}

	// Sighting diameters for the alidade.
	c.Line(-backMonthIn, 0, backMonthIn, 0, m.muted(0.15))
	c.Line(0, -backMonthIn, 0, backMonthIn, m.muted(0.15))

	m.drawPivot(c)
	return nil
}

// drawAltitudeScale engraves the altitude graduations used with the alidade:
// 0 at the horizontal diameter rising to 90 at the top.
func (m *MotherBack) drawAltitudeScale(c graphics.Canvas) {
	c.Circle(0, 0, backAltScale, m.ink(0.2))
	for deg := 0; deg < 360; deg++ {
		inner := limbOuter - 1.5
		s := m.ink(0.1)
		if deg%5 == 0 {
			inner = limbOuter - 3
			s = m.ink(0.2)
		}
		x1, y1, x2, y2 := radial(float64(deg), inner, limbOuter)
		c.Line(x1, y1, x2, y2, s)
	}
	for deg := 10; deg <= 90; deg += 10 {
		// Altitude climbs from both horizontal ends toward the zenith
		// mark at the top.
		for _, angle := range []float64{float64(deg), 180 - float64(deg)} {
			x, y, _, _ := radial(angle, (limbOuter+backAltScale)/2, 0)
			style := m.label(2.6)
			style.Rotation = angle - 90
			c.Text(fmt.Sprintf("%d", deg), x, y, style)
		}
	}
}

// drawZodiacRing divides the ecliptic year into the twelve signs, 30 degrees
// each, Aries starting at the March equinox on the east side.
func (m *MotherBack) drawZodiacRing(c graphics.Canvas) {
	c.Circle(0, 0, backZodiacIn, m.ink(0.2))
	for sign := 0; sign < 12; sign++ {
		boundary := longitudeAngle(float64(sign) * 30)
		x1, y1, x2, y2 := radial(boundary, backZodiacIn, backAltScale)
		c.Line(x1, y1, x2, y2, m.ink(0.2))

		mid := longitudeAngle(float64(sign)*30 + 15)
		x, y, _, _ := radial(mid, (backAltScale+backZodiacIn)/2, 0)
		style := m.label(2.4)
		style.Rotation = mid - 90
		c.Text(m.labels.Label(text.ZodiacKey(sign+1)), x, y, style)

		// Degree ticks inside each sign, every 5 degrees.
		for d := 5; d < 30; d += 5 {
			a := longitudeAngle(float64(sign)*30 + float64(d))
			tx1, ty1, tx2, ty2 := radial(a, backAltScale-1.5, backAltScale)
			c.Line(tx1, ty1, tx2, ty2, m.ink(0.1))
		}
	}
}

// drawCalendarRing places month boundaries at the Sun's true ecliptic
// longitude on the first of each month, so a date on the calendar ring lines
// up with the Sun's zodiac position on the ring outside it.
func (m *MotherBack) drawCalendarRing(c graphics.Canvas) {
	c.Circle(0, 0, backMonthIn, m.ink(0.2))
	for month := 0; month < 12; month++ {
		start := longitudeAngle(projection.SolarLongitude(float64(monthStart[month])))
		x1, y1, x2, y2 := radial(start, backMonthIn, backZodiacIn)
		c.Line(x1, y1, x2, y2, m.ink(0.2))

		next := monthStart[(month+1)%12]
		if month == 11 {
			next = 366
		}
		midDay := (float64(monthStart[month]) + float64(next)) / 2
		mid := longitudeAngle(projection.SolarLongitude(midDay))
		x, y, _, _ := radial(mid, (backZodiacIn+backMonthIn)/2, 0)
		style := m.label(2.2)
		style.Rotation = mid - 90
		c.Text(m.labels.Label(text.MonthKey(month+1)), x, y, style)
	}
}

// drawShadowSquare engraves the umbra recta / umbra versa square in the
// lower half of the back, graduated in twelfths.
func (m *MotherBack) drawShadowSquare(c graphics.Canvas) {
	const half = 42.0
	top := -12.0
	bottom := top - half

	c.Line(-half, top, half, top, m.ink(0.25))
	c.Line(-half, top, -half, bottom, m.ink(0.25))
	c.Line(half, top, half, bottom, m.ink(0.25))
	c.Line(-half, bottom, half, bottom, m.ink(0.25))

	for i := 1; i < 12; i++ {
		f := float64(i) / 12
		// Graduations along the bottom edge (umbra recta) and both
		// vertical edges (umbra versa).
		c.Line(-half+2*half*f, bottom, -half+2*half*f, bottom+2, m.ink(0.12))
		c.Line(-half, top-half*f, -half+2, top-half*f, m.ink(0.12))
		c.Line(half-2, top-half*f, half, top-half*f, m.ink(0.12))
	}
}

// longitudeAngle maps an ecliptic longitude onto a plate angle, counted
// counterclockwise with the March equinox (0 Aries) at the east point.
func longitudeAngle(lambda float64) float64 { return lambda }
