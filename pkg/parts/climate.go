package parts

import (
	"context"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// Climate is the latitude plate: the grid of altitude and azimuth circles
// for one observing latitude, drawn inside the disc that drops into the
// mother. Plate formulas use the latitude magnitude; a southern instrument
// differs only in how the rete above it is mirrored.
type Climate struct {
	part
}

var (
	_ Component = (*Climate)(nil)
	_ drawer    = (*Climate)(nil)
)

// NewClimate builds the plate for one latitude.
func NewClimate(cfg settings.Settings, opts ...Option) (*Climate, error) {
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Climate{part: p}, nil
}

// RenderToFile implements Component.
func (cl *Climate) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return cl.renderToFile(ctx, path, format, cl.draw)
}

func (cl *Climate) kind() string { return KindClimate }

func (cl *Climate) draw(c graphics.Canvas) error {
	lat := float64(cl.cfg.AbsLatitude())
	full := cl.cfg.Type == settings.TypeFull

	c.PushClipCircle(0, 0, climateRadius)

	// Tropics and equator.
	inner, outer := projection.Tropics(radiusEquator)
	c.Circle(0, 0, inner, cl.muted(0.15))
	c.Circle(0, 0, radiusEquator, cl.ink(0.2))
	c.Circle(0, 0, outer, cl.muted(0.15))

	// Meridian and east-west line.
	c.Line(0, -climateRadius, 0, climateRadius, cl.ink(0.2))
	c.Line(-climateRadius, 0, climateRadius, 0, cl.ink(0.2))

	cl.drawAlmucantars(c, lat, full)
	if full {
		cl.drawAzimuths(c, lat)
		cl.drawUnequalHours(c, lat)
	}

	c.PopClip()
	c.Circle(0, 0, climateRadius, cl.ink(0.4))

	cl.drawLabels(c)
	cl.drawPivot(c)
	return nil
}

// drawAlmucantars draws the circles of constant altitude: a heavy horizon,
// a dashed twilight line 18 degrees below it, and the grid above at 5 or 10
// degree steps depending on the instrument type.
func (cl *Climate) drawAlmucantars(c graphics.Canvas, lat float64, full bool) {
	step := 10
	if full {
		step = 5
	}
	for alt := step; alt < 90; alt += step {
		if y, r, ok := projection.Almucantar(float64(alt), lat, radiusEquator); ok {
			c.Circle(0, y, r, cl.muted(0.12))
		}
	}
	if y, r, ok := projection.Almucantar(0, lat, radiusEquator); ok {
		c.Circle(0, y, r, cl.ink(0.3))
		style := cl.label(2.2)
		c.Text(cl.labels.Label("label.horizon"), 0, y-r+3, style)
	}
	if y, r, ok := projection.Almucantar(-18, lat, radiusEquator); ok {
		c.Circle(0, y, r, cl.dashed(0.15))
		style := cl.label(2.0)
		c.Text(cl.labels.Label("label.twilight"), 0, y-r+3, style)
	}
	// Zenith mark.
	c.Dot(0, projection.Zenith(lat, radiusEquator), 0.6, cl.palette.Ink)
}

// drawAzimuths draws the family of azimuth circles through the zenith,
// clipped to the region above the horizon.
func (cl *Climate) drawAzimuths(c graphics.Canvas, lat float64) {
	hy, hr, ok := projection.Almucantar(0, lat, radiusEquator)
	if !ok {
		return
	}
	c.PushClipCircle(0, hy, hr)
	for az := 10; az < 90; az += 10 {
		if x, y, r, ok := projection.AzimuthCircle(float64(az), lat, radiusEquator); ok {
			c.Circle(x, y, r, cl.muted(0.1))
			c.Circle(-x, y, r, cl.muted(0.1))
		}
	}
	c.PopClip()
	// East and west points sit where the horizon meets the east-west line.
	east := cl.label(2.2)
	c.Text(cl.labels.Label("label.east"), climateRadius-5, 2.5, east)
	west := cl.label(2.2)
	c.Text(cl.labels.Label("label.west"), -(climateRadius - 5), 2.5, west)
}

// drawUnequalHours divides the night arc below the horizon into the twelve
// seasonal hours. Each hour line is the arc through its points on the two
// tropics and the equator.
func (cl *Climate) drawUnequalHours(c graphics.Canvas, lat float64) {
	decs := []float64{-projection.Obliquity, 0, projection.Obliquity}
	for hour := 1; hour < 12; hour++ {
		var pts [3][2]float64
		allOK := true
		for i, dec := range decs {
			h0, ok := projection.SunriseHourAngle(lat, dec)
			if !ok {
				allOK = false
				break
			}
			// Hour angle from upper meridian; the night runs from
			// sunset (h0) through lower culmination to sunrise.
			h := h0 + (360-2*h0)*float64(hour)/12
			x, y, _, _ := radial(90-h, projection.DeclinationRadius(dec, radiusEquator), 0)
			pts[i] = [2]float64{x, y}
		}
		if !allOK {
			continue
		}
		arc := arcThrough(
			pts[0][0], pts[0][1],
			pts[1][0], pts[1][1],
			pts[2][0], pts[2][1],
		)
		c.Polyline(arc, cl.muted(0.12))
	}
}

// drawLabels engraves the latitude the plate was computed for, in the dead
// space below the horizon.
func (cl *Climate) drawLabels(c graphics.Canvas) {
	style := cl.label(2.6)
	caption := cl.labels.Label("label.latitude") + " " + cl.cfg.LatitudeLabel()
	c.Text(caption, 0, -(climateRadius - 6), style)
}
