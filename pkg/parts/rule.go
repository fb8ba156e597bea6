package parts

import (
	"context"
	"fmt"

	"github.com/khaledhosny/astrolabe/internal/projection"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// Rule is the double-ended index arm that rotates over the rete. One edge
// runs through the pivot and carries a declination scale, so the arm reads
// declination directly off the plate.
type Rule struct {
	part
}

var (
	_ Component = (*Rule)(nil)
	_ drawer    = (*Rule)(nil)
)

const (
	ruleHalfWidth = 5.0
	ruleLength    = limbOuter
	ruleTip       = 10.0 // taper length at each end
)

// NewRule builds the rule for one instrument.
func NewRule(cfg settings.Settings, opts ...Option) (*Rule, error) {
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Rule{part: p}, nil
}

// RenderToFile implements Component.
func (r *Rule) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return r.renderToFile(ctx, path, format, r.draw)
}

func (r *Rule) kind() string { return KindRule }

func (r *Rule) draw(c graphics.Canvas) error {
	// Outline: a bar along the vertical diameter with tapered tips. The
	// fiducial edge is the right-hand side of the upper half.
	body := ruleLength - ruleTip
	outline := []graphics.Point{
		{X: 0, Y: ruleLength},
		{X: -ruleHalfWidth, Y: body},
		{X: -ruleHalfWidth, Y: -body},
		{X: 0, Y: -ruleLength},
		{X: ruleHalfWidth, Y: -body},
		{X: ruleHalfWidth, Y: body},
		{X: 0, Y: ruleLength},
	}
	c.Polyline(outline, r.ink(0.4))

	// Fiducial edge down the middle.
	c.Line(0, ruleLength, 0, -ruleLength, r.accent(0.2))

	r.drawDeclinationScale(c)
	r.drawPivot(c)
	return nil
}

// drawDeclinationScale marks the declination the fiducial edge crosses at
// each plate radius. The full instrument gets 10-degree steps with labels;
// the simplified one only the tropics and equator.
func (r *Rule) drawDeclinationScale(c graphics.Canvas) {
	southern := r.cfg.Southern()
	marks := []float64{projection.Obliquity, 0, -projection.Obliquity}
	if r.cfg.Type == settings.TypeFull {
		marks = nil
		for dec := -20.0; dec <= 60.0; dec += 10 {
			marks = append(marks, dec)
		}
		marks = append(marks, projection.Obliquity, -projection.Obliquity)
	}
	for _, dec := range marks {
		d := dec
		if southern {
			d = -dec
		}
		radius := projection.DeclinationRadius(d, radiusEquator)
		if radius > ruleLength-ruleTip {
			continue
		}
		c.Line(-ruleHalfWidth, radius, ruleHalfWidth, radius, r.ink(0.15))
		if r.cfg.Type == settings.TypeFull && dec == float64(int(dec)) {
			style := r.label(1.8)
			style.Anchor = graphics.AnchorEnd
			c.Text(fmt.Sprintf("%+d", int(dec)), -ruleHalfWidth-1, radius, style)
		}
	}
}
