package parts

import (
	"context"
	"fmt"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// Composite layers several parts onto one page: children draw onto a shared
// canvas in list order, so later children sit on top of earlier ones. The
// driver uses it to print the mother front and its climate as a single
// sheet.
type Composite struct {
	part
	children []drawer
}

var (
	_ Component = (*Composite)(nil)
	_ drawer    = (*Composite)(nil)
)

// NewComposite builds a composite over the given children. Children must be
// parts constructed by this package; anything else cannot share the page
// and is rejected.
func NewComposite(cfg settings.Settings, children []Component, opts ...Option) (*Composite, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("parts: composite requires at least one child")
	}
	p, err := newPart(cfg, opts...)
	if err != nil {
		return nil, err
	}
	ds := make([]drawer, 0, len(children))
	for i, child := range children {
		d, ok := child.(drawer)
		if !ok {
			return nil, fmt.Errorf("parts: composite child %d (%T) was not built by this package", i, child)
		}
		ds = append(ds, d)
	}
	return &Composite{part: p, children: ds}, nil
}

// RenderToFile implements Component.
func (m *Composite) RenderToFile(ctx context.Context, path string, format graphics.Format) error {
	return m.renderToFile(ctx, path, format, m.draw)
}

func (m *Composite) kind() string { return KindCombined }

func (m *Composite) draw(c graphics.Canvas) error {
	for _, child := range m.children {
		if err := child.draw(c); err != nil {
			return fmt.Errorf("parts: composite %s: %w", child.kind(), err)
		}
	}
	return nil
}
