package pdf

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
)

var ink = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}

func TestRendererIdentity(t *testing.T) {
	r := New()
	if r.Format() != graphics.FormatPDF {
		t.Errorf("Format = %q", r.Format())
	}
	if r.Extension() != ".pdf" {
		t.Errorf("Extension = %q", r.Extension())
	}
}

func TestRenderProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithCompression(false))
	page := graphics.Page{Width: 210, Height: 210}
	err := r.Render(context.Background(), &buf, page, func(c graphics.Canvas) error {
		c.Background(color.RGBA{0xff, 0xff, 0xff, 0xff})
		c.Circle(0, 0, 55, graphics.Stroke{Width: 0.3, Color: ink})
		c.Line(-80, 0, 80, 0, graphics.Stroke{Width: 0.2, Color: ink, Dash: []float64{1, 0.5}})
		c.Polyline(graphics.ArcPoints(0, 0, 40, 0, 90), graphics.Stroke{Width: 0.2, Color: ink})
		c.Dot(10, 10, 0.6, ink)
		c.Text("Latitude 52°N", 0, -60, graphics.TextStyle{Size: 3, Color: ink})
		c.Text("VI", 20, 0, graphics.TextStyle{Size: 3, Color: ink, Rotation: 45, Anchor: graphics.AnchorStart})
		c.PushClipCircle(0, 0, 83)
		c.Circle(0, 0, 90, graphics.Stroke{Width: 0.3, Color: ink})
		c.PopClip()
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("output does not start with a PDF header: %q", out[:minInt(16, len(out))])
	}
	if !strings.Contains(out, "%%EOF") {
		t.Error("output missing PDF trailer")
	}
	if buf.Len() < 1000 {
		t.Errorf("document suspiciously small: %d bytes", buf.Len())
	}
}

func TestRenderBubblesDrawErrors(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(context.Background(), &buf, graphics.Page{Width: 210, Height: 210},
		func(graphics.Canvas) error { return context.DeadlineExceeded },
	)
	if err == nil {
		t.Fatal("expected draw error to surface")
	}
	if !strings.Contains(err.Error(), "draw") {
		t.Errorf("error %q does not mention the draw stage", err)
	}
}

func TestRenderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := New().Render(ctx, &buf, graphics.Page{Width: 210, Height: 210}, func(graphics.Canvas) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
