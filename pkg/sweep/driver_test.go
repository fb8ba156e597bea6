package sweep

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// stubRenderer writes a marker byte per file so tests stay fast.
type stubRenderer struct {
	format graphics.Format
	ext    string
}

func (s *stubRenderer) Format() graphics.Format { return s.format }
func (s *stubRenderer) Extension() string       { return s.ext }
func (s *stubRenderer) Render(ctx context.Context, w io.Writer, page graphics.Page, draw func(graphics.Canvas) error) error {
	if err := draw(discard{}); err != nil {
		return err
	}
	_, err := io.WriteString(w, string(s.format))
	return err
}

// discard is a Canvas that ignores everything drawn on it.
type discard struct{}

func (discard) Background(c color.RGBA)                             {}
func (discard) Line(x1, y1, x2, y2 float64, s graphics.Stroke)      {}
func (discard) Circle(cx, cy, r float64, s graphics.Stroke)         {}
func (discard) Polyline(pts []graphics.Point, s graphics.Stroke)    {}
func (discard) Dot(cx, cy, r float64, c color.RGBA)                 {}
func (discard) Text(str string, x, y float64, t graphics.TextStyle) {}
func (discard) PushClipCircle(cx, cy, r float64)                    {}
func (discard) PopClip()                                            {}

func testDriver(t *testing.T, formats ...graphics.Format) *Driver {
	t.Helper()
	reg := graphics.NewRegistry()
	for _, f := range formats {
		reg.MustRegister(&stubRenderer{format: f, ext: "." + string(f)})
	}
	d, err := New(WithGraphics(reg))
	require.NoError(t, err)
	return d
}

func TestSweepSingleTuple(t *testing.T) {
	out := t.TempDir()
	d := testDriver(t, graphics.FormatPNG)

	report, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: out,
	})
	require.NoError(t, err)
	require.Len(t, report.Artifacts, 6)
	require.Len(t, report.Documents, 1)

	entries, err := os.ReadDir(filepath.Join(out, PartsDirName))
	require.NoError(t, err)
	require.Len(t, entries, 6)
	for _, e := range entries {
		require.Contains(t, e.Name(), "52N_en_full", "every part name encodes the sweep coordinates")
		require.True(t, strings.HasSuffix(e.Name(), ".png"))
	}

	docPath := filepath.Join(out, DocumentsDirName, "astrolabe_52N_en_full.tex")
	data, err := os.ReadFile(docPath)
	require.NoError(t, err)
	doc := string(data)
	require.Contains(t, doc, "52°N")
	for _, kind := range []string{"mother_back", "mother_front_combi", "rule", "rete"} {
		require.Contains(t, doc, filepath.Join(out, PartsDirName, kind+"_52N_en_full"))
	}
}

func TestSweepSouthernLatitude(t *testing.T) {
	out := t.TempDir()
	d := testDriver(t, graphics.FormatPNG)

	report, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{-33},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: out,
	})
	require.NoError(t, err)
	for _, a := range report.Artifacts {
		require.Contains(t, filepath.Base(a.Path), "33S")
	}
	data, err := os.ReadFile(report.Documents[0].Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "33°S")
}

func TestSweepLastFormatWinsForDocuments(t *testing.T) {
	out := t.TempDir()
	d := testDriver(t, graphics.FormatPNG, graphics.FormatSVG)

	report, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPNG, graphics.FormatSVG},
		OutputDir: out,
	})
	require.NoError(t, err)
	require.Len(t, report.Artifacts, 12, "each format renders its own parts")

	// One document path, written once per format; the write on disk is the
	// one from the last format processed.
	require.Len(t, report.Documents, 2)
	require.Equal(t, report.Documents[0].Path, report.Documents[1].Path)
	require.Equal(t, graphics.FormatSVG, report.Documents[1].Format)

	entries, err := os.ReadDir(filepath.Join(out, DocumentsDirName))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSweepIsIdempotentOverExistingOutput(t *testing.T) {
	out := t.TempDir()
	d := testDriver(t, graphics.FormatPNG)
	axes := Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: out,
	}
	_, err := d.Run(context.Background(), axes)
	require.NoError(t, err)
	_, err = d.Run(context.Background(), axes)
	require.NoError(t, err, "re-running over a populated output root must succeed")
}

func TestSweepCartesianProduct(t *testing.T) {
	out := t.TempDir()
	d := testDriver(t, graphics.FormatPNG)

	report, err := d.Run(context.Background(), Axes{
		Languages: []string{"en", "fr"},
		Types:     []settings.InstrumentType{settings.TypeFull, settings.TypeSimplified},
		Latitudes: []int{52, -33},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: out,
	})
	require.NoError(t, err)
	require.Len(t, report.Artifacts, 2*2*2*6)
	require.Len(t, report.Documents, 2*2*2)

	// Every artifact path is distinct.
	seen := map[string]bool{}
	for _, a := range report.Artifacts {
		require.False(t, seen[a.Path], "duplicate artifact %s", a.Path)
		seen[a.Path] = true
	}
}

func TestSweepRejectsUnknownFormat(t *testing.T) {
	d := testDriver(t, graphics.FormatPNG)
	_, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPDF},
		OutputDir: t.TempDir(),
	})
	require.ErrorIs(t, err, graphics.ErrUnknownFormat)
}

func TestSweepRequiresOutputDir(t *testing.T) {
	d := testDriver(t, graphics.FormatPNG)
	_, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPNG},
	})
	require.Error(t, err)
}

func TestSweepStopsOnCancelledContext(t *testing.T) {
	d := testDriver(t, graphics.FormatPNG)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := d.Run(ctx, Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{52},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: t.TempDir(),
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweepPropagatesInvalidLatitude(t *testing.T) {
	d := testDriver(t, graphics.FormatPNG)
	_, err := d.Run(context.Background(), Axes{
		Languages: []string{"en"},
		Types:     []settings.InstrumentType{settings.TypeFull},
		Latitudes: []int{91},
		Formats:   []graphics.Format{graphics.FormatPNG},
		OutputDir: t.TempDir(),
	})
	require.ErrorIs(t, err, settings.ErrLatitudeRange)
}
