// Package sweep drives the part-generation pipeline: for every combination
// of language, instrument type, latitude and output format it constructs
// the parts of one instrument, renders each to a file, and writes the
// assembly document describing how to put them together.
package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/khaledhosny/astrolabe/pkg/assembly"
	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/parts"
	"github.com/khaledhosny/astrolabe/pkg/settings"
)

// Output subdirectories under the output root.
const (
	PartsDirName     = "astrolabe_parts"
	DocumentsDirName = "astrolabes"
)

// Axes are the enumerable dimensions of one sweep, already validated by the
// configuration layer. The nesting order is fixed: language, then type,
// then latitude, with format innermost.
type Axes struct {
	Languages []string
	Types     []settings.InstrumentType
	Latitudes []int
	Formats   []graphics.Format
	Theme     settings.Theme
	OutputDir string
}

// Artifact records one rendered part file.
type Artifact struct {
	Kind     string
	Path     string
	Format   graphics.Format
	Language string
	Type     settings.InstrumentType
	Latitude int
}

// DocumentRecord records one assembly document write. The same document
// path is rewritten once per format in the sweep; the file on disk after
// the sweep reflects the last format processed.
type DocumentRecord struct {
	Path     string
	Format   graphics.Format
	Language string
	Type     settings.InstrumentType
	Latitude int
}

// Report is the ordered record of everything a sweep wrote.
type Report struct {
	Artifacts []Artifact
	Documents []DocumentRecord
}

// Driver runs sweeps. Construct with New; the zero value is not usable.
type Driver struct {
	registry *graphics.Registry
	builder  *assembly.Builder
	logger   *zap.Logger
}

// Option adjusts driver construction.
type Option func(*Driver)

// WithGraphics renders through the given registry instead of the built-in
// png/svg/pdf one.
func WithGraphics(reg *graphics.Registry) Option {
	return func(d *Driver) {
		if reg != nil {
			d.registry = reg
		}
	}
}

// WithAssembly overrides the assembly document builder.
func WithAssembly(b *assembly.Builder) Option {
	return func(d *Driver) {
		if b != nil {
			d.builder = b
		}
	}
}

// WithLogger attaches a logger for sweep progress. The default is a nop
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// New constructs a Driver, filling in the built-in renderer registry and
// the embedded assembly templates where no option overrides them.
func New(opts ...Option) (*Driver, error) {
	d := &Driver{
		registry: parts.DefaultRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.builder == nil {
		b, err := assembly.New()
		if err != nil {
			return nil, fmt.Errorf("sweep: %w", err)
		}
		d.builder = b
	}
	return d, nil
}

// Run executes the full sweep. Output directories are created idempotently
// before the first iteration; the first failure aborts the remaining sweep.
// The whole sweep is one cancellable unit: cancellation between renders
// leaves a partially populated output tree behind.
func (d *Driver) Run(ctx context.Context, axes Axes) (*Report, error) {
	if axes.OutputDir == "" {
		return nil, fmt.Errorf("sweep: output directory is required")
	}
	theme := axes.Theme
	if theme == "" {
		theme = settings.ThemeDefault
	}
	for _, format := range axes.Formats {
		if !d.registry.Has(format) {
			return nil, fmt.Errorf("sweep: %w: %q", graphics.ErrUnknownFormat, format)
		}
	}

	outputDir, err := filepath.Abs(axes.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("sweep: resolve output dir: %w", err)
	}
	partsDir := filepath.Join(outputDir, PartsDirName)
	documentsDir := filepath.Join(outputDir, DocumentsDirName)
	for _, dir := range []string{partsDir, documentsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sweep: create %s: %w", dir, err)
		}
	}

	report := &Report{}
	for _, language := range axes.Languages {
		for _, typ := range axes.Types {
			for _, latitude := range axes.Latitudes {
				for _, format := range axes.Formats {
					if err := ctx.Err(); err != nil {
						return report, fmt.Errorf("sweep: %w", err)
					}
					if err := d.runTuple(ctx, report, partsDir, documentsDir, language, typ, latitude, format, theme); err != nil {
						return report, err
					}
				}
			}
		}
	}
	d.logger.Info("sweep complete",
		zap.Int("parts", len(report.Artifacts)),
		zap.Int("documents", len(report.Documents)),
		zap.String("output_dir", outputDir))
	return report, nil
}

// runTuple processes one sweep tuple: build all parts for the settings,
// render each, then write the assembly document from this iteration's
// paths.
func (d *Driver) runTuple(ctx context.Context, report *Report, partsDir, documentsDir, language string, typ settings.InstrumentType, latitude int, format graphics.Format, theme settings.Theme) error {
	cfg, err := settings.New(language, typ, latitude, settings.WithTheme(theme))
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	renderer, err := d.registry.Get(format)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	opts := []parts.Option{parts.WithRegistry(d.registry)}

	motherFront, err := parts.NewMotherFront(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	motherBack, err := parts.NewMotherBack(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	rete, err := parts.NewRete(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	rule, err := parts.NewRule(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	climate, err := parts.NewClimate(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	// The combined sheet layers a fresh front and climate; order matters,
	// the climate draws on top.
	combiFront, err := parts.NewMotherFront(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	combiClimate, err := parts.NewClimate(cfg, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	combined, err := parts.NewComposite(cfg, []parts.Component{combiFront, combiClimate}, opts...)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	base := func(kind string) string {
		return filepath.Join(partsDir, PartName(kind, latitude, cfg.Language, typ))
	}
	order := []struct {
		kind string
		comp parts.Component
	}{
		{parts.KindMotherFront, motherFront},
		{parts.KindMotherBack, motherBack},
		{parts.KindRete, rete},
		{parts.KindRule, rule},
		{parts.KindClimate, climate},
		{parts.KindCombined, combined},
	}
	for _, item := range order {
		path := base(item.kind)
		if err := item.comp.RenderToFile(ctx, path, format); err != nil {
			return fmt.Errorf("sweep: render %s (%s, lat %d): %w", item.kind, format, latitude, err)
		}
		report.Artifacts = append(report.Artifacts, Artifact{
			Kind:     item.kind,
			Path:     path + renderer.Extension(),
			Format:   format,
			Language: cfg.Language,
			Type:     typ,
			Latitude: latitude,
		})
		d.logger.Debug("rendered part",
			zap.String("kind", item.kind),
			zap.String("format", string(format)),
			zap.Int("latitude", latitude),
			zap.String("language", cfg.Language))
	}

	docPath := filepath.Join(documentsDir, DocumentName(latitude, cfg.Language, typ))
	doc := assembly.Document{
		Language:      cfg.Language,
		LatitudeLabel: cfg.LatitudeLabel(),
		MotherBack:    base(parts.KindMotherBack),
		MotherFront:   base(parts.KindCombined),
		Rule:          base(parts.KindRule),
		Rete:          base(parts.KindRete),
	}
	if err := d.builder.WriteFile(docPath, doc); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	report.Documents = append(report.Documents, DocumentRecord{
		Path:     docPath,
		Format:   format,
		Language: cfg.Language,
		Type:     typ,
		Latitude: latitude,
	})
	return nil
}
