// Package astrolabe generates the printable parts of a paper astrolabe for
// arbitrary observing latitudes, in several languages, instrument variants
// and image formats, together with a typeset document describing how to
// assemble the finished instrument.
//
// The root package is a thin façade over the pipeline packages: pkg/sweep
// drives the parameter sweep, pkg/parts draws the individual components,
// pkg/graphics holds the format backends and pkg/assembly produces the
// document. Most callers only need Generate:
//
//	report, err := astrolabe.Generate(ctx, astrolabe.Axes{
//		Languages: []string{"en"},
//		Types:     []settings.InstrumentType{settings.TypeFull},
//		Latitudes: []int{52},
//		Formats:   []graphics.Format{graphics.FormatPNG},
//		OutputDir: "output",
//	})
package astrolabe

import (
	"context"

	"github.com/khaledhosny/astrolabe/pkg/sweep"
)

// Axes re-exports the sweep dimensions.
type Axes = sweep.Axes

// Report re-exports the sweep output record.
type Report = sweep.Report

// Option re-exports driver options (WithGraphics, WithAssembly,
// WithLogger).
type Option = sweep.Option

// Generate runs one full sweep over the given axes and returns the record
// of everything written. The first failure aborts the remaining sweep.
func Generate(ctx context.Context, axes Axes, opts ...Option) (*Report, error) {
	driver, err := sweep.New(opts...)
	if err != nil {
		return nil, err
	}
	return driver.Run(ctx, axes)
}
