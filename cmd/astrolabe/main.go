// Command astrolabe renders the parts of a model astrolabe and the
// documents describing how to assemble them, over a sweep of latitudes,
// languages, instrument types and image formats.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/khaledhosny/astrolabe"
	"github.com/khaledhosny/astrolabe/internal/config"
	"github.com/khaledhosny/astrolabe/pkg/sweep"
)

func main() {
	latitudes := flag.String("latitudes", "", "comma-separated latitudes in degrees, negative south (default 52)")
	types := flag.String("types", "", "comma-separated instrument types: full, simplified (default full)")
	languages := flag.String("languages", "", "comma-separated languages (default en)")
	formats := flag.String("formats", "", "comma-separated output formats: png, svg, pdf (default png)")
	outputDir := flag.String("output-dir", "", "output root directory (default output)")
	theme := flag.String("theme", "", "color theme: default, dark")
	configPath := flag.String("config", "", "optional YAML configuration file")
	interactive := flag.Bool("interactive", false, "pick the sweep axes interactively")
	verbose := flag.Bool("verbose", false, "log progress at debug level to the console")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astrolabe: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("load configuration", zap.Error(err))
		}
	}
	if err := applyFlags(&cfg, *latitudes, *types, *languages, *formats, *outputDir, *theme); err != nil {
		logger.Fatal("parse flags", zap.Error(err))
	}
	if *interactive {
		if err := promptAxes(&cfg); err != nil {
			logger.Fatal("interactive setup", zap.Error(err))
		}
	}

	if err := cfg.Validate(); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			logger.Fatal("invalid configuration", zap.Strings("fields", verr.Fields()))
		}
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := astrolabe.Generate(ctx, cfg.Axes(), sweep.WithLogger(logger))
	if err != nil {
		logger.Fatal("sweep failed", zap.Error(err))
	}
	logger.Info("done",
		zap.Int("parts", len(report.Artifacts)),
		zap.Int("documents", len(report.Documents)))
}

// applyFlags overlays any non-empty flag values onto cfg.
func applyFlags(cfg *config.Config, latitudes, types, languages, formats, outputDir, theme string) error {
	if latitudes != "" {
		vals, err := parseInts(latitudes)
		if err != nil {
			return fmt.Errorf("latitudes: %w", err)
		}
		cfg.Latitudes = vals
	}
	if types != "" {
		cfg.Types = splitList(types)
	}
	if languages != "" {
		cfg.Languages = splitList(languages)
	}
	if formats != "" {
		cfg.Formats = splitList(formats)
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if theme != "" {
		cfg.Theme = theme
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseInts(raw string) ([]int, error) {
	fields := splitList(raw)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// newLogger builds a structured JSON logger, or a console logger at debug
// level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:  "message",
		TimeKey:     "timestamp",
		LevelKey:    "severity",
		EncodeTime:  zapcore.RFC3339TimeEncoder,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
