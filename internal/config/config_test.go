package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateCollectsEveryInvalidField(t *testing.T) {
	cfg := Config{
		Languages: []string{"xx"},
		Types:     []string{"ornate"},
		Latitudes: []int{95},
		Formats:   []string{"tiff"},
		Theme:     "sepia",
		OutputDir: " ",
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *ValidationError", err)
	}
	if got := len(verr.Fields()); got != 6 {
		t.Errorf("collected %d invalid fields (%v), want 6", got, verr.Fields())
	}
}

func TestValidateAcceptsEveryCatalogueLanguage(t *testing.T) {
	cfg := Default()
	cfg.Languages = []string{"en", "fr", "de", "es", "it"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("every catalogue language should validate: %v", err)
	}
}

func TestValidateCanonicalizesLanguageTags(t *testing.T) {
	cfg := Default()
	cfg.Languages = []string{"en-GB", "FR"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("regional variants of supported languages should validate: %v", err)
	}
	axes := cfg.Axes()
	want := []string{"en-GB", "fr"}
	if diff := cmp.Diff(want, axes.Languages); diff != "" {
		t.Errorf("Axes languages mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateRejectsEmptyAxes(t *testing.T) {
	cfg := Config{Theme: "default", OutputDir: "out"}
	err := cfg.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *ValidationError", err)
	}
	if got := len(verr.Fields()); got != 4 {
		t.Errorf("collected %d invalid fields (%v), want 4", got, verr.Fields())
	}
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	body := "latitudes: [48, -33]\nformats: [svg, pdf]\ntheme: dark\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{48, -33}, cfg.Latitudes); diff != "" {
		t.Errorf("latitudes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"svg", "pdf"}, cfg.Formats); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.Theme)
	}
	// Untouched fields keep their defaults.
	if diff := cmp.Diff([]string{"en"}, cfg.Languages); diff != "" {
		t.Errorf("languages (-want +got):\n%s", diff)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("output dir = %q, want output", cfg.OutputDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loading a missing file should fail")
	}
}

func TestAxesConversion(t *testing.T) {
	cfg := Default()
	axes := cfg.Axes()
	if axes.OutputDir != "output" || len(axes.Formats) != 1 || string(axes.Formats[0]) != "png" {
		t.Errorf("unexpected axes: %+v", axes)
	}
	if string(axes.Theme) != "default" {
		t.Errorf("theme = %q", axes.Theme)
	}
}
