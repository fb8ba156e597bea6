// Package config holds the process-wide sweep configuration: the axes to
// sweep, the output root, and the theme. Defaults mirror the classic
// invocation (latitude 52, full instrument, English, PNG); a YAML file and
// CLI flags layer on top.
package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/khaledhosny/astrolabe/pkg/graphics"
	"github.com/khaledhosny/astrolabe/pkg/settings"
	"github.com/khaledhosny/astrolabe/pkg/sweep"
	"github.com/khaledhosny/astrolabe/pkg/text"
)

// Config is the validated input of one sweep run.
type Config struct {
	Languages []string `yaml:"languages"`
	Types     []string `yaml:"types"`
	Latitudes []int    `yaml:"latitudes"`
	Formats   []string `yaml:"formats"`
	Theme     string   `yaml:"theme"`
	OutputDir string   `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Languages: []string{"en"},
		Types:     []string{string(settings.TypeFull)},
		Latitudes: []int{52},
		Formats:   []string{string(graphics.FormatPNG)},
		Theme:     string(settings.ThemeDefault),
		OutputDir: "output",
	}
}

// Load reads a YAML configuration file over the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ValidationError collects every invalid field in one error, so a caller
// sees the whole problem at once instead of fixing fields one by one.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Validate checks every axis against the recognized sets before any
// iteration runs. Languages are restricted to the locales the engraving
// catalogue ships tables for.
func (c Config) Validate() error {
	var invalid []string

	known := text.NewCatalogue().Languages()
	tags := make([]language.Tag, 0, len(known))
	for _, code := range known {
		tags = append(tags, language.MustParse(code))
	}
	matcher := language.NewMatcher(tags)
	if len(c.Languages) == 0 {
		invalid = append(invalid, "languages")
	}
	for _, lang := range c.Languages {
		tag, err := language.Parse(lang)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("languages[%q]", lang))
			continue
		}
		// Regional variants of a supported language are accepted; the
		// engraving catalogue matches them at lookup time.
		if _, _, conf := matcher.Match(tag); conf < language.High {
			invalid = append(invalid, fmt.Sprintf("languages[%q]", lang))
		}
	}

	if len(c.Types) == 0 {
		invalid = append(invalid, "types")
	}
	for _, typ := range c.Types {
		if _, err := settings.ParseType(typ); err != nil {
			invalid = append(invalid, fmt.Sprintf("types[%q]", typ))
		}
	}

	if len(c.Latitudes) == 0 {
		invalid = append(invalid, "latitudes")
	}
	for _, lat := range c.Latitudes {
		if lat < -90 || lat > 90 {
			invalid = append(invalid, fmt.Sprintf("latitudes[%d]", lat))
		}
	}

	if len(c.Formats) == 0 {
		invalid = append(invalid, "formats")
	}
	for _, format := range c.Formats {
		if _, err := graphics.ParseFormat(format); err != nil {
			invalid = append(invalid, fmt.Sprintf("formats[%q]", format))
		}
	}

	if _, err := settings.ParseTheme(c.Theme); err != nil {
		invalid = append(invalid, fmt.Sprintf("theme[%q]", c.Theme))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		invalid = append(invalid, "output_dir")
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// Axes converts a validated configuration into sweep axes. Call Validate
// first; Axes assumes every field parses.
func (c Config) Axes() sweep.Axes {
	axes := sweep.Axes{
		Languages: make([]string, 0, len(c.Languages)),
		Types:     make([]settings.InstrumentType, 0, len(c.Types)),
		Latitudes: append([]int(nil), c.Latitudes...),
		Formats:   make([]graphics.Format, 0, len(c.Formats)),
		Theme:     settings.Theme(c.Theme),
		OutputDir: c.OutputDir,
	}
	for _, lang := range c.Languages {
		if tag, err := language.Parse(lang); err == nil {
			axes.Languages = append(axes.Languages, tag.String())
		}
	}
	for _, typ := range c.Types {
		axes.Types = append(axes.Types, settings.InstrumentType(typ))
	}
	for _, format := range c.Formats {
		axes.Formats = append(axes.Formats, graphics.Format(format))
	}
	return axes
}
