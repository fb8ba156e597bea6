// Package settings defines the per-instrument parameter set shared by every
// part built during one sweep iteration. A Settings value is constructed at
// the start of an iteration, validated once, and treated as immutable from
// then on.
package settings

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/khaledhosny/astrolabe/pkg/text"
)

// InstrumentType selects how much detail the parts carry.
type InstrumentType string

const (
	// TypeFull engraves the complete instrument: azimuth grid, unequal
	// hours, twilight lines and the full back.
	TypeFull InstrumentType = "full"
	// TypeSimplified keeps only the features a classroom model needs.
	TypeSimplified InstrumentType = "simplified"
)

// Theme names a colour palette for rendering.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
)

var (
	ErrUnknownType     = errors.New("settings: unknown instrument type")
	ErrUnknownTheme    = errors.New("settings: unknown theme")
	ErrLatitudeRange   = errors.New("settings: latitude out of range [-90, 90]")
	ErrUnknownLanguage = errors.New("settings: unparseable language tag")
)

// Settings carries everything a part needs to know about the instrument it
// belongs to.
type Settings struct {
	// Language is the canonicalized BCP 47 tag of the engraved text.
	Language string
	// Type selects full or simplified engraving.
	Type InstrumentType
	// Latitude is the design latitude in whole degrees, negative south.
	Latitude int
	// Theme names the colour palette.
	Theme Theme
}

// Option adjusts optional fields during construction.
type Option func(*Settings)

// WithTheme selects a colour palette other than the default.
func WithTheme(theme Theme) Option {
	return func(s *Settings) { s.Theme = theme }
}

// New builds and validates a Settings value. The language tag is
// canonicalized, so "en_US" and "en-us" produce the same Settings.
func New(lang string, typ InstrumentType, latitude int, opts ...Option) (Settings, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	s := Settings{
		Language: tag.String(),
		Type:     typ,
		Latitude: latitude,
		Theme:    ThemeDefault,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch s.Type {
	case TypeFull, TypeSimplified:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
	switch s.Theme {
	case ThemeDefault, ThemeDark:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, s.Theme)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("%w: %d", ErrLatitudeRange, s.Latitude)
	}
	return nil
}

// Southern reports whether the instrument is designed for the southern
// hemisphere. Latitude zero counts as northern.
func (s Settings) Southern() bool { return s.Latitude < 0 }

// AbsLatitude returns the magnitude of the design latitude.
func (s Settings) AbsLatitude() int {
	if s.Latitude < 0 {
		return -s.Latitude
	}
	return s.Latitude
}

// Hemisphere returns "N" or "S".
func (s Settings) Hemisphere() string {
	if s.Southern() {
		return "S"
	}
	return "N"
}

// LatitudeLabel renders the human-readable latitude, e.g. "52°N".
func (s Settings) LatitudeLabel() string {
	return fmt.Sprintf("%d°%s", s.AbsLatitude(), s.Hemisphere())
}

// LanguageSuffix returns the filename suffix for localized artifacts: empty
// for English, "_xx" otherwise (the rule is text.LanguageSuffix).
func (s Settings) LanguageSuffix() string {
	return text.LanguageSuffix(s.Language)
}

// ParseType validates an instrument type name.
func ParseType(name string) (InstrumentType, error) {
	t := InstrumentType(name)
	switch t {
	case TypeFull, TypeSimplified:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	t := Theme(name)
	switch t {
	case ThemeDefault, ThemeDark:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Types lists the valid instrument type names.
func Types() []InstrumentType { return []InstrumentType{TypeFull, TypeSimplified} }

// Themes lists the valid theme names.
func Themes() []Theme { return []Theme{ThemeDefault, ThemeDark} }
