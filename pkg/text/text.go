// Package text supplies the localized strings engraved on the instrument:
// month names, zodiac signs, axis letters and the captions used by the
// assembly document. Lookup is best-effort with an English fallback, since a
// missing translation should degrade the engraving, never abort a sweep.
package text

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Translator resolves a key for a locale.
type Translator interface {
	Translate(locale, key string) (string, error)
}

// ErrMissingKey reports a key absent from every table consulted.
var ErrMissingKey = errors.New("text: missing key")

// MonthKey returns the catalogue key for month m in 1..12.
func MonthKey(m int) string { return fmt.Sprintf("month.%d", m) }

// ZodiacKey returns the catalogue key for sign z in 1..12, counted from
// Aries at the March equinox.
func ZodiacKey(z int) string { return fmt.Sprintf("zodiac.%d", z) }

// Catalogue is the built-in translator. The zero value is not usable; call
// NewCatalogue.
type Catalogue struct {
	matcher language.Matcher
	tags    []language.Tag
	tables  map[string]map[string]string
}

// NewCatalogue returns the built-in string tables.
func NewCatalogue() *Catalogue {
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tags = append(tags, language.MustParse(code))
	}
	return &Catalogue{
		matcher: language.NewMatcher(tags),
		tags:    tags,
		tables:  tables,
	}
}

// Languages lists the locales the catalogue ships tables for.
func (c *Catalogue) Languages() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Translate resolves key for the closest supported locale. Unknown locales
// fall back to English; keys missing from the matched table fall back to the
// English table before failing.
func (c *Catalogue) Translate(locale, key string) (string, error) {
	table := c.tableFor(locale)
	if v, ok := table[key]; ok {
		return v, nil
	}
	if v, ok := c.tables["en"]; ok {
		if s, ok := v[key]; ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q for locale %q", ErrMissingKey, key, locale)
}

func (c *Catalogue) tableFor(locale string) map[string]string {
	tag, err := language.Parse(locale)
	if err != nil {
		return c.tables["en"]
	}
	_, idx, _ := c.matcher.Match(tag)
	return c.tables[supported[idx]]
}

// Labeler binds a translator to one locale. Its Label method never fails:
// unresolvable keys come back verbatim, matching how a physical engraver
// would leave an unknown slot blank rather than stop the press.
type Labeler struct {
	locale string
	t      Translator
}

// NewLabeler builds a Labeler for the locale. A nil translator falls back to
// the built-in catalogue.
func NewLabeler(locale string, t Translator) Labeler {
	if t == nil {
		t = NewCatalogue()
	}
	return Labeler{locale: locale, t: t}
}

// Locale returns the bound locale.
func (l Labeler) Locale() string { return l.locale }

// Label resolves key, returning the key itself when no table has it.
func (l Labeler) Label(key string) string {
	out, err := l.t.Translate(l.locale, key)
	if err != nil || strings.TrimSpace(out) == "" {
		return key
	}
	return out
}

// LanguageSuffix collapses the default language to an empty suffix; other
// languages become "_{lang}". It is the one owner of the suffix rule used
// for localized artifact and template names.
func LanguageSuffix(locale string) string {
	if locale == "" || locale == "en" {
		return ""
	}
	return "_" + locale
}

var supported = []string{"en", "fr", "de", "es", "it"}

var tables = map[string]map[string]string{
	"en": {
		"month.1": "JANUARY", "month.2": "FEBRUARY", "month.3": "MARCH",
		"month.4": "APRIL", "month.5": "MAY", "month.6": "JUNE",
		"month.7": "JULY", "month.8": "AUGUST", "month.9": "SEPTEMBER",
		"month.10": "OCTOBER", "month.11": "NOVEMBER", "month.12": "DECEMBER",

		"zodiac.1": "ARIES", "zodiac.2": "TAURUS", "zodiac.3": "GEMINI",
		"zodiac.4": "CANCER", "zodiac.5": "LEO", "zodiac.6": "VIRGO",
		"zodiac.7": "LIBRA", "zodiac.8": "SCORPIO", "zodiac.9": "SAGITTARIUS",
		"zodiac.10": "CAPRICORNUS", "zodiac.11": "AQUARIUS", "zodiac.12": "PISCES",

		"label.latitude": "Latitude",
		"label.horizon":  "Horizon",
		"label.twilight": "Twilight",
		"label.east":     "E",
		"label.west":     "W",

		"caption.mother_front": "Mother (front)",
		"caption.mother_back":  "Mother (back)",
		"caption.rete":         "Rete",
		"caption.rule":         "Rule",
		"caption.climate":      "Climate",

		"title.document": "Make your own cardboard astrolabe",
	},
	"fr": {
		"month.1": "JANVIER", "month.2": "FÉVRIER", "month.3": "MARS",
		"month.4": "AVRIL", "month.5": "MAI", "month.6": "JUIN",
		"month.7": "JUILLET", "month.8": "AOÛT", "month.9": "SEPTEMBRE",
		"month.10": "OCTOBRE", "month.11": "NOVEMBRE", "month.12": "DÉCEMBRE",

		"zodiac.1": "BÉLIER", "zodiac.2": "TAUREAU", "zodiac.3": "GÉMEAUX",
		"zodiac.4": "CANCER", "zodiac.5": "LION", "zodiac.6": "VIERGE",
		"zodiac.7": "BALANCE", "zodiac.8": "SCORPION", "zodiac.9": "SAGITTAIRE",
		"zodiac.10": "CAPRICORNE", "zodiac.11": "VERSEAU", "zodiac.12": "POISSONS",

		"label.latitude": "Latitude",
		"label.horizon":  "Horizon",
		"label.twilight": "Crépuscule",
		"label.east":     "E",
		"label.west":     "O",

		"caption.mother_front": "Mère (avant)",
		"caption.mother_back":  "Mère (arrière)",
		"caption.rete":         "Araignée",
		"caption.rule":         "Règle",
		"caption.climate":      "Tympan",

		"title.document": "Fabriquez votre astrolabe en carton",
	},
	"de": {
		"month.1": "JANUAR", "month.2": "FEBRUAR", "month.3": "MÄRZ",
		"month.4": "APRIL", "month.5": "MAI", "month.6": "JUNI",
		"month.7": "JULI", "month.8": "AUGUST", "month.9": "SEPTEMBER",
		"month.10": "OKTOBER", "month.11": "NOVEMBER", "month.12": "DEZEMBER",

		"zodiac.1": "WIDDER", "zodiac.2": "STIER", "zodiac.3": "ZWILLINGE",
		"zodiac.4": "KREBS", "zodiac.5": "LÖWE", "zodiac.6": "JUNGFRAU",
		"zodiac.7": "WAAGE", "zodiac.8": "SKORPION", "zodiac.9": "SCHÜTZE",
		"zodiac.10": "STEINBOCK", "zodiac.11": "WASSERMANN", "zodiac.12": "FISCHE",

		"label.latitude": "Breitengrad",
		"label.horizon":  "Horizont",
		"label.twilight": "Dämmerung",
		"label.east":     "O",
		"label.west":     "W",

		"caption.mother_front": "Mutter (Vorderseite)",
		"caption.mother_back":  "Mutter (Rückseite)",
		"caption.rete":         "Spinne",
		"caption.rule":         "Lineal",
		"caption.climate":      "Tympanon",

		"title.document": "Bau dein eigenes Astrolabium aus Karton",
	},
	"es": {
		"month.1": "ENERO", "month.2": "FEBRERO", "month.3": "MARZO",
		"month.4": "ABRIL", "month.5": "MAYO", "month.6": "JUNIO",
		"month.7": "JULIO", "month.8": "AGOSTO", "month.9": "SEPTIEMBRE",
		"month.10": "OCTUBRE", "month.11": "NOVIEMBRE", "month.12": "DICIEMBRE",

		"zodiac.1": "ARIES", "zodiac.2": "TAURO", "zodiac.3": "GÉMINIS",
		"zodiac.4": "CÁNCER", "zodiac.5": "LEO", "zodiac.6": "VIRGO",
		"zodiac.7": "LIBRA", "zodiac.8": "ESCORPIO", "zodiac.9": "SAGITARIO",
		"zodiac.10": "CAPRICORNIO", "zodiac.11": "ACUARIO", "zodiac.12": "PISCIS",

		"label.latitude": "Latitud",
		"label.horizon":  "Horizonte",
		"label.twilight": "Crepúsculo",
		"label.east":     "E",
		"label.west":     "O",

		"caption.mother_front": "Madre (anverso)",
		"caption.mother_back":  "Madre (reverso)",
		"caption.rete":         "Araña",
		"caption.rule":         "Regla",
		"caption.climate":      "Lámina",

		"title.document": "Construye tu propio astrolabio de cartón",
	},
	"it": {
		"month.1": "GENNAIO", "month.2": "FEBBRAIO", "month.3": "MARZO",
		"month.4": "APRILE", "month.5": "MAGGIO", "month.6": "GIUGNO",
		"month.7": "LUGLIO", "month.8": "AGOSTO", "month.9": "SETTEMBRE",
		"month.10": "OTTOBRE", "month.11": "NOVEMBRE", "month.12": "DICEMBRE",

		"zodiac.1": "ARIETE", "zodiac.2": "TORO", "zodiac.3": "GEMELLI",
		"zodiac.4": "CANCRO", "zodiac.5": "LEONE", "zodiac.6": "VERGINE",
		"zodiac.7": "BILANCIA", "zodiac.8": "SCORPIONE", "zodiac.9": "SAGITTARIO",
		"zodiac.10": "CAPRICORNO", "zodiac.11": "ACQUARIO", "zodiac.12": "PESCI",

		"label.latitude": "Latitudine",
		"label.horizon":  "Orizzonte",
		"label.twilight": "Crepuscolo",
		"label.east":     "E",
		"label.west":     "O",

		"caption.mother_front": "Madre (fronte)",
		"caption.mother_back":  "Madre (retro)",
		"caption.rete":         "Ragno",
		"caption.rule":         "Regolo",
		"caption.climate":      "Timpano",

		"title.document": "Costruisci il tuo astrolabio di cartone",
	},
}
