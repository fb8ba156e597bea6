package text

import (
	"errors"
	"testing"
)

func TestTranslateMatchesLocale(t *testing.T) {
	c := NewCatalogue()
	cases := []struct {
		locale, key, want string
	}{
		{"en", "month.1", "JANUARY"},
		{"fr", "month.8", "AOÛT"},
		{"es", "zodiac.10", "CAPRICORNIO"},
		{"fr", "caption.rete", "Araignée"},
		{"de", "month.3", "MÄRZ"},
		{"it", "caption.rule", "Regolo"},
		{"en-GB", "month.1", "JANUARY"},
		{"fr-CA", "label.west", "O"},
		{"de-AT", "label.horizon", "Horizont"},
	}
	for _, tc := range cases {
		got, err := c.Translate(tc.locale, tc.key)
		if err != nil {
			t.Errorf("Translate(%q, %q): %v", tc.locale, tc.key, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Translate(%q, %q) = %q, want %q", tc.locale, tc.key, got, tc.want)
		}
	}
}

func TestTranslateUnknownLocaleFallsBackToEnglish(t *testing.T) {
	c := NewCatalogue()
	got, err := c.Translate("tlh", "month.3")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "MARCH" {
		t.Errorf("fallback = %q, want MARCH", got)
	}
}

func TestTranslateMissingKey(t *testing.T) {
	c := NewCatalogue()
	if _, err := c.Translate("en", "label.nonexistent"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("Translate = %v, want ErrMissingKey", err)
	}
}

func TestLabelerNeverFails(t *testing.T) {
	l := NewLabeler("fr", nil)
	if got := l.Label("label.twilight"); got != "Crépuscule" {
		t.Errorf("Label = %q", got)
	}
	if got := l.Label("no.such.key"); got != "no.such.key" {
		t.Errorf("missing key should echo, got %q", got)
	}
}

func TestCatalogueShipsRecognizedLanguages(t *testing.T) {
	c := NewCatalogue()
	got := map[string]bool{}
	for _, lang := range c.Languages() {
		got[lang] = true
	}
	for _, lang := range []string{"en", "fr", "de", "es", "it"} {
		if !got[lang] {
			t.Errorf("catalogue missing language %q", lang)
		}
	}
}

// Each shipped table must carry the full key set itself; the English
// fallback in Translate would otherwise mask a hole silently.
func TestEveryTableIsComplete(t *testing.T) {
	keys := []string{
		"label.latitude", "label.horizon", "label.twilight",
		"label.east", "label.west",
		"caption.mother_front", "caption.mother_back",
		"caption.rete", "caption.rule", "caption.climate",
		"title.document",
	}
	for m := 1; m <= 12; m++ {
		keys = append(keys, MonthKey(m), ZodiacKey(m))
	}
	for _, lang := range supported {
		table, ok := tables[lang]
		if !ok {
			t.Errorf("no table for supported language %q", lang)
			continue
		}
		for _, key := range keys {
			if v, ok := table[key]; !ok || v == "" {
				t.Errorf("%s: missing %q", lang, key)
			}
		}
	}
}

func TestLanguageSuffix(t *testing.T) {
	cases := []struct{ locale, want string }{
		{"en", ""},
		{"", ""},
		{"fr", "_fr"},
		{"de", "_de"},
		{"it", "_it"},
	}
	for _, tc := range cases {
		if got := LanguageSuffix(tc.locale); got != tc.want {
			t.Errorf("LanguageSuffix(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestMonthAndZodiacKeysCoverTheYear(t *testing.T) {
	c := NewCatalogue()
	for _, lang := range c.Languages() {
		for m := 1; m <= 12; m++ {
			if _, err := c.Translate(lang, MonthKey(m)); err != nil {
				t.Errorf("%s month %d: %v", lang, m, err)
			}
			if _, err := c.Translate(lang, ZodiacKey(m)); err != nil {
				t.Errorf("%s zodiac %d: %v", lang, m, err)
			}
		}
	}
}
