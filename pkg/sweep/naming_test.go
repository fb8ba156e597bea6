package sweep

import (
	"strings"
	"testing"

	"github.com/khaledhosny/astrolabe/pkg/settings"
)

func TestHemisphere(t *testing.T) {
	cases := []struct {
		lat  int
		want string
	}{
		{90, "N"}, {52, "N"}, {1, "N"}, {0, "N"},
		{-1, "S"}, {-33, "S"}, {-90, "S"},
	}
	for _, tc := range cases {
		if got := Hemisphere(tc.lat); got != tc.want {
			t.Errorf("Hemisphere(%d) = %q, want %q", tc.lat, got, tc.want)
		}
	}
}

func TestPartNamePadding(t *testing.T) {
	cases := []struct {
		lat  int
		want string
	}{
		{5, "rete_05N_en_full"},
		{-7, "rete_07S_en_full"},
		{52, "rete_52N_en_full"},
		{-33, "rete_33S_en_full"},
		{90, "rete_90N_en_full"},
	}
	for _, tc := range cases {
		if got := PartName("rete", tc.lat, "en", settings.TypeFull); got != tc.want {
			t.Errorf("PartName(rete, %d) = %q, want %q", tc.lat, got, tc.want)
		}
	}
}

func TestPartNameNeverTruncatesWideMagnitudes(t *testing.T) {
	// Latitudes beyond 99 are not physical, but the format must pass the
	// full magnitude through rather than truncate it.
	got := PartName("rete", 120, "en", settings.TypeFull)
	if !strings.Contains(got, "120N") {
		t.Errorf("PartName(rete, 120) = %q, want the full three-digit magnitude", got)
	}
}

func TestPartNamesAreInjective(t *testing.T) {
	kinds := []string{"mother_front", "mother_back", "rete", "rule", "climate", "mother_front_combi"}
	languages := []string{"en", "fr"}
	types := []settings.InstrumentType{settings.TypeFull, settings.TypeSimplified}
	latitudes := []int{-52, -5, 0, 5, 52}

	seen := map[string]string{}
	for _, kind := range kinds {
		for _, lang := range languages {
			for _, typ := range types {
				for _, lat := range latitudes {
					name := PartName(kind, lat, lang, typ)
					key := DocumentName(lat, lang, typ) + "|" + kind
					if prev, ok := seen[name]; ok && prev != key {
						t.Errorf("name %q produced by both %q and %q", name, prev, key)
					}
					seen[name] = key
				}
			}
		}
	}
}

func TestLatitudeLabel(t *testing.T) {
	if got := LatitudeLabel(52); got != "52°N" {
		t.Errorf("LatitudeLabel(52) = %q", got)
	}
	if got := LatitudeLabel(-33); got != "33°S" {
		t.Errorf("LatitudeLabel(-33) = %q", got)
	}
	if got := LatitudeLabel(0); got != "0°N" {
		t.Errorf("LatitudeLabel(0) = %q", got)
	}
}

func TestDocumentName(t *testing.T) {
	if got := DocumentName(52, "en", settings.TypeFull); got != "astrolabe_52N_en_full.tex" {
		t.Errorf("DocumentName = %q", got)
	}
	if got := DocumentName(-8, "fr", settings.TypeSimplified); got != "astrolabe_08S_fr_simplified.tex" {
		t.Errorf("DocumentName = %q", got)
	}
}

func TestLanguageSuffix(t *testing.T) {
	if got := LanguageSuffix("en"); got != "" {
		t.Errorf("LanguageSuffix(en) = %q, want empty", got)
	}
	if got := LanguageSuffix("fr"); got != "_fr" {
		t.Errorf("LanguageSuffix(fr) = %q", got)
	}
}
