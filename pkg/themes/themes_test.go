package themes

import (
	"image/color"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/khaledhosny/astrolabe/pkg/settings"
)

func selectionOf(m *theme.Manifest) theme.Selection {
	return theme.Selection{Theme: m.Name, Manifest: m}
}

func selectionWithVariant(v string) theme.Selection {
	m := Manifest()
	return theme.Selection{Theme: m.Name, Variant: v, Manifest: m}
}

func TestResolveDefault(t *testing.T) {
	p, err := Resolve(settings.ThemeDefault)
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	if p.Name != "astrolabe" {
		t.Errorf("palette name = %q", p.Name)
	}
	if got, want := p.Paper, (color.RGBA{0xff, 0xff, 0xff, 0xff}); got != want {
		t.Errorf("paper = %v, want %v", got, want)
	}
	if p.Ink == p.Paper {
		t.Error("ink and paper must differ")
	}
}

func TestResolveDarkOverrides(t *testing.T) {
	p, err := Resolve(settings.ThemeDark)
	if err != nil {
		t.Fatalf("Resolve(dark): %v", err)
	}
	if p.Name != "astrolabe/dark" {
		t.Errorf("palette name = %q", p.Name)
	}
	base, err := Resolve(settings.ThemeDefault)
	if err != nil {
		t.Fatalf("Resolve(default): %v", err)
	}
	if p.Paper == base.Paper {
		t.Error("dark variant should override the paper colour")
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve(settings.Theme("sepia")); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestPaletteFromRejectsBadSelections(t *testing.T) {
	if _, err := PaletteFrom(selectionWithVariant("nocturne")); err == nil {
		t.Error("unknown variant should be rejected")
	}
	m := Manifest()
	delete(m.Tokens, "color.ink")
	if _, err := PaletteFrom(selectionOf(m)); err == nil {
		t.Error("missing token should be rejected")
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#b3322e", color.RGBA{0xb3, 0x32, 0x2e, 0xff}, false},
		{"#FFFFFF", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"b3322e", color.RGBA{}, true},
		{"#b3322", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) accepted malformed input", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseHex(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := color.RGBA{0x14, 0x18, 0x1c, 0xff}
	got, err := ParseHex(Hex(c))
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}
