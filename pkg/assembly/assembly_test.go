package assembly

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func sampleDoc() Document {
	return Document{
		Language:      "en",
		LatitudeLabel: "52°N",
		MotherBack:    "/out/astrolabe_parts/mother_back_52N_en_full",
		MotherFront:   "/out/astrolabe_parts/mother_front_combi_52N_en_full",
		Rule:          "/out/astrolabe_parts/rule_52N_en_full",
		Rete:          "/out/astrolabe_parts/rete_52N_en_full",
	}
}

func TestBuildSubstitutesEverything(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := sampleDoc()
	out, err := b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		doc.LatitudeLabel,
		doc.MotherBack,
		doc.MotherFront,
		doc.Rule,
		doc.Rete,
		"Make your own cardboard astrolabe",
		`\begin{document}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(out, "{{") {
		t.Error("document contains unexpanded placeholders")
	}
}

func TestBuildLocalizesCaptions(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := sampleDoc()
	doc.Language = "fr"
	out, err := b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Fabriquez votre astrolabe en carton") {
		t.Error("french document should carry the french title")
	}
	if !strings.Contains(out, "Araignée") {
		t.Error("french document should carry the french rete caption")
	}

	doc.Language = "de"
	out, err = b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Bau dein eigenes Astrolabium aus Karton") {
		t.Error("german document should carry the german title")
	}
	doc.Language = "it"
	out, err = b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Costruisci il tuo astrolabio di cartone") {
		t.Error("italian document should carry the italian title")
	}
}

func TestBuildRejectsIncompleteDocument(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := sampleDoc()
	doc.Rete = ""
	if _, err := b.Build(doc); err == nil {
		t.Fatal("document with missing path should fail")
	}
}

func TestWriteFile(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "astrolabes", "astrolabe_52N_full.tex")
	if err := b.WriteFile(path, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "52°N") {
		t.Error("written document missing latitude label")
	}
}

func TestLocalizedTemplateVariantIsPreferred(t *testing.T) {
	fsys := fstest.MapFS{
		"astrolabe.tex.tpl":    {Data: []byte("base {{ latitude }}")},
		"astrolabe_fr.tex.tpl": {Data: []byte("variante {{ latitude }}")},
	}
	b, err := New(WithTemplates(fsys))
	if err != nil {
		t.Fatal(err)
	}
	doc := sampleDoc()
	doc.Language = "fr"
	out, err := b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "variante") {
		t.Errorf("got %q, want the localized variant", out)
	}

	doc.Language = "es"
	out, err = b.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "base") {
		t.Errorf("got %q, want fallback to the base template", out)
	}
}

func TestNewFailsWithoutBaseTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"other.tex.tpl": {Data: []byte("irrelevant")},
	}
	if _, err := New(WithTemplates(fsys)); err == nil {
		t.Fatal("builder without a base template should fail to construct")
	}
}
