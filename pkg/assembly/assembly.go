// Package assembly produces the typeset document that explains how to build
// one finished instrument from its rendered parts. The document is a LaTeX
// source file generated from a pongo2 template with the artifact paths and
// a latitude label substituted in.
package assembly

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"github.com/khaledhosny/astrolabe/pkg/text"
)

//go:embed templates/*.tex.tpl
var builtinTemplates embed.FS

const baseTemplate = "astrolabe.tex.tpl"

// Document carries everything one assembly document needs: the
// human-readable latitude and the absolute, extension-less base paths of
// the four parts the reader has to cut out.
type Document struct {
	Language      string
	LatitudeLabel string
	MotherBack    string
	MotherFront   string
	Rule          string
	Rete          string
}

// Builder renders assembly documents. The zero value is not usable; call
// New.
type Builder struct {
	fsys       fs.FS
	set        *pongo2.TemplateSet
	translator text.Translator
}

// Option adjusts builder construction.
type Option func(*Builder)

// WithTemplates loads templates from fsys instead of the embedded set. The
// base template astrolabe.tex.tpl must exist; localized variants named
// astrolabe_{lang}.tex.tpl are picked up when present.
func WithTemplates(fsys fs.FS) Option {
	return func(b *Builder) {
		if fsys != nil {
			b.fsys = fsys
		}
	}
}

// WithTranslator overrides the string catalogue used for document captions.
func WithTranslator(t text.Translator) Option {
	return func(b *Builder) { b.translator = t }
}

// New builds a Builder over the embedded templates. A missing or
// syntactically broken base template is a configuration error.
func New(opts ...Option) (*Builder, error) {
	sub, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("assembly: embedded templates: %w", err)
	}
	b := &Builder{fsys: sub}
	for _, opt := range opts {
		opt(b)
	}
	if b.translator == nil {
		b.translator = text.NewCatalogue()
	}
	b.set = pongo2.NewSet("assembly", pongo2.NewFSLoader(b.fsys))
	if _, err := fs.Stat(b.fsys, baseTemplate); err != nil {
		return nil, fmt.Errorf("assembly: base template %s: %w", baseTemplate, err)
	}
	return b, nil
}

// Build renders the document source for doc. The template is the localized
// variant for doc.Language when one exists, the base template otherwise.
func (b *Builder) Build(doc Document) (string, error) {
	if err := doc.validate(); err != nil {
		return "", err
	}
	tmpl, err := b.set.FromFile(b.templateName(doc.Language))
	if err != nil {
		return "", fmt.Errorf("assembly: load template: %w", err)
	}
	labels := text.NewLabeler(doc.Language, b.translator)
	out, err := tmpl.Execute(pongo2.Context{
		"title":                labels.Label("title.document"),
		"latitude_caption":     labels.Label("label.latitude"),
		"latitude":             doc.LatitudeLabel,
		"mother_back":          doc.MotherBack,
		"mother_front":         doc.MotherFront,
		"rule":                 doc.Rule,
		"rete":                 doc.Rete,
		"caption_mother_back":  labels.Label("caption.mother_back"),
		"caption_mother_front": labels.Label("caption.mother_front"),
		"caption_rete":         labels.Label("caption.rete"),
		"caption_rule":         labels.Label("caption.rule"),
	})
	if err != nil {
		return "", fmt.Errorf("assembly: execute template: %w", err)
	}
	return out, nil
}

// WriteFile renders doc and writes it to path, creating parent directories
// as needed.
func (b *Builder) WriteFile(path string, doc Document) error {
	out, err := b.Build(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("assembly: write %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("assembly: write %s: %w", path, err)
	}
	return nil
}

// templateName returns the localized template filename when the variant
// exists, otherwise the base name. The suffix rule is text.LanguageSuffix,
// so English always uses the base template.
func (b *Builder) templateName(lang string) string {
	suffix := text.LanguageSuffix(lang)
	if suffix == "" {
		return baseTemplate
	}
	localized := fmt.Sprintf("astrolabe%s.tex.tpl", suffix)
	if _, err := fs.Stat(b.fsys, localized); err == nil {
		return localized
	}
	return baseTemplate
}

func (d Document) validate() error {
	missing := ""
	switch {
	case d.LatitudeLabel == "":
		missing = "latitude label"
	case d.MotherBack == "":
		missing = "mother back path"
	case d.MotherFront == "":
		missing = "mother front path"
	case d.Rule == "":
		missing = "rule path"
	case d.Rete == "":
		missing = "rete path"
	}
	if missing != "" {
		return fmt.Errorf("assembly: document missing %s", missing)
	}
	return nil
}
