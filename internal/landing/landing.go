// Package landing renders the site's landing page: the splash hero followed by
// the optional content sections enabled in the site configuration.
//
// Rendering is a pure function of the configuration and the language; calling
// Render twice with the same inputs yields identical trees.
package landing

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"finitefield.org/docs-landing/internal/layout"
	"finitefield.org/docs-landing/internal/siteconfig"
)

// Translator looks up a localized string. Unknown keys are returned unchanged.
type Translator interface {
	T(lang, key string) string
}

type identity struct{}

func (identity) T(_, key string) string { return key }

// Page renders the landing and pioneers pages for one site configuration.
type Page struct {
	cfg *siteconfig.Config
	tr  Translator
	md  layout.Markdown
}

// New wires a Page. A nil translator leaves strings untranslated.
func New(cfg *siteconfig.Config, tr Translator, md layout.Markdown) *Page {
	if tr == nil {
		tr = identity{}
	}
	return &Page{cfg: cfg, tr: tr, md: md}
}

// Render builds the landing page for lang. An empty lang renders the default
// locale without a language segment in internal links.
func (p *Page) Render(lang string) (*html.Node, error) {
	main := layout.Element("div", layout.Attrs("class", "mainContainer"))
	for _, id := range p.cfg.Landing.Sections {
		build, ok := sections[id]
		if !ok {
			continue
		}
		n, err := build(p, lang)
		if err != nil {
			return nil, fmt.Errorf("landing: section %s: %w", id, err)
		}
		layout.Append(main, n)
	}
	return layout.Element("div", nil, p.splash(lang), main), nil
}

// Component exposes the landing page as a templ component.
func (p *Page) Component(lang string) templ.Component {
	return component(func() (*html.Node, error) { return p.Render(lang) })
}

// PioneersComponent exposes the pioneers page as a templ component.
func (p *Page) PioneersComponent(lang string) templ.Component {
	return component(func() (*html.Node, error) { return p.RenderPioneers(lang) })
}

func component(build func() (*html.Node, error)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		n, err := build()
		if err != nil {
			return err
		}
		return layout.Render(w, n)
	})
}

func (p *Page) t(lang, key string) string {
	return p.tr.T(lang, key)
}
