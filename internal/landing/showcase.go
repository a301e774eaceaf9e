package landing

import (
	"golang.org/x/net/html"

	"finitefield.org/docs-landing/internal/layout"
	"finitefield.org/docs-landing/internal/siteconfig"
	"finitefield.org/docs-landing/internal/siteurl"
)

const pioneersPage = "pioneers.html"

// showcase renders the pinned pioneers. It renders nothing, not even the
// section wrapper, when there are no pioneers or none of them is pinned.
func (p *Page) showcase(lang string) (*html.Node, error) {
	if len(p.cfg.Pioneers) == 0 {
		return nil, nil
	}
	pinned := p.cfg.PinnedPioneers()
	if len(pinned) == 0 {
		return nil, nil
	}

	return layout.Element("div", layout.Attrs("class", "productShowcaseSection paddingTop"),
		layout.Element("h2", nil, layout.Text(p.t(lang, "Who inspires us?"))),
		layout.Element("p", nil, layout.Text(p.t(lang, "Thank you for leading!"))),
		pioneerLogos(pinned),
		layout.Element("div", layout.Attrs("class", "more-users"),
			layout.Element("a", layout.Attrs("class", "button", "href", siteurl.Page(p.cfg.BaseURL, lang, pioneersPage)),
				layout.Text(p.t(lang, "More About Pioneers")),
			),
		),
	), nil
}

// RenderPioneers builds the page listing every pioneer, pinned or not.
func (p *Page) RenderPioneers(lang string) (*html.Node, error) {
	var body *html.Node
	if len(p.cfg.Pioneers) == 0 {
		body = layout.Element("p", layout.Attrs("class", "emptyShowcase"), layout.Text(p.t(lang, "No pioneers yet.")))
	} else {
		body = pioneerLogos(p.cfg.Pioneers)
	}

	return layout.Element("div", layout.Attrs("class", "mainContainer"),
		layout.Element("div", layout.Attrs("class", "wrapper"),
			layout.Element("div", layout.Attrs("class", "showcaseSection"),
				layout.Element("div", layout.Attrs("class", "prose"),
					layout.Element("h1", nil, layout.Text(p.t(lang, "Who inspires us?"))),
					layout.Element("p", nil, layout.Text(p.t(lang, "This project is led by these pioneers"))),
				),
				body,
				layout.Element("div", layout.Attrs("class", "more-users"),
					layout.Element("a", layout.Attrs("class", "button", "href", siteurl.Page(p.cfg.BaseURL, lang, "")),
						layout.Text(p.t(lang, "Back to Home")),
					),
				),
			),
		),
	), nil
}

func pioneerLogos(list []siteconfig.Pioneer) *html.Node {
	logos := layout.Element("div", layout.Attrs("class", "logos"))
	for _, pi := range list {
		logos.AppendChild(layout.Element("a", layout.Attrs("href", pi.InfoLink),
			layout.Element("img", layout.Attrs("src", pi.Image, "alt", pi.Caption, "title", pi.Caption)),
		))
	}
	return logos
}
