package landing

import (
	"golang.org/x/net/html"

	"finitefield.org/docs-landing/internal/layout"
	"finitefield.org/docs-landing/internal/siteurl"
)

const splashLogo = "img/undraw_monitor.svg"

func (p *Page) splash(lang string) *html.Node {
	cfg := p.cfg

	buttons := make([]*html.Node, 0, len(cfg.Landing.PromoLinks)+1)
	for _, l := range cfg.Landing.PromoLinks {
		buttons = append(buttons, button(l.Href, l.Target, p.t(lang, l.Label)))
	}
	buttons = append(buttons, button(siteurl.Doc(cfg.BaseURL, cfg.DocsURL, lang, "dao.html"), "", p.t(lang, "DAO")))

	return layout.Element("div", layout.Attrs("class", "homeContainer"),
		layout.Element("div", layout.Attrs("class", "homeSplashFade"),
			layout.Element("div", layout.Attrs("class", "wrapper homeWrapper"),
				layout.Element("div", layout.Attrs("class", "projectLogo"),
					layout.Element("img", layout.Attrs("src", siteurl.Asset(cfg.BaseURL, splashLogo), "alt", "Project Logo")),
				),
				layout.Element("div", layout.Attrs("class", "inner"),
					layout.Element("h2", layout.Attrs("class", "projectTitle"),
						layout.Text(cfg.Title),
						layout.Element("small", nil, layout.Text(cfg.Tagline)),
					),
					layout.Element("div", layout.Attrs("class", "section promoSection"),
						layout.Element("div", layout.Attrs("class", "promoRow"),
							layout.Element("div", layout.Attrs("class", "pluginRowBlock"), buttons...),
						),
					),
				),
			),
		),
	)
}

func button(href, target, label string) *html.Node {
	return layout.Element("div", layout.Attrs("class", "pluginWrapper buttonWrapper"),
		layout.Element("a", layout.Attrs("class", "button", "href", href, "target", target), layout.Text(label)),
	)
}
