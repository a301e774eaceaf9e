package seo

import (
	"finitefield.org/docs-landing/internal/siteconfig"
	"finitefield.org/docs-landing/internal/siteurl"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is an hreflang link to the same page in another language.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []string
}

// Build assembles page metadata. pageTitle may be empty for the home page, in
// which case the site title and tagline are used.
func Build(cfg *siteconfig.Config, lang, page, pageTitle string) Meta {
	title := cfg.Title
	if cfg.Tagline != "" {
		title += " · " + cfg.Tagline
	}
	if pageTitle != "" {
		title = pageTitle + " · " + cfg.Title
	}
	canonical := siteurl.Absolute(cfg.URL, siteurl.Page(cfg.BaseURL, lang, page))
	image := ""
	if cfg.HeaderIcon != "" {
		image = siteurl.Absolute(cfg.URL, siteurl.Asset(cfg.BaseURL, cfg.HeaderIcon))
	}

	m := Meta{
		Title:       title,
		Description: cfg.Tagline,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: cfg.Tagline,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    cfg.Title,
		},
		Twitter: Twitter{Card: "summary", Image: image},
	}
	if len(cfg.Languages) > 1 {
		for _, l := range cfg.Languages {
			m.Alternates = append(m.Alternates, Alternate{
				Href:     siteurl.Absolute(cfg.URL, siteurl.Page(cfg.BaseURL, l, page)),
				Hreflang: l,
			})
		}
		m.Alternates = append(m.Alternates, Alternate{
			Href:     siteurl.Absolute(cfg.URL, siteurl.Page(cfg.BaseURL, "", page)),
			Hreflang: "x-default",
		})
	}
	site := siteurl.Absolute(cfg.URL, cfg.BaseURL)
	m.JSONLD = append(m.JSONLD, JSON(WebSite(cfg.Title, site, "")))
	if cfg.ProjectName != "" {
		m.JSONLD = append(m.JSONLD, JSON(Organization(cfg.ProjectName, site, image)))
	}
	return m
}
