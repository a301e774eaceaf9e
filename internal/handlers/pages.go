package handlers

import (
	"html/template"

	"finitefield.org/docs-landing/internal/nav"
	"finitefield.org/docs-landing/internal/seo"
	"finitefield.org/docs-landing/internal/siteconfig"
	"finitefield.org/docs-landing/internal/siteurl"
)

// PageData is the view model for pages rendered through the shared layout.
type PageData struct {
	Title string
	// Lang is the language of the URL; empty for the default locale.
	Lang string
	// HTMLLang is the effective language, used for <html lang> and translations.
	HTMLLang  string
	SEO       seo.Meta
	JSONLD    []template.JS
	Analytics Analytics

	Path      string
	Nav       []nav.RenderedItem
	Languages []nav.LanguageLink
	HomeHref  string

	Favicon     string
	HeaderIcon  string
	Stylesheets []string
	Copyright   string

	Body template.HTML
}

// PageInput describes one page to build.
type PageInput struct {
	Lang      string
	Page      string // file name relative to the language root, "" for the home page
	PageTitle string
	Path      string
	Body      template.HTML
}

// BuildPageData constructs the layout view model for a page.
func BuildPageData(cfg *siteconfig.Config, analytics Analytics, in PageInput) PageData {
	htmlLang := in.Lang
	if htmlLang == "" {
		htmlLang = cfg.DefaultLanguage
	}
	meta := seo.Build(cfg, in.Lang, in.Page, in.PageTitle)
	jsonld := make([]template.JS, 0, len(meta.JSONLD))
	for _, s := range meta.JSONLD {
		if s != "" {
			// JSON produced by encoding/json escapes <, > and & so it is safe inside <script>.
			jsonld = append(jsonld, template.JS(s))
		}
	}
	var languages []nav.LanguageLink
	if len(cfg.Languages) > 1 {
		languages = nav.Languages(cfg, in.Lang, in.Page)
	}
	stylesheets := make([]string, 0, len(cfg.Stylesheets)+1)
	stylesheets = append(stylesheets, siteurl.Asset(cfg.BaseURL, "css/main.css"))
	stylesheets = append(stylesheets, cfg.Stylesheets...)

	data := PageData{
		Title:       meta.Title,
		Lang:        in.Lang,
		HTMLLang:    htmlLang,
		SEO:         meta,
		JSONLD:      jsonld,
		Analytics:   analytics,
		Path:        in.Path,
		Nav:         nav.Build(cfg, in.Lang, in.Path),
		Languages:   languages,
		HomeHref:    siteurl.Page(cfg.BaseURL, in.Lang, ""),
		Stylesheets: stylesheets,
		Copyright:   cfg.Copyright,
		Body:        in.Body,
	}
	if cfg.Favicon != "" {
		data.Favicon = siteurl.Asset(cfg.BaseURL, cfg.Favicon)
	}
	if cfg.HeaderIcon != "" {
		data.HeaderIcon = siteurl.Asset(cfg.BaseURL, cfg.HeaderIcon)
	}
	return data
}
