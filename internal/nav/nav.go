package nav

import (
	"strings"

	"finitefield.org/docs-landing/internal/siteconfig"
	"finitefield.org/docs-landing/internal/siteurl"
)

// RenderedItem is a view model for templates. LabelKey is translated by the
// template.
type RenderedItem struct {
	Href     string
	LabelKey string
	External bool
	Active   bool
}

// Build resolves the configured header links for lang and marks the one
// matching currentPath as active.
func Build(cfg *siteconfig.Config, lang, currentPath string) []RenderedItem {
	items := make([]RenderedItem, 0, len(cfg.HeaderLinks))
	for _, link := range cfg.HeaderLinks {
		item := RenderedItem{LabelKey: link.Label}
		switch {
		case link.Doc != "":
			item.Href = siteurl.Doc(cfg.BaseURL, cfg.DocsURL, lang, htmlName(link.Doc))
		case link.Page != "":
			item.Href = siteurl.Page(cfg.BaseURL, lang, htmlName(link.Page))
		default:
			item.Href = link.Href
			item.External = true
		}
		item.Active = !item.External && isActive(item.Href, currentPath)
		items = append(items, item)
	}
	return items
}

// LanguageLink points at the same page in another language.
type LanguageLink struct {
	Lang   string
	Href   string
	Active bool
}

// Languages builds the language switcher entries for page (e.g. "pioneers.html").
func Languages(cfg *siteconfig.Config, current, page string) []LanguageLink {
	out := make([]LanguageLink, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		out = append(out, LanguageLink{
			Lang:   l,
			Href:   siteurl.Page(cfg.BaseURL, l, page),
			Active: l == current,
		})
	}
	return out
}

func htmlName(name string) string {
	if strings.HasSuffix(name, ".html") {
		return name
	}
	return name + ".html"
}

// isActive matches paths with or without a trailing slash.
func isActive(itemPath, currentPath string) bool {
	return strings.TrimSuffix(currentPath, "/") == strings.TrimSuffix(itemPath, "/")
}
