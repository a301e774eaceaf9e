// Package siteconfig loads the YAML site configuration that drives every page:
// branding, URL layout, header links, languages and the pioneers showcase.
package siteconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Landing section identifiers, in the order they appear when all are enabled.
const (
	SectionFeatures       = "features"
	SectionFeatureCallout = "featureCallout"
	SectionLearnHow       = "learnHow"
	SectionTryOut         = "tryOut"
	SectionDescription    = "description"
	SectionShowcase       = "showcase"
)

// Sections lists every known landing section id.
var Sections = []string{
	SectionFeatures,
	SectionFeatureCallout,
	SectionLearnHow,
	SectionTryOut,
	SectionDescription,
	SectionShowcase,
}

const defaultLanguage = "en"

// Config is the site configuration. It is read-only once loaded.
type Config struct {
	Title           string       `yaml:"title"`
	Tagline         string       `yaml:"tagline"`
	URL             string       `yaml:"url"`
	BaseURL         string       `yaml:"baseUrl"`
	DocsURL         string       `yaml:"docsUrl"`
	ProjectName     string       `yaml:"projectName"`
	Favicon         string       `yaml:"favicon"`
	HeaderIcon      string       `yaml:"headerIcon"`
	Copyright       string       `yaml:"copyright"`
	GATrackingID    string       `yaml:"gaTrackingId"`
	Stylesheets     []string     `yaml:"stylesheets"`
	HeaderLinks     []HeaderLink `yaml:"headerLinks"`
	Pioneers        []Pioneer    `yaml:"pioneers"`
	Languages       []string     `yaml:"languages"`
	DefaultLanguage string       `yaml:"defaultLanguage"`
	// RedirectRoot sends "/" to the best matching language home instead of
	// rendering the untranslated page.
	RedirectRoot bool    `yaml:"redirectRoot"`
	Landing      Landing `yaml:"landing"`
}

// HeaderLink is one navigation entry. Exactly one of Doc, Page or Href is set.
type HeaderLink struct {
	Doc   string `yaml:"doc"`
	Page  string `yaml:"page"`
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// Pioneer is a featured contributor shown in the showcase.
type Pioneer struct {
	InfoLink string `yaml:"infoLink"`
	Image    string `yaml:"image"`
	Caption  string `yaml:"caption"`
	Pinned   bool   `yaml:"pinned"`
}

// Landing toggles the optional landing sections.
type Landing struct {
	// Sections holds the enabled section ids in render order.
	Sections   []string    `yaml:"sections"`
	PromoLinks []PromoLink `yaml:"promoLinks"`
}

// PromoLink is an external call-to-action button in the splash.
type PromoLink struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href"`
	Target string `yaml:"target"`
}

// DefaultPromoLinks returns the splash buttons used when none are configured.
func DefaultPromoLinks() []PromoLink {
	return []PromoLink{
		{Label: "Qiita", Href: "https://qiita.com/baby-degu"},
		{Label: "Udemy", Href: "https://www.udemy.com/user/baby-degu/"},
	}
}

// ValidationError lists configuration fields that are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("site config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config %s: %w", path, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("site config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Title = strings.TrimSpace(c.Title)
	c.Tagline = strings.TrimSpace(c.Tagline)
	c.DocsURL = strings.Trim(strings.TrimSpace(c.DocsURL), "/")
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = "/"
	}
	langs := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		if l = strings.ToLower(strings.TrimSpace(l)); l != "" {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		langs = []string{defaultLanguage}
	}
	c.Languages = langs
	c.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.DefaultLanguage))
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = c.Languages[0]
	}
	if c.Landing.PromoLinks == nil {
		c.Landing.PromoLinks = DefaultPromoLinks()
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var fields []string
	if c.Title == "" {
		fields = append(fields, "title")
	}
	if !strings.HasPrefix(c.BaseURL, "/") || !strings.HasSuffix(c.BaseURL, "/") {
		fields = append(fields, "baseUrl")
	}
	if !c.HasLanguage(c.DefaultLanguage) {
		fields = append(fields, "defaultLanguage")
	}
	for i, link := range c.HeaderLinks {
		set := 0
		for _, v := range []string{link.Doc, link.Page, link.Href} {
			if strings.TrimSpace(v) != "" {
				set++
			}
		}
		if set != 1 || strings.TrimSpace(link.Label) == "" {
			fields = append(fields, fmt.Sprintf("headerLinks[%d]", i))
		}
	}
	for i, p := range c.Pioneers {
		if strings.TrimSpace(p.InfoLink) == "" || strings.TrimSpace(p.Image) == "" {
			fields = append(fields, fmt.Sprintf("pioneers[%d]", i))
		}
	}
	for i, l := range c.Landing.PromoLinks {
		if strings.TrimSpace(l.Href) == "" || strings.TrimSpace(l.Label) == "" {
			fields = append(fields, fmt.Sprintf("landing.promoLinks[%d]", i))
		}
	}
	seen := map[string]struct{}{}
	for i, id := range c.Landing.Sections {
		_, dup := seen[id]
		if dup || !knownSection(id) {
			fields = append(fields, fmt.Sprintf("landing.sections[%d]", i))
		}
		seen[id] = struct{}{}
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

// HasLanguage reports whether lang is one of the configured languages.
func (c *Config) HasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// PinnedPioneers returns the pinned entries in configuration order.
func (c *Config) PinnedPioneers() []Pioneer {
	out := make([]Pioneer, 0, len(c.Pioneers))
	for _, p := range c.Pioneers {
		if p.Pinned {
			out = append(out, p)
		}
	}
	return out
}

func knownSection(id string) bool {
	for _, s := range Sections {
		if s == id {
			return true
		}
	}
	return false
}
