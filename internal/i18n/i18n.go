// Package i18n provides the translation capability: flat JSON dictionaries per
// language with fallback to the default language and finally to the key itself.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
)

// Bundle holds the loaded dictionaries. It is safe for concurrent reads.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported map[string]struct{}
}

// Load reads <dir>/<lang>.json for every supported language. Only the fallback
// language file is mandatory; a language without a file translates through the
// fallback dictionary.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	b := &Bundle{
		dict:      make(map[string]map[string]string, len(supported)),
		fallback:  fallback,
		supported: make(map[string]struct{}, len(supported)),
	}
	for _, lang := range supported {
		b.supported[lang] = struct{}{}
		m, err := readDictionary(filepath.Join(dir, lang+".json"))
		if err != nil {
			if os.IsNotExist(err) && lang != fallback {
				continue
			}
			return nil, fmt.Errorf("load locale %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

func readDictionary(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// Supported returns the configured languages sorted alphabetically.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the default language.
func (b *Bundle) Fallback() string { return b.fallback }

// IsSupported reports whether lang is a configured language.
func (b *Bundle) IsSupported(lang string) bool {
	_, ok := b.supported[lang]
	return ok
}

// T translates key for lang. An empty lang means the default locale.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok && lang != "" {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}
	return key
}

// Resolve picks the best supported language from an Accept-Language header,
// honoring q-values and falling back to the default language.
func (b *Bundle) Resolve(acceptLang string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil {
		return b.fallback
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if lang := base.String(); b.IsSupported(lang) {
			return lang
		}
	}
	return b.fallback
}
