// Package siteurl builds the internal links of the site from its base path,
// the optional docs prefix and the optional language segment.
package siteurl

import "strings"

// Doc returns the URL of a documentation page:
// baseURL + "docsURL/" (when set) + "lang/" (when set) + doc.
func Doc(baseURL, docsURL, lang, doc string) string {
	return baseURL + segment(docsURL) + segment(lang) + doc
}

// Page returns the URL of a top-level page, e.g. "pioneers.html".
func Page(baseURL, lang, page string) string {
	return baseURL + segment(lang) + page
}

// Asset returns the URL of a static file relative to the base path.
func Asset(baseURL, path string) string {
	return baseURL + strings.TrimPrefix(path, "/")
}

// Absolute joins the site origin (e.g. "https://example.org") with an absolute path.
// An empty origin leaves the path untouched.
func Absolute(origin, path string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return path
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimPrefix(path, "/")
}

func segment(s string) string {
	if s == "" {
		return ""
	}
	return s + "/"
}
