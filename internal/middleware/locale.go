package middleware

import (
	"net/http"
	"strings"

	"finitefield.org/docs-landing/internal/i18n"
)

const langCookie = "hl"

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// append to existing Vary if any
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

// Locale resolves the visitor's preferred language from the `hl` query
// parameter, then the `hl` cookie, then Accept-Language. A supported query value
// is remembered in the cookie.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if q := strings.ToLower(r.URL.Query().Get(langCookie)); q != "" && bundle.IsSupported(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: langCookie, Value: q, Path: "/", SameSite: http.SameSiteLaxMode})
			} else if c, err := r.Cookie(langCookie); err == nil && bundle.IsSupported(strings.ToLower(c.Value)) {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			next.ServeHTTP(w, r.WithContext(WithPreferredLang(r.Context(), lang)))
		})
	}
}

// Lang returns the preferred language for r, or fallback when Locale did not run.
func Lang(r *http.Request, fallback string) string {
	if lang, ok := PreferredLang(r.Context()); ok {
		return lang
	}
	return fallback
}
