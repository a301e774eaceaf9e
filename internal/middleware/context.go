package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyPreferredLang ctxKey = "preferred_lang"
)

// WithPreferredLang stores the visitor's preferred language in context.
func WithPreferredLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyPreferredLang, lang)
}

// PreferredLang returns the language resolved by Locale, if any.
func PreferredLang(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyPreferredLang).(string)
	return v, ok && v != ""
}
