package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"finitefield.org/docs-landing/internal/i18n"
	"finitefield.org/docs-landing/internal/observability"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()

	b, err := i18n.Load("../../locales", "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b
}

func preferredLang(t *testing.T, b *i18n.Bundle, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var got string
	h := Locale(b)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = Lang(r, "unset")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestLocalePrecedence(t *testing.T) {
	t.Parallel()
	b := testBundle(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja-JP,en;q=0.5")
	got, _ := preferredLang(t, b, req)
	require.Equal(t, "ja", got)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ja")
	req.AddCookie(&http.Cookie{Name: "hl", Value: "en"})
	got, _ = preferredLang(t, b, req)
	require.Equal(t, "en", got, "cookie beats Accept-Language")

	req = httptest.NewRequest(http.MethodGet, "/?hl=JA", nil)
	req.AddCookie(&http.Cookie{Name: "hl", Value: "en"})
	got, rec := preferredLang(t, b, req)
	require.Equal(t, "ja", got, "query beats cookie")
	require.Contains(t, rec.Header().Get("Set-Cookie"), "hl=ja")

	req = httptest.NewRequest(http.MethodGet, "/?hl=fr", nil)
	got, rec = preferredLang(t, b, req)
	require.Equal(t, "en", got, "unsupported query is ignored")
	require.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestLangWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, "en", Lang(req, "en"))
}

func TestVaryLocale(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	VaryLocale(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "Accept-Language", rec.Header().Get("Vary"))
}

func TestLoggerRecordsRequest(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	var ctxLogger *zap.Logger
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = observability.FromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 192.0.2.7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, ctxLogger)
	entries := logs.All()
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "request", entry.Message)
	require.Equal(t, zap.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "/nope", fields["path"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.EqualValues(t, len("missing"), fields["bytes"])
	require.Equal(t, "192.0.2.7", fields["remote_ip"])
}

func TestAssetsWithCacheETag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.svg"), []byte("<svg/>"), 0o600))
	h := AssetsWithCache(dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/img/logo.svg", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/img/logo.svg", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}
