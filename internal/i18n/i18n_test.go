package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveHonorsQValues(t *testing.T) {
	b, err := Load("../../locales", "en", []string{"en", "ja"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := b.Resolve("ja;q=0.9, en;q=0.8")
	if got != "ja" {
		t.Fatalf("expected ja, got %s", got)
	}
}

func TestResolveFallsBackForUnknownOrZeroQ(t *testing.T) {
	b := newTestBundle(t)

	require.Equal(t, "en", b.Resolve("fr-FR, de;q=0.5"))
	require.Equal(t, "en", b.Resolve("ja;q=0"))
	require.Equal(t, "ja", b.Resolve("ja-JP"))
	require.Equal(t, "en", b.Resolve(""))
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	b := newTestBundle(t)

	require.Equal(t, "ようこそ", b.T("ja", "welcome"))
	require.Equal(t, "Only English", b.T("ja", "english.only"))
	require.Equal(t, "Welcome", b.T("", "welcome"))
	require.Equal(t, "missing.key", b.T("ja", "missing.key"))
}

func TestLoadRequiresFallbackFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, "en", []string{"en"})
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"a":"b"}`), 0o600))
	b, err := Load(dir, "en", []string{"en", "ja"})
	require.NoError(t, err)
	require.Equal(t, []string{"en", "ja"}, b.Supported())
	require.True(t, b.IsSupported("ja"))
	require.Equal(t, "b", b.T("ja", "a"))
}

func newTestBundle(t *testing.T) *Bundle {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"welcome":"Welcome","english.only":"Only English"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ja.json"), []byte(`{"welcome":"ようこそ"}`), 0o600))
	b, err := Load(dir, "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b
}
