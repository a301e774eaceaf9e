package siteurl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocConcatenatesOptionalSegments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		baseURL string
		docsURL string
		lang    string
		want    string
	}{
		{name: "docs and language", baseURL: "/site/", docsURL: "docs", lang: "en", want: "/site/docs/en/dao.html"},
		{name: "no optional segments", baseURL: "/site/", want: "/site/dao.html"},
		{name: "docs only", baseURL: "/", docsURL: "docs", want: "/docs/dao.html"},
		{name: "language only", baseURL: "/", lang: "ja", want: "/ja/dao.html"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Doc(tc.baseURL, tc.docsURL, tc.lang, "dao.html"))
		})
	}
}

func TestPageSkipsDocsPrefix(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/site/en/pioneers.html", Page("/site/", "en", "pioneers.html"))
	require.Equal(t, "/site/pioneers.html", Page("/site/", "", "pioneers.html"))
}

func TestAssetAndAbsolute(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/site/img/undraw_monitor.svg", Asset("/site/", "/img/undraw_monitor.svg"))
	require.Equal(t, "https://example.org/site/en/", Absolute("https://example.org/", "/site/en/"))
	require.Equal(t, "/site/", Absolute("", "/site/"))
}
