package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/docs-landing/internal/siteconfig"
)

func TestBuildPageDataDefaultLocale(t *testing.T) {
	t.Parallel()

	cfg := &siteconfig.Config{
		Title:           "Docs",
		BaseURL:         "/site/",
		Favicon:         "img/favicon.ico",
		Languages:       []string{"en", "ja"},
		DefaultLanguage: "en",
		Stylesheets:     []string{"https://fonts.example/css"},
		HeaderLinks:     []siteconfig.HeaderLink{{Page: "pioneers", Label: "Pioneers"}},
	}
	data := BuildPageData(cfg, Analytics{}, PageInput{Path: "/site/"})

	require.Equal(t, "", data.Lang)
	require.Equal(t, "en", data.HTMLLang)
	require.Equal(t, "/site/", data.HomeHref)
	require.Equal(t, "/site/img/favicon.ico", data.Favicon)
	require.Equal(t, []string{"/site/css/main.css", "https://fonts.example/css"}, data.Stylesheets)
	require.Len(t, data.Languages, 2)
	require.Len(t, data.Nav, 1)
	require.Equal(t, "/site/pioneers.html", data.Nav[0].Href)
	require.NotEmpty(t, data.JSONLD)
}

func TestBuildPageDataSingleLanguageHasNoSwitcher(t *testing.T) {
	t.Parallel()

	cfg := &siteconfig.Config{Title: "Docs", BaseURL: "/", Languages: []string{"en"}, DefaultLanguage: "en"}
	data := BuildPageData(cfg, Analytics{}, PageInput{Lang: "en", Page: "pioneers.html", PageTitle: "Pioneers"})

	require.Nil(t, data.Languages)
	require.Equal(t, "Pioneers · Docs", data.Title)
	require.Equal(t, "/en/", data.HomeHref)
}

func TestLoadAnalyticsEnvOverride(t *testing.T) {
	cfg := &siteconfig.Config{GATrackingID: "UA-1"}
	require.Equal(t, "UA-1", LoadAnalytics(cfg).GATrackingID)

	t.Setenv("LANDING_GA_TRACKING_ID", "G-2")
	require.Equal(t, "G-2", LoadAnalytics(cfg).GATrackingID)
}
