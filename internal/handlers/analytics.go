package handlers

import (
	"os"

	"finitefield.org/docs-landing/internal/siteconfig"
)

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GATrackingID string // e.g. UA-XXXXX-Y or G-XXXXXXXXXX
}

// LoadAnalytics takes the tracking id from the site config; the
// LANDING_GA_TRACKING_ID environment variable overrides it per deployment.
func LoadAnalytics(cfg *siteconfig.Config) Analytics {
	id := cfg.GATrackingID
	if v := os.Getenv("LANDING_GA_TRACKING_ID"); v != "" {
		id = v
	}
	return Analytics{GATrackingID: id}
}
