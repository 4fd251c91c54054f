package model

// SiteInfo is the public branding payload from GET /public/site-info.
// Fetching it is best-effort: a failure leaves the configured fallback in
// place and is never surfaced to the user.
type SiteInfo struct {
	SiteTitle         string `json:"site_title"`
	AllowRegistration bool   `json:"allow_registration"`
}
