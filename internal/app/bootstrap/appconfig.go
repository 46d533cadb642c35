// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to stashd. The struct
// is passed to most lifecycle hooks, so any configuration needed during
// startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Stash cookie configuration. The stash is a signed session cookie;
	// the key must be strong in production.
	SessionKey    string
	SessionDomain string // blank means current host

	// Public site identity, used by the feed and sitemap.
	BaseURL  string // e.g. "https://stashd.dev", no trailing slash
	SiteName string

	// Feed settings
	FeedMaxItems int

	// Rate limiting for the public write endpoints (submit, subscribe).
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Database operation deadlines.
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
