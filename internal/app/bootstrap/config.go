// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for stashd, loaded via
// WAFFLE's config system with support for:
//   - Config files: mongo_uri, base_url, etc.
//   - Environment variables: STASHD_MONGO_URI, STASHD_BASE_URL, etc.
//   - Command-line flags: --mongo_uri, --base_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "stashd", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "", Desc: "Stash cookie signing key (blank generates an ephemeral key; set a stable one in production)"},
	{Name: "session_domain", Default: "", Desc: "Stash cookie domain (blank means current host)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Public base URL for feed and sitemap links"},
	{Name: "site_name", Default: "Stashd", Desc: "Site name shown in the feed"},

	{Name: "feed_max_items", Default: 50, Desc: "Maximum items in the RSS feed"},

	{Name: "rate_limit_requests", Default: 5, Desc: "Requests allowed per window on submit/subscribe, per IP"},
	{Name: "rate_limit_window", Default: "1m", Desc: "Rate limit window (e.g. 30s, 1m)"},

	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document database reads"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for list queries and writes"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It runs
// early in startup so both WAFFLE and the app see configuration before
// any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "STASHD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionDomain: appValues.String("session_domain"),

		BaseURL:  strings.TrimRight(appValues.String("base_url"), "/"),
		SiteName: appValues.String("site_name"),

		FeedMaxItems: appValues.Int("feed_max_items"),

		RateLimitRequests: appValues.Int("rate_limit_requests"),
		RateLimitWindow:   appValues.Duration("rate_limit_window", time.Minute),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig enforces app-level config invariants before startup
// proceeds to database connections.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if !urlutil.IsValidAbsHTTPURL(appCfg.BaseURL) {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", appCfg.BaseURL)
	}
	if coreCfg.Env == "prod" && len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 characters in production")
	}
	if appCfg.FeedMaxItems <= 0 {
		return fmt.Errorf("feed_max_items must be positive")
	}
	if appCfg.RateLimitRequests <= 0 || appCfg.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}
