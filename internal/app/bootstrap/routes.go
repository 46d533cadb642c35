// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	catalogfeature "github.com/stashdir/stashd/internal/app/features/catalog"
	categoriesfeature "github.com/stashdir/stashd/internal/app/features/categories"
	collectionsfeature "github.com/stashdir/stashd/internal/app/features/collections"
	errorsfeature "github.com/stashdir/stashd/internal/app/features/errors"
	feedfeature "github.com/stashdir/stashd/internal/app/features/feed"
	healthfeature "github.com/stashdir/stashd/internal/app/features/health"
	recommendfeature "github.com/stashdir/stashd/internal/app/features/recommend"
	sitemapfeature "github.com/stashdir/stashd/internal/app/features/sitemap"
	stashfeature "github.com/stashdir/stashd/internal/app/features/stash"
	submitfeature "github.com/stashdir/stashd/internal/app/features/submit"
	subscribefeature "github.com/stashdir/stashd/internal/app/features/subscribe"
	tagsfeature "github.com/stashdir/stashd/internal/app/features/tags"
	collectionstore "github.com/stashdir/stashd/internal/app/store/collections"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	submissionstore "github.com/stashdir/stashd/internal/app/store/submissions"
	subscriberstore "github.com/stashdir/stashd/internal/app/store/subscribers"
	"github.com/stashdir/stashd/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. It binds the stores to the connected
// database, builds one handler per feature, and mounts the feature
// routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	resources := resourcestore.New(deps.MongoDatabase)
	collections := collectionstore.New(deps.MongoDatabase)
	submissions := submissionstore.New(deps.MongoDatabase)
	subscribers := subscriberstore.New(deps.MongoDatabase)

	errLog := errorsfeature.NewErrorLogger(logger)

	// The stash lives in a signed cookie; secure cookies in production.
	// Without a configured key, stash cookies do not survive restarts.
	sessionKey := []byte(appCfg.SessionKey)
	if len(sessionKey) == 0 {
		sessionKey = securecookie.GenerateRandomKey(32)
		logger.Warn("session_key not set, using an ephemeral signing key")
	}
	cookieStore := sessions.NewCookieStore(sessionKey)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		Domain:   appCfg.SessionDomain,
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
		Secure:   coreCfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	}

	writeLimiter := ratelimit.New(appCfg.RateLimitRequests, appCfg.RateLimitWindow)

	r := chi.NewRouter()
	r.NotFound(errorsfeature.NotFoundHandler)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	catalogHandler := catalogfeature.NewHandler(resources, collections, errLog, logger)
	r.Mount("/api/resources", catalogfeature.Routes(catalogHandler))

	categoriesHandler := categoriesfeature.NewHandler(resources, errLog, logger)
	r.Mount("/api/categories", categoriesfeature.Routes(categoriesHandler))

	tagsHandler := tagsfeature.NewHandler(resources, errLog, logger)
	r.Mount("/api/tags", tagsfeature.Routes(tagsHandler))

	collectionsHandler := collectionsfeature.NewHandler(collections, resources, errLog, logger)
	r.Mount("/api/collections", collectionsfeature.Routes(collectionsHandler))

	recommendHandler := recommendfeature.NewHandler(resources, errLog, logger)
	r.Mount("/api/recommend", recommendfeature.Routes(recommendHandler))

	stashHandler := stashfeature.NewHandler(resources, cookieStore, errLog, logger)
	r.Mount("/api/stash", stashfeature.Routes(stashHandler))

	submitHandler := submitfeature.NewHandler(submissions, errLog, logger)
	r.Mount("/api/submit", submitfeature.Routes(submitHandler, writeLimiter))

	subscribeHandler := subscribefeature.NewHandler(subscribers, errLog, logger)
	r.Mount("/api/subscribe", subscribefeature.Routes(subscribeHandler, writeLimiter))

	feedHandler := feedfeature.NewHandler(resources, appCfg.BaseURL, appCfg.SiteName, appCfg.FeedMaxItems, errLog, logger)
	r.Mount("/feed.xml", feedfeature.Routes(feedHandler))

	sitemapHandler := sitemapfeature.NewHandler(resources, collections, appCfg.BaseURL, errLog, logger)
	r.Mount("/sitemap.xml", sitemapfeature.Routes(sitemapHandler))

	return r, nil
}
