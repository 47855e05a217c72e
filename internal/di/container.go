// Package di provides dependency injection configuration for the movies server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/moviesapp/movies-server/internal/api"
	"github.com/moviesapp/movies-server/internal/config"
	"github.com/moviesapp/movies-server/internal/di/providers"
	"github.com/moviesapp/movies-server/internal/logger"
	"github.com/moviesapp/movies-server/internal/origin"
	"github.com/moviesapp/movies-server/internal/service"
	"github.com/moviesapp/movies-server/internal/store"
	"github.com/moviesapp/movies-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line flags, without the program name.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(args))
	do.Provide(injector, providers.ProvideLogger)

	// Catalog
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideMovieService)

	// HTTP
	do.Provide(injector, providers.ProvideOriginPolicy)
	do.Provide(injector, providers.ProvideWriteRateLimiter)
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the HTTP server.
// Any provider failure (bad config, unreadable seed, port in use) is returned instead of panicking.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*store.Catalog](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*service.MovieService](injector)
	_ = do.MustInvoke[*origin.Policy](injector)
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)
	_ = do.MustInvoke[*api.Server](injector)

	// Server last: it starts listening as soon as it is built.
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
