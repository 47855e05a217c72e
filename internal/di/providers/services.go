package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviesapp/movies-server/internal/config"
	"github.com/moviesapp/movies-server/internal/logger"
	"github.com/moviesapp/movies-server/internal/origin"
	"github.com/moviesapp/movies-server/internal/seed"
	"github.com/moviesapp/movies-server/internal/service"
	"github.com/moviesapp/movies-server/internal/store"
	"github.com/moviesapp/movies-server/internal/validation"
)

// ProvideValidator provides the movie payload validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideCatalog provides the in-memory catalog, seeded once at startup.
func ProvideCatalog(i do.Injector) (*store.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)

	movies, err := seed.Load(cfg.Catalog.SeedPath, v)
	if err != nil {
		return nil, err
	}

	catalog, err := store.NewCatalog(movies)
	if err != nil {
		return nil, err
	}

	source := cfg.Catalog.SeedPath
	if source == "" {
		source = "embedded"
	}
	log.Info("Catalog seeded", "movies", catalog.Count(), "source", source)

	return catalog, nil
}

// ProvideOriginPolicy provides the cross-origin allow-list.
func ProvideOriginPolicy(i do.Injector) (*origin.Policy, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	policy := origin.New(cfg.CORS.AllowedOrigins)
	log.Info("Origin policy loaded", "allowed", policy.Allowed())

	return policy, nil
}

// ProvideMovieService provides the movie service.
func ProvideMovieService(i do.Injector) (*service.MovieService, error) {
	catalog := do.MustInvoke[*store.Catalog](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMovieService(catalog, v, log.Logger), nil
}
