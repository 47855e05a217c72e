// Package providers contains dependency injection providers for the movies server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviesapp/movies-server/internal/config"
	"github.com/moviesapp/movies-server/internal/logger"
)

// ProvideConfig returns a provider that loads the configuration from args
// (command-line flags without the program name), the environment and .env.
func ProvideConfig(args []string) do.Provider[*config.Config] {
	return func(_ do.Injector) (*config.Config, error) {
		return config.LoadConfig(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting movies server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"port", cfg.Server.Port,
	)

	return log, nil
}
