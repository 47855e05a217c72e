// Package main provides the entry point for the movies server.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/moviesapp/movies-server/internal/di"
	"github.com/moviesapp/movies-server/internal/di/providers"
	"github.com/moviesapp/movies-server/internal/logger"
)

func main() {
	// Create DI container
	injector := di.NewContainer(os.Args[1:])

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)
	server := do.MustInvoke[*providers.HTTPServerHandle](injector)

	// Wait for shutdown signal, or for the server to stop on its own
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		log.Info("Shutting down server gracefully...", "signal", sig.String())
	case err := <-server.Err():
		log.WithError(err).Error("HTTP server stopped unexpectedly")
		exitCode = 1
	}

	// The DI container shuts services down in reverse dependency order:
	// HTTP server first, then the rate limiter.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Server stopped")
	os.Exit(exitCode)
}
