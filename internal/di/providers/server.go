package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/moviesapp/movies-server/internal/api"
	"github.com/moviesapp/movies-server/internal/config"
	"github.com/moviesapp/movies-server/internal/logger"
	"github.com/moviesapp/movies-server/internal/origin"
	"github.com/moviesapp/movies-server/internal/ratelimit"
	"github.com/moviesapp/movies-server/internal/service"
)

// RateLimiterHandle wraps the write rate limiter with Shutdownable.
// Limiter is nil when rate limiting is disabled.
type RateLimiterHandle struct {
	Limiter *ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	if h.Limiter != nil {
		h.Limiter.Stop()
	}
	return nil
}

// ProvideWriteRateLimiter provides the per-IP limiter for mutating requests.
func ProvideWriteRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.RateLimit.WritesPerMinute == 0 {
		log.Info("Write rate limiting disabled by configuration")
		return &RateLimiterHandle{}, nil
	}

	limiter := ratelimit.New(ratelimit.PerMinute(cfg.RateLimit.WritesPerMinute), cfg.RateLimit.Burst, ratelimit.DefaultIdleTTL)
	log.Info("Write rate limiting enabled",
		"per_minute", cfg.RateLimit.WritesPerMinute,
		"burst", cfg.RateLimit.Burst,
	)

	return &RateLimiterHandle{Limiter: limiter}, nil
}

// ProvideAPIServer provides the HTTP handler with every route mounted.
func ProvideAPIServer(i do.Injector) (*api.Server, error) {
	log := do.MustInvoke[*logger.Logger](i)
	policy := do.MustInvoke[*origin.Policy](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)

	services := &api.Services{
		Movie: do.MustInvoke[*service.MovieService](i),
	}

	return api.NewServer(services, policy, limiterHandle.Limiter, log.Logger), nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	listener net.Listener
	errs     chan error
}

// ListenAddr returns the address the server is listening on.
func (h *HTTPServerHandle) ListenAddr() net.Addr {
	return h.listener.Addr()
}

// Err delivers the error that stopped the server, if it stops on its own.
// Nothing is sent after a graceful Shutdown.
func (h *HTTPServerHandle) Err() <-chan error {
	return h.errs
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer binds the listen address and starts serving in the background.
// A bind failure (port in use, bad address) is returned to the caller.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	handler := do.MustInvoke[*api.Server](i)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	handle := &HTTPServerHandle{Server: srv, listener: ln, errs: make(chan error, 1)}

	// Start in background
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("HTTP server error")
			handle.errs <- err
		}
	}()

	log.WithField("addr", ln.Addr().String()).Info("Server running")

	return handle, nil
}
