// Package api provides the HTTP API server and handlers for the movies catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moviesapp/movies-server/internal/http/response"
	"github.com/moviesapp/movies-server/internal/logger"
	"github.com/moviesapp/movies-server/internal/origin"
	"github.com/moviesapp/movies-server/internal/ratelimit"
)

const (
	apiTitle   = "Movies API"
	apiVersion = "1.0.0"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	services     *Services
	policy       *origin.Policy
	writeLimiter *ratelimit.KeyedRateLimiter
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// A nil writeLimiter disables rate limiting of mutating requests.
func NewServer(services *Services, policy *origin.Policy, writeLimiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Server {
	s := &Server{
		services:     services,
		policy:       policy,
		writeLimiter: writeLimiter,
		router:       chi.NewRouter(),
		logger:       logger,
	}

	// Middleware must be in place before huma mounts its routes.
	s.setupMiddleware()

	humaConfig := huma.DefaultConfig(apiTitle, apiVersion)
	humaConfig.Info.Description = "Catalog of movies with list, lookup, create, partial update and delete."
	// Responses are plain records; no $schema links.
	humaConfig.CreateHooks = nil

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler(logger)

	s.registerRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack. Order matters: the origin
// gate rejects before CORS headers are computed, and the write limiter only
// sees requests from allowed origins.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requireAllowedOrigin)
	s.router.Use(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, o string) bool {
			return s.policy.IsAllowed(o)
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	if s.writeLimiter != nil {
		s.router.Use(WriteRateLimitMiddleware(s.writeLimiter, s.logger))
	}

	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found", s.logger)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed", s.logger)
	})
}

// registerRoutes registers every huma operation.
func (s *Server) registerRoutes() {
	s.registerHealthRoutes()
	s.registerMovieRoutes()
}
