package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// greeting is the body of GET /.
const greeting = "Hola mundito"

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greeting",
		Description: "Returns a greeting string",
		Tags:        []string{"Health"},
	}, s.handleRoot)

	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status and catalog size",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// GreetingOutput wraps the greeting for Huma.
type GreetingOutput struct {
	Body string
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status string `json:"status" doc:"Overall status" example:"ok"`
	Movies int    `json:"movies" doc:"Number of movies in the catalog"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleRoot(_ context.Context, _ *struct{}) (*GreetingOutput, error) {
	return &GreetingOutput{Body: greeting}, nil
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponse{
			Status: "ok",
			Movies: s.services.Movie.Count(),
		},
	}, nil
}
