package api

import (
	"github.com/moviesapp/movies-server/internal/service"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Movie *service.MovieService
}
