package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviesapp/movies-server/internal/api/dto"
	"github.com/moviesapp/movies-server/internal/domain"
)

// movieDeletedMessage is the body message of a successful delete.
const movieDeletedMessage = "Movie deleted"

func (s *Server) registerMovieRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMovies",
		Method:      http.MethodGet,
		Path:        "/movies",
		Summary:     "List movies",
		Description: "Returns all movies in insertion order, optionally filtered by genre (case-insensitive exact match)",
		Tags:        []string{"Movies"},
	}, s.handleListMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMovie",
		Method:      http.MethodGet,
		Path:        "/movies/{id}",
		Summary:     "Get movie",
		Description: "Returns a movie by ID",
		Tags:        []string{"Movies"},
		Errors:      []int{http.StatusNotFound},
	}, s.handleGetMovie)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createMovie",
		Method:        http.MethodPost,
		Path:          "/movies",
		Summary:       "Create movie",
		Description:   "Validates a complete movie and adds it under a generated ID",
		Tags:          []string{"Movies"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusTooManyRequests},
	}, s.handleCreateMovie)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateMovie",
		Method:      http.MethodPatch,
		Path:        "/movies/{id}",
		Summary:     "Update movie",
		Description: "Merges the supplied fields over the stored movie and returns the result",
		Tags:        []string{"Movies"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests},
	}, s.handleUpdateMovie)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteMovie",
		Method:      http.MethodDelete,
		Path:        "/movies/{id}",
		Summary:     "Delete movie",
		Description: "Removes a movie",
		Tags:        []string{"Movies"},
		Errors:      []int{http.StatusNotFound, http.StatusTooManyRequests},
	}, s.handleDeleteMovie)
}

// === DTOs ===

// ListMoviesInput contains parameters for listing movies.
type ListMoviesInput struct {
	Genre string `query:"genre" doc:"Only return movies tagged with this genre" example:"drama"`
}

// ListMoviesResponse contains a list of movies.
type ListMoviesResponse struct {
	Total  int            `json:"total" doc:"Number of movies returned"`
	Movies []domain.Movie `json:"movies" doc:"Movies in insertion order"`
}

// ListMoviesOutput wraps the list movies response for Huma.
type ListMoviesOutput struct {
	Body ListMoviesResponse
}

// MovieOutput wraps a single movie for Huma.
type MovieOutput struct {
	Body domain.Movie
}

// GetMovieInput contains parameters for getting a movie.
type GetMovieInput struct {
	ID string `path:"id" doc:"Movie ID"`
}

// CreateMovieInput carries the raw create payload. The movie validator owns
// every field rule, so huma does not decode the body.
type CreateMovieInput struct {
	RawBody []byte
}

// UpdateMovieInput carries the raw partial payload for a movie.
type UpdateMovieInput struct {
	ID      string `path:"id" doc:"Movie ID"`
	RawBody []byte
}

// DeleteMovieInput contains parameters for deleting a movie.
type DeleteMovieInput struct {
	ID string `path:"id" doc:"Movie ID"`
}

// === Handlers ===

func (s *Server) handleListMovies(ctx context.Context, input *ListMoviesInput) (*ListMoviesOutput, error) {
	movies := s.services.Movie.List(ctx, input.Genre)

	return &ListMoviesOutput{Body: ListMoviesResponse{
		Total:  len(movies),
		Movies: movies,
	}}, nil
}

func (s *Server) handleGetMovie(ctx context.Context, input *GetMovieInput) (*MovieOutput, error) {
	m, err := s.services.Movie.Get(ctx, input.ID)
	if err != nil {
		return nil, s.handleError(ctx, err)
	}

	return &MovieOutput{Body: m}, nil
}

func (s *Server) handleCreateMovie(ctx context.Context, input *CreateMovieInput) (*MovieOutput, error) {
	m, err := s.services.Movie.Create(ctx, input.RawBody)
	if err != nil {
		return nil, s.handleError(ctx, err)
	}

	return &MovieOutput{Body: m}, nil
}

func (s *Server) handleUpdateMovie(ctx context.Context, input *UpdateMovieInput) (*MovieOutput, error) {
	m, err := s.services.Movie.Update(ctx, input.ID, input.RawBody)
	if err != nil {
		return nil, s.handleError(ctx, err)
	}

	return &MovieOutput{Body: m}, nil
}

func (s *Server) handleDeleteMovie(ctx context.Context, input *DeleteMovieInput) (*dto.MessageOutput, error) {
	if err := s.services.Movie.Delete(ctx, input.ID); err != nil {
		return nil, s.handleError(ctx, err)
	}

	return &dto.MessageOutput{Body: dto.MessageResponse{Message: movieDeletedMessage}}, nil
}
