// Package service holds the business logic behind the movies API.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/moviesapp/movies-server/internal/domain"
	domainerrors "github.com/moviesapp/movies-server/internal/errors"
	"github.com/moviesapp/movies-server/internal/id"
	"github.com/moviesapp/movies-server/internal/store"
	"github.com/moviesapp/movies-server/internal/validation"
)

// MovieNotFoundMessage is the message returned for any unknown movie id.
const MovieNotFoundMessage = "Movie not found"

// MovieCatalog is the storage the movie service works against.
type MovieCatalog interface {
	List(genre string) []domain.Movie
	Get(id string) (domain.Movie, error)
	Append(m domain.Movie) error
	Update(id string, fn func(domain.Movie) domain.Movie) (domain.Movie, error)
	Remove(id string) error
	Count() int
}

// MovieService validates payloads and applies them to the catalog.
type MovieService struct {
	catalog   MovieCatalog
	validator *validation.Validator
	newID     func() string
	logger    *slog.Logger
}

// NewMovieService creates a new movie service.
func NewMovieService(catalog MovieCatalog, validator *validation.Validator, logger *slog.Logger) *MovieService {
	return &MovieService{
		catalog:   catalog,
		validator: validator,
		newID:     id.New,
		logger:    logger,
	}
}

// List returns every movie, or only those tagged with genre when it is non-empty.
func (s *MovieService) List(_ context.Context, genre string) []domain.Movie {
	return s.catalog.List(genre)
}

// Get returns a single movie.
func (s *MovieService) Get(_ context.Context, movieID string) (domain.Movie, error) {
	m, err := s.catalog.Get(movieID)
	if err != nil {
		return domain.Movie{}, translate(err)
	}
	return m, nil
}

// Create validates a full payload and appends the new movie under a fresh id.
func (s *MovieService) Create(ctx context.Context, body []byte) (domain.Movie, error) {
	m, err := s.validator.ValidateFull(body)
	if err != nil {
		return domain.Movie{}, err
	}

	m.ID = s.newID()
	if err := s.catalog.Append(m); err != nil {
		return domain.Movie{}, fmt.Errorf("append movie: %w", err)
	}

	s.logger.InfoContext(ctx, "movie created", "movie_id", m.ID, "title", m.Title)
	return m, nil
}

// Update validates a partial payload and merges it over the stored movie.
// Validation runs before the lookup, so a bad payload is reported even for an unknown id.
func (s *MovieService) Update(ctx context.Context, movieID string, body []byte) (domain.Movie, error) {
	patch, err := s.validator.ValidatePartial(body)
	if err != nil {
		return domain.Movie{}, err
	}

	updated, err := s.catalog.Update(movieID, patch.ApplyTo)
	if err != nil {
		return domain.Movie{}, translate(err)
	}

	if !patch.IsEmpty() {
		s.logger.InfoContext(ctx, "movie updated", "movie_id", movieID)
	}
	return updated, nil
}

// Delete removes a movie.
func (s *MovieService) Delete(ctx context.Context, movieID string) error {
	if err := s.catalog.Remove(movieID); err != nil {
		return translate(err)
	}

	s.logger.InfoContext(ctx, "movie deleted", "movie_id", movieID)
	return nil
}

// Count returns the number of movies in the catalog.
func (s *MovieService) Count() int {
	return s.catalog.Count()
}

// translate maps catalog lookup misses to the API's not-found error.
func translate(err error) error {
	if errors.Is(err, store.ErrMovieNotFound) {
		return domainerrors.NotFound(MovieNotFoundMessage).WithCause(err)
	}
	return err
}
