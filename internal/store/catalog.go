// Package store holds the in-memory movie catalog.
package store

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/cases"

	"github.com/moviesapp/movies-server/internal/domain"
)

// Catalog is the ordered, process-lifetime collection of movies.
// A single RWMutex serializes writers and gives readers consistent snapshots.
// Callers are responsible for validating records before storing them.
type Catalog struct {
	mu     sync.RWMutex
	movies []domain.Movie
	index  map[string]int // id -> position in movies
}

// NewCatalog creates a catalog seeded with movies in the given order.
func NewCatalog(seed []domain.Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]domain.Movie, 0, len(seed)),
		index:  make(map[string]int, len(seed)),
	}
	for i, m := range seed {
		if err := c.appendLocked(m); err != nil {
			return nil, fmt.Errorf("seed movie %d (%q): %w", i, m.ID, err)
		}
	}
	return c, nil
}

// List returns movies in insertion order. A non-empty genre keeps only
// movies with a genre equal to it under Unicode case folding.
func (c *Catalog) List(genre string) []domain.Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]domain.Movie, 0, len(c.movies))
	if genre == "" {
		for _, m := range c.movies {
			result = append(result, m.Clone())
		}
		return result
	}

	fold := cases.Fold()
	want := fold.String(genre)
	for _, m := range c.movies {
		if m.HasGenre(func(g string) bool { return fold.String(g) == want }) {
			result = append(result, m.Clone())
		}
	}
	return result
}

// Get returns the movie with id.
func (c *Catalog) Get(id string) (domain.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return domain.Movie{}, ErrMovieNotFound
	}
	return c.movies[pos].Clone(), nil
}

// Append adds m at the end of the catalog.
func (c *Catalog) Append(m domain.Movie) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.appendLocked(m)
}

func (c *Catalog) appendLocked(m domain.Movie) error {
	if m.ID == "" {
		return ErrEmptyID
	}
	if _, exists := c.index[m.ID]; exists {
		return ErrDuplicateID
	}
	c.index[m.ID] = len(c.movies)
	c.movies = append(c.movies, m.Clone())
	return nil
}

// Replace overwrites the movie stored under id, keeping its position.
// The stored ID stays id whatever m.ID holds.
func (c *Catalog) Replace(id string, m domain.Movie) error {
	_, err := c.Update(id, func(domain.Movie) domain.Movie { return m })
	return err
}

// Update applies fn to the movie stored under id and stores the result,
// all under one write lock. It returns the stored movie.
func (c *Catalog) Update(id string, fn func(domain.Movie) domain.Movie) (domain.Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return domain.Movie{}, ErrMovieNotFound
	}

	updated := fn(c.movies[pos].Clone()).Clone()
	updated.ID = id
	c.movies[pos] = updated
	return updated.Clone(), nil
}

// Remove deletes the movie with id. The remaining movies keep their order.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return ErrMovieNotFound
	}

	c.movies = slices.Delete(c.movies, pos, pos+1)
	delete(c.index, id)
	for i := pos; i < len(c.movies); i++ {
		c.index[c.movies[i].ID] = i
	}
	return nil
}

// Count returns the number of movies.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.movies)
}
