// Package seed provides the dataset the catalog starts from.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/moviesapp/movies-server/internal/domain"
	"github.com/moviesapp/movies-server/internal/id"
	"github.com/moviesapp/movies-server/internal/validation"
)

//go:embed movies.json
var embedded []byte

// Load reads the dataset from path, or the embedded dataset when path is empty.
func Load(path string, v *validation.Validator) ([]domain.Movie, error) {
	if path == "" {
		return Parse(embedded, v)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- seed path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data, v)
}

// Parse decodes a JSON array of movies. Records without an id are given one.
// Every record must satisfy the full field rules.
func Parse(data []byte, v *validation.Validator) ([]domain.Movie, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var movies []domain.Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i := range movies {
		if movies[i].ID == "" {
			movies[i].ID = id.New()
		}
		if err := v.ValidateMovie(movies[i]); err != nil {
			return nil, fmt.Errorf("seed movie %d (%q): %w: %v", i, movies[i].Title, err, validation.FieldErrors(err))
		}
	}
	return movies, nil
}
