// Package domain contains the core types of the movies catalog.
package domain

import "slices"

// Movie is a single catalog entry.
// ID is assigned on creation and never changes afterwards.
type Movie struct {
	ID       string   `json:"id" doc:"Movie ID"`
	Title    string   `json:"title" doc:"Movie title"`
	Year     int      `json:"year" doc:"Release year"`
	Director string   `json:"director" doc:"Director name"`
	Duration int      `json:"duration" doc:"Runtime in minutes"`
	Rating   float64  `json:"rating" doc:"Rating on a 0-10 scale"`
	Poster   string   `json:"poster" doc:"Poster image URL"`
	Genre    []string `json:"genre" doc:"Genre tags"`
}

// Clone returns a deep copy so callers never share the genre backing array.
func (m Movie) Clone() Movie {
	m.Genre = slices.Clone(m.Genre)
	return m
}

// HasGenre reports whether any of the movie's genres satisfies match.
func (m Movie) HasGenre(match func(string) bool) bool {
	return slices.ContainsFunc(m.Genre, match)
}

// MoviePatch carries the fields supplied in a partial update.
// A nil field was not supplied and keeps its current value.
type MoviePatch struct {
	Title    *string
	Year     *int
	Director *string
	Duration *int
	Rating   *float64
	Poster   *string
	Genre    []string
}

// IsEmpty reports whether the patch supplies no fields.
func (p MoviePatch) IsEmpty() bool {
	return p.Title == nil && p.Year == nil && p.Director == nil &&
		p.Duration == nil && p.Rating == nil && p.Poster == nil && p.Genre == nil
}

// ApplyTo merges the supplied fields over m and returns the result.
// Genre is replaced wholesale. The ID is never touched.
func (p MoviePatch) ApplyTo(m Movie) Movie {
	merged := m.Clone()
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Year != nil {
		merged.Year = *p.Year
	}
	if p.Director != nil {
		merged.Director = *p.Director
	}
	if p.Duration != nil {
		merged.Duration = *p.Duration
	}
	if p.Rating != nil {
		merged.Rating = *p.Rating
	}
	if p.Poster != nil {
		merged.Poster = *p.Poster
	}
	if p.Genre != nil {
		merged.Genre = slices.Clone(p.Genre)
	}
	return merged
}
