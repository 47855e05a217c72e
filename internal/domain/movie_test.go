package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMovie() Movie {
	return Movie{
		ID:       "dcdd0fad-a94c-4810-8acc-5f108d3b18c3",
		Title:    "The Shawshank Redemption",
		Year:     1994,
		Director: "Frank Darabont",
		Duration: 142,
		Rating:   9.3,
		Poster:   "https://i.ebayimg.com/images/g/4goAAOSwMyBe7hnQ/s-l1200.webp",
		Genre:    []string{"Drama"},
	}
}

func ptr[T any](v T) *T { return &v }

func TestMoviePatch_ApplyTo_OnlySuppliedFields(t *testing.T) {
	m := testMovie()

	merged := MoviePatch{Rating: ptr(9.0)}.ApplyTo(m)

	want := testMovie()
	want.Rating = 9.0
	assert.Equal(t, want, merged)
}

func TestMoviePatch_ApplyTo_ReplacesGenreWholesale(t *testing.T) {
	m := testMovie()
	m.Genre = []string{"Drama", "Crime"}

	merged := MoviePatch{Genre: []string{"Thriller"}}.ApplyTo(m)

	assert.Equal(t, []string{"Thriller"}, merged.Genre)
	assert.Equal(t, []string{"Drama", "Crime"}, m.Genre, "original must not change")
}

func TestMoviePatch_ApplyTo_KeepsID(t *testing.T) {
	m := testMovie()

	merged := MoviePatch{
		Title:    ptr("Other"),
		Year:     ptr(2001),
		Director: ptr("Someone"),
		Duration: ptr(90),
		Poster:   ptr("https://example.com/p.png"),
	}.ApplyTo(m)

	assert.Equal(t, m.ID, merged.ID)
	assert.Equal(t, "Other", merged.Title)
	assert.Equal(t, 2001, merged.Year)
	assert.Equal(t, "Someone", merged.Director)
	assert.Equal(t, 90, merged.Duration)
	assert.Equal(t, "https://example.com/p.png", merged.Poster)
	assert.Equal(t, m.Rating, merged.Rating)
}

func TestMoviePatch_IsEmpty(t *testing.T) {
	assert.True(t, MoviePatch{}.IsEmpty())
	assert.False(t, MoviePatch{Year: ptr(2000)}.IsEmpty())
	assert.False(t, MoviePatch{Genre: []string{}}.IsEmpty())
}

func TestMovie_Clone_DetachesGenre(t *testing.T) {
	m := testMovie()
	c := m.Clone()
	c.Genre[0] = "Comedy"

	assert.Equal(t, "Drama", m.Genre[0])
}

func TestMovie_HasGenre(t *testing.T) {
	m := testMovie()

	assert.True(t, m.HasGenre(func(g string) bool { return g == "Drama" }))
	assert.False(t, m.HasGenre(func(g string) bool { return g == "Action" }))
}
