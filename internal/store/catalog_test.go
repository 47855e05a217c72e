package store_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/moviesapp/movies-server/internal/domain"
	"github.com/moviesapp/movies-server/internal/store"
)

func movie(id string, genres ...string) domain.Movie {
	return domain.Movie{
		ID:       id,
		Title:    "Movie " + id,
		Year:     2000,
		Director: "Director " + id,
		Duration: 120,
		Rating:   7,
		Poster:   "https://posters.test/" + id + ".jpg",
		Genre:    genres,
	}
}

func ids(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func newCatalog(t *testing.T, seed ...domain.Movie) *store.Catalog {
	t.Helper()
	c, err := store.NewCatalog(seed)
	require.NoError(t, err)
	return c
}

func TestNewCatalog_RejectsBadSeed(t *testing.T) {
	_, err := store.NewCatalog([]domain.Movie{movie("a", "Drama"), movie("a", "Crime")})
	assert.ErrorIs(t, err, store.ErrDuplicateID)

	_, err = store.NewCatalog([]domain.Movie{movie("", "Drama")})
	assert.ErrorIs(t, err, store.ErrEmptyID)
}

func TestCatalog_List_InsertionOrder(t *testing.T) {
	c := newCatalog(t, movie("c", "Drama"), movie("a", "Action"), movie("b", "Drama"))
	require.NoError(t, c.Append(movie("0", "Comedy")))

	assert.Equal(t, []string{"c", "a", "b", "0"}, ids(c.List("")))
}

func TestCatalog_List_GenreFilter(t *testing.T) {
	c := newCatalog(t,
		movie("1", "Action", "Drama"),
		movie("2", "drama"),
		movie("3", "Action"),
		movie("4", "Dramatic"),
		movie("5", "Straße"),
	)

	tests := []struct {
		filter string
		want   []string
	}{
		{"drama", []string{"1", "2"}},
		{"DRAMA", []string{"1", "2"}},
		{"action", []string{"1", "3"}},
		{"act", []string{}},
		{"dram", []string{}},
		{"STRASSE", []string{"5"}},
		{"Horror", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got := c.List(tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCatalog_List_ReturnsCopies(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"))

	listed := c.List("")
	listed[0].Title = "changed"
	listed[0].Genre[0] = "changed"

	got, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Movie 1", got.Title)
	assert.Equal(t, []string{"Drama"}, got.Genre)
}

func TestCatalog_Get(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"))

	got, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, movie("1", "Drama"), got)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestCatalog_Append(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"))

	require.NoError(t, c.Append(movie("2", "Action")))
	assert.Equal(t, 2, c.Count())

	assert.ErrorIs(t, c.Append(movie("2", "Comedy")), store.ErrDuplicateID)
	assert.ErrorIs(t, c.Append(movie("", "Comedy")), store.ErrEmptyID)
	assert.Equal(t, 2, c.Count())
}

func TestCatalog_Replace_KeepsIDAndPosition(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"), movie("2", "Action"), movie("3", "Comedy"))

	replacement := movie("other", "Horror")
	require.NoError(t, c.Replace("2", replacement))

	assert.Equal(t, []string{"1", "2", "3"}, ids(c.List("")))
	got, err := c.Get("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Horror"}, got.Genre)
	assert.Equal(t, "2", got.ID)

	_, err = c.Get("other")
	assert.ErrorIs(t, err, store.ErrMovieNotFound)

	assert.ErrorIs(t, c.Replace("missing", replacement), store.ErrMovieNotFound)
}

func TestCatalog_Update(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"))

	updated, err := c.Update("1", func(m domain.Movie) domain.Movie {
		m.Rating = 9
		m.ID = "hijack"
		return m
	})
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, 9.0, updated.Rating)

	_, err = c.Update("missing", func(m domain.Movie) domain.Movie { return m })
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
}

func TestCatalog_Remove(t *testing.T) {
	c := newCatalog(t, movie("1", "Drama"), movie("2", "Action"), movie("3", "Comedy"))

	require.NoError(t, c.Remove("2"))
	assert.Equal(t, []string{"1", "3"}, ids(c.List("")))

	// Index must follow the shifted positions.
	got, err := c.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)

	assert.ErrorIs(t, c.Remove("2"), store.ErrMovieNotFound)
	assert.Equal(t, 2, c.Count())
}

func TestCatalog_ConcurrentWriters(t *testing.T) {
	c := newCatalog(t)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("m-%d", i)
			assert.NoError(t, c.Append(movie(id, "Drama")))
			_, err := c.Update(id, func(m domain.Movie) domain.Movie {
				m.Rating = 8
				return m
			})
			assert.NoError(t, err)
			_ = c.List("drama")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Count())
	for _, m := range c.List("") {
		assert.Equal(t, 8.0, m.Rating)
	}
}

var genreGen = rapid.SampledFrom([]string{"Action", "Drama", "Comedy", "Sci-Fi", "Crime", "Romance"})

func TestCatalog_GenreFilter_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "n")
		seed := make([]domain.Movie, n)
		for i := range seed {
			genres := rapid.SliceOfNDistinct(genreGen, 1, 3, rapid.ID[string]).Draw(t, fmt.Sprintf("genres%d", i))
			seed[i] = movie(fmt.Sprintf("m%d", i), genres...)
		}
		c, err := store.NewCatalog(seed)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}

		filter := genreGen.Draw(t, "filter")
		if rapid.Bool().Draw(t, "upper") {
			filter = strings.ToUpper(filter)
		} else {
			filter = strings.ToLower(filter)
		}

		var want []string
		for _, m := range seed {
			for _, g := range m.Genre {
				if strings.EqualFold(g, filter) {
					want = append(want, m.ID)
					break
				}
			}
		}

		got := ids(c.List(filter))
		if len(got) != len(want) {
			t.Fatalf("filter %q: got %v, want %v", filter, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("filter %q: got %v, want %v", filter, got, want)
			}
		}

		// A strict prefix never matches.
		if prefix := filter[:len(filter)-1]; prefix != "" {
			for _, m := range c.List(prefix) {
				t.Fatalf("prefix %q matched %s", prefix, m.ID)
			}
		}
	})
}

func TestCatalog_Remove_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(t, "n")
		seed := make([]domain.Movie, n)
		for i := range seed {
			seed[i] = movie(fmt.Sprintf("m%d", i), "Drama")
		}
		c, err := store.NewCatalog(seed)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}

		victim := rapid.IntRange(0, n-1).Draw(t, "victim")
		if err := c.Remove(seed[victim].ID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if err := c.Remove("missing"); err == nil {
			t.Fatalf("removing an unknown id succeeded")
		}
		if c.Count() != n-1 {
			t.Fatalf("count %d, want %d", c.Count(), n-1)
		}
		for i, m := range seed {
			got, err := c.Get(m.ID)
			if i == victim {
				if err == nil {
					t.Fatalf("removed movie %s still present", m.ID)
				}
				continue
			}
			if err != nil || got.ID != m.ID {
				t.Fatalf("get %s: %v", m.ID, err)
			}
		}
	})
}
