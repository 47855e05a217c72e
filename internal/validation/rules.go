package validation

import (
	"encoding/json"

	"github.com/moviesapp/movies-server/internal/domain"
)

// binding assigns one validated value to a record or a patch.
type binding struct {
	movie func(*domain.Movie)
	patch func(*domain.MoviePatch)
}

// fieldRule is one row of the schema: the JSON member, its expected type,
// and the validator tag it must satisfy.
type fieldRule struct {
	name  string
	parse func(v *Validator, raw json.RawMessage) (binding, string)
}

// rules is the movie schema. Full and partial validation both read it.
var rules = []fieldRule{
	rule("title", "a string", "notblank",
		func(m *domain.Movie, s string) { m.Title = s },
		func(p *domain.MoviePatch, s string) { p.Title = &s }),
	rule("year", "an integer", "movieyear",
		func(m *domain.Movie, n int) { m.Year = n },
		func(p *domain.MoviePatch, n int) { p.Year = &n }),
	rule("director", "a string", "notblank",
		func(m *domain.Movie, s string) { m.Director = s },
		func(p *domain.MoviePatch, s string) { p.Director = &s }),
	rule("duration", "an integer", "gt=0",
		func(m *domain.Movie, n int) { m.Duration = n },
		func(p *domain.MoviePatch, n int) { p.Duration = &n }),
	rule("rating", "a number", "gte=0,lte=10",
		func(m *domain.Movie, f float64) { m.Rating = f },
		func(p *domain.MoviePatch, f float64) { p.Rating = &f }),
	rule("poster", "a string", "required,http_url",
		func(m *domain.Movie, s string) { m.Poster = s },
		func(p *domain.MoviePatch, s string) { p.Poster = &s }),
	rule("genre", "an array of strings", "min=1,dive,notblank",
		func(m *domain.Movie, g []string) { m.Genre = g },
		func(p *domain.MoviePatch, g []string) { p.Genre = g }),
}

func rule[T any](name, kind, tag string, toMovie func(*domain.Movie, T), toPatch func(*domain.MoviePatch, T)) fieldRule {
	return fieldRule{
		name: name,
		parse: func(v *Validator, raw json.RawMessage) (binding, string) {
			value, ok := decodeValue[T](raw)
			if !ok {
				return binding{}, "must be " + kind
			}
			if err := v.v.Var(value, tag); err != nil {
				return binding{}, v.friendlyMessage(value, err)
			}
			return binding{
				movie: func(m *domain.Movie) { toMovie(m, value) },
				patch: func(p *domain.MoviePatch) { toPatch(p, value) },
			}, ""
		},
	}
}

// Fields returns the recognized field names in schema order.
func Fields() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

func isKnownField(name string) bool {
	for _, r := range rules {
		if r.name == name {
			return true
		}
	}
	return false
}
