// Package validation checks movie payloads against the catalog's field rules using the validator/v10 library.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/moviesapp/movies-server/internal/domain"
	domainerrors "github.com/moviesapp/movies-server/internal/errors"
)

const (
	// MinYear is the earliest release year accepted.
	MinYear = 1900
	// maxYearLead is how many years past the current one a release may be scheduled.
	maxYearLead = 5

	tagMovieYear = "movieyear"
	tagNotBlank  = "notblank"
)

// FieldError describes one offending field in a payload.
type FieldError struct {
	Field   string `json:"field" doc:"Offending field"`
	Message string `json:"message" doc:"Why the field was rejected"`
}

// Validator wraps go-playground/validator with the movie field rules.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New creates a validator whose year bound follows the wall clock.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a validator that computes the year bound from now.
func NewWithClock(now func() time.Time) *Validator {
	val := &Validator{
		v:   validator.New(validator.WithRequiredStructEnabled()),
		now: now,
	}
	if err := val.v.RegisterValidation(tagMovieYear, val.validYear); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tagMovieYear, err))
	}
	if err := val.v.RegisterValidation(tagNotBlank, validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tagNotBlank, err))
	}
	return val
}

// MaxYear returns the latest release year currently accepted.
func (v *Validator) MaxYear() int {
	return v.now().Year() + maxYearLead
}

func (v *Validator) validYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinYear && year <= int64(v.MaxYear())
}

// ValidateFull checks a create payload. Every field must be present and valid.
func (v *Validator) ValidateFull(body []byte) (domain.Movie, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return domain.Movie{}, err
	}

	var movie domain.Movie
	bindings, errs := v.check(fields, true)
	if len(errs) > 0 {
		return domain.Movie{}, newError(errs)
	}
	for _, b := range bindings {
		b.movie(&movie)
	}
	return movie, nil
}

// ValidatePartial checks an update payload. Fields are optional but must be
// valid when present. An empty object yields an empty patch.
func (v *Validator) ValidatePartial(body []byte) (domain.MoviePatch, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return domain.MoviePatch{}, err
	}

	var patch domain.MoviePatch
	bindings, errs := v.check(fields, false)
	if len(errs) > 0 {
		return domain.MoviePatch{}, newError(errs)
	}
	for _, b := range bindings {
		b.patch(&patch)
	}
	return patch, nil
}

// ValidateMovie checks an already-typed record against the full rules.
// The ID is not checked.
func (v *Validator) ValidateMovie(m domain.Movie) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode movie: %w", err)
	}
	fields, err := decodeObject(body)
	if err != nil {
		return err
	}
	delete(fields, "id")

	if _, errs := v.check(fields, true); len(errs) > 0 {
		return newError(errs)
	}
	return nil
}

// check runs every rule over fields. Errors come back in rule order,
// followed by unrecognized keys in sorted order.
func (v *Validator) check(fields map[string]json.RawMessage, full bool) ([]binding, []FieldError) {
	var (
		bindings []binding
		errs     []FieldError
	)

	for _, r := range rules {
		raw, ok := fields[r.name]
		if !ok {
			if full {
				errs = append(errs, FieldError{Field: r.name, Message: "is required"})
			}
			continue
		}
		b, msg := r.parse(v, raw)
		if msg != "" {
			errs = append(errs, FieldError{Field: r.name, Message: msg})
			continue
		}
		bindings = append(bindings, b)
	}

	var unknown []string
	for key := range fields {
		if !isKnownField(key) {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	for _, key := range unknown {
		errs = append(errs, FieldError{Field: key, Message: "is not a recognized field"})
	}

	return bindings, errs
}

// FieldErrors extracts the offending fields from a validation error.
// It returns nil for any other error.
func FieldErrors(err error) []FieldError {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code != domainerrors.CodeValidation {
		return nil
	}
	fieldErrs, _ := domainErr.Details.([]FieldError)
	return fieldErrs
}

func newError(errs []FieldError) error {
	return domainerrors.ValidationWithDetails("validation failed", errs)
}

// decodeObject splits a JSON object into its raw members.
// encoding/json would replace invalid UTF-8 with U+FFFD, so such bodies are refused up front.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	if !utf8.Valid(body) {
		return nil, newError([]FieldError{{Field: "body", Message: "must be valid UTF-8"}})
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, newError([]FieldError{{Field: "body", Message: "must be a JSON object"}})
	}
	return fields, nil
}

// decodeValue decodes raw into T. JSON null is never accepted.
func decodeValue[T any](raw json.RawMessage) (T, bool) {
	var value T
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false
	}
	return value, true
}

func (v *Validator) friendlyMessage(value any, err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "is invalid"
	}
	e := validationErrs[0]

	// A dive failure reports the element, not the collection.
	if e.Kind() != reflect.ValueOf(value).Kind() {
		if e.Tag() == "required" || e.Tag() == tagNotBlank {
			return "must not contain empty values"
		}
		return "contains an invalid value"
	}

	switch e.Tag() {
	case "required", tagNotBlank:
		return "must not be empty"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "url", "http_url":
		return "must be a valid URL"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case tagMovieYear:
		return fmt.Sprintf("must be between %d and %d", MinYear, v.MaxYear())
	default:
		return "is invalid"
	}
}
