// Package origin decides which cross-origin callers may use the API.
package origin

import "slices"

// DefaultAllowed lists the origins accepted when none are configured.
var DefaultAllowed = []string{
	"http://localhost:8080",
	"http://localhost:1234",
	"http://movies.com",
	"http://midu.dev",
}

// Policy is a fixed allow-list of origins. It is safe for concurrent use
// because it is never modified after construction.
type Policy struct {
	allowed []string
}

// New creates a policy over a copy of allowed.
func New(allowed []string) *Policy {
	return &Policy{allowed: slices.Clone(allowed)}
}

// IsAllowed reports whether a request carrying this Origin header value may proceed.
// An empty origin means a same-origin or non-browser caller and is always allowed.
// Matching is exact; browsers send origins already normalized.
func (p *Policy) IsAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	return slices.Contains(p.allowed, origin)
}

// Allowed returns a copy of the configured origins.
func (p *Policy) Allowed() []string {
	return slices.Clone(p.allowed)
}
