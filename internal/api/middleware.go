package api

import (
	"net/http"

	domainerrors "github.com/moviesapp/movies-server/internal/errors"
)

// requireAllowedOrigin rejects requests whose Origin header is present and not
// on the allow-list. The 403 carries no body.
func (s *Server) requireAllowedOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o := r.Header.Get("Origin")
		if !s.policy.IsAllowed(o) {
			s.logger.Warn("Origin not allowed",
				"origin", o,
				"method", r.Method,
				"path", r.URL.Path,
			)
			writeError(w, domainerrors.ErrOriginDenied, s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}
