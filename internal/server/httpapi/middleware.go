package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"wallmagic/internal/common"
	"wallmagic/internal/server/models"
)

// ctxKey is a type-safe key for request-context values.
type ctxKey string

const userKey ctxKey = "user"

// statusRecorder wraps http.ResponseWriter and remembers the status code.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// observeMiddleware logs each request and feeds the metrics collector.
// The log level follows the status code.
func (s *HTTPServer) observeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)

		// The route pattern keeps the metric label set bounded; unmatched
		// requests fall back to the raw path.
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		s.metrics.RecordRequest(r.Method, route, rec.statusCode, elapsed)

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.statusCode,
			"duration_ms", float64(elapsed.Nanoseconds()) / float64(time.Millisecond),
		}

		switch {
		case rec.statusCode >= 500:
			s.logger.Error(r.Context(), "http request", args...)
		case rec.statusCode >= 400:
			s.logger.Warn(r.Context(), "http request", args...)
		default:
			s.logger.Info(r.Context(), "http request", args...)
		}
	})
}

// recoveryMiddleware turns a handler panic into a 500 response instead of
// killing the process.
func (s *HTTPServer) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "panic recovered",
					"panic", fmt.Sprint(rec),
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware answers CORS headers for the configured origins and
// responds to OPTIONS preflight requests with 204.
func (s *HTTPServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := s.allowedOrigin(r.Header.Get("Origin"))
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *HTTPServer) allowedOrigin(requestOrigin string) string {
	for _, o := range s.origins {
		if o == "*" {
			return "*"
		}
		if requestOrigin != "" && o == requestOrigin {
			return requestOrigin
		}
	}
	return ""
}

// requireAuth authenticates the bearer token and injects the account into
// the request context. Verification failures collapse into one unauthorized
// signal; only a broken store surfaces as a 500.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerSchemePrefix)
		if !ok || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := s.accounts.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrorStoreUnavailable) {
				s.logger.Error(r.Context(), err.Error())
				writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
				return
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the account stored by requireAuth.
func userFromContext(ctx context.Context) (*models.User, error) {
	user, ok := ctx.Value(userKey).(*models.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("no authenticated user in context")
	}
	return user, nil
}
