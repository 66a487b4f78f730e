package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
)

// LoggingMiddleware returns a middleware that logs HTTP requests and passes
// the server logger to handlers through the request context
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := logging.From(ctx).With("request_id", middleware.GetReqID(r.Context()))

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(logging.With(r.Context(), logger)))
		})
	}
}

// statusOf maps error tags to HTTP status codes
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, types.ErrTagInvalidArgument):
		return http.StatusBadRequest
	case goerr.HasTag(err, types.ErrTagPackageNotFound),
		goerr.HasTag(err, types.ErrTagNoReleasesAvailable):
		return http.StatusNotFound
	case goerr.HasTag(err, types.ErrTagRegistryUnavailable),
		goerr.HasTag(err, types.ErrTagNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); err != nil {
		logging.From(ctx).Error("Failed to encode error response", "error", err)
	}
}
