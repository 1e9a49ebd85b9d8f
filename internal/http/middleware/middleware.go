package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
)

const headerRequestID = "X-Request-ID"

// LoggingMiddleware tags every request with an ID, stores a request-scoped
// logger in the context, and records the outcome once the handler returns.
// Server errors log at error level and client errors at warn.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(headerRequestID))
		w.Header().Set(headerRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
		)
		ctx := withRequestID(logging.WithLogger(r.Context(), logger), reqID)

		sw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), sw.status, elapsed)

		logger.Log(ctx, levelFor(sw.status), "request complete",
			slog.Int(logging.FieldStatusCode, sw.status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Int("bytes", sw.written),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
	})
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

type responseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

// Flush lets the streaming MCP endpoint flush through the wrapper.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the ID assigned by LoggingMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// idCollections lists the path prefixes whose second segment is an identifier.
var idCollections = map[string]bool{
	"players": true,
	"drafts":  true,
}

// normalizePath replaces identifier segments with ":id" so metric labels stay
// bounded. Segments after the identifier are kept.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	path, _, _ = strings.Cut(path, "?")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || len(parts) > 3 || !idCollections[parts[0]] {
		return path
	}
	if parts[0] == "players" && len(parts) == 3 {
		return path
	}
	parts[1] = ":id"
	return "/" + strings.Join(parts, "/")
}
