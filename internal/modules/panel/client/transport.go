package client

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport wraps an http.RoundTripper to log every weather request.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport returns a RoundTripper that logs method, url, status and
// duration at debug level. A nil next uses http.DefaultTransport; a nil logger
// uses slog.Default().
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	attrs := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		t.logger.DebugContext(req.Context(), "weather request failed", append(attrs, "error", err)...)
		return nil, err
	}
	t.logger.DebugContext(req.Context(), "weather request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
