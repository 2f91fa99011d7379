package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RequestIDHeader carries the id that ties a response to its request log line.
const RequestIDHeader = "X-Request-ID"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON",
			"status", status,
			"request_id", w.Header().Get(RequestIDHeader),
			"error", err,
		)
	}
}

// WriteError writes the panel's JSON error body. The request id is echoed
// when the middleware has already set it on the response.
func WriteError(w http.ResponseWriter, status int, msg string) {
	body := map[string]any{
		"error":   http.StatusText(status),
		"message": msg,
	}
	if id := w.Header().Get(RequestIDHeader); id != "" {
		body["request_id"] = id
	}
	WriteJSON(w, status, body)
}
