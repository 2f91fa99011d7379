package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// captureHandler records log records for assertion in tests.
type captureHandler struct {
	mu    sync.Mutex
	attrs []map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := make(map[string]slog.Value)
	m["msg"] = slog.StringValue(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value
		return true
	})
	h.attrs = append(h.attrs, m)
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(name string) slog.Handler { return h }

func (h *captureHandler) recordsFor(t *testing.T, msg string) []map[string]slog.Value {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []map[string]slog.Value
	for _, m := range h.attrs {
		if m["msg"].String() == msg {
			out = append(out, m)
		}
	}
	return out
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_logsRequests(t *testing.T) {
	handler := &captureHandler{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"temperature": 12, "summary": "Dry", "chart_data": []}`))
	}))
	t.Cleanup(ts.Close)

	c, err := New(ts.URL, WithHTTPClient(ts.Client()), WithLogger(slog.New(handler)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := c.FetchWeather(context.Background(), 3); err != nil {
		t.Fatalf("FetchWeather() error = %v", err)
	}

	recs := handler.recordsFor(t, "weather request")
	if len(recs) != 1 {
		t.Fatalf("got %d weather request logs; want 1", len(recs))
	}
	if got := recs[0]["url"].String(); got != ts.URL+"/api/weather/3" {
		t.Errorf("url = %q; want %q", got, ts.URL+"/api/weather/3")
	}
	if got := recs[0]["status"].Int64(); got != http.StatusOK {
		t.Errorf("status = %d; want %d", got, http.StatusOK)
	}
	if got := recs[0]["method"].String(); got != http.MethodGet {
		t.Errorf("method = %q; want GET", got)
	}
}

func TestLoggingTransport_logsFailures(t *testing.T) {
	handler := &captureHandler{}
	boom := errors.New("connection refused")
	rt := NewLoggingTransport(roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	}), slog.New(handler))

	req := httptest.NewRequest(http.MethodGet, "http://weather.invalid/api/weather/1", nil)
	_, err := rt.RoundTrip(req)
	if !errors.Is(err, boom) {
		t.Fatalf("RoundTrip() error = %v; want %v", err, boom)
	}

	recs := handler.recordsFor(t, "weather request failed")
	if len(recs) != 1 {
		t.Fatalf("got %d failure logs; want 1", len(recs))
	}
	if got := recs[0]["error"].String(); got != boom.Error() {
		t.Errorf("error = %q; want %q", got, boom.Error())
	}
}

func TestNew_doesNotMutateCallerClient(t *testing.T) {
	hc := &http.Client{}
	if _, err := New("http://localhost:5001", WithHTTPClient(hc), WithTimeout(time.Second)); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if hc.Timeout != 0 || hc.Transport != nil {
		t.Errorf("caller client changed: timeout=%v transport=%v", hc.Timeout, hc.Transport)
	}
}
