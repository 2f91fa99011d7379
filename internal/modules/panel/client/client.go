// Package client talks to the weather query endpoint that feeds the panel.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

// maxErrorBody bounds how much of a failed response ends up in the error.
const maxErrorBody = 512

// maxAbsTemperature bounds a believable reading in degrees Celsius.
const maxAbsTemperature = 150

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. with httptest.Server.Client().
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger for request tracing. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a client for the endpoint rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	// Copy so a caller-supplied client is never mutated.
	hc := *c.httpClient
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	hc.Transport = NewLoggingTransport(hc.Transport, c.logger)
	c.httpClient = &hc
	return c, nil
}

// WeatherURL returns the request URL for id.
func (c *Client) WeatherURL(id types.DistrictID) string {
	return c.baseURL.JoinPath("api", "weather", id.String()).String()
}

// FetchWeather issues one GET /api/weather/{id} and decodes the response.
func (c *Client) FetchWeather(ctx context.Context, id types.DistrictID) (types.WeatherResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.WeatherURL(id), nil)
	if err != nil {
		return types.WeatherResponse{}, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.WeatherResponse{}, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.WeatherResponse{}, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.WeatherResponse{}, &TransportError{StatusCode: resp.StatusCode, Err: errors.New(truncate(string(body), maxErrorBody))}
	}

	return Decode(body)
}

// Decode parses a weather payload. A non-empty error field wins over every other field.
func Decode(body []byte) (types.WeatherResponse, error) {
	var raw struct {
		Temperature   *float64           `json:"temperature"`
		Precipitation float64            `json:"precipitation"`
		Summary       string             `json:"summary"`
		ChartData     []types.ChartPoint `json:"chart_data"`
		Error         string             `json:"error"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return types.WeatherResponse{}, &ParseError{Err: err}
	}
	if raw.Error != "" {
		return types.WeatherResponse{}, &ReportedError{Message: raw.Error}
	}
	if raw.Temperature == nil {
		return types.WeatherResponse{}, &ParseError{Err: errors.New("missing temperature")}
	}
	if math.Abs(*raw.Temperature) > maxAbsTemperature {
		return types.WeatherResponse{}, &ParseError{Err: fmt.Errorf("temperature %g out of range", *raw.Temperature)}
	}

	return types.WeatherResponse{
		Temperature:   *raw.Temperature,
		Precipitation: raw.Precipitation,
		Summary:       raw.Summary,
		ChartData:     raw.ChartData,
	}, nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
