package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// WeatherAPIBaseURL is the origin serving /api/weather/{id}.
	WeatherAPIBaseURL string
	// WeatherAPITimeout bounds one weather request. Zero means no timeout.
	WeatherAPITimeout time.Duration

	PanelTheme      string
	DefaultDistrict int
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("WEATHER_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:5001"
	}
	if err := validateBaseURL(baseURL); err != nil {
		return Config{}, err
	}

	timeoutStr := strings.TrimSpace(os.Getenv("WEATHER_API_TIMEOUT"))
	if timeoutStr == "" {
		timeoutStr = "0s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid WEATHER_API_TIMEOUT %q: %w", timeoutStr, err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid WEATHER_API_TIMEOUT %q: must be >= 0", timeoutStr)
	}

	theme := strings.ToLower(strings.TrimSpace(os.Getenv("PANEL_THEME")))
	if theme == "" {
		theme = "light"
	}
	switch theme {
	case "light", "dark":
	default:
		return Config{}, fmt.Errorf("invalid PANEL_THEME %q (allowed: light, dark)", theme)
	}

	defaultDistrictStr := strings.TrimSpace(os.Getenv("DEFAULT_DISTRICT"))
	if defaultDistrictStr == "" {
		defaultDistrictStr = "0"
	}
	defaultDistrict, err := strconv.Atoi(defaultDistrictStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_DISTRICT %q: %w", defaultDistrictStr, err)
	}
	if defaultDistrict < 0 {
		return Config{}, fmt.Errorf("invalid DEFAULT_DISTRICT %q: must be >= 0", defaultDistrictStr)
	}

	return Config{
		AppEnv:            appEnv,
		LogLevel:          level,
		HTTPAddr:          httpAddr,
		WeatherAPIBaseURL: baseURL,
		WeatherAPITimeout: timeout,
		PanelTheme:        theme,
		DefaultDistrict:   defaultDistrict,
	}, nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid WEATHER_API_BASE_URL %q: %w", s, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid WEATHER_API_BASE_URL %q (expected absolute http or https URL)", s)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
