package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/usabbag/rainparis/internal/config"
)

func TestNewLogger_prodWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, config.Config{AppEnv: "prod", LogLevel: slog.LevelInfo}, "1.2.0", "rainparis")

	l.Debug("hidden")
	l.Info("weather panel updated", "district", 5)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	for k, want := range map[string]any{
		"msg":      "weather panel updated",
		"app":      "rainparis",
		"version":  "1.2.0",
		"env":      "prod",
		"district": float64(5),
	} {
		if entry[k] != want {
			t.Errorf("%s = %v; want %v", k, entry[k], want)
		}
	}
}

func TestNewLogger_devWritesText(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantVersion bool
	}{
		{name: "local build", version: "dev"},
		{name: "release build", version: "1.2.0", wantVersion: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, config.Config{AppEnv: "dev", LogLevel: slog.LevelDebug}, tt.version, "rainparis")

			l.Debug("district selected", "district", 5)

			out := buf.String()
			if json.Valid(bytes.TrimSpace(buf.Bytes())) {
				t.Fatalf("dev log is JSON: %q", out)
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("dev log to a buffer has color codes: %q", out)
			}
			for _, want := range []string{"district selected", "app=rainparis", "district=5"} {
				if !strings.Contains(out, want) {
					t.Errorf("log %q missing %q", out, want)
				}
			}
			if got := strings.Contains(out, "version=1.2.0"); got != tt.wantVersion {
				t.Errorf("has version = %v; want %v (%q)", got, tt.wantVersion, out)
			}
		})
	}
}
