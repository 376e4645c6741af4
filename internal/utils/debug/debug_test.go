package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/babarot/lomiri-camera-app-migrate/internal/config"
)

func TestShowExistingLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	content := "DEBUG migration started\nINFO  renamed artifact=config\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Logs(&buf, path, config.NewDefaultConfig().Logging, false); err != nil {
		t.Fatalf("Logs() error = %v", err)
	}
	if buf.String() != content {
		t.Errorf("Logs() wrote %q, want %q", buf.String(), content)
	}
}

func TestShowExistingLogsMissing(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    string
	}{
		{"logging enabled", true, "no log file exists yet"},
		{"logging disabled", false, "logging is not enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig().Logging
			cfg.Enabled = tt.enabled
			err := Logs(&bytes.Buffer{}, filepath.Join(t.TempDir(), "debug.log"), cfg, false)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Logs() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
