package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/babarot/lomiri-camera-app-migrate/internal/config"
)

func TestRotateWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "debug.log")

	w, err := NewRotateWriter(path, config.LoggingConfig{
		Enabled: true,
		Level:   "debug",
		Rotation: config.RotationConfig{
			MaxSize:  "16B",
			MaxFiles: 2,
		},
	})
	if err != nil {
		t.Fatalf("NewRotateWriter() error = %v", err)
	}
	defer w.Close()

	line := []byte("0123456789\n")
	for i := 0; i < 5; i++ {
		if _, err := w.Write(line); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug.log.") {
			backups++
		}
	}
	if backups > 2 {
		t.Errorf("kept %d backups, want at most 2", backups)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != string(line) {
		t.Errorf("current log = %q, want a single line", b)
	}
}

func TestNewRotateWriterInvalidSize(t *testing.T) {
	_, err := NewRotateWriter(filepath.Join(t.TempDir(), "debug.log"), config.LoggingConfig{
		Rotation: config.RotationConfig{MaxSize: "huge"},
	})
	if err == nil {
		t.Fatal("NewRotateWriter() error = nil, want error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"WARN", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
