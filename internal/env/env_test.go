package env

import (
	"path/filepath"
	"testing"
)

func TestConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	testCases := []struct {
		name     string
		xdg      string
		expected string
	}{
		{
			name:     "XDG_CONFIG_HOME set",
			xdg:      "/custom/config",
			expected: "/custom/config",
		},
		{
			name:     "XDG_CONFIG_HOME unset",
			xdg:      "",
			expected: filepath.Join(home, ".config"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tc.xdg)
			got, err := ConfigHome()
			if err != nil {
				t.Fatalf("ConfigHome() error = %v", err)
			}
			if got != tc.expected {
				t.Errorf("ConfigHome() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestDataHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	got, err := DataHome()
	if err != nil {
		t.Fatalf("DataHome() error = %v", err)
	}
	if want := filepath.Join(home, ".local/share"); got != want {
		t.Errorf("DataHome() = %q, want %q", got, want)
	}
}
