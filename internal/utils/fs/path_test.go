package fs

import "testing"

func TestIsUnsafePath(t *testing.T) {
	tests := []struct {
		path   string
		unsafe bool
	}{
		{".", true},                 // original dot
		{"..", true},                // original double dot
		{"./", true},                // dot with slash
		{"./../../foo/../..", true}, // complex path to root
		{"/", true},                 // root
		{"//", true},                // double slash
		{"//foo", true},             // path with double slash
		{"/home/user/Pictures", false},
		{"~/Videos", false},
		{"Pictures", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsUnsafePath(tt.path); got != tt.unsafe {
				t.Errorf("IsUnsafePath(%q) = %v, want %v", tt.path, got, tt.unsafe)
			}
		})
	}
}
