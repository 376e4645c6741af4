package fs

import (
	"path/filepath"
	"strings"
)

// IsUnsafePath reports whether path must not be used as a root that
// directories get renamed under
func IsUnsafePath(path string) bool {
	// First check the original path before any normalization
	// This preserves the original input like "." or ".."
	originalBase := filepath.Base(path)
	if originalBase == "." || originalBase == ".." {
		return true
	}

	// Clean the path to check for normalized root paths
	cleaned := filepath.Clean(path)
	if cleaned == "/" || cleaned == filepath.VolumeName(cleaned)+`\` {
		return true
	}

	// Check double slashes and similar patterns
	return strings.HasPrefix(path, "//")
}
