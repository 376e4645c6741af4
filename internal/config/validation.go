package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/babarot/lomiri-camera-app-migrate/internal/utils/fs"
	"github.com/go-playground/validator/v10"
)

var sizeRe = regexp.MustCompile(`^\d+(B|KB|MB|GB)$`)

// validateIdentifier accepts a single path element, used as a file or directory name
func validateIdentifier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "." || value == ".." {
		return false
	}
	return !strings.ContainsAny(value, `/\`)
}

// validateSize validates the size format (e.g., "512KB", "1MB")
func validateSize(fl validator.FieldLevel) bool {
	return sizeRe.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateDirPath accepts a path that is a directory or does not exist yet.
// Filesystem roots are rejected.
func validateDirPath(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	if path == "" || fs.IsUnsafePath(path) {
		return false
	}
	if fi, err := os.Stat(os.ExpandEnv(path)); err == nil {
		return fi.IsDir()
	} else if os.IsNotExist(err) {
		return true
	}
	return false
}

// expandPath expands environment variables and "~" in paths
func expandPath(path string) (string, error) {
	// Expand "~" to home directory
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	// Convert to absolute path
	return filepath.Abs(path)
}
