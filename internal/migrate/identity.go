package migrate

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultOrganization   = "camera.ubports"
	DefaultApplication    = "camera.ubports"
	DefaultOldApplication = "com.ubuntu.camera"
)

var ErrInvalidIdentity = errors.New("invalid identity")

// Identity names the organization namespace and the legacy and current
// application identifiers shared by every migration step.
type Identity struct {
	Organization   string
	Application    string
	OldApplication string
}

// DefaultIdentity returns the camera app's rebrand from com.ubuntu.camera to camera.ubports.
func DefaultIdentity() Identity {
	return Identity{
		Organization:   DefaultOrganization,
		Application:    DefaultApplication,
		OldApplication: DefaultOldApplication,
	}
}

func (id Identity) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"organization", id.Organization},
		{"application", id.Application},
		{"old_application", id.OldApplication},
	} {
		if !IsPathElement(f.value) {
			return fmt.Errorf("%w: %s %q must be a single path element", ErrInvalidIdentity, f.name, f.value)
		}
	}
	if id.Application == id.OldApplication {
		return fmt.Errorf("%w: application and old_application are both %q", ErrInvalidIdentity, id.Application)
	}
	return nil
}

// IsPathElement reports whether s can be used as one file or directory name
func IsPathElement(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, filepath.Separator) {
		return false
	}
	return filepath.VolumeName(s) == ""
}
