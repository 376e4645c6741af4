package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"

	appDirname = "lomiri-camera-app-migrate"
)

var (
	CAMERA_MIGRATE_CONFIG_PATH string

	CAMERA_MIGRATE_LOG_PATH string
)

func init() {
	CAMERA_MIGRATE_CONFIG_PATH = os.Getenv("CAMERA_MIGRATE_CONFIG_PATH")
	if CAMERA_MIGRATE_CONFIG_PATH == "" {
		if dir, err := ConfigHome(); err == nil {
			CAMERA_MIGRATE_CONFIG_PATH = filepath.Join(dir, appDirname, "config.yaml")
		}
	}

	CAMERA_MIGRATE_LOG_PATH = os.Getenv("CAMERA_MIGRATE_LOG_PATH")
	if CAMERA_MIGRATE_LOG_PATH == "" {
		if dir, err := DataHome(); err == nil {
			CAMERA_MIGRATE_LOG_PATH = filepath.Join(dir, appDirname, "debug.log")
		}
	}
}

// ConfigHome follows https://specifications.freedesktop.org/basedir-spec/latest/
// and returns $XDG_CONFIG_HOME, or ~/.config when it is unset.
func ConfigHome() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", defaultXDGConfigDirname)
}

// DataHome returns $XDG_DATA_HOME, or ~/.local/share when it is unset.
func DataHome() (string, error) {
	return xdgDir("XDG_DATA_HOME", defaultXDGDataDirname)
}

func HomeDir() (string, error) {
	return os.UserHomeDir()
}

func xdgDir(key, fallback string) (string, error) {
	if dir := os.Getenv(key); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}
