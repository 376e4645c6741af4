package atomic

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// mountPoint returns the mount point holding the given path
func mountPoint(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	mounts, err := mountinfo.GetMounts(nil)
	if err != nil {
		return "", fmt.Errorf("failed to get mount info: %w", err)
	}

	// Find the longest matching mount point
	var longest string
	for _, m := range mounts {
		if !isUnder(absPath, m.Mountpoint) {
			continue
		}
		if len(m.Mountpoint) > len(longest) {
			longest = m.Mountpoint
		}
	}

	if longest == "" {
		return filepath.VolumeName(absPath) + string(filepath.Separator), nil
	}

	slog.Debug("found mount point", "path", absPath, "mountpoint", longest)
	return longest, nil
}

func isUnder(path, mount string) bool {
	if mount == string(filepath.Separator) || path == mount {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(mount, string(filepath.Separator))+string(filepath.Separator))
}

// crossDeviceError describes a refused cross-device rename, naming both mounts when they can be found
func crossDeviceError(src, dst string) error {
	srcMount, err := mountPoint(src)
	if err != nil {
		slog.Debug("failed to resolve source mount point", "path", src, "error", err)
		return ErrCrossDeviceMove
	}
	dstMount, err := mountPoint(filepath.Dir(dst))
	if err != nil {
		slog.Debug("failed to resolve destination mount point", "path", dst, "error", err)
		return ErrCrossDeviceMove
	}
	if srcMount == dstMount {
		return ErrCrossDeviceMove
	}
	return &CrossDeviceError{SrcMount: srcMount, DstMount: dstMount}
}
