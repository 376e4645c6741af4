//go:build windows

package atomic

import (
	"errors"

	"golang.org/x/sys/windows"
)

// errCrossDevice is what rename reports when src and dst are on different volumes
var errCrossDevice error = windows.ERROR_NOT_SAME_DEVICE

// isCrossDeviceErr reports whether a rename failed because the paths are on different volumes
func isCrossDeviceErr(err error) bool {
	return errors.Is(err, errCrossDevice)
}
