//go:build !windows

package atomic

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errCrossDevice is what rename reports when src and dst are on different devices
var errCrossDevice error = unix.EXDEV

// isCrossDeviceErr reports whether a rename failed because of EXDEV
func isCrossDeviceErr(err error) bool {
	return errors.Is(err, errCrossDevice)
}
