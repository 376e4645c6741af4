package atomic

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationExists indicates that the destination path already exists
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSourceNotFound indicates that the source path does not exist
	ErrSourceNotFound = errors.New("source not found")

	// ErrCrossDeviceMove indicates a rename across different devices
	ErrCrossDeviceMove = errors.New("cross-device move operation")

	ErrInvalidPath = errors.New("invalid path specified")
)

// MoveError represents an error that occurred during a rename operation
type MoveError struct {
	Op  string // Operation being performed
	Src string // Source path
	Dst string // Destination path
	Err error  // Underlying error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move operation failed: %s from %q to %q: %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError creates a new MoveError
func NewMoveError(op, src, dst string, err error) error {
	return &MoveError{
		Op:  op,
		Src: src,
		Dst: dst,
		Err: err,
	}
}

// CrossDeviceError carries the mount points of both sides of a refused rename
type CrossDeviceError struct {
	SrcMount string
	DstMount string
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("%v: %q and %q are different mounts", ErrCrossDeviceMove, e.SrcMount, e.DstMount)
}

func (e *CrossDeviceError) Unwrap() error {
	return ErrCrossDeviceMove
}

// IsCrossDevice checks if the error indicates a cross-device operation
func IsCrossDevice(err error) bool {
	return errors.Is(err, ErrCrossDeviceMove)
}

// IsDestinationExists checks if the error indicates the destination exists
func IsDestinationExists(err error) bool {
	return errors.Is(err, ErrDestinationExists)
}
