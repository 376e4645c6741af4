package atomic

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"
)

// rename is swapped out in tests
var rename = os.Rename

// MoveOptions specifies options for rename operations
type MoveOptions struct {
	AllowCrossDev bool // Fall back to copy and delete across devices
}

// Rename moves src to dst without ever replacing an existing dst.
//
// A dst that exists in any form, including a dangling symlink, yields
// ErrDestinationExists. Renames across devices fail with ErrCrossDeviceMove
// unless opts.AllowCrossDev is set.
func Rename(src, dst string, opts MoveOptions) error {
	// 1. Validate paths
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	// 2. Never clobber
	if _, err := os.Lstat(dst); err == nil {
		return ErrDestinationExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return NewMoveError("stat_destination", src, dst, err)
	}

	// 3. Plain rename; only EXDEV from the rename itself counts as cross-device
	err := rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDeviceErr(err) {
		return NewMoveError("rename", src, dst, err)
	}

	// 4. Cross device
	if !opts.AllowCrossDev {
		return NewMoveError("rename", src, dst, crossDeviceError(src, dst))
	}
	slog.Debug("falling back to copy and delete", "src", src, "dst", dst)
	return copyAndDelete(src, dst)
}

// copyAndDelete copies src next to dst, renames the copy into place and then deletes src
func copyAndDelete(src, dst string) error {
	tmp := filepath.Join(filepath.Dir(dst), fmt.Sprintf(".%s.%s.tmp", filepath.Base(dst), uuid.New().String()))

	opts := cp.Options{
		OnSymlink: func(src string) cp.SymlinkAction {
			return cp.Shallow // Keep symlinks as symlinks
		},
		PreserveTimes: true,
		PreserveOwner: true,
		Sync:          true,
	}

	if err := cp.Copy(src, tmp, opts); err != nil {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			slog.Warn("failed to remove partial copy", "path", tmp, "error", rmErr)
		}
		return NewMoveError("copy", src, dst, err)
	}

	if err := os.Rename(tmp, dst); err != nil {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			slog.Warn("failed to remove copy", "path", tmp, "error", rmErr)
		}
		return NewMoveError("commit_copy", src, dst, err)
	}

	// The copy is in place; a leftover source is reported but dst is kept
	if err := os.RemoveAll(src); err != nil {
		return NewMoveError("remove_source", src, dst, err)
	}

	return nil
}

// validatePaths performs basic path validation
func validatePaths(src, dst string) error {
	if src == "" || dst == "" {
		return ErrInvalidPath
	}
	if filepath.Clean(src) == filepath.Clean(dst) {
		return ErrInvalidPath
	}

	if _, err := os.Lstat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrSourceNotFound
		}
		return NewMoveError("stat_source", src, dst, err)
	}

	return nil
}
