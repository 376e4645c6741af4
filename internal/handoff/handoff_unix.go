//go:build !windows

package handoff

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func execve(cmd Command) error {
	if err := unix.Exec(cmd.Path, cmd.Args, cmd.Env); err != nil {
		return fmt.Errorf("handoff: exec %s: %w", cmd.Path, err)
	}
	return nil
}
