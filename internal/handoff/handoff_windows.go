//go:build windows

package handoff

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// execve runs cmd as a child with inherited stdio since Windows cannot replace
// the process image, and reports its exit code through ExitError.
func execve(cmd Command) error {
	c := exec.Command(cmd.Path, cmd.Args[1:]...)
	c.Args = cmd.Args
	c.Env = cmd.Env
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return &ExitError{Code: 0}
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Code: ee.ExitCode()}
	}
	return fmt.Errorf("handoff: run %s: %w", cmd.Path, err)
}
