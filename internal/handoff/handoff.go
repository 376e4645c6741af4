package handoff

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

var ErrNoCommand = errors.New("no successor command given")

// Command is a successor program resolved through PATH
type Command struct {
	Path string   // resolved executable
	Args []string // argv, Args[0] is the name as given
	Env  []string
}

// Resolve looks up args[0] the way execvp does and keeps args as the successor's argv.
func Resolve(args []string) (Command, error) {
	if len(args) == 0 || args[0] == "" {
		return Command{}, ErrNoCommand
	}
	path, err := exec.LookPath(args[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return Command{}, fmt.Errorf("handoff: %w", err)
	}
	return Command{
		Path: path,
		Args: append([]string(nil), args...),
		Env:  os.Environ(),
	}, nil
}

// ExitError carries the successor's exit code where the process image could not be replaced
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("successor exited with status %d", e.Code)
}

// Exec hands the current process over to cmd. On success it does not return
// where the platform can replace the process image.
func Exec(cmd Command) error {
	slog.Debug("handing off", "path", cmd.Path, "args", cmd.Args)
	return execve(cmd)
}
