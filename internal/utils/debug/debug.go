package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/babarot/lomiri-camera-app-migrate/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs prints the debug log at path, or follows new entries when live is set
func Logs(w io.Writer, path string, cfg config.LoggingConfig, live bool) error {
	if live {
		return tailLiveLogs(w, path, cfg)
	}
	return showExistingLogs(w, path, cfg)
}

// tailLiveLogs follows log entries in real-time
func tailLiveLogs(w io.Writer, path string, cfg config.LoggingConfig) error {
	if !cfg.Enabled {
		return fmt.Errorf("logging is not enabled in config: enable logging in config for live debugging")
	}

	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(path, tail.Config{
		ReOpen:    shouldFollow,
		Follow:    shouldFollow,
		Poll:      true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("log file does not exist: run a migration with logging enabled first")
		}
		return err
	}
	defer t.Cleanup()

	for line := range t.Lines {
		if line.Err != nil {
			return line.Err
		}
		fmt.Fprintln(w, line.Text)
	}
	return nil
}

// showExistingLogs displays the current content of the log file
func showExistingLogs(w io.Writer, path string, cfg config.LoggingConfig) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if !cfg.Enabled {
			return fmt.Errorf("logging is not enabled in config: enable logging to create log files")
		}
		return fmt.Errorf("no log file exists yet: run a migration first")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}

	return scanner.Err()
}
