package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/babarot/lomiri-camera-app-migrate/internal/cli"
	"github.com/babarot/lomiri-camera-app-migrate/internal/handoff"
)

const appName = "lomiri-camera-app-migrate"

// set by ldflags
var (
	Version   = "unset"
	Revision  = "unset"
	BuildDate = "unset"
)

func main() {
	err := cli.Run(cli.Version{
		AppName:   appName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
	})
	if err == nil {
		return
	}

	var exitErr *handoff.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	os.Exit(1)
}
