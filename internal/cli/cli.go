package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/babarot/lomiri-camera-app-migrate/internal/config"
	"github.com/babarot/lomiri-camera-app-migrate/internal/env"
	"github.com/babarot/lomiri-camera-app-migrate/internal/handoff"
	"github.com/babarot/lomiri-camera-app-migrate/internal/migrate"
	"github.com/babarot/lomiri-camera-app-migrate/internal/utils/debug"
	"github.com/babarot/lomiri-camera-app-migrate/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/muesli/termenv"
	"github.com/rs/xid"
)

type Option struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	DryRun  bool   `short:"n" long:"dry-run" description:"Show what would be renamed without renaming anything"`
	Verbose bool   `short:"v" long:"verbose" description:"Print what happened to each artifact"`

	Meta MetaOption `group:"Meta Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	stdout  io.Writer
}

var runID = sync.OnceValue(func() string {
	return xid.New().String()
})

// handoffExec replaces the process; swapped out in tests
var handoffExec = handoff.Exec

func Run(v Version) error {
	return run(v, os.Args[1:], os.Stdout)
}

func run(v Version, argv []string, stdout io.Writer) error {
	var opt Option
	// Stop at the successor's name so its own flags pass through untouched.
	// Errors are returned, not printed: main prints them once.
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash|flags.PassAfterNonOption)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] [successor [args...]]"
	args, err := parser.ParseArgs(argv)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}

	if opt.Meta.Version {
		fmt.Fprint(stdout, v.Print())
		return nil
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	closeLog := setupLogger(cfg.Logging)
	defer closeLog()

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	c := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		stdout:  stdout,
	}

	if err := c.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch c.option.Meta.Debug {
	case "live":
		return debug.Logs(c.stdout, env.CAMERA_MIGRATE_LOG_PATH, c.config.Logging, true)
	case "full":
		return debug.Logs(c.stdout, env.CAMERA_MIGRATE_LOG_PATH, c.config.Logging, false)
	}

	if err := c.Migrate(); err != nil {
		return err
	}
	return c.Handoff(args)
}

// Migrate renames every legacy artifact it finds
func (c CLI) Migrate() error {
	roots, err := c.roots()
	if err != nil {
		return err
	}

	m, err := migrate.NewMigrator(migrate.Config{
		Identity: migrate.Identity{
			Organization:   c.config.Identity.Organization,
			Application:    c.config.Identity.Application,
			OldApplication: c.config.Identity.OldApplication,
		},
		Roots:            roots,
		DryRun:           c.option.DryRun,
		AllowCrossDevice: c.config.Core.AllowCrossDevice,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	results, err := m.Run()
	if c.option.Verbose || c.option.DryRun {
		if rerr := printReport(c.stdout, results); rerr != nil {
			slog.Warn("failed to print report", "error", rerr)
		}
	}
	return err
}

// Handoff replaces this process with the successor named in args, if any
func (c CLI) Handoff(args []string) error {
	if len(args) == 0 {
		return nil
	}

	cmd, err := handoff.Resolve(args)
	if err != nil {
		return err
	}
	if c.option.DryRun {
		fmt.Fprintf(c.stdout, "would exec %s %v\n", cmd.Path, cmd.Args[1:])
		return nil
	}
	return handoffExec(cmd)
}

func (c CLI) roots() (migrate.Roots, error) {
	configHome, err := env.ConfigHome()
	if err != nil {
		return migrate.Roots{}, fmt.Errorf("failed to resolve config home: %w", err)
	}
	home, err := env.HomeDir()
	if err != nil {
		return migrate.Roots{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	roots := migrate.DefaultRoots(configHome, home)
	if c.config.Roots.Pictures != "" {
		roots.Pictures = c.config.Roots.Pictures
	}
	if c.config.Roots.Videos != "" {
		roots.Videos = c.config.Roots.Videos
	}
	return roots, nil
}

// setupLogger sends logs to the rotating debug log, or nowhere when logging is disabled.
// It never writes to the terminal.
func setupLogger(cfg config.LoggingConfig) func() {
	var w io.Writer = io.Discard
	closer := func() {}

	if cfg.Enabled && env.CAMERA_MIGRATE_LOG_PATH != "" {
		if rw, err := log.NewRotateWriter(env.CAMERA_MIGRATE_LOG_PATH, cfg); err == nil {
			w = rw
			closer = func() { _ = rw.Close() }
		}
	}

	log.New(
		log.UseOutput(w),
		log.UseColorProfile(termenv.Ascii),
		log.UseLevel(log.ParseLevel(cfg.Level)),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.RFC3339),
		log.UseFormatter(log.TextFormatter),
		log.UseFields("run_id", runID()),
		log.AsDefault(),
	)
	return closer
}
