package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"syscall"

	"github.com/babarot/lomiri-camera-app-migrate/internal/core/atomic"
	"github.com/samber/lo"
)

// Config holds everything one migration run needs
type Config struct {
	Identity Identity
	Roots    Roots

	// DryRun reports what would be renamed without touching anything
	DryRun bool

	// AllowCrossDevice falls back to copy and delete when a rename crosses devices
	AllowCrossDevice bool
}

// Migrator renames legacy artifacts to the current identifier
type Migrator struct {
	config    Config
	artifacts []Artifact
	rename    func(src, dst string, opts atomic.MoveOptions) error
}

// NewMigrator creates a new migrator with the given configuration
func NewMigrator(cfg Config) (*Migrator, error) {
	if err := cfg.Identity.Validate(); err != nil {
		return nil, err
	}
	for name, root := range map[string]string{
		"config":   cfg.Roots.Config,
		"pictures": cfg.Roots.Pictures,
		"videos":   cfg.Roots.Videos,
	} {
		if root == "" {
			return nil, fmt.Errorf("%s root is not set", name)
		}
	}

	return &Migrator{
		config:    cfg,
		artifacts: Plan(cfg.Identity, cfg.Roots),
		rename:    atomic.Rename,
	}, nil
}

// Run migrates each artifact in order and stops at the first failure.
// The results gathered so far are returned along with that failure.
func (m *Migrator) Run() ([]Result, error) {
	slog.Debug("migration started",
		"organization", m.config.Identity.Organization,
		"from", m.config.Identity.OldApplication,
		"to", m.config.Identity.Application,
		"dry_run", m.config.DryRun)

	results := make([]Result, 0, len(m.artifacts))
	for _, a := range m.artifacts {
		r := m.migrate(a)
		results = append(results, r)
		if r.Err != nil {
			slog.Error("migration aborted", "artifact", a.Name, "error", r.Err)
			return results, fmt.Errorf("migrate %s: %w", a.Name, r.Err)
		}
	}

	slog.Debug("migration finished",
		"migrated", lo.CountBy(results, func(r Result) bool { return r.Status == StatusMigrated }),
		"skipped", lo.CountBy(results, func(r Result) bool { return r.Status.Skipped() }))
	return results, nil
}

func (m *Migrator) migrate(a Artifact) Result {
	status, err := check(a)
	if err != nil {
		return Result{Artifact: a, Status: StatusFailed, Err: err}
	}
	if status != StatusPlanned {
		slog.Debug("skip", "artifact", a.Name, "legacy", a.Legacy, "target", a.Target, "status", status)
		return Result{Artifact: a, Status: status}
	}

	if m.config.DryRun {
		slog.Info("would rename", "artifact", a.Name, "from", a.Legacy, "to", a.Target)
		return Result{Artifact: a, Status: StatusPlanned}
	}

	opts := atomic.MoveOptions{AllowCrossDev: m.config.AllowCrossDevice}
	if err := m.rename(a.Legacy, a.Target, opts); err != nil {
		return Result{Artifact: a, Status: StatusFailed, Err: err}
	}
	slog.Info("renamed", "artifact", a.Name, "from", a.Legacy, "to", a.Target)
	return Result{Artifact: a, Status: StatusMigrated}
}

// check decides whether an artifact should be renamed, returning StatusPlanned when it should
func check(a Artifact) (Status, error) {
	// The legacy kind check follows symlinks; the target check does not,
	// so even a dangling symlink at the target blocks the rename.
	fi, err := os.Stat(a.Legacy)
	switch {
	case isMissing(err):
		return StatusMissing, nil
	case err != nil:
		return StatusFailed, fmt.Errorf("stat legacy %s: %w", a.Kind, err)
	}
	if !isKind(fi, a.Kind) {
		return StatusWrongKind, nil
	}

	_, err = os.Lstat(a.Target)
	switch {
	case err == nil:
		return StatusTargetExists, nil
	case !isMissing(err):
		return StatusFailed, fmt.Errorf("stat target %s: %w", a.Kind, err)
	}

	return StatusPlanned, nil
}

func isKind(fi fs.FileInfo, k Kind) bool {
	switch k {
	case KindFile:
		return fi.Mode().IsRegular()
	case KindDir:
		return fi.IsDir()
	}
	return false
}

// isMissing treats a path that cannot resolve the same way as one that does not exist
func isMissing(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
