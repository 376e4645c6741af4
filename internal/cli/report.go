package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/babarot/lomiri-camera-app-migrate/internal/migrate"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type reportStyles struct {
	migrated lipgloss.Style
	planned  lipgloss.Style
	skipped  lipgloss.Style
	failed   lipgloss.Style
}

// newReportStyles detects colors from w itself, so pipes and files get plain text
func newReportStyles(w io.Writer) reportStyles {
	r := lipgloss.NewRenderer(w)
	return reportStyles{
		migrated: r.NewStyle().Foreground(lipgloss.Color("#5FB458")), // Green
		planned:  r.NewStyle().Foreground(lipgloss.Color("#F0F080")), // Yellow
		skipped:  r.NewStyle().Foreground(lipgloss.Color("#808080")), // Gray
		failed:   r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}
}

func printReport(w io.Writer, results []migrate.Result) error {
	styles := newReportStyles(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Artifact", "Status", "Size", "From", "To"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, r := range results {
		table.Append([]string{
			r.Artifact.Name,
			styles.render(r.Status),
			sizeOf(r),
			r.Artifact.Legacy,
			r.Artifact.Target,
		})
	}
	table.Render()

	migrated := lo.CountBy(results, func(r migrate.Result) bool {
		return r.Status == migrate.StatusMigrated || r.Status == migrate.StatusPlanned
	})
	skipped := lo.CountBy(results, func(r migrate.Result) bool { return r.Status.Skipped() })
	_, err := fmt.Fprintf(w, "%d to migrate, %d skipped\n", migrated, skipped)
	return err
}

func (rs reportStyles) render(s migrate.Status) string {
	switch s {
	case migrate.StatusMigrated:
		return rs.migrated.Render(s.String())
	case migrate.StatusPlanned:
		return rs.planned.Render(s.String())
	case migrate.StatusFailed:
		return rs.failed.Render(s.String())
	default:
		return rs.skipped.Render(s.String())
	}
}

// sizeOf reports the size of the data that was or would be moved
func sizeOf(r migrate.Result) string {
	var path string
	switch r.Status {
	case migrate.StatusMigrated:
		path = r.Artifact.Target
	case migrate.StatusPlanned:
		path = r.Artifact.Legacy
	default:
		return "-"
	}

	size, err := diskUsage(path)
	if err != nil {
		return "?"
	}
	return humanize.Bytes(uint64(size))
}

func diskUsage(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		if _, serr := os.Stat(path); serr != nil {
			return 0, serr
		}
		return 0, err
	}
	return total, nil
}
