// Package adapter provides storage adapters for run reports.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "myspec.dev/pkg/myspec/internal/model"
)

// ReportFileName is the file a RunReport is stored in, inside the reports directory.
const ReportFileName = "report.yaml"

// ErrNoReport is returned when the reports directory holds no report.
var ErrNoReport = errors.New("no report found")

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error)
}

// LocalReportStore stores reports as YAML on the local file system.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to dir, creating the directory when needed.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	path := reportPath(dir)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "suites", len(report.Suites))

	return nil
}

// LoadReport reads the report stored in dir.
func (s *LocalReportStore) LoadReport(ctx context.Context, dir m.Path) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	path := reportPath(dir)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.RunReport{}, fmt.Errorf("%s: %w", path, ErrNoReport)
	}

	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	if report.Version != m.CurrentReportVersion {
		return m.RunReport{}, fmt.Errorf("unsupported report version %d in %s", report.Version, path)
	}

	return report, nil
}

func reportPath(dir m.Path) string {
	return filepath.Join(string(dir), ReportFileName)
}
