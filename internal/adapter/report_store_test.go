package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "myspec.dev/pkg/myspec/internal/model"
)

func TestLocalReportStore_RoundTrip(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	report := m.RunReport{
		Version:   m.CurrentReportVersion,
		StartedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Duration:  3 * time.Millisecond,
		Suites: []m.SuiteResult{{
			Name: "members",
			Examples: []m.ExampleResult{
				{Path: []string{"foo", "bar"}, Description: "works", Status: m.StatusPassed},
				{Path: []string{"foo"}, Description: "fails", Status: m.StatusFailed, Error: "boom"},
			},
		}},
	}

	require.NoError(t, store.SaveReport(context.Background(), dir, report))

	info, err := os.Stat(filepath.Join(string(dir), ReportFileName))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	loaded, err := store.LoadReport(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestLocalReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(context.Background(), m.Path(t.TempDir()))
	require.ErrorIs(t, err, ErrNoReport)
}

func TestLocalReportStore_LoadRejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReportFileName), []byte("version: 7\n"), 0o600))

	_, err := NewReportStore().LoadReport(context.Background(), m.Path(dir))
	require.ErrorContains(t, err, "unsupported report version 7")
}

func TestLocalReportStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewReportStore()
	require.ErrorIs(t, store.SaveReport(ctx, m.Path(t.TempDir()), m.RunReport{}), context.Canceled)

	_, err := store.LoadReport(ctx, m.Path(t.TempDir()))
	require.ErrorIs(t, err, context.Canceled)
}
