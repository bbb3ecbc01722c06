// Package controller provides the user interfaces that display suite runs and reports.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

// Format selects how examples are reported while a run is in progress.
type Format string

// Available Format values.
const (
	// FormatPlain prints bare example descriptions with no separator.
	FormatPlain Format = "plain"
	// FormatDocumentation prints the group tree with a status per example.
	FormatDocumentation Format = "documentation"
	// FormatProgress prints one character per example.
	FormatProgress Format = "progress"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatPlain, FormatDocumentation, FormatProgress:
		return f, nil
	case "doc", "d":
		return FormatDocumentation, nil
	case "p":
		return FormatProgress, nil
	default:
		return "", fmt.Errorf("unknown format %q (want plain, documentation or progress)", value)
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	format Format
}

// WithFormat sets the format used to report examples.
func WithFormat(format Format) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

// UI displays suite listings, live example reports and saved reports.
// Implementations can use different output methods (simple text, styled terminal).
type UI interface {
	myspec.Reporter

	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplaySuites(ctx context.Context, suites []m.SuiteListing) error
	DisplaySuiteStarted(ctx context.Context, suite m.Suite)
	DisplaySummary(ctx context.Context, summary m.Summary, failures []myspec.Report) error
	DisplayReport(ctx context.Context, report m.RunReport) error
}

// NewUI returns a styled UI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
