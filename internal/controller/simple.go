package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd      *cobra.Command
	format   Format
	styles   styles
	tree     *treeWriter
	examples int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return newSimpleUI(cmd, plainStyles())
}

func newSimpleUI(cmd *cobra.Command, st styles) *SimpleUI {
	return &SimpleUI{
		cmd:    cmd,
		format: FormatDocumentation,
		styles: st,
	}
}

// Start prepares the UI for a run.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{format: FormatDocumentation}
	for _, option := range options {
		option(&cfg)
	}

	s.format = cfg.format
	s.tree = &treeWriter{w: s.cmd.OutOrStdout(), styles: s.styles}
	s.examples = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplaySuites prints the suite listing as a table.
func (s *SimpleUI) DisplaySuites(ctx context.Context, suites []m.SuiteListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSuitesTable(suites))

	return nil
}

// DisplaySuiteStarted marks the beginning of a suite.
func (s *SimpleUI) DisplaySuiteStarted(ctx context.Context, suite m.Suite) {
	if err := ctx.Err(); err != nil {
		return
	}

	if s.tree == nil {
		s.tree = &treeWriter{w: s.cmd.OutOrStdout(), styles: s.styles}
	}

	s.tree.reset()

	if s.format == FormatDocumentation && s.examples > 0 {
		s.printf("\n")
	}
}

// ExampleStarted implements myspec.Reporter.
func (s *SimpleUI) ExampleStarted(info myspec.ExampleInfo) {
	if s.format == FormatPlain {
		s.printf("%s", info.Description)
	}
}

// ExampleFinished implements myspec.Reporter.
func (s *SimpleUI) ExampleFinished(report myspec.Report) {
	s.examples++

	status := m.StatusFrom(report.Status)

	switch s.format {
	case FormatProgress:
		s.printf("%s", s.styles.progressMark(status))
	case FormatDocumentation:
		if s.tree == nil {
			s.tree = &treeWriter{w: s.cmd.OutOrStdout(), styles: s.styles}
		}

		s.tree.write(report.Path, report.Description, status)
	case FormatPlain:
	}
}

// DisplaySummary prints failures and totals once a run has finished.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary, failures []myspec.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format != FormatDocumentation && s.examples > 0 {
		s.printf("\n")
	}

	if len(failures) > 0 {
		s.printf("\n%s\n", s.styles.render(s.styles.header, "Failures:"))

		for i, failure := range failures {
			s.printf("\n  %d) %s\n", i+1, failure.FullDescription())
			s.printf("%s\n", s.styles.render(s.styles.failed, indentBlock(describeError(failure.Err), "     ")))
		}
	}

	s.printf("\nFinished in %s\n", summary.Duration.Round(time.Microsecond))
	s.printf("%s\n", summaryLine(s.styles, summary))
	s.printf("Pass rate: %.2f%%\n", summary.PassRate*100)

	return nil
}

// DisplayReport prints a saved report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReport(s.styles, report))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
