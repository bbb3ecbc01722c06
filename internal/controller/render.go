package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "myspec.dev/pkg/myspec/internal/model"
)

// styles decorates output. With color disabled every method returns its input.
type styles struct {
	color   bool
	passed  lipgloss.Style
	failed  lipgloss.Style
	pending lipgloss.Style
	header  lipgloss.Style
	faint   lipgloss.Style
}

func plainStyles() styles {
	return styles{}
}

func colorStyles() styles {
	return styles{
		color:   true,
		passed:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		header:  lipgloss.NewStyle().Bold(true),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}

	return style.Render(text)
}

func (s styles) status(status m.Status, text string) string {
	switch status {
	case m.StatusPassed:
		return s.render(s.passed, text)
	case m.StatusFailed:
		return s.render(s.failed, text)
	case m.StatusPending:
		return s.render(s.pending, text)
	default:
		return text
	}
}

// exampleLine renders one example for the documentation format.
func (s styles) exampleLine(status m.Status, description string) string {
	switch status {
	case m.StatusPassed:
		return s.status(status, "✓ "+description)
	case m.StatusFailed:
		return s.status(status, "✗ "+description+" (FAILED)")
	case m.StatusPending:
		return s.status(status, "* "+description+" (PENDING)")
	default:
		return "? " + description
	}
}

func (s styles) progressMark(status m.Status) string {
	switch status {
	case m.StatusPassed:
		return s.status(status, ".")
	case m.StatusFailed:
		return s.status(status, "F")
	case m.StatusPending:
		return s.status(status, "*")
	default:
		return "?"
	}
}

// treeWriter prints example lines under their group headers, repeating only
// the headers that changed since the previous example.
type treeWriter struct {
	w        io.Writer
	styles   styles
	lastPath []string
}

func (t *treeWriter) reset() {
	t.lastPath = nil
}

func (t *treeWriter) write(path []string, description string, status m.Status) {
	common := 0
	for common < len(path) && common < len(t.lastPath) && path[common] == t.lastPath[common] {
		common++
	}

	for i := common; i < len(path); i++ {
		_, _ = fmt.Fprintf(t.w, "%s%s\n", indent(i), t.styles.render(t.styles.header, path[i]))
	}

	t.lastPath = slices.Clone(path)

	_, _ = fmt.Fprintf(t.w, "%s%s\n", indent(len(path)), t.styles.exampleLine(status, description))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func indentBlock(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}

// describeError renders an example failure, adding a unified diff for output
// mismatches.
func describeError(err error) string {
	var mismatch *m.OutputMismatchError
	if !errors.As(err, &mismatch) {
		return err.Error()
	}

	diff, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(mismatch.Expected),
		B:        difflib.SplitLines(mismatch.Actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if diffErr != nil || diff == "" {
		return err.Error()
	}

	return err.Error() + "\n" + diff
}

func pluralize(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %ss", n, singular)
}

func summaryLine(s styles, summary m.Summary) string {
	line := fmt.Sprintf("%s, %s", pluralize(summary.Examples, "example"), pluralize(summary.Failed, "failure"))
	if summary.Pending > 0 {
		line += fmt.Sprintf(", %d pending", summary.Pending)
	}

	if summary.Failed > 0 {
		return s.render(s.failed, line)
	}

	if summary.Pending > 0 {
		return s.render(s.pending, line)
	}

	return s.render(s.passed, line)
}

func renderSuitesTable(suites []m.SuiteListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Examples", "Summary"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	total := 0

	for _, suite := range suites {
		table.Append([]string{suite.Name, fmt.Sprintf("%d", suite.Examples), suite.Summary})
		total += suite.Examples
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", len(suites)),
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderResultsTable(suites []m.SuiteResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Examples", "Passed", "Failed", "Pending"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, suite := range suites {
		s := m.Summarize(suite)
		table.Append([]string{
			suite.Name,
			fmt.Sprintf("%d", s.Examples),
			fmt.Sprintf("%d", s.Passed),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.Pending),
		})
	}

	total := m.Summarize(suites...)
	table.SetFooter([]string{
		fmt.Sprintf("Pass rate %.2f%%", total.PassRate*100),
		fmt.Sprintf("%d", total.Examples),
		fmt.Sprintf("%d", total.Passed),
		fmt.Sprintf("%d", total.Failed),
		fmt.Sprintf("%d", total.Pending),
	})

	table.Render()

	return tableBuffer.String()
}

// renderReport renders a saved report as text.
func renderReport(s styles, report m.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", s.render(s.header, fmt.Sprintf("Report from %s (%s)",
		report.StartedAt.Local().Format("2006-01-02 15:04:05"), report.Duration.Round(time.Microsecond))))

	tree := &treeWriter{w: &b, styles: s}

	for _, suite := range report.Suites {
		fmt.Fprintf(&b, "%s\n", s.render(s.faint, "["+suite.Name+"]"))
		tree.reset()

		for _, example := range suite.Examples {
			tree.write(example.Path, example.Description, example.Status)

			if example.Error != "" {
				fmt.Fprintf(&b, "%s\n", indentBlock(example.Error, indent(len(example.Path)+2)))
			}
		}

		b.WriteString("\n")
	}

	b.WriteString(renderResultsTable(report.Suites))

	return b.String()
}
