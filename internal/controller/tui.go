package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "myspec.dev/pkg/myspec/internal/model"
)

// TUI implements UI for terminals: colored output and a pager for long reports.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: newSimpleUI(cmd, colorStyles())}
}

// DisplayReport shows a saved report, paging it when it does not fit the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderReport(t.styles, report)

	out := t.cmd.OutOrStdout()

	f, ok := out.(*os.File)
	if !ok {
		t.printf("%s", content)
		return nil
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil || strings.Count(content, "\n") < height {
		t.printf("%s", content)
		return nil
	}

	model := newPagerModel("myspec report", content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report pager: %w", err)
	}

	return nil
}

var (
	pagerTitleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, true, false)
	pagerFooterStyle = lipgloss.NewStyle().Faint(true)
)

// pagerChrome is the number of lines used by the pager's title and footer.
const pagerChrome = 3

// pagerModel is the Bubble Tea model that scrolls a rendered report.
type pagerModel struct {
	title    string
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := pagerFooterStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100))

	return pagerTitleStyle.Render(pm.title) + "\n" + pm.viewport.View() + "\n" + footer
}
