package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gafeval/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI with styled terminal output and a Bubble Tea report browser.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayRunInfo echoes the inputs of the run.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	t.println(titleStyle.Render("gafeval comparison"))

	if info.Command != "" {
		t.println(labelStyle.Render("command   ") + info.Command)
	}

	t.println(labelStyle.Render("gaf       ") + accentStyle.Render(string(info.GAF)))
	t.println(labelStyle.Render("mappings  ") + accentStyle.Render(string(info.Mappings)))
	t.println(labelStyle.Render("tool      ") + string(info.Tool))
	t.println(labelStyle.Render("path      ") + accentStyle.Render(info.ReferencePath))
	t.println(labelStyle.Render("threshold ") + fmt.Sprintf("%v", info.Threshold))
	t.println("")
}

// DisplayPathNodes lists the nodes lying on the reference path.
func (t *TUI) DisplayPathNodes(referencePath string, nodes []m.NodeID) {
	t.println(labelStyle.Render(fmt.Sprintf("%d nodes on %s: ", len(nodes), referencePath)) + formatNodes(nodes))
	t.println("")
}

// DisplayIncorrect prints the diagnostic of one incorrect alignment.
func (t *TUI) DisplayIncorrect(diag m.Diagnostic) {
	t.println(fmt.Sprintf("%s %s  %s %d/%d (%s)",
		badStyle.Render("✗"),
		accentStyle.Render(diag.ReadID),
		labelStyle.Render("covered"),
		diag.CoveredLength,
		diag.ReportedLength,
		formatRatio(diag.Ratio),
	))
	t.println("  " + labelStyle.Render("nodes ") + formatNodes(diag.Nodes))
}

// DisplaySummary renders the run summary in a framed box.
func (t *TUI) DisplaySummary(summary m.RunSummary) error {
	lines := []string{
		titleStyle.Render("Summary"),
		fmt.Sprintf("%s %s (%s)", labelStyle.Render("mapped correctly    "),
			goodStyle.Render(formatCount(summary.Correct, summary.Considered)), formatRatio(summary.CorrectRatio)),
		fmt.Sprintf("%s %s (%s)", labelStyle.Render("NOT mapped correctly"),
			badStyle.Render(formatCount(summary.Considered-summary.Correct, summary.Considered)), formatRatio(summary.IncorrectRatio)),
		fmt.Sprintf("%s %d unaligned, %d malformed, %d zero length",
			labelStyle.Render("excluded            "), summary.Absent, summary.Malformed, summary.ZeroLength),
	}

	_, err := fmt.Fprintln(t.output, summaryFrame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))

	return err
}

// DisplayPaths renders the reference paths of a mapping file.
func (t *TUI) DisplayPaths(paths []PathInfo) error {
	if len(paths) == 0 {
		t.println(labelStyle.Render("No reference paths found"))
		return nil
	}

	rows := make([]string, 0, len(paths)+1)
	rows = append(rows, titleStyle.Render(fmt.Sprintf("%d reference paths", len(paths))))

	for _, p := range paths {
		rows = append(rows, fmt.Sprintf("%s  %s",
			accentStyle.Render(fmt.Sprintf("%8d nodes %10d bp", p.Nodes, p.Span)),
			p.Name,
		))
	}

	_, err := fmt.Fprintln(t.output, summaryFrame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return err
}

// DisplayReports opens an interactive browser on a terminal and prints a
// static listing otherwise.
func (t *TUI) DisplayReports(reports []m.RunReport) error {
	if len(reports) == 0 {
		t.println(labelStyle.Render("No reports found"))
		return nil
	}

	model := newReportsModel(reports)

	if _, ok := t.output.(*os.File); !ok {
		model.width = 100
		model.height = len(reports) + 16
		_, err := fmt.Fprint(t.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}
