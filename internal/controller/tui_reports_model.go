package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gafeval/internal/model"
)

type reportItem struct {
	report m.RunReport
}

func (i reportItem) FilterValue() string {
	return i.report.ReferencePath + " " + string(i.report.Tool) + " " + string(i.report.GAF)
}

// reportDelegate renders one report per line.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	ri, ok := item.(reportItem)
	if !ok {
		return
	}

	r := ri.report

	ratioStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if index == lm.Index() {
		ratioStyle = ratioStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		pathStyle = pathStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	}

	prefix := fmt.Sprintf("%s  %s  ", r.CreatedAt.Format("2006-01-02 15:04"), ratioStyle.Render(formatRatio(r.Summary.CorrectRatio)))
	width := lm.Width() - lipgloss.Width(prefix)

	_, _ = fmt.Fprint(w, prefix+pathStyle.Render(truncateToWidth(r.ReferencePath+" ("+string(r.Tool)+")", width)))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportsModel browses saved run reports.
type reportsModel struct {
	width       int
	height      int
	reportList  list.Model
	showDetails bool
}

func newReportsModel(reports []m.RunReport) reportsModel {
	items := make([]list.Item, 0, len(reports))
	for _, r := range reports {
		items = append(items, reportItem{report: r})
	}

	reportList := list.New(items, reportDelegate{}, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by path or tool…"

	return reportsModel{reportList: reportList}
}

func (rm reportsModel) Init() tea.Cmd {
	return nil
}

func (rm reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.reportList.SetWidth(rm.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		case "enter":
			if rm.reportList.FilterState() != list.Filtering {
				rm.showDetails = !rm.showDetails
				return rm, nil
			}
		}

		rm.reportList, cmd = rm.reportList.Update(msg)
	}

	return rm, cmd
}

func (rm reportsModel) selected() (m.RunReport, bool) {
	item, ok := rm.reportList.SelectedItem().(reportItem)
	if !ok {
		return m.RunReport{}, false
	}

	return item.report, true
}

func (rm reportsModel) View() string {
	title := titleStyle.Padding(1, 0, 0, 2).Render("gafeval run reports")
	count := labelStyle.Padding(0, 0, 1, 2).Render(fmt.Sprintf("Reports: %d", len(rm.reportList.Items())))

	listHeight := rm.height - 9
	if rm.showDetails {
		listHeight -= 8
	}

	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := rm.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	rm.reportList.SetHeight(listHeight)
	rm.reportList.SetWidth(listWidth)

	table := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(rm.reportList.View())

	sections := []string{title, count, table}

	if r, ok := rm.selected(); ok && rm.showDetails {
		sections = append(sections, renderReportDetails(r))
	}

	footer := labelStyle.Align(lipgloss.Center).Width(rm.width).
		Render("↑/k up • ↓/j down • enter details • / filter • q quit")

	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderReportDetails(r m.RunReport) string {
	s := r.Summary
	lines := []string{
		titleStyle.Render(r.ID),
		labelStyle.Render("gaf       ") + string(r.GAF),
		labelStyle.Render("mappings  ") + string(r.Mappings),
		labelStyle.Render("threshold ") + fmt.Sprintf("%v", r.Threshold),
		labelStyle.Render("correct   ") + goodStyle.Render(formatCount(s.Correct, s.Considered)) + " (" + formatRatio(s.CorrectRatio) + ")",
		labelStyle.Render("incorrect ") + badStyle.Render(formatCount(s.Incorrect, s.Considered)) + " (" + formatRatio(s.IncorrectRatio) + ")",
		labelStyle.Render("excluded  ") + fmt.Sprintf("%d of %d", s.Excluded(), s.Total),
	}

	return summaryFrame.Margin(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
