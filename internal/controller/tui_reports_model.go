package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// reportDelegate renders one report row: mean confidence then path.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	report, ok := item.(reportItem)
	if !ok {
		return
	}

	width := l.Width() - 8

	var line string

	if index == l.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		line = fmt.Sprintf("%s  %s",
			selected.Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%d%%", report.confidence)),
			selected.Render(animateScroll(report.path, width, d.offset)),
		)
	} else {
		line = fmt.Sprintf("%s  %s",
			lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Render(renderConfidence(report.confidence)),
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(truncateToWidth(report.path, width)),
		)
	}

	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	gap := "   "
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

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

// reportsModel browses stored reports; enter opens the translations of the
// selected snippet.
type reportsModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     reportDelegate
	detail       viewport.Model
	showDetail   bool
	total        int
	mean         int
	animOffset   int
	lastSelected int
}

func newReportsModel(reports []m.Report) reportsModel {
	delegate := reportDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	items := make([]list.Item, 0, len(reports))
	sum := 0

	for _, report := range reports {
		confidence := meanConfidence(report)
		sum += confidence

		items = append(items, reportItem{
			path:       string(report.Source.Path),
			confidence: confidence,
			report:     report,
		})
	}

	fileList.SetItems(items)

	model := reportsModel{
		fileList:     fileList,
		delegate:     delegate,
		detail:       viewport.New(80, 20),
		total:        len(reports),
		lastSelected: -1,
	}

	if len(reports) > 0 {
		model.mean = sum / len(reports)
		model.lastSelected = 0
	}

	return model
}

func (rm reportsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)
		rm.detail.Width = max(rm.width-2, 10)
		rm.detail.Height = max(rm.height-4, 5)

	case tickMsg:
		if rm.fileList.FilterState() == list.Filtering || rm.showDetail {
			return rm, nil
		}

		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.fileList.SetDelegate(rm.delegate)

		return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if rm.showDetail {
			return rm.updateDetail(msg)
		}

		return rm.updateList(msg)
	}

	return rm, cmd
}

func (rm reportsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtering := rm.fileList.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return rm, tea.Quit
	case "q":
		if !filtering {
			return rm, tea.Quit
		}
	case "enter":
		if !filtering {
			if item, ok := rm.fileList.SelectedItem().(reportItem); ok {
				rm.showDetail = true
				rm.detail.SetContent(renderTargetReports(item.report.Targets))
				rm.detail.GotoTop()

				return rm, nil
			}
		}
	}

	newList, cmd := rm.fileList.Update(msg)
	rm.fileList = newList

	if rm.fileList.Index() != rm.lastSelected {
		rm.lastSelected = rm.fileList.Index()
		rm.animOffset = 0
		rm.delegate.offset = 0
		rm.fileList.SetDelegate(rm.delegate)
	}

	return rm, cmd
}

func (rm reportsModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return rm, tea.Quit
	case "esc", "backspace":
		rm.showDetail = false

		return rm, rm.Init()
	}

	var cmd tea.Cmd

	rm.detail, cmd = rm.detail.Update(msg)

	return rm, cmd
}

func (rm reportsModel) View() string {
	if rm.showDetail {
		footer := footerStyle.Width(rm.width).Align(lipgloss.Center).Render("↑/↓ scroll • esc back • q quit")

		return lipgloss.JoinVertical(lipgloss.Left, rm.detail.View(), footer)
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Transpyle Reports")

	summary := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf(
			"Files: %s   Mean confidence: %s",
			accentStyle.Render(fmt.Sprintf("%d", rm.total)),
			accentStyle.Render(fmt.Sprintf("%d%%", rm.mean)),
		))

	footer := footerStyle.Width(rm.width).Align(lipgloss.Center).
		Render("↑/k up • ↓/j down • enter open • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderTable(),
		footer,
	)
}

func (rm reportsModel) renderTable() string {
	// title, summary, footer, border and header take nine rows.
	listHeight := max(rm.height-9, 5)
	listWidth := rm.width - 6

	rm.fileList.SetHeight(listHeight)
	rm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Score", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.fileList.View(),
		),
	)
}
