// viewer/viewer.go

// Package viewer is an interactive terminal browser over curved score
// series. It lists every series with its mean and shows the per-score
// breakdown of the selected one.
package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/scorecurve/curve"
	"github.com/mwiater/scorecurve/report"
)

// viewState represents the current screen of the viewer.
type viewState int

const (
	viewList   viewState = iota // viewList shows every series with its mean.
	viewDetail                  // viewDetail shows the scores of one series.
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	meanStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// item is one series in the list.
type item struct {
	name string
	mean float64
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return "mean " + report.FormatMean(i.mean) }
func (i item) FilterValue() string { return i.name }

// model holds the viewer state.
type model struct {
	source   []float64
	series   []curve.Series
	means    []float64
	state    viewState
	selected int
	list     list.Model

	width, height int
}

// newModel computes the mean of every series and builds the list.
func newModel(source []float64, series []curve.Series) (*model, error) {
	c := &report.Collector{}
	if err := report.Report(series, c); err != nil {
		return nil, err
	}

	items := make([]list.Item, len(c.Entries))
	for i, e := range c.Entries {
		items[i] = item{name: e.Name, mean: e.Mean}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Curves over %d scores", len(source))

	return &model{
		source: source,
		series: series,
		means:  c.Means(),
		state:  viewList,
		list:   l,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if m.state == viewList && len(m.series) > 0 {
				// Index is relative to the filtered view; series are in list order.
				m.selected = m.list.GlobalIndex()
				m.state = viewDetail
			}
			return m, nil
		case "esc", "backspace":
			if m.state == viewDetail {
				m.state = viewList
				return m, nil
			}
		}
	}

	if m.state != viewList {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.state == viewDetail {
		return m.detailView()
	}
	return lipgloss.NewStyle().Margin(1, 1).Render(m.list.View())
}

// detailView renders each source score beside its curved value.
func (m *model) detailView() string {
	s := m.series[m.selected]

	var b strings.Builder
	b.WriteString(headerStyle.Render("Curve: "+s.Name) + helpStyle.Render(" (esc to go back, q to quit)") + "\n\n")
	for i, v := range s.Scores {
		var src string
		if i < len(m.source) {
			src = report.FormatMean(m.source[i])
		}
		fmt.Fprintf(&b, "  %s %8s -> %s\n", labelStyle.Render(fmt.Sprintf("#%d", i+1)), src, report.FormatMean(v))
	}
	b.WriteString("\n  " + meanStyle.Render("Mean: "+report.FormatMean(m.means[m.selected])) + "\n")
	return b.String()
}

// Start runs the viewer until the user quits.
func Start(source []float64, series []curve.Series) error {
	m, err := newModel(source, series)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
