// Package tui provides an interactive stepper over a recorded scenario trace.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/render"
	"github.com/pavanmanishd/vector/internal/scenario"
)

type model struct {
	trace  *scenario.Trace
	styles render.Styles
	chart  config.Chart
	cursor int
	width  int
}

// New returns a bubbletea model that walks tr one step at a time.
func New(tr *scenario.Trace, cfg *config.Config) tea.Model {
	return model{
		trace:  tr,
		styles: render.NewStyles(cfg.Theme),
		chart:  cfg.Chart,
		width:  80,
	}
}

// Run starts the stepper on the terminal and blocks until the user quits.
func Run(tr *scenario.Trace, cfg *config.Config) error {
	_, err := tea.NewProgram(New(tr, cfg)).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", " ", "right", "l":
			if m.cursor < len(m.trace.Steps)-1 {
				m.cursor++
			}
		case "p", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.trace.Steps) - 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) View() string {
	if len(m.trace.Steps) == 0 {
		return "empty trace\n"
	}
	s := m.trace.Steps[m.cursor]
	st := m.styles

	var b strings.Builder
	b.WriteString(st.Title.Render(m.trace.Name) + "\n\n")
	b.WriteString(st.Label.Render("step ") + st.Value.Render(fmt.Sprintf("%d/%d", m.cursor, len(m.trace.Steps)-1)))
	b.WriteString(st.Label.Render("  op ") + st.Value.Render(s.Op) + "\n")
	b.WriteString(st.Slots(s) + "\n")
	b.WriteString(st.Status(s) + "\n")
	switch {
	case s.Err != "":
		b.WriteString(st.Err.Render(s.Err) + "\n")
	case s.Result != "":
		b.WriteString(st.Label.Render("result ") + st.Value.Render(s.Result) + "\n")
	default:
		b.WriteString("\n")
	}

	chart := m.chart
	if chart.Width > m.width-10 && m.width > 20 {
		chart.Width = m.width - 10
	}
	b.WriteString("\n" + render.GrowthChart(m.trace.Caps()[:m.cursor+1], chart, "capacity") + "\n\n")
	b.WriteString(st.Hint.Render("n/space next  p prev  g first  G last  q quit") + "\n")
	return b.String()
}
