// Package render draws vector state for the terminal.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/scenario"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title lipgloss.Style
	Live  lipgloss.Style
	Raw   lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Err   lipgloss.Style
	Hint  lipgloss.Style
}

// NewStyles returns the styles for theme; "plain" disables all colour.
func NewStyles(theme string) Styles {
	if theme == "plain" {
		s := lipgloss.NewStyle()
		return Styles{Title: s, Live: s, Raw: s, Label: s, Value: s, Err: s, Hint: s}
	}
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Live:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
		Raw:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Value: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Err:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Hint:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("242")),
	}
}

// Slots draws the storage block of s: live elements by value, raw slots as dots.
func (st Styles) Slots(s scenario.Snapshot) string {
	if s.Cap == 0 {
		return st.Raw.Render("∅ no storage")
	}
	cells := make([]string, s.Cap)
	for i := range cells {
		if i < len(s.Values) {
			cells[i] = st.Live.Render(fmt.Sprint(s.Values[i]))
		} else {
			cells[i] = st.Raw.Render("·")
		}
	}
	return "[" + strings.Join(cells, "|") + "]"
}

// Status is the one-line len/cap/live summary of s.
func (st Styles) Status(s scenario.Snapshot) string {
	var b strings.Builder
	b.WriteString(st.Label.Render("len ") + st.Value.Render(fmt.Sprint(s.Len)))
	b.WriteString(st.Label.Render("  cap ") + st.Value.Render(fmt.Sprint(s.Cap)))
	b.WriteString(st.Label.Render("  spare ") + st.Value.Render(fmt.Sprintf("%d/%d", s.SpareLen, s.SpareCap)))
	b.WriteString(st.Label.Render("  live ") + st.Value.Render(fmt.Sprint(s.Live)))
	return b.String()
}

// Table renders every step of tr, one per row.
func (st Styles) Table(tr *scenario.Trace) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(tr.Name) + "\n")

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tLEN\tCAP\tSLOTS\tNOTE")
	for _, s := range tr.Steps {
		note := s.Result
		if s.Err != "" {
			note = st.Err.Render(s.Err)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\t%s\n", s.Step, s.Op, s.Len, s.Cap, st.Slots(s), note)
	}
	w.Flush()
	return b.String()
}

// GrowthChart plots series (capacity per step) sized by c.
// Returns "" for an empty series.
func GrowthChart(series []float64, c config.Chart, caption string) string {
	if len(series) == 0 {
		return ""
	}
	if len(series) == 1 {
		series = []float64{series[0], series[0]}
	}
	return asciigraph.Plot(series,
		asciigraph.Height(c.Height),
		asciigraph.Width(c.Width),
		asciigraph.Caption(caption),
	)
}
