package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/gantt/internal/ui/chart"
	"go.trai.ch/gantt/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	barStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	emptyStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	weekendStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)
)

func chartStyles() chart.Styles {
	return chart.Styles{
		Header:  render(headerStyle),
		Label:   render(labelStyle),
		Bar:     render(barStyle),
		Empty:   render(emptyStyle),
		Weekend: render(weekendStyle),
	}
}

func render(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}
