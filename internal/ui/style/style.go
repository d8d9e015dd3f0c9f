// Package style provides the brand colors, icons and chart glyphs shared by
// the log handler, the text chart and the terminal viewer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Chart glyphs.
const (
	// BarFill draws a task bar.
	BarFill = "█"
	// Empty marks a cell with nothing on it.
	Empty = "·"
	// Weekend marks a weekend day cell.
	Weekend = "░"
	// Separator divides the label gutter from the grid.
	Separator = "│"
)
