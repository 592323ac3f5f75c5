package viz

import (
	"strings"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/export"
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Cell      lipgloss.Style
	CellMark  lipgloss.Style
	CellHot   lipgloss.Style
	MarkLabel lipgloss.Style
	Analog    lipgloss.Style
	Alert     lipgloss.Style
	Modal     lipgloss.Style
	Selected  lipgloss.Style
	Graph     lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Done      lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		Label:     lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Cell:      lipgloss.NewStyle().Foreground(t.Text).Background(t.Bar).Padding(0, 1),
		CellMark:  lipgloss.NewStyle().Foreground(t.Background).Background(t.Secondary).Bold(true).Padding(0, 1),
		CellHot:   lipgloss.NewStyle().Foreground(t.Background).Background(t.Primary).Bold(true).Padding(0, 1),
		MarkLabel: lipgloss.NewStyle().Foreground(t.Secondary),
		Analog: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Accent).
			Foreground(t.Accent).
			Padding(0, 1),
		Alert: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Error).
			Foreground(t.Text).
			Padding(1, 2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Graph:    lipgloss.NewStyle().Foreground(t.Success).Padding(1, 0),
		Running:  lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Paused:   lipgloss.NewStyle().Bold(true).Foreground(t.Warning),
		Done:     lipgloss.NewStyle().Bold(true).Foreground(t.Secondary),
	}
}

// GradientText colours each rune of text along a gradient from one colour to
// another. Invalid colours fall back to plain text.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	steps, err := export.Gradient(string(from), string(to), len(runes))
	if err != nil {
		return text
	}
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(steps[i])).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a fraction in [0, 1] as a bar width cells wide.
func ProgressBar(frac float64, width int) string {
	filled := min(max(int(frac*float64(width)), 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	return strings.Repeat("─", mid-3) + " ◆ " + strings.Repeat("─", width-mid-3)
}
