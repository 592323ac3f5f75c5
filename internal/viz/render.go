package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	cellWidth  = 5
	barsHeight = 6
)

// markLabels returns the comma-joined mark names under each value, cut to
// the cell width.
func markLabels(f step.Frame) []string {
	labels := make([]string, len(f.Values))
	for _, m := range f.Marks {
		if m.Index < 0 || m.Index >= len(labels) {
			continue
		}
		if labels[m.Index] != "" {
			labels[m.Index] += ","
		}
		labels[m.Index] += m.Name
	}
	for i, l := range labels {
		if len(l) > cellWidth {
			labels[i] = l[:cellWidth]
		}
	}
	return labels
}

func isMarked(f step.Frame, i int) bool {
	for _, m := range f.Marks {
		if m.Index == i {
			return true
		}
	}
	return false
}

// renderCells draws the values as a row of cells with their marks below.
func renderCells(f step.Frame, st Styles) string {
	if len(f.Values) == 0 {
		return st.Subtle.Render("(empty)")
	}
	labels := markLabels(f)
	cells := make([]string, len(f.Values))
	under := make([]string, len(f.Values))
	for i, v := range f.Values {
		text := fmt.Sprintf("%*d", cellWidth-2, v)
		switch {
		case f.Highlighted(i):
			cells[i] = st.CellHot.Render(text)
		case isMarked(f, i):
			cells[i] = st.CellMark.Render(text)
		default:
			cells[i] = st.Cell.Render(text)
		}
		under[i] = st.MarkLabel.Render(fmt.Sprintf("%-*s", cellWidth, labels[i]))
	}
	return strings.Join(cells, " ") + "\n" + strings.Join(under, " ")
}

// renderBars draws the values on a Braille canvas.
func renderBars(f step.Frame, st Styles) string {
	if len(f.Values) == 0 {
		return st.Subtle.Render("(empty)")
	}
	return st.Graph.Render(Bars(f.Values, barsHeight).String())
}

func renderItems(f step.Frame, st Styles) string {
	if len(f.Items) == 0 {
		return st.Subtle.Render("[]")
	}
	return st.Value.Render("[ " + strings.Join(f.Items, "  ") + " ]")
}

func renderCounters(f step.Frame, st Styles) string {
	var b strings.Builder
	for _, c := range f.Counters {
		b.WriteString(st.Label.Render(c.Name) + st.Value.Render(strconv.Itoa(c.Value)) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// renderChart plots the frame's series once it has two points.
func renderChart(f step.Frame, st Styles, width int) string {
	if len(f.Series) < 2 {
		return ""
	}
	chart := asciigraph.Plot(f.Series,
		asciigraph.Height(5),
		asciigraph.Width(min(max(width, 10), 60)),
		asciigraph.Caption("trend"))
	return st.Graph.Render(chart)
}

// logLines collects the log of every frame up to the cursor.
func logLines(frames []step.Frame) string {
	lines := make([]string, 0, len(frames))
	for _, f := range frames {
		if f.Log == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%3d  %s", f.Index, f.Log))
	}
	return strings.Join(lines, "\n")
}

func renderModal(msg string, st Styles) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Alert.Render("⚠ "+msg),
		"",
		st.Subtle.Render("press enter to dismiss"))
	return st.Modal.Render(body)
}

// RenderFrame is the static rendering of one frame used by the CLI.
func RenderFrame(f step.Frame, t Theme, bars bool) string {
	st := NewStyles(t)
	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("[%02d] ", f.Index)) + st.Value.Render(f.Caption) + "\n")
	if bars {
		b.WriteString(renderBars(f, st) + "\n")
	} else {
		b.WriteString(renderCells(f, st) + "\n")
	}
	if len(f.Items) > 0 {
		b.WriteString(st.Label.Render("structure") + renderItems(f, st) + "\n")
	}
	if len(f.Counters) > 0 {
		parts := make([]string, len(f.Counters))
		for i, c := range f.Counters {
			parts[i] = st.Subtle.Render(c.Name+"=") + st.Value.Render(strconv.Itoa(c.Value))
		}
		b.WriteString(strings.Join(parts, "  ") + "\n")
	}
	if f.Alert != "" {
		b.WriteString(st.Alert.Render("▲ "+f.Alert) + "\n")
	}
	if f.Analog != "" {
		b.WriteString(st.Analog.Render(f.Analog) + "\n")
	}
	return b.String()
}
