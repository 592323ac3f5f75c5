// Package export renders frames and lesson graphs for use outside the
// terminal: SVG bar charts of a frame and DOT graphs of a traversal.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

// FrameSVG draws a frame's values as bars. Highlighted bars use the
// highlight colour and marks are labelled under their bar.
func FrameSVG(f step.Frame, width, height int, p Palette) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<text x="10" y="20" fill="%s" font-family="monospace" font-size="14">%s</text>
`, width, height, width, height, p.Background, p.Text, html.EscapeString(f.Caption))

	if f.Alert != "" {
		fmt.Fprintf(&sb, `<text x="10" y="40" fill="%s" font-family="monospace" font-size="12">%s</text>
`, p.Alert, html.EscapeString(f.Alert))
	}

	n := len(f.Values)
	if n > 0 {
		top, bottom := 50.0, float64(height)-40
		maxAbs := 1
		for _, v := range f.Values {
			maxAbs = max(maxAbs, abs(v))
		}
		slot := float64(width-20) / float64(n)
		barW := slot * 0.8

		labels := make(map[int][]string)
		for _, m := range f.Marks {
			labels[m.Index] = append(labels[m.Index], m.Name)
		}

		for i, v := range f.Values {
			h := (bottom - top) * float64(abs(v)) / float64(maxAbs)
			x := 10 + float64(i)*slot + (slot-barW)/2
			fill := p.Bar
			if f.Highlighted(i) {
				fill = p.Highlight
			}
			fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%d</text>
`, x, bottom-h, barW, h, fill, x+barW/2, bottom-h-4, p.Text, v)
			if names, ok := labels[i]; ok {
				fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%s</text>
`, x+barW/2, bottom+16, p.Mark, html.EscapeString(strings.Join(names, ",")))
			}
		}
	}

	if len(f.Items) > 0 {
		fmt.Fprintf(&sb, `<text x="10" y="%d" fill="%s" font-family="monospace" font-size="12">[%s]</text>
`, height-8, p.Text, html.EscapeString(strings.Join(f.Items, " ")))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG draws a series as a polyline scaled to the canvas.
func SeriesSVG(series []float64, width, height int, p Palette) string {
	if len(series) < 2 {
		return ""
	}

	minY, maxY := series[0], series[0]
	for _, v := range series {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, p.Background, p.Line)

	for i, v := range series {
		x := float64(i) / float64(len(series)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
