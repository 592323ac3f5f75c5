package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille pixel grid. Its size in pixels is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the pixel at (x, y). Out of range pixels are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// FillColumn lights pixels x from the bottom up to height h.
func (c *Canvas) FillColumn(x, h int) {
	bottom := c.Height*4 - 1
	for y := 0; y < h; y++ {
		c.Set(x, bottom-y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Bars draws values as vertical bars scaled to the canvas height. Each bar is
// one cell wide with one blank pixel column between neighbours. Negative
// values are drawn as zero.
func Bars(values []int, height int) *Canvas {
	c := NewCanvas(max(len(values), 1), height)
	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		return c
	}
	full := height * 4
	for i, v := range values {
		h := 0
		if v > 0 {
			h = max(v*full/peak, 1)
		}
		c.FillColumn(2*i, h)
	}
	return c
}
