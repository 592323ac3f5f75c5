package viz

import "testing"

func TestCanvasSetIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 4)
	for _, r := range c.Grid[0] {
		if r != blank {
			t.Fatalf("expected blank canvas, got %q", c.String())
		}
	}

	c.Set(1, 3)
	if c.Grid[0][0] != blank|0x80 {
		t.Errorf("expected dot 8 set, got %U", c.Grid[0][0])
	}
}

func TestBarsScaleToPeak(t *testing.T) {
	c := Bars([]int{0, 4, 8, -3}, 2)
	if c.Width != 4 || c.Height != 2 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}

	const leftColumn = 0x1 | 0x2 | 0x4 | 0x40
	tests := []struct {
		name     string
		col      int
		top, bot rune
	}{
		{"zero", 0, blank, blank},
		{"half", 1, blank, blank | leftColumn},
		{"peak", 2, blank | leftColumn, blank | leftColumn},
		{"negative", 3, blank, blank},
	}
	for _, tt := range tests {
		if got := c.Grid[0][tt.col]; got != tt.top {
			t.Errorf("%s: top row expected %U, got %U", tt.name, tt.top, got)
		}
		if got := c.Grid[1][tt.col]; got != tt.bot {
			t.Errorf("%s: bottom row expected %U, got %U", tt.name, tt.bot, got)
		}
	}
}

func TestBarsAllZero(t *testing.T) {
	c := Bars(nil, 3)
	if c.Width != 1 || c.Height != 3 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
}
