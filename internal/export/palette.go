package export

import (
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

// Palette holds the colours of an exported frame.
type Palette struct {
	Background string
	Bar        string
	Highlight  string
	Mark       string
	Text       string
	Line       string
	Alert      string
}

// DefaultPalette matches the cyberpunk terminal theme.
var DefaultPalette = Palette{
	Background: "#0a0a0a",
	Bar:        "#3a3a5c",
	Highlight:  "#ff00ff",
	Mark:       "#00ffff",
	Text:       "#e0e0e0",
	Line:       "#39ff14",
	Alert:      "#ff3355",
}

// Gradient interpolates n hex colours from one hex colour to another.
func Gradient(from, to string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	a, err := colors.ParseHEX(from)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse colour %s", from)
	}
	b, err := colors.ParseHEX(to)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse colour %s", to)
	}
	start, end := a.ToRGB(), b.ToRGB()

	out := make([]string, n)
	for i := range out {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		c, err := colors.RGB(lerp(start.R, end.R, frac), lerp(start.G, end.G, frac), lerp(start.B, end.B, frac)) //nolint
		if err != nil {
			return nil, errors.Wrap(err, "unable to get colour")
		}
		out[i] = c.ToHEX().String()
	}
	return out, nil
}

func lerp(a, b uint8, frac float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*frac + 0.5)
}
