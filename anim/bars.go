package anim

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Saturation and value of the bar colour wheel.
const (
	barSaturation = 0.75
	barValue      = 0.85
)

// Bar is one animated bar. Its height is never stored; it is derived from
// the elapsed time each frame.
type Bar struct {
	Phase float64 // radians
	Speed float64
	Color color.RGBA
}

// NewBars builds n bars with evenly spread phases and hues.
func NewBars(n int) []Bar {
	if n <= 0 {
		return nil
	}
	div := float64(max(1, n))
	bars := make([]Bar, n)
	for i := range bars {
		r, g, b := colorful.Hsv(float64(i)*(360/div), barSaturation, barValue).RGB255()
		bars[i] = Bar{
			Phase: float64(i) * (2 * math.Pi / div),
			Speed: 0.8 + float64(i%4)*0.25,
			Color: color.RGBA{R: r, G: g, B: b, A: 0xff},
		}
	}
	return bars
}

// Level maps the bar's sinusoid at time t into [0, 1].
func (b Bar) Level(t float64) float64 {
	return (math.Sin(t*b.Speed+b.Phase) + 1) / 2
}

// Height returns the bar height in [0, maxHeight] at time t.
func (b Bar) Height(t, maxHeight float64) float64 {
	return b.Level(t) * maxHeight
}

// BarLayout holds the horizontal placement of a row of bars.
type BarLayout struct {
	Width   int
	Spacing int
	StartX  int
}

// LayoutBars centres n bars across a canvas of the given width.
// Bars are at least 8 pixels wide and separated by half their width.
func LayoutBars(canvasWidth, n int) BarLayout {
	w := max(8, canvasWidth/(max(1, n)*3))
	spacing := w / 2
	total := n*w + max(0, n-1)*spacing
	return BarLayout{
		Width:   w,
		Spacing: spacing,
		StartX:  (canvasWidth - total) / 2,
	}
}

// X returns the left edge of bar i.
func (l BarLayout) X(i int) int {
	return l.StartX + i*(l.Width+l.Spacing)
}
