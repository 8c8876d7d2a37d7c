package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Component = (*Button)(nil)

// ButtonStyle holds the colours and font of a Button.
type ButtonStyle struct {
	Fill      color.Color
	Hover     color.Color
	TextColor color.Color
	Face      text.Face
}

type Button struct {
	rect  Rectangle
	label string
	style ButtonStyle
}

func NewButton(x, y, width, height float64, label string, style ButtonStyle) *Button {
	return &Button{
		rect:  Rectangle{X: x, Y: y, Width: width, Height: height},
		label: label,
		style: style,
	}
}

// Hit reports whether a pointer at (x, y) is over the button.
func (b *Button) Hit(x, y float64) bool {
	return b.rect.Contains(x, y)
}

// Draw renders the button, highlighted when the cursor is over it.
// Hover state is not stored; it is recomputed from the cursor every frame.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY float64) {
	bgColor := b.fill(cursorX, cursorY)

	vector.DrawFilledRect(screen, float32(b.rect.X), float32(b.rect.Y),
		float32(b.rect.Width), float32(b.rect.Height), bgColor, false)

	if b.style.Face == nil || b.label == "" {
		return
	}
	cx, cy := b.rect.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(b.style.TextColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.label, b.style.Face, op)
}

// fill picks the background colour for a cursor position.
func (b *Button) fill(cursorX, cursorY float64) color.Color {
	if b.Hit(cursorX, cursorY) {
		return b.style.Hover
	}
	return b.style.Fill
}

func (b *Button) Bounds() Rectangle {
	return b.rect
}

func (b *Button) Label() string {
	return b.label
}
