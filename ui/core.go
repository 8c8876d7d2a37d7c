package ui

import "github.com/hajimehoshi/ebiten/v2"

// Component represents a drawable, hit-testable element of a screen.
type Component interface {
	Draw(screen *ebiten.Image, cursorX, cursorY float64)
	Bounds() Rectangle
}

// Rectangle represents the bounds of a Component
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
