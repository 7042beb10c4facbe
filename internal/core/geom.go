// Package core provides fundamental types and utilities for the blockpilot platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
