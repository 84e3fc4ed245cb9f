// Package core provides the fundamental types shared by the game loop, the
// entities and the renderer: frames, cells, keys, timers and geometry.
// It has no external dependencies so game logic stays pure and testable.
package core

import "cmp"

// Point is a cell position on the grid. X grows to the right, Y grows down.
type Point struct {
	X, Y int
}

// Size holds grid dimensions in cells.
type Size struct {
	W, H int
}

// Contains returns true if p lies within [0, W) x [0, H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Area returns the number of cells.
func (s Size) Area() int {
	return s.W * s.H
}

// Clamp limits val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}
