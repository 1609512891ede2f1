// Package core provides fundamental types and utilities for the flappy platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle on the screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// AABB is a centre-based axis-aligned bounding box in world units.
type AABB struct {
	CX, CY float64 // Centre
	W, H   float64 // Full extents
}

// NewAABB creates a box centred at (cx, cy) with the given extents.
func NewAABB(cx, cy, w, h float64) AABB {
	return AABB{CX: cx, CY: cy, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b AABB) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 { return b.CX + b.W/2 }

// Overlaps reports whether both boxes overlap on both axes.
// Touching edges do not count as overlap.
func (b AABB) Overlaps(other AABB) bool {
	return math.Abs(b.CX-other.CX) < (b.W+other.W)/2 &&
		math.Abs(b.CY-other.CY) < (b.H+other.H)/2
}

// Scaled returns the box with both extents multiplied by s, keeping its centre.
func (b AABB) Scaled(s float64) AABB {
	return AABB{CX: b.CX, CY: b.CY, W: b.W * s, H: b.H * s}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EuclidMod returns x mod m in [0, m) for positive m.
func EuclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
