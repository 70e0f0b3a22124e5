// Package core provides fundamental types and utilities shared by the game,
// the scene host and the platforms. It contains no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement on the play-field plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Collides reports whether two points are strictly closer than threshold.
// A distance exactly equal to the threshold is not a collision.
func Collides(a, b Vec2, threshold float64) bool {
	return Dist(a, b) < threshold
}

// Vec3 is a position in scene space. The play-field lies on the z = 0 plane.
type Vec3 struct {
	X, Y, Z float64
}

// XY drops the depth component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Set assigns all three components at once.
func (v *Vec3) Set(x, y, z float64) {
	v.X, v.Y, v.Z = x, y, z
}

// Bounds is a rectangle centred on the origin: [-HalfW, HalfW] x [-HalfH, HalfH].
type Bounds struct {
	HalfW float64
	HalfH float64
}

// NewBounds creates bounds with the given half extents.
func NewBounds(halfW, halfH float64) Bounds {
	return Bounds{HalfW: halfW, HalfH: halfH}
}

// Clamp restricts each axis of p independently to the bounds.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, -b.HalfW, b.HalfW),
		Y: ClampF(p.Y, -b.HalfH, b.HalfH),
	}
}

// Contains returns true if p lies inside the bounds, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= -b.HalfW && p.X <= b.HalfW && p.Y >= -b.HalfH && p.Y <= b.HalfH
}

// Rect represents an axis-aligned box of screen cells.
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
