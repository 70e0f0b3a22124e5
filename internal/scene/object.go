package scene

import "github.com/vovakirdan/ringrun/internal/core"

// Shape selects how a renderer draws an object.
type Shape int

const (
	ShapeSphere Shape = iota // filled disc of radius Size
	ShapeBox                 // square with edge Size
	ShapeTorus               // ring of radius Size and tube radius Tube
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapeTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// Object is a positioned visual object. Position is mutable in place, the way
// the game loop moves entities; styling is fixed when the object is created.
type Object struct {
	Name     string
	Shape    Shape
	Size     float64
	Tube     float64
	Color    core.Color
	Position core.Vec3
}

// Contains reports whether the world-space point p on the object's depth plane
// is covered by the object. pad widens the shape, which renderers use to keep
// thin shapes visible at coarse resolutions.
func (o *Object) Contains(p core.Vec2, pad float64) bool {
	d := p.Sub(o.Position.XY())
	switch o.Shape {
	case ShapeSphere:
		return d.Len() <= o.Size+pad
	case ShapeBox:
		half := o.Size/2 + pad
		return d.X >= -half && d.X <= half && d.Y >= -half && d.Y <= half
	case ShapeTorus:
		off := d.Len() - o.Size
		if off < 0 {
			off = -off
		}
		return off <= o.Tube+pad
	default:
		return false
	}
}
