package scene

import (
	"math"

	"github.com/vovakirdan/ringrun/internal/core"
)

// Camera is a perspective camera looking down the -z axis.
type Camera struct {
	FOV      float64 // Vertical field of view in degrees
	Aspect   float64 // Width/height of the drawing surface
	Near     float64
	Far      float64
	Position core.Vec3
}

// NewPerspectiveCamera creates a camera at the origin.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	if aspect <= 0 {
		aspect = 1
	}
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetAspect updates the aspect ratio after the surface is resized.
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// HalfExtents returns the visible half width and half height of the plane at
// depth z. Both are zero when the plane is behind the camera.
func (c *Camera) HalfExtents(z float64) (halfW, halfH float64) {
	d := c.Position.Z - z
	if d <= 0 {
		return 0, 0
	}
	halfH = d * math.Tan(c.FOV*math.Pi/360)
	return halfH * c.Aspect, halfH
}

// Project maps a world point to normalized device coordinates in [-1, 1],
// y pointing up. ok is false when the point is outside the near/far range.
func (c *Camera) Project(p core.Vec3) (ndcX, ndcY float64, ok bool) {
	d := c.Position.Z - p.Z
	if d < c.Near || d > c.Far {
		return 0, 0, false
	}
	halfW, halfH := c.HalfExtents(p.Z)
	return (p.X - c.Position.X) / halfW, (p.Y - c.Position.Y) / halfH, true
}

// Unproject maps normalized device coordinates back onto the plane at depth z.
func (c *Camera) Unproject(ndcX, ndcY, z float64) core.Vec2 {
	halfW, halfH := c.HalfExtents(z)
	return core.Vec2{
		X: c.Position.X + ndcX*halfW,
		Y: c.Position.Y + ndcY*halfH,
	}
}
