package tui

import (
	"math"

	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/scene"
)

// glyphs per shape.
var glyphs = map[scene.Shape]rune{
	scene.ShapeSphere: '●',
	scene.ShapeBox:    '█',
	scene.ShapeTorus:  'o',
}

const borderGlyph = '·'

// Rasterizer draws a scene into a character screen by casting every cell
// centre through the camera onto the z = 0 plane.
type Rasterizer struct {
	screen *core.Screen
	bounds core.Bounds
}

// NewRasterizer creates a rasterizer drawing into screen. The play-field
// bounds are outlined so the player can see where the ball stops.
func NewRasterizer(screen *core.Screen, bounds core.Bounds) *Rasterizer {
	return &Rasterizer{screen: screen, bounds: bounds}
}

// Render implements scene.Renderer.
func (r *Rasterizer) Render(s *scene.Scene, cam *scene.Camera) {
	scr := r.screen
	scr.Clear()

	w, h := scr.Width(), scr.Height()
	if w == 0 || h == 0 {
		return
	}

	if bg := s.Background(); bg != nil {
		shades := bg.Shades(w, h)
		for y := range h {
			for x := range w {
				scr.SetBg(x, y, shades[y*w+x])
			}
		}
	}

	r.drawBorder(cam)

	halfW, halfH := cam.HalfExtents(0)
	cellW := 2 * halfW / float64(w)
	cellH := 2 * halfH / float64(h)
	// Thin shapes get widened by half a cell so they never fall between centres.
	pad := math.Max(cellW, cellH) / 2

	for _, obj := range s.Objects() {
		objPad := 0.0
		if obj.Shape == scene.ShapeTorus {
			objPad = pad
		}
		x0, y0, x1, y1 := r.cellSpan(cam, obj, objPad)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := r.cellCentre(cam, x, y)
				if obj.Contains(p, objPad) {
					scr.SetColored(x, y, glyphs[obj.Shape], obj.Color)
				}
			}
		}
	}
}

// cellCentre returns the world point under the centre of cell (x, y).
func (r *Rasterizer) cellCentre(cam *scene.Camera, x, y int) core.Vec2 {
	ndcX := (float64(x)+0.5)/float64(r.screen.Width())*2 - 1
	ndcY := 1 - (float64(y)+0.5)/float64(r.screen.Height())*2
	return cam.Unproject(ndcX, ndcY, 0)
}

// toCell maps a world point on the z = 0 plane to a cell. ok is false when
// the point cannot be projected.
func (r *Rasterizer) toCell(cam *scene.Camera, p core.Vec2) (x, y int, ok bool) {
	ndcX, ndcY, ok := cam.Project(core.Vec3{X: p.X, Y: p.Y})
	if !ok {
		return 0, 0, false
	}
	x = int(math.Floor((ndcX + 1) / 2 * float64(r.screen.Width())))
	y = int(math.Floor((1 - ndcY) / 2 * float64(r.screen.Height())))
	return x, y, true
}

// cellSpan returns the clipped cell rectangle covering obj's extent.
func (r *Rasterizer) cellSpan(cam *scene.Camera, obj *scene.Object, pad float64) (x0, y0, x1, y1 int) {
	ext := obj.Size + obj.Tube + pad
	c := obj.Position.XY()
	x0, y0, ok0 := r.toCell(cam, core.Vec2{X: c.X - ext, Y: c.Y + ext})
	x1, y1, ok1 := r.toCell(cam, core.Vec2{X: c.X + ext, Y: c.Y - ext})
	if !ok0 || !ok1 {
		return 0, 0, -1, -1
	}
	w, h := r.screen.Width(), r.screen.Height()
	return core.Clamp(x0, 0, w-1), core.Clamp(y0, 0, h-1), core.Clamp(x1, 0, w-1), core.Clamp(y1, 0, h-1)
}

// drawBorder outlines the play-field bounds with dots.
func (r *Rasterizer) drawBorder(cam *scene.Camera) {
	left, top, ok0 := r.toCell(cam, core.Vec2{X: -r.bounds.HalfW, Y: r.bounds.HalfH})
	right, bottom, ok1 := r.toCell(cam, core.Vec2{X: r.bounds.HalfW, Y: -r.bounds.HalfH})
	if !ok0 || !ok1 {
		return
	}
	for x := left; x <= right; x++ {
		r.screen.SetColored(x, top, borderGlyph, core.ColorGray)
		r.screen.SetColored(x, bottom, borderGlyph, core.ColorGray)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetColored(left, y, borderGlyph, core.ColorGray)
		r.screen.SetColored(right, y, borderGlyph, core.ColorGray)
	}
}
