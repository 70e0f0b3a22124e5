package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ringrun/internal/backdrop"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/scene"
)

var (
	clearColor  = color.RGBA{0x10, 0x10, 0x18, 0xff}
	borderColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// palette maps core colours to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:          {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:        {0x00, 0xc0, 0x00, 0xff},
	core.ColorYellow:       {0xff, 0xff, 0x00, 0xff},
	core.ColorBlue:         {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta:      {0xc0, 0x00, 0xc0, 0xff},
	core.ColorCyan:         {0x00, 0xc0, 0xc0, 0xff},
	core.ColorWhite:        {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBrightRed:    {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:  {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:   {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:         {0x80, 0x80, 0x80, 0xff},
}

// sprite is one object projected to pixels. size is the radius for spheres
// and tori and the half edge for boxes.
type sprite struct {
	shape scene.Shape
	x, y  float32
	size  float32
	tube  float32
	clr   color.RGBA
}

// Canvas implements scene.Renderer for Ebitengine. Render runs during Update
// and records a draw list; Draw paints the latest list.
type Canvas struct {
	width, height int
	bounds        core.Bounds

	sprites []sprite
	border  [4]float32 // x0, y0, x1, y1
	framed  bool

	source  *backdrop.Image
	bgFor   *backdrop.Image
	bgImage *ebiten.Image
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int, bounds core.Bounds) *Canvas {
	return &Canvas{width: width, height: height, bounds: bounds}
}

// Resize changes the pixel size used by the next Render.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = width, height
}

// Render implements scene.Renderer.
func (c *Canvas) Render(s *scene.Scene, cam *scene.Camera) {
	c.sprites = c.sprites[:0]
	c.source = s.Background()

	ppu := c.pixelsPerUnit(cam)
	for _, obj := range s.Objects() {
		x, y, ok := c.toPixel(cam, obj.Position)
		if !ok {
			continue
		}
		size := obj.Size
		if obj.Shape == scene.ShapeBox {
			size /= 2
		}
		c.sprites = append(c.sprites, sprite{
			shape: obj.Shape,
			x:     x,
			y:     y,
			size:  float32(size * ppu),
			tube:  float32(obj.Tube * ppu),
			clr:   palette[obj.Color],
		})
	}

	x0, y0, ok0 := c.toPixel(cam, core.Vec3{X: -c.bounds.HalfW, Y: c.bounds.HalfH})
	x1, y1, ok1 := c.toPixel(cam, core.Vec3{X: c.bounds.HalfW, Y: -c.bounds.HalfH})
	c.framed = ok0 && ok1
	c.border = [4]float32{x0, y0, x1, y1}
}

// pixelsPerUnit returns the scale of the z = 0 plane on screen.
func (c *Canvas) pixelsPerUnit(cam *scene.Camera) float64 {
	_, halfH := cam.HalfExtents(0)
	if halfH == 0 {
		return 0
	}
	return float64(c.height) / (2 * halfH)
}

// toPixel projects a world point to screen pixels, y pointing down.
func (c *Canvas) toPixel(cam *scene.Camera, p core.Vec3) (x, y float32, ok bool) {
	ndcX, ndcY, ok := cam.Project(p)
	if !ok {
		return 0, 0, false
	}
	x = float32((ndcX + 1) / 2 * float64(c.width))
	y = float32((1 - ndcY) / 2 * float64(c.height))
	return x, y, true
}

// Draw paints the last recorded frame.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	c.drawBackground(screen)

	if c.framed {
		b := c.border
		vector.StrokeRect(screen, b[0], b[1], b[2]-b[0], b[3]-b[1], 1, borderColor, true)
	}

	for _, s := range c.sprites {
		switch s.shape {
		case scene.ShapeSphere:
			vector.DrawFilledCircle(screen, s.x, s.y, s.size, s.clr, true)
		case scene.ShapeBox:
			vector.DrawFilledRect(screen, s.x-s.size, s.y-s.size, 2*s.size, 2*s.size, s.clr, true)
		case scene.ShapeTorus:
			vector.StrokeCircle(screen, s.x, s.y, s.size, 2*s.tube, s.clr, true)
		}
	}
}

// drawBackground stretches the background picture over the screen, dimmed.
// The GPU image is built on first use after the picture changes.
func (c *Canvas) drawBackground(screen *ebiten.Image) {
	if c.source == nil {
		return
	}
	if c.bgFor != c.source {
		c.bgImage = ebiten.NewImageFromImage(c.source.Image())
		c.bgFor = c.source
	}

	b := c.bgImage.Bounds()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	op.ColorScale.Scale(0.45, 0.45, 0.45, 1)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(c.bgImage, op)
}
