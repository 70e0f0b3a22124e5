// Package backdrop loads the scene's background picture from a URL and
// prepares it for both hosts: the decoded image for the window renderer and a
// downsampled grid of ANSI-256 shades for the terminal renderer.
package backdrop

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"net/http"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder, common for image CDNs

	"github.com/vovakirdan/ringrun/internal/core"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 32 << 20

// dim scales background colours down so game objects stay readable on top.
const dim = 0.45

// Image is a decoded background picture.
type Image struct {
	img    image.Image
	format string

	// last downsampled grid, reused while the surface size is unchanged
	shadeW, shadeH int
	shades         []core.Shade
}

// Load fetches and decodes the image at url. A nil client uses
// http.DefaultClient.
func Load(ctx context.Context, client *http.Client, url string) (*Image, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("backdrop: bad request for %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backdrop: cannot fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backdrop: fetch %s: unexpected status %s", url, resp.Status)
	}

	return Decode(io.LimitReader(resp.Body, maxBodySize))
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("backdrop: cannot decode image: %w", err)
	}
	return &Image{img: img, format: format}, nil
}

// Image returns the decoded picture.
func (b *Image) Image() image.Image {
	return b.img
}

// Format returns the name of the format the picture was decoded from.
func (b *Image) Format() string {
	return b.format
}

// Shades downsamples the picture to a w x h grid (row major) of dimmed
// ANSI-256 colours by averaging the pixels under each cell.
func (b *Image) Shades(w, h int) []core.Shade {
	if w <= 0 || h <= 0 {
		return nil
	}
	if w == b.shadeW && h == b.shadeH && b.shades != nil {
		return b.shades
	}

	bounds := b.img.Bounds()
	out := make([]core.Shade, w*h)
	for cy := 0; cy < h; cy++ {
		y0 := bounds.Min.Y + cy*bounds.Dy()/h
		y1 := max(bounds.Min.Y+(cy+1)*bounds.Dy()/h, y0+1)
		for cx := 0; cx < w; cx++ {
			x0 := bounds.Min.X + cx*bounds.Dx()/w
			x1 := max(bounds.Min.X+(cx+1)*bounds.Dx()/w, x0+1)
			out[cy*w+cx] = b.average(x0, y0, x1, y1)
		}
	}

	b.shadeW, b.shadeH, b.shades = w, h, out
	return out
}

// average returns the palette entry for the mean colour of a pixel block.
func (b *Image) average(x0, y0, x1, y1 int) core.Shade {
	var r, g, bl, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pr, pg, pb, _ := b.img.At(x, y).RGBA()
			r += uint64(pr)
			g += uint64(pg)
			bl += uint64(pb)
			n++
		}
	}
	if n == 0 {
		return ToShade(0, 0, 0)
	}
	// 16-bit channels down to 8-bit
	return ToShade(uint8(r/n>>8), uint8(g/n>>8), uint8(bl/n>>8))
}

// ToShade maps an RGB colour, dimmed, onto the 6x6x6 colour cube of the
// ANSI-256 palette (entries 16-231). It never returns core.ShadeNone.
func ToShade(r, g, b uint8) core.Shade {
	level := func(c uint8) int {
		v := int(float64(c)*dim + 0.5)
		return v * 5 / 255
	}
	return core.Shade(16 + 36*level(r) + 6*level(g) + level(b))
}
