package render

import (
	"image"
	"image/color"
	"math"

	"conway-life/internal/core"
)

// Palette holds the colours of a frame.
type Palette struct {
	Background color.RGBA
	Dead       color.RGBA
	Alive      color.RGBA
}

// DefaultPalette is a near-black background, grey outlines for dead cells
// and white fills for live ones.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 25, G: 25, B: 25, A: 255},
		Dead:       color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Alive:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// CellRect returns the pixel rectangle covered by cell (col, row). Adjacent
// cells share no pixels and together cover the whole screen.
func CellRect(l core.Layout, col, row int) image.Rectangle {
	x0, y0 := l.CellOrigin(col, row)
	x1, y1 := l.CellOrigin(col+1, row+1)
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Floor(x1)), int(math.Floor(y1)),
	)
}

// Rasterize paints grid into a new RGBA image sized to the layout's screen.
func Rasterize(grid *core.BoolGrid, l core.Layout, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, l.Screen.W, l.Screen.H))
	fillRect(img, img.Bounds(), p.Background)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			r := CellRect(l, x, y)
			if grid.Get(x, y) {
				fillRect(img, r, p.Alive)
				continue
			}
			strokeRect(img, r, p.Dead)
		}
	}
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// strokeRect draws a 1px outline along the inside edge of r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}
