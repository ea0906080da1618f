package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"conway-life/internal/core"

	"github.com/pkg/errors"
)

// Snapshotter writes every rendered generation to a numbered PNG file. The
// first write error is kept and later frames are dropped.
type Snapshotter struct {
	dir     string
	prefix  string
	layout  core.Layout
	palette Palette

	frame int
	err   error
}

// NewSnapshotter returns a Snapshotter writing <prefix>-NNNN.png files into dir.
func NewSnapshotter(dir, prefix string, layout core.Layout, palette Palette) *Snapshotter {
	return &Snapshotter{dir: dir, prefix: prefix, layout: layout, palette: palette}
}

// Render rasterizes grid and saves it as the next frame.
func (s *Snapshotter) Render(grid *core.BoolGrid) {
	if s.err != nil {
		return
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%04d.png", s.prefix, s.frame))
	s.frame++
	s.err = writePNG(path, Rasterize(grid, s.layout, s.palette))
}

// Frames returns the number of frames handed to Render.
func (s *Snapshotter) Frames() int { return s.frame }

// Err returns the first error encountered while writing frames.
func (s *Snapshotter) Err() error { return s.err }

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writePNG] failed to create file: %+v", path)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "[writePNG] failed to encode frame: %+v", path)
	}
	return errors.Wrapf(f.Close(), "[writePNG] failed to close file: %+v", path)
}
