package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"conway-life/internal/core"
)

func TestText(t *testing.T) {
	g := core.NewBoolGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)
	if got, want := Text(g), "#..\n..#\n"; got != want {
		t.Fatalf("Text=%q, expected %q", got, want)
	}
}

func TestSnapshotterWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	l := core.Layout{Grid: core.Size{W: 4, H: 4}, Screen: core.Size{W: 40, H: 40}}
	s := NewSnapshotter(dir, "blinker", l, DefaultPalette())
	g := core.NewBoolGrid(4, 4)
	g.Set(1, 1, true)
	s.Render(g)
	s.Render(g)
	if err := s.Err(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if s.Frames() != 2 {
		t.Fatalf("frames=%d, expected 2", s.Frames())
	}

	f, err := os.Open(filepath.Join(dir, "blinker-0001.png"))
	if err != nil {
		t.Fatalf("open second frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("frame bounds %v", b)
	}
	r, g2, b, _ := img.At(15, 15).RGBA()
	if r>>8 != 255 || g2>>8 != 255 || b>>8 != 255 {
		t.Fatalf("live cell pixel not white")
	}
}

func TestSnapshotterKeepsFirstError(t *testing.T) {
	l := core.Layout{Grid: core.Size{W: 2, H: 2}, Screen: core.Size{W: 4, H: 4}}
	s := NewSnapshotter(filepath.Join(t.TempDir(), "missing"), "x", l, DefaultPalette())
	s.Render(core.NewBoolGrid(2, 2))
	s.Render(core.NewBoolGrid(2, 2))
	if s.Err() == nil {
		t.Fatalf("expected an error for a missing directory")
	}
	if s.Frames() != 1 {
		t.Fatalf("frames after failure=%d, expected 1", s.Frames())
	}
}
