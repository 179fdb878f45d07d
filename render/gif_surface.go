package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/scene"
)

// GIFSurface records every drawn frame for an animated GIF
type GIFSurface struct {
	acc    *Accumulator
	gain   float64
	delay  int
	frames []*image.Paletted
	delays []int
}

// NewGIFSurface creates a recorder of the given pixel size
func NewGIFSurface(width, height int) *GIFSurface {
	return &GIFSurface{
		acc:   NewAccumulator(width, height, 1),
		gain:  parameter.GIFPointGain,
		delay: parameter.GIFFrameDelay,
	}
}

// Aspect implements scene.Surface
func (gs *GIFSurface) Aspect() float64 {
	return gs.acc.Aspect()
}

// Draw implements scene.Surface
func (gs *GIFSurface) Draw(v scene.View) error {
	gs.acc.Clear()
	Splat(gs.acc, v, gs.gain)

	w, h := gs.acc.Width(), gs.acc.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := FromUnit(gs.acc.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	pal := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(pal, pal.Bounds(), img, image.Point{}, draw.Src)

	gs.frames = append(gs.frames, pal)
	gs.delays = append(gs.delays, gs.delay)
	return nil
}

// Frames returns the number of recorded frames
func (gs *GIFSurface) Frames() int {
	return len(gs.frames)
}

// Encode writes all recorded frames as a looping GIF
func (gs *GIFSurface) Encode(w io.Writer) error {
	if len(gs.frames) == 0 {
		return fmt.Errorf("encode gif: no frames recorded")
	}
	out := &gif.GIF{
		Image:     gs.frames,
		Delay:     gs.delays,
		LoopCount: 0,
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
