package render

// Accumulator is a float RGB framebuffer with additive writes and no depth buffer
// Overlapping points brighten the cell rather than occlude each other
type Accumulator struct {
	width, height int
	// pixelAspect is pixel height over pixel width: 1 for images, 2 for terminal cells
	pixelAspect float64
	buf         []float64 // stride 3, row-major
}

// NewAccumulator creates a cleared buffer
func NewAccumulator(width, height int, pixelAspect float64) *Accumulator {
	a := &Accumulator{pixelAspect: pixelAspect}
	a.Resize(width, height)
	return a
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (a *Accumulator) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height * 3
	if cap(a.buf) < size {
		a.buf = make([]float64, size)
	} else {
		a.buf = a.buf[:size]
	}
	a.width = width
	a.height = height
	a.Clear()
}

// Clear zeroes every channel
func (a *Accumulator) Clear() {
	clear(a.buf)
}

// Width returns the buffer width in pixels
func (a *Accumulator) Width() int { return a.width }

// Height returns the buffer height in pixels
func (a *Accumulator) Height() int { return a.height }

// Aspect returns viewport width/height in square units
func (a *Accumulator) Aspect() float64 {
	if a.height == 0 || a.pixelAspect == 0 {
		return 1
	}
	return float64(a.width) / (float64(a.height) * a.pixelAspect)
}

// Add blends color additively into pixel (x,y); out-of-bounds writes are dropped
func (a *Accumulator) Add(x, y int, r, g, b float64) bool {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return false
	}
	i := (y*a.width + x) * 3
	a.buf[i] += r
	a.buf[i+1] += g
	a.buf[i+2] += b
	return true
}

// At returns the accumulated unit channel values at (x,y)
func (a *Accumulator) At(x, y int) (r, g, b float64) {
	if x < 0 || x >= a.width || y < 0 || y >= a.height {
		return 0, 0, 0
	}
	i := (y*a.width + x) * 3
	return a.buf[i], a.buf[i+1], a.buf[i+2]
}
