package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/scene"
)

// TerminalSurface draws the point cloud into a tcell screen, one glyph per cell
// The bottom row is reserved for the status line when one is set
type TerminalSurface struct {
	screen tcell.Screen
	acc    *Accumulator
	gain   float64
	ramp   []rune
	status string

	bgStyle     tcell.Style
	statusStyle tcell.Style
}

// NewTerminalSurface binds a surface to an initialized screen
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	w, h := screen.Size()
	ts := &TerminalSurface{
		screen:      screen,
		gain:        parameter.TerminalPointGain,
		ramp:        []rune(parameter.TerminalGlyphRamp),
		bgStyle:     tcell.StyleDefault.Background(tcell.ColorBlack),
		statusStyle: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(100, 100, 110)),
	}
	ts.acc = NewAccumulator(w, ts.fieldRows(h), parameter.CellAspect)
	return ts
}

// SetStatus sets the bottom status line, empty hides it
func (ts *TerminalSurface) SetStatus(s string) {
	ts.status = s
}

// Aspect implements scene.Surface
// Read from the live screen size so a resize or status toggle applies to the frame being drawn
func (ts *TerminalSurface) Aspect() float64 {
	w, h := ts.screen.Size()
	rows := ts.fieldRows(h)
	if w <= 0 || rows <= 0 {
		return 1
	}
	return float64(w) / (float64(rows) * parameter.CellAspect)
}

func (ts *TerminalSurface) fieldRows(h int) int {
	if ts.status != "" && h > 1 {
		return h - 1
	}
	return h
}

// Draw implements scene.Surface
func (ts *TerminalSurface) Draw(v scene.View) error {
	w, h := ts.screen.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("terminal size %dx%d: %w", w, h, scene.ErrSurfaceLost)
	}
	rows := ts.fieldRows(h)
	if w != ts.acc.Width() || rows != ts.acc.Height() {
		ts.acc.Resize(w, rows)
	} else {
		ts.acc.Clear()
	}

	Splat(ts.acc, v, ts.gain)

	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			r, g, b := ts.acc.At(x, y)
			glyph, style := ts.shade(r, g, b)
			ts.screen.SetContent(x, y, glyph, nil, style)
		}
	}

	if rows < h {
		ts.drawStatus(w, h-1)
	}

	ts.screen.Show()
	return nil
}

// shade maps accumulated light to a glyph from the ramp and a hue-preserving foreground
func (ts *TerminalSurface) shade(r, g, b float64) (rune, tcell.Style) {
	peak := Peak(r, g, b)
	if peak < parameter.TerminalIntensityFloor {
		return ' ', ts.bgStyle
	}

	idx := int(peak * float64(len(ts.ramp)))
	if idx >= len(ts.ramp) {
		idx = len(ts.ramp) - 1
	}

	hue := FromUnit(r/peak, g/peak, b/peak)
	fg := Scale(hue, 0.35+0.65*min(peak, 1))
	return ts.ramp[idx], ts.bgStyle.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
}

func (ts *TerminalSurface) drawStatus(w, y int) {
	x := 0
	for _, r := range ts.status {
		if x >= w {
			break
		}
		ts.screen.SetContent(x, y, r, nil, ts.statusStyle)
		x++
	}
	for ; x < w; x++ {
		ts.screen.SetContent(x, y, ' ', nil, ts.statusStyle)
	}
}
