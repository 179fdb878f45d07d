package parameter

import "time"

// Point material
const (
	// PointSizeFactor converts live camera distance into world-space point size
	PointSizeFactor = 0.002
)

// Frame pacing
const (
	// FrameRate is the default number of frames the hosts advance per second
	FrameRate = 60

	// FrameInterval is the ticker period at FrameRate
	FrameInterval = time.Second / FrameRate
)

// Terminal surface
const (
	// CellAspect is the height of a terminal cell in units of its width
	CellAspect = 2.0

	// TerminalPointGain converts projected point size (in cell rows) into additive intensity
	// Points are far smaller than a cell, so the gain brings a handful of overlapping points to full brightness
	TerminalPointGain = 12.0

	// TerminalIntensityFloor is the accumulated intensity below which a cell stays blank
	TerminalIntensityFloor = 0.04

	// TerminalGlyphRamp orders glyphs from faint to bright
	TerminalGlyphRamp = ".:+*#"
)

// GIF surface
const (
	// GIFPointGain is the pixel-space counterpart of TerminalPointGain
	GIFPointGain = 3.0

	// GIFFrameDelay is the per-frame delay in 1/100s
	GIFFrameDelay = 3

	GIFDefaultWidth  = 320
	GIFDefaultHeight = 200
)
