package parameter

// Point cloud generation
const (
	// FieldDefaultCount is the number of points when no count is configured
	FieldDefaultCount = 4000

	// FieldSpread is the edge length of the cube points are spawned in, centered at origin
	// Each component is drawn from [-FieldSpread/2, FieldSpread/2)
	FieldSpread = 10.0

	// FieldDriftAmplitude scales the per-frame oscillating displacement of every component
	FieldDriftAmplitude = 0.0001

	// FieldGreyChance is the probability a point is painted neutral grey instead of the gradient
	FieldGreyChance = 0.3
)

// Point palette, parsed once by the field package
const (
	FieldColorGreen = "#22c55e"
	FieldColorBlue  = "#3b82f6"
	FieldColorGrey  = "#808080"
)
