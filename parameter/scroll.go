package parameter

// Virtual page for hosts without a scrollable document
const (
	// ScrollPageHeight is the maximum scroll offset of the virtual page
	ScrollPageHeight = 4000.0

	// ScrollLineStep is the offset change for a wheel notch or arrow key
	ScrollLineStep = 40.0

	// ScrollPageStep is the offset change for PgUp/PgDn
	ScrollPageStep = 600.0
)
