package parameter

// Scroll-reactive zoom
const (
	// CameraInitialDistance is the distance from origin along +Z at mount
	CameraInitialDistance = 10.0

	// CameraMinDistance and CameraMaxDistance bound the zoom target
	CameraMinDistance = 6.0
	CameraMaxDistance = 14.0

	// CameraScrollStep is the fixed target change per scroll event, independent of scroll delta
	CameraScrollStep = 0.05

	// CameraEasing is the fraction of the remaining gap closed per frame
	CameraEasing = 0.03
)

// Perspective projection
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV  = 75.0
	CameraNear = 0.1
	CameraFar  = 1000.0
)
