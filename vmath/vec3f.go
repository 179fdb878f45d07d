package vmath

// Vec3F is a float64 3D vector for projection math
type Vec3F struct {
	X, Y, Z float64
}

// V3FSub returns a - b
func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// V3FAt reads the stride-3 triple starting at index i from a flat buffer
func V3FAt(buf []float64, i int) Vec3F {
	i3 := i * 3
	return Vec3F{buf[i3], buf[i3+1], buf[i3+2]}
}
