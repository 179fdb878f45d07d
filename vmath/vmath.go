package vmath

import "math"

// Approach moves current toward target by fraction of the remaining gap
// Exponential easing: never overshoots for fraction in (0,1]
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
