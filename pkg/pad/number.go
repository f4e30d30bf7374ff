package pad

import "math"

// Normalize returns the integral representation of x when the two are
// numerically equivalent, and x unchanged otherwise. It keeps decorative
// decimal fractions (45.0) out of generated content while preserving genuine
// fractional values (22.5). Normalize is idempotent and every derived
// geometric value passes through it before being exposed.
func Normalize(x float64) float64 {
	t := math.Trunc(x)
	if x == t {
		return t
	}
	return x
}
