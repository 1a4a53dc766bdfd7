// internal/utils/math.go
package utils

// Clamp limits v to [lo, hi]. The upper bound is applied first, so with lo > hi
// the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
