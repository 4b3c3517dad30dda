// Package simdops wraps the SIMD vector kernels used by the signal
// analysis helpers behind length-checked entry points.
package simdops

import "github.com/tphakala/simd/f64"

// DotProduct returns the dot product of a and b. Mismatched lengths
// are truncated to the shorter slice.
func DotProduct(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return f64.DotProductUnsafe(a[:n], b[:n])
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.Sum(a)
}
