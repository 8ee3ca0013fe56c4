// Package indicator implements the technical analysis primitives used
// by the signal engine. Every function returns output index-aligned
// with its input; positions before an indicator's warm-up hold NaN so
// callers can tell "not yet defined" apart from a real zero.
package indicator

import "math"

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// Defined reports whether series holds a computed value at index i.
func Defined(series []float64, i int) bool {
	return i >= 0 && i < len(series) && !math.IsNaN(series[i])
}
