package indicator

import "math"

// WilderSmooth applies Wilder's running-total smoothing to values.
// The first smoothed value, at index period-1, is the simple sum of
// the first period values; each value after that is
// prev - prev/period + values[i]. Earlier indices are NaN.
func WilderSmooth(values []float64, period int) []float64 {
	out := nanSlice(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	var sum float64
	for _, v := range values[:period] {
		sum += v
	}
	out[period-1] = sum
	for i := period; i < len(values); i++ {
		out[i] = out[i-1] - out[i-1]/float64(period) + values[i]
	}
	return out
}

// DirectionalResult holds the ADX family: the average directional
// index and the positive and negative directional indicator series.
type DirectionalResult struct {
	ADX     []float64
	PlusDI  []float64
	MinusDI []float64
}

// ADX computes the average directional index over aligned OHLC bars.
// The first bar has TR = high-low and no directional movement, so
// movement is smoothed from the second bar onward, DX needs a further
// period of history, and the ADX seed averages the first period DX
// values. The whole family is NaN until index 2*period-1.
func ADX(high, low, close []float64, period int) DirectionalResult {
	n := len(close)
	res := DirectionalResult{
		ADX:     nanSlice(n),
		PlusDI:  nanSlice(n),
		MinusDI: nanSlice(n),
	}
	if period <= 0 || n < 2*period || len(high) != n || len(low) != n {
		return res
	}

	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr[0] = high[0] - low[0]
	for i := 1; i < n; i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - close[i-1])
		lc := math.Abs(low[i] - close[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
		up := high[i] - high[i-1]
		down := low[i-1] - low[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	// Smooth from the first bar that can carry movement; index k in
	// the smoothed series corresponds to bar k+1.
	smTR := WilderSmooth(tr[1:], period)
	smPlus := WilderSmooth(plusDM[1:], period)
	smMinus := WilderSmooth(minusDM[1:], period)

	plusDI := nanSlice(n)
	minusDI := nanSlice(n)
	dx := nanSlice(n)
	for k := period - 1; k < n-1; k++ {
		i := k + 1
		if smTR[k] != 0 {
			plusDI[i] = 100 * smPlus[k] / smTR[k]
			minusDI[i] = 100 * smMinus[k] / smTR[k]
		} else {
			plusDI[i] = 0
			minusDI[i] = 0
		}
		if sum := plusDI[i] + minusDI[i]; sum != 0 {
			dx[i] = 100 * math.Abs(plusDI[i]-minusDI[i]) / sum
		} else {
			dx[i] = 0
		}
	}

	first := 2*period - 1
	var seed float64
	for i := period; i <= first; i++ {
		seed += dx[i]
	}
	res.ADX[first] = seed / float64(period)
	for i := first + 1; i < n; i++ {
		res.ADX[i] = (res.ADX[i-1]*float64(period-1) + dx[i]) / float64(period)
	}
	// The DI lines exist a little earlier but the family is reported
	// together once ADX itself is defined.
	for i := first; i < n; i++ {
		res.PlusDI[i] = plusDI[i]
		res.MinusDI[i] = minusDI[i]
	}
	return res
}
