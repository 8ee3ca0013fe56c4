package indicator

import "math"

// MACDResult holds the three aligned series produced by MACD.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACD returns the MACD line (fast EMA minus slow EMA), the signal
// line (an EMA of the MACD line over its defined region) and the
// histogram (line minus signal). All three are index-aligned with
// prices; the line is NaN until the slow EMA warms up and the signal
// and histogram need a further signalPeriod-1 values.
func MACD(prices []float64, fast, slow, signalPeriod int) MACDResult {
	n := len(prices)
	res := MACDResult{
		Line:      nanSlice(n),
		Signal:    nanSlice(n),
		Histogram: nanSlice(n),
	}
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return res
	}
	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	start := -1
	for i := 0; i < n; i++ {
		if math.IsNaN(fastEMA[i]) || math.IsNaN(slowEMA[i]) {
			continue
		}
		res.Line[i] = fastEMA[i] - slowEMA[i]
		if start < 0 {
			start = i
		}
	}
	if start < 0 || n-start < signalPeriod {
		return res
	}
	sig := EMA(res.Line[start:], signalPeriod)
	for k, v := range sig {
		if math.IsNaN(v) {
			continue
		}
		res.Signal[start+k] = v
		res.Histogram[start+k] = res.Line[start+k] - v
	}
	return res
}
