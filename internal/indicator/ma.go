package indicator

// SMA returns the simple moving average of prices over period. The
// value at i is NaN until a full window of history exists (i < period-1).
func SMA(prices []float64, period int) []float64 {
	out := nanSlice(len(prices))
	if period <= 0 || len(prices) < period {
		return out
	}
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA returns the exponential moving average of prices over period.
// The first defined value, at index period-1, is seeded with the
// simple average of the first period prices; subsequent values apply
// the smoothing factor k = 2/(period+1).
func EMA(prices []float64, period int) []float64 {
	out := nanSlice(len(prices))
	if period <= 0 || len(prices) < period {
		return out
	}
	var seed float64
	for _, p := range prices[:period] {
		seed += p
	}
	out[period-1] = seed / float64(period)
	k := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		out[i] = prices[i]*k + out[i-1]*(1-k)
	}
	return out
}
