package indicator

// RSI returns the relative strength index of prices over period.
// Gains and losses are summed over each trailing window of period
// price changes, so the value at i is NaN until i >= period. A window
// with no losses uses RS = 100 and a window with no gains uses RS = 0.
func RSI(prices []float64, period int) []float64 {
	out := nanSlice(len(prices))
	if period <= 0 || len(prices) <= period {
		return out
	}
	for i := period; i < len(prices); i++ {
		var gains, losses float64
		for j := i - period + 1; j <= i; j++ {
			delta := prices[j] - prices[j-1]
			if delta > 0 {
				gains += delta
			} else {
				losses -= delta
			}
		}
		var rs float64
		switch {
		case losses == 0:
			rs = 100
		case gains == 0:
			rs = 0
		default:
			rs = gains / losses
		}
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
