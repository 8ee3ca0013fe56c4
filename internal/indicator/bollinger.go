package indicator

import "math"

// Bands holds the Bollinger band series: the middle moving average and
// the upper and lower envelopes at mult standard deviations.
type Bands struct {
	Middle []float64
	Upper  []float64
	Lower  []float64
}

// Bollinger returns the Bollinger bands of prices with the given
// period and deviation multiplier. The standard deviation at each
// index is taken over the same trailing window as the middle average.
func Bollinger(prices []float64, period int, mult float64) Bands {
	n := len(prices)
	b := Bands{
		Middle: SMA(prices, period),
		Upper:  nanSlice(n),
		Lower:  nanSlice(n),
	}
	if period <= 0 {
		return b
	}
	for i := period - 1; i < n; i++ {
		window := prices[i+1-period : i+1]
		mean := b.Middle[i]
		var ss float64
		for _, p := range window {
			d := p - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(len(window)))
		b.Upper[i] = mean + mult*sd
		b.Lower[i] = mean - mult*sd
	}
	return b
}

// PercentB returns the position of price inside the bands at index i,
// where 0 sits on the lower band and 1 on the upper. NaN when the
// bands are undefined; price continues past 0 and 1 outside the bands.
func PercentB(b Bands, prices []float64, i int) float64 {
	if !Defined(b.Upper, i) || !Defined(b.Lower, i) || i >= len(prices) {
		return math.NaN()
	}
	width := b.Upper[i] - b.Lower[i]
	if width == 0 {
		return 0.5
	}
	return (prices[i] - b.Lower[i]) / width
}
