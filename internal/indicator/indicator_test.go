package indicator

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSMAExactValues(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{math.NaN(), math.NaN(), 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if math.IsNaN(want[i]) {
			if !math.IsNaN(got[i]) {
				t.Errorf("index %d: got %v want NaN", i, got[i])
			}
			continue
		}
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestSMAShortInputAllNaN(t *testing.T) {
	for _, v := range SMA([]float64{1, 2}, 3) {
		if !math.IsNaN(v) {
			t.Fatalf("short input must stay undefined, got %v", v)
		}
	}
}

func TestEMASeedIsSMAOfFirstPeriod(t *testing.T) {
	prices := []float64{2, 4, 6, 8, 10}
	got := EMA(prices, 3)

	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("warm-up must be NaN, got %v", got[:2])
	}
	if got[2] != 4 { // (2+4+6)/3
		t.Fatalf("seed: got %v want 4", got[2])
	}
	// k = 2/(3+1) = 0.5
	if want := 8*0.5 + 4*0.5; got[3] != want {
		t.Fatalf("ema[3]: got %v want %v", got[3], want)
	}
	if want := 10*0.5 + 6*0.5; got[4] != want {
		t.Fatalf("ema[4]: got %v want %v", got[4], want)
	}
}

func TestRSIStrictlyIncreasingConvergesNear100(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	rsi := RSI(prices, 14)

	for i := 0; i < 14; i++ {
		if !math.IsNaN(rsi[i]) {
			t.Fatalf("warm-up index %d must be NaN, got %v", i, rsi[i])
		}
	}
	// losses = 0 forces RS = 100, RSI = 100 - 100/101.
	want := 100 - 100.0/101
	if !almostEqual(rsi[len(rsi)-1], want, 1e-9) {
		t.Fatalf("rsi: got %v want %v", rsi[len(rsi)-1], want)
	}
}

func TestRSIStrictlyDecreasingIsZero(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = float64(100 - i)
	}
	rsi := RSI(prices, 14)
	if got := rsi[len(rsi)-1]; got != 0 {
		t.Fatalf("all losses: got %v want 0", got)
	}
}

func TestWilderSmoothRecurrence(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	period := 3
	got := WilderSmooth(values, period)

	if !math.IsNaN(got[0]) || !math.IsNaN(got[1]) {
		t.Fatalf("warm-up must be NaN, got %v", got[:2])
	}
	if got[2] != 6 { // simple sum of the first period values
		t.Fatalf("seed: got %v want 6", got[2])
	}
	prev := 6.0
	for i := 3; i < len(values); i++ {
		want := prev - prev/float64(period) + values[i]
		if !almostEqual(got[i], want, 1e-12) {
			t.Fatalf("index %d: got %v want %v", i, got[i], want)
		}
		prev = want
	}
}

func TestADXWarmUpAndBounds(t *testing.T) {
	n := 60
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	for i := 0; i < n; i++ {
		c := 100 + float64(i)
		close[i] = c
		high[i] = c * 1.01
		low[i] = c * 0.99
	}
	period := 14
	res := ADX(high, low, close, period)

	first := 2*period - 1
	for i := 0; i < first; i++ {
		if !math.IsNaN(res.ADX[i]) {
			t.Fatalf("ADX[%d] must be NaN during warm-up, got %v", i, res.ADX[i])
		}
	}
	for i := first; i < n; i++ {
		if math.IsNaN(res.ADX[i]) {
			t.Fatalf("ADX[%d] must be defined, got NaN", i)
		}
		if res.ADX[i] < 0 || res.ADX[i] > 100 {
			t.Fatalf("ADX[%d] out of bounds: %v", i, res.ADX[i])
		}
	}
	// A monotone uptrend is all positive directional movement.
	last := n - 1
	if res.PlusDI[last] <= res.MinusDI[last] {
		t.Fatalf("uptrend: +DI %v should exceed -DI %v", res.PlusDI[last], res.MinusDI[last])
	}
	if res.MinusDI[last] != 0 {
		t.Fatalf("uptrend has no negative movement, -DI = %v", res.MinusDI[last])
	}
}

func TestMACDAlignment(t *testing.T) {
	n := 60
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	res := MACD(prices, 12, 26, 9)

	for i := 0; i < 25; i++ {
		if !math.IsNaN(res.Line[i]) {
			t.Fatalf("line[%d] must be NaN before slow warm-up", i)
		}
	}
	if math.IsNaN(res.Line[25]) {
		t.Fatalf("line must be defined once both EMAs are")
	}
	// Signal needs a further signalPeriod-1 values over the defined region.
	if !math.IsNaN(res.Signal[32]) {
		t.Fatalf("signal[32] must still be NaN")
	}
	if math.IsNaN(res.Signal[33]) {
		t.Fatalf("signal[33] must be defined")
	}
	for i := 33; i < n; i++ {
		want := res.Line[i] - res.Signal[i]
		if !almostEqual(res.Histogram[i], want, 1e-12) {
			t.Fatalf("histogram[%d]: got %v want %v", i, res.Histogram[i], want)
		}
	}
}

func TestBollingerConstantSeries(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = 50
	}
	b := Bollinger(prices, 20, 2)

	last := len(prices) - 1
	if b.Middle[last] != 50 || b.Upper[last] != 50 || b.Lower[last] != 50 {
		t.Fatalf("constant series: bands must collapse, got %v %v %v",
			b.Lower[last], b.Middle[last], b.Upper[last])
	}
	if pb := PercentB(b, prices, last); pb != 0.5 {
		t.Fatalf("zero-width band: %%B got %v want 0.5", pb)
	}
}

func TestBollingerEnvelopeOrdering(t *testing.T) {
	prices := []float64{10, 12, 11, 13, 15, 14, 16, 18, 17, 19,
		20, 22, 21, 23, 25, 24, 26, 28, 27, 29, 30}
	b := Bollinger(prices, 20, 2)
	last := len(prices) - 1
	if !(b.Lower[last] < b.Middle[last] && b.Middle[last] < b.Upper[last]) {
		t.Fatalf("band ordering broken: %v %v %v", b.Lower[last], b.Middle[last], b.Upper[last])
	}
}
