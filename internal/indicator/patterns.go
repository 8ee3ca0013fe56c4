package indicator

import "math"

// Candlestick pattern names reported by DetectPatterns.
const (
	PatternBullishEngulfing = "bullish engulfing"
	PatternHammer           = "hammer"
	PatternMorningStar      = "morning star"
	PatternBearishEngulfing = "bearish engulfing"
	PatternShootingStar     = "shooting star"
	PatternEveningStar      = "evening star"
)

// largeBodyFraction is the share of a bar's range the body must cover
// for the bar to anchor a star pattern.
const largeBodyFraction = 0.6

// PatternScan reports the candlestick patterns that fired at one
// index. Both sides can fire on the same bar when independent
// patterns match.
type PatternScan struct {
	Bullish  bool
	Bearish  bool
	Patterns []string
}

// DetectPatterns evaluates the candlestick predicates at index i of
// the aligned OHLC series. Detection needs three prior bars of
// context; earlier indices report no patterns.
func DetectPatterns(open, high, low, close []float64, i int) PatternScan {
	var scan PatternScan
	if i < 3 || i >= len(close) {
		return scan
	}

	body := bodySize(open[i], close[i])
	firstBody := bodySize(open[i-2], close[i-2])
	firstMid := (open[i-2] + close[i-2]) / 2

	bullishEngulfing := isBullishBar(open[i], close[i]) &&
		isBearishBar(open[i-1], close[i-1]) &&
		open[i] <= close[i-1] &&
		close[i] >= open[i-1]

	hammer := lowerShadow(open[i], low[i], close[i]) > 2*body &&
		upperShadow(open[i], high[i], close[i]) < 0.5*body &&
		isBearishBar(open[i-1], close[i-1]) &&
		isBearishBar(open[i-2], close[i-2])

	morningStar := isBearishBar(open[i-2], close[i-2]) &&
		isLargeBody(open[i-2], high[i-2], low[i-2], close[i-2]) &&
		bodySize(open[i-1], close[i-1]) < 0.3*firstBody &&
		isBullishBar(open[i], close[i]) &&
		close[i] > firstMid

	bearishEngulfing := isBearishBar(open[i], close[i]) &&
		isBullishBar(open[i-1], close[i-1]) &&
		open[i] >= close[i-1] &&
		close[i] <= open[i-1]

	shootingStar := upperShadow(open[i], high[i], close[i]) > 2*body &&
		lowerShadow(open[i], low[i], close[i]) < 0.5*body &&
		isBullishBar(open[i-1], close[i-1]) &&
		isBullishBar(open[i-2], close[i-2])

	eveningStar := isBullishBar(open[i-2], close[i-2]) &&
		isLargeBody(open[i-2], high[i-2], low[i-2], close[i-2]) &&
		bodySize(open[i-1], close[i-1]) < 0.3*firstBody &&
		isBearishBar(open[i], close[i]) &&
		close[i] < firstMid

	if bullishEngulfing {
		scan.Bullish = true
		scan.Patterns = append(scan.Patterns, PatternBullishEngulfing)
	}
	if hammer {
		scan.Bullish = true
		scan.Patterns = append(scan.Patterns, PatternHammer)
	}
	if morningStar {
		scan.Bullish = true
		scan.Patterns = append(scan.Patterns, PatternMorningStar)
	}
	if bearishEngulfing {
		scan.Bearish = true
		scan.Patterns = append(scan.Patterns, PatternBearishEngulfing)
	}
	if shootingStar {
		scan.Bearish = true
		scan.Patterns = append(scan.Patterns, PatternShootingStar)
	}
	if eveningStar {
		scan.Bearish = true
		scan.Patterns = append(scan.Patterns, PatternEveningStar)
	}
	return scan
}

func bodySize(open, close float64) float64 {
	return math.Abs(close - open)
}

func upperShadow(open, high, close float64) float64 {
	return high - math.Max(open, close)
}

func lowerShadow(open, low, close float64) float64 {
	return math.Min(open, close) - low
}

func isBullishBar(open, close float64) bool {
	return close > open
}

func isBearishBar(open, close float64) bool {
	return close < open
}

func isLargeBody(open, high, low, close float64) bool {
	r := high - low
	return r > 0 && bodySize(open, close) > largeBodyFraction*r
}
