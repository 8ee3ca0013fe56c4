package indicator

import "testing"

// bar is a compact OHLC literal for pattern tests.
type bar struct{ o, h, l, c float64 }

func split(bars []bar) (open, high, low, close []float64) {
	for _, b := range bars {
		open = append(open, b.o)
		high = append(high, b.h)
		low = append(low, b.l)
		close = append(close, b.c)
	}
	return
}

func scanLast(bars []bar) PatternScan {
	o, h, l, c := split(bars)
	return DetectPatterns(o, h, l, c, len(bars)-1)
}

func hasPattern(scan PatternScan, name string) bool {
	for _, p := range scan.Patterns {
		if p == name {
			return true
		}
	}
	return false
}

func TestDetectPatternsNeedsThreePriorBars(t *testing.T) {
	bars := []bar{
		{10, 11, 9, 9.5},
		{9.5, 10, 9, 9.2},
		{9.2, 10.5, 9.1, 10.4},
	}
	if scan := scanLast(bars); scan.Bullish || scan.Bearish {
		t.Fatalf("three bars lack context, got %+v", scan)
	}
}

func TestBullishEngulfing(t *testing.T) {
	bars := []bar{
		{10, 10.5, 9.5, 10.2},
		{10.2, 10.4, 9.8, 10.0},
		{10.0, 10.1, 9.4, 9.5},  // bearish
		{9.4, 10.6, 9.3, 10.5},  // engulfs the previous body
	}
	scan := scanLast(bars)
	if !scan.Bullish || !hasPattern(scan, PatternBullishEngulfing) {
		t.Fatalf("expected bullish engulfing, got %+v", scan)
	}
}

func TestBearishEngulfing(t *testing.T) {
	bars := []bar{
		{10, 10.5, 9.5, 10.2},
		{10.2, 10.6, 10.0, 10.4},
		{10.4, 11.0, 10.3, 10.9}, // bullish
		{11.0, 11.1, 10.2, 10.3}, // engulfs the previous body
	}
	scan := scanLast(bars)
	if !scan.Bearish || !hasPattern(scan, PatternBearishEngulfing) {
		t.Fatalf("expected bearish engulfing, got %+v", scan)
	}
}

func TestHammerAfterTwoBearishBars(t *testing.T) {
	bars := []bar{
		{11, 11.2, 10.8, 11.0},
		{11.0, 11.1, 10.4, 10.5}, // bearish
		{10.5, 10.6, 10.0, 10.1}, // bearish
		{10.1, 10.22, 9.3, 10.2}, // long lower shadow, tiny upper
	}
	scan := scanLast(bars)
	if !scan.Bullish || !hasPattern(scan, PatternHammer) {
		t.Fatalf("expected hammer, got %+v", scan)
	}
}

func TestShootingStarAfterTwoBullishBars(t *testing.T) {
	bars := []bar{
		{9.5, 9.8, 9.4, 9.7},
		{9.7, 10.1, 9.6, 10.0},    // bullish
		{10.0, 10.5, 9.9, 10.4},   // bullish
		{10.4, 11.3, 10.38, 10.3}, // long upper shadow, tiny lower
	}
	scan := scanLast(bars)
	if !scan.Bearish || !hasPattern(scan, PatternShootingStar) {
		t.Fatalf("expected shooting star, got %+v", scan)
	}
}

func TestMorningStar(t *testing.T) {
	bars := []bar{
		{11, 11.2, 10.8, 11.0},
		{11.0, 11.05, 9.95, 10.0}, // large bearish body
		{10.0, 10.1, 9.85, 9.9},   // small middle body
		{9.9, 10.8, 9.85, 10.7},   // bullish close above the first midpoint
	}
	scan := scanLast(bars)
	if !scan.Bullish || !hasPattern(scan, PatternMorningStar) {
		t.Fatalf("expected morning star, got %+v", scan)
	}
}

func TestEveningStar(t *testing.T) {
	bars := []bar{
		{9.5, 9.7, 9.4, 9.6},
		{9.6, 10.65, 9.55, 10.6},  // large bullish body
		{10.6, 10.75, 10.5, 10.7}, // small middle body
		{10.7, 10.75, 9.7, 9.8},   // bearish close below the first midpoint
	}
	scan := scanLast(bars)
	if !scan.Bearish || !hasPattern(scan, PatternEveningStar) {
		t.Fatalf("expected evening star, got %+v", scan)
	}
}

func TestNoPatternOnQuietBars(t *testing.T) {
	bars := []bar{
		{10, 10.2, 9.9, 10.1},
		{10.1, 10.3, 10.0, 10.2},
		{10.2, 10.3, 10.1, 10.15},
		{10.18, 10.3, 10.1, 10.2},
	}
	scan := scanLast(bars)
	if scan.Bullish || scan.Bearish {
		t.Fatalf("quiet bars should not flag patterns, got %+v", scan)
	}
}
