// Package signal turns indicator snapshots into a classified trading
// recommendation with normalized bullish/bearish strengths.
package signal

// Weights assigns the scoring weight of each indicator category. The
// default table sums to 100; the aggregator normalizes against the sum
// of the categories actually defined at the evaluation index, so a
// partial table near the series start stays consistent.
type Weights struct {
	Trend      int
	Momentum   int
	Volatility int
	MACD       int
	ADX        int
	Patterns   int
}

// Config is the scoring policy: category weights, indicator periods and
// the fixed decision thresholds. The margin and strength constants are
// part of the engine contract and are not meant to be overridden.
type Config struct {
	Weights Weights

	// Indicator periods.
	SMAFast    int
	SMAMid     int
	SMASlow    int
	RSIPeriod  int
	MACDFast   int
	MACDSlow   int
	MACDSignal int
	BollPeriod int
	BollMult   float64
	ADXPeriod  int

	// Oscillator bands.
	RSIOversold   float64 // full bullish credit at or below
	RSILow        float64 // partial bullish credit at or below
	RSIHigh       float64 // partial bearish credit at or above
	RSIOverbought float64 // full bearish credit at or above

	// ADX trend-strength levels.
	ADXTrendLevel float64 // full credit above
	ADXWeakLevel  float64 // half credit above

	// Partial-credit multipliers.
	FullCredit   float64
	StrongCredit float64
	HalfCredit   float64
	WeakCredit   float64

	// Decision constants.
	LeadMargin       float64 // required bullish/bearish lead
	StrongThreshold  float64 // STRONG BUY/SELL above this strength
	HighConfidence   float64
	MediumConfidence float64
	MinCategories    int // defined categories required for any call
}

// DefaultConfig returns the canonical scoring policy.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Trend:      30,
			Momentum:   20,
			Volatility: 10,
			MACD:       10,
			ADX:        10,
			Patterns:   20,
		},
		SMAFast:    20,
		SMAMid:     50,
		SMASlow:    200,
		RSIPeriod:  14,
		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,
		BollPeriod: 20,
		BollMult:   2,
		ADXPeriod:  14,

		RSIOversold:   30,
		RSILow:        40,
		RSIHigh:       60,
		RSIOverbought: 70,

		ADXTrendLevel: 25,
		ADXWeakLevel:  20,

		FullCredit:   1.0,
		StrongCredit: 0.7,
		HalfCredit:   0.5,
		WeakCredit:   0.2,

		LeadMargin:       10,
		StrongThreshold:  70,
		HighConfidence:   70,
		MediumConfidence: 40,
		MinCategories:    3,
	}
}

// WithWeights returns a copy of the config with any positive weight
// overridden; zero values keep the defaults.
func (c Config) WithWeights(w Weights) Config {
	if w.Trend > 0 {
		c.Weights.Trend = w.Trend
	}
	if w.Momentum > 0 {
		c.Weights.Momentum = w.Momentum
	}
	if w.Volatility > 0 {
		c.Weights.Volatility = w.Volatility
	}
	if w.MACD > 0 {
		c.Weights.MACD = w.MACD
	}
	if w.ADX > 0 {
		c.Weights.ADX = w.ADX
	}
	if w.Patterns > 0 {
		c.Weights.Patterns = w.Patterns
	}
	return c
}
