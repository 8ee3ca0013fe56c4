package signal

import (
	"github.com/dancaldera/investment-api/internal/domain/models"
	"github.com/dancaldera/investment-api/internal/indicator"
)

// Snapshot carries the price series and every indicator series the
// aggregator evaluates. All slices are index-aligned with Closes.
type Snapshot struct {
	Symbol   string
	Interval string
	LastBar  int64 // unix seconds of the latest bar, 0 when unknown

	Closes []float64
	OHLC   *models.OHLCSeries

	SMAFast []float64
	SMAMid  []float64
	SMASlow []float64
	RSI     []float64
	MACD    indicator.MACDResult
	Bands   indicator.Bands
	Dir     indicator.DirectionalResult
	Scan    indicator.PatternScan
}

// Compute runs the full indicator library over a series and its
// synthetic OHLC surrogate. Pattern detection is evaluated at the
// latest bar only, matching the aggregation index.
func Compute(series *models.PriceSeries, ohlc *models.OHLCSeries, cfg Config) *Snapshot {
	closes := series.Closes
	return &Snapshot{
		Symbol:   series.Symbol,
		Interval: series.Interval,
		LastBar:  series.LastTimestamp(),
		Closes:   closes,
		OHLC:     ohlc,
		SMAFast:  indicator.SMA(closes, cfg.SMAFast),
		SMAMid:   indicator.SMA(closes, cfg.SMAMid),
		SMASlow:  indicator.SMA(closes, cfg.SMASlow),
		RSI:      indicator.RSI(closes, cfg.RSIPeriod),
		MACD:     indicator.MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal),
		Bands:    indicator.Bollinger(closes, cfg.BollPeriod, cfg.BollMult),
		Dir:      indicator.ADX(ohlc.High, ohlc.Low, ohlc.Close, cfg.ADXPeriod),
		Scan:     indicator.DetectPatterns(ohlc.Open, ohlc.High, ohlc.Low, ohlc.Close, len(closes)-1),
	}
}
