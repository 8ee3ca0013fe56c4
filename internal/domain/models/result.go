package models

import "time"

// Classification labels. The margin and strength thresholds that select
// them are fixed in the aggregator configuration.
const (
	ClassificationStrongBuy        = "STRONG BUY"
	ClassificationBuy              = "BUY"
	ClassificationStrongSell       = "STRONG SELL"
	ClassificationSell             = "SELL"
	ClassificationNoClearSignal    = "NO CLEAR SIGNAL"
	ClassificationMixedSignals     = "MIXED SIGNALS"
	ClassificationInsufficientData = "INSUFFICIENT DATA"
	ClassificationFailed           = "ANALYSIS FAILED"
)

// Confidence tiers.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// SignalResult is the engine output: normalized directional strengths, a
// confidence tier, a classification label, and the rendered report text.
// Constructed fresh per request, never persisted.
type SignalResult struct {
	Symbol         string
	Interval       string
	Price          float64
	Bullish        float64 // 0..100 after normalization
	Bearish        float64 // 0..100 after normalization
	Confidence     string
	Classification string
	Reasons        []string
	Report         string
	GeneratedAt    time.Time
}

// Actionable reports whether the classification is a directional call.
func (r *SignalResult) Actionable() bool {
	switch r.Classification {
	case ClassificationStrongBuy, ClassificationBuy, ClassificationSell, ClassificationStrongSell:
		return true
	default:
		return false
	}
}
