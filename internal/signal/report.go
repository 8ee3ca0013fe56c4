package signal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dancaldera/investment-api/internal/domain/models"
	"github.com/dancaldera/investment-api/internal/indicator"
	"github.com/dancaldera/investment-api/pkg/util"
)

// renderReport builds the multi-line technical breakdown. Lines backed
// by an undefined indicator are omitted rather than printed as zero.
func renderReport(snap *Snapshot, res *models.SignalResult, cfg Config, i int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Technical analysis for %s (%s)\n", res.Symbol, res.Interval)
	fmt.Fprintf(&b, "Signal: %s | Confidence: %s\n", res.Classification, res.Confidence)
	fmt.Fprintf(&b, "Score: bullish %.1f / bearish %.1f\n", res.Bullish, res.Bearish)
	fmt.Fprintf(&b, "Price: %.2f (last bar %s)\n", res.Price, util.UnixDateDefault(snap.LastBar, "n/a"))

	if indicator.Defined(snap.SMAFast, i) {
		dir := "flat"
		if res.Price > snap.SMAFast[i] {
			dir = "bullish"
		} else if res.Price < snap.SMAFast[i] {
			dir = "bearish"
		}
		fmt.Fprintf(&b, "Trend: %s (price %.2f vs SMA%d %.2f)\n", dir, res.Price, cfg.SMAFast, snap.SMAFast[i])
	}

	if indicator.Defined(snap.RSI, i) {
		rsi := snap.RSI[i]
		note := ""
		switch {
		case rsi >= cfg.RSIOverbought:
			note = " (overbought)"
		case rsi <= cfg.RSIOversold:
			note = " (oversold)"
		}
		fmt.Fprintf(&b, "RSI(%d): %.1f%s\n", cfg.RSIPeriod, rsi, note)
	}

	if pb := indicator.PercentB(snap.Bands, snap.Closes, i); !math.IsNaN(pb) {
		fmt.Fprintf(&b, "Bollinger: %%B %.2f (lower %.2f / upper %.2f)\n",
			pb, snap.Bands.Lower[i], snap.Bands.Upper[i])
	}

	if len(res.Reasons) > 0 {
		fmt.Fprintf(&b, "Factors: %s\n", strings.Join(res.Reasons, "; "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Insufficient returns the classification result for a series shorter
// than the interval's configured minimum. It is a first-class result,
// not an error.
func Insufficient(symbol, interval string, points, required int) *models.SignalResult {
	return &models.SignalResult{
		Symbol:         symbol,
		Interval:       interval,
		Classification: models.ClassificationInsufficientData,
		Confidence:     models.ConfidenceLow,
		Report: fmt.Sprintf("Technical analysis for %s (%s)\nSignal: %s\nOnly %d data points available, %d required.",
			symbol, interval, models.ClassificationInsufficientData, points, required),
		GeneratedAt: time.Now().UTC(),
	}
}

// Failed converts a terminal fetch error into a rendered result so the
// engine never lets a failure escape as an error past its boundary.
func Failed(symbol, interval string, err error) *models.SignalResult {
	return &models.SignalResult{
		Symbol:         symbol,
		Interval:       interval,
		Classification: models.ClassificationFailed,
		Confidence:     models.ConfidenceLow,
		Report: fmt.Sprintf("Technical analysis for %s (%s)\nSignal: %s\nAnalysis failed: %v",
			symbol, interval, models.ClassificationFailed, err),
		GeneratedAt: time.Now().UTC(),
	}
}
