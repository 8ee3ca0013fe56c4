package signal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dancaldera/investment-api/internal/domain/models"
	"github.com/dancaldera/investment-api/internal/indicator"
)

// tally accumulates weighted directional evidence. total is the sum of
// the weights of every category that was defined at the evaluation
// index, whether or not it allocated anything.
type tally struct {
	total   float64
	bullish float64
	bearish float64
	defined int
	reasons []string
}

func (t *tally) category(weight int) {
	t.total += float64(weight)
	t.defined++
}

func (t *tally) bull(weight int, credit float64, reason string) {
	t.bullish += float64(weight) * credit
	t.reasons = append(t.reasons, reason)
}

func (t *tally) bear(weight int, credit float64, reason string) {
	t.bearish += float64(weight) * credit
	t.reasons = append(t.reasons, reason)
}

// Aggregate evaluates the snapshot at its latest index and produces the
// classified result. Undefined categories are excluded from both the
// score and the normalization denominator.
func Aggregate(snap *Snapshot, cfg Config) *models.SignalResult {
	i := len(snap.Closes) - 1
	price := snap.Closes[i]

	var t tally
	scoreTrend(snap, cfg, i, &t)
	scoreMomentum(snap, cfg, i, &t)
	scoreVolatility(snap, cfg, i, &t)
	scoreMACD(snap, cfg, i, &t)
	scoreADX(snap, cfg, i, &t)
	scorePatterns(snap, cfg, &t)

	var bullish, bearish float64
	if t.total > 0 {
		bullish = t.bullish / t.total * 100
		bearish = t.bearish / t.total * 100
	}

	trendBull, trendBear := trendDirection(snap, i)
	rsi := math.NaN()
	if indicator.Defined(snap.RSI, i) {
		rsi = snap.RSI[i]
	}

	classification := classify(bullish, bearish, t.defined, trendBull, trendBear, rsi, cfg)

	res := &models.SignalResult{
		Symbol:         snap.Symbol,
		Interval:       snap.Interval,
		Price:          price,
		Bullish:        bullish,
		Bearish:        bearish,
		Confidence:     confidence(bullish, bearish, cfg),
		Classification: classification,
		Reasons:        t.reasons,
		GeneratedAt:    time.Now().UTC(),
	}
	res.Report = renderReport(snap, res, cfg, i)
	return res
}

// trendDirection reports the price position against the fast average.
// Both false when the average is not yet defined.
func trendDirection(snap *Snapshot, i int) (bull, bear bool) {
	if !indicator.Defined(snap.SMAFast, i) {
		return false, false
	}
	price := snap.Closes[i]
	return price > snap.SMAFast[i], price < snap.SMAFast[i]
}

// classify applies the confirmation guard and the fixed decision
// constants: a side must lead by more than LeadMargin and be backed by
// a corroborating primary indicator before any directional call.
func classify(bullish, bearish float64, defined int, trendBull, trendBear bool, rsi float64, cfg Config) string {
	if defined < cfg.MinCategories {
		return models.ClassificationInsufficientData
	}

	switch {
	case bullish > bearish+cfg.LeadMargin:
		if trendBull || (!math.IsNaN(rsi) && rsi < 50) {
			if bullish > cfg.StrongThreshold {
				return models.ClassificationStrongBuy
			}
			return models.ClassificationBuy
		}
		return models.ClassificationMixedSignals
	case bearish > bullish+cfg.LeadMargin:
		if trendBear || (!math.IsNaN(rsi) && rsi > 50) {
			if bearish > cfg.StrongThreshold {
				return models.ClassificationStrongSell
			}
			return models.ClassificationSell
		}
		return models.ClassificationMixedSignals
	default:
		return models.ClassificationNoClearSignal
	}
}

func confidence(bullish, bearish float64, cfg Config) string {
	switch m := math.Max(bullish, bearish); {
	case m >= cfg.HighConfidence:
		return models.ConfidenceHigh
	case m >= cfg.MediumConfidence:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// scoreTrend weighs price against the fast and mid averages. A fresh
// fast/mid cross takes full credit; full alignment of price and both
// averages does too; price against the fast average alone earns the
// strong partial credit.
func scoreTrend(snap *Snapshot, cfg Config, i int, t *tally) {
	if !indicator.Defined(snap.SMAFast, i) {
		return
	}
	w := cfg.Weights.Trend
	t.category(w)
	price := snap.Closes[i]
	fast := snap.SMAFast[i]

	midDefined := indicator.Defined(snap.SMAMid, i)
	if midDefined && indicator.Defined(snap.SMAFast, i-1) && indicator.Defined(snap.SMAMid, i-1) {
		prevDiff := snap.SMAFast[i-1] - snap.SMAMid[i-1]
		currDiff := fast - snap.SMAMid[i]
		if prevDiff <= 0 && currDiff > 0 {
			t.bull(w, cfg.FullCredit, fmt.Sprintf("SMA%d crossed above SMA%d", cfg.SMAFast, cfg.SMAMid))
			return
		}
		if prevDiff >= 0 && currDiff < 0 {
			t.bear(w, cfg.FullCredit, fmt.Sprintf("SMA%d crossed below SMA%d", cfg.SMAFast, cfg.SMAMid))
			return
		}
	}

	if midDefined {
		mid := snap.SMAMid[i]
		if price > fast && fast > mid {
			t.bull(w, cfg.FullCredit, "price above aligned moving averages")
			return
		}
		if price < fast && fast < mid {
			t.bear(w, cfg.FullCredit, "price below aligned moving averages")
			return
		}
	}

	if price > fast {
		t.bull(w, cfg.StrongCredit, fmt.Sprintf("price above SMA%d", cfg.SMAFast))
	} else if price < fast {
		t.bear(w, cfg.StrongCredit, fmt.Sprintf("price below SMA%d", cfg.SMAFast))
	}
}

func scoreMomentum(snap *Snapshot, cfg Config, i int, t *tally) {
	if !indicator.Defined(snap.RSI, i) {
		return
	}
	w := cfg.Weights.Momentum
	t.category(w)
	rsi := snap.RSI[i]

	switch {
	case rsi <= cfg.RSIOversold:
		t.bull(w, cfg.FullCredit, fmt.Sprintf("RSI oversold at %.1f", rsi))
	case rsi <= cfg.RSILow:
		t.bull(w, cfg.StrongCredit, fmt.Sprintf("RSI low at %.1f", rsi))
	case rsi >= cfg.RSIOverbought:
		t.bear(w, cfg.FullCredit, fmt.Sprintf("RSI overbought at %.1f", rsi))
	case rsi >= cfg.RSIHigh:
		t.bear(w, cfg.StrongCredit, fmt.Sprintf("RSI high at %.1f", rsi))
	case rsi < 50:
		t.bull(w, cfg.WeakCredit, fmt.Sprintf("RSI below midline at %.1f", rsi))
	case rsi > 50:
		t.bear(w, cfg.WeakCredit, fmt.Sprintf("RSI above midline at %.1f", rsi))
	}
}

func scoreVolatility(snap *Snapshot, cfg Config, i int, t *tally) {
	pb := indicator.PercentB(snap.Bands, snap.Closes, i)
	if math.IsNaN(pb) {
		return
	}
	w := cfg.Weights.Volatility
	t.category(w)

	switch {
	case pb <= 0:
		t.bull(w, cfg.FullCredit, "price at or below lower Bollinger band")
	case pb <= 0.2:
		t.bull(w, cfg.StrongCredit, "price near lower Bollinger band")
	case pb >= 1:
		t.bear(w, cfg.FullCredit, "price at or above upper Bollinger band")
	case pb >= 0.8:
		t.bear(w, cfg.StrongCredit, "price near upper Bollinger band")
	}
}

func scoreMACD(snap *Snapshot, cfg Config, i int, t *tally) {
	if !indicator.Defined(snap.MACD.Line, i) || !indicator.Defined(snap.MACD.Signal, i) {
		return
	}
	w := cfg.Weights.MACD
	t.category(w)
	line, sig := snap.MACD.Line[i], snap.MACD.Signal[i]

	if indicator.Defined(snap.MACD.Line, i-1) && indicator.Defined(snap.MACD.Signal, i-1) {
		prev := snap.MACD.Line[i-1] - snap.MACD.Signal[i-1]
		curr := line - sig
		if prev <= 0 && curr > 0 {
			t.bull(w, cfg.FullCredit, "MACD crossed above signal line")
			return
		}
		if prev >= 0 && curr < 0 {
			t.bear(w, cfg.FullCredit, "MACD crossed below signal line")
			return
		}
	}

	hist := snap.MACD.Histogram[i]
	if line > sig && hist > 0 {
		t.bull(w, cfg.StrongCredit, "MACD above signal line")
	} else if line < sig && hist < 0 {
		t.bear(w, cfg.StrongCredit, "MACD below signal line")
	}
}

func scoreADX(snap *Snapshot, cfg Config, i int, t *tally) {
	if !indicator.Defined(snap.Dir.ADX, i) {
		return
	}
	w := cfg.Weights.ADX
	t.category(w)
	adx := snap.Dir.ADX[i]
	plus, minus := snap.Dir.PlusDI[i], snap.Dir.MinusDI[i]

	credit := 0.0
	switch {
	case adx > cfg.ADXTrendLevel:
		credit = cfg.FullCredit
	case adx > cfg.ADXWeakLevel:
		credit = cfg.HalfCredit
	default:
		return
	}

	if plus > minus {
		t.bull(w, credit, fmt.Sprintf("ADX %.1f confirms uptrend", adx))
	} else if minus > plus {
		t.bear(w, credit, fmt.Sprintf("ADX %.1f confirms downtrend", adx))
	}
}

// scorePatterns allocates full weight to each side with a detected
// candlestick pattern; both sides may fire on the same bar.
func scorePatterns(snap *Snapshot, cfg Config, t *tally) {
	if len(snap.Closes) < 4 {
		return
	}
	w := cfg.Weights.Patterns
	t.category(w)

	if snap.Scan.Bullish {
		t.bull(w, cfg.FullCredit, "bullish pattern: "+strings.Join(bullishNames(snap.Scan), ", "))
	}
	if snap.Scan.Bearish {
		t.bear(w, cfg.FullCredit, "bearish pattern: "+strings.Join(bearishNames(snap.Scan), ", "))
	}
}

func bullishNames(scan indicator.PatternScan) []string {
	return filterPatterns(scan.Patterns, true)
}

func bearishNames(scan indicator.PatternScan) []string {
	return filterPatterns(scan.Patterns, false)
}

func filterPatterns(names []string, bullish bool) []string {
	bullSet := map[string]bool{
		indicator.PatternBullishEngulfing: true,
		indicator.PatternHammer:           true,
		indicator.PatternMorningStar:      true,
	}
	var out []string
	for _, n := range names {
		if bullSet[n] == bullish {
			out = append(out, n)
		}
	}
	return out
}
