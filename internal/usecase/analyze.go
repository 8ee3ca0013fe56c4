package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/dancaldera/investment-api/internal/domain/models"
	drepo "github.com/dancaldera/investment-api/internal/domain/repository"
	"github.com/dancaldera/investment-api/internal/signal"
	"github.com/dancaldera/investment-api/pkg/logger"
)

// Analyze is the signal-engine pipeline: fetch, synthesize OHLC, run
// the indicator library and aggregate. It implements service.Analyzer
// and never lets a fetch failure escape as an error; every path yields
// a rendered result.
type Analyze struct {
	market  drepo.MarketData
	metrics drepo.Metrics
	log     *logger.Logger
	cfg     signal.Config

	minPoints map[string]int
	jitter    float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewAnalyze builds the pipeline. minPoints maps canonical intervals to
// the minimum accepted series length; rnd is the jitter source for the
// OHLC surrogate (seed it in tests for reproducibility; nil seeds from
// the wall clock).
func NewAnalyze(
	market drepo.MarketData,
	metrics drepo.Metrics,
	log *logger.Logger,
	cfg signal.Config,
	minPoints map[string]int,
	jitter float64,
	rnd *rand.Rand,
) *Analyze {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Analyze{
		market:    market,
		metrics:   metrics,
		log:       log,
		cfg:       cfg,
		minPoints: minPoints,
		jitter:    jitter,
		rnd:       rnd,
	}
}

// Analyze produces the signal result for one symbol and interval.
func (a *Analyze) Analyze(ctx context.Context, symbol, interval string) *models.SignalResult {
	start := time.Now()
	iv := drepo.NormalizeInterval(interval)

	series, err := a.market.Fetch(ctx, symbol, iv)
	if err != nil {
		a.log.Error("fetch failed",
			logger.String("symbol", symbol),
			logger.String("interval", string(iv)),
			logger.Error(err))
		res := signal.Failed(symbol, string(iv), err)
		a.finish(res, start)
		return res
	}

	if min := a.minPointsFor(string(iv)); series.Len() < min {
		a.log.Warn("series too short",
			logger.String("symbol", series.Symbol),
			logger.Int("points", series.Len()),
			logger.Int("required", min))
		res := signal.Insufficient(series.Symbol, string(iv), series.Len(), min)
		a.finish(res, start)
		return res
	}

	ohlc := a.synthesize(series.Closes)
	snap := signal.Compute(series, ohlc, a.cfg)
	res := signal.Aggregate(snap, a.cfg)

	a.metrics.RecordLastPrice(res.Symbol, res.Price)
	a.log.Info("analysis complete",
		logger.String("symbol", res.Symbol),
		logger.String("classification", res.Classification),
		logger.Float64("bullish", res.Bullish),
		logger.Float64("bearish", res.Bearish))
	a.finish(res, start)
	return res
}

// synthesize draws jitter under the lock; rand.Rand is not safe for
// concurrent use and analyses may run in parallel.
func (a *Analyze) synthesize(closes []float64) *models.OHLCSeries {
	a.mu.Lock()
	defer a.mu.Unlock()
	return SynthesizeOHLC(closes, a.jitter, a.rnd)
}

func (a *Analyze) minPointsFor(interval string) int {
	if n, ok := a.minPoints[interval]; ok && n > 0 {
		return n
	}
	return 10
}

func (a *Analyze) finish(res *models.SignalResult, start time.Time) {
	a.metrics.RecordAnalysis(res.Classification)
	a.metrics.RecordLatency("analyze", time.Since(start).Seconds())
}
