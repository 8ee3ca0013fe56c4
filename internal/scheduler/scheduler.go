// Package scheduler runs the cron-driven watchlist scan: every tick it
// analyzes the configured symbols and forwards each rendered report to
// the notification channel.
package scheduler

import (
	"context"
	"fmt"

	drepo "github.com/dancaldera/investment-api/internal/domain/repository"
	"github.com/dancaldera/investment-api/internal/domain/service"
	"github.com/dancaldera/investment-api/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Config selects the scan schedule and symbols.
type Config struct {
	Schedule       string // cron expression with seconds field
	Symbols        []string
	Interval       string
	OnlyActionable bool // suppress reports without a directional call
}

// Scheduler owns the cron runner and the watchlist job.
type Scheduler struct {
	cron     *cron.Cron
	analyzer service.Analyzer
	notifier drepo.Notifier
	metrics  drepo.Metrics
	log      *logger.Logger
	cfg      Config
}

// New creates a scheduler; call Start to register and begin the scan.
func New(cfg Config, analyzer service.Analyzer, notifier drepo.Notifier, metrics drepo.Metrics, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		analyzer: analyzer,
		notifier: notifier,
		metrics:  metrics,
		log:      log,
		cfg:      cfg,
	}
}

// Start registers the watchlist job and starts the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.scan); err != nil {
		return fmt.Errorf("register watchlist job: %w", err)
	}
	s.cron.Start()
	s.log.Info("scheduler started",
		logger.String("schedule", s.cfg.Schedule),
		logger.Strings("symbols", s.cfg.Symbols))
	return nil
}

// Stop halts the cron runner and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// RunNow triggers one scan immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() { s.scan() }

// scan analyzes every watchlist symbol sequentially. The shared rate
// limiter inside the fetcher spaces the provider calls; the scan just
// walks the list.
func (s *Scheduler) scan() {
	ctx := context.Background()
	for _, symbol := range s.cfg.Symbols {
		res := s.analyzer.Analyze(ctx, symbol, s.cfg.Interval)

		if s.cfg.OnlyActionable && !res.Actionable() {
			s.log.Debug("skipping non-actionable result",
				logger.String("symbol", res.Symbol),
				logger.String("classification", res.Classification))
			continue
		}

		if err := s.notifier.Send(ctx, res.Report); err != nil {
			s.metrics.RecordNotification(s.notifier.Name(), "error")
			s.log.Error("notification failed",
				logger.String("symbol", res.Symbol),
				logger.String("channel", s.notifier.Name()),
				logger.Error(err))
			continue
		}
		s.metrics.RecordNotification(s.notifier.Name(), "ok")
	}
}
