package di

import (
	"github.com/dancaldera/investment-api/internal/domain/repository"
	"github.com/dancaldera/investment-api/internal/domain/service"
	"github.com/dancaldera/investment-api/internal/handler/api"
	"github.com/dancaldera/investment-api/internal/scheduler"
	"github.com/dancaldera/investment-api/internal/service/marketdata"
	"github.com/dancaldera/investment-api/internal/service/notify"
	"github.com/dancaldera/investment-api/internal/service/ratelimit"
	"github.com/dancaldera/investment-api/internal/signal"
	"github.com/dancaldera/investment-api/internal/usecase"
	"github.com/dancaldera/investment-api/pkg/config"
	xhttp "github.com/dancaldera/investment-api/pkg/http"
	"github.com/dancaldera/investment-api/pkg/logger"
	"github.com/dancaldera/investment-api/pkg/metrics"
	"github.com/dancaldera/investment-api/pkg/server"
)

// ProvideLogger creates the application logger from configuration.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideLimiter creates the process-wide rate limiter shared by every
// outbound provider request.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.MinInterval, nil)
}

// ProvideMarketData creates the rate-limited provider client.
func ProvideMarketData(cfg *config.Config, limiter *ratelimit.Limiter, m repository.Metrics, log *logger.Logger) repository.MarketData {
	return marketdata.New(
		cfg.Provider.BaseURL,
		cfg.Provider.UserAgent,
		cfg.Provider.Timeout,
		limiter,
		log,
		marketdata.WithMetrics(m),
		marketdata.WithRetry(cfg.Fetch.MaxAttempts, cfg.Fetch.BackoffUnit),
	)
}

// ProvideSignalConfig builds the scoring policy, applying any weight
// overrides from configuration over the canonical defaults.
func ProvideSignalConfig(cfg *config.Config) signal.Config {
	w := cfg.Analysis.Weights
	return signal.DefaultConfig().WithWeights(signal.Weights{
		Trend:      w.Trend,
		Momentum:   w.Momentum,
		Volatility: w.Volatility,
		MACD:       w.MACD,
		ADX:        w.ADX,
		Patterns:   w.Patterns,
	})
}

// ProvideAnalyzer creates the analysis pipeline.
func ProvideAnalyzer(cfg *config.Config, market repository.MarketData, m repository.Metrics, log *logger.Logger, sigCfg signal.Config) service.Analyzer {
	return usecase.NewAnalyze(market, m, log, sigCfg, cfg.Analysis.MinPoints, cfg.Analysis.Jitter, nil)
}

// ProvideNotifier selects Telegram when a bot token is configured and
// falls back to the log-only notifier otherwise.
func ProvideNotifier(cfg *config.Config, log *logger.Logger) repository.Notifier {
	if cfg.Telegram.BotToken == "" {
		return notify.NewLogNotifier(log)
	}
	return notify.NewTelegram(
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		cfg.Telegram.Timeout,
		cfg.Telegram.Retries,
		log,
	)
}

// ProvideScheduler creates the watchlist scheduler.
func ProvideScheduler(cfg *config.Config, analyzer service.Analyzer, notifier repository.Notifier, m repository.Metrics, log *logger.Logger) *scheduler.Scheduler {
	return scheduler.New(scheduler.Config{
		Schedule:       cfg.Watchlist.Schedule,
		Symbols:        cfg.Watchlist.Symbols,
		Interval:       cfg.Watchlist.Interval,
		OnlyActionable: cfg.Watchlist.OnlyActionable,
	}, analyzer, notifier, m, log)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(log *logger.Logger, analyzer service.Analyzer) xhttp.Handler {
	return api.NewAnalysisHandler(log, analyzer)
}

// ProvideHTTPServer creates the HTTP server with middleware wired from
// configuration.
func ProvideHTTPServer(cfg *config.Config, handler xhttp.Handler) *xhttp.Server {
	return xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithAPIKey(cfg.Auth.APIKey),
		xhttp.WithMetrics(cfg.Metrics.Enabled, cfg.Metrics.Path),
	)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, log *logger.Logger, httpServer *xhttp.Server, sched *scheduler.Scheduler) *server.App {
	return server.New(cfg, log, httpServer, sched)
}
