package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dancaldera/investment-api/internal/scheduler"
	"github.com/dancaldera/investment-api/pkg/config"
	xhttp "github.com/dancaldera/investment-api/pkg/http"
	applogger "github.com/dancaldera/investment-api/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP API and the
// optional watchlist scheduler, with graceful shutdown on signal.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	scheduler  *scheduler.Scheduler
}

// New creates an App. The scheduler may be nil when the watchlist is
// disabled.
func New(cfg *config.Config, log *applogger.Logger, httpServer *xhttp.Server, sched *scheduler.Scheduler) *App {
	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: httpServer,
		scheduler:  sched,
	}
}

// Run starts the services and blocks until interrupted.
func (a *App) Run() error {
	if a.scheduler != nil && a.cfg.Watchlist.Enabled {
		if err := a.scheduler.Start(); err != nil {
			return err
		}
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("application started",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown stops the scheduler first so no scan starts mid-teardown,
// then drains the HTTP server.
func (a *App) shutdown() error {
	if a.scheduler != nil && a.cfg.Watchlist.Enabled {
		a.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
