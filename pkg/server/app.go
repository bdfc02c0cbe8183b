package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/usecase"
	pkgch "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/clickhouse"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/config"
	xhttp "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/http"
	applogger "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	chClient   *pkgch.Client
	publisher  domrepo.SignalPublisher
	trainer    *usecase.Trainer
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	chClient *pkgch.Client,
	publisher domrepo.SignalPublisher,
	trainer *usecase.Trainer,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		chClient:  chClient,
		publisher: publisher,
		trainer:   trainer,
		handler:   handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if a.cfg.Model.BootstrapOnStart {
		// background so a cold start does not delay serving; predictions
		// fail soft as NOT_TRAINED until the bootstrap finishes
		go func() {
			if err := a.trainer.EnsureTrained(ctx); err != nil {
				a.log.Error("bootstrap training failed", applogger.Error(err))
			}
		}()
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("engine started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("publisher close error", applogger.Error(err))
		}
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.log.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.log.Info("engine stopped")
	return nil
}
