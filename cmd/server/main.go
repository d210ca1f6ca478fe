package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Simplici0/auditcost/internal/config"
	"github.com/Simplici0/auditcost/internal/costmodel"
	"github.com/Simplici0/auditcost/internal/db"
	"github.com/Simplici0/auditcost/internal/estimator"
	"github.com/Simplici0/auditcost/internal/metrics"
	"github.com/Simplici0/auditcost/internal/migrations"
	"github.com/Simplici0/auditcost/internal/pdfexport"
	"github.com/Simplici0/auditcost/internal/seed"
	"github.com/Simplici0/auditcost/internal/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		return err
	}

	stats, err := seed.Run(ctx, database, seed.Config{Scenario: costmodel.Defaults()})
	if err != nil {
		return err
	}
	logger.Debug("seed complete", "inserts", stats.Inserts)

	m := metrics.New()
	est := estimator.New(store.New(database), m)
	current, err := est.Load(ctx)
	if err != nil {
		return err
	}
	logger.Info("input state restored", "snapshot", current.ID, "adjusted_total", current.Breakdown.AdjustedTotal)

	srv, err := newServer(est, pdfexport.NewRenderer(pdfexport.Config{
		ChromiumPath: cfg.ChromiumPath,
		Timeout:      cfg.PDFTimeout,
	}), m, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr, "env", cfg.Env)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}
