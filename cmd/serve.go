package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/config"
	"github.com/jbrasil/fishplants/internal/county"
	"github.com/jbrasil/fishplants/internal/geocode"
	"github.com/jbrasil/fishplants/internal/logging"
	"github.com/jbrasil/fishplants/internal/observability"
	"github.com/jbrasil/fishplants/internal/scraper"
	"github.com/jbrasil/fishplants/internal/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	clock := clockwork.NewRealClock()

	// The county list and the schedule come from the same page but with
	// different timeouts, so each gets its own fetcher.
	countyFetcher := scraper.NewFetcher(cfg.Source.UserAgent, cfg.CountyTimeout(), logger.Named("fetch"))
	scheduleFetcher := scraper.NewFetcher(cfg.Source.UserAgent, cfg.ScheduleTimeout(), logger.Named("fetch"))

	countySource := scraper.New(countyFetcher, cfg.Source.URL, clock, metrics, logger.Named("scraper"))
	schedules := scraper.New(scheduleFetcher, cfg.Source.URL, clock, metrics, logger.Named("scraper"))
	counties := county.NewProvider(countySource, cfg.CountyTTL(), clock, metrics, logger.Named("county"))

	geocodeClient := geocode.NewClient(
		cfg.Geocode.URL,
		cfg.Geocode.UserAgent,
		cfg.GeocodeTimeout(),
		cfg.Geocode.RequestsPerSecond,
		logger.Named("geocode"),
	)
	geocoder := geocode.NewCached(geocodeClient, metrics, logger.Named("geocode"))

	server := web.NewServer(counties, schedules, geocoder, metrics, registry, logger.Named("web"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
