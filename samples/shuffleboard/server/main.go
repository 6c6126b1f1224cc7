package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-store-go/support"
	"github.com/weegigs/wee-store-go/we"
)

func exporter(ctx context.Context, cfg support.TracingConfig) (trace.SpanExporter, error) {
	switch cfg.Exporter {
	case support.ExporterConsole:
		return we.ConsoleExporter()
	case support.ExporterHoneycomb:
		return we.HoneycombExporter(ctx, cfg.HoneycombTeam, cfg.HoneycombDataset)
	case support.ExporterJaeger:
		return we.JaegerExporter(cfg.JaegerEndpoint)
	default:
		return nil, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := support.Load(os.Getenv("WEE_CONFIG"))
	if err != nil {
		return err
	}

	spans, err := exporter(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	if spans != nil {
		shutdown := we.InstallTracing(spans)
		defer func() {
			flush, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flush); err != nil {
				log.Warn().Err(err).Msg("failed to flush traces")
			}
		}()
	}

	handler, err := live(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{Addr: cfg.Address, Handler: handler}

	go func() {
		<-ctx.Done()
		stop, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(stop); err != nil {
			log.Warn().Err(err).Msg("failed to stop server cleanly")
		}
	}()

	cfg.Logger().Info().Str("address", cfg.Address).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
