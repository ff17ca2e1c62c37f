package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/config"
	"github.com/mcdev12/primus/go/internal/selection"
	"github.com/mcdev12/primus/go/internal/selection/gateway"
	"github.com/mcdev12/primus/go/internal/selection/publisher"
	"github.com/mcdev12/primus/go/internal/token"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	palette, err := config.LoadPalette(cfg.PaletteFile)
	if err != nil {
		log.Fatal().Err(err).Str("palette_file", cfg.PaletteFile).Msg("failed to load palette")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventPublisher, closePublisher := setupPublisher(ctx, cfg.NATS)
	defer closePublisher()
	dispatcher := publisher.NewDispatcher(eventPublisher, 0)

	coordinator, err := selection.New(palette, clockwork.NewRealClock(), selection.Options{
		Geometry:          token.DefaultGeometry(cfg.ScreenDensity),
		PresentationCycle: cfg.PresentationCycle,
		ResetDelay:        cfg.ResetDelay,
		Rand:              rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		Notifier:          dispatcher,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create coordinator")
	}

	gatewayService := gateway.NewService(gateway.DefaultConnectionConfig(), coordinator)
	server := setupServer(cfg.Addr, gatewayService)

	log.Info().
		Str("addr", cfg.Addr).
		Dur("tick_interval", cfg.TickInterval).
		Int("palette_size", len(palette)).
		Bool("nats_enabled", cfg.NATS.Enabled()).
		Msg("starting primus")

	dispatched := make(chan struct{})
	go func() {
		dispatcher.Start(ctx)
		close(dispatched)
	}()
	go gatewayService.Start(ctx)
	go func() {
		if err := coordinator.Run(ctx, cfg.TickInterval, gatewayService.Broadcast); err != nil {
			log.Error().Err(err).Msg("coordinator stopped")
		}
	}()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	cancel()
	<-dispatched

	log.Info().Msg("primus stopped")
}

func setupPublisher(ctx context.Context, cfg config.NATSConfig) (publisher.EventPublisher, func()) {
	if !cfg.Enabled() {
		log.Info().Msg("PRIMUS_NATS_URL not set, logging events only")
		return publisher.LogPublisher{}, func() {}
	}

	jsCfg := publisher.DefaultJetStreamConfig()
	jsCfg.URL = cfg.URL
	jsCfg.StreamName = cfg.Stream
	jsCfg.SubjectPrefix = cfg.SubjectPrefix

	js, err := publisher.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		log.Error().Err(err).Str("nats_url", cfg.URL).Msg("failed to connect to NATS, logging events only")
		return publisher.LogPublisher{}, func() {}
	}
	return js, func() {
		if err := js.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close NATS publisher")
		}
	}
}
