// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hightidestudios/website/internal/availability"
	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
	"github.com/hightidestudios/website/internal/db"
	"github.com/hightidestudios/website/internal/email"
	"github.com/hightidestudios/website/internal/observability"
	"github.com/hightidestudios/website/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

const defaultCleanupSchedule = "*/15 * * * *"

func setupLogger(environment string, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	configPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment, cfg.Features.EnableDebug)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load package catalog")
	}

	blocked, err := availability.NewStore(context.Background(), database.Queries)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load blocked dates")
	}

	var relay booking.Relay
	if cfg.EmailEnabled() {
		sesRelay, err := email.NewSESRelay(
			cfg.Email.AccessKeyID,
			cfg.Email.SecretAccessKey,
			cfg.Email.Region,
			cfg.Email.Sender,
			cfg.Email.Recipient,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create SES relay")
		}
		relay = sesRelay
	} else {
		log.Warn().Msg("Email relay not configured; booking submissions will fail with the fallback contact")
		relay = email.DisabledRelay{}
	}

	ttl, err := cfg.Booking.TTL()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid booking session TTL")
	}
	sessions := booking.NewStore(booking.Config{
		Catalog:         cat,
		Blocked:         blocked,
		BusinessName:    cfg.Studio.BusinessName,
		FallbackContact: cfg.Studio.ContactPhone,
	}, ttl)

	sched, err := scheduler.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}
	registerJobs(sched, cfg, sessions, blocked)

	server := newServer(cfg, cat, sessions, relay, database, blocked)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sched.Start()
		log.Info().Int("port", cfg.App.Port).Str("environment", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := sched.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown error")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}

func registerJobs(sched *scheduler.Service, cfg *config.Config, sessions *booking.Store, blocked *availability.Store) {
	schedule := cfg.Booking.CleanupSchedule
	if schedule == "" {
		schedule = defaultCleanupSchedule
	}

	if _, err := sched.AddJob("booking-session-prune", schedule, func() {
		sessions.Prune()
		observability.LiveBookingSessions.Set(float64(sessions.Len()))
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to register session prune job")
	}

	if _, err := sched.AddJob("blocked-dates-prune", "0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := blocked.PrunePast(ctx, booking.DayOf(time.Now())); err != nil {
			log.Error().Err(err).Msg("Failed to prune past blocked dates")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to register blocked-dates prune job")
	}
}
