package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/diegoclair/slack-alarm-bot/internal/config"
	"github.com/diegoclair/slack-alarm-bot/internal/database"
	"github.com/diegoclair/slack-alarm-bot/internal/domain"
	"github.com/diegoclair/slack-alarm-bot/internal/domain/service"
	"github.com/diegoclair/slack-alarm-bot/internal/handlers"
	"github.com/diegoclair/slack-alarm-bot/internal/logger"
	"github.com/diegoclair/slack-alarm-bot/internal/notifier"
	"github.com/diegoclair/slack-alarm-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Only used until the configured logger exists
	boot := logger.New("info", "console", os.Stderr)

	if err := godotenv.Load(); err != nil {
		boot.Warn().Msg(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
	log.Info().Msg("bot stopped")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.Database.Path, cfg.Database.BusyTimeout)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info().Str("path", cfg.Database.Path).Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}

	slackClient := slack.New(cfg.Slack.BotToken)

	auth, err := slackClient.AuthTestContext(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("team", auth.Team).Str("bot_user", auth.User).Msg("connected to Slack")

	services := service.New(
		database.NewInstance(db),
		notifier.NewSlack(slackClient, cfg.Scheduler.NotifyRate, log),
		domain.SystemClock{},
		loc,
		log,
		service.Options{
			TickInterval:  cfg.Scheduler.TickInterval,
			NotifyTimeout: cfg.Scheduler.NotifyTimeout,
		},
	)

	handler := handlers.New(slackClient, services.Alarm, cfg.Slack.SigningSecret, log)
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handlers.NewRouter(handler, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTP.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		services.Scheduler.Start()
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("shutting down")
		serverErr := server.Shutdown(shutdownCtx)
		schedErr := services.Scheduler.Stop(shutdownCtx)
		return errors.Join(serverErr, schedErr)
	})

	return g.Wait()
}
