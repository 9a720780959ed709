package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jotbot/internal/bot"
	"jotbot/internal/config"
	"jotbot/internal/db"
	httpx "jotbot/internal/http"
	"jotbot/internal/notify"
	"jotbot/internal/store"
	"jotbot/internal/timeparse"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		logger.Fatal().Err(err).Msg("migrating database")
	}

	notes := &store.Notes{DB: gdb}
	reminders := &store.Reminders{DB: gdb}

	var notifier bot.Notifier
	if cfg.TwilioAccountSID != "" {
		notifier = &notify.TwilioClient{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			From:       cfg.TwilioFrom,
			BaseURL:    cfg.TwilioAPIURL,
		}
	} else {
		logger.Warn().Msg("no Twilio credentials, reminder deliveries go to the log")
		notifier = &notify.LogNotifier{Logger: logger}
	}

	exec := &bot.Executor{
		Notes:     notes,
		Reminders: reminders,
		Resolver:  timeparse.NewWhenResolver(),
	}
	svc := bot.NewService(exec, logger)
	scanner := &bot.Scanner{Reminders: reminders, Notifier: notifier, Logger: logger}

	r := httpx.NewRouter(cfg, svc, scanner)

	ctx, cancel := context.WithCancel(context.Background())
	if cfg.ScanInterval > 0 {
		go scanner.Run(ctx, cfg.ScanInterval)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
