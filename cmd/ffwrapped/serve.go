package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"

	"github.com/omarshaarawi/ffwrapped/internal/api/espn"
	"github.com/omarshaarawi/ffwrapped/internal/api/fantasy"
	"github.com/omarshaarawi/ffwrapped/internal/bot"
	"github.com/omarshaarawi/ffwrapped/internal/cache"
	"github.com/omarshaarawi/ffwrapped/internal/config"
	"github.com/omarshaarawi/ffwrapped/internal/handlers"
	"github.com/omarshaarawi/ffwrapped/internal/repository/memory"
	"github.com/omarshaarawi/ffwrapped/internal/repository/postgres"
	"github.com/omarshaarawi/ffwrapped/internal/scheduler"
	"github.com/omarshaarawi/ffwrapped/internal/service"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the HTTP API, the Telegram bot and the weekly reports",
		Before: loadEnv,
		Action: serve,
	}
}

func syncCommand() *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "Store the league draft and every drafted player's weekly stats",
		Before: loadEnv,
		Action: syncDraft,
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	router := handlers.NewRouter(handlers.NewHandler(deps.service, deps.checks), cfg.Server.CORSOrigins)
	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
			stop()
		}
	}()

	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, deps.service)
		if err != nil {
			return err
		}

		sched, err := scheduler.NewScheduler(deps.service, telegramBot.SendMessage)
		if err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer func() {
			err := sched.Stop()
			if err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("Telegram bot disabled, TELEGRAM_TOKEN not set")
	}

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func syncDraft(c *cli.Context) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("sync needs DATABASE_URL: %w", service.ErrNoStore)
	}

	deps, err := newDependencies(c.Context, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	n, err := deps.service.SyncDraft(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Synced %d drafted players\n", n)
	return nil
}

type dependencies struct {
	service *service.LineupService
	checks  map[string]handlers.HealthCheck
	closers []func() error
}

// newDependencies wires the service. Postgres and Redis are optional and
// only connected when their URLs are set.
func newDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	repo, err := memory.NewRepository(cfg.Cache.LeagueSize)
	if err != nil {
		return nil, err
	}

	espnClient := espn.NewClient(cfg.ESPNAPI)
	espnAPI := espn.NewAPI(espnClient)
	fantasyAPI := fantasy.NewAPI(espnAPI, repo)

	deps := &dependencies{checks: make(map[string]handlers.HealthCheck)}
	var opts []service.Option

	if cfg.Database.URL != "" {
		store, err := postgres.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, store.Close)
		if err := store.Migrate(ctx); err != nil {
			deps.Close()
			return nil, err
		}
		opts = append(opts, service.WithStore(store))
		deps.checks["postgres"] = store.Ping
		slog.Info("Connected to database")
	}

	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client := redis.NewClient(redisOpts)
		deps.closers = append(deps.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			deps.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		opts = append(opts, service.WithCache(cache.NewLineupCache(client, cfg.Redis.LineupTTL)))
		deps.checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		slog.Info("Connected to redis", "ttl", cfg.Redis.LineupTTL)
	}

	deps.service = service.NewLineupService(fantasyAPI, repo, opts...)
	return deps, nil
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Error("Error closing dependency", "error", err)
		}
	}
	d.closers = nil
}
