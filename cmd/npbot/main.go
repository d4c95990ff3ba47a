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

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/EgorLis/osunpbot/internal/bot"
	"github.com/EgorLis/osunpbot/internal/chat"
	"github.com/EgorLis/osunpbot/internal/companion"
	"github.com/EgorLis/osunpbot/internal/config"
	"github.com/EgorLis/osunpbot/internal/logging"
	"github.com/EgorLis/osunpbot/internal/state"
	"github.com/EgorLis/osunpbot/internal/stream"
	"github.com/EgorLis/osunpbot/internal/tosu"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}
	logging.InitLogger(env.LogLevel, env.LogFormat)

	if err := newRootCmd(env).Execute(); err != nil {
		os.Exit(1)
	}
}

func runBot(env *config.Env) error {
	log := logging.Logger

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		if errors.Is(err, config.ErrCreated) {
			log.Warn("config file was missing, a template has been written", "path", env.ConfigPath)
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	store := state.NewStore()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Sources.Tosu {
		sub := stream.New(stream.Config{
			Name:   "tosu",
			URL:    env.TosuWSURL,
			Decode: tosu.Decode,
		}, store, clock, log)
		poller := tosu.NewPoller(tosu.NewClient(env.TosuAPIURL), store, clock, log)

		g.Go(func() error { sub.Run(ctx); return nil })
		g.Go(func() error { poller.Run(ctx); return nil })
	}
	if cfg.Sources.Companion {
		sub := stream.New(stream.Config{
			Name:      "companion",
			URL:       env.CompanionWSURL,
			Handshake: companion.Handshake(),
			Decode:    companion.Decode,
		}, store, clock, log)

		g.Go(func() error { sub.Run(ctx); return nil })
	}

	b := bot.New(chat.NewTwitch(cfg.Username, cfg.Token), store, cfg, clock, log)
	g.Go(func() error {
		if err := b.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	if env.MetricsAddr != "" {
		srv := &http.Server{Addr: env.MetricsAddr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
		g.Go(func() error {
			log.Info("metrics listening", "addr", env.MetricsAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	log.Info("running, press Ctrl+C to stop", "channel", cfg.ChannelName())
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}
