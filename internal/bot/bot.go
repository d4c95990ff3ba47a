package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/EgorLis/osunpbot/internal/chat"
	"github.com/EgorLis/osunpbot/internal/config"
	"github.com/EgorLis/osunpbot/internal/metrics"
	"github.com/EgorLis/osunpbot/internal/ratelimit"
	"github.com/EgorLis/osunpbot/internal/state"
)

// Backoff — пауза перед повторным входом в чат.
const Backoff = 2 * time.Second

// Snapshotter — откуда бот берёт состояние для ответа.
type Snapshotter interface {
	Snapshot() state.State
}

type Bot struct {
	session chat.Session
	store   Snapshotter
	cfg     *config.Config
	clock   clockwork.Clock
	log     *slog.Logger
}

func New(session chat.Session, store Snapshotter, cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) *Bot {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		session: session,
		store:   store,
		cfg:     cfg,
		clock:   clock,
		log:     logger.With("component", "bot"),
	}
}

// Run держит сессию чата до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	channel := b.cfg.ChannelName()
	for {
		limiter := ratelimit.New(b.cfg.RateLimit(), b.clock)
		metrics.ChatSessionsTotal.Inc()
		b.log.Info("joining chat", "channel", channel)

		err := b.session.Run(ctx, channel, func(msg chat.Message) {
			b.handle(msg, limiter)
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			b.log.Warn("chat disconnected", "error", err)
		} else {
			b.log.Info("chat disconnected")
		}
		b.log.Info("reconnecting", "in", Backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.clock.After(Backoff):
		}
	}
}
