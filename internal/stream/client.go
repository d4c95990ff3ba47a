package stream

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/EgorLis/osunpbot/internal/state"
)

// DefaultBackoff — пауза между попытками переподключения.
const DefaultBackoff = 2 * time.Second

// Decoder превращает одно входящее сообщение в частичное обновление.
type Decoder func(data []byte) (state.Partial, error)

// Merger — получатель обновлений (обычно *state.Store).
type Merger interface {
	Merge(p state.Partial)
}

type Config struct {
	Name      string // имя источника для логов и метрик
	URL       string
	Handshake []byte // nil — источник не ждёт инициализации
	Decode    Decoder
	Backoff   time.Duration
	Dialer    *websocket.Dialer
}

type Subscription struct {
	cfg   Config
	store Merger
	clock clockwork.Clock
	log   *slog.Logger

	// трогается только из горутины Run
	reconnecting bool

	// "События" — опциональные колбэки, задаются до Run
	OnConnected    func()
	OnDisconnected func(err error)
}

func New(cfg Config, store Merger, clock clockwork.Clock, logger *slog.Logger) *Subscription {
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Dialer == nil {
		cfg.Dialer = websocket.DefaultDialer
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscription{
		cfg:   cfg,
		store: store,
		clock: clock,
		log:   logger.With("source", cfg.Name, "url", cfg.URL),
	}
}

// Run блокируется до отмены ctx; ошибки транспорта наружу не выходят.
func (s *Subscription) Run(ctx context.Context) {
	for {
		err := s.session(ctx)
		if ctx.Err() != nil {
			return
		}
		s.fail(err)

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.cfg.Backoff):
		}
	}
}

// одна сессия: подключение, рукопожатие, чтение до обрыва
func (s *Subscription) session(ctx context.Context) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return &TransportError{Stage: StageConnect, Err: err}
	}
	defer conn.Close()

	// закрыть по отмене контекста — это разбудит ReadMessage
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := s.handshake(conn); err != nil {
		return &TransportError{Stage: StageHandshake, Err: err}
	}

	s.connected()

	return &TransportError{Stage: StageStream, Err: s.readLoop(conn)}
}
