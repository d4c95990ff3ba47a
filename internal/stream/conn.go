package stream

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/websocket"

	"github.com/EgorLis/osunpbot/internal/metrics"
)

const (
	readLimit    = 64 << 20
	writeTimeout = 5 * time.Second
)

func (s *Subscription) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, _, err := s.cfg.Dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(readLimit)
	return conn, nil
}

// отправка инициализационного сообщения, если источник его ждёт
func (s *Subscription) handshake(conn *websocket.Conn) error {
	if s.cfg.Handshake == nil {
		return nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, s.cfg.Handshake); err != nil {
		return err
	}
	return conn.SetWriteDeadline(time.Time{})
}

func (s *Subscription) connected() {
	s.reconnecting = false
	metrics.StreamConnectsTotal.WithLabelValues(s.cfg.Name).Inc()
	s.log.Info("connected")
	if s.OnConnected != nil {
		s.OnConnected()
	}
}

// fail логирует неудачу; повторные ошибки подключения в одной серии не спамят.
func (s *Subscription) fail(err error) {
	stage := StageConnect
	var te *TransportError
	if errors.As(err, &te) {
		stage = te.Stage
	}
	metrics.StreamFailuresTotal.WithLabelValues(s.cfg.Name, string(stage)).Inc()

	switch {
	case stage == StageStream:
		s.log.Info("disconnected, reconnecting...", "error", err)
	case !s.reconnecting:
		s.log.Warn("unable to connect, reconnecting...", "error", err)
	default:
		s.log.Debug("reconnect failed", "error", err, "backoff", s.cfg.Backoff)
	}
	s.reconnecting = true

	if stage == StageStream && s.OnDisconnected != nil {
		s.OnDisconnected(err)
	}
}
