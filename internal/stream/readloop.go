package stream

import (
	"github.com/gorilla/websocket"

	"github.com/EgorLis/osunpbot/internal/metrics"
)

// readLoop читает сообщения до ошибки транспорта. Сообщение сливается в Store
// только если оно полностью декодировалось.
func (s *Subscription) readLoop(conn *websocket.Conn) error {
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if typ != websocket.TextMessage && typ != websocket.BinaryMessage {
			continue
		}

		p, err := s.cfg.Decode(data)
		if err != nil {
			metrics.StreamMessagesTotal.WithLabelValues(s.cfg.Name, "decode_error").Inc()
			s.log.Warn("skipping malformed message", "error", &DecodeError{Source: s.cfg.Name, Err: err})
			continue
		}

		s.store.Merge(p)
		metrics.StreamMessagesTotal.WithLabelValues(s.cfg.Name, "merged").Inc()
	}
}
