package stream

import "fmt"

// Stage — на каком шаге оборвалась сессия.
type Stage string

const (
	StageConnect   Stage = "connect"
	StageHandshake Stage = "handshake"
	StageStream    Stage = "stream"
)

// TransportError — подключение не удалось или поток оборвался.
// Всегда обрабатывается внутри Subscription (пауза и переподключение).
type TransportError struct {
	Stage Stage
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError — сообщение не соответствует ожидаемой форме; оно отбрасывается.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s message: %v", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
