// Package companion — второй источник данных, StreamCompanion
// (ws://localhost:20727/tokens).
//
// После подключения ему отправляется JSON-массив имён токенов, которые нам
// нужны (state.Keys); дальше он присылает плоские объекты "токен -> значение"
// только по этим токенам. Имена токенов совпадают с json-тегами state.Partial,
// поэтому сообщение декодируется напрямую.
package companion

import (
	"encoding/json"

	"github.com/EgorLis/osunpbot/internal/state"
)

const DefaultURL = "ws://localhost:20727/tokens"

// Handshake — инициализационное сообщение со списком нужных токенов.
func Handshake() []byte {
	b, err := json.Marshal(state.Keys())
	if err != nil {
		// срез строк всегда сериализуется
		panic(err)
	}
	return b
}

// Decode разбирает одно сообщение; лишние токены игнорируются, несовпадение
// типа — ошибка, и тогда обновление целиком отбрасывается.
func Decode(data []byte) (state.Partial, error) {
	var p state.Partial
	if err := json.Unmarshal(data, &p); err != nil {
		return state.Partial{}, err
	}
	return p, nil
}
