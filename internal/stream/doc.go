// Package stream реализует устойчивую подписку на локальный WebSocket-источник
// данных (tosu, StreamCompanion).
//
// Subscription крутит бесконечный цикл
// Disconnected -> Connecting -> Handshaking -> Streaming -> Disconnected:
//
//   - Connecting: Dial по URL источника; ошибка — лог (один раз на серию
//     неудач), пауза Backoff (2s), новая попытка.
//   - Handshaking: если задан Handshake, он отправляется одним текстовым
//     сообщением (например, список нужных полей). Ошибка записи — как ошибка
//     подключения.
//   - Streaming: каждое сообщение целиком декодируется Decoder'ом в
//     state.Partial и только потом сливается в Store. Битое сообщение
//     пропускается, поток продолжается.
//   - Обрыв потока (EOF, ошибка транспорта) — лог, пауза, переподключение.
//
// Цикл завершается только при отмене контекста. Таймаутов на чтение нет:
// молчащий источник просто держит подписку в ожидании следующего сообщения.
//
// Пример:
//
//	sub := stream.New(stream.Config{
//		Name:      "companion",
//		URL:       "ws://localhost:20727/tokens",
//		Handshake: companion.Handshake(),
//		Decode:    companion.Decode,
//	}, store, clockwork.NewRealClock(), logger)
//	go sub.Run(ctx)
package stream
