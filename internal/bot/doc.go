// Package bot — диспетчер чат-команд. Держит сессию чата, на каждое сообщение
// вида "!<команда> ..." ищет шаблон команды, проверяет лимитер и отвечает
// отформатированным снимком текущего состояния.
//
// Жизненный цикл:
//   - Создать через New(session, store, cfg, clock, logger).
//   - Запустить Run(ctx): он блокируется до отмены ctx, сам переподключается
//     к чату с паузой Backoff.
//
// Правила ответа:
//   - сообщения без "!" и неизвестные команды игнорируются;
//   - команда, вызванная раньше чем через cfg.RateLimit() после прошлого ответа,
//     игнорируется молча;
//   - ошибка шаблона логируется, ответ не отправляется;
//   - ошибка отправки логируется, сессия продолжает работать.
//
// Кулдауны живут внутри одной сессии: после переподключения лимитер новый.
package bot
