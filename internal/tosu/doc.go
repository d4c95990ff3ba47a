// Package tosu — основной источник данных: WebSocket tosu (ws://localhost:24050/ws)
// и его HTTP-эндпоинт расчёта pp.
//
// Поток присылает вложенный JSON (settings, menu); Decode переводит его в
// state.Partial. Poller раз в 2 секунды запрашивает pp без модов для 98/99/100%
// (этих чисел в потоке нет) и сливает их в Store отдельным обновлением.
package tosu
