// Package chat — транспорт чата: подключение к каналу, приём сообщений и
// ответы на них. Бот работает с интерфейсом Session, Twitch — одна из реализаций.
package chat

import "context"

// Message — входящее сообщение чата.
type Message struct {
	ID      string
	Channel string
	Sender  string
	Text    string
}

// Handler вызывается на каждое входящее сообщение.
type Handler func(msg Message)

// Session — одна живая сессия чата.
type Session interface {
	// Run подключается, заходит в channel и блокируется, пока соединение живо
	// или пока не отменён ctx. Каждый вызов начинает сессию с нуля.
	Run(ctx context.Context, channel string, handle Handler) error
	// Reply отвечает на сообщение msg.
	Reply(msg Message, text string) error
}
