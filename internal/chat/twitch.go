package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	twitch "github.com/gempir/go-twitch-irc/v4"
)

var ErrNotConnected = errors.New("chat: not connected")

// Twitch — Session поверх Twitch IRC.
type Twitch struct {
	username string
	token    string

	mu     sync.Mutex
	client *twitch.Client

	// для тестов и нестандартных серверов (например, локальный IRC)
	IRCAddress string
	TLS        bool
}

func NewTwitch(username, token string) *Twitch {
	if !strings.HasPrefix(token, "oauth:") {
		token = "oauth:" + token
	}
	return &Twitch{username: username, token: token, TLS: true}
}

func (t *Twitch) Run(ctx context.Context, channel string, handle Handler) error {
	client := twitch.NewClient(t.username, t.token)
	if t.IRCAddress != "" {
		client.IrcAddress = t.IRCAddress
	}
	client.TLS = t.TLS

	client.OnPrivateMessage(func(m twitch.PrivateMessage) {
		handle(Message{
			ID:      m.ID,
			Channel: m.Channel,
			Sender:  m.User.Name,
			Text:    m.Message,
		})
	})
	// отмена могла прийти, пока соединение ещё не поднято: тогда Disconnect
	// из AfterFunc ничего не делает, добиваем здесь
	client.OnConnect(func() {
		if ctx.Err() != nil {
			_ = client.Disconnect()
		}
	})
	client.Join(strings.ToLower(channel))

	t.mu.Lock()
	t.client = client
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		if t.client == client {
			t.client = nil
		}
		t.mu.Unlock()
	}()

	stop := context.AfterFunc(ctx, func() { _ = client.Disconnect() })
	defer stop()

	err := client.Connect()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (t *Twitch) Reply(msg Message, text string) error {
	t.mu.Lock()
	client := t.client
	t.mu.Unlock()
	if client == nil {
		return ErrNotConnected
	}
	client.Reply(msg.Channel, msg.ID, text)
	return nil
}
