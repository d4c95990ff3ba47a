package bot

import (
	"errors"
	"strings"

	"github.com/EgorLis/osunpbot/internal/chat"
	"github.com/EgorLis/osunpbot/internal/format"
	"github.com/EgorLis/osunpbot/internal/metrics"
	"github.com/EgorLis/osunpbot/internal/ratelimit"
)

const prefix = "!"

// parseCommand достаёт имя команды: "!NP please" -> "np".
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	fields := strings.Fields(text[len(prefix):])
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

func (b *Bot) handle(msg chat.Message, limiter *ratelimit.Limiter) {
	cmd, ok := parseCommand(msg.Text)
	if !ok {
		return
	}
	tmpl, ok := b.cfg.Template(cmd)
	if !ok {
		return
	}
	if !limiter.Trigger(cmd) {
		metrics.CommandsTotal.WithLabelValues(cmd, "rate_limited").Inc()
		b.log.Debug("rate limited", "command", cmd, "user", msg.Sender)
		return
	}

	reply, err := format.Format(tmpl, b.store.Snapshot())
	if err != nil {
		metrics.CommandsTotal.WithLabelValues(cmd, "format_error").Inc()
		var fe *format.Error
		if errors.As(err, &fe) {
			b.log.Error("template failed", "command", cmd, "placeholder", fe.Placeholder, "error", err)
		} else {
			b.log.Error("template failed", "command", cmd, "error", err)
		}
		return
	}

	if err := b.session.Reply(msg, reply); err != nil {
		metrics.CommandsTotal.WithLabelValues(cmd, "send_error").Inc()
		b.log.Warn("reply failed", "command", cmd, "error", err)
		return
	}
	metrics.CommandsTotal.WithLabelValues(cmd, "replied").Inc()
	b.log.Info("replied", "command", cmd, "user", msg.Sender)
}
