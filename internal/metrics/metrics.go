// Package metrics — счётчики Prometheus для источников данных и команд чата.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stream metrics
var (
	// StreamConnectsTotal — успешные подключения (после рукопожатия) по источнику.
	StreamConnectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npbot_stream_connects_total",
			Help: "Successful stream connections by source",
		},
		[]string{"source"},
	)

	// StreamFailuresTotal — неудачные попытки подключения и обрывы потока.
	StreamFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npbot_stream_failures_total",
			Help: "Stream connection failures and disconnects by source and stage",
		},
		[]string{"source", "stage"},
	)

	// StreamMessagesTotal — входящие сообщения по источнику и результату (merged/decode_error).
	StreamMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npbot_stream_messages_total",
			Help: "Inbound stream messages by source and result",
		},
		[]string{"source", "result"},
	)

	// PollRoundsTotal — раунды опроса pp по результату (ok/failed).
	PollRoundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npbot_pp_poll_rounds_total",
			Help: "pp calculation poll rounds by result",
		},
		[]string{"result"},
	)
)

// Chat metrics
var (
	// CommandsTotal — команды чата по имени и результату
	// (replied/rate_limited/format_error/send_error).
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "npbot_commands_total",
			Help: "Chat commands by command and result",
		},
		[]string{"command", "result"},
	)

	// ChatSessionsTotal — сколько раз поднималась сессия чата.
	ChatSessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "npbot_chat_sessions_total",
			Help: "Chat sessions started (initial connect and reconnects)",
		},
	)
)
