// Package ratelimit — простой кулдаун на команду чата.
package ratelimit

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Limiter помнит время последнего срабатывания каждого ключа.
// Не потокобезопасен: им владеет одна сессия чата.
type Limiter struct {
	period time.Duration
	clock  clockwork.Clock
	last   map[string]time.Time
}

func New(period time.Duration, clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Limiter{
		period: period,
		clock:  clock,
		last:   make(map[string]time.Time),
	}
}

// Trigger возвращает true и запоминает "сейчас", если ключ ещё не встречался
// или с прошлого срабатывания прошло больше period. Иначе false, время не меняется.
func (l *Limiter) Trigger(key string) bool {
	if t, ok := l.last[key]; ok && l.clock.Since(t) <= l.period {
		return false
	}
	l.last[key] = l.clock.Now()
	return true
}
