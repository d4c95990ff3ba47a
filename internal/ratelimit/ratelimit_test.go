package ratelimit

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestTrigger_CooldownPerKey(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(5*time.Second, clock)

	assert.True(t, l.Trigger("np"))
	assert.False(t, l.Trigger("np"))
	assert.True(t, l.Trigger("pp"), "pp must not be affected by np")

	clock.Advance(5*time.Second + time.Millisecond)
	assert.True(t, l.Trigger("np"))
	assert.False(t, l.Trigger("np"))
}

func TestTrigger_DeniedCallDoesNotExtendCooldown(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(5*time.Second, clock)

	assert.True(t, l.Trigger("np"))
	clock.Advance(4 * time.Second)
	assert.False(t, l.Trigger("np"))

	clock.Advance(2 * time.Second)
	assert.True(t, l.Trigger("np"), "cooldown counts from the last allowed trigger")
}

func TestTrigger_ExactPeriodIsStillLimited(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(time.Second, clock)

	assert.True(t, l.Trigger("skin"))
	clock.Advance(time.Second)
	assert.False(t, l.Trigger("skin"))
}

func TestTrigger_ZeroPeriod(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New(0, clock)

	assert.True(t, l.Trigger("np"))
	clock.Advance(time.Nanosecond)
	assert.True(t, l.Trigger("np"))
}
