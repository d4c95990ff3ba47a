package tosu

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/osunpbot/internal/logging"
	"github.com/EgorLis/osunpbot/internal/state"
)

type fakeCalc struct {
	mu    sync.Mutex
	fail  map[float64]error
	modes []state.Mode
}

func (f *fakeCalc) CalculatePP(_ context.Context, mode state.Mode, acc float64) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modes = append(f.modes, mode)
	if err := f.fail[acc]; err != nil {
		return 0, err
	}
	return acc * 10, nil
}

func (f *fakeCalc) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.modes)
}

func TestPoller_PollMergesOnlyPPFields(t *testing.T) {
	store := state.NewStore()
	store.Merge(state.Partial{Artist: state.Value("A"), Mode: state.Value(state.ModeCatch), PPModsSS: state.Value(5.0)})
	calc := &fakeCalc{}

	p := NewPoller(calc, store, clockwork.NewFakeClock(), logging.Discard())
	require.NoError(t, p.Poll(context.Background()))

	s := store.Snapshot()
	assert.Equal(t, 980.0, s.PP98)
	assert.Equal(t, 990.0, s.PP99)
	assert.Equal(t, 1000.0, s.PPSS)
	assert.Equal(t, "A", s.Artist)
	assert.Equal(t, 5.0, s.PPModsSS)
	assert.Equal(t, []state.Mode{state.ModeCatch, state.ModeCatch, state.ModeCatch}, calc.modes)
}

func TestPoller_FailedRoundIsSkipped(t *testing.T) {
	store := state.NewStore()
	store.Merge(state.Partial{PP98: state.Value(1.0), PP99: state.Value(2.0), PPSS: state.Value(3.0)})
	calc := &fakeCalc{fail: map[float64]error{99: errors.New("no beatmap")}}

	p := NewPoller(calc, store, clockwork.NewFakeClock(), logging.Discard())
	assert.Error(t, p.Poll(context.Background()))

	s := store.Snapshot()
	assert.Equal(t, 1.0, s.PP98)
	assert.Equal(t, 2.0, s.PP99)
	assert.Equal(t, 3.0, s.PPSS)

	// следующий раунд проходит без какого-либо состояния ошибки
	calc.mu.Lock()
	calc.fail = nil
	calc.mu.Unlock()
	require.NoError(t, p.Poll(context.Background()))
	assert.Equal(t, 990.0, store.Snapshot().PP99)
}

func TestPoller_RunPollsEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	calc := &fakeCalc{}
	store := state.NewStore()
	p := NewPoller(calc, store, clock, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	bctx, bcancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer bcancel()
	require.NoError(t, clock.BlockUntilContext(bctx, 1))
	assert.Equal(t, 0, calc.calls(), "no poll before the first tick")

	clock.Advance(PollInterval)
	assert.Eventually(t, func() bool { return calc.calls() == 3 }, time.Second, 5*time.Millisecond)

	clock.Advance(PollInterval)
	assert.Eventually(t, func() bool { return calc.calls() == 6 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
