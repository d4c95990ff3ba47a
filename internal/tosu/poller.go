package tosu

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/EgorLis/osunpbot/internal/metrics"
	"github.com/EgorLis/osunpbot/internal/state"
)

const PollInterval = 2 * time.Second

// точности, для которых нужен pp без модов: 98, 99, 100 (SS)
var accuracies = [3]float64{98, 99, 100}

type PPCalculator interface {
	CalculatePP(ctx context.Context, mode state.Mode, acc float64) (float64, error)
}

type Store interface {
	Snapshot() state.State
	Merge(p state.Partial)
}

// Poller периодически дозапрашивает pp без модов. Своего backoff нет:
// неудачный раунд просто пропускается до следующего тика.
type Poller struct {
	calc     PPCalculator
	store    Store
	clock    clockwork.Clock
	interval time.Duration
	log      *slog.Logger
}

func NewPoller(calc PPCalculator, store Store, clock clockwork.Clock, logger *slog.Logger) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		calc:     calc,
		store:    store,
		clock:    clock,
		interval: PollInterval,
		log:      logger.With("component", "pp-poller"),
	}
}

// Run живёт до отмены ctx.
func (p *Poller) Run(ctx context.Context) {
	t := p.clock.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.Chan():
			if err := p.Poll(ctx); err != nil {
				metrics.PollRoundsTotal.WithLabelValues("failed").Inc()
				// tosu без выбранной карты отвечает ошибкой — это норма, не шумим
				p.log.Debug("pp poll failed", "error", err)
				continue
			}
			metrics.PollRoundsTotal.WithLabelValues("ok").Inc()
		}
	}
}

// Poll — один раунд: три параллельных запроса, слияние только если все успешны.
func (p *Poller) Poll(ctx context.Context) error {
	mode := p.store.Snapshot().Mode

	var results [len(accuracies)]float64
	g, gctx := errgroup.WithContext(ctx)
	for i, acc := range accuracies {
		g.Go(func() error {
			pp, err := p.calc.CalculatePP(gctx, mode, acc)
			if err != nil {
				return err
			}
			results[i] = pp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p.store.Merge(state.Partial{
		PP98: state.Value(results[0]),
		PP99: state.Value(results[1]),
		PPSS: state.Value(results[2]),
	})
	return nil
}
