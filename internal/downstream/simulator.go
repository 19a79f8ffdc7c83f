package downstream

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"cafe-bot/internal/common/logger"
	"cafe-bot/internal/config"
	"cafe-bot/internal/microservices/cafe/domain/dao"
)

// Simulator stands in for a real integration: it waits a fixed latency per
// kind and then flips a biased coin. Nothing leaves the process.
type Simulator struct {
	latency map[dao.Kind]time.Duration
	success map[dao.Kind]float64
	hitRate float64

	mu  sync.Mutex
	rnd *rand.Rand
	lg  *logger.Logger
}

func NewSimulator(cfg config.DownstreamConfig, lg *logger.Logger) *Simulator {
	return NewSimulatorWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())), lg)
}

func NewSimulatorWithRand(cfg config.DownstreamConfig, rnd *rand.Rand, lg *logger.Logger) *Simulator {
	return &Simulator{
		latency: map[dao.Kind]time.Duration{
			dao.KindClient:   cfg.RegisterLatency,
			dao.KindFeedback: cfg.FeedbackLatency,
			dao.KindOrder:    cfg.OrderLatency,
		},
		success: map[dao.Kind]float64{
			dao.KindClient:   cfg.RegisterSuccessRate,
			dao.KindFeedback: cfg.FeedbackSuccessRate,
			dao.KindOrder:    cfg.OrderSuccessRate,
		},
		hitRate: cfg.LookupHitRate,
		rnd:     rnd,
		lg:      lg,
	}
}

func (s *Simulator) Submit(ctx context.Context, kind dao.Kind, record any) (bool, error) {
	s.lg.Debug("simulated_submit", map[string]any{"kind": string(kind), "record_id": recordID(record)})

	if err := sleep(ctx, s.latency[kind]); err != nil {
		return false, err
	}
	ok := s.flip(s.success[kind])
	if ok {
		s.lg.Info("simulated_submit_succeeded", map[string]any{"kind": string(kind), "record_id": recordID(record)})
	} else {
		s.lg.Warn("simulated_submit_failed", map[string]any{"kind": string(kind), "record_id": recordID(record)})
	}
	return ok, nil
}

func (s *Simulator) IsRegistered(ctx context.Context, phone string) (bool, error) {
	s.lg.Debug("simulated_lookup", map[string]any{"phone": phone})
	return s.flip(s.hitRate), nil
}

// flip returns true with probability p; p >= 1 always succeeds.
func (s *Simulator) flip(p float64) bool {
	if p >= 1 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < p
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
