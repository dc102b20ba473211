// Package worker runs the background jobs of the service.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Store interface {
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// ExpirySweeper periodically evicts expired links. Without it the store
// keeps expired entries forever and read paths answer 410 for them, which
// matches the default behavior; the sweeper makes eviction an explicit,
// opt-in policy.
type ExpirySweeper struct {
	interval time.Duration
	store    Store
	logger   *zap.Logger
	stop     chan struct{}
}

func NewExpirySweeper(interval time.Duration, store Store, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		interval: interval,
		store:    store,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run sweeps on every tick until Stop is called. Meant to run in its own
// goroutine.
func (s *ExpirySweeper) Run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *ExpirySweeper) Stop() {
	close(s.stop)
}

func (s *ExpirySweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	evicted, err := s.store.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("sweeping expired links", zap.Error(err))
		return
	}

	if evicted > 0 {
		s.logger.Info("evicted expired links", zap.Int("count", evicted))
	}
}
