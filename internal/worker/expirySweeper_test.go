package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingStore struct {
	calls   atomic.Int32
	evicted int
}

func (s *countingStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	s.calls.Add(1)
	return s.evicted, nil
}

func TestExpirySweeperSweeps(t *testing.T) {
	store := &countingStore{evicted: 2}
	sweeper := NewExpirySweeper(10*time.Millisecond, store, zap.NewNop())

	go sweeper.Run()
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		return store.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestExpirySweeperStops(t *testing.T) {
	store := &countingStore{}
	sweeper := NewExpirySweeper(5*time.Millisecond, store, zap.NewNop())

	done := make(chan struct{})
	go func() {
		sweeper.Run()
		close(done)
	}()

	sweeper.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
