package remotelog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type captureSender struct {
	mu      sync.Mutex
	records []Record
	err     error
}

func (s *captureSender) Log(ctx context.Context, stack, level, pkg, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Stack: stack, Level: level, Package: pkg, Message: message})
	return s.err
}

func (s *captureSender) all() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func runDispatcher(d *Dispatcher) (done chan struct{}) {
	done = make(chan struct{})
	go func() {
		d.Run()
		close(done)
	}()
	return done
}

func TestDispatcherDelivers(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, zap.NewNop())
	done := runDispatcher(d)

	assert.NoError(t, d.Emit("backend", "info", "handler", "first"))
	assert.NoError(t, d.Emit("backend", "warn", "handler", "second"))

	d.Close()
	<-done

	records := sender.all()
	assert.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Message)
	assert.Equal(t, "second", records[1].Message)
}

func TestDispatcherSignalsInvalidRecord(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, zap.NewNop())
	done := runDispatcher(d)

	err := d.Emit("backend", "info", "page", "frontend-only package")
	assert.ErrorIs(t, err, ErrInvalidRecord)

	d.Close()
	<-done

	// nothing was enqueued for the invalid record
	assert.Len(t, sender.all(), 0)
}

func TestDispatcherSwallowsDeliveryFailure(t *testing.T) {
	sender := &captureSender{err: errors.New("collector down")}
	d := NewDispatcher(sender, zap.NewNop())
	done := runDispatcher(d)

	// Emit reports success even though delivery will fail later.
	assert.NoError(t, d.Emit("backend", "info", "handler", "x"))

	d.Close()
	<-done

	assert.Len(t, sender.all(), 1)
}
