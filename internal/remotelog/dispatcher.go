package remotelog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sender is the delivery half of the dispatcher, satisfied by Client.
type Sender interface {
	Log(ctx context.Context, stack, level, pkg, message string) error
}

// Dispatcher decouples request handling from log delivery. Emit validates
// and enqueues; a background goroutine drains the channel and sends each
// record. Delivery failures go to the local zap side channel and are never
// visible to the HTTP client.
type Dispatcher struct {
	in     chan Record
	sender Sender
	logger *zap.Logger
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		in:     make(chan Record, 256),
		sender: sender,
		logger: logger,
	}
}

// Emit validates the record and hands it to the delivery goroutine. The
// response path only pays for the validation and the channel send; when the
// queue is full the record is dropped rather than blocking a response.
func (d *Dispatcher) Emit(stack, level, pkg, message string) error {
	record := Record{
		Stack:   stack,
		Level:   level,
		Package: pkg,
		Message: message,
	}

	if err := record.Validate(); err != nil {
		d.logger.Warn("rejected log record", zap.Error(err))
		return err
	}

	select {
	case d.in <- record:
	default:
		d.logger.Warn("log queue full, dropping record",
			zap.String("level", record.Level),
			zap.String("package", record.Package),
		)
	}

	return nil
}

// Run drains the queue until the channel is closed. Meant to run in its own
// goroutine.
func (d *Dispatcher) Run() {
	for record := range d.in {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := d.sender.Log(ctx, record.Stack, record.Level, record.Package, record.Message)
		cancel()

		if err != nil {
			d.logger.Error("log delivery failed", zap.Error(err))
		}
	}
}

// Close stops the delivery goroutine once the queue drains.
func (d *Dispatcher) Close() {
	close(d.in)
}
