package worker

import (
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
)

// Worker worker interface
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker runs a job on a fixed tick until the context is done.
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick start tick work
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Minute
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = delay
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next := delay
			if err := onWork(ctx); err != nil {
				logger.FromContext(ctx).WithError(err).Errorln("tick work failed")
				next = errDelay
			}

			timer.Reset(next)
		}
	}
}
