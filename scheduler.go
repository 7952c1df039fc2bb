package solelog

import (
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// flushScheduler governs when buffered bytes reach stable storage. With a
// zero interval the sink syncs inside every append and the scheduler is
// dormant; with a positive interval a background ticker flushes at that
// cadence. The engine performs the final flush during shutdown.
type flushScheduler struct {
	interval time.Duration
	sink     *fileSink
	errlog   func(format string, args ...any)

	done chan struct{}
	wg   sync.WaitGroup
}

func newFlushScheduler(interval time.Duration, sink *fileSink, errlog func(string, ...any)) *flushScheduler {
	return &flushScheduler{
		interval: interval,
		sink:     sink,
		errlog:   errlog,
		done:     make(chan struct{}),
	}
}

func (fs *flushScheduler) start() {
	if fs.interval <= 0 {
		return
	}

	fs.wg.Add(1)
	go func() {
		defer fs.wg.Done()

		ticker := time.NewTicker(fs.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := fs.sink.Flush(); err != nil && !errors.Is(err, ErrClosed) {
					fs.errlog("periodic flush failed: %v\n", err)
				}
			case <-fs.done:
				return
			}
		}
	}()
}

// stop cancels the timer and waits for the background task to exit. Called
// exactly once, from the engine's Closing transition.
func (fs *flushScheduler) stop() {
	close(fs.done)
	fs.wg.Wait()
}

// newRotationSchedule wires an optional cron expression to forced rotation.
// Returns nil when no expression is configured.
func newRotationSchedule(expr string, rotate func() error, errlog func(string, ...any)) (*cron.Cron, error) {
	if expr == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(expr, func() {
		if err := rotate(); err != nil && !errors.Is(err, ErrClosed) {
			errlog("scheduled rotation failed: %v\n", err)
		}
	})
	if err != nil {
		return nil, fmtErrorf("invalid rotate_cron expression '%s': %w", expr, err)
	}

	c.Start()
	return c, nil
}
