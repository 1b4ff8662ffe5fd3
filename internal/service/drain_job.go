package service

import (
	"context"
	"sync"
	"time"
)

// DrainJob periodically requests a queue drain. It is a safety net for lost
// connectivity notifications: a missed offline-to-online edge delays queued
// work by at most one interval instead of indefinitely. The job is idle
// until Start is called.
type DrainJob struct {
	drainer Drainer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDrainJob creates a DrainJob over the drainer.
func NewDrainJob(drainer Drainer) *DrainJob {
	return &DrainJob{drainer: drainer}
}

// Start stops any previously running job, then launches a background
// goroutine that requests a drain every interval. If interval is zero or
// negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *DrainJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.drainer.Drain()
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *DrainJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
