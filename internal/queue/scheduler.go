package queue

import "time"

// Scheduler defers a function call. The queue schedules its backoff retries
// through this interface so tests can fire them deterministically instead of
// sleeping.
type Scheduler interface {
	// Schedule runs fn once after d. The returned function cancels the
	// pending call; cancelling after fn has run is a no-op.
	Schedule(d time.Duration, fn func()) (cancel func())
}

//go:generate mockgen -source=scheduler.go -destination=../mock/queue_scheduler_mock.go -package=mock

type timerScheduler struct{}

// NewTimerScheduler returns the production [Scheduler] backed by
// time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
