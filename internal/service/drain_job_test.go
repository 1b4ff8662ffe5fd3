package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDrainer struct {
	drains int32
}

func (d *countingDrainer) Drain() {
	atomic.AddInt32(&d.drains, 1)
}

func (d *countingDrainer) count() int32 {
	return atomic.LoadInt32(&d.drains)
}

func TestDrainJob_DrainsPeriodically(t *testing.T) {
	d := &countingDrainer{}
	j := NewDrainJob(d)
	t.Cleanup(j.Stop)

	j.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool { return d.count() >= 3 }, time.Second, time.Millisecond)
}

func TestDrainJob_StopHaltsDraining(t *testing.T) {
	d := &countingDrainer{}
	j := NewDrainJob(d)

	j.Start(context.Background(), 5*time.Millisecond)
	require.Eventually(t, func() bool { return d.count() >= 1 }, time.Second, time.Millisecond)

	j.Stop()
	seen := d.count()
	time.Sleep(25 * time.Millisecond)

	assert.Equal(t, seen, d.count())
}

func TestDrainJob_StopWithoutStart(t *testing.T) {
	j := NewDrainJob(&countingDrainer{})
	j.Stop() // no-op
}

func TestDrainJob_ContextCancelStopsJob(t *testing.T) {
	d := &countingDrainer{}
	j := NewDrainJob(d)
	t.Cleanup(j.Stop)

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx, 5*time.Millisecond)
	require.Eventually(t, func() bool { return d.count() >= 1 }, time.Second, time.Millisecond)

	cancel()
	time.Sleep(10 * time.Millisecond)
	seen := d.count()
	time.Sleep(25 * time.Millisecond)

	assert.Equal(t, seen, d.count())
}

func TestDrainJob_RestartReplacesPreviousJob(t *testing.T) {
	d := &countingDrainer{}
	j := NewDrainJob(d)
	t.Cleanup(j.Stop)

	j.Start(context.Background(), time.Hour)
	j.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool { return d.count() >= 2 }, time.Second, time.Millisecond)
}
