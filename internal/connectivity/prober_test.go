package connectivity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/logger"
)

func newTestProber(t *testing.T, probeURL string) *Prober {
	t.Helper()

	p := NewProber(config.Connectivity{
		ProbeURL:     probeURL,
		Interval:     10 * time.Millisecond,
		ProbeTimeout: time.Second,
	}, logger.Nop())
	t.Cleanup(p.Stop)

	return p
}

func TestProber_StartsOffline(t *testing.T) {
	p := newTestProber(t, "http://127.0.0.1:0/health")
	assert.False(t, p.IsOnline())
}

func TestProber_DetectsReachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	p := newTestProber(t, srv.URL)

	var transitions int32
	p.OnChange(func(online bool) {
		if online {
			atomic.AddInt32(&transitions, 1)
		}
	})

	p.Start(context.Background())

	require.Eventually(t, p.IsOnline, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&transitions))
}

func TestProber_ErrorStatusStillCountsAsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p := newTestProber(t, srv.URL)
	p.Start(context.Background())

	require.Eventually(t, p.IsOnline, time.Second, 5*time.Millisecond)
}

func TestProber_DetectsLostConnectivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	p := newTestProber(t, srv.URL)
	p.Start(context.Background())
	require.Eventually(t, p.IsOnline, time.Second, 5*time.Millisecond)

	srv.Close()

	require.Eventually(t, func() bool { return !p.IsOnline() }, time.Second, 5*time.Millisecond)
}

func TestProber_StopHaltsProbing(t *testing.T) {
	var probes int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&probes, 1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	p := newTestProber(t, srv.URL)
	p.Start(context.Background())
	require.Eventually(t, p.IsOnline, time.Second, 5*time.Millisecond)

	p.Stop()
	seen := atomic.LoadInt32(&probes)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, seen, atomic.LoadInt32(&probes))
}
