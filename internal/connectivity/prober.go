// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/utils"
)

// Prober is a [Monitor] that polls an HTTP health endpoint and flips its
// state on the observed transitions. Any response from the endpoint counts
// as reachable; only a transport-level error (DNS failure, refused
// connection, timeout) counts as offline.
//
// The prober is idle until Start is called. It starts pessimistic: the state
// is offline until the first successful probe.
type Prober struct {
	client   *utils.HTTPClient
	probeURL string
	interval time.Duration
	logger   *logger.Logger

	*notifier

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber builds a Prober from the connectivity configuration.
func NewProber(cfg config.Connectivity, log *logger.Logger) *Prober {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.ProbeTimeout)

	return &Prober{
		client:   client,
		probeURL: cfg.ProbeURL,
		interval: cfg.Interval,
		logger:   log,
		notifier: newNotifier(false),
	}
}

// Start stops any previously running probe loop, probes once immediately,
// then keeps probing every interval until ctx is cancelled or Stop is
// called.
func (p *Prober) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		p.probe(probeCtx)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				p.probe(probeCtx)
			}
		}
	}()
}

// Stop cancels the probe loop's context and blocks until the goroutine has
// fully exited. Safe to call when the prober is not running.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Prober) probe(ctx context.Context) {
	_, err := p.client.R().SetContext(ctx).Get(p.probeURL)
	online := err == nil

	if !online {
		p.logger.Debug().Err(err).Str("url", p.probeURL).Msg("connectivity probe failed")
	}
	p.set(online)
}
