// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/realtime"
	"github.com/offlinekit/docsync/models"
)

// Handle identifies one registered subscription. Zero value is invalid.
type Handle struct {
	channel string
	id      int
}

type subscriber struct {
	onEvent func(models.ChangeEvent)
	onErr   func(error)
}

// channelState is one open transport channel plus its registered
// subscribers. The channel stays open while subs is non-empty.
type channelState struct {
	close func()
	subs  map[int]subscriber
}

// SubscriptionManager multiplexes realtime transport channels across
// subscribers. A channel is opened on the first subscribe for its spec and
// closed when the last subscriber for it unsubscribes.
//
// Before forwarding an event the manager consults the pending index: an
// event whose server revision is older than the enqueue time of a pending
// operation on the same document is suppressed, so a caller's own
// unconfirmed write is never visually reverted by an older push.
type SubscriptionManager struct {
	transport realtime.Transport
	pending   PendingIndex
	logger    *logger.Logger

	mu       sync.Mutex
	nextID   int
	channels map[string]*channelState
}

// NewSubscriptionManager builds a SubscriptionManager.
func NewSubscriptionManager(transport realtime.Transport, pending PendingIndex, log *logger.Logger) *SubscriptionManager {
	return &SubscriptionManager{
		transport: transport,
		pending:   pending,
		logger:    log,
		channels:  make(map[string]*channelState),
	}
}

// Subscribe registers the callback pair for the spec's channel, opening the
// underlying transport channel when it is not open yet. Handles from
// repeated subscribes on the same spec are independent.
func (m *SubscriptionManager) Subscribe(ctx context.Context, spec models.ChannelSpec, onEvent func(models.ChangeEvent), onErr func(error)) (Handle, error) {
	name := spec.Name()

	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.channels[name]
	if !ok {
		closeFn, err := m.transport.OpenChannel(ctx, name,
			func(ev models.ChangeEvent) { m.dispatch(name, ev) },
			func(err error) { m.dispatchError(name, err) },
		)
		if err != nil {
			return Handle{}, fmt.Errorf("subscribe %q: %w", name, err)
		}
		st = &channelState{close: closeFn, subs: make(map[int]subscriber)}
		m.channels[name] = st
		m.logger.Debug().Str("channel", name).Msg("channel subscribed")
	}

	m.nextID++
	id := m.nextID
	st.subs[id] = subscriber{onEvent: onEvent, onErr: onErr}

	return Handle{channel: name, id: id}, nil
}

// Unsubscribe removes the handle's callback. When it was the channel's last
// subscriber the underlying transport channel is closed. Unknown or
// already-removed handles are a no-op.
func (m *SubscriptionManager) Unsubscribe(h Handle) {
	m.mu.Lock()
	st, ok := m.channels[h.channel]
	if !ok {
		m.mu.Unlock()
		return
	}

	delete(st.subs, h.id)
	var closeFn func()
	if len(st.subs) == 0 {
		closeFn = st.close
		delete(m.channels, h.channel)
	}
	m.mu.Unlock()

	if closeFn != nil {
		closeFn()
		m.logger.Debug().Str("channel", h.channel).Msg("channel closed, no subscribers left")
	}
}

// Close unsubscribes everything and closes every open channel.
func (m *SubscriptionManager) Close() {
	m.mu.Lock()
	channels := m.channels
	m.channels = make(map[string]*channelState)
	m.mu.Unlock()

	for name, st := range channels {
		st.close()
		m.logger.Debug().Str("channel", name).Msg("channel closed")
	}
}

// dispatch forwards ev to the channel's subscribers unless a pending local
// write for the same document is fresher than the event.
func (m *SubscriptionManager) dispatch(name string, ev models.ChangeEvent) {
	if op, ok := m.pending.Pending(ev.Collection, ev.DocumentID); ok && ev.Revision.Before(op.EnqueuedAt) {
		m.logger.Debug().
			Str("channel", name).
			Str("document_id", ev.DocumentID).
			Time("event_revision", ev.Revision).
			Time("pending_since", op.EnqueuedAt).
			Msg("stale push event suppressed")
		return
	}

	for _, sub := range m.subscribers(name) {
		sub.onEvent(ev)
	}
}

func (m *SubscriptionManager) dispatchError(name string, err error) {
	for _, sub := range m.subscribers(name) {
		sub.onErr(err)
	}
}

// subscribers snapshots the channel's callbacks so they run outside the lock.
func (m *SubscriptionManager) subscribers(name string) []subscriber {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.channels[name]
	if !ok {
		return nil
	}
	out := make([]subscriber, 0, len(st.subs))
	for _, sub := range st.subs {
		out = append(out, sub)
	}
	return out
}
