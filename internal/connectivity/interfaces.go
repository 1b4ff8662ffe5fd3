// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package connectivity reports whether the remote store is reachable and
// notifies interested components when reachability changes.
//
// The queue never probes the network itself: it reads the current state via
// IsOnline before draining and registers an OnChange callback to trigger a
// drain on the offline-to-online transition.
package connectivity

// Monitor exposes the current connectivity state and edge-triggered change
// notifications.
type Monitor interface {
	// IsOnline reports the last observed connectivity state.
	IsOnline() bool

	// OnChange registers fn to be invoked on every state transition with the
	// new state. The returned function unregisters the callback; calling it
	// more than once is a no-op.
	OnChange(fn func(online bool)) (unsubscribe func())
}

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_monitor_mock.go -package=mock
