// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package realtime delivers server-side change events to subscribers over a
// push channel.
package realtime

import (
	"context"

	"github.com/offlinekit/docsync/models"
)

// Transport opens named push channels on the realtime endpoint. A channel
// carries [models.ChangeEvent] values for one collection or one document.
type Transport interface {
	// OpenChannel connects the named channel and starts delivering its
	// events to onEvent. Transport-level failures that interrupt delivery
	// are reported to onErr; the transport then attempts to re-establish
	// the channel on its own. The returned function closes the channel and
	// stops delivery; calling it more than once is a no-op.
	//
	// onEvent and onErr are invoked from the transport's reader goroutine
	// and must not block for long.
	OpenChannel(ctx context.Context, name string, onEvent func(models.ChangeEvent), onErr func(error)) (close func(), err error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/realtime_transport_mock.go -package=mock
