// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package realtime

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/models"
)

const (
	redialBase = 500 * time.Millisecond
	redialCap  = 30 * time.Second
)

// WebSocket is a [Transport] over a websocket endpoint. Each channel is one
// websocket connection to {address}/channels/{name} carrying JSON-encoded
// [models.ChangeEvent] frames. A dropped connection is redialled with
// exponential backoff until the channel is closed.
type WebSocket struct {
	address string
	logger  *logger.Logger
}

// NewWebSocket builds a websocket transport from the realtime configuration.
func NewWebSocket(cfg config.Realtime, log *logger.Logger) *WebSocket {
	return &WebSocket{
		address: strings.TrimRight(cfg.Address, "/"),
		logger:  log,
	}
}

// OpenChannel implements [Transport].
func (t *WebSocket) OpenChannel(ctx context.Context, name string, onEvent func(models.ChangeEvent), onErr func(error)) (func(), error) {
	channelURL := fmt.Sprintf("%s/channels/%s", t.address, url.PathEscape(name))

	chanCtx, cancel := context.WithCancel(ctx)

	conn, _, err := websocket.Dial(chanCtx, channelURL, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("dial channel %q: %w", name, err)
	}
	t.logger.Debug().Str("channel", name).Msg("channel opened")

	go t.readLoop(chanCtx, conn, channelURL, name, onEvent, onErr)

	var once sync.Once
	return func() {
		once.Do(cancel)
	}, nil
}

// readLoop delivers frames from conn to onEvent until ctx is cancelled.
// On a read failure it reports the error and redials; delivery resumes on
// the new connection.
func (t *WebSocket) readLoop(ctx context.Context, conn *websocket.Conn, channelURL, name string, onEvent func(models.ChangeEvent), onErr func(error)) {
	defer func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var ev models.ChangeEvent
		err := wsjson.Read(ctx, conn, &ev)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			t.logger.Warn().Err(err).Str("channel", name).Msg("channel read failed, redialling")
			onErr(err)

			_ = conn.Close(websocket.StatusGoingAway, "")
			conn, err = t.redial(ctx, channelURL)
			if err != nil {
				return
			}
			t.logger.Debug().Str("channel", name).Msg("channel re-established")
			continue
		}

		onEvent(ev)
	}
}

// redial re-establishes the channel connection with capped exponential
// backoff. It only gives up when ctx is cancelled.
func (t *WebSocket) redial(ctx context.Context, channelURL string) (*websocket.Conn, error) {
	backoff := retry.WithCappedDuration(redialCap, retry.NewExponential(redialBase))

	var conn *websocket.Conn
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, _, err := websocket.Dial(ctx, channelURL, nil)
		if err != nil {
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return conn, nil
}
