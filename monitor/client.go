package monitor

import (
	"context"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"time"
)

// WebsocketClient subscribes to a remote tracker and reconnects until Shutdown.
type WebsocketClient struct {
	url     string
	options clientOptions

	rootCtx context.Context
	cancel  func()

	prevSnapshot *Snapshot
}

// NewWebsocketClient ...
func NewWebsocketClient(url string, options ...ClientOption) *WebsocketClient {
	ctx, cancel := context.WithCancel(context.Background())

	return &WebsocketClient{
		url:     url,
		options: computeClientOptions(options...),

		rootCtx: ctx,
		cancel:  cancel,
	}
}

// Run ...
func (c *WebsocketClient) Run() {
	for {
		c.runInLoop()
		if c.rootCtx.Err() != nil {
			return
		}

		select {
		case <-time.After(c.options.retryDuration):
		case <-c.rootCtx.Done():
			return
		}
	}
}

func (c *WebsocketClient) closeConnWhenShutdown(ctx context.Context, conn *websocket.Conn) {
	go func() {
		select {
		case <-ctx.Done():
		case <-c.rootCtx.Done():
			err := conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				c.options.logger.Error("Error while close conn", zap.Error(err))
			}
		}
	}()
}

func (c *WebsocketClient) runInLoop() {
	logger := c.options.logger
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn, _, err := c.options.dialer.DialContext(c.rootCtx, c.url, nil)
	if err != nil {
		logger.Error("Dial server failed", zap.Error(err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	err = conn.WriteJSON(ServerCommand{
		Type: ServerCommandTypeSubscribe,
		Subscribe: &SubscribeCommand{
			LabelPrefix: c.options.labelPrefix,
		},
	})
	if err != nil {
		logger.Error("Error while WriteJSON", zap.Error(err))
		return
	}

	c.closeConnWhenShutdown(ctx, conn)

	for {
		continuing := c.runSingleHandlingLoop(conn)
		if !continuing {
			return
		}
	}
}

func (c *WebsocketClient) runSingleHandlingLoop(conn *websocket.Conn) bool {
	var data Snapshot
	err := conn.ReadJSON(&data)
	if err != nil {
		if errorIsCloseNormal(err) {
			return false
		}
		c.options.logger.Error("Error while ReadJSON", zap.Error(err))
		return false
	}

	if snapshotChanged(c.prevSnapshot, data) {
		c.options.snapshotListener(data)
	}
	c.prevSnapshot = &data
	return true
}

// Shutdown ...
func (c *WebsocketClient) Shutdown() {
	c.cancel()
}

// snapshotChanged ignores the version, a reconnect to the same tracker
// resends an identical block list.
func snapshotChanged(prev *Snapshot, current Snapshot) bool {
	if prev == nil {
		return true
	}
	if prev.TrackerID != current.TrackerID {
		return true
	}
	if prev.Totals != current.Totals {
		return true
	}
	if len(prev.Blocks) != len(current.Blocks) {
		return true
	}
	for i := range current.Blocks {
		if prev.Blocks[i] != current.Blocks[i] {
			return true
		}
	}
	return false
}
