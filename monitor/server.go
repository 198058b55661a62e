package monitor

import (
	"context"
	"errors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"sync"
)

// ServerCommandType ...
type ServerCommandType string

const (
	// ServerCommandTypeSubscribe ...
	ServerCommandTypeSubscribe ServerCommandType = "subscribe"
)

// ServerCommand ...
type ServerCommand struct {
	Type      ServerCommandType `json:"type"`
	Subscribe *SubscribeCommand `json:"subscribe"`
}

// SubscribeCommand ...
type SubscribeCommand struct {
	LabelPrefix string `json:"labelPrefix"`
}

// WebsocketHandler streams tracker snapshots to every connected client.
type WebsocketHandler struct {
	options trackerOptions

	upgrader websocket.Upgrader
	tracker  *Tracker
	rootCtx  context.Context
	cancel   func()
}

var _ http.Handler = &WebsocketHandler{}

// NewWebsocketHandler ...
func NewWebsocketHandler(tracker *Tracker, options ...Option) *WebsocketHandler {
	ctx, cancel := context.WithCancel(context.Background())

	return &WebsocketHandler{
		options: computeTrackerOptions(options...),
		tracker: tracker,
		rootCtx: ctx,
		cancel:  cancel,
	}
}

// Shutdown does graceful shutdown
func (h *WebsocketHandler) Shutdown() {
	h.cancel()
}

// ServeHTTP ...
func (h *WebsocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r = r.WithContext(ctx)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.options.logger.Error("Fail to upgrade to websocket", zap.Error(err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	sess, ok := h.handShake(conn)
	if !ok {
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	senderDone := make(chan struct{})

	go func() {
		defer wg.Done()

		select {
		case <-h.rootCtx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		defer wg.Done()

		h.waitForClose(ctx, conn)
		cancel()
	}()

	go func() {
		defer close(senderDone)

		h.sendSnapshots(ctx, sess, conn)
		cancel()
	}()

	<-ctx.Done()
	<-senderDone

	// unblocks the reader
	_ = conn.Close()
	wg.Wait()
}

type sessionData struct {
	labelPrefix string
	initVersion Version
}

func validateSubscribeCmd(cmd ServerCommand) error {
	if cmd.Type != ServerCommandTypeSubscribe {
		return errors.New("invalid cmd type, must be 'subscribe'")
	}
	if cmd.Subscribe == nil {
		return errors.New("'subscribe' field must not be empty")
	}
	return nil
}

func filterSnapshot(s Snapshot, labelPrefix string) Snapshot {
	if len(labelPrefix) == 0 {
		return s
	}

	blocks := make([]BlockRecord, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if strings.HasPrefix(b.Label, labelPrefix) {
			blocks = append(blocks, b)
		}
	}
	s.Blocks = blocks
	return s
}

func errorIsCloseNormal(err error) bool {
	var closeErr *websocket.CloseError
	return errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure
}

func (h *WebsocketHandler) handShake(conn *websocket.Conn) (sessionData, bool) {
	logger := h.options.logger

	var cmd ServerCommand
	err := conn.ReadJSON(&cmd)
	if err != nil {
		logger.Error("Error while ReadJSON", zap.Error(err))
		return sessionData{}, false
	}

	err = validateSubscribeCmd(cmd)
	if err != nil {
		logger.Error("Validate Subscribe Command", zap.Error(err))
		return sessionData{}, false
	}

	snapshot := h.tracker.Snapshot()

	err = conn.WriteJSON(filterSnapshot(snapshot, cmd.Subscribe.LabelPrefix))
	if err != nil {
		logger.Error("Error while WriteJSON", zap.Error(err))
		return sessionData{}, false
	}

	return sessionData{
		labelPrefix: cmd.Subscribe.LabelPrefix,
		initVersion: snapshot.Version,
	}, true
}

func (h *WebsocketHandler) waitForClose(ctx context.Context, conn *websocket.Conn) {
	for {
		_, _, err := conn.ReadMessage()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if !errorIsCloseNormal(err) {
				h.options.logger.Error("Error while ReadMessage", zap.Error(err))
			}
			return
		}
	}
}

func (h *WebsocketHandler) sendSnapshots(ctx context.Context, sess sessionData, conn *websocket.Conn) {
	fromVersion := sess.initVersion + 1
	ch := make(chan Snapshot, 1)

	for {
		h.tracker.Watch(WatchRequest{
			FromVersion:  fromVersion,
			ResponseChan: ch,
		})

		select {
		case data := <-ch:
			err := conn.WriteJSON(filterSnapshot(data, sess.labelPrefix))
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				h.options.logger.Error("Error while WriteJSON", zap.Error(err))
				return
			}
			fromVersion = data.Version + 1

		case <-ctx.Done():
			h.tracker.RemoveWatch(ch)
			err := conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				h.options.logger.Debug("Error while close conn", zap.Error(err))
			}
			return
		}
	}
}
