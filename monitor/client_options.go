package monitor

import (
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"time"
)

// ClientSnapshotListener is called for each received snapshot that differs from the previous one
type ClientSnapshotListener func(snapshot Snapshot)

type clientOptions struct {
	dialer           *websocket.Dialer
	snapshotListener ClientSnapshotListener
	logger           *zap.Logger
	retryDuration    time.Duration
	labelPrefix      string
}

// ClientOption ...
type ClientOption func(opts *clientOptions)

func computeClientOptions(options ...ClientOption) clientOptions {
	opts := clientOptions{
		dialer:           websocket.DefaultDialer,
		snapshotListener: func(snapshot Snapshot) {},
		logger:           zap.NewNop(),
		retryDuration:    30 * time.Second,
	}
	for _, o := range options {
		o(&opts)
	}
	return opts
}

// WithClientSnapshotListener ...
func WithClientSnapshotListener(listener ClientSnapshotListener) ClientOption {
	return func(opts *clientOptions) {
		opts.snapshotListener = listener
	}
}

// WithClientDialer ...
func WithClientDialer(dialer *websocket.Dialer) ClientOption {
	return func(opts *clientOptions) {
		opts.dialer = dialer
	}
}

// WithClientLogger ...
func WithClientLogger(logger *zap.Logger) ClientOption {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithClientRetryDuration ...
func WithClientRetryDuration(d time.Duration) ClientOption {
	return func(opts *clientOptions) {
		opts.retryDuration = d
	}
}

// WithClientLabelPrefix only receives blocks whose label starts with prefix
func WithClientLabelPrefix(prefix string) ClientOption {
	return func(opts *clientOptions) {
		opts.labelPrefix = prefix
	}
}
