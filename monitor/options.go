package monitor

import (
	"go.uber.org/zap"
	"time"
)

type trackerOptions struct {
	retention time.Duration
	logger    *zap.Logger
}

// Option ...
type Option func(opts *trackerOptions)

func computeTrackerOptions(options ...Option) trackerOptions {
	result := trackerOptions{
		retention: 30 * time.Second,
		logger:    zap.NewNop(),
	}
	for _, o := range options {
		o(&result)
	}
	return result
}

// WithRetention sets how long released blocks stay visible in snapshots, 0 drops them at once
func WithRetention(d time.Duration) Option {
	return func(opts *trackerOptions) {
		opts.retention = d
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) Option {
	return func(opts *trackerOptions) {
		opts.logger = logger
	}
}
