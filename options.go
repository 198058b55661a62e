package sharedref

import (
	"github.com/QuangTung97/sharedref/refcount"
	"go.uber.org/zap"
)

type sharedOptions struct {
	logger   *zap.Logger
	observer refcount.Observer
	sequence *refcount.Sequence
	label    string
}

// Option ...
type Option func(opts *sharedOptions)

func computeSharedOptions(options ...Option) sharedOptions {
	result := sharedOptions{
		logger:   zap.NewNop(),
		sequence: refcount.DefaultSequence,
	}
	for _, o := range options {
		o(&result)
	}
	return result
}

// WithLogger sets the logger used to report payload teardown failures
func WithLogger(logger *zap.Logger) Option {
	return func(opts *sharedOptions) {
		opts.logger = logger
	}
}

// WithObserver attaches an observer, e.g. a monitor.Tracker, to the created block
func WithObserver(observer refcount.Observer) Option {
	return func(opts *sharedOptions) {
		opts.observer = observer
	}
}

// WithSequence ...
func WithSequence(seq *refcount.Sequence) Option {
	return func(opts *sharedOptions) {
		opts.sequence = seq
	}
}

// WithLabel overrides the block label, which defaults to the payload type name
func WithLabel(label string) Option {
	return func(opts *sharedOptions) {
		opts.label = label
	}
}
