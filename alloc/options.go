package alloc

import (
	"github.com/QuangTung97/sharedref/refcount"
	"go.uber.org/zap"
)

type familyOptions struct {
	logger   *zap.Logger
	sequence *refcount.Sequence
}

// FamilyOption ...
type FamilyOption func(opts *familyOptions)

// familySequence numbers families of the process, independent from block ids.
var familySequence = refcount.NewSequence()

func computeFamilyOptions(options ...FamilyOption) familyOptions {
	result := familyOptions{
		logger:   zap.NewNop(),
		sequence: familySequence,
	}
	for _, o := range options {
		o(&result)
	}
	return result
}

// WithLogger ...
func WithLogger(logger *zap.Logger) FamilyOption {
	return func(opts *familyOptions) {
		opts.logger = logger
	}
}

// WithSequence sets where family ids come from
func WithSequence(seq *refcount.Sequence) FamilyOption {
	return func(opts *familyOptions) {
		opts.sequence = seq
	}
}
