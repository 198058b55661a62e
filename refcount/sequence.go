package refcount

import (
	"go.uber.org/atomic"
)

// Sequence hands out monotonically increasing ids, starting at 1.
type Sequence struct {
	last atomic.Uint64
}

// DefaultSequence is the process-wide sequence used when none is injected.
// It starts at zero and is never reset.
var DefaultSequence = NewSequence()

// NewSequence ...
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next ...
func (s *Sequence) Next() uint64 {
	return s.last.Inc()
}

// Last returns the most recently issued id, 0 if none.
func (s *Sequence) Last() uint64 {
	return s.last.Load()
}
