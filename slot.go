package sharedref

import (
	"github.com/QuangTung97/sharedref/refcount"
	"go.uber.org/atomic"
)

// Slot is a shared ownership slot that can be loaded and replaced from many
// goroutines at once, which a plain Shared variable never allows.
//
// Load always returns a payload and a control block of the same generation,
// and a Load that observes a Store also observes every write the storing
// goroutine made before it.
//
// Slot protects the ownership bookkeeping only. Two goroutines mutating the
// payload through handles they loaded still race with each other.
//
// The zero value is an empty slot. A Slot must not be copied after first use.
type Slot[P any] struct {
	lock slotLock

	val atomic.Pointer[P]
	blk *refcount.Block
}

// NewSlot creates a slot owning h's reference, h becomes empty.
func NewSlot[P any](h *Shared[P]) *Slot[P] {
	s := &Slot[P]{}
	s.publish(h.Move())
	return s
}

func (s *Slot[P]) publish(h Shared[P]) Shared[P] {
	v := h.val

	s.lock.lock()
	old := s.val.Swap(&v)
	oldBlk := s.blk
	s.blk = h.blk
	s.lock.unlock()

	var oldVal P
	if old != nil {
		oldVal = *old
	}
	return Shared[P]{
		val: oldVal,
		blk: oldBlk,
	}
}

// Load returns a new owner of the current payload, empty if the slot is empty.
func (s *Slot[P]) Load() Shared[P] {
	s.lock.lock()
	blk := s.blk
	if blk == nil {
		s.lock.unlock()
		return Shared[P]{}
	}
	v := s.val.Load()
	blk.IncStrong()
	s.lock.unlock()

	return Shared[P]{
		val: *v,
		blk: blk,
	}
}

// Store replaces the slot's contents with h, taking over h's reference
// (h becomes empty). The previous contents are released after the lock is
// dropped, so a payload teardown never runs while other goroutines wait.
func (s *Slot[P]) Store(h *Shared[P]) {
	old := s.publish(h.Move())
	old.Release()
}

// Swap is Store returning the previous contents instead of releasing them.
func (s *Slot[P]) Swap(h *Shared[P]) Shared[P] {
	return s.publish(h.Move())
}

// Release drops the slot's reference. No other goroutine may use the slot
// at that point, this is not checked.
func (s *Slot[P]) Release() {
	old := s.publish(Shared[P]{})
	old.Release()
}
