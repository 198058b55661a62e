package sharedref

import (
	"github.com/QuangTung97/sharedref/refcount"
)

// Shared is an owning handle. The zero value is the empty handle.
//
// Copying a Shared struct by assignment does NOT add an owner, use Clone.
// Every handle obtained from a constructor, Clone, Lock, a cast or Slot.Load
// must eventually be Released (or moved into something that releases it).
type Shared[P any] struct {
	val P
	blk *refcount.Block
}

// Get returns the payload, or the zero value of P for an empty handle.
func (s *Shared[P]) Get() P {
	return s.val
}

// Deref returns the payload of a handle that must not be empty.
// Built with the sharedref_debug tag it panics with ErrNullPayloadAccess
// on an empty handle, otherwise using the result is the caller's problem.
func (s *Shared[P]) Deref() P {
	if debugChecks && s.blk == nil {
		panic(ErrNullPayloadAccess)
	}
	return s.val
}

// IsEmpty ...
func (s *Shared[P]) IsEmpty() bool {
	return s.blk == nil
}

// UseCount returns the number of owners, 0 for an empty handle.
func (s *Shared[P]) UseCount() int64 {
	if s.blk == nil {
		return 0
	}
	return s.blk.StrongCount()
}

// SameOwner reports whether both handles share one control block.
// Two empty handles are considered the same owner.
func (s *Shared[P]) SameOwner(other *Shared[P]) bool {
	return s.blk == other.blk
}

// Clone ...
func (s *Shared[P]) Clone() Shared[P] {
	if s.blk == nil {
		return Shared[P]{}
	}
	s.blk.IncStrong()
	return Shared[P]{
		val: s.val,
		blk: s.blk,
	}
}

// Move transfers ownership out of s without touching the counts, s becomes empty.
func (s *Shared[P]) Move() Shared[P] {
	result := *s
	*s = Shared[P]{}
	return result
}

// Release gives up this handle's ownership and empties it.
// Calling it on an empty handle does nothing.
func (s *Shared[P]) Release() {
	blk := s.blk
	*s = Shared[P]{}
	if blk != nil {
		blk.DecStrong()
	}
}

// Reset assigns the empty handle to s, same as Release.
func (s *Shared[P]) Reset() {
	s.Release()
}

// Assign makes s another owner of other's payload, releasing what s held.
func (s *Shared[P]) Assign(other *Shared[P]) {
	tmp := other.Clone()
	s.Release()
	*s = tmp
}

// MoveFrom moves other into s, releasing what s held. other becomes empty.
func (s *Shared[P]) MoveFrom(other *Shared[P]) {
	if s == other {
		return
	}
	tmp := other.Move()
	s.Release()
	*s = tmp
}

// Swap ...
func (s *Shared[P]) Swap(other *Shared[P]) {
	*s, *other = *other, *s
}

// Weak returns a weak observer of the payload.
func (s *Shared[P]) Weak() Weak[P] {
	if s.blk == nil {
		return Weak[P]{}
	}
	s.blk.IncWeak()
	return Weak[P]{
		val: s.val,
		blk: s.blk,
	}
}

// FromWeak returns an owner of w's payload, or ErrExpiredReference if the
// payload is gone (or w is empty). Unlike Weak.Lock it never yields an empty handle silently.
func FromWeak[P any](w *Weak[P]) (Shared[P], error) {
	s := w.Lock()
	if s.IsEmpty() {
		return Shared[P]{}, ErrExpiredReference
	}
	return s, nil
}
