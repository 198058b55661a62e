package sharedref

import (
	"github.com/QuangTung97/sharedref/refcount"
)

// Weak observes a payload without owning it. The zero value is the empty handle.
type Weak[P any] struct {
	val P
	blk *refcount.Block
}

// Clone ...
func (w *Weak[P]) Clone() Weak[P] {
	if w.blk == nil {
		return Weak[P]{}
	}
	w.blk.IncWeak()
	return Weak[P]{
		val: w.val,
		blk: w.blk,
	}
}

// Move ...
func (w *Weak[P]) Move() Weak[P] {
	result := *w
	*w = Weak[P]{}
	return result
}

// Release drops the weak reference and empties w. The control block is
// released by whichever of the last weak or the last strong reference goes last.
func (w *Weak[P]) Release() {
	blk := w.blk
	*w = Weak[P]{}
	if blk != nil {
		blk.DecWeak()
	}
}

// Reset ...
func (w *Weak[P]) Reset() {
	w.Release()
}

// UseCount returns the number of owners of the observed payload.
func (w *Weak[P]) UseCount() int64 {
	if w.blk == nil {
		return 0
	}
	return w.blk.StrongCount()
}

// Expired reports whether the payload has been torn down. An empty handle is expired.
//
// A false result is stale as soon as it is returned: another goroutine may
// release the last owner right after. Never use Expired to decide that a later
// Lock will succeed, check the handle Lock returns instead.
func (w *Weak[P]) Expired() bool {
	if w.blk == nil {
		return true
	}
	return w.blk.Expired()
}

// Lock returns a new owner of the payload, or the empty handle if the payload
// is already gone. This is the only race free way to go from weak to strong.
func (w *Weak[P]) Lock() Shared[P] {
	if w.blk == nil {
		return Shared[P]{}
	}
	if !w.blk.TryIncStrong() {
		return Shared[P]{}
	}
	return Shared[P]{
		val: w.val,
		blk: w.blk,
	}
}
