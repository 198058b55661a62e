package sharedref

import (
	"github.com/QuangTung97/sharedref/refcount"
)

type selfBinder interface {
	bindSelf(val interface{}, blk *refcount.Block)
	unbindSelf(blk *refcount.Block)
}

// EnableSharedFromThis lets a payload hand out owners of itself.
// Embed it in the payload struct, with P the handle type, e.g.
//
//	type Session struct {
//		sharedref.EnableSharedFromThis[*Session]
//	}
//
// Every constructor in this package binds it to the new control block.
// A struct copied from an owned payload is rebound when the copy is adopted.
type EnableSharedFromThis[P any] struct {
	weakThis Weak[P]
}

func (e *EnableSharedFromThis[P]) bindSelf(val interface{}, blk *refcount.Block) {
	v, ok := val.(P)
	if !ok {
		return
	}

	if e.weakThis.blk != nil && interface{}(e.weakThis.val) != val {
		// copied from another payload, the weak count belongs to the original
		e.weakThis = Weak[P]{}
	}

	if e.weakThis.blk != nil && !e.weakThis.Expired() {
		return
	}

	e.weakThis.Release()
	blk.IncWeak()
	e.weakThis = Weak[P]{
		val: v,
		blk: blk,
	}
}

// unbindSelf runs from the destroy capability of blk.
// A binding to any other block is kept.
func (e *EnableSharedFromThis[P]) unbindSelf(blk *refcount.Block) {
	if e.weakThis.blk != blk {
		return
	}
	e.weakThis.Release()
}

// SharedFromThis returns a new owner of the embedding payload, or
// ErrExpiredReference when it is not owned by any Shared.
func (e *EnableSharedFromThis[P]) SharedFromThis() (Shared[P], error) {
	return FromWeak(&e.weakThis)
}

// WeakFromThis ...
func (e *EnableSharedFromThis[P]) WeakFromThis() Weak[P] {
	return e.weakThis.Clone()
}
