package sharedref

import (
	"fmt"
	"github.com/QuangTung97/sharedref/refcount"
	"go.uber.org/zap"
	"io"
)

func (o sharedOptions) labelFor(payload interface{}) string {
	if o.label != "" {
		return o.label
	}
	return fmt.Sprintf("%T", payload)
}

func (o sharedOptions) setup(
	kind refcount.Kind, payload interface{}, destroy func(), release func(),
) refcount.Setup {
	return refcount.Setup{
		Kind:     kind,
		Label:    o.labelFor(payload),
		Destroy:  destroy,
		Release:  release,
		Observer: o.observer,
		Sequence: o.sequence,
	}
}

func closePayload(payload interface{}, blk *refcount.Block, logger *zap.Logger) {
	closer, ok := payload.(io.Closer)
	if !ok {
		return
	}

	err := closer.Close()
	if err != nil {
		logger.Error("Error while closing payload",
			zap.Uint64("block", blk.ID()),
			zap.String("label", blk.Label()),
			zap.Error(err),
		)
	}
}

// unbindAfter makes destroy also drop the weak self reference to blk of
// payloads embedding EnableSharedFromThis.
func unbindAfter(payload interface{}, blk *refcount.Block, destroy func()) func() {
	binder, ok := payload.(selfBinder)
	if !ok {
		return destroy
	}
	return func() {
		destroy()
		binder.unbindSelf(blk)
	}
}

func adopt[T any](p *T, blk *refcount.Block) Shared[*T] {
	if binder, ok := interface{}(p).(selfBinder); ok {
		binder.bindSelf(p, blk)
	}
	return Shared[*T]{
		val: p,
		blk: blk,
	}
}

func initInline[T any](
	c *refcount.Inline[T], kind refcount.Kind, opts sharedOptions, release func(),
) {
	p := &c.Value
	teardown := unbindAfter(p, &c.Block, func() {
		closePayload(p, &c.Block, opts.logger)
	})

	c.Init(opts.setup(kind, p, func() {
		teardown()
		var zero T
		c.Value = zero
	}, release))
}

// New adopts p. The payload is closed when the last owner releases it,
// if it implements io.Closer. A nil p yields the empty handle.
func New[T any](p *T, options ...Option) Shared[*T] {
	if p == nil {
		return Shared[*T]{}
	}
	opts := computeSharedOptions(options...)

	blk := &refcount.Block{}
	destroy := unbindAfter(p, blk, func() {
		closePayload(p, blk, opts.logger)
	})
	blk.Init(opts.setup(refcount.KindPointer, p, destroy, nil))
	return adopt(p, blk)
}

// NewWithDeleter adopts p and runs deleter(p) when the last owner releases it.
// The deleter alone is responsible for the payload's teardown.
// A nil p yields the empty handle and the deleter is never called.
func NewWithDeleter[T any](p *T, deleter func(p *T), options ...Option) Shared[*T] {
	if p == nil {
		return Shared[*T]{}
	}
	if deleter == nil {
		return New(p, options...)
	}
	opts := computeSharedOptions(options...)

	blk := &refcount.Block{}
	destroy := unbindAfter(p, blk, func() {
		deleter(p)
	})
	blk.Init(opts.setup(refcount.KindDeleter, p, destroy, nil))
	return adopt(p, blk)
}

// NewWithAllocator is NewWithDeleter with the control block taken from allocator
// and handed back to it once the last weak reference is gone.
// A nil deleter closes io.Closer payloads, as New does.
func NewWithAllocator[T any](
	p *T, deleter func(p *T), allocator refcount.Allocator[refcount.Block], options ...Option,
) Shared[*T] {
	if p == nil {
		return Shared[*T]{}
	}
	opts := computeSharedOptions(options...)

	mem := allocator.Allocate(1)
	blk := &mem[0]

	teardown := func() {
		closePayload(p, blk, opts.logger)
	}
	if deleter != nil {
		teardown = func() {
			deleter(p)
		}
	}

	blk.Init(opts.setup(refcount.KindAllocator, p, unbindAfter(p, blk, teardown), func() {
		allocator.Deallocate(mem, 1)
	}))
	return adopt(p, blk)
}

// Make stores v together with its control block in a single allocation.
func Make[T any](v T, options ...Option) Shared[*T] {
	opts := computeSharedOptions(options...)

	c := &refcount.Inline[T]{Value: v}
	initInline(c, refcount.KindInline, opts, nil)
	return adopt(&c.Value, &c.Block)
}

// MakeWithAllocator is Make with the combined storage taken from allocator.
func MakeWithAllocator[T any](
	allocator refcount.Allocator[refcount.Inline[T]], v T, options ...Option,
) Shared[*T] {
	opts := computeSharedOptions(options...)

	mem := allocator.Allocate(1)
	c := &mem[0]
	c.Value = v

	initInline(c, refcount.KindAllocator, opts, func() {
		allocator.Deallocate(mem, 1)
	})
	return adopt(&c.Value, &c.Block)
}
