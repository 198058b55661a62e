package refcount

import (
	"go.uber.org/atomic"
)

// Kind tells how a block was constructed and therefore which teardown path it runs.
type Kind int

const (
	// KindInline ...
	KindInline Kind = iota + 1
	// KindPointer ...
	KindPointer
	// KindDeleter ...
	KindDeleter
	// KindAllocator ...
	KindAllocator
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindPointer:
		return "pointer"
	case KindDeleter:
		return "deleter"
	case KindAllocator:
		return "allocator"
	default:
		return "unknown"
	}
}

// Setup describes a block being initialized.
// Destroy runs once when the strong count drops to zero,
// Release runs once when the weak count drops to zero.
type Setup struct {
	Kind    Kind
	Label   string
	Destroy func()
	Release func()

	Observer Observer
	Sequence *Sequence
}

// Block is the control block shared by every handle of one payload.
//
// The strong side holds one implicit weak reference, so weak >= 1 while strong > 0.
type Block struct {
	strong atomic.Int64
	weak   atomic.Int64

	id    uint64
	kind  Kind
	label string

	destroy  func()
	release  func()
	observer Observer
}

// New allocates a block on the heap and initializes it.
func New(setup Setup) *Block {
	b := &Block{}
	b.Init(setup)
	return b
}

// Init prepares a zeroed block, typically one handed out by an Allocator.
// Both counts start at 1.
func (b *Block) Init(setup Setup) {
	seq := setup.Sequence
	if seq == nil {
		seq = DefaultSequence
	}

	b.strong.Store(1)
	b.weak.Store(1)
	b.id = seq.Next()
	b.kind = setup.Kind
	b.label = setup.Label
	b.destroy = setup.Destroy
	b.release = setup.Release
	b.observer = setup.Observer

	if b.observer != nil {
		b.observer.BlockCreated(BlockInfo{
			ID:    b.id,
			Kind:  b.kind,
			Label: b.label,
		})
	}
}

// ID ...
func (b *Block) ID() uint64 {
	return b.id
}

// Kind ...
func (b *Block) Kind() Kind {
	return b.kind
}

// Label ...
func (b *Block) Label() string {
	return b.label
}

// StrongCount returns the number of owning handles.
// The value is a snapshot and may be stale by the time it is used.
func (b *Block) StrongCount() int64 {
	return b.strong.Load()
}

// WeakCount returns the weak count, including the implicit reference held by the strong side.
func (b *Block) WeakCount() int64 {
	return b.weak.Load()
}

// Expired ...
func (b *Block) Expired() bool {
	return b.strong.Load() == 0
}

// IncStrong ...
func (b *Block) IncStrong() {
	n := b.strong.Inc()
	if n <= 1 {
		panic("refcount: strong count incremented from zero")
	}
}

// DecStrong drops one owner. The owner that drives the count to zero destroys
// the payload and then gives up the strong side's implicit weak reference.
func (b *Block) DecStrong() {
	n := b.strong.Dec()
	if n > 0 {
		return
	}
	if n < 0 {
		panic("refcount: strong count below zero")
	}

	if b.destroy != nil {
		b.destroy()
	}
	if b.observer != nil {
		b.observer.PayloadDestroyed(b.id)
	}
	b.DecWeak()
}

// IncWeak ...
func (b *Block) IncWeak() {
	n := b.weak.Inc()
	if n <= 1 {
		panic("refcount: weak count incremented from zero")
	}
}

// DecWeak drops one weak reference. The block must not be touched after the
// last one, the release capability may hand its storage back to an allocator.
func (b *Block) DecWeak() {
	n := b.weak.Dec()
	if n > 0 {
		return
	}
	if n < 0 {
		panic("refcount: weak count below zero")
	}

	if b.observer != nil {
		b.observer.BlockReleased(b.id)
	}
	if b.release != nil {
		b.release()
	}
}

// TryIncStrong adds an owner only if the payload is still alive.
// It never resurrects a block whose strong count has reached zero.
func (b *Block) TryIncStrong() bool {
	for {
		last := b.strong.Load()
		if last == 0 {
			return false
		}
		swapped := b.strong.CompareAndSwap(last, last+1)
		if swapped {
			return true
		}
	}
}
