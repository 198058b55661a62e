// Package alloc provides an allocator family for control blocks and inline
// payloads. Pools of one family share an id and statistics, and Rebind derives
// a pool for another element type from an existing one.
package alloc

import (
	"fmt"
	"github.com/QuangTung97/sharedref/refcount"
	"github.com/docker/go-units"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"sync"
	"unsafe"
)

// Stats ...
type Stats struct {
	Allocs     int64
	Frees      int64
	BytesInUse int64
}

func (s Stats) String() string {
	return fmt.Sprintf("allocs=%d frees=%d in-use=%s",
		s.Allocs, s.Frees, units.HumanSize(float64(s.BytesInUse)))
}

// Family groups pools that are rebound from each other.
type Family struct {
	id      uint64
	name    string
	options familyOptions

	allocs atomic.Int64
	frees  atomic.Int64
	bytes  atomic.Int64
}

// NewFamily ...
func NewFamily(name string, options ...FamilyOption) *Family {
	opts := computeFamilyOptions(options...)
	f := &Family{
		id:      opts.sequence.Next(),
		name:    name,
		options: opts,
	}
	opts.logger.Debug("Allocator family created",
		zap.Uint64("family", f.id), zap.String("name", name))
	return f
}

// ID ...
func (f *Family) ID() uint64 {
	return f.id
}

// Name ...
func (f *Family) Name() string {
	return f.name
}

// Stats returns a snapshot of the family's counters.
func (f *Family) Stats() Stats {
	return Stats{
		Allocs:     f.allocs.Load(),
		Frees:      f.frees.Load(),
		BytesInUse: f.bytes.Load(),
	}
}

// Pool allocates elements of E on behalf of a family.
// Single element allocations are recycled, larger ones are left to the GC.
type Pool[E any] struct {
	family   *Family
	elemSize int64
	free     sync.Pool
}

var _ refcount.Allocator[refcount.Block] = &Pool[refcount.Block]{}

// NewPool ...
func NewPool[E any](family *Family) *Pool[E] {
	var zero E
	return &Pool[E]{
		family:   family,
		elemSize: int64(unsafe.Sizeof(zero)),
		free: sync.Pool{
			New: func() interface{} { return new([1]E) },
		},
	}
}

// Rebind returns a pool of U in the same family as p.
func Rebind[U, E any](p *Pool[E]) *Pool[U] {
	return NewPool[U](p.family)
}

// Family ...
func (p *Pool[E]) Family() *Family {
	return p.family
}

// Allocate ...
func (p *Pool[E]) Allocate(n int) []E {
	if n <= 0 {
		panic("alloc: allocate size must be positive")
	}

	var mem []E
	if n == 1 {
		mem = p.free.Get().(*[1]E)[:]
	} else {
		mem = make([]E, n)
	}

	p.family.allocs.Inc()
	p.family.bytes.Add(int64(n) * p.elemSize)
	return mem
}

// Deallocate zeroes mem and recycles it. n must match the Allocate call.
func (p *Pool[E]) Deallocate(mem []E, n int) {
	if len(mem) != n {
		p.family.options.logger.Error("Deallocate size mismatch",
			zap.Uint64("family", p.family.id),
			zap.Int("len", len(mem)),
			zap.Int("n", n),
		)
		panic("alloc: deallocate size mismatch")
	}

	var zero E
	for i := range mem {
		mem[i] = zero
	}

	p.family.frees.Inc()
	p.family.bytes.Sub(int64(n) * p.elemSize)

	if n == 1 {
		p.free.Put((*[1]E)(mem))
	}
}
