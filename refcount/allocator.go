package refcount

// Allocator provides storage for n elements of E.
//
// Deallocate receives exactly the slice and count returned by a matching
// Allocate call. An allocator only ever manages the control block's memory
// (optionally together with an inline payload), never an externally owned payload.
type Allocator[E any] interface {
	Allocate(n int) []E
	Deallocate(p []E, n int)
}
