package refcount

// Inline co-locates a block with its payload, so a single allocation backs both.
type Inline[T any] struct {
	Block
	Value T
}
