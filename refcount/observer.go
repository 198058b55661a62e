package refcount

//go:generate moq -out observer_mocks_test.go . Observer

// BlockInfo ...
type BlockInfo struct {
	ID    uint64
	Kind  Kind
	Label string
}

// Observer is notified about the lifecycle of blocks it was attached to.
// Calls happen on the goroutine that caused the transition, so implementations
// must be safe for concurrent use and must not block.
type Observer interface {
	BlockCreated(info BlockInfo)
	PayloadDestroyed(id uint64)
	BlockReleased(id uint64)
}
