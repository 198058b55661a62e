// Package sharedref provides reference-counted shared ownership of resources
// whose teardown must happen at a precise point rather than whenever the
// garbage collector gets to them.
//
// A Shared handle owns its payload together with every other Shared copied from
// it. The copy whose Release drops the last strong reference tears the payload
// down: it calls Close for io.Closer payloads, the user deleter, or hands memory
// back to an allocator, depending on how the first handle was constructed.
// Weak handles observe a payload without keeping it alive.
//
// Shared and Weak values are not safe for concurrent mutation: two goroutines
// must never Release/Assign/Move the same handle variable while another reads
// it. A handle that is replaced after being published to other goroutines must
// live in a Slot.
package sharedref

import (
	"errors"
)

// ErrExpiredReference is returned when a strong handle is requested from a
// weak one whose payload has already been torn down.
var ErrExpiredReference = errors.New("sharedref: expired reference")

// ErrNullPayloadAccess is the panic value of Deref on an empty handle in debug builds.
var ErrNullPayloadAccess = errors.New("sharedref: access to null payload")
