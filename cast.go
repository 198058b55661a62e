package sharedref

// Alias returns an owner of s's payload that exposes v instead, e.g. a field of the payload.
// The alias keeps the whole payload alive. An empty s yields the empty handle.
func Alias[U, P any](s *Shared[P], v U) Shared[U] {
	if s.blk == nil {
		return Shared[U]{}
	}
	s.blk.IncStrong()
	return Shared[U]{
		val: v,
		blk: s.blk,
	}
}

// StaticCast converts the payload with conv and shares ownership with s.
//
// Upcasts are written as conversions the compiler checks, e.g.
//
//	animal := StaticCast(&dog, func(d *Dog) Animal { return d })
//
// For a downcast conv is a type assertion the caller guarantees to hold.
// Teardown is unaffected by the cast: it stays bound to the type the first
// handle was constructed with.
func StaticCast[U, P any](s *Shared[P], conv func(P) U) Shared[U] {
	if s.blk == nil {
		return Shared[U]{}
	}
	v := conv(s.val)
	s.blk.IncStrong()
	return Shared[U]{
		val: v,
		blk: s.blk,
	}
}

// DynamicCast shares ownership with s if its payload is a U,
// otherwise it returns the empty handle.
func DynamicCast[U, P any](s *Shared[P]) Shared[U] {
	if s.blk == nil {
		return Shared[U]{}
	}
	v, ok := interface{}(s.val).(U)
	if !ok {
		return Shared[U]{}
	}
	s.blk.IncStrong()
	return Shared[U]{
		val: v,
		blk: s.blk,
	}
}
