package rope

import (
	g "github.com/zyedidia/generic"
)

// Equals reports whether a and b contain the same elements in the same
// order. It short-circuits on length, then compares the elements one
// position at a time through At.
func Equals[T comparable](a, b *Rope[T]) bool {
	if a.Length() != b.Length() {
		return false
	}
	n := a.Length()
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// HashCode returns a content hash of r, combining element hashes with an
// FNV-1a style mix so that Equals(a, b) implies a.HashCode() == b.HashCode().
// Hashing falls back to reflection (via generic.GetHasher) the first time
// it's needed for T and is cached per call; it only supports the primitive
// comparable kinds GetHasher recognizes (integers, floats, strings, and
// pointer-sized types) and panics for anything else, such as a struct T.
func (r *Rope[T]) HashCode() uint64 {
	hasher := g.GetHasher[T]()
	h := g.HashUint64(uint64(r.Length()))
	r.Each(func(v T) {
		h = combine(h, hasher(v))
	})
	return h
}

func combine(seed, v uint64) uint64 {
	// FNV-1a style incremental combine, matching the mixing constants used
	// elsewhere in this dependency's own hash helpers.
	const prime = 0x100000001b3
	seed ^= v
	seed *= prime
	return seed
}
