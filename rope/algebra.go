package rope

import g "github.com/zyedidia/generic"

// Concat returns a new rope containing a's elements followed by b's. Either
// argument may be empty; both are returned unmodified and may continue to be
// used independently. The result is rebalanced if the concatenation would
// otherwise violate the Fibonacci balance predicate.
func Concat[T comparable](a, b *Rope[T]) *Rope[T] {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	r := rawConcat(a, b)
	if !r.IsBalanced() {
		return r.Balanced()
	}
	return r
}

// rawConcat joins a and b into a single node (merging into one leaf when
// both sides are leaves and the combined length still fits in MaxLeaf)
// without checking or restoring the balance invariant. It exists so
// internal tree-building (FromBuffer, Balanced) can compose many
// concatenations without quadratic repeated rebalancing.
func rawConcat[T comparable](a, b *Rope[T]) *Rope[T] {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	if a.kind == leafKind && b.kind == leafKind && a.length+b.length <= MaxLeaf {
		merged := make([]T, 0, a.length+b.length)
		merged = append(merged, a.elems...)
		merged = append(merged, b.elems...)
		return newLeaf(merged)
	}
	return &Rope[T]{
		kind:   nodeKind,
		length: a.length + b.length,
		depth:  1 + g.Max(a.depth, b.depth),
		left:   a,
		right:  b,
	}
}

// Split divides r into two ropes at position i: the first holds [0, i), the
// second [i, Length()). It panics with an *OutOfRange if i is not in
// [0, Length()].
func (r *Rope[T]) Split(i int) (*Rope[T], *Rope[T]) {
	if i < 0 || i > r.Length() {
		panic(outOfRange(i, r.Length()))
	}
	if i == 0 {
		return Empty[T](), r
	}
	if i == r.Length() {
		return r, Empty[T]()
	}
	if r.kind == leafKind {
		return newLeaf(r.elems[:i]), newLeaf(r.elems[i:])
	}
	if i == r.left.length {
		return r.left, r.right
	}
	if i < r.left.length {
		l, rr := r.left.Split(i)
		return l, Concat(rr, r.right)
	}
	l, rr := r.right.Split(i - r.left.length)
	return Concat(r.left, l), rr
}

// Slice returns the sub-rope [start, start+count). It panics with an
// *OutOfRange if the requested span falls outside [0, Length()], and with
// an *InvalidArgument if count is negative.
func (r *Rope[T]) Slice(start, count int) *Rope[T] {
	if count < 0 {
		panic(invalidArgument("negative count"))
	}
	_, right := r.Split(start)
	left, _ := right.Split(count)
	return left
}

// Insert returns a new rope with v spliced in starting at position i. It
// panics with an *OutOfRange if i is not in [0, Length()].
func (r *Rope[T]) Insert(i int, v *Rope[T]) *Rope[T] {
	left, right := r.Split(i)
	return Concat(Concat(left, v), right)
}

// Remove returns a new rope with the count elements starting at position i
// removed. It panics with an *OutOfRange if the span falls outside
// [0, Length()], and with an *InvalidArgument if count is negative.
func (r *Rope[T]) Remove(i, count int) *Rope[T] {
	if count < 0 {
		panic(invalidArgument("negative count"))
	}
	left, rest := r.Split(i)
	_, right := rest.Split(count)
	return Concat(left, right)
}

// AddRange appends other to the end of r. Equivalent to Concat(r, other).
func (r *Rope[T]) AddRange(other *Rope[T]) *Rope[T] {
	return Concat(r, other)
}
