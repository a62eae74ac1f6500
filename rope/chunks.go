package rope

import (
	"github.com/cflag/rope/iter"
	"github.com/cflag/rope/stack"
)

// Chunk is a read-only view onto one leaf's backing buffer, tagged with its
// offset within the rope that produced it. Callers must not mutate Elems.
type Chunk[T comparable] struct {
	Offset int
	Elems  []T
}

// ToChunks returns a lazily-advancing, restartable iterator over the
// rope's leaves in left-to-right order. Descent uses an explicit stack
// bounded by the rope's depth rather than recursion, so walking a
// maximally-deep rope never grows the Go call stack.
func (r *Rope[T]) ToChunks() iter.Iter[Chunk[T]] {
	pending := stack.New[*Rope[T]]()
	pending.Push(r)
	offset := 0

	return func() (Chunk[T], bool) {
		for pending.Size() > 0 {
			n := pending.Pop()
			if n.IsEmpty() {
				continue
			}
			if n.kind == leafKind {
				c := Chunk[T]{Offset: offset, Elems: n.elems}
				offset += n.length
				return c, true
			}
			pending.Push(n.right)
			pending.Push(n.left)
		}
		var zero Chunk[T]
		return zero, false
	}
}

// Each calls fn once per element, in order.
func (r *Rope[T]) Each(fn func(v T)) {
	r.ToChunks().For(func(c Chunk[T]) {
		for _, v := range c.Elems {
			fn(v)
		}
	})
}
