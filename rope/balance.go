package rope

import "github.com/cflag/rope/stack"

// IsBalanced reports whether r satisfies the Fibonacci balance predicate
// length >= Fib(depth+2). Concat checks this after every join and calls
// Balanced on the result when it fails, which keeps Depth() bounded by
// MaxDepth for any rope reachable through this package's public
// operations.
func (r *Rope[T]) IsBalanced() bool {
	if r.depth > MaxDepth {
		return false
	}
	return uint64(r.length) >= minLengthForDepth(r.depth)
}

// Balanced returns a rope with the same elements as r, rebalanced if
// necessary. If r is already balanced it is returned unchanged.
func (r *Rope[T]) Balanced() *Rope[T] {
	if r.IsBalanced() {
		return r
	}
	return rebalanceLeaves(collectLeaves(r))
}

// collectLeaves walks r's leaves in left-to-right order using an explicit
// stack bounded by r's depth, rather than recursion.
func collectLeaves[T comparable](r *Rope[T]) []*Rope[T] {
	if r.IsEmpty() {
		return nil
	}
	leaves := make([]*Rope[T], 0, r.length/MaxLeaf+1)
	pending := stack.New[*Rope[T]]()
	pending.Push(r)
	for pending.Size() > 0 {
		n := pending.Pop()
		if n.IsEmpty() {
			continue
		}
		if n.kind == leafKind {
			leaves = append(leaves, n)
			continue
		}
		pending.Push(n.right)
		pending.Push(n.left)
	}
	return leaves
}

// rebalanceLeaves folds an ordered run of leaves into a balanced tree using
// a merge stack: each incoming leaf absorbs any already-stacked segment
// that is no larger than itself before being pushed, which keeps segment
// sizes on the stack growing roughly like the Fibonacci sequence from
// bottom to top and bounds the final tree's depth logarithmically in the
// total length.
func rebalanceLeaves[T comparable](leaves []*Rope[T]) *Rope[T] {
	if len(leaves) == 0 {
		return Empty[T]()
	}
	merge := stack.New[*Rope[T]]()
	for _, leaf := range leaves {
		x := leaf
		for merge.Size() > 0 && merge.Peek().length <= x.length {
			x = rawConcat(merge.Pop(), x)
		}
		merge.Push(x)
	}

	segments := make([]*Rope[T], 0, merge.Size())
	for merge.Size() > 0 {
		segments = append(segments, merge.Pop())
	}
	// segments is ordered rightmost-to-leftmost; fold back to left-to-right.
	result := segments[len(segments)-1]
	for i := len(segments) - 2; i >= 0; i-- {
		result = rawConcat(result, segments[i])
	}
	return result
}
