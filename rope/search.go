package rope

import g "github.com/zyedidia/generic"

// IndexOf returns the smallest index >= start at which pattern occurs as a
// contiguous subsequence of r, or -1 if it does not occur. pattern is
// materialised into a single buffer up front (patterns used by the diff and
// CSV search layers are always small relative to r); each candidate start
// position is then checked element by element through At, so the worst
// case is O(n*m) comparisons.
// It panics with an *OutOfRange if start is not in [0, Length()].
func (r *Rope[T]) IndexOf(pattern *Rope[T], start int) int {
	if start < 0 || start > r.Length() {
		panic(outOfRange(start, r.Length()))
	}
	m := pattern.Length()
	if m == 0 {
		return start
	}
	n := r.Length()
	buf := pattern.ToBuffer()
	for i := start; i+m <= n; i++ {
		if matchesAt(r, i, buf) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the largest index at which pattern occurs as a
// contiguous subsequence of r, or -1 if it does not occur. Symmetric
// right-to-left counterpart to IndexOf.
func (r *Rope[T]) LastIndexOf(pattern *Rope[T]) int {
	m := pattern.Length()
	n := r.Length()
	if m == 0 {
		return n
	}
	if m > n {
		return -1
	}
	buf := pattern.ToBuffer()
	for i := n - m; i >= 0; i-- {
		if matchesAt(r, i, buf) {
			return i
		}
	}
	return -1
}

func matchesAt[T comparable](r *Rope[T], i int, pattern []T) bool {
	for j, v := range pattern {
		if r.At(i+j) != v {
			return false
		}
	}
	return true
}

// CommonPrefixLength returns the length of the longest common prefix of a
// and b, walking both in lock-step chunk by chunk.
func CommonPrefixLength[T comparable](a, b *Rope[T]) int {
	n := g.Min(a.Length(), b.Length())
	ai, bi := a.ToChunks(), b.ToChunks()
	var ac, bc Chunk[T]
	ax, bx := 0, 0
	count := 0
	for count < n {
		if ax >= len(ac.Elems) {
			var ok bool
			if ac, ok = ai(); !ok {
				break
			}
			ax = 0
		}
		if bx >= len(bc.Elems) {
			var ok bool
			if bc, ok = bi(); !ok {
				break
			}
			bx = 0
		}
		if ac.Elems[ax] != bc.Elems[bx] {
			break
		}
		ax++
		bx++
		count++
	}
	return count
}

// CommonSuffixLength returns the length of the longest common suffix of a
// and b.
func CommonSuffixLength[T comparable](a, b *Rope[T]) int {
	n := g.Min(a.Length(), b.Length())
	al, bl := a.Length(), b.Length()
	count := 0
	for count < n && a.At(al-1-count) == b.At(bl-1-count) {
		count++
	}
	return count
}

// InsertSorted returns a new rope with v inserted at the position that
// keeps the sequence ordered by less, assuming r is already so ordered.
func (r *Rope[T]) InsertSorted(v T, less g.LessFn[T]) *Rope[T] {
	lo, hi := 0, r.Length()
	for lo < hi {
		mid := (lo + hi) / 2
		if less(r.At(mid), v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return r.Insert(lo, FromBuffer([]T{v}))
}
