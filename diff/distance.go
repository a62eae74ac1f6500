package diff

import "github.com/cflag/rope/rope"

// Text1 reconstructs the original ("a") sequence from a diff sequence by
// concatenating every Equal and Delete diff's text.
func Text1[T comparable](diffs *rope.Rope[Diff[T]]) *rope.Rope[T] {
	out := rope.Empty[T]()
	diffs.Each(func(d Diff[T]) {
		if d.Kind == Equal || d.Kind == Delete {
			out = rope.Concat(out, d.Text)
		}
	})
	return out
}

// Text2 reconstructs the target ("b") sequence from a diff sequence by
// concatenating every Equal and Insert diff's text.
func Text2[T comparable](diffs *rope.Rope[Diff[T]]) *rope.Rope[T] {
	out := rope.Empty[T]()
	diffs.Each(func(d Diff[T]) {
		if d.Kind == Equal || d.Kind == Insert {
			out = rope.Concat(out, d.Text)
		}
	})
	return out
}

// LevenshteinDistance returns the number of edits (insertions plus
// deletions, with equal-length runs of both collapsed into substitutions)
// implied by a diff sequence.
func LevenshteinDistance[T comparable](diffs *rope.Rope[Diff[T]]) int {
	total := 0
	insertions, deletions := 0, 0
	diffs.Each(func(d Diff[T]) {
		switch d.Kind {
		case Insert:
			insertions += d.Text.Length()
		case Delete:
			deletions += d.Text.Length()
		case Equal:
			total += max(insertions, deletions)
			insertions, deletions = 0, 0
		}
	})
	total += max(insertions, deletions)
	return total
}
