package diff

import (
	"time"

	"github.com/cflag/rope/rope"
)

// Compute returns the diff sequence that transforms a into b, as a rope of
// Diff values. It trims any common prefix/suffix, recurses via Myers
// bisect on the remaining middle, then runs MergeAdjacent, SemanticCleanup,
// and EfficiencyCleanup over the assembled result.
func Compute[T comparable](a, b *rope.Rope[T], opts Options[T]) *rope.Rope[Diff[T]] {
	deadline, hasDeadline := opts.deadline()
	diffs := computeMain(a, b, opts.equality(), deadline, hasDeadline)
	diffs = mergeAdjacent(diffs)
	diffs = semanticCleanup(diffs, opts.equality())
	diffs = efficiencyCleanup(diffs, opts.EditCost)
	diffs = mergeAdjacent(diffs)
	return rope.FromBuffer(diffs)
}

func computeMain[T comparable](a, b *rope.Rope[T], eqFn func(a, b T) bool, deadline time.Time, hasDeadline bool) []Diff[T] {
	if a.IsEmpty() && b.IsEmpty() {
		return nil
	}
	if a.IsEmpty() {
		return []Diff[T]{{Kind: Insert, Text: b}}
	}
	if b.IsEmpty() {
		return []Diff[T]{{Kind: Delete, Text: a}}
	}

	prefix := rope.CommonPrefixLength(a, b)
	_, aNoPrefix := a.Split(prefix)
	_, bNoPrefix := b.Split(prefix)
	suffix := rope.CommonSuffixLength(aNoPrefix, bNoPrefix)

	aMid := aNoPrefix.Slice(0, aNoPrefix.Length()-suffix)
	bMid := bNoPrefix.Slice(0, bNoPrefix.Length()-suffix)

	var out []Diff[T]
	if prefix > 0 {
		out = append(out, Diff[T]{Kind: Equal, Text: a.Slice(0, prefix)})
	}
	out = append(out, computeMiddle(aMid, bMid, eqFn, deadline, hasDeadline)...)
	if suffix > 0 {
		out = append(out, Diff[T]{Kind: Equal, Text: aNoPrefix.Slice(aNoPrefix.Length()-suffix, suffix)})
	}
	return out
}

func computeMiddle[T comparable](a, b *rope.Rope[T], eqFn func(a, b T) bool, deadline time.Time, hasDeadline bool) []Diff[T] {
	if a.IsEmpty() && b.IsEmpty() {
		return nil
	}
	if a.IsEmpty() {
		return []Diff[T]{{Kind: Insert, Text: b}}
	}
	if b.IsEmpty() {
		return []Diff[T]{{Kind: Delete, Text: a}}
	}
	if expired(deadline, hasDeadline) {
		return []Diff[T]{{Kind: Delete, Text: a}, {Kind: Insert, Text: b}}
	}

	// One side fully contained in the other: a common special case that
	// bisect would otherwise spend effort rediscovering.
	if idx := a.IndexOf(b, 0); a.Length() >= b.Length() && idx >= 0 {
		return spliceContainment(a, b, idx, true)
	}
	if idx := b.IndexOf(a, 0); b.Length() >= a.Length() && idx >= 0 {
		return spliceContainment(b, a, idx, false)
	}

	x, y, ok := bisect(a, b, eqFn, deadline, hasDeadline)
	if !ok {
		return []Diff[T]{{Kind: Delete, Text: a}, {Kind: Insert, Text: b}}
	}

	aLeft, aRight := a.Split(x)
	bLeft, bRight := b.Split(y)
	left := computeMain(aLeft, bLeft, eqFn, deadline, hasDeadline)
	right := computeMain(aRight, bRight, eqFn, deadline, hasDeadline)
	return append(left, right...)
}

// spliceContainment handles the case where needle occurs verbatim inside
// haystack: the result is Delete/Insert around an Equal splice rather than
// a full bisect. longerIsA tells the caller which original argument
// (a or b) haystack corresponds to, so the surrounding edit is tagged with
// the right kind.
func spliceContainment[T comparable](haystack, needle *rope.Rope[T], idx int, longerIsA bool) []Diff[T] {
	before := haystack.Slice(0, idx)
	after := haystack.Slice(idx+needle.Length(), haystack.Length()-idx-needle.Length())

	editKind := Insert
	if longerIsA {
		editKind = Delete
	}

	var out []Diff[T]
	if before.Length() > 0 {
		out = append(out, Diff[T]{Kind: editKind, Text: before})
	}
	out = append(out, Diff[T]{Kind: Equal, Text: needle})
	if after.Length() > 0 {
		out = append(out, Diff[T]{Kind: editKind, Text: after})
	}
	return out
}
