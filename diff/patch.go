package diff

import (
	g "github.com/zyedidia/generic"

	"github.com/cflag/rope/rope"
)

// Patch groups a run of diffs together with the context around them:
// Start1/Length1 locate the span in the original sequence, Start2/Length2
// the corresponding span in the target sequence.
type Patch[T comparable] struct {
	Start1, Start2   int
	Length1, Length2 int
	Diffs            []Diff[T]
}

func diffsText1[T comparable](diffs []Diff[T]) *rope.Rope[T] {
	out := rope.Empty[T]()
	for _, d := range diffs {
		if d.Kind == Equal || d.Kind == Delete {
			out = rope.Concat(out, d.Text)
		}
	}
	return out
}

func diffsText2[T comparable](diffs []Diff[T]) *rope.Rope[T] {
	out := rope.Empty[T]()
	for _, d := range diffs {
		if d.Kind == Equal || d.Kind == Insert {
			out = rope.Concat(out, d.Text)
		}
	}
	return out
}

// MakePatches groups a diff sequence into patches, each covering one run of
// edits plus up to opts.PatchMargin elements of unchanged context on either
// side.
func MakePatches[T comparable](diffs *rope.Rope[Diff[T]], opts Options[T]) *rope.Rope[Patch[T]] {
	margin := opts.patchMargin()
	var all []Diff[T]
	diffs.Each(func(d Diff[T]) { all = append(all, d) })

	var patches []Patch[T]
	if len(all) == 0 {
		return rope.Empty[Patch[T]]()
	}

	char1, char2 := 0, 0
	var cur *Patch[T]

	closeCurrent := func() {
		if cur != nil {
			patches = append(patches, *cur)
			cur = nil
		}
	}

	for i, d := range all {
		if cur == nil && d.Kind != Equal {
			cur = &Patch[T]{Start1: char1, Start2: char2}
			if i > 0 && all[i-1].Kind == Equal {
				prev := all[i-1]
				ctxLen := g.Min(margin, prev.Text.Length())
				if ctxLen > 0 {
					ctx := prev.Text.Slice(prev.Text.Length()-ctxLen, ctxLen)
					cur.Diffs = append(cur.Diffs, Diff[T]{Kind: Equal, Text: ctx})
					cur.Start1 -= ctxLen
					cur.Start2 -= ctxLen
					cur.Length1 += ctxLen
					cur.Length2 += ctxLen
				}
			}
		}

		if cur != nil {
			switch d.Kind {
			case Insert:
				cur.Length2 += d.Text.Length()
				cur.Diffs = append(cur.Diffs, d)
			case Delete:
				cur.Length1 += d.Text.Length()
				cur.Diffs = append(cur.Diffs, d)
			case Equal:
				if d.Text.Length() <= 2*margin && i != len(all)-1 {
					cur.Length1 += d.Text.Length()
					cur.Length2 += d.Text.Length()
					cur.Diffs = append(cur.Diffs, d)
				} else {
					ctxLen := g.Min(margin, d.Text.Length())
					if ctxLen > 0 {
						ctx := d.Text.Slice(0, ctxLen)
						cur.Length1 += ctxLen
						cur.Length2 += ctxLen
						cur.Diffs = append(cur.Diffs, Diff[T]{Kind: Equal, Text: ctx})
					}
					closeCurrent()
				}
			}
		}

		if d.Kind == Equal || d.Kind == Delete {
			char1 += d.Text.Length()
		}
		if d.Kind == Equal || d.Kind == Insert {
			char2 += d.Text.Length()
		}
	}
	closeCurrent()

	ps := make([]Patch[T], len(patches))
	copy(ps, patches)
	return rope.FromBuffer(ps)
}

// ApplyPatches applies patches to text in order, relocating each patch by
// searching for its recorded context exactly (to tolerate the text having
// shifted since the patch was made) and reports which patches actually
// applied. A patch whose context can no longer be found is skipped; later
// patches are still attempted. This is the general T-agnostic relocation
// strategy; ApplyTextPatches below additionally tolerates fuzzy context via
// FindNear for rune text, matching the canonical patch algorithm.
func ApplyPatches[T comparable](patches *rope.Rope[Patch[T]], text *rope.Rope[T], opts Options[T]) (*rope.Rope[T], []bool) {
	n := patches.Length()
	applied := make([]bool, n)
	result := text

	delta := 0
	for i := 0; i < n; i++ {
		p := patches.At(i)
		oldCtx := diffsText1(p.Diffs)
		newCtx := diffsText2(p.Diffs)

		expectedLoc := clampInt(p.Start1+delta, 0, result.Length())
		loc := nearestExactMatch(result, oldCtx, expectedLoc, opts.matchDistance())
		if loc == -1 {
			applied[i] = false
			continue
		}

		matchLen := oldCtx.Length()
		result = result.Remove(loc, matchLen).Insert(loc, newCtx)
		delta += newCtx.Length() - matchLen
		applied[i] = true
	}
	return result, applied
}

// nearestExactMatch looks for pattern at expectedLoc first, then expands
// outward within distance, matching FindNear's exact-match fast path for
// the T-agnostic case where bitap scoring isn't available.
func nearestExactMatch[T comparable](text, pattern *rope.Rope[T], expectedLoc, distance int) int {
	if pattern.Length() == 0 {
		return clampInt(expectedLoc, 0, text.Length())
	}
	if loc := text.IndexOf(pattern, 0); loc != -1 {
		best := loc
		bestDist := iabs(loc - expectedLoc)
		for {
			next := text.IndexOf(pattern, loc+1)
			if next == -1 {
				break
			}
			if d := iabs(next - expectedLoc); d < bestDist {
				best, bestDist = next, d
			}
			loc = next
		}
		if bestDist <= distance || distance == 0 {
			return best
		}
		return -1
	}
	return -1
}

// ApplyTextPatches is ApplyPatches specialised for rune text, using FindNear
// so that a patch's context can still be located after nearby unrelated
// edits, not only on an exact match.
func ApplyTextPatches(patches *rope.Rope[Patch[rune]], text *rope.Rope[rune], opts Options[rune]) (*rope.Rope[rune], []bool) {
	n := patches.Length()
	applied := make([]bool, n)
	result := text

	delta := 0
	for i := 0; i < n; i++ {
		p := patches.At(i)
		oldCtx := diffsText1(p.Diffs)
		newCtx := diffsText2(p.Diffs)

		expectedLoc := clampInt(p.Start1+delta, 0, result.Length())
		loc := FindNear(result, oldCtx, expectedLoc, opts)
		if loc == -1 {
			applied[i] = false
			continue
		}

		matchLen := g.Min(oldCtx.Length(), result.Length()-loc)
		result = result.Remove(loc, matchLen).Insert(loc, newCtx)
		delta += newCtx.Length() - matchLen
		applied[i] = true
	}
	return result, applied
}
