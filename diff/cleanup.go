package diff

import "github.com/cflag/rope/rope"

// mergeAdjacent coalesces consecutive diffs of the same kind and drops any
// diff left with an empty Text.
func mergeAdjacent[T comparable](diffs []Diff[T]) []Diff[T] {
	out := make([]Diff[T], 0, len(diffs))
	for _, d := range diffs {
		if d.Text == nil || d.Text.IsEmpty() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Kind == d.Kind {
			out[n-1].Text = rope.Concat(out[n-1].Text, d.Text)
			continue
		}
		out = append(out, d)
	}
	return out
}

// foldShortEqualities merges any Equal diff no longer than maxLen that sits
// directly between a Delete and an Insert (in either order) into both
// neighbors: the Equal's content belongs to both Text1 and Text2
// reconstructions regardless of which diff it's attached to, so folding it
// into the surrounding edit pair changes grouping, not meaning. This both
// realises SemanticCleanup (maxLen=1, "single edits sandwiched between
// short equals") and EfficiencyCleanup (maxLen=editCost) from the same
// mechanism.
func foldShortEqualities[T comparable](diffs []Diff[T], maxLen int) []Diff[T] {
	if maxLen <= 0 {
		return diffs
	}
	changed := true
	for changed {
		changed = false
		out := make([]Diff[T], 0, len(diffs))
		i := 0
		for i < len(diffs) {
			if i+2 <= len(diffs)-1 && diffs[i+1].Kind == Equal &&
				diffs[i+1].Text.Length() <= maxLen &&
				diffs[i].Kind != Equal && diffs[i+2].Kind != Equal &&
				diffs[i].Kind != diffs[i+2].Kind {

				eq := diffs[i+1].Text
				var merged []Diff[T]
				if diffs[i].Kind == Delete {
					// Delete, Equal, Insert: the Equal follows the deletion
					// in Text1 and precedes the insertion in Text2.
					merged = []Diff[T]{
						{Kind: Delete, Text: rope.Concat(diffs[i].Text, eq)},
						{Kind: Insert, Text: rope.Concat(eq, diffs[i+2].Text)},
					}
				} else {
					// Insert, Equal, Delete: the Equal precedes the deletion
					// in Text1 and follows the insertion in Text2.
					merged = []Diff[T]{
						{Kind: Delete, Text: rope.Concat(eq, diffs[i+2].Text)},
						{Kind: Insert, Text: rope.Concat(diffs[i].Text, eq)},
					}
				}
				out = append(out, merged...)
				i += 3
				changed = true
				continue
			}
			out = append(out, diffs[i])
			i++
		}
		diffs = out
	}
	return diffs
}

// semanticCleanup favors grouping a lone edit with its adjacent edit rather
// than leaving a meaningless single-element Equal between them.
func semanticCleanup[T comparable](diffs []Diff[T], _ func(a, b T) bool) []Diff[T] {
	return mergeAdjacent(foldShortEqualities(diffs, 1))
}

// efficiencyCleanup eliminates edit groups separated only by an Equal no
// longer than editCost (4 when editCost is zero or negative), trading a
// slightly larger patch for fewer, cheaper-to-apply edit groups. It compares
// only the length of the separating Equal; edit groups are not costed.
func efficiencyCleanup[T comparable](diffs []Diff[T], editCost int) []Diff[T] {
	if editCost <= 0 {
		editCost = 4
	}
	return mergeAdjacent(foldShortEqualities(diffs, editCost))
}
