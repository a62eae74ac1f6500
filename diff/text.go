package diff

import (
	"github.com/clipperhouse/uax29/words"

	"github.com/cflag/rope/bimap"
	"github.com/cflag/rope/rope"
)

// longEnoughForHashing is the per-side length above which ComputeText will
// bother paying for the tokenise-then-hash indirection; below it, bisecting
// runes directly is already cheap.
const longEnoughForHashing = 4096

// ComputeText is the concrete entry point for diffing character data. When
// opts.HashChunks is set and both inputs are long, it tokenises on '\n',
// diffs over int64 line aliases (a much shorter sequence than the raw rune
// streams), and rehydrates the result; otherwise it diffs runes directly.
func ComputeText(a, b *rope.Rope[rune], opts Options[rune]) *rope.Rope[Diff[rune]] {
	if opts.HashChunks && a.Length() > longEnoughForHashing && b.Length() > longEnoughForHashing {
		aInts, bInts, table := ChunksToIntegers(a, b, '\n')
		intOpts := Options[int64]{
			TimeoutSeconds: opts.TimeoutSeconds,
			EditCost:       opts.EditCost,
		}
		intDiffs := Compute(aInts, bInts, intOpts)
		return rope.FromBuffer(translateDiffs(intDiffs, table))
	}
	return Compute(a, b, opts)
}

func translateDiffs(intDiffs *rope.Rope[Diff[int64]], table *bimap.Bimap[string, int64]) []Diff[rune] {
	out := make([]Diff[rune], 0, intDiffs.Length())
	intDiffs.Each(func(d Diff[int64]) {
		out = append(out, Diff[rune]{Kind: d.Kind, Text: IntegersToChunks(d.Text, table)})
	})
	return out
}

// ComputeWords diffs two strings at word granularity using Unicode word
// boundaries (via clipperhouse/uax29/words) rather than whitespace
// splitting, so punctuation and script-specific boundaries are handled
// correctly. Each diff's Text is a rope of whole word/whitespace tokens.
func ComputeWords(a, b string, opts Options[string]) *rope.Rope[Diff[string]] {
	return Compute(rope.FromBuffer(SplitWords(a)), rope.FromBuffer(SplitWords(b)), opts)
}

// SplitWords segments s into Unicode word-boundary tokens, including
// inter-word whitespace and punctuation runs as their own tokens (so that
// concatenating every token reconstructs s exactly).
func SplitWords(s string) []string {
	return words.SegmentAllString(s)
}
