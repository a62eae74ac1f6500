package diff

import (
	"github.com/cflag/rope/bimap"
	"github.com/cflag/rope/rope"
)

// ChunksToIntegers tokenises a and b on separator (content runs and the
// separator itself each become their own token, so concatenating tokens
// back to back reconstructs the original exactly) and assigns each unique
// token an int64 alias, recorded in table for IntegersToChunks to reverse.
// Aliases are handed out from a monotonically increasing counter, so the
// table can hold far more than 2^16 or 2^32 distinct tokens.
func ChunksToIntegers(a, b *rope.Rope[rune], separator rune) (*rope.Rope[int64], *rope.Rope[int64], *bimap.Bimap[string, int64]) {
	var table bimap.Bimap[string, int64]
	var next int64

	assign := func(tok string) int64 {
		if id, ok := table.GetForward(tok); ok {
			return id
		}
		id := next
		next++
		table.Add(tok, id)
		return id
	}

	toInts := func(r *rope.Rope[rune]) *rope.Rope[int64] {
		toks := tokenizeOnSeparator(r.ToBuffer(), separator)
		ids := make([]int64, len(toks))
		for i, t := range toks {
			ids[i] = assign(t)
		}
		return rope.FromBuffer(ids)
	}

	return toInts(a), toInts(b), &table
}

// IntegersToChunks rehydrates a rope of int64 aliases produced by
// ChunksToIntegers back into its original rune sequence using table's
// reverse mapping. Any alias missing from table is silently skipped.
func IntegersToChunks(ints *rope.Rope[int64], table *bimap.Bimap[string, int64]) *rope.Rope[rune] {
	var out []rune
	ints.Each(func(id int64) {
		if tok, ok := table.GetReverse(id); ok {
			out = append(out, []rune(tok)...)
		}
	})
	return rope.FromBuffer(out)
}

func tokenizeOnSeparator(s []rune, separator rune) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		if r == separator {
			flush()
			tokens = append(tokens, string(separator))
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return tokens
}
