package diff

import (
	"math"

	g "github.com/zyedidia/generic"

	"github.com/cflag/rope/rope"
)

// matchMaxBits is the largest pattern the bitap bitmask can represent in a
// single uint64 word; longer patterns are truncated to their first
// matchMaxBits runes, comfortably above the "at least 32" floor.
const matchMaxBits = 64

// FindNear returns the best approximate location of pattern within text
// near nearLoc, or -1 if no location scores below matchThreshold. Scoring
// combines the fraction of pattern characters that had to be treated as
// errors with how far the candidate location is from nearLoc:
//
//	score = errors/len(pattern) + |matchLoc-nearLoc|/matchDistance
//
// The search is bitap: a bitmask per pattern rune, iterating the number
// of tolerated errors upward from zero and pruning candidate windows
// whose best achievable score already exceeds the threshold.
func FindNear(text, pattern *rope.Rope[rune], nearLoc int, opts Options[rune]) int {
	p := pattern.ToBuffer()
	if len(p) > matchMaxBits {
		p = p[:matchMaxBits]
	}
	if len(p) == 0 {
		return clampInt(nearLoc, 0, text.Length())
	}
	t := text.ToBuffer()
	threshold := opts.matchThreshold()
	distance := opts.matchDistance()

	score := func(errs, loc int) float64 {
		accuracy := float64(errs) / float64(len(p))
		proximity := iabs(nearLoc - loc)
		if distance == 0 {
			if proximity == 0 {
				return accuracy
			}
			return 1.0
		}
		return accuracy + float64(proximity)/float64(distance)
	}

	scoreThreshold := threshold
	if loc := indexOfRunes(t, p, nearLoc); loc != -1 {
		scoreThreshold = math.Min(score(0, loc), scoreThreshold)
		if loc2 := lastIndexOfRunesBefore(t, p, nearLoc+len(p)); loc2 != -1 {
			scoreThreshold = math.Min(score(0, loc2), scoreThreshold)
		}
	}

	alphabet := matchAlphabet(p)
	matchBit := uint64(1) << uint(len(p)-1)
	bestLoc := -1

	binMax := len(p) + len(t)
	var lastRd []uint64
	for d := 0; d < len(p); d++ {
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if score(d, nearLoc+binMid) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := g.Max(1, nearLoc-binMid+1)
		finish := g.Min(nearLoc+binMid, len(t)) + len(p)

		rd := make([]uint64, finish+2)
		rd[finish+1] = (uint64(1) << uint(d)) - 1
		for j := finish; j >= start; j-- {
			var charMatch uint64
			if j-1 < len(t) {
				charMatch = alphabet[t[j-1]]
			}
			if d == 0 {
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				rd[j] = (((rd[j+1]<<1)|1)&charMatch | (((lastRd[j+1] | lastRd[j]) << 1) | 1) | lastRd[j+1])
			}
			if rd[j]&matchBit != 0 {
				s := score(d, j-1)
				if s <= scoreThreshold {
					scoreThreshold = s
					bestLoc = j - 1
					if bestLoc > nearLoc {
						start = g.Max(1, 2*nearLoc-bestLoc)
					} else {
						break
					}
				}
			}
		}
		if score(d+1, nearLoc) > scoreThreshold {
			break
		}
		lastRd = rd
	}
	return bestLoc
}

func matchAlphabet(pattern []rune) map[rune]uint64 {
	m := make(map[rune]uint64, len(pattern))
	for i, r := range pattern {
		m[r] |= uint64(1) << uint(len(pattern)-i-1)
	}
	return m
}

func indexOfRunes(text, pattern []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pattern) <= len(text); i++ {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func lastIndexOfRunesBefore(text, pattern []rune, upto int) int {
	limit := g.Min(upto, len(text))
	for i := limit - len(pattern); i >= 0; i-- {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(x, lo, hi int) int {
	return g.Max(lo, g.Min(x, hi))
}
