// Package diff implements a Myers bisect diff, bitap fuzzy matching, and
// contextual patch generation/application over rope.Rope sequences.
package diff

import (
	"time"

	"github.com/cflag/rope/rope"
)

// Kind tags the three possible diff operations.
type Kind int

const (
	Equal Kind = iota
	Insert
	Delete
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Diff is one operation in a diff sequence: either text is shared between
// the two inputs (Equal), present only in the second (Insert), or present
// only in the first (Delete).
type Diff[T comparable] struct {
	Kind Kind
	Text *rope.Rope[T]
}

// Options configures Compute, MakePatches, ApplyPatches, and FindNear.
type Options[T comparable] struct {
	// TimeoutSeconds bounds bisect's wall-clock budget. Zero disables the
	// timeout. When it trips mid-recursion, the unresolved span is
	// returned as a single Delete-then-Insert pair instead of a
	// minimal diff.
	TimeoutSeconds float64
	// EditCost is the longest Equal run, sitting between a Delete and an
	// Insert, that EfficiencyCleanup folds into the surrounding edits.
	// Defaults to 4 when zero. Only the length of that Equal run is
	// compared; edit groups are not costed against 2*EditCost.
	EditCost int
	// ChunkEquality compares two tokens for equality. Defaults to Go's
	// built-in == when left nil.
	ChunkEquality func(a, b T) bool
	// HashChunks, when true and handled by a concrete entry point such
	// as ComputeText, tokenises long inputs and diffs over small integer
	// aliases instead of raw elements.
	HashChunks bool

	// MatchThreshold and MatchDistance parameterise FindNear; see that
	// function's docs. MatchThreshold defaults to 0.5, MatchDistance to
	// 1000 when left zero.
	MatchThreshold float64
	MatchDistance  int

	// PatchMargin is the number of context elements kept on either side
	// of an edit when MakePatches groups diffs into patches. Defaults to
	// 4 when zero.
	PatchMargin int
}

func (o Options[T]) equality() func(a, b T) bool {
	if o.ChunkEquality != nil {
		return o.ChunkEquality
	}
	return func(a, b T) bool { return a == b }
}

func (o Options[T]) deadline() (time.Time, bool) {
	if o.TimeoutSeconds <= 0 {
		return time.Time{}, false
	}
	return time.Now().Add(time.Duration(o.TimeoutSeconds * float64(time.Second))), true
}

func (o Options[T]) matchThreshold() float64 {
	if o.MatchThreshold <= 0 {
		return 0.5
	}
	return o.MatchThreshold
}

func (o Options[T]) matchDistance() int {
	if o.MatchDistance <= 0 {
		return 1000
	}
	return o.MatchDistance
}

func (o Options[T]) patchMargin() int {
	if o.PatchMargin <= 0 {
		return 4
	}
	return o.PatchMargin
}
