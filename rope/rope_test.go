package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strOf(s string) *Rope[rune] {
	return FromBuffer([]rune(s))
}

func bufOf(r *Rope[rune]) string {
	return string(r.ToBuffer())
}

func TestEmpty(t *testing.T) {
	e := Empty[rune]()
	assert.Equal(t, 0, e.Length())
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Depth())
}

func TestFromBufferSingleLeaf(t *testing.T) {
	r := strOf("hello world")
	assert.Equal(t, 11, r.Length())
	assert.Equal(t, "hello world", bufOf(r))
	assert.Equal(t, byte('w'), byte(r.At(6)))
}

func TestFromBufferManyLeaves(t *testing.T) {
	MaxLeaf = 4
	defer func() { MaxLeaf = 2048 }()

	buf := make([]rune, 4096)
	for i := range buf {
		buf[i] = rune('a' + i%26)
	}
	r := FromBuffer(buf)
	assert.Equal(t, len(buf), r.Length())
	assert.Equal(t, buf, r.ToBuffer())
	assert.LessOrEqual(t, r.Depth(), MaxDepth)
}

func TestConcatSliceRoundTrip(t *testing.T) {
	r := strOf("hello world")
	left := r.Slice(0, 5)
	right := r.Slice(5, 6)
	assert.Equal(t, "hello", bufOf(left))
	assert.Equal(t, " world", bufOf(right))
	assert.Equal(t, "hello world", bufOf(Concat(left, right)))
	assert.Equal(t, 'w', r.At(6))
}

func TestInsertThenRemove(t *testing.T) {
	r := strOf("abcdef")
	withInsert := r.Insert(3, strOf("XYZ"))
	assert.Equal(t, "abcXYZdef", bufOf(withInsert))
	back := withInsert.Remove(3, 3)
	assert.Equal(t, "abcdef", bufOf(back))
	assert.True(t, Equals(r, back))
}

func TestSplitRecombine(t *testing.T) {
	r := strOf("the quick brown fox")
	for i := 0; i <= r.Length(); i++ {
		l, rr := r.Split(i)
		assert.Equal(t, i, l.Length())
		joined := Concat(l, rr)
		assert.Equal(t, bufOf(r), bufOf(joined))
	}
}

func TestRebalanceAfterManyAppends(t *testing.T) {
	r := Empty[rune]()
	for i := 0; i < 10000; i++ {
		r = Concat(r, strOf("a"))
	}
	assert.Equal(t, 10000, r.Length())
	assert.LessOrEqual(t, r.Depth(), MaxDepth)

	want := make([]rune, 10000)
	for i := range want {
		want[i] = 'a'
	}
	assert.Equal(t, want, r.ToBuffer())
}

func TestAtOutOfRangePanics(t *testing.T) {
	r := strOf("abc")
	assert.Panics(t, func() { r.At(3) })
	assert.Panics(t, func() { r.At(-1) })
}

func TestSplitOutOfRangePanics(t *testing.T) {
	r := strOf("abc")
	assert.Panics(t, func() { r.Split(4) })
}

func TestIndexOfAndLastIndexOf(t *testing.T) {
	r := strOf("abracadabra")
	assert.Equal(t, 0, r.IndexOf(strOf("abra"), 0))
	assert.Equal(t, 7, r.IndexOf(strOf("abra"), 1))
	assert.Equal(t, -1, r.IndexOf(strOf("xyz"), 0))
	assert.Equal(t, 7, r.LastIndexOf(strOf("abra")))
}

func TestCommonPrefixAndSuffixLength(t *testing.T) {
	a := strOf("interspecies")
	b := strOf("interstellar")
	assert.Equal(t, 6, CommonPrefixLength(a, b))

	c := strOf("codeine")
	d := strOf("caffeine")
	assert.Equal(t, 4, CommonSuffixLength(c, d))
}

func TestInsertSorted(t *testing.T) {
	r := FromBuffer([]int{1, 3, 5, 7})
	less := func(a, b int) bool { return a < b }
	r = r.InsertSorted(4, less)
	assert.Equal(t, []int{1, 3, 4, 5, 7}, r.ToBuffer())
}

func TestEqualsAndHashCode(t *testing.T) {
	a := strOf("same content")
	b := strOf("same content")
	c := strOf("different")
	assert.True(t, Equals(a, b))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, Equals(a, c))
}

func TestIsBalancedAndBalanced(t *testing.T) {
	r := strOf("x")
	assert.True(t, r.IsBalanced())
	b := r.Balanced()
	assert.True(t, Equals(r, b))
}

func TestAddRange(t *testing.T) {
	r := strOf("foo").AddRange(strOf("bar"))
	assert.Equal(t, "foobar", bufOf(r))
}

func TestEachVisitsInOrder(t *testing.T) {
	r := strOf("abc")
	var out []rune
	r.Each(func(v rune) { out = append(out, v) })
	assert.Equal(t, []rune("abc"), out)
}
