package csvindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBloomFilterNoFalseNegatives(t *testing.T) {
	f := NewBloomFilter(2048, 4, OpContains|OpEquals)
	values := []string{"alice", "bob", "charlotte", "wonderland", ""}
	for _, v := range values {
		f.Add(v, OpContains|OpEquals)
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		ok, err := f.MightStartWith(v[:1])
		assert.NoError(t, err)
		assert.True(t, ok, "expected MightStartWith to not false-negative on %q", v)

		ok, err = f.MightEndWith(v[len(v)-1:])
		assert.NoError(t, err)
		assert.True(t, ok, "expected MightEndWith to not false-negative on %q", v)

		ok, err = f.MightEqual(v)
		assert.NoError(t, err)
		assert.True(t, ok, "expected MightEqual to not false-negative on %q", v)

		ok, err = f.MightContain(v)
		assert.NoError(t, err)
		assert.True(t, ok, "expected MightContain to not false-negative on %q", v)
	}
}

func TestBloomFilterDefiniteRejection(t *testing.T) {
	f := NewBloomFilter(4096, 6, OpContains|OpEquals)
	f.Add("alice", OpContains|OpEquals)
	f.Add("bob", OpContains|OpEquals)

	ok, err := f.MightEqual("zzz-not-present-zzz")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.MightStartWith("xyz")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBloomFilterUnsupportedOp(t *testing.T) {
	f := NewBloomFilter(1024, 4, OpStartsWith)
	f.Add("alice", OpStartsWith)

	_, err := f.MightEndWith("e")
	assert.Error(t, err)
	var unsupported *Unsupported
	assert.ErrorAs(t, err, &unsupported)

	_, err = f.MightEqual("alice")
	assert.Error(t, err)

	_, err = f.MightContain("alice")
	assert.Error(t, err)
}

func TestBloomFilterSerializeRoundTrip(t *testing.T) {
	f := NewBloomFilter(2048, 4, OpContains|OpEquals)
	for _, v := range []string{"alice", "bob", "wonderland", "mad hatter"} {
		f.Add(v, OpContains|OpEquals)
	}

	s := f.Serialize()
	assert.NotEmpty(t, s)

	restored, err := DeserializeBloomFilter(s, 2048, 4, OpContains|OpEquals)
	assert.NoError(t, err)

	ok, err := restored.MightEqual("alice")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = restored.MightContain("hatter")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBloomFilterStartsWithVsEquals(t *testing.T) {
	f := NewBloomFilter(2048, 4, OpEquals)
	f.Add("wonderland", OpEquals)

	ok, err := f.MightStartWith("wonder")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.MightEqual("wonder")
	assert.NoError(t, err)
	assert.False(t, ok, "MightEqual must not be satisfied by a mere prefix")

	ok, err = f.MightEqual("wonderland")
	assert.NoError(t, err)
	assert.True(t, ok)
}
