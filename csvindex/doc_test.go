package csvindex

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotLoadRoundTrip(t *testing.T) {
	ix := NewIndexer(IndexerOptions{RowsPerPage: 2})
	_, err := ix.IndexFile("f.csv", time.Unix(1000, 0), strings.NewReader("name,city\nalice,wonderland\nbob,oz\n"))
	assert.NoError(t, err)

	data, err := ix.MarshalJSON()
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"RowsPerPage"`)
	assert.Contains(t, string(data), `"s"`)

	restored, err := ParseIndexDocument(data)
	assert.NoError(t, err)
	assert.Equal(t, 2, restored.Options().RowsPerPage)

	fi, ok := restored.Get("f.csv")
	assert.True(t, ok)
	assert.Equal(t, []string{"name", "city"}, fi.Headers)

	col, ok := fi.Column("name")
	assert.True(t, ok)
	var ranges []RowRange
	col.Ranges.Each(func(rr RowRange) { ranges = append(ranges, rr) })
	assert.Len(t, ranges, 1)

	ok2, err := ranges[0].Filter.MightEqual("alice")
	assert.NoError(t, err)
	assert.True(t, ok2)
}

func TestLoadIndexDocumentRejectsBadTimestamp(t *testing.T) {
	doc := IndexDocument{
		RowsPerPage: 1000, BloomFilterSize: 64, HashIterations: 2, SupportedOperations: OpContains,
		Files: []fileDocument{{FilePath: "f.csv", LastModifiedUtc: "not-a-time"}},
	}
	_, err := LoadIndexDocument(doc)
	assert.Error(t, err)
}
