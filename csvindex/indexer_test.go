package csvindex

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIndexFileBuildsPagedColumns(t *testing.T) {
	ix := NewIndexer(IndexerOptions{RowsPerPage: 2})
	csv := "name,city\nalice,wonderland\nbob,oz\ncarol,narnia\n"
	fi, err := ix.IndexFile("f.csv", time.Unix(100, 0), strings.NewReader(csv))
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "city"}, fi.Headers)
	assert.Len(t, fi.Columns, 2)

	var pages []RowRange
	fi.Columns[0].Ranges.Each(func(rr RowRange) { pages = append(pages, rr) })
	assert.Len(t, pages, 2, "3 rows at 2 rows/page should produce 2 pages")
	assert.Equal(t, 0, pages[0].StartRow)
	assert.Equal(t, 2, pages[0].EndRow)
	assert.Equal(t, 2, pages[1].StartRow)
	assert.Equal(t, 3, pages[1].EndRow)
}

func TestIndexFileIdempotentOnSameOrOlderModTime(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	csv := "a,b\n1,2\n"
	first, err := ix.IndexFile("f.csv", time.Unix(100, 0), strings.NewReader(csv))
	assert.NoError(t, err)

	second, err := ix.IndexFile("f.csv", time.Unix(50, 0), strings.NewReader("should not be read"))
	assert.NoError(t, err)
	assert.Same(t, first, second, "older or equal mod time should reuse the committed index without re-reading")
}

func TestIndexFileReindexesOnNewerModTime(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	first, err := ix.IndexFile("f.csv", time.Unix(100, 0), strings.NewReader("a,b\n1,2\n"))
	assert.NoError(t, err)

	second, err := ix.IndexFile("f.csv", time.Unix(200, 0), strings.NewReader("a,b,c\n1,2,3\n"))
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, []string{"a", "b", "c"}, second.Headers)
}

func TestIndexFileEmptyFile(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	fi, err := ix.IndexFile("empty.csv", time.Unix(1, 0), strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, fi.Headers)
}

func TestIndexFileMalformedRecordsWarning(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	fi, err := ix.IndexFile("bad.csv", time.Unix(1, 0), strings.NewReader("a,b\n\"unterminated,c\n"))
	assert.NoError(t, err)
	assert.NotEmpty(t, fi.Warning)
}

func TestIndexFileDuplicateHeaders(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	fi, err := ix.IndexFile("dupes.csv", time.Unix(1, 0), strings.NewReader("a,a,b\n1,2,3\n"))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, fi.ColumnSlots("a"))
	col, ok := fi.Column("a")
	assert.True(t, ok)
	assert.Equal(t, "a", col.Name)
}

func TestIndexFilesBoundedParallelism(t *testing.T) {
	ix := NewIndexer(IndexerOptions{Parallelism: 2})
	paths := []string{"a.csv", "b.csv", "c.csv"}
	data := map[string]string{
		"a.csv": "x\n1\n",
		"b.csv": "x\n2\n",
		"c.csv": "x\n3\n",
	}
	errs := ix.IndexFiles(paths, func(path string) (io.Reader, time.Time, error) {
		return strings.NewReader(data[path]), time.Unix(1, 0), nil
	})
	for _, err := range errs {
		assert.NoError(t, err)
	}
	for _, p := range paths {
		_, ok := ix.Get(p)
		assert.True(t, ok)
	}
}

func TestIndexerEachAscendingPathOrder(t *testing.T) {
	ix := NewIndexer(IndexerOptions{})
	for _, p := range []string{"c.csv", "a.csv", "b.csv"} {
		_, err := ix.IndexFile(p, time.Unix(1, 0), strings.NewReader("x\n1\n"))
		assert.NoError(t, err)
	}
	var seen []string
	ix.Each(func(path string, fi *FileIndex) { seen = append(seen, path) })
	assert.Equal(t, []string{"a.csv", "b.csv", "c.csv"}, seen)
}
