// Package csvindex implements a paged, bloom-filter-indexed search layer
// over CSV files: an Indexer builds one FileIndex per file by streaming
// its rows into fixed-size pages, each page backed by one BloomFilter per
// column, and a tagged Search tree answers ValueEquals/ValueStartsWith/
// RowsBetween/And/Or queries by narrowing to candidate pages before ever
// re-reading the file.
package csvindex

import (
	"time"

	"github.com/cflag/rope/multimap"
	"github.com/cflag/rope/rope"
	"github.com/cflag/rope/trie"
)

// RowRange is one page: a byte-and-row window over a CSV file carrying one
// bloom filter for a single column's values within that window.
type RowRange struct {
	StartByte int
	EndByte   int
	StartRow  int
	EndRow    int
	Filter    *BloomFilter
}

// ColumnIndex is one column's pages, ordered by StartByte.
type ColumnIndex struct {
	Name   string
	Ranges *rope.Rope[RowRange]
}

// FileIndex is the committed index for one CSV file.
type FileIndex struct {
	Path            string
	LastModifiedUTC time.Time
	Headers         []string
	Columns         []*ColumnIndex

	names   *trie.Trie[int]                // first column slot for a header name
	dupes   multimap.MultiMap[string, int] // every column slot for a header name
	Warning string                         // set when indexing stopped early on malformed input
}

// Column returns the ColumnIndex for name, using the first slot if the
// header occurred more than once.
func (fi *FileIndex) Column(name string) (*ColumnIndex, bool) {
	slot, ok := fi.names.Get(name)
	if !ok {
		return nil, false
	}
	return fi.Columns[slot], true
}

// ColumnSlots returns every column slot a (possibly duplicated) header
// name occupies.
func (fi *FileIndex) ColumnSlots(name string) []int {
	return fi.dupes.Get(name)
}

// HasColumn reports whether name occurs in Headers.
func (fi *FileIndex) HasColumn(name string) bool {
	return fi.names.Contains(name)
}
