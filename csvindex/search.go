package csvindex

import (
	"io"
	"strings"

	g "github.com/zyedidia/generic"

	"github.com/cflag/rope/array2d"
	"github.com/cflag/rope/cache"
	"github.com/cflag/rope/heap"
	"github.com/cflag/rope/interval"
	"github.com/cflag/rope/mapset"
)

type searchKind int

const (
	kindValueEquals searchKind = iota
	kindValueStartsWith
	kindRowsBetween
	kindAnd
	kindOr
)

// Search is a closed tagged variant: ValueEquals/ValueStartsWith/
// RowsBetween leaves, combined with And/Or. Dispatch is a single
// evaluator exposing ShouldSearch, SearchablePages, and Matches, rather
// than open-world polymorphism over an arbitrary interface.
type Search struct {
	kind     searchKind
	column   string
	value    string
	start    int
	end      int
	children []*Search
}

func ValueEquals(column, value string) *Search {
	return &Search{kind: kindValueEquals, column: column, value: value}
}

func ValueStartsWith(column, value string) *Search {
	return &Search{kind: kindValueStartsWith, column: column, value: value}
}

func RowsBetween(start, end int) *Search {
	return &Search{kind: kindRowsBetween, start: start, end: end}
}

func And(children ...*Search) *Search { return &Search{kind: kindAnd, children: children} }
func Or(children ...*Search) *Search  { return &Search{kind: kindOr, children: children} }

// ShouldSearch reports whether fi has the columns this query (and all its
// descendants) needs.
func (s *Search) ShouldSearch(fi *FileIndex) bool {
	switch s.kind {
	case kindValueEquals, kindValueStartsWith:
		return fi.HasColumn(s.column)
	case kindRowsBetween:
		return true
	case kindAnd:
		for _, c := range s.children {
			if !c.ShouldSearch(fi) {
				return false
			}
		}
		return true
	case kindOr:
		for _, c := range s.children {
			if c.ShouldSearch(fi) {
				return true
			}
		}
		return false
	}
	return false
}

// SearchablePages returns the subset of fi's pages whose bloom filters
// might match s, in ascending StartByte order with duplicates removed.
func (s *Search) SearchablePages(fi *FileIndex) []RowRange {
	switch s.kind {
	case kindValueEquals:
		return filterPages(fi, s.column, func(bf *BloomFilter) bool {
			ok, _ := bf.MightEqual(s.value)
			return ok
		})
	case kindValueStartsWith:
		return filterPages(fi, s.column, func(bf *BloomFilter) bool {
			ok, _ := bf.MightStartWith(s.value)
			return ok
		})
	case kindRowsBetween:
		return rowRangePages(fi, s.start, s.end)
	case kindAnd:
		lists := make([][]RowRange, len(s.children))
		for i, c := range s.children {
			lists[i] = c.SearchablePages(fi)
		}
		return intersectPages(lists)
	case kindOr:
		lists := make([][]RowRange, len(s.children))
		for i, c := range s.children {
			lists[i] = c.SearchablePages(fi)
		}
		return unionPages(lists)
	}
	return nil
}

func filterPages(fi *FileIndex, column string, keep func(*BloomFilter) bool) []RowRange {
	col, ok := fi.Column(column)
	if !ok {
		return nil
	}
	var out []RowRange
	col.Ranges.Each(func(rr RowRange) {
		if keep(rr.Filter) {
			out = append(out, rr)
		}
	})
	return out
}

// rowRangePages resolves RowsBetween via an interval tree over the first
// column's pages: every column shares identical row windows, since pages
// are built from the same row loop.
func rowRangePages(fi *FileIndex, start, end int) []RowRange {
	if len(fi.Columns) == 0 {
		return nil
	}
	tree := interval.New[int, RowRange]()
	fi.Columns[0].Ranges.Each(func(rr RowRange) {
		tree.Put(rr.StartRow, rr.EndRow, rr)
	})
	kvs := tree.Overlaps(start, end)
	out := make([]RowRange, len(kvs))
	for i, kv := range kvs {
		out[i] = kv.Val
	}
	return out
}

func intersectPages(lists [][]RowRange) []RowRange {
	if len(lists) == 0 {
		return nil
	}
	sets := make([]mapset.Set[int], len(lists))
	for i, l := range lists {
		sets[i] = mapset.New[int]()
		for _, rr := range l {
			sets[i].Put(rr.StartByte)
		}
	}
	var out []RowRange
	seen := mapset.New[int]()
	for _, rr := range lists[0] {
		if seen.Has(rr.StartByte) {
			continue
		}
		inAll := true
		for i := 1; i < len(sets); i++ {
			if !sets[i].Has(rr.StartByte) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, rr)
			seen.Put(rr.StartByte)
		}
	}
	return out
}

type heapItem struct {
	rr      RowRange
	listIdx int
	elemIdx int
}

// unionPages k-way merges every (individually ascending) child page list
// with a binary heap, deduplicating adjacent-equal StartBytes as they're
// emitted.
func unionPages(lists [][]RowRange) []RowRange {
	h := heap.New[heapItem](func(a, b heapItem) bool { return a.rr.StartByte < b.rr.StartByte })
	for li, l := range lists {
		if len(l) > 0 {
			h.Push(heapItem{l[0], li, 0})
		}
	}
	seen := mapset.New[int]()
	var out []RowRange
	for h.Size() > 0 {
		it, _ := h.Pop()
		if !seen.Has(it.rr.StartByte) {
			out = append(out, it.rr)
			seen.Put(it.rr.StartByte)
		}
		next := it.elemIdx + 1
		if next < len(lists[it.listIdx]) {
			h.Push(heapItem{lists[it.listIdx][next], it.listIdx, next})
		}
	}
	return out
}

// Matches verifies s exactly against one row of a parsed page, given its
// absolute row index.
func (s *Search) Matches(fi *FileIndex, rowIndex int, row []string) bool {
	switch s.kind {
	case kindValueEquals:
		for _, slot := range fi.ColumnSlots(s.column) {
			if slot < len(row) && row[slot] == s.value {
				return true
			}
		}
		return false
	case kindValueStartsWith:
		for _, slot := range fi.ColumnSlots(s.column) {
			if slot < len(row) && strings.HasPrefix(row[slot], s.value) {
				return true
			}
		}
		return false
	case kindRowsBetween:
		return rowIndex >= s.start && rowIndex < s.end
	case kindAnd:
		for _, c := range s.children {
			if !c.Matches(fi, rowIndex, row) {
				return false
			}
		}
		return true
	case kindOr:
		for _, c := range s.children {
			if c.Matches(fi, rowIndex, row) {
				return true
			}
		}
		return false
	}
	return false
}

// pageCacheKey identifies one file's page for the row-grid memo cache.
type pageCacheKey struct {
	path      string
	startByte int
}

// Evaluator runs a Search against an Indexer's committed files, re-reading
// only the candidate pages bloom filters couldn't rule out, and memoizing
// each page's parsed rows across repeated Matches verification within one
// search session.
type Evaluator struct {
	open  func(path string) (io.ReadSeeker, error)
	pages *cache.Cache[pageCacheKey, array2d.Array2D[string]]
}

// NewEvaluator returns an Evaluator that opens file content via open and
// memoizes up to pageCacheCapacity parsed pages.
func NewEvaluator(open func(path string) (io.ReadSeeker, error), pageCacheCapacity int) *Evaluator {
	if pageCacheCapacity <= 0 {
		pageCacheCapacity = 64
	}
	return &Evaluator{
		open:  open,
		pages: cache.New[pageCacheKey, array2d.Array2D[string]](pageCacheCapacity),
	}
}

// Match is one verified hit: the file it came from and its absolute row
// index within that file.
type Match struct {
	Path string
	Row  int
}

// Run evaluates s against every file in ix (in the Indexer's ascending
// path order, via Indexer.Each), returning verified row matches in
// page-start-byte order within a file and file-enumeration order across
// files.
func (e *Evaluator) Run(ix *Indexer, s *Search) ([]Match, error) {
	var out []Match
	var firstErr error
	ix.Each(func(path string, fi *FileIndex) {
		if firstErr != nil || !s.ShouldSearch(fi) {
			return
		}
		pages := s.SearchablePages(fi)
		for _, page := range pages {
			grid, err := e.loadPage(path, page, len(fi.Headers))
			if err != nil {
				firstErr = err
				return
			}
			for r := 0; r < page.EndRow-page.StartRow; r++ {
				row := make([]string, grid.Width())
				for c := 0; c < grid.Width(); c++ {
					row[c] = grid.Get(c, r)
				}
				rowIndex := page.StartRow + r
				if s.Matches(fi, rowIndex, row) {
					out = append(out, Match{Path: path, Row: rowIndex})
				}
			}
		}
	})
	return out, firstErr
}

func (e *Evaluator) loadPage(path string, page RowRange, headerCount int) (array2d.Array2D[string], error) {
	key := pageCacheKey{path: path, startByte: page.StartByte}
	if grid, ok := e.pages.Get(key); ok {
		return grid, nil
	}

	f, err := e.open(path)
	if err != nil {
		var zero array2d.Array2D[string]
		return zero, err
	}
	if c, ok := f.(io.Closer); ok {
		defer c.Close()
	}
	if _, err := f.Seek(int64(page.StartByte), io.SeekStart); err != nil {
		var zero array2d.Array2D[string]
		return zero, err
	}

	nrows := page.EndRow - page.StartRow
	grid := array2d.New[string](g.Max(headerCount, 1), g.Max(nrows, 1))
	tok := NewTokenizer(io.LimitReader(f, int64(page.EndByte-page.StartByte)), path)
	for r := 0; r < nrows; r++ {
		fields, _, _, err := tok.ReadRow()
		if err == io.EOF {
			break
		}
		if err != nil {
			return grid, err
		}
		for c := 0; c < headerCount && c < len(fields); c++ {
			grid.Set(c, r, fields[c])
		}
	}
	e.pages.Put(key, grid)
	return grid, nil
}
