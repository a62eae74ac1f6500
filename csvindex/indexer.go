package csvindex

import (
	"io"
	"sync"
	"time"

	g "github.com/zyedidia/generic"

	"github.com/cflag/rope/btree"
	"github.com/cflag/rope/hashmap"
	"github.com/cflag/rope/multimap"
	"github.com/cflag/rope/queue"
	"github.com/cflag/rope/rope"
	"github.com/cflag/rope/trie"
)

// IndexerOptions configures how Indexer builds and pages FileIndex values.
type IndexerOptions struct {
	// RowsPerPage is the number of data rows grouped behind one bloom
	// filter per column. Defaults to 1000 when zero.
	RowsPerPage int
	// BloomFilterSize is the bit-vector length of each page's filters.
	// Defaults to 2048 when zero.
	BloomFilterSize int
	// HashIterations is the number of double-hashing rounds per
	// character. Defaults to 4 when zero.
	HashIterations int
	// SupportedOperations is the bitfield of query kinds every filter
	// built by this Indexer will record positions for. Defaults to
	// OpContains|OpEquals (Contains implies StartsWith|EndsWith; Equals
	// adds the terminator needed by ValueEquals) when zero.
	SupportedOperations int
	// Parallelism bounds how many files IndexFiles indexes concurrently.
	// Defaults to 4 when zero.
	Parallelism   int
	LastCommitRef *string
}

func (o IndexerOptions) rowsPerPage() int {
	if o.RowsPerPage <= 0 {
		return 1000
	}
	return o.RowsPerPage
}

func (o IndexerOptions) bloomSize() int {
	if o.BloomFilterSize <= 0 {
		return 2048
	}
	return o.BloomFilterSize
}

func (o IndexerOptions) hashIterations() int {
	if o.HashIterations <= 0 {
		return 4
	}
	return o.HashIterations
}

func (o IndexerOptions) supportedOps() int {
	if o.SupportedOperations <= 0 {
		return OpContains | OpEquals
	}
	return o.SupportedOperations
}

func (o IndexerOptions) parallelism() int {
	if o.Parallelism <= 0 {
		return 4
	}
	return o.Parallelism
}

type inflight struct {
	done   chan struct{}
	result *FileIndex
	err    error
}

// Indexer owns the committed file map (an ordered btree, so file
// enumeration order falls out of key order for free) and the in-flight
// table that serialises concurrent re-indexing of the same path.
type Indexer struct {
	opts IndexerOptions

	mu        sync.RWMutex
	committed *btree.Tree[string, *FileIndex]

	infMu    sync.Mutex
	inflight *hashmap.Map[string, *inflight]
}

// NewIndexer returns an Indexer configured by opts.
func NewIndexer(opts IndexerOptions) *Indexer {
	return &Indexer{
		opts:      opts,
		committed: btree.New[string, *FileIndex](func(a, b string) bool { return a < b }),
		inflight:  hashmap.NewMap[string, *inflight](16, g.HashString),
	}
}

// Options returns the Indexer's configuration.
func (ix *Indexer) Options() IndexerOptions { return ix.opts }

// Get returns the committed FileIndex for path, if any.
func (ix *Indexer) Get(path string) (*FileIndex, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.committed.Get(path)
}

// Each calls fn on every committed file, in ascending path order.
func (ix *Indexer) Each(fn func(path string, fi *FileIndex)) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	ix.committed.Each(fn)
}

// IndexFile indexes path idempotently: if a committed FileIndex already
// exists and lastModified is no newer, it's reused; concurrent callers
// racing to index the same path join the single in-flight attempt instead
// of duplicating work.
func (ix *Indexer) IndexFile(path string, lastModified time.Time, r io.Reader) (*FileIndex, error) {
	if cached, ok := ix.Get(path); ok && !lastModified.After(cached.LastModifiedUTC) {
		return cached, nil
	}

	ix.infMu.Lock()
	if existing, ok := ix.inflight.Get(path); ok {
		ix.infMu.Unlock()
		<-existing.done
		return existing.result, existing.err
	}
	infl := &inflight{done: make(chan struct{})}
	ix.inflight.Put(path, infl)
	ix.infMu.Unlock()

	fi, err := buildFileIndex(path, lastModified, r, ix.opts)

	infl.result, infl.err = fi, err
	close(infl.done)
	ix.infMu.Lock()
	ix.inflight.Remove(path)
	ix.infMu.Unlock()

	if fi != nil {
		ix.mu.Lock()
		ix.committed.Put(path, fi)
		ix.mu.Unlock()
	}
	return fi, err
}

// FileSource supplies a file's content and last-modified time on demand,
// so IndexFiles can open files lazily from within its worker pool.
type FileSource func(path string) (io.Reader, time.Time, error)

// IndexFiles indexes every path, running up to opts.Parallelism workers
// pulled from a FIFO queue; each file's own indexing stays sequential. It
// returns one error per input path, in the same order as paths, nil where
// indexing succeeded.
func (ix *Indexer) IndexFiles(paths []string, open FileSource) []error {
	q := queue.New[string]()
	for _, p := range paths {
		q.Enqueue(p)
	}
	errs := make([]error, len(paths))
	slot := make(map[string]int, len(paths))
	for i, p := range paths {
		slot[p] = i
	}

	var qmu sync.Mutex
	var wg sync.WaitGroup
	degree := ix.opts.parallelism()
	if degree > len(paths) {
		degree = len(paths)
	}
	if degree == 0 {
		return errs
	}
	for w := 0; w < degree; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				qmu.Lock()
				path, ok := q.TryDequeue()
				qmu.Unlock()
				if !ok {
					return
				}
				r, mod, err := open(path)
				if err != nil {
					errs[slot[path]] = err
					continue
				}
				_, err = ix.IndexFile(path, mod, r)
				if c, ok := r.(io.Closer); ok {
					_ = c.Close()
				}
				errs[slot[path]] = err
			}
		}()
	}
	wg.Wait()
	return errs
}

func newPageFilters(n, size, hashCount, supportedOps int) []*BloomFilter {
	filters := make([]*BloomFilter, n)
	for i := range filters {
		filters[i] = NewBloomFilter(size, hashCount, supportedOps)
	}
	return filters
}

func buildFileIndex(path string, lastModified time.Time, r io.Reader, opts IndexerOptions) (*FileIndex, error) {
	tok := NewTokenizer(r, path)

	headers, _, _, err := tok.ReadRow()
	if err == io.EOF {
		return &FileIndex{
			Path:            path,
			LastModifiedUTC: lastModified,
			names:           trie.New[int](),
			dupes:           multimap.NewMapSlice[string, int](),
		}, nil
	}
	if err != nil {
		if me, ok := err.(*MalformedInput); ok {
			return &FileIndex{Path: path, LastModifiedUTC: lastModified, names: trie.New[int](), dupes: multimap.NewMapSlice[string, int](), Warning: me.Error()}, nil
		}
		return nil, err
	}

	names := trie.New[int]()
	dupes := multimap.NewMapSlice[string, int]()
	for i, h := range headers {
		if !names.Contains(h) {
			names.Put(h, i)
		}
		dupes.Put(h, i)
	}

	rowsPerPage := opts.rowsPerPage()
	bfSize := opts.bloomSize()
	hashIter := opts.hashIterations()
	supported := opts.supportedOps()

	columnRanges := make([][]RowRange, len(headers))
	curFilters := newPageFilters(len(headers), bfSize, hashIter, supported)

	rowIndex := 0
	pageRowCount := 0
	windowStartByte := -1
	windowStartRow := 0
	lastRowEnd := 0

	var warning string
	for {
		fields, rowStart, rowEnd, rerr := tok.ReadRow()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			if me, ok := rerr.(*MalformedInput); ok {
				warning = me.Error()
				break
			}
			return nil, rerr
		}

		if windowStartByte == -1 {
			windowStartByte = rowStart
			windowStartRow = rowIndex
		}
		for i := 0; i < len(headers) && i < len(fields); i++ {
			curFilters[i].Add(fields[i], supported)
		}
		lastRowEnd = rowEnd
		rowIndex++
		pageRowCount++

		if pageRowCount == rowsPerPage {
			closePage(columnRanges, curFilters, windowStartByte, lastRowEnd, windowStartRow, rowIndex)
			curFilters = newPageFilters(len(headers), bfSize, hashIter, supported)
			pageRowCount = 0
			windowStartByte = -1
		}
	}
	if pageRowCount > 0 {
		closePage(columnRanges, curFilters, windowStartByte, lastRowEnd, windowStartRow, rowIndex)
	}

	columns := make([]*ColumnIndex, len(headers))
	for i, h := range headers {
		columns[i] = &ColumnIndex{Name: h, Ranges: rope.FromBuffer(columnRanges[i])}
	}

	return &FileIndex{
		Path:            path,
		LastModifiedUTC: lastModified,
		Headers:         headers,
		Columns:         columns,
		names:           names,
		dupes:           dupes,
		Warning:         warning,
	}, nil
}

func closePage(columnRanges [][]RowRange, filters []*BloomFilter, startByte, endByte, startRow, endRow int) {
	for i := range filters {
		columnRanges[i] = append(columnRanges[i], RowRange{
			StartByte: startByte,
			EndByte:   endByte,
			StartRow:  startRow,
			EndRow:    endRow,
			Filter:    filters[i],
		})
	}
}
