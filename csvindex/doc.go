package csvindex

import (
	"encoding/json"
	"time"

	"github.com/cflag/rope/multimap"
	"github.com/cflag/rope/rope"
	"github.com/cflag/rope/trie"
)

// IndexDocument is the stable JSON schema for a committed index: only
// these field names and the per-range "s"/"e"/"sr"/"er"/"f" keys are
// normative. The filter size and hash count live once at the root rather
// than being repeated per range.
type IndexDocument struct {
	RowsPerPage         int            `json:"RowsPerPage"`
	BloomFilterSize     int            `json:"BloomFilterSize"`
	HashIterations      int            `json:"HashIterations"`
	SupportedOperations int            `json:"SupportedOperations"`
	LastCommitRef       *string        `json:"LastCommitRef"`
	Files               []fileDocument `json:"Files"`
}

type fileDocument struct {
	FilePath        string           `json:"FilePath"`
	LastModifiedUtc string           `json:"LastModifiedUtc"`
	Columns         []columnDocument `json:"Columns"`
}

type columnDocument struct {
	Name   string             `json:"Name"`
	Ranges []rowRangeDocument `json:"Ranges"`
}

type rowRangeDocument struct {
	S  int    `json:"s"`
	E  int    `json:"e"`
	SR int    `json:"sr"`
	ER int    `json:"er"`
	F  string `json:"f"`
}

// Snapshot renders the Indexer's committed files as an IndexDocument.
func (ix *Indexer) Snapshot() IndexDocument {
	doc := IndexDocument{
		RowsPerPage:         ix.opts.rowsPerPage(),
		BloomFilterSize:     ix.opts.bloomSize(),
		HashIterations:      ix.opts.hashIterations(),
		SupportedOperations: ix.opts.supportedOps(),
		LastCommitRef:       ix.opts.LastCommitRef,
	}
	ix.Each(func(path string, fi *FileIndex) {
		fd := fileDocument{
			FilePath:        path,
			LastModifiedUtc: fi.LastModifiedUTC.UTC().Format(time.RFC3339),
		}
		for _, col := range fi.Columns {
			cd := columnDocument{Name: col.Name}
			col.Ranges.Each(func(rr RowRange) {
				cd.Ranges = append(cd.Ranges, rowRangeDocument{
					S: rr.StartByte, E: rr.EndByte, SR: rr.StartRow, ER: rr.EndRow,
					F: rr.Filter.Serialize(),
				})
			})
			fd.Columns = append(fd.Columns, cd)
		}
		doc.Files = append(doc.Files, fd)
	})
	return doc
}

// MarshalJSON renders the Indexer directly to the stable index format.
func (ix *Indexer) MarshalJSON() ([]byte, error) {
	return json.Marshal(ix.Snapshot())
}

// LoadIndexDocument rebuilds an Indexer from a previously-serialized
// IndexDocument, rehydrating each page's bloom filter from the root's
// shared size/hashCount/supportedOps.
func LoadIndexDocument(doc IndexDocument) (*Indexer, error) {
	ix := NewIndexer(IndexerOptions{
		RowsPerPage:         doc.RowsPerPage,
		BloomFilterSize:     doc.BloomFilterSize,
		HashIterations:      doc.HashIterations,
		SupportedOperations: doc.SupportedOperations,
		LastCommitRef:       doc.LastCommitRef,
	})

	for _, fd := range doc.Files {
		lm, err := time.Parse(time.RFC3339, fd.LastModifiedUtc)
		if err != nil {
			return nil, err
		}

		names := trie.New[int]()
		dupes := multimap.NewMapSlice[string, int]()
		headers := make([]string, len(fd.Columns))
		columns := make([]*ColumnIndex, len(fd.Columns))

		for i, cd := range fd.Columns {
			headers[i] = cd.Name
			if !names.Contains(cd.Name) {
				names.Put(cd.Name, i)
			}
			dupes.Put(cd.Name, i)

			var ranges []RowRange
			for _, rd := range cd.Ranges {
				bf, err := DeserializeBloomFilter(rd.F, doc.BloomFilterSize, doc.HashIterations, doc.SupportedOperations)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, RowRange{StartByte: rd.S, EndByte: rd.E, StartRow: rd.SR, EndRow: rd.ER, Filter: bf})
			}
			columns[i] = &ColumnIndex{Name: cd.Name, Ranges: rope.FromBuffer(ranges)}
		}

		fi := &FileIndex{
			Path:            fd.FilePath,
			LastModifiedUTC: lm,
			Headers:         headers,
			Columns:         columns,
			names:           names,
			dupes:           dupes,
		}
		ix.committed.Put(fi.Path, fi)
	}
	return ix, nil
}

// ParseIndexDocument parses a serialized index file produced by
// Indexer.MarshalJSON and rebuilds an Indexer from it.
func ParseIndexDocument(data []byte) (*Indexer, error) {
	var doc IndexDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return LoadIndexDocument(doc)
}
