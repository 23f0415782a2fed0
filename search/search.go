package search

import (
	"golang.org/x/sync/errgroup"

	"github.com/hczhu/qute/search/index"
	"github.com/hczhu/qute/search/query"
)

// Match is one search hit: a global document id and the tags fired by the
// query subtrees that contributed to it.
type Match struct {
	DocId uint64
	Tags  []string
}

// Search evaluates q against every committed segment and returns matches
// in ascending doc-id order within each segment, segments in commit order.
// Deleted documents are filtered out. Segments are evaluated concurrently:
// each gets its own iterator tree over immutable mapped files.
func Search(q string, reader *index.IndexReader) ([]Match, error) {
	if len(reader.SegmentReaders) == 0 {
		// Still surface syntax errors on an empty index.
		parser := query.NewParser(query.IteratorFactoryFunc(func(term string) (query.Iterator, error) {
			return query.NewEmptyIterator(), nil
		}))

		if _, err := parser.Parse(q); err != nil {
			return nil, err
		}

		return nil, nil
	}

	matchesBySegment := make([][]Match, len(reader.SegmentReaders))

	var group errgroup.Group

	for i, segmentReader := range reader.SegmentReaders {
		i, segmentReader := i, segmentReader

		group.Go(func() error {
			matches, err := searchSegment(q, segmentReader)
			if err != nil {
				return err
			}

			matchesBySegment[i] = matches

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	results := make([]Match, 0, 100)
	for _, matches := range matchesBySegment {
		results = append(results, matches...)
	}

	return results, nil
}

func searchSegment(q string, segmentReader *index.SegmentReader) ([]Match, error) {
	parser := query.NewParser(query.NewSegmentFactory(segmentReader))

	it, err := parser.Parse(q)
	if err != nil {
		return nil, err
	}

	if !segmentReader.DeletedDocIds.IsEmpty() {
		it = query.NewDifferenceIterator(it, query.NewBitmapIterator(segmentReader.DeletedDocIds), "")
	}

	var matches []Match

	for ; it.Valid(); it.Next() {
		matches = append(matches, Match{
			DocId: index.ToGlobalDocId(segmentReader.Id, uint32(it.Value())),
			Tags:  it.Tags(),
		})
	}

	return matches, nil
}

// SearchMemory evaluates q against an in-memory index. Doc ids in the
// returned matches are the index's own document ids.
func SearchMemory(q string, idx *index.MemoryIndex) ([]Match, error) {
	parser := query.NewParser(query.NewMemoryIndexFactory(idx))

	it, err := parser.Parse(q)
	if err != nil {
		return nil, err
	}

	var matches []Match

	for ; it.Valid(); it.Next() {
		matches = append(matches, Match{
			DocId: uint64(it.Value()),
			Tags:  it.Tags(),
		})
	}

	return matches, nil
}
