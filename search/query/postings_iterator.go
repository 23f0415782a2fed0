package query

import "github.com/hczhu/qute/search/index"

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// PostingsIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// PostingsIterator walks one term's block-encoded posting list in a
// segment file.
type PostingsIterator struct {
	blocks    *index.BlockPostingsIterator
	current   index.DocumentId
	valid     bool
	remaining int
}

func NewPostingsIterator(blocks *index.BlockPostingsIterator, docFreq uint32) *PostingsIterator {
	it := &PostingsIterator{
		blocks:    blocks,
		remaining: int(docFreq),
	}

	it.advanceTo(0)

	return it
}

func (it *PostingsIterator) advanceTo(target index.DocumentId) {
	if it.blocks.Next(target) {
		it.current = it.blocks.DocId()
		it.valid = true
		return
	}

	it.valid = false
	it.remaining = 0
}

func (it *PostingsIterator) Next() bool {
	if !it.valid {
		return false
	}

	it.remaining--
	it.advanceTo(it.current + 1)

	return it.valid
}

func (it *PostingsIterator) SkipTo(target index.DocumentId) bool {
	if !it.valid {
		return false
	}

	if target <= it.current {
		return true
	}

	it.remaining--
	it.advanceTo(target)

	return it.valid
}

func (it *PostingsIterator) Valid() bool {
	return it.valid
}

func (it *PostingsIterator) Value() index.DocumentId {
	if !it.valid {
		return index.InvalidDocumentId
	}

	return it.current
}

// RemainingDocs starts at the term's doc frequency and is an upper bound
// after SkipTo.
func (it *PostingsIterator) RemainingDocs() int {
	if !it.valid {
		return 0
	}

	return it.remaining
}

func (it *PostingsIterator) Tags() []string {
	return nil
}

func (it *PostingsIterator) HasTag() bool {
	return false
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Segment factory
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

type segmentFactory struct {
	reader *index.SegmentReader
}

// NewSegmentFactory returns a factory resolving terms against one segment.
func NewSegmentFactory(reader *index.SegmentReader) IteratorFactory {
	return &segmentFactory{reader: reader}
}

func (factory *segmentFactory) IteratorForTerm(term string) (Iterator, error) {
	termInfo, err := factory.reader.TermInfo(term)
	if err != nil {
		return nil, err
	}

	if termInfo == nil {
		return NewEmptyIterator(), nil
	}

	blocks, err := factory.reader.BlockIterator(termInfo)
	if err != nil {
		return nil, err
	}

	return NewPostingsIterator(blocks, termInfo.DocFreq), nil
}
