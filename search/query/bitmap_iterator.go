package query

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hczhu/qute/search/index"
)

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// BitmapIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// BitmapIterator walks a roaring bitmap. The bitmap must not contain
// index.InvalidDocumentId and must not be mutated while the iterator is
// live.
type BitmapIterator struct {
	it        roaring.IntPeekable
	current   index.DocumentId
	valid     bool
	remaining int
}

func NewBitmapIterator(bitmap *roaring.Bitmap) *BitmapIterator {
	it := &BitmapIterator{
		it:        bitmap.Iterator(),
		remaining: int(bitmap.GetCardinality()),
	}

	it.pull()

	return it
}

func (it *BitmapIterator) pull() {
	if it.it.HasNext() {
		it.current = index.DocumentId(it.it.Next())
		it.valid = true
		return
	}

	it.valid = false
	it.remaining = 0
}

func (it *BitmapIterator) Next() bool {
	if !it.valid {
		return false
	}

	it.remaining--
	it.pull()

	return it.valid
}

func (it *BitmapIterator) SkipTo(target index.DocumentId) bool {
	if !it.valid {
		return false
	}

	if target <= it.current {
		return true
	}

	it.it.AdvanceIfNeeded(uint32(target))
	it.remaining--
	it.pull()

	return it.valid
}

func (it *BitmapIterator) Valid() bool {
	return it.valid
}

func (it *BitmapIterator) Value() index.DocumentId {
	if !it.valid {
		return index.InvalidDocumentId
	}

	return it.current
}

// RemainingDocs is exact across Next calls and an upper bound after SkipTo.
func (it *BitmapIterator) RemainingDocs() int {
	if !it.valid {
		return 0
	}

	return it.remaining
}

func (it *BitmapIterator) Tags() []string {
	return nil
}

func (it *BitmapIterator) HasTag() bool {
	return false
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Memory index factory
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

type memoryIndexFactory struct {
	idx *index.MemoryIndex
}

// NewMemoryIndexFactory returns a factory resolving terms against an
// in-memory index.
func NewMemoryIndexFactory(idx *index.MemoryIndex) IteratorFactory {
	return &memoryIndexFactory{idx: idx}
}

func (factory *memoryIndexFactory) IteratorForTerm(term string) (Iterator, error) {
	bitmap := factory.idx.Postings(term)
	if bitmap == nil {
		return NewEmptyIterator(), nil
	}

	return NewBitmapIterator(bitmap), nil
}
