package query

import (
	"slices"

	"github.com/hczhu/qute/search/index"
)

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// Iterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// Iterator is a lazy position over a stream of strictly ascending document
// ids. An iterator is either live or exhausted; once exhausted it never
// becomes live again. Iterators are not safe for concurrent use.
type Iterator interface {
	// Next advances past the current value. Returns true iff the iterator
	// is still valid after this call.
	Next() bool

	// SkipTo repositions to the smallest value >= target. A target not
	// greater than the current value is a no-op. Returns true iff the
	// iterator is still valid after this call.
	SkipTo(target index.DocumentId) bool

	// Valid reports whether a current value is defined.
	Valid() bool

	// Value returns the current value, or index.InvalidDocumentId when the
	// iterator is exhausted.
	Value() index.DocumentId

	// RemainingDocs estimates how many values remain. Not accurate beyond
	// being zero when the iterator is exhausted.
	RemainingDocs() int

	// Tags returns the tags attributed to the current value, innermost
	// first. Nil when no tag fired or the iterator is exhausted.
	Tags() []string

	// HasTag reports whether this iterator or any descendant carries a
	// tag. Stable across the iterator's lifetime.
	HasTag() bool
}

// IterateWith drives it to exhaustion, calling callback on each value.
func IterateWith(it Iterator, callback func(index.DocumentId)) {
	for ; it.Valid(); it.Next() {
		callback(it.Value())
	}
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// EmptyIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

type EmptyIterator struct {
}

func NewEmptyIterator() *EmptyIterator {
	return &EmptyIterator{}
}

func (it *EmptyIterator) Next() bool {
	return false
}

func (it *EmptyIterator) SkipTo(target index.DocumentId) bool {
	return false
}

func (it *EmptyIterator) Valid() bool {
	return false
}

func (it *EmptyIterator) Value() index.DocumentId {
	return index.InvalidDocumentId
}

func (it *EmptyIterator) RemainingDocs() int {
	return 0
}

func (it *EmptyIterator) Tags() []string {
	return nil
}

func (it *EmptyIterator) HasTag() bool {
	return false
}

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// VectorIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// VectorIterator walks an in-memory posting list. The list is immutable for
// the iterator's lifetime.
type VectorIterator struct {
	postingList index.PostingList
	nextPos     int
}

func NewVectorIterator(postingList index.PostingList) *VectorIterator {
	return &VectorIterator{postingList: postingList}
}

func (it *VectorIterator) Next() bool {
	if !it.Valid() {
		return false
	}

	it.nextPos++

	return it.Valid()
}

func (it *VectorIterator) SkipTo(target index.DocumentId) bool {
	pos, _ := slices.BinarySearch(it.postingList[it.nextPos:], target)
	it.nextPos += pos

	return it.Valid()
}

func (it *VectorIterator) Valid() bool {
	return it.nextPos < len(it.postingList)
}

func (it *VectorIterator) Value() index.DocumentId {
	if !it.Valid() {
		return index.InvalidDocumentId
	}

	return it.postingList[it.nextPos]
}

func (it *VectorIterator) RemainingDocs() int {
	return len(it.postingList) - it.nextPos
}

func (it *VectorIterator) Tags() []string {
	return nil
}

func (it *VectorIterator) HasTag() bool {
	return false
}
