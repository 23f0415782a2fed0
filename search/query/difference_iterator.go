package query

import "github.com/hczhu/qute/search/index"

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// DifferenceIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// DifferenceIterator emits the values of lhs that are absent from rhs. The
// right side is a pure filter: it contributes no tags.
type DifferenceIterator struct {
	lhs Iterator
	rhs Iterator
	tag string
}

// NewDifferenceIterator takes ownership of both children. An empty tag
// leaves the iterator undecorated.
func NewDifferenceIterator(lhs, rhs Iterator, tag string) *DifferenceIterator {
	it := &DifferenceIterator{
		lhs: lhs,
		rhs: rhs,
		tag: tag,
	}

	it.nextAgreement()

	return it
}

// nextAgreement advances lhs until it sits on a value rhs doesn't have.
func (it *DifferenceIterator) nextAgreement() bool {
	for it.lhs.Valid() {
		if !it.rhs.SkipTo(it.lhs.Value()) || it.rhs.Value() > it.lhs.Value() {
			return true
		}

		it.lhs.Next()
	}

	return false
}

func (it *DifferenceIterator) Next() bool {
	if !it.Valid() || !it.lhs.Next() {
		return false
	}

	return it.nextAgreement()
}

func (it *DifferenceIterator) SkipTo(target index.DocumentId) bool {
	if !it.lhs.SkipTo(target) {
		return false
	}

	return it.nextAgreement()
}

func (it *DifferenceIterator) Valid() bool {
	return it.lhs.Valid()
}

func (it *DifferenceIterator) Value() index.DocumentId {
	return it.lhs.Value()
}

func (it *DifferenceIterator) RemainingDocs() int {
	lhsRemaining := it.lhs.RemainingDocs()
	rhsRemaining := it.rhs.RemainingDocs()

	if lhsRemaining > rhsRemaining {
		return lhsRemaining - rhsRemaining
	}

	return 0
}

func (it *DifferenceIterator) Tags() []string {
	if !it.Valid() || !it.HasTag() {
		return nil
	}

	tags := it.lhs.Tags()

	if it.tag != "" {
		tags = append(tags, it.tag)
	}

	return tags
}

func (it *DifferenceIterator) HasTag() bool {
	return it.lhs.HasTag() || it.rhs.HasTag() || it.tag != ""
}
