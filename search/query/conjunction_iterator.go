package query

import "github.com/hczhu/qute/search/index"

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// ConjunctionIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// ConjunctionIterator intersects its children. Slot 0 always holds the
// candidate: the child with the running maximum value; the other children
// leap-frog to it.
type ConjunctionIterator struct {
	children         []Iterator
	tag              string
	childrenHaveTags bool
}

// NewConjunctionIterator takes ownership of children and requires at least
// one. An empty tag leaves the iterator undecorated.
func NewConjunctionIterator(children []Iterator, tag string) *ConjunctionIterator {
	if len(children) == 0 {
		panic("a conjunction iterator must have children")
	}

	childrenHaveTags := false
	maxPos := 0

	for i, child := range children {
		if child.HasTag() {
			childrenHaveTags = true
		}

		if child.Value() > children[maxPos].Value() {
			maxPos = i
		}
	}

	// Promoting the maximum child to slot 0 shortens the first alignment.
	children[0], children[maxPos] = children[maxPos], children[0]

	it := &ConjunctionIterator{
		children:         children,
		tag:              tag,
		childrenHaveTags: childrenHaveTags,
	}

	it.nextAgreement()

	return it
}

// nextAgreement advances the non-candidate children until all children
// agree on one value. Pre-condition: the maximum value is at slot 0.
func (it *ConjunctionIterator) nextAgreement() bool {
	pos := 1

	for pos < len(it.children) && it.children[0].Valid() {
		candidate := it.children[0].Value()

		for ; pos < len(it.children); pos++ {
			if it.children[pos].Value() >= candidate {
				continue
			}

			it.children[pos].SkipTo(candidate)

			if it.children[pos].Value() > candidate {
				// A new maximum: make it the candidate and restart.
				it.children[pos], it.children[0] = it.children[0], it.children[pos]
				pos = 1
				break
			}
		}
	}

	return pos == len(it.children)
}

func (it *ConjunctionIterator) Next() bool {
	if !it.Valid() {
		return false
	}

	it.children[0].Next()

	return it.children[0].Valid() && it.nextAgreement()
}

func (it *ConjunctionIterator) SkipTo(target index.DocumentId) bool {
	if !it.Valid() || !it.children[0].SkipTo(target) {
		return false
	}

	return it.nextAgreement()
}

func (it *ConjunctionIterator) Valid() bool {
	return it.children[0].Valid()
}

func (it *ConjunctionIterator) Value() index.DocumentId {
	return it.children[0].Value()
}

func (it *ConjunctionIterator) RemainingDocs() int {
	if !it.Valid() {
		return 0
	}

	remaining := it.children[0].RemainingDocs()

	for _, child := range it.children[1:] {
		if childRemaining := child.RemainingDocs(); childRemaining < remaining {
			remaining = childRemaining
		}
	}

	return remaining
}

// Tags concatenates every child's tags in stored order. All children sit on
// the same value, so all of them contribute.
func (it *ConjunctionIterator) Tags() []string {
	if !it.Valid() || !it.HasTag() {
		return nil
	}

	var tags []string

	if it.childrenHaveTags {
		for _, child := range it.children {
			tags = append(tags, child.Tags()...)
		}
	}

	if it.tag != "" {
		tags = append(tags, it.tag)
	}

	return tags
}

func (it *ConjunctionIterator) HasTag() bool {
	return it.childrenHaveTags || it.tag != ""
}
