package query

import "github.com/hczhu/qute/search/index"

// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -
// DisjunctionIterator
// - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -

// DisjunctionIterator merges its children, emitting each distinct id once
// in ascending order. children is kept as a binary min-heap keyed by
// current value; exhausted children are popped off.
type DisjunctionIterator struct {
	children         []Iterator
	tag              string
	childrenHaveTags bool
}

// NewDisjunctionIterator takes ownership of children and requires at least
// one. An empty tag leaves the iterator undecorated.
func NewDisjunctionIterator(children []Iterator, tag string) *DisjunctionIterator {
	if len(children) == 0 {
		panic("a disjunction iterator must have children")
	}

	childrenHaveTags := false

	for _, child := range children {
		if child.HasTag() {
			childrenHaveTags = true
			break
		}
	}

	liveChildren := children[:0]
	for _, child := range children {
		if child.Valid() {
			liveChildren = append(liveChildren, child)
		}
	}

	it := &DisjunctionIterator{
		children:         liveChildren,
		tag:              tag,
		childrenHaveTags: childrenHaveTags,
	}

	it.makeHeap()

	return it
}

func (it *DisjunctionIterator) siftDown(pos int) {
	for {
		minChild := pos*2 + 1
		if minChild >= len(it.children) {
			return
		}

		if minChild+1 < len(it.children) &&
			it.children[minChild+1].Value() < it.children[minChild].Value() {
			minChild++
		}

		if it.children[minChild].Value() >= it.children[pos].Value() {
			return
		}

		it.children[pos], it.children[minChild] = it.children[minChild], it.children[pos]
		pos = minChild
	}
}

func (it *DisjunctionIterator) makeHeap() {
	for pos := len(it.children)/2 - 1; pos >= 0; pos-- {
		it.siftDown(pos)
	}
}

// Next advances every child sitting on the current value. Children that
// stay live sift down in place; exhausted ones leave the heap.
func (it *DisjunctionIterator) Next() bool {
	if !it.Valid() {
		return false
	}

	current := it.Value()

	for len(it.children) > 0 && it.children[0].Value() == current {
		it.children[0].Next()

		if it.children[0].Valid() {
			it.siftDown(0)
			continue
		}

		last := len(it.children) - 1
		it.children[0] = it.children[last]
		it.children = it.children[:last]

		if last > 0 {
			it.siftDown(0)
		}
	}

	return it.Valid()
}

// SkipTo repositions every child, not just the root, since target may
// exceed several children's current values. Rebuilding the heap from
// scratch is O(k) and simpler than selective sift-downs.
func (it *DisjunctionIterator) SkipTo(target index.DocumentId) bool {
	for _, child := range it.children {
		child.SkipTo(target)
	}

	next := 0
	for i := range it.children {
		if it.children[i].Valid() {
			it.children[i], it.children[next] = it.children[next], it.children[i]
			next++
		}
	}

	it.children = it.children[:next]
	it.makeHeap()

	return it.Valid()
}

func (it *DisjunctionIterator) Valid() bool {
	return len(it.children) > 0 && it.children[0].Valid()
}

func (it *DisjunctionIterator) Value() index.DocumentId {
	if !it.Valid() {
		return index.InvalidDocumentId
	}

	return it.children[0].Value()
}

func (it *DisjunctionIterator) RemainingDocs() int {
	if !it.Valid() {
		return 0
	}

	remaining := 0

	for _, child := range it.children {
		if childRemaining := child.RemainingDocs(); childRemaining > remaining {
			remaining = childRemaining
		}
	}

	return remaining
}

// collectTags appends the tags of every heap node sitting on currentValue,
// in pre-order. Children beneath a larger-valued node can't contribute
// because of the heap property.
func (it *DisjunctionIterator) collectTags(heapPos int, currentValue index.DocumentId, tags []string) []string {
	if heapPos >= len(it.children) || it.children[heapPos].Value() != currentValue {
		return tags
	}

	tags = append(tags, it.children[heapPos].Tags()...)
	tags = it.collectTags(heapPos*2+1, currentValue, tags)

	return it.collectTags(heapPos*2+2, currentValue, tags)
}

func (it *DisjunctionIterator) Tags() []string {
	if !it.Valid() || !it.HasTag() {
		return nil
	}

	var tags []string

	if it.childrenHaveTags {
		tags = it.collectTags(0, it.Value(), tags)
	}

	if it.tag != "" {
		tags = append(tags, it.tag)
	}

	return tags
}

func (it *DisjunctionIterator) HasTag() bool {
	return it.childrenHaveTags || it.tag != ""
}
