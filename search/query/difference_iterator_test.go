package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hczhu/qute/search/index"
)

func TestDifferenceIterator(t *testing.T) {
	newIterator := func() Iterator {
		return NewDifferenceIterator(
			newVectorIterator(t, 0, 3, 8, 19, 20, 21),
			newVectorIterator(t, 0, 4, 8, 9, 10, 21, 32),
			"")
	}

	it := newIterator()
	assert.Equal(t, []index.DocumentId{3, 19, 20}, collect(it))
	assert.False(t, it.Valid())

	it = newIterator()
	assert.Equal(t, index.DocumentId(3), it.Value())
	assert.True(t, it.SkipTo(4))
	assert.Equal(t, index.DocumentId(19), it.Value())
	assert.False(t, it.SkipTo(21))
	assert.False(t, it.Valid())
}

func TestDifferenceIteratorAlgebra(t *testing.T) {
	docIds := []index.DocumentId{2, 5, 9, 14}

	// x \ empty == x
	it := NewDifferenceIterator(newVectorIterator(t, docIds...), NewEmptyIterator(), "")
	assert.Equal(t, docIds, collect(it))

	// empty \ x == empty
	it = NewDifferenceIterator(NewEmptyIterator(), newVectorIterator(t, docIds...), "")
	assert.False(t, it.Valid())

	// x \ x == empty
	it = NewDifferenceIterator(
		newVectorIterator(t, docIds...),
		newVectorIterator(t, docIds...),
		"")
	assert.False(t, it.Valid())
}

func TestDifferenceIteratorRemainingDocs(t *testing.T) {
	it := NewDifferenceIterator(
		newVectorIterator(t, 0, 3, 8, 19, 20),
		newVectorIterator(t, 3, 19),
		"")

	assert.Equal(t, 3, it.RemainingDocs())

	it = NewDifferenceIterator(
		newVectorIterator(t, 0),
		newVectorIterator(t, 1, 2, 3),
		"")

	assert.Equal(t, 0, it.RemainingDocs())
	assert.Equal(t, []index.DocumentId{0}, collect(it))
}

func TestDifferenceIteratorTags(t *testing.T) {
	// The right side is a pure filter: its tags never fire.
	it := NewDifferenceIterator(
		NewConjunctionIterator([]Iterator{newVectorIterator(t, 1, 4, 7)}, "kept"),
		NewDisjunctionIterator([]Iterator{newVectorIterator(t, 4)}, "filtered"),
		"minus")

	assert.True(t, it.HasTag())
	assert.Equal(t, index.DocumentId(1), it.Value())
	assert.Equal(t, []string{"kept", "minus"}, it.Tags())

	assert.True(t, it.Next())
	assert.Equal(t, index.DocumentId(7), it.Value())
	assert.Equal(t, []string{"kept", "minus"}, it.Tags())

	assert.False(t, it.Next())
	assert.Nil(t, it.Tags())
}
