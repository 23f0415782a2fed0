package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hczhu/qute/search/index"
)

func newVectorIterator(t *testing.T, docIds ...index.DocumentId) *VectorIterator {
	postingList, err := index.NewPostingList(docIds)
	require.NoError(t, err)

	return NewVectorIterator(postingList)
}

func collect(it Iterator) []index.DocumentId {
	docIds := make([]index.DocumentId, 0, 10)

	IterateWith(it, func(docId index.DocumentId) {
		docIds = append(docIds, docId)
	})

	return docIds
}

func TestEmptyIterator(t *testing.T) {
	it := NewEmptyIterator()

	assert.False(t, it.Next())
	assert.False(t, it.SkipTo(1))
	assert.False(t, it.Valid())
	assert.Equal(t, index.InvalidDocumentId, it.Value())
	assert.Equal(t, 0, it.RemainingDocs())
	assert.Nil(t, it.Tags())
	assert.False(t, it.HasTag())
}

func TestVectorIterator(t *testing.T) {
	postingList := []index.DocumentId{1, 2, 4, 7, 8, 10, 100}

	it := newVectorIterator(t, postingList...)
	assert.Equal(t, postingList, collect(it))
	assert.False(t, it.Valid())

	it = newVectorIterator(t, postingList...)
	assert.Equal(t, index.DocumentId(1), it.Value())
	assert.True(t, it.Next())
	assert.Equal(t, index.DocumentId(2), it.Value())

	// A target not greater than the current value is a no-op.
	assert.True(t, it.SkipTo(2))
	assert.Equal(t, index.DocumentId(2), it.Value())
	assert.Equal(t, 6, it.RemainingDocs())

	assert.True(t, it.SkipTo(11))
	assert.Equal(t, index.DocumentId(100), it.Value())
	assert.Equal(t, 1, it.RemainingDocs())

	assert.False(t, it.Next())
	assert.False(t, it.Valid())
	assert.Equal(t, index.InvalidDocumentId, it.Value())
	assert.Equal(t, 0, it.RemainingDocs())
}

func TestVectorIteratorSkipTo(t *testing.T) {
	it := newVectorIterator(t, 1, 2, 4, 7, 8, 10, 100)

	assert.True(t, it.SkipTo(5))
	assert.Equal(t, index.DocumentId(7), it.Value())
	assert.True(t, it.SkipTo(8))
	assert.Equal(t, index.DocumentId(8), it.Value())
	assert.True(t, it.SkipTo(9))
	assert.Equal(t, index.DocumentId(10), it.Value())
	assert.True(t, it.SkipTo(10))
	assert.Equal(t, index.DocumentId(10), it.Value())
	assert.True(t, it.SkipTo(99))
	assert.Equal(t, index.DocumentId(100), it.Value())
	assert.False(t, it.SkipTo(101))
	assert.False(t, it.Valid())
}

func TestVectorIteratorEmptyList(t *testing.T) {
	it := newVectorIterator(t)

	assert.False(t, it.Valid())
	assert.False(t, it.Next())
	assert.False(t, it.SkipTo(0))
	assert.Equal(t, 0, it.RemainingDocs())
}
