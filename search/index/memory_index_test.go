package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardTokenizer(t *testing.T) {
	tokenizer := NewStandardTokenizer()
	tokenizer.Reset([]byte("Hello, World! C'est l'été."))

	tokens := make([]string, 0, 10)
	for {
		token, ok := tokenizer.NextToken()
		if !ok {
			break
		}

		tokens = append(tokens, token)
	}

	assert.Equal(t, []string{"hello", "world", "c", "est", "l", "été"}, tokens)
}

func TestMemoryIndex(t *testing.T) {
	idx := NewMemoryIndex()

	require.NoError(t, idx.AddDocument(Document{Id: 0, Text: []byte("the quick brown fox")}))
	require.NoError(t, idx.AddDocument(Document{Id: 1, Text: []byte("the lazy dog")}))
	require.NoError(t, idx.Add("t:extra", 7))

	assert.Equal(t, []uint32{0, 1}, idx.Postings("the").ToArray())
	assert.Equal(t, []uint32{0}, idx.Postings("fox").ToArray())
	assert.Equal(t, []uint32{7}, idx.Postings("t:extra").ToArray())
	assert.Nil(t, idx.Postings("missing"))

	assert.Equal(t, []byte("the lazy dog"), idx.Value(1))
	assert.Nil(t, idx.Value(42))

	assert.Equal(t, []DocumentId{0, 1}, idx.DocIds())

	terms := idx.Terms()
	assert.Contains(t, terms, "quick")
	assert.IsIncreasing(t, terms)
}

func TestMemoryIndexRejectsInvalidDocumentId(t *testing.T) {
	idx := NewMemoryIndex()

	assert.Error(t, idx.Add("term", InvalidDocumentId))
	assert.Error(t, idx.AddDocument(Document{Id: InvalidDocumentId, Text: []byte("x")}))
}
