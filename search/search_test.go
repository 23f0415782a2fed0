package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hczhu/qute/search"
	"github.com/hczhu/qute/search/index"
	"github.com/hczhu/qute/search/query"
)

var quotes = []string{
	"A man is never more truthful than when he acknowledges himself a liar.",
	"I don't give a damn for a man that can only spell a word one way.",
	"The human race has one really effective weapon, and that is laughter.",
	"Loyalty to petrified opinion never yet broke a chain or freed a human soul.",
}

func initQuotesIndex(t *testing.T) string {
	directory := t.TempDir()

	indexWriter := index.NewIndexWriter(directory)

	docs := make([]index.Document, 0, len(quotes))
	for i, quote := range quotes {
		docs = append(docs, index.Document{Id: index.DocumentId(i), Text: []byte(quote)})
	}

	require.NoError(t, indexWriter.AddDocuments(docs))

	return directory
}

func docTexts(t *testing.T, indexReader *index.IndexReader, matches []search.Match) []string {
	texts := make([]string, 0, len(matches))

	for _, match := range matches {
		value, err := indexReader.Value(match.DocId)
		require.NoError(t, err)

		texts = append(texts, string(value))
	}

	return texts
}

func TestSearch(t *testing.T) {
	directory := initQuotesIndex(t)

	indexReader, err := index.NewIndexReader(directory)
	require.NoError(t, err)
	defer indexReader.Close()

	matches, err := search.Search(
		"(or (and tag:man_liar man liar) (diff tag:human-weapon human weapon))",
		indexReader)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, []string{quotes[0], quotes[3]}, docTexts(t, indexReader, matches))
	assert.Equal(t, []string{"man_liar"}, matches[0].Tags)
	assert.Equal(t, []string{"human-weapon"}, matches[1].Tags)
}

func TestSearchMultipleSegments(t *testing.T) {
	directory := t.TempDir()

	indexWriter := index.NewIndexWriter(directory)

	// Each batch becomes its own segment.
	require.NoError(t, indexWriter.AddDocuments([]index.Document{
		{Id: 0, Text: []byte("hello world")},
		{Id: 1, Text: []byte("goodbye world")},
	}))
	require.NoError(t, indexWriter.AddDocuments([]index.Document{
		{Id: 0, Text: []byte("hello again")},
	}))

	indexReader, err := index.NewIndexReader(directory)
	require.NoError(t, err)
	defer indexReader.Close()

	require.Len(t, indexReader.SegmentReaders, 2)

	matches, err := search.Search("hello", indexReader)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"hello world", "hello again"},
		docTexts(t, indexReader, matches))

	matches, err = search.Search("(and hello world)", indexReader)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, docTexts(t, indexReader, matches))
}

func TestSearchDeletedDocuments(t *testing.T) {
	directory := initQuotesIndex(t)

	indexReader, err := index.NewIndexReader(directory)
	require.NoError(t, err)

	matches, err := search.Search("man", indexReader)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	require.NoError(t, indexReader.Close())

	indexWriter := index.NewIndexWriter(directory)
	require.NoError(t, indexWriter.DeleteDocuments([]uint64{matches[0].DocId}))

	indexReader, err = index.NewIndexReader(directory)
	require.NoError(t, err)
	defer indexReader.Close()

	matches, err = search.Search("man", indexReader)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []string{quotes[1]}, docTexts(t, indexReader, matches))
}

func TestSearchParseError(t *testing.T) {
	directory := initQuotesIndex(t)

	indexReader, err := index.NewIndexReader(directory)
	require.NoError(t, err)
	defer indexReader.Close()

	_, err = search.Search("(and man (or human)", indexReader)
	require.Error(t, err)

	var parseErr *query.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestSearchEmptyIndex(t *testing.T) {
	indexReader, err := index.NewIndexReader(t.TempDir())
	require.NoError(t, err)

	matches, err := search.Search("hello", indexReader)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// Syntax errors surface even without segments.
	_, err = search.Search("(diff a)", indexReader)
	var parseErr *query.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestSearchMemory(t *testing.T) {
	idx := index.NewMemoryIndex()

	postingLists := map[string][]index.DocumentId{
		"t:fb": {0, 3, 5, 8},
		"c:fb": {0, 2, 8, 9, 13},
		"t:g":  {2, 3, 6},
		"c:g":  {1, 3, 6, 7},
	}

	for term, docIds := range postingLists {
		for _, docId := range docIds {
			require.NoError(t, idx.Add(term, docId))
		}
	}

	matches, err := search.SearchMemory("(or (and t:fb c:fb) (and t:g c:g))", idx)
	require.NoError(t, err)

	docIds := make([]uint64, 0, len(matches))
	for _, match := range matches {
		docIds = append(docIds, match.DocId)
	}

	assert.Equal(t, []uint64{0, 3, 6, 8}, docIds)
}
