package index

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// MemoryIndex is an in-memory inverted index: term -> bitmap of document
// ids, plus the original document bytes. It accumulates one segment before
// a flush and also backs searches directly.
type MemoryIndex struct {
	docs      map[DocumentId][]byte
	postings  map[string]*roaring.Bitmap
	tokenizer *StandardTokenizer
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		docs:      make(map[DocumentId][]byte, 100),
		postings:  make(map[string]*roaring.Bitmap, 1_000),
		tokenizer: NewStandardTokenizer(),
	}
}

// Add inserts a single posting without tokenization.
func (idx *MemoryIndex) Add(term string, docId DocumentId) error {
	if docId == InvalidDocumentId {
		return fmt.Errorf("document id %d is reserved", docId)
	}

	bitmap, exists := idx.postings[term]
	if !exists {
		bitmap = roaring.NewBitmap()
		idx.postings[term] = bitmap
	}

	bitmap.Add(uint32(docId))

	return nil
}

func (idx *MemoryIndex) AddDocument(doc Document) error {
	if doc.Id == InvalidDocumentId {
		return fmt.Errorf("document id %d is reserved", doc.Id)
	}

	idx.tokenizer.Reset(doc.Text)

	for {
		term, ok := idx.tokenizer.NextToken()
		if !ok {
			break
		}

		if err := idx.Add(term, doc.Id); err != nil {
			return err
		}
	}

	idx.docs[doc.Id] = doc.Text

	return nil
}

// Postings returns the bitmap for term, or nil when the term is absent.
// The bitmap is owned by the index and must not be mutated.
func (idx *MemoryIndex) Postings(term string) *roaring.Bitmap {
	return idx.postings[term]
}

// Terms returns all indexed terms in ascending byte order.
func (idx *MemoryIndex) Terms() []string {
	terms := make([]string, 0, len(idx.postings))
	for term := range idx.postings {
		terms = append(terms, term)
	}

	slices.Sort(terms)

	return terms
}

// DocIds returns the ids of stored documents in ascending order.
func (idx *MemoryIndex) DocIds() []DocumentId {
	docIds := make([]DocumentId, 0, len(idx.docs))
	for docId := range idx.docs {
		docIds = append(docIds, docId)
	}

	slices.Sort(docIds)

	return docIds
}

func (idx *MemoryIndex) Value(docId DocumentId) []byte {
	return idx.docs[docId]
}
