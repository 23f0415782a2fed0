package index

import "fmt"

// PostingList is a strictly ascending, duplicate-free list of document ids.
type PostingList []DocumentId

// NewPostingList validates monotonicity and the absence of the invalid
// sentinel. An empty list is allowed.
func NewPostingList(docIds []DocumentId) (PostingList, error) {
	for i, docId := range docIds {
		if docId == InvalidDocumentId {
			return nil, fmt.Errorf("posting list contains the invalid document id at index %d", i)
		}

		if i > 0 && docIds[i-1] >= docId {
			return nil, fmt.Errorf("posting list is not strictly ascending at index %d: %d >= %d", i, docIds[i-1], docId)
		}
	}

	return PostingList(docIds), nil
}

// MustNewPostingList is NewPostingList for statically known inputs.
func MustNewPostingList(docIds []DocumentId) PostingList {
	postingList, err := NewPostingList(docIds)
	if err != nil {
		panic(err)
	}

	return postingList
}
