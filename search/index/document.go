package index

import "math"

type DocumentId uint32

// InvalidDocumentId marks an exhausted iterator. Posting lists must not
// contain it.
const InvalidDocumentId DocumentId = math.MaxUint32

type Document struct {
	Id   DocumentId
	Text []byte
}
