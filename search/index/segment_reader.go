package index

import (
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
)

type SegmentReader struct {
	DeletedDocIds *roaring.Bitmap
	Id            uint32
	IdString      string

	directory        string
	dictionaryReader *DictionaryReader
	postingsReader   *PostingsReader
	storeReader      *StoreReader
}

func newSegmentReader(directory string, segmentId uint32, deletedDocIds *roaring.Bitmap) *SegmentReader {
	segment := strconv.FormatUint(uint64(segmentId), 10)
	return &SegmentReader{
		DeletedDocIds: deletedDocIds,
		Id:            segmentId,
		IdString:      segment,
		directory:     directory,
	}
}

// TermInfo returns the dictionary entry for term, or nil when the segment
// doesn't contain the term.
func (reader *SegmentReader) TermInfo(term string) (*TermInfo, error) {
	if reader.dictionaryReader == nil {
		dictionaryReader, err := newDictionaryReader(reader.directory, reader.IdString)
		if err != nil {
			return nil, err
		}

		reader.dictionaryReader = dictionaryReader
	}

	return reader.dictionaryReader.Get([]byte(term)), nil
}

func (reader *SegmentReader) BlockIterator(termInfo *TermInfo) (*BlockPostingsIterator, error) {
	if reader.postingsReader == nil {
		postingsReader, err := newPostingsReader(reader.directory, reader.IdString)
		if err != nil {
			return nil, err
		}

		reader.postingsReader = postingsReader
	}

	return reader.postingsReader.BlockIterator(termInfo), nil
}

func (reader *SegmentReader) Value(docId DocumentId) ([]byte, error) {
	if reader.storeReader == nil {
		storeReader, err := newStoreReader(reader.directory, reader.IdString)
		if err != nil {
			return nil, err
		}

		reader.storeReader = storeReader
	}

	return reader.storeReader.Value(docId), nil
}

func (reader *SegmentReader) Close() error {
	var firstErr error

	if reader.dictionaryReader != nil {
		if err := reader.dictionaryReader.Close(); firstErr == nil {
			firstErr = err
		}
		reader.dictionaryReader = nil
	}

	if reader.postingsReader != nil {
		if err := reader.postingsReader.Close(); firstErr == nil {
			firstErr = err
		}
		reader.postingsReader = nil
	}

	if reader.storeReader != nil {
		if err := reader.storeReader.Close(); firstErr == nil {
			firstErr = err
		}
		reader.storeReader = nil
	}

	return firstErr
}
