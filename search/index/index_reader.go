package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
)

func readCommit(directory string) (*Commit, error) {
	commitFile, err := os.Open(filepath.Join(directory, "commit"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Commit{SegmentIds: make([]uint32, 0)}, nil
		}

		return nil, err
	}

	defer commitFile.Close()

	decoder := json.NewDecoder(commitFile)

	var commit Commit
	if err := decoder.Decode(&commit); err != nil {
		return nil, err
	}

	return &commit, nil
}

// Global doc ids pack the segment id in the high 32 bits and the
// segment-local doc id in the low 32 bits.
func ToGlobalDocId(segmentId, localDocId uint32) uint64 {
	return uint64(segmentId)<<32 | uint64(localDocId)
}

func ToSegmentId(docId uint64) uint32 {
	return uint32(docId >> 32)
}

func toLocalDocId(docId uint64) DocumentId {
	return DocumentId(uint32(docId))
}

type IndexReader struct {
	SegmentReaders []*SegmentReader
}

func NewIndexReader(directory string) (*IndexReader, error) {
	commit, err := readCommit(directory)
	if err != nil {
		return nil, err
	}

	var deletedReader DeletedReader

	if commit.DeletedId == nil {
		deletedReader = newNullDeletedReader()
	} else {
		deletedReader, err = newFileDeletedReader(directory, strconv.FormatUint(uint64(*commit.DeletedId), 10))
		if err != nil {
			return nil, err
		}
	}

	segmentReaders := make([]*SegmentReader, 0, len(commit.SegmentIds))

	for _, segmentId := range commit.SegmentIds {
		deletedDocIdsForSegment, err := deletedReader.GetDeletedDocIdsForSegment(segmentId)
		if err != nil {
			_ = deletedReader.Close()
			return nil, err
		}

		if deletedDocIdsForSegment == nil {
			deletedDocIdsForSegment = roaring.NewBitmap()
		}

		segmentReaders = append(segmentReaders, newSegmentReader(directory, segmentId, deletedDocIdsForSegment))
	}

	if err := deletedReader.Close(); err != nil {
		return nil, err
	}

	return &IndexReader{
		SegmentReaders: segmentReaders,
	}, nil
}

// Value returns the stored document bytes for a global doc id, or nil when
// the document is unknown.
func (reader *IndexReader) Value(docId uint64) ([]byte, error) {
	segmentId := ToSegmentId(docId)

	for _, segmentReader := range reader.SegmentReaders {
		if segmentReader.Id == segmentId {
			return segmentReader.Value(toLocalDocId(docId))
		}
	}

	return nil, nil
}

func (reader *IndexReader) Close() error {
	var firstErr error

	for _, segmentReader := range reader.SegmentReaders {
		if err := segmentReader.Close(); firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
