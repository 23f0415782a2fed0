package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/exp/rand"
)

type IndexWriter struct {
	directory string
	mutex     sync.Mutex
}

type Commit struct {
	SegmentIds []uint32 `json:"segmentIds"`
	DeletedId  *uint32  `json:"deletedId,omitempty"`
}

func NewIndexWriter(directory string) *IndexWriter {
	return &IndexWriter{
		directory: directory,
	}
}

// AddDocuments writes one new segment holding docs and commits it.
func (writer *IndexWriter) AddDocuments(docs []Document) error {
	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	memoryIndex := NewMemoryIndex()

	for _, doc := range docs {
		if err := memoryIndex.AddDocument(doc); err != nil {
			return err
		}
	}

	newSegmentId := rand.Uint32()
	segment := strconv.FormatUint(uint64(newSegmentId), 10)

	for _, componentWriter := range segmentComponentWriters() {
		if err := componentWriter.Write(memoryIndex, writer.directory, segment); err != nil {
			return err
		}
	}

	commit, err := readCommit(writer.directory)
	if err != nil {
		return err
	}

	segmentIds := append(commit.SegmentIds, newSegmentId)

	return writer.commit(segmentIds, commit.DeletedId)
}

// DeleteDocuments marks global doc ids as deleted. Deleted documents stay
// in their segments and are filtered out at search time.
func (writer *IndexWriter) DeleteDocuments(docIds []uint64) error {
	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	commit, err := readCommit(writer.directory)
	if err != nil {
		return err
	}

	var deletedReader DeletedReader
	var nextDeletedId uint32

	if commit.DeletedId == nil {
		deletedReader = newNullDeletedReader()
	} else {
		deletedReader, err = newFileDeletedReader(writer.directory, strconv.FormatUint(uint64(*commit.DeletedId), 10))
		if err != nil {
			return err
		}

		nextDeletedId = *commit.DeletedId + 1
	}

	deletedDocIdsBySegment := make(map[uint32]*roaring.Bitmap)

	// Carry over already deleted docs for every committed segment.
	for _, segmentId := range commit.SegmentIds {
		deletedDocIdsForSegment, err := deletedReader.GetDeletedDocIdsForSegment(segmentId)
		if err != nil {
			_ = deletedReader.Close()
			return err
		}

		if deletedDocIdsForSegment == nil {
			deletedDocIdsForSegment = roaring.NewBitmap()
		}

		deletedDocIdsBySegment[segmentId] = deletedDocIdsForSegment
	}

	if err := deletedReader.Close(); err != nil {
		return err
	}

	for _, docId := range docIds {
		segmentId := ToSegmentId(docId)

		deletedDocIdsForSegment, exists := deletedDocIdsBySegment[segmentId]
		if !exists {
			continue
		}

		deletedDocIdsForSegment.Add(uint32(toLocalDocId(docId)))
	}

	deletedWriter := newDeletedWriter(deletedDocIdsBySegment)

	if err := deletedWriter.Write(writer.directory, strconv.FormatUint(uint64(nextDeletedId), 10)); err != nil {
		return err
	}

	return writer.commit(commit.SegmentIds, &nextDeletedId)
}

func (writer *IndexWriter) commit(segmentIds []uint32, deletedId *uint32) error {
	tempFilePath := filepath.Join(writer.directory, ".commit")
	tempFile, err := os.Create(tempFilePath)
	if err != nil {
		return err
	}

	defer tempFile.Close()

	commit := Commit{
		SegmentIds: segmentIds,
		DeletedId:  deletedId,
	}

	encoder := json.NewEncoder(tempFile)

	if err := encoder.Encode(commit); err != nil {
		return err
	}

	return os.Rename(tempFilePath, filepath.Join(writer.directory, "commit"))
}
