package index

import (
	"path/filepath"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hczhu/qute/search/utils"
)

type DeletedWriter struct {
	deletedDocIdsBySegment map[uint32]*roaring.Bitmap
}

func newDeletedWriter(deletedDocIdsBySegment map[uint32]*roaring.Bitmap) *DeletedWriter {
	return &DeletedWriter{deletedDocIdsBySegment: deletedDocIdsBySegment}
}

func (writer *DeletedWriter) Write(directory, deletedId string) error {
	kvWriter, err := newKVStoreWriter(filepath.Join(directory, "deleted."+deletedId))
	if err != nil {
		return err
	}

	sortedSegmentIds := make([]uint32, 0, len(writer.deletedDocIdsBySegment))
	for segmentId := range writer.deletedDocIdsBySegment {
		sortedSegmentIds = append(sortedSegmentIds, segmentId)
	}

	slices.Sort(sortedSegmentIds)

	for _, segmentId := range sortedSegmentIds {
		buffer, err := writer.deletedDocIdsBySegment[segmentId].ToBytes()
		if err != nil {
			_ = kvWriter.Close()
			return err
		}

		if err := kvWriter.Append(utils.Uint32ToBytes(segmentId), buffer); err != nil {
			_ = kvWriter.Close()
			return err
		}
	}

	return kvWriter.Close()
}

type DeletedReader interface {
	GetDeletedDocIdsForSegment(segmentId uint32) (*roaring.Bitmap, error)
	Close() error
}

type NullDeletedReader struct {
}

func newNullDeletedReader() *NullDeletedReader {
	return &NullDeletedReader{}
}

func (reader *NullDeletedReader) GetDeletedDocIdsForSegment(segmentId uint32) (*roaring.Bitmap, error) {
	return nil, nil
}

func (reader *NullDeletedReader) Close() error {
	return nil
}

type FileDeletedReader struct {
	kvReader *KVStoreReader
}

func newFileDeletedReader(directory, deletedId string) (*FileDeletedReader, error) {
	kvReader, err := newKVStoreReader(filepath.Join(directory, "deleted."+deletedId))
	if err != nil {
		return nil, err
	}

	return &FileDeletedReader{kvReader: kvReader}, nil
}

func (reader *FileDeletedReader) GetDeletedDocIdsForSegment(segmentId uint32) (*roaring.Bitmap, error) {
	value := reader.kvReader.Get(utils.Uint32ToBytes(segmentId))
	if value == nil {
		return nil, nil
	}

	deletedDocIds := roaring.NewBitmap()
	if err := deletedDocIds.UnmarshalBinary(value); err != nil {
		return nil, err
	}

	return deletedDocIds, nil
}

func (reader *FileDeletedReader) Close() error {
	return reader.kvReader.Close()
}
