package index

import (
	"path/filepath"

	"github.com/hczhu/qute/search/utils"
)

// StoreWriter writes the per-segment document store: doc id -> original
// document bytes.
type StoreWriter struct {
	kvWriter *KVStoreWriter
}

func newStoreWriter(directory, segmentId string) (*StoreWriter, error) {
	kvWriter, err := newKVStoreWriter(filepath.Join(directory, "segment."+segmentId+".store"))
	if err != nil {
		return nil, err
	}

	return &StoreWriter{kvWriter: kvWriter}, nil
}

// Doc ids must be written in ascending order.
func (writer *StoreWriter) Write(docId DocumentId, value []byte) error {
	return writer.kvWriter.Append(utils.Uint32ToBytes(uint32(docId)), value)
}

func (writer *StoreWriter) Close() error {
	return writer.kvWriter.Close()
}

type StoreReader struct {
	kvReader *KVStoreReader
}

func newStoreReader(directory, segmentId string) (*StoreReader, error) {
	kvReader, err := newKVStoreReader(filepath.Join(directory, "segment."+segmentId+".store"))
	if err != nil {
		return nil, err
	}

	return &StoreReader{kvReader: kvReader}, nil
}

func (reader *StoreReader) Value(docId DocumentId) []byte {
	return reader.kvReader.Get(utils.Uint32ToBytes(uint32(docId)))
}

func (reader *StoreReader) Close() error {
	return reader.kvReader.Close()
}
