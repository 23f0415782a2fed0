package index

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"os"

	"github.com/edsrzf/mmap-go"
)

// KVStoreWriter writes an immutable sorted key-value file pair: a data file
// of length-prefixed entries and an index file of fixed-width offsets.
type KVStoreWriter struct {
	dataFile    *os.File
	dataWriter  *bufio.Writer
	indexFile   *os.File
	indexWriter *bufio.Writer
	offset      uint64
}

func newKVStoreWriter(basename string) (*KVStoreWriter, error) {
	dataFile, err := createFile(basename + ".data")
	if err != nil {
		return nil, err
	}

	indexFile, err := createFile(basename + ".index")
	if err != nil {
		_ = dataFile.Close()
		return nil, err
	}

	return &KVStoreWriter{
		dataFile:    dataFile,
		dataWriter:  bufio.NewWriter(dataFile),
		indexFile:   indexFile,
		indexWriter: bufio.NewWriter(indexFile),
	}, nil
}

// Caller is responsible to check that keys are appended in ascending order
func (w *KVStoreWriter) Append(key, value []byte) error {
	buffer := make([]byte, 0, 8+len(key)+len(value))
	buffer = binary.BigEndian.AppendUint32(buffer, uint32(len(key)))
	buffer = binary.BigEndian.AppendUint32(buffer, uint32(len(value)))
	buffer = append(buffer, key...)
	buffer = append(buffer, value...)

	if _, err := w.dataWriter.Write(buffer); err != nil {
		return err
	}

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, w.offset)

	if _, err := w.indexWriter.Write(b); err != nil {
		return err
	}

	w.offset += uint64(len(buffer))

	return nil
}

func (w *KVStoreWriter) Close() error {
	if err := w.dataWriter.Flush(); err != nil {
		return err
	}

	if err := w.dataFile.Close(); err != nil {
		return err
	}

	if err := w.indexWriter.Flush(); err != nil {
		return err
	}

	return w.indexFile.Close()
}

type KVStoreReader struct {
	data      mmap.MMap
	dataFile  *os.File
	index     mmap.MMap
	indexFile *os.File
}

func newKVStoreReader(basename string) (*KVStoreReader, error) {
	dataFile, err := os.Open(basename + ".data")
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(dataFile, mmap.RDONLY, 0)
	if err != nil {
		_ = dataFile.Close()
		return nil, err
	}

	indexFile, err := os.Open(basename + ".index")
	if err != nil {
		_ = data.Unmap()
		_ = dataFile.Close()
		return nil, err
	}

	index, err := mmap.Map(indexFile, mmap.RDONLY, 0)
	if err != nil {
		_ = data.Unmap()
		_ = dataFile.Close()
		_ = indexFile.Close()
		return nil, err
	}

	return &KVStoreReader{
		data:      data,
		dataFile:  dataFile,
		index:     index,
		indexFile: indexFile,
	}, nil
}

// Get returns the value stored for key, or nil when absent. The returned
// slice aliases the mapped file and is valid until Close.
func (kv *KVStoreReader) Get(key []byte) []byte {
	numItems := len(kv.index) / 8

	leftIndex := int64(0)
	rightIndex := int64(numItems) - 1

	for leftIndex <= rightIndex {
		index := leftIndex + (rightIndex-leftIndex)/2

		offset := binary.BigEndian.Uint64(kv.index[index*8 : (index+1)*8])
		keyLength := uint64(binary.BigEndian.Uint32(kv.data[offset : offset+4]))
		currentKey := kv.data[offset+8 : offset+8+keyLength]

		switch bytes.Compare(currentKey, key) {
		case -1:
			leftIndex = index + 1
		case 0:
			valueLength := uint64(binary.BigEndian.Uint32(kv.data[offset+4 : offset+8]))
			return kv.data[offset+8+keyLength : offset+8+keyLength+valueLength]
		case 1:
			rightIndex = index - 1
		}
	}

	return nil
}

func (kv *KVStoreReader) Close() error {
	dataErr := kv.data.Unmap()
	if err := kv.dataFile.Close(); dataErr == nil {
		dataErr = err
	}

	indexErr := kv.index.Unmap()
	if err := kv.indexFile.Close(); indexErr == nil {
		indexErr = err
	}

	if dataErr != nil {
		return dataErr
	}

	return indexErr
}
