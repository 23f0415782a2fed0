package index

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"log"
	"os"
	"path/filepath"
)

/*
Postings file: per term, a run of blocks.

Block:
  - Header:
	- [0] num docs (byte)
	- [1] first doc id (uint32)
	- [5] last doc id (uint32)
	- [9] length bytes (uint32)
  - Delta-encoded doc ids (uvarint)
*/
const blockHeaderSize = 13

const maxDocsPerBlock = 128

type PostingsWriter struct {
	file   *os.File
	offset int64
	writer *bufio.Writer
}

func newPostingsWriter(directory, segmentId string) (*PostingsWriter, error) {
	file, err := createFile(filepath.Join(directory, "segment."+segmentId+".postings"))
	if err != nil {
		return nil, err
	}

	return &PostingsWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// WriteTerm appends the posting list of one term and returns its start and
// end offsets in the postings file.
func (writer *PostingsWriter) WriteTerm(docIds []DocumentId) (uint64, uint64, error) {
	termStartOffset := writer.offset

	for start := 0; start < len(docIds); start += maxDocsPerBlock {
		end := start + maxDocsPerBlock
		if end > len(docIds) {
			end = len(docIds)
		}

		if err := writer.writeBlock(docIds[start:end]); err != nil {
			return 0, 0, err
		}
	}

	return uint64(termStartOffset), uint64(writer.offset), nil
}

func (writer *PostingsWriter) writeBlock(docIds []DocumentId) error {
	buffer := make([]byte, 0, blockHeaderSize+len(docIds)*5)

	buffer = append(buffer, byte(len(docIds)))
	buffer = binary.BigEndian.AppendUint32(buffer, uint32(docIds[0]))
	buffer = binary.BigEndian.AppendUint32(buffer, uint32(docIds[len(docIds)-1]))
	buffer = binary.BigEndian.AppendUint32(buffer, 0) // patched below

	previousDocId := DocumentId(0)
	for i, docId := range docIds {
		delta := docId - previousDocId
		if i == 0 {
			delta = docId
		}

		buffer = binary.AppendUvarint(buffer, uint64(delta))
		previousDocId = docId
	}

	binary.BigEndian.PutUint32(buffer[9:], uint32(len(buffer)))

	if _, err := writer.writer.Write(buffer); err != nil {
		return err
	}

	writer.offset += int64(len(buffer))

	return nil
}

func (writer *PostingsWriter) Close() error {
	if err := writer.writer.Flush(); err != nil {
		return err
	}

	return writer.file.Close()
}

type PostingsReader struct {
	fileReader *FileReader
}

func newPostingsReader(directory, segmentId string) (*PostingsReader, error) {
	fileReader, err := newFileReader(filepath.Join(directory, "segment."+segmentId+".postings"))
	if err != nil {
		return nil, err
	}

	return &PostingsReader{fileReader: fileReader}, nil
}

func (reader *PostingsReader) BlockIterator(termInfo *TermInfo) *BlockPostingsIterator {
	data := reader.fileReader.Slice(termInfo.PostingsFileStartOffset, termInfo.PostingsFileEndOffset)
	return newBlockPostingsIterator(data)
}

func (reader *PostingsReader) Close() error {
	return reader.fileReader.Close()
}

// BlockPostingsIterator walks one term's blocks. NextShallow positions on
// the first block whose last doc id is >= the target without decoding the
// block body; Next decodes and positions on the first doc id >= the target.
// Targets must be ascending across calls.
type BlockPostingsIterator struct {
	reader *bytes.Reader

	// Block header
	blockHeaderDecoded bool
	numDocs            byte
	firstDocId         DocumentId
	lastDocId          DocumentId
	length             uint32
	nextBlockOffset    int64

	// Block data
	blockDataDecoded bool
	indexInBlock     int
	blockDocIds      []DocumentId
}

func newBlockPostingsIterator(data []byte) *BlockPostingsIterator {
	return &BlockPostingsIterator{
		reader:      bytes.NewReader(data),
		blockDocIds: make([]DocumentId, 0, maxDocsPerBlock),
	}
}

func (it *BlockPostingsIterator) decodeHeader() {
	start, err := it.reader.Seek(0, io.SeekCurrent)
	if err != nil {
		log.Fatal(err)
	}

	binary.Read(it.reader, binary.BigEndian, &it.numDocs)
	binary.Read(it.reader, binary.BigEndian, &it.firstDocId)
	binary.Read(it.reader, binary.BigEndian, &it.lastDocId)
	binary.Read(it.reader, binary.BigEndian, &it.length)
	it.nextBlockOffset = start + int64(it.length)
	it.blockDataDecoded = false
}

func (it *BlockPostingsIterator) NextShallow(docId DocumentId) bool {
	if !it.blockHeaderDecoded {
		if it.reader.Len() == 0 {
			return false
		}

		it.decodeHeader()
		it.blockHeaderDecoded = true
	}

	for {
		if docId <= it.lastDocId {
			return true
		}

		if it.reader.Len() == 0 {
			return false
		}

		if _, err := it.reader.Seek(it.nextBlockOffset, io.SeekStart); err != nil {
			log.Fatal(err)
		}

		it.decodeHeader()
	}
}

func (it *BlockPostingsIterator) decodeBlock() {
	it.blockDocIds = it.blockDocIds[:it.numDocs]

	for i := 0; i < int(it.numDocs); i++ {
		value, err := binary.ReadUvarint(it.reader)
		if err != nil {
			log.Fatal(err)
		}

		if i == 0 {
			it.blockDocIds[i] = DocumentId(value)
		} else {
			it.blockDocIds[i] = it.blockDocIds[i-1] + DocumentId(value)
		}
	}

	it.indexInBlock = 0
	it.blockDataDecoded = true
}

func (it *BlockPostingsIterator) Next(docId DocumentId) bool {
	for {
		if !it.NextShallow(docId) {
			return false
		}

		if !it.blockDataDecoded {
			it.decodeBlock()
		}

		for ; it.indexInBlock < len(it.blockDocIds); it.indexInBlock++ {
			if docId <= it.blockDocIds[it.indexInBlock] {
				return true
			}
		}

		docId = it.lastDocId + 1
	}
}

func (it *BlockPostingsIterator) DocId() DocumentId {
	if it.blockDataDecoded {
		return it.blockDocIds[it.indexInBlock]
	}

	return it.firstDocId
}
