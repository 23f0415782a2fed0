package index

// A segment is written as independent components, each producing its own
// files from the accumulated in-memory index.
type SegmentComponentWriter interface {
	Write(idx *MemoryIndex, directory, segmentId string) error
}

func segmentComponentWriters() []SegmentComponentWriter {
	return []SegmentComponentWriter{
		&postingsComponentWriter{},
		&storeComponentWriter{},
	}
}

type postingsComponentWriter struct {
}

func (w *postingsComponentWriter) Write(idx *MemoryIndex, directory, segmentId string) error {
	postingsWriter, err := newPostingsWriter(directory, segmentId)
	if err != nil {
		return err
	}

	dictionaryWriter, err := newDictionaryWriter(directory, segmentId)
	if err != nil {
		_ = postingsWriter.Close()
		return err
	}

	for _, term := range idx.Terms() {
		bitmap := idx.Postings(term)

		docIds := make([]DocumentId, 0, bitmap.GetCardinality())
		for _, docId := range bitmap.ToArray() {
			docIds = append(docIds, DocumentId(docId))
		}

		startOffset, endOffset, err := postingsWriter.WriteTerm(docIds)
		if err != nil {
			_ = postingsWriter.Close()
			_ = dictionaryWriter.Close()
			return err
		}

		termInfo := &TermInfo{
			DocFreq:                 uint32(len(docIds)),
			PostingsFileStartOffset: startOffset,
			PostingsFileEndOffset:   endOffset,
		}

		if err := dictionaryWriter.Write([]byte(term), termInfo); err != nil {
			_ = postingsWriter.Close()
			_ = dictionaryWriter.Close()
			return err
		}
	}

	if err := postingsWriter.Close(); err != nil {
		_ = dictionaryWriter.Close()
		return err
	}

	return dictionaryWriter.Close()
}

type storeComponentWriter struct {
}

func (w *storeComponentWriter) Write(idx *MemoryIndex, directory, segmentId string) error {
	storeWriter, err := newStoreWriter(directory, segmentId)
	if err != nil {
		return err
	}

	for _, docId := range idx.DocIds() {
		if err := storeWriter.Write(docId, idx.Value(docId)); err != nil {
			_ = storeWriter.Close()
			return err
		}
	}

	return storeWriter.Close()
}
