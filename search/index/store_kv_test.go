package index

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type kvItem struct {
	key, value []byte
}

func TestKVStore(t *testing.T) {
	basename := filepath.Join(t.TempDir(), "test_kvstore")

	writer, err := newKVStoreWriter(basename)
	if err != nil {
		t.Fatalf("failed to create KVStoreWriter: %v", err)
	}

	testData := []kvItem{
		{key: []byte("apple"), value: []byte("fruit")},
		{key: []byte("carrot"), value: []byte("vegetable")},
		{key: []byte("dog"), value: []byte("animal")},
		{key: []byte("foo"), value: []byte("bar")},
		{key: []byte("hello"), value: []byte("world")},
	}

	for _, item := range testData {
		if err := writer.Append(item.key, item.value); err != nil {
			t.Fatalf("failed to append key-value pair (%s, %s): %v", item.key, item.value, err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	reader, err := newKVStoreReader(basename)
	if err != nil {
		t.Fatalf("failed to create KVStoreReader: %v", err)
	}
	defer reader.Close()

	for _, item := range testData {
		value := reader.Get(item.key)
		assert.Equal(t, item.value, value)
	}

	// Non-existing keys
	assert.Nil(t, reader.Get([]byte("9661c61e")))
	assert.Nil(t, reader.Get([]byte("")))
	assert.Nil(t, reader.Get([]byte("zzz")))
}
