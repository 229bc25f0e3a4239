package util

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID(t *testing.T) {
	id := NewULID()
	assert.Len(t, id, 26)
	_, err := ulid.Parse(id)
	assert.NoError(t, err)
}

func TestNewULID_UniqueUnderConcurrency(t *testing.T) {
	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NewULID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate ULID %s", id)
		seen[id] = true
	}
}

func TestTempFilePath(t *testing.T) {
	a := TempFilePath("/tmp/uploads", ".pdf")
	b := TempFilePath("/tmp/uploads", ".pdf")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "/tmp/uploads", filepath.Dir(a))
	assert.Equal(t, ".pdf", filepath.Ext(a))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t"))
	assert.Equal(t, 3, WordCount("one two\nthree"))
	assert.Equal(t, 2, WordCount("  padded   words  "))
}
