package util

import (
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// ulid.Make draws from a process-wide monotonic entropy source, so IDs
// created concurrently within the same millisecond stay distinct.
func NewULID() string {
	return ulid.Make().String()
}

// TempFilePath returns a unique path inside dir with the given extension,
// independent of any client-supplied filename.
func TempFilePath(dir, ext string) string {
	return filepath.Join(dir, NewULID()+ext)
}
