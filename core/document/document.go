package document

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Read when no document is stored under the key.
var ErrNotExist = errors.New("document does not exist")

// Store reads and writes whole JSON documents by key.
//
// Write replaces the entire document in one operation: a reader concurrent
// with a crash or an in-flight write observes either the previous or the new
// complete document, never a partial one.
type Store interface {
	// Read returns the full content of the document, or ErrNotExist.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write atomically replaces the document with the given content.
	Write(ctx context.Context, key string, data []byte) error
}

// Drivers supported by the document store.
const (
	DriverFile = "file"
	DriverS3   = "s3"
)
