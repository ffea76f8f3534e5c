package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for reading and writing stored objects
// by key. The question pipeline only ever reads; writes exist for the
// local store used in development and tests.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}
