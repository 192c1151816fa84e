package object

import (
	"context"
	"io"
)

// ObjectStore saves and retrieves binary objects, namespaced by owner.
// Save sniffs the content type from the first bytes of the stream.
type ObjectStore interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
