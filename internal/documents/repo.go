package documents

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "document not found" }

type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, docID string) (Document, error)
	GetCurrent(ctx context.Context, userID string) (Document, error)
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	SetExtractedText(ctx context.Context, docID, text, status string) error
}
