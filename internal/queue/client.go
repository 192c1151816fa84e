package queue

import "context"

// Client sends extraction jobs to a queue backend.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// Publisher adapts a Client to the documents package's queue interface.
type Publisher struct {
	Client Client
}

func (p Publisher) EnqueueExtraction(ctx context.Context, documentID, userID string) error {
	return p.Client.Send(ctx, NewMessage(documentID, userID))
}
