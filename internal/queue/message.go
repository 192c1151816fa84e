package queue

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Message is the envelope for a document text-extraction job.
type Message struct {
	DocumentID string `json:"documentId"`
	UserID     string `json:"userId"`
	EnqueuedAt string `json:"enqueuedAt"`
	Version    int    `json:"version"`
}

const messageVersion = 1

// NewMessage builds a versioned extraction job envelope.
func NewMessage(documentID, userID string) Message {
	return Message{
		DocumentID: documentID,
		UserID:     userID,
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    messageVersion,
	}
}

// Validate rejects envelopes that a consumer cannot act on.
func (m Message) Validate() error {
	if strings.TrimSpace(m.DocumentID) == "" {
		return errors.New("documentId is required")
	}
	if m.Version <= 0 {
		return errors.New("version is required")
	}
	return nil
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses and validates a JSON payload.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	if err := msg.Validate(); err != nil {
		return Message{}, err
	}
	return msg, nil
}
