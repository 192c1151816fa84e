package documents

import "time"

// Document is an uploaded resume and its extraction state.
type Document struct {
	ID            string    `json:"documentId"`
	UserID        string    `json:"userId"`
	FileName      string    `json:"fileName"`
	StorageKey    string    `json:"-"`
	SizeBytes     int64     `json:"sizeBytes"`
	MimeType      string    `json:"mimeType"`
	Status        string    `json:"status"`
	ExtractedText string    `json:"extractedText,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const (
	StatusUploaded  = "uploaded"
	StatusExtracted = "extracted"
	StatusFailed    = "extract_failed"
)
