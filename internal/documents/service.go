package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"careerhub-backend/internal/extract"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/storage/object"
	"careerhub-backend/internal/shared/telemetry"
)

// ErrInvalidInput indicates an upload that fails validation.
var ErrInvalidInput = errors.New("invalid document")

// ExtractQueue enqueues a text-extraction job for a stored document.
type ExtractQueue interface {
	EnqueueExtraction(ctx context.Context, documentID, userID string) error
}

type Service struct {
	Repo  Repo
	Store object.ObjectStore
	Queue ExtractQueue
}

func NewService(repo Repo, store object.ObjectStore, queue ExtractQueue) *Service {
	return &Service{Repo: repo, Store: store, Queue: queue}
}

// Upload stores the file and records its metadata. Text extraction runs
// through the queue when one is configured, otherwise inline.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileName) == "" {
		return Document{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("store document: %w", err)
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		SizeBytes:  size,
		MimeType:   mimeType,
		Status:     StatusUploaded,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create document: %w", err)
	}
	metrics.IncDocumentUploaded()

	if s.Queue != nil {
		if err := s.Queue.EnqueueExtraction(ctx, doc.ID, userID); err != nil {
			telemetry.Error("documents.enqueue_failed", map[string]any{
				"documentId": doc.ID,
				"error":      err.Error(),
			})
		}
	} else if err := s.RunExtraction(ctx, doc.ID); err != nil {
		telemetry.Error("documents.inline_extract_failed", map[string]any{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
	}

	return s.Repo.GetByID(ctx, doc.ID)
}

// RunExtraction extracts the document's text and stores it on the record.
// Called by the worker for queued jobs and inline when no queue is configured.
func (s *Service) RunExtraction(ctx context.Context, docID string) error {
	doc, err := s.Repo.GetByID(ctx, docID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	text, err := extract.FromStore(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		metrics.IncExtractionFailed()
		if setErr := s.Repo.SetExtractedText(ctx, docID, "", StatusFailed); setErr != nil {
			telemetry.Error("documents.mark_failed", map[string]any{
				"documentId": docID,
				"error":      setErr.Error(),
			})
		}
		return fmt.Errorf("extract document %s: %w", docID, err)
	}

	if err := s.Repo.SetExtractedText(ctx, docID, text, StatusExtracted); err != nil {
		return err
	}
	metrics.IncExtractionCompleted()
	return nil
}

func (s *Service) GetCurrent(ctx context.Context, userID string) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetCurrent(ctx, userID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.ListByUser(ctx, userID)
}
