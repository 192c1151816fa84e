package documents

import (
	"context"
	"strings"
	"sync"
	"testing"

	"careerhub-backend/internal/shared/storage/object/local"
)

type recordingQueue struct {
	mu   sync.Mutex
	jobs []string
}

func (q *recordingQueue) EnqueueExtraction(ctx context.Context, documentID, userID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, documentID)
	return nil
}

func TestUploadInlineExtraction(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(NewMemoryRepo(), store, nil)

	doc, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader("Jordan Example\nSenior Engineer"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.Status != StatusExtracted {
		t.Fatalf("expected inline extraction, got status %q", doc.Status)
	}
	if !strings.Contains(doc.ExtractedText, "Jordan Example") {
		t.Fatalf("expected extracted text, got %q", doc.ExtractedText)
	}
}

func TestUploadEnqueuesWhenQueueConfigured(t *testing.T) {
	store := local.New(t.TempDir())
	queue := &recordingQueue{}
	svc := NewService(NewMemoryRepo(), store, queue)

	doc, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader("some resume text"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if doc.Status != StatusUploaded {
		t.Fatalf("expected uploaded status before worker runs, got %q", doc.Status)
	}
	if len(queue.jobs) != 1 || queue.jobs[0] != doc.ID {
		t.Fatalf("expected one queued job for %s, got %v", doc.ID, queue.jobs)
	}
}

func TestRunExtractionMarksFailureOnBadPayload(t *testing.T) {
	store := local.New(t.TempDir())
	repo := NewMemoryRepo()
	svc := NewService(repo, store, &recordingQueue{})

	doc, err := svc.Upload(context.Background(), "user-1", "photo.gif", strings.NewReader("GIF89a not a resume"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := svc.RunExtraction(context.Background(), doc.ID); err == nil {
		t.Fatalf("expected extraction error for unsupported format")
	}
	updated, err := repo.GetByID(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Status != StatusFailed {
		t.Fatalf("expected %q, got %q", StatusFailed, updated.Status)
	}
}

func TestGetCurrentReturnsNewest(t *testing.T) {
	store := local.New(t.TempDir())
	svc := NewService(NewMemoryRepo(), store, &recordingQueue{})

	if _, err := svc.Upload(context.Background(), "user-1", "old.txt", strings.NewReader("old resume")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	newest, err := svc.Upload(context.Background(), "user-1", "new.txt", strings.NewReader("new resume"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	current, err := svc.GetCurrent(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if current.ID != newest.ID {
		t.Fatalf("expected newest document %s, got %s", newest.ID, current.ID)
	}
}
