package applications

import (
	"context"
	"errors"
	"testing"

	"careerhub-backend/internal/jobs"
)

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendApplicationConfirmation(ctx context.Context, to, jobTitle, companyName string) error {
	m.sent = append(m.sent, to)
	return m.err
}

func seedJob(t *testing.T, jobSvc *jobs.Service) jobs.JobPosting {
	t.Helper()
	job, err := jobSvc.Create(context.Background(), jobs.JobPosting{
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		Description: "Build APIs",
	})
	if err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}

func TestApplyRecordsAndSendsMail(t *testing.T) {
	jobSvc := jobs.NewService(jobs.NewMemoryRepo())
	job := seedJob(t, jobSvc)
	mailer := &recordingMailer{}
	svc := NewService(NewMemoryRepo(), jobSvc, mailer)

	app, err := svc.Apply(context.Background(), "user-1", "user@example.com", job.ID, "looks great")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if app.Status != StatusApplied {
		t.Fatalf("expected status applied, got %q", app.Status)
	}
	if app.Notes != "looks great" {
		t.Fatalf("unexpected notes: %q", app.Notes)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "user@example.com" {
		t.Fatalf("expected confirmation mail, got %v", mailer.sent)
	}
}

func TestApplyMailFailureDoesNotFailApplication(t *testing.T) {
	jobSvc := jobs.NewService(jobs.NewMemoryRepo())
	job := seedJob(t, jobSvc)
	svc := NewService(NewMemoryRepo(), jobSvc, &recordingMailer{err: errors.New("smtp down")})

	if _, err := svc.Apply(context.Background(), "user-1", "user@example.com", job.ID, ""); err != nil {
		t.Fatalf("expected apply to succeed despite mail failure, got %v", err)
	}
}

func TestApplyRejectsDuplicate(t *testing.T) {
	jobSvc := jobs.NewService(jobs.NewMemoryRepo())
	job := seedJob(t, jobSvc)
	svc := NewService(NewMemoryRepo(), jobSvc, nil)

	if _, err := svc.Apply(context.Background(), "user-1", "", job.ID, ""); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	_, err := svc.Apply(context.Background(), "user-1", "", job.ID, "")
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestApplyUnknownJob(t *testing.T) {
	jobSvc := jobs.NewService(jobs.NewMemoryRepo())
	svc := NewService(NewMemoryRepo(), jobSvc, nil)

	_, err := svc.Apply(context.Background(), "user-1", "", "missing", "")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	jobSvc := jobs.NewService(jobs.NewMemoryRepo())
	job := seedJob(t, jobSvc)
	svc := NewService(NewMemoryRepo(), jobSvc, nil)

	app, err := svc.Apply(context.Background(), "user-1", "", job.ID, "")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ID, "user-1", "Interviewing")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusInterviewing {
		t.Fatalf("expected interviewing, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, "user-1", "ghosted"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), app.ID, "someone-else", StatusOffer); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign application, got %v", err)
	}
}
