package main

// Extraction worker: polls the SQS queue for uploaded documents and runs
// text extraction against the object store.

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"careerhub-backend/internal/bootstrap"
	"careerhub-backend/internal/queue"
	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/telemetry"
)

const (
	defaultConcurrency     = 4
	defaultShutdownSeconds = 30
	receiveBatchSize       = 10
	longPollSeconds        = 20
)

func main() {
	cfg := config.Load()

	queueURL := strings.TrimSpace(cfg.ExtractQueueURL)
	if queueURL == "" {
		log.Fatal("CH_EXTRACT_QUEUE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	concurrency := envInt("CH_WORKER_CONCURRENCY", defaultConcurrency)
	if concurrency < 1 {
		concurrency = 1
	}
	shutdownTimeout := time.Duration(envInt("CH_SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownSeconds)) * time.Second

	sqsClient, err := queue.NewSQSClient(ctx, cfg.AWSRegion, queueURL)
	if err != nil {
		log.Fatalf("sqs client: %v", err)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	log.Printf("worker started queue=%s concurrency=%d", queueURL, concurrency)

pollLoop:
	for {
		select {
		case <-ctx.Done():
			break pollLoop
		default:
		}

		received, err := sqsClient.Receive(ctx, receiveBatchSize, longPollSeconds)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				break pollLoop
			}
			log.Printf("receive: %v", err)
			continue
		}

		for _, item := range received {
			select {
			case <-ctx.Done():
				break pollLoop
			case sem <- struct{}{}:
			}
			wg.Add(1)
			go func(item queue.ReceivedMessage) {
				defer wg.Done()
				defer func() { <-sem }()
				handleJob(ctx, app, sqsClient, item)
			}(item)
		}
	}

	log.Printf("shutdown requested, waiting up to %s for in-flight jobs", shutdownTimeout)
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		log.Printf("shutdown timeout reached; exiting with in-flight jobs")
	}
}

func handleJob(ctx context.Context, app *bootstrap.App, client *queue.SQSClient, item queue.ReceivedMessage) {
	fields := map[string]any{
		"documentId": item.Message.DocumentID,
		"userId":     item.Message.UserID,
	}
	telemetry.Info("worker.extract.received", fields)

	if err := app.DocumentsService.RunExtraction(ctx, item.Message.DocumentID); err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.extract.failed", fields)
		// Leave the message on the queue for redelivery.
		return
	}

	if err := client.Delete(ctx, item.ReceiptHandle); err != nil {
		fields["error"] = err.Error()
		telemetry.Error("worker.extract.delete_failed", fields)
		return
	}
	telemetry.Info("worker.extract.completed", fields)
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
