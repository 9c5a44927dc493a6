package async

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/fields"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/ocr"
	processor "github.com/TadiwanasheNdombo/aura-document-system/internal/pipeline"
)

type countingRecognizer struct {
	mu    sync.Mutex
	paths []string
}

func (r *countingRecognizer) Extract(_ context.Context, path string) (ocr.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return ocr.Result{Text: "EMPLOYMENT STATUS: EMPLOYED", Method: "pdf-text"}, nil
}

func (r *countingRecognizer) RasterFirstPage(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (r *countingRecognizer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

func TestProcessorQueueDrainsAllJobs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	rec := &countingRecognizer{}
	proc := processor.NewProcessor(logger, rec, fields.NewParser(logger), nil, nil)

	q := NewProcessorQueue(proc, logger, WithWorkers(3), WithQueueSize(16))
	for i := 0; i < 10; i++ {
		err := q.Enqueue(context.Background(), Job{
			DocumentID: "doc",
			Path:       "/in/form.pdf",
			SourceType: constants.SourceMandateCard,
		})
		if err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := rec.count(); got != 10 {
		t.Fatalf("processed = %d, want 10", got)
	}
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	rec := &countingRecognizer{}
	proc := processor.NewProcessor(logger, rec, fields.NewParser(logger), nil, nil)

	q := NewProcessorQueue(proc, logger, WithWorkers(1))
	q.Shutdown(context.Background())

	// must not panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{DocumentID: "late"}); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	if got := rec.count(); got != 0 {
		t.Fatalf("processed = %d, want 0", got)
	}
}
