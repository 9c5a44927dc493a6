package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/async"
)

type fakeQueue struct {
	jobs []async.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestPathQueuesDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "id.pdf", "scan bytes")
	q := &fakeQueue{}
	ing := NewFSIngestor(q, testLogger())

	res, err := ing.IngestPath(context.Background(), path)
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if res.DocumentID == "" || res.Deduplicated {
		t.Errorf("result = %+v", res)
	}
	if len(q.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(q.jobs))
	}
	if !q.jobs[0].DualSource || q.jobs[0].DocumentID != res.DocumentID {
		t.Errorf("job = %+v", q.jobs[0])
	}
}

func TestIngestPathDeduplicates(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.pdf", "same content")
	second := writeFile(t, dir, "b.pdf", "same content")
	q := &fakeQueue{}
	ing := NewFSIngestor(q, testLogger())

	r1, err := ing.IngestPath(context.Background(), first)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := ing.IngestPath(context.Background(), second)
	if err != nil {
		t.Fatal(err)
	}
	if !r2.Deduplicated || r2.DocumentID != r1.DocumentID {
		t.Errorf("r2 = %+v, want dedup of %s", r2, r1.DocumentID)
	}
	if len(q.jobs) != 1 {
		t.Errorf("jobs = %d, want 1", len(q.jobs))
	}
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "text")
	ing := NewFSIngestor(&fakeQueue{}, testLogger())

	if _, err := ing.IngestPath(context.Background(), path); err == nil {
		t.Fatal("expected error for .txt")
	}
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", "one")
	writeFile(t, dir, "sub/two.jpg", "two")
	writeFile(t, dir, "skip.txt", "skip")
	writeFile(t, dir, ".hidden/three.pdf", "three")
	q := &fakeQueue{}
	ing := NewFSIngestor(q, testLogger())

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 2 || stats.Succeeded != 2 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if len(results) != 2 || len(q.jobs) != 2 {
		t.Errorf("results = %d, jobs = %d", len(results), len(q.jobs))
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "existing.pdf", "scan")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true}, testLogger())
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	select {
	case path := <-evCh:
		if filepath.Base(path) != "existing.pdf" {
			t.Errorf("path = %q", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial scan event")
	}
}
