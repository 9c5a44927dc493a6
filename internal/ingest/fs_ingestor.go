package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/async"
)

// FSIngestor reads documents from the local filesystem and enqueues
// them for extraction. The content hash doubles as the document id, so
// re-submitting the same scan is a no-op.
type FSIngestor struct {
	queue  async.Queue
	logger *slog.Logger

	mu   sync.Mutex
	seen map[string]string // hash hex -> document id
}

func NewFSIngestor(queue async.Queue, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{queue: queue, logger: logger, seen: map[string]string{}}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !constants.AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	sum, err := hashFile(abs)
	if err != nil {
		return out, err
	}
	hashHex := hex.EncodeToString(sum)
	now := time.Now().UTC()

	i.mu.Lock()
	documentID, dedup := i.seen[hashHex]
	if !dedup {
		documentID = hashHex[:32]
		i.seen[hashHex] = documentID
	}
	i.mu.Unlock()

	out = IngestionResult{
		SourcePath:   abs,
		DocumentID:   documentID,
		Deduplicated: dedup,
		HashHex:      hashHex,
		FileExt:      ext,
		SubmittedAt:  now,
	}
	if dedup {
		i.logger.Info("document already ingested", "path", abs, "document_id", documentID)
		return out, nil
	}

	err = i.queue.Enqueue(ctx, async.Job{
		DocumentID:  documentID,
		Path:        abs,
		DualSource:  true,
		SubmittedAt: now,
		TraceID:     hashHex,
	})
	if err != nil {
		return out, err
	}
	i.logger.Info("document queued", "path", abs, "document_id", documentID)
	return out, nil
}

func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !constants.AllowedExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func hashFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("close file after hashing", "path", path, "error", cerr)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
