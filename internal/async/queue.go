package async

import (
	"context"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// Job is one document waiting for extraction.
type Job struct {
	DocumentID  string
	Path        string
	SourceType  constants.SourceType // empty means detect
	UseVision   bool
	DualSource  bool
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
