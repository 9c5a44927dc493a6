package llm

import (
	"context"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// ExtractRequest carries one document into the vision extraction path.
// Text may be empty when the recognizer got nothing useful; Image then
// holds the page bytes the model should read instead, with MimeType
// naming their encoding.
type ExtractRequest struct {
	DocumentID   string
	SourceType   constants.SourceType
	Text         string
	Image        []byte
	MimeType     string
	FilenameHint string
}

// FieldExtractor is the interface the pipeline depends on. The raw
// model JSON comes back alongside the parsed set for auditing.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (entity.FieldSet, []byte, error)
}
