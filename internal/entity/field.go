package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// ExtractedField represents one persisted field value for data
// transfer between layers.
type ExtractedField struct {
	ID              uuid.UUID            `json:"id"`
	DocumentID      string               `json:"document_id"`
	SourceType      constants.SourceType `json:"source_type"`
	FieldName       string               `json:"field_name"`
	ExtractedValue  *string              `json:"extracted_value,omitempty"`
	ConfidenceScore float32              `json:"confidence_score"`
	IsCorrected     bool                 `json:"is_corrected"`
	CorrectedValue  *string              `json:"corrected_value,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// FieldSet is the in-memory result of running extraction over one
// document: field name to value, "Not Found" for misses.
type FieldSet map[string]string

// NotFound is the placeholder value stored for fields the extractors
// could not locate.
const NotFound = "Not Found"

// NewFieldSet returns a FieldSet pre-seeded with NotFound for every
// target field of the source type.
func NewFieldSet(src constants.SourceType) FieldSet {
	fs := make(FieldSet, len(constants.FieldNamesFor(src)))
	for _, name := range constants.FieldNamesFor(src) {
		fs[name] = NotFound
	}
	return fs
}

// Found reports whether the named field holds a real extracted value.
func (fs FieldSet) Found(name string) bool {
	v, ok := fs[name]
	return ok && v != NotFound && v != ""
}
