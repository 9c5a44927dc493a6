package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
	"github.com/TadiwanasheNdombo/aura-document-system/internal/entity"
)

// DefaultConfidence is stored for heuristic extractions, which carry
// no model-reported score.
const DefaultConfidence float32 = 0.99

type ExtractionFieldRepository interface {
	// UpsertFields writes one row per field, keyed on
	// (document_id, source_type, field_name). A re-run replaces the
	// previous values and clears any correction.
	UpsertFields(ctx context.Context, documentID string, src constants.SourceType, fields entity.FieldSet, confidence float32) error
	ListByDocument(ctx context.Context, documentID string, src *constants.SourceType) ([]*entity.ExtractedField, error)
	Correct(ctx context.Context, documentID string, src constants.SourceType, fieldName, correctedValue string) (*entity.ExtractedField, error)
	ListCorrected(ctx context.Context) ([]*entity.ExtractedField, error)
}

type extractionFieldRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractionFieldRepository(client *ent.Client, logger *slog.Logger) ExtractionFieldRepository {
	return &extractionFieldRepository{client: client, logger: logger}
}

func (r *extractionFieldRepository) UpsertFields(ctx context.Context, documentID string, src constants.SourceType, fields entity.FieldSet, confidence float32) error {
	if confidence <= 0 {
		confidence = DefaultConfidence
	}
	// deterministic write order
	for _, name := range constants.FieldNamesFor(src) {
		value, ok := fields[name]
		if !ok {
			value = entity.NotFound
		}
		err := r.client.ExtractionField.Create().
			SetDocumentID(documentID).
			SetSourceType(string(src)).
			SetFieldName(name).
			SetExtractedValue(value).
			SetConfidenceScore(confidence).
			OnConflictColumns(
				extractionfield.FieldDocumentID,
				extractionfield.FieldSourceType,
				extractionfield.FieldFieldName,
			).
			Update(func(u *ent.ExtractionFieldUpsert) {
				u.SetExtractedValue(value)
				u.SetConfidenceScore(confidence)
				u.SetIsCorrected(false)
				u.ClearCorrectedValue()
				u.SetUpdatedAt(time.Now())
			}).
			Exec(ctx)
		if err != nil {
			r.logger.Error("extraction.upsert_failed",
				"document_id", documentID, "field", name, "error", err)
			return common.WrapError(err, "upserting field "+name)
		}
	}
	r.logger.Info("extraction.upserted",
		"document_id", documentID, "source_type", src, "fields", len(constants.FieldNamesFor(src)))
	return nil
}

func (r *extractionFieldRepository) ListByDocument(ctx context.Context, documentID string, src *constants.SourceType) ([]*entity.ExtractedField, error) {
	q := r.client.ExtractionField.Query().
		Where(extractionfield.DocumentID(documentID))
	if src != nil {
		q = q.Where(extractionfield.SourceType(string(*src)))
	}
	rows, err := q.
		Order(ent.Asc(extractionfield.FieldSourceType), ent.Asc(extractionfield.FieldFieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("extraction.list_failed", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.ExtractedField, len(rows))
	for i, row := range rows {
		result[i] = toExtractedField(row)
	}
	return result, nil
}

func (r *extractionFieldRepository) Correct(ctx context.Context, documentID string, src constants.SourceType, fieldName, correctedValue string) (*entity.ExtractedField, error) {
	row, err := r.client.ExtractionField.Query().
		Where(
			extractionfield.DocumentID(documentID),
			extractionfield.SourceType(string(src)),
			extractionfield.FieldName(fieldName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND",
				"no extracted field to correct", common.ErrNotFound)
		}
		return nil, err
	}

	updated, err := row.Update().
		SetIsCorrected(true).
		SetCorrectedValue(correctedValue).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("extraction.correct_failed",
			"document_id", documentID, "field", fieldName, "error", err)
		return nil, err
	}
	r.logger.Info("extraction.corrected",
		"document_id", documentID, "source_type", src, "field", fieldName)
	return toExtractedField(updated), nil
}

func (r *extractionFieldRepository) ListCorrected(ctx context.Context) ([]*entity.ExtractedField, error) {
	rows, err := r.client.ExtractionField.Query().
		Where(extractionfield.IsCorrected(true)).
		Order(ent.Asc(extractionfield.FieldDocumentID), ent.Asc(extractionfield.FieldFieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.ExtractedField, len(rows))
	for i, row := range rows {
		result[i] = toExtractedField(row)
	}
	return result, nil
}

func toExtractedField(row *ent.ExtractionField) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:              row.ID,
		DocumentID:      row.DocumentID,
		SourceType:      constants.SourceType(row.SourceType),
		FieldName:       row.FieldName,
		ExtractedValue:  row.ExtractedValue,
		ConfidenceScore: row.ConfidenceScore,
		IsCorrected:     row.IsCorrected,
		CorrectedValue:  row.CorrectedValue,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
