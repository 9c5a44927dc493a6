// Code generated by ent, DO NOT EDIT.

package extractionfield

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldDocumentID, v))
}

// SourceType applies equality check predicate on the "source_type" field. It's identical to SourceTypeEQ.
func SourceType(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldSourceType, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldName, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldExtractedValue, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldConfidenceScore, v))
}

// IsCorrected applies equality check predicate on the "is_corrected" field. It's identical to IsCorrectedEQ.
func IsCorrected(v bool) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldIsCorrected, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldCorrectedValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldDocumentID, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldSourceType, vs...))
}

// SourceTypeGT applies the GT predicate on the "source_type" field.
func SourceTypeGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldSourceType, v))
}

// SourceTypeGTE applies the GTE predicate on the "source_type" field.
func SourceTypeGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldSourceType, v))
}

// SourceTypeLT applies the LT predicate on the "source_type" field.
func SourceTypeLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldSourceType, v))
}

// SourceTypeLTE applies the LTE predicate on the "source_type" field.
func SourceTypeLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldSourceType, v))
}

// SourceTypeContains applies the Contains predicate on the "source_type" field.
func SourceTypeContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldSourceType, v))
}

// SourceTypeHasPrefix applies the HasPrefix predicate on the "source_type" field.
func SourceTypeHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldSourceType, v))
}

// SourceTypeHasSuffix applies the HasSuffix predicate on the "source_type" field.
func SourceTypeHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldSourceType, v))
}

// SourceTypeEqualFold applies the EqualFold predicate on the "source_type" field.
func SourceTypeEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldSourceType, v))
}

// SourceTypeContainsFold applies the ContainsFold predicate on the "source_type" field.
func SourceTypeContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldSourceType, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldFieldName, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotNull(FieldExtractedValue))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldExtractedValue, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float32) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldConfidenceScore, v))
}

// IsCorrectedEQ applies the EQ predicate on the "is_corrected" field.
func IsCorrectedEQ(v bool) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldIsCorrected, v))
}

// IsCorrectedNEQ applies the NEQ predicate on the "is_corrected" field.
func IsCorrectedNEQ(v bool) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldIsCorrected, v))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueIsNil applies the IsNil predicate on the "corrected_value" field.
func CorrectedValueIsNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIsNull(FieldCorrectedValue))
}

// CorrectedValueNotNil applies the NotNil predicate on the "corrected_value" field.
func CorrectedValueNotNil() predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotNull(FieldCorrectedValue))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionField {
	return predicate.ExtractionField(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionField) predicate.ExtractionField {
	return predicate.ExtractionField(sql.NotPredicates(p))
}
