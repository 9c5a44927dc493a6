// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/TadiwanasheNdombo/aura-document-system/db/ent/schema"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionfieldFields := schema.ExtractionField{}.Fields()
	_ = extractionfieldFields
	// extractionfieldDescDocumentID is the schema descriptor for document_id field.
	extractionfieldDescDocumentID := extractionfieldFields[1].Descriptor()
	// extractionfield.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	extractionfield.DocumentIDValidator = func() func(string) error {
		validators := extractionfieldDescDocumentID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_id string) error {
			for _, fn := range fns {
				if err := fn(document_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionfieldDescSourceType is the schema descriptor for source_type field.
	extractionfieldDescSourceType := extractionfieldFields[2].Descriptor()
	// extractionfield.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	extractionfield.SourceTypeValidator = func() func(string) error {
		validators := extractionfieldDescSourceType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_type string) error {
			for _, fn := range fns {
				if err := fn(source_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionfieldDescFieldName is the schema descriptor for field_name field.
	extractionfieldDescFieldName := extractionfieldFields[3].Descriptor()
	// extractionfield.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	extractionfield.FieldNameValidator = func() func(string) error {
		validators := extractionfieldDescFieldName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_name string) error {
			for _, fn := range fns {
				if err := fn(field_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionfieldDescConfidenceScore is the schema descriptor for confidence_score field.
	extractionfieldDescConfidenceScore := extractionfieldFields[5].Descriptor()
	// extractionfield.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	extractionfield.DefaultConfidenceScore = extractionfieldDescConfidenceScore.Default.(float32)
	// extractionfieldDescIsCorrected is the schema descriptor for is_corrected field.
	extractionfieldDescIsCorrected := extractionfieldFields[6].Descriptor()
	// extractionfield.DefaultIsCorrected holds the default value on creation for the is_corrected field.
	extractionfield.DefaultIsCorrected = extractionfieldDescIsCorrected.Default.(bool)
	// extractionfieldDescCreatedAt is the schema descriptor for created_at field.
	extractionfieldDescCreatedAt := extractionfieldFields[8].Descriptor()
	// extractionfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionfield.DefaultCreatedAt = extractionfieldDescCreatedAt.Default.(func() time.Time)
	// extractionfieldDescUpdatedAt is the schema descriptor for updated_at field.
	extractionfieldDescUpdatedAt := extractionfieldFields[9].Descriptor()
	// extractionfield.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionfield.DefaultUpdatedAt = extractionfieldDescUpdatedAt.Default.(func() time.Time)
	// extractionfield.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionfield.UpdateDefaultUpdatedAt = extractionfieldDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionfieldDescID is the schema descriptor for id field.
	extractionfieldDescID := extractionfieldFields[0].Descriptor()
	// extractionfield.DefaultID holds the default value on creation for the id field.
	extractionfield.DefaultID = extractionfieldDescID.Default.(func() uuid.UUID)
}
