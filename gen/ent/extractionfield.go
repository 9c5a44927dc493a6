// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/google/uuid"
)

// ExtractionField is the model entity for the ExtractionField schema.
type ExtractionField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue *string `json:"extracted_value,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore float32 `json:"confidence_score,omitempty"`
	// IsCorrected holds the value of the "is_corrected" field.
	IsCorrected bool `json:"is_corrected,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue *string `json:"corrected_value,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionfield.FieldIsCorrected:
			values[i] = new(sql.NullBool)
		case extractionfield.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case extractionfield.FieldDocumentID, extractionfield.FieldSourceType, extractionfield.FieldFieldName, extractionfield.FieldExtractedValue, extractionfield.FieldCorrectedValue:
			values[i] = new(sql.NullString)
		case extractionfield.FieldCreatedAt, extractionfield.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionfield.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionField fields.
func (_m *ExtractionField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionfield.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case extractionfield.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case extractionfield.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractionfield.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = new(string)
				*_m.ExtractedValue = value.String
			}
		case extractionfield.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = float32(value.Float64)
			}
		case extractionfield.FieldIsCorrected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_corrected", values[i])
			} else if value.Valid {
				_m.IsCorrected = value.Bool
			}
		case extractionfield.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = new(string)
				*_m.CorrectedValue = value.String
			}
		case extractionfield.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionfield.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionField) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionField.
// Note that you need to call ExtractionField.Unwrap() before calling this method if this ExtractionField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionField) Update() *ExtractionFieldUpdateOne {
	return NewExtractionFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionField) Unwrap() *ExtractionField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	if v := _m.ExtractedValue; v != nil {
		builder.WriteString("extracted_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("is_corrected=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrected))
	builder.WriteString(", ")
	if v := _m.CorrectedValue; v != nil {
		builder.WriteString("corrected_value=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionFields is a parsable slice of ExtractionField.
type ExtractionFields []*ExtractionField
