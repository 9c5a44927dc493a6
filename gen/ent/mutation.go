// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionField = "ExtractionField"
)

// ExtractionFieldMutation represents an operation that mutates the ExtractionField nodes in the graph.
type ExtractionFieldMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	document_id         *string
	source_type         *string
	field_name          *string
	extracted_value     *string
	confidence_score    *float32
	addconfidence_score *float32
	is_corrected        *bool
	corrected_value     *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ExtractionField, error)
	predicates          []predicate.ExtractionField
}

var _ ent.Mutation = (*ExtractionFieldMutation)(nil)

// extractionfieldOption allows management of the mutation configuration using functional options.
type extractionfieldOption func(*ExtractionFieldMutation)

// newExtractionFieldMutation creates new mutation for the ExtractionField entity.
func newExtractionFieldMutation(c config, op Op, opts ...extractionfieldOption) *ExtractionFieldMutation {
	m := &ExtractionFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionFieldID sets the ID field of the mutation.
func withExtractionFieldID(id uuid.UUID) extractionfieldOption {
	return func(m *ExtractionFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionField
		)
		m.oldValue = func(ctx context.Context) (*ExtractionField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionField sets the old ExtractionField of the mutation.
func withExtractionField(node *ExtractionField) extractionfieldOption {
	return func(m *ExtractionFieldMutation) {
		m.oldValue = func(context.Context) (*ExtractionField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionField entities.
func (m *ExtractionFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionFieldMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionFieldMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionFieldMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetSourceType sets the "source_type" field.
func (m *ExtractionFieldMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ExtractionFieldMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ExtractionFieldMutation) ResetSourceType() {
	m.source_type = nil
}

// SetFieldName sets the "field_name" field.
func (m *ExtractionFieldMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ExtractionFieldMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ExtractionFieldMutation) ResetFieldName() {
	m.field_name = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ExtractionFieldMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ExtractionFieldMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldExtractedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ExtractionFieldMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.clearedFields[extractionfield.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ExtractionFieldMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[extractionfield.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ExtractionFieldMutation) ResetExtractedValue() {
	m.extracted_value = nil
	delete(m.clearedFields, extractionfield.FieldExtractedValue)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractionFieldMutation) SetConfidenceScore(f float32) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractionFieldMutation) ConfidenceScore() (r float32, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldConfidenceScore(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractionFieldMutation) AddConfidenceScore(f float32) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractionFieldMutation) AddedConfidenceScore() (r float32, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractionFieldMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetIsCorrected sets the "is_corrected" field.
func (m *ExtractionFieldMutation) SetIsCorrected(b bool) {
	m.is_corrected = &b
}

// IsCorrected returns the value of the "is_corrected" field in the mutation.
func (m *ExtractionFieldMutation) IsCorrected() (r bool, exists bool) {
	v := m.is_corrected
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrected returns the old "is_corrected" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldIsCorrected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrected: %w", err)
	}
	return oldValue.IsCorrected, nil
}

// ResetIsCorrected resets all changes to the "is_corrected" field.
func (m *ExtractionFieldMutation) ResetIsCorrected() {
	m.is_corrected = nil
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *ExtractionFieldMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *ExtractionFieldMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldCorrectedValue(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (m *ExtractionFieldMutation) ClearCorrectedValue() {
	m.corrected_value = nil
	m.clearedFields[extractionfield.FieldCorrectedValue] = struct{}{}
}

// CorrectedValueCleared returns if the "corrected_value" field was cleared in this mutation.
func (m *ExtractionFieldMutation) CorrectedValueCleared() bool {
	_, ok := m.clearedFields[extractionfield.FieldCorrectedValue]
	return ok
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *ExtractionFieldMutation) ResetCorrectedValue() {
	m.corrected_value = nil
	delete(m.clearedFields, extractionfield.FieldCorrectedValue)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionFieldMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionFieldMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionField entity.
// If the ExtractionField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionFieldMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionFieldMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ExtractionFieldMutation builder.
func (m *ExtractionFieldMutation) Where(ps ...predicate.ExtractionField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionField).
func (m *ExtractionFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionFieldMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document_id != nil {
		fields = append(fields, extractionfield.FieldDocumentID)
	}
	if m.source_type != nil {
		fields = append(fields, extractionfield.FieldSourceType)
	}
	if m.field_name != nil {
		fields = append(fields, extractionfield.FieldFieldName)
	}
	if m.extracted_value != nil {
		fields = append(fields, extractionfield.FieldExtractedValue)
	}
	if m.confidence_score != nil {
		fields = append(fields, extractionfield.FieldConfidenceScore)
	}
	if m.is_corrected != nil {
		fields = append(fields, extractionfield.FieldIsCorrected)
	}
	if m.corrected_value != nil {
		fields = append(fields, extractionfield.FieldCorrectedValue)
	}
	if m.created_at != nil {
		fields = append(fields, extractionfield.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionfield.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionfield.FieldDocumentID:
		return m.DocumentID()
	case extractionfield.FieldSourceType:
		return m.SourceType()
	case extractionfield.FieldFieldName:
		return m.FieldName()
	case extractionfield.FieldExtractedValue:
		return m.ExtractedValue()
	case extractionfield.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extractionfield.FieldIsCorrected:
		return m.IsCorrected()
	case extractionfield.FieldCorrectedValue:
		return m.CorrectedValue()
	case extractionfield.FieldCreatedAt:
		return m.CreatedAt()
	case extractionfield.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionfield.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionfield.FieldSourceType:
		return m.OldSourceType(ctx)
	case extractionfield.FieldFieldName:
		return m.OldFieldName(ctx)
	case extractionfield.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case extractionfield.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extractionfield.FieldIsCorrected:
		return m.OldIsCorrected(ctx)
	case extractionfield.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case extractionfield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionfield.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionfield.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionfield.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case extractionfield.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case extractionfield.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case extractionfield.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extractionfield.FieldIsCorrected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrected(v)
		return nil
	case extractionfield.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case extractionfield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionfield.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionFieldMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, extractionfield.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionfield.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionfield.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionfield.FieldExtractedValue) {
		fields = append(fields, extractionfield.FieldExtractedValue)
	}
	if m.FieldCleared(extractionfield.FieldCorrectedValue) {
		fields = append(fields, extractionfield.FieldCorrectedValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionFieldMutation) ClearField(name string) error {
	switch name {
	case extractionfield.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case extractionfield.FieldCorrectedValue:
		m.ClearCorrectedValue()
		return nil
	}
	return fmt.Errorf("unknown ExtractionField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionFieldMutation) ResetField(name string) error {
	switch name {
	case extractionfield.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionfield.FieldSourceType:
		m.ResetSourceType()
		return nil
	case extractionfield.FieldFieldName:
		m.ResetFieldName()
		return nil
	case extractionfield.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case extractionfield.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extractionfield.FieldIsCorrected:
		m.ResetIsCorrected()
		return nil
	case extractionfield.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case extractionfield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionfield.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionFieldMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionFieldMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionFieldMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionFieldMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionField edge %s", name)
}
