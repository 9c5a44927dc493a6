// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/google/uuid"
)

// ExtractionFieldCreate is the builder for creating a ExtractionField entity.
type ExtractionFieldCreate struct {
	config
	mutation *ExtractionFieldMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionFieldCreate) SetDocumentID(v string) *ExtractionFieldCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *ExtractionFieldCreate) SetSourceType(v string) *ExtractionFieldCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ExtractionFieldCreate) SetFieldName(v string) *ExtractionFieldCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ExtractionFieldCreate) SetExtractedValue(v string) *ExtractionFieldCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableExtractedValue(v *string) *ExtractionFieldCreate {
	if v != nil {
		_c.SetExtractedValue(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ExtractionFieldCreate) SetConfidenceScore(v float32) *ExtractionFieldCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableConfidenceScore(v *float32) *ExtractionFieldCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetIsCorrected sets the "is_corrected" field.
func (_c *ExtractionFieldCreate) SetIsCorrected(v bool) *ExtractionFieldCreate {
	_c.mutation.SetIsCorrected(v)
	return _c
}

// SetNillableIsCorrected sets the "is_corrected" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableIsCorrected(v *bool) *ExtractionFieldCreate {
	if v != nil {
		_c.SetIsCorrected(*v)
	}
	return _c
}

// SetCorrectedValue sets the "corrected_value" field.
func (_c *ExtractionFieldCreate) SetCorrectedValue(v string) *ExtractionFieldCreate {
	_c.mutation.SetCorrectedValue(v)
	return _c
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableCorrectedValue(v *string) *ExtractionFieldCreate {
	if v != nil {
		_c.SetCorrectedValue(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionFieldCreate) SetCreatedAt(v time.Time) *ExtractionFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableCreatedAt(v *time.Time) *ExtractionFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionFieldCreate) SetUpdatedAt(v time.Time) *ExtractionFieldCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionFieldCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionFieldCreate) SetID(v uuid.UUID) *ExtractionFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionFieldCreate) SetNillableID(v *uuid.UUID) *ExtractionFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_c *ExtractionFieldCreate) Mutation() *ExtractionFieldMutation {
	return _c.mutation
}

// Save creates the ExtractionField in the database.
func (_c *ExtractionFieldCreate) Save(ctx context.Context) (*ExtractionField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionFieldCreate) SaveX(ctx context.Context) *ExtractionField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionFieldCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := extractionfield.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.IsCorrected(); !ok {
		v := extractionfield.DefaultIsCorrected
		_c.mutation.SetIsCorrected(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionfield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionfield.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionFieldCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionField.document_id"`)}
	}
	if v, ok := _c.mutation.DocumentID(); ok {
		if err := extractionfield.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.document_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "ExtractionField.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := extractionfield.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ExtractionField.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "ExtractionField.confidence_score"`)}
	}
	if _, ok := _c.mutation.IsCorrected(); !ok {
		return &ValidationError{Name: "is_corrected", err: errors.New(`ent: missing required field "ExtractionField.is_corrected"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionField.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionField.updated_at"`)}
	}
	return nil
}

func (_c *ExtractionFieldCreate) sqlSave(ctx context.Context) (*ExtractionField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionFieldCreate) createSpec() (*ExtractionField, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionfield.Table, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractionfield.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(extractionfield.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeString, value)
		_node.ExtractedValue = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionfield.FieldConfidenceScore, field.TypeFloat32, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.IsCorrected(); ok {
		_spec.SetField(extractionfield.FieldIsCorrected, field.TypeBool, value)
		_node.IsCorrected = value
	}
	if value, ok := _c.mutation.CorrectedValue(); ok {
		_spec.SetField(extractionfield.FieldCorrectedValue, field.TypeString, value)
		_node.CorrectedValue = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionfield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionfield.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionField.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionFieldUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionFieldCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionFieldUpsertOne {
	_c.conflict = opts
	return &ExtractionFieldUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionFieldCreate) OnConflictColumns(columns ...string) *ExtractionFieldUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionFieldUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionFieldUpsertOne is the builder for "upsert"-ing
	//  one ExtractionField node.
	ExtractionFieldUpsertOne struct {
		create *ExtractionFieldCreate
	}

	// ExtractionFieldUpsert is the "OnConflict" setter.
	ExtractionFieldUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *ExtractionFieldUpsert) SetDocumentID(v string) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateDocumentID() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldDocumentID)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *ExtractionFieldUpsert) SetSourceType(v string) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateSourceType() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldSourceType)
	return u
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionFieldUpsert) SetFieldName(v string) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldFieldName, v)
	return u
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateFieldName() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldFieldName)
	return u
}

// SetExtractedValue sets the "extracted_value" field.
func (u *ExtractionFieldUpsert) SetExtractedValue(v string) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldExtractedValue, v)
	return u
}

// UpdateExtractedValue sets the "extracted_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateExtractedValue() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldExtractedValue)
	return u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (u *ExtractionFieldUpsert) ClearExtractedValue() *ExtractionFieldUpsert {
	u.SetNull(extractionfield.FieldExtractedValue)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionFieldUpsert) SetConfidenceScore(v float32) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateConfidenceScore() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionFieldUpsert) AddConfidenceScore(v float32) *ExtractionFieldUpsert {
	u.Add(extractionfield.FieldConfidenceScore, v)
	return u
}

// SetIsCorrected sets the "is_corrected" field.
func (u *ExtractionFieldUpsert) SetIsCorrected(v bool) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldIsCorrected, v)
	return u
}

// UpdateIsCorrected sets the "is_corrected" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateIsCorrected() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldIsCorrected)
	return u
}

// SetCorrectedValue sets the "corrected_value" field.
func (u *ExtractionFieldUpsert) SetCorrectedValue(v string) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldCorrectedValue, v)
	return u
}

// UpdateCorrectedValue sets the "corrected_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateCorrectedValue() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldCorrectedValue)
	return u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (u *ExtractionFieldUpsert) ClearCorrectedValue() *ExtractionFieldUpsert {
	u.SetNull(extractionfield.FieldCorrectedValue)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionFieldUpsert) SetUpdatedAt(v time.Time) *ExtractionFieldUpsert {
	u.Set(extractionfield.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionFieldUpsert) UpdateUpdatedAt() *ExtractionFieldUpsert {
	u.SetExcluded(extractionfield.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionfield.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionFieldUpsertOne) UpdateNewValues() *ExtractionFieldUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractionfield.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extractionfield.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionFieldUpsertOne) Ignore() *ExtractionFieldUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionFieldUpsertOne) DoNothing() *ExtractionFieldUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionFieldCreate.OnConflict
// documentation for more info.
func (u *ExtractionFieldUpsertOne) Update(set func(*ExtractionFieldUpsert)) *ExtractionFieldUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionFieldUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionFieldUpsertOne) SetDocumentID(v string) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateDocumentID() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateDocumentID()
	})
}

// SetSourceType sets the "source_type" field.
func (u *ExtractionFieldUpsertOne) SetSourceType(v string) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateSourceType() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateSourceType()
	})
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionFieldUpsertOne) SetFieldName(v string) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateFieldName() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateFieldName()
	})
}

// SetExtractedValue sets the "extracted_value" field.
func (u *ExtractionFieldUpsertOne) SetExtractedValue(v string) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetExtractedValue(v)
	})
}

// UpdateExtractedValue sets the "extracted_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateExtractedValue() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateExtractedValue()
	})
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (u *ExtractionFieldUpsertOne) ClearExtractedValue() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.ClearExtractedValue()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionFieldUpsertOne) SetConfidenceScore(v float32) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionFieldUpsertOne) AddConfidenceScore(v float32) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateConfidenceScore() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetIsCorrected sets the "is_corrected" field.
func (u *ExtractionFieldUpsertOne) SetIsCorrected(v bool) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetIsCorrected(v)
	})
}

// UpdateIsCorrected sets the "is_corrected" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateIsCorrected() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateIsCorrected()
	})
}

// SetCorrectedValue sets the "corrected_value" field.
func (u *ExtractionFieldUpsertOne) SetCorrectedValue(v string) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetCorrectedValue(v)
	})
}

// UpdateCorrectedValue sets the "corrected_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateCorrectedValue() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateCorrectedValue()
	})
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (u *ExtractionFieldUpsertOne) ClearCorrectedValue() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.ClearCorrectedValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionFieldUpsertOne) SetUpdatedAt(v time.Time) *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionFieldUpsertOne) UpdateUpdatedAt() *ExtractionFieldUpsertOne {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionFieldUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionFieldCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionFieldUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionFieldUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionFieldUpsertOne.ID is not supported by MySQL driver. Use ExtractionFieldUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionFieldUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionFieldCreateBulk is the builder for creating many ExtractionField entities in bulk.
type ExtractionFieldCreateBulk struct {
	config
	err      error
	builders []*ExtractionFieldCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractionField entities in the database.
func (_c *ExtractionFieldCreateBulk) Save(ctx context.Context) ([]*ExtractionField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionFieldCreateBulk) SaveX(ctx context.Context) []*ExtractionField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractionField.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionFieldUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionFieldCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionFieldUpsertBulk {
	_c.conflict = opts
	return &ExtractionFieldUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionFieldCreateBulk) OnConflictColumns(columns ...string) *ExtractionFieldUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionFieldUpsertBulk{
		create: _c,
	}
}

// ExtractionFieldUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractionField nodes.
type ExtractionFieldUpsertBulk struct {
	create *ExtractionFieldCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractionfield.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionFieldUpsertBulk) UpdateNewValues() *ExtractionFieldUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractionfield.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extractionfield.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractionField.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionFieldUpsertBulk) Ignore() *ExtractionFieldUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionFieldUpsertBulk) DoNothing() *ExtractionFieldUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionFieldCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionFieldUpsertBulk) Update(set func(*ExtractionFieldUpsert)) *ExtractionFieldUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionFieldUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *ExtractionFieldUpsertBulk) SetDocumentID(v string) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateDocumentID() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateDocumentID()
	})
}

// SetSourceType sets the "source_type" field.
func (u *ExtractionFieldUpsertBulk) SetSourceType(v string) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateSourceType() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateSourceType()
	})
}

// SetFieldName sets the "field_name" field.
func (u *ExtractionFieldUpsertBulk) SetFieldName(v string) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetFieldName(v)
	})
}

// UpdateFieldName sets the "field_name" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateFieldName() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateFieldName()
	})
}

// SetExtractedValue sets the "extracted_value" field.
func (u *ExtractionFieldUpsertBulk) SetExtractedValue(v string) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetExtractedValue(v)
	})
}

// UpdateExtractedValue sets the "extracted_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateExtractedValue() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateExtractedValue()
	})
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (u *ExtractionFieldUpsertBulk) ClearExtractedValue() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.ClearExtractedValue()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *ExtractionFieldUpsertBulk) SetConfidenceScore(v float32) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *ExtractionFieldUpsertBulk) AddConfidenceScore(v float32) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateConfidenceScore() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetIsCorrected sets the "is_corrected" field.
func (u *ExtractionFieldUpsertBulk) SetIsCorrected(v bool) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetIsCorrected(v)
	})
}

// UpdateIsCorrected sets the "is_corrected" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateIsCorrected() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateIsCorrected()
	})
}

// SetCorrectedValue sets the "corrected_value" field.
func (u *ExtractionFieldUpsertBulk) SetCorrectedValue(v string) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetCorrectedValue(v)
	})
}

// UpdateCorrectedValue sets the "corrected_value" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateCorrectedValue() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateCorrectedValue()
	})
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (u *ExtractionFieldUpsertBulk) ClearCorrectedValue() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.ClearCorrectedValue()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionFieldUpsertBulk) SetUpdatedAt(v time.Time) *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionFieldUpsertBulk) UpdateUpdatedAt() *ExtractionFieldUpsertBulk {
	return u.Update(func(s *ExtractionFieldUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionFieldUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionFieldCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionFieldCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionFieldUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
