// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/predicate"
)

// ExtractionFieldUpdate is the builder for updating ExtractionField entities.
type ExtractionFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionFieldMutation
}

// Where appends a list predicates to the ExtractionFieldUpdate builder.
func (_u *ExtractionFieldUpdate) Where(ps ...predicate.ExtractionField) *ExtractionFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionFieldUpdate) SetDocumentID(v string) *ExtractionFieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableDocumentID(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ExtractionFieldUpdate) SetSourceType(v string) *ExtractionFieldUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableSourceType(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionFieldUpdate) SetFieldName(v string) *ExtractionFieldUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableFieldName(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionFieldUpdate) SetExtractedValue(v string) *ExtractionFieldUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableExtractedValue(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionFieldUpdate) ClearExtractedValue() *ExtractionFieldUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionFieldUpdate) SetConfidenceScore(v float32) *ExtractionFieldUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableConfidenceScore(v *float32) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionFieldUpdate) AddConfidenceScore(v float32) *ExtractionFieldUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetIsCorrected sets the "is_corrected" field.
func (_u *ExtractionFieldUpdate) SetIsCorrected(v bool) *ExtractionFieldUpdate {
	_u.mutation.SetIsCorrected(v)
	return _u
}

// SetNillableIsCorrected sets the "is_corrected" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableIsCorrected(v *bool) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetIsCorrected(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *ExtractionFieldUpdate) SetCorrectedValue(v string) *ExtractionFieldUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *ExtractionFieldUpdate) SetNillableCorrectedValue(v *string) *ExtractionFieldUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *ExtractionFieldUpdate) ClearCorrectedValue() *ExtractionFieldUpdate {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionFieldUpdate) SetUpdatedAt(v time.Time) *ExtractionFieldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_u *ExtractionFieldUpdate) Mutation() *ExtractionFieldMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionFieldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionFieldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionFieldUpdate) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := extractionfield.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := extractionfield.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionfield.Table, extractionfield.Columns, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractionfield.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(extractionfield.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractionfield.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionfield.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractionfield.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.IsCorrected(); ok {
		_spec.SetField(extractionfield.FieldIsCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(extractionfield.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(extractionfield.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionfield.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionFieldUpdateOne is the builder for updating a single ExtractionField entity.
type ExtractionFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionFieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionFieldUpdateOne) SetDocumentID(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableDocumentID(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *ExtractionFieldUpdateOne) SetSourceType(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableSourceType(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionFieldUpdateOne) SetFieldName(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableFieldName(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionFieldUpdateOne) SetExtractedValue(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableExtractedValue(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionFieldUpdateOne) ClearExtractedValue() *ExtractionFieldUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionFieldUpdateOne) SetConfidenceScore(v float32) *ExtractionFieldUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableConfidenceScore(v *float32) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionFieldUpdateOne) AddConfidenceScore(v float32) *ExtractionFieldUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetIsCorrected sets the "is_corrected" field.
func (_u *ExtractionFieldUpdateOne) SetIsCorrected(v bool) *ExtractionFieldUpdateOne {
	_u.mutation.SetIsCorrected(v)
	return _u
}

// SetNillableIsCorrected sets the "is_corrected" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableIsCorrected(v *bool) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetIsCorrected(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *ExtractionFieldUpdateOne) SetCorrectedValue(v string) *ExtractionFieldUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *ExtractionFieldUpdateOne) SetNillableCorrectedValue(v *string) *ExtractionFieldUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *ExtractionFieldUpdateOne) ClearCorrectedValue() *ExtractionFieldUpdateOne {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionFieldUpdateOne) SetUpdatedAt(v time.Time) *ExtractionFieldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionFieldMutation object of the builder.
func (_u *ExtractionFieldUpdateOne) Mutation() *ExtractionFieldMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionFieldUpdate builder.
func (_u *ExtractionFieldUpdateOne) Where(ps ...predicate.ExtractionField) *ExtractionFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionFieldUpdateOne) Select(field string, fields ...string) *ExtractionFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionField entity.
func (_u *ExtractionFieldUpdateOne) Save(ctx context.Context) (*ExtractionField, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionFieldUpdateOne) SaveX(ctx context.Context) *ExtractionField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionFieldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionfield.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionFieldUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentID(); ok {
		if err := extractionfield.DocumentIDValidator(v); err != nil {
			return &ValidationError{Name: "document_id", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.document_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := extractionfield.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := extractionfield.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionField.field_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionfield.Table, extractionfield.Columns, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionfield.FieldID)
		for _, f := range fields {
			if !extractionfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionfield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractionfield.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(extractionfield.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractionfield.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractionfield.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractionfield.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extractionfield.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extractionfield.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.IsCorrected(); ok {
		_spec.SetField(extractionfield.FieldIsCorrected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(extractionfield.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(extractionfield.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionfield.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExtractionField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
