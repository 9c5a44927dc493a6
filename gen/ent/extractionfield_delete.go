// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/extractionfield"
	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent/predicate"
)

// ExtractionFieldDelete is the builder for deleting a ExtractionField entity.
type ExtractionFieldDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionFieldMutation
}

// Where appends a list predicates to the ExtractionFieldDelete builder.
func (_d *ExtractionFieldDelete) Where(ps ...predicate.ExtractionField) *ExtractionFieldDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionFieldDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionFieldDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionFieldDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractionfield.Table, sqlgraph.NewFieldSpec(extractionfield.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractionFieldDeleteOne is the builder for deleting a single ExtractionField entity.
type ExtractionFieldDeleteOne struct {
	_d *ExtractionFieldDelete
}

// Where appends a list predicates to the ExtractionFieldDelete builder.
func (_d *ExtractionFieldDeleteOne) Where(ps ...predicate.ExtractionField) *ExtractionFieldDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionFieldDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractionfield.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionFieldDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
