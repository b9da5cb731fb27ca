// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// FileExtractionDelete is the builder for deleting a FileExtraction entity.
type FileExtractionDelete struct {
	config
	hooks    []Hook
	mutation *FileExtractionMutation
}

// Where appends a list predicates to the FileExtractionDelete builder.
func (fed *FileExtractionDelete) Where(ps ...predicate.FileExtraction) *FileExtractionDelete {
	fed.mutation.Where(ps...)
	return fed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (fed *FileExtractionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, fed.sqlExec, fed.mutation, fed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (fed *FileExtractionDelete) ExecX(ctx context.Context) int {
	n, err := fed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (fed *FileExtractionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fileextraction.Table, sqlgraph.NewFieldSpec(fileextraction.FieldID, field.TypeUUID))
	if ps := fed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, fed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	fed.mutation.done = true
	return affected, err
}

// FileExtractionDeleteOne is the builder for deleting a single FileExtraction entity.
type FileExtractionDeleteOne struct {
	fed *FileExtractionDelete
}

// Where appends a list predicates to the FileExtractionDelete builder.
func (fedo *FileExtractionDeleteOne) Where(ps ...predicate.FileExtraction) *FileExtractionDeleteOne {
	fedo.fed.mutation.Where(ps...)
	return fedo
}

// Exec executes the deletion query.
func (fedo *FileExtractionDeleteOne) Exec(ctx context.Context) error {
	n, err := fedo.fed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fileextraction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (fedo *FileExtractionDeleteOne) ExecX(ctx context.Context) {
	if err := fedo.Exec(ctx); err != nil {
		panic(err)
	}
}
