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
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// FileExtractionUpdate is the builder for updating FileExtraction entities.
type FileExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *FileExtractionMutation
}

// Where appends a list predicates to the FileExtractionUpdate builder.
func (feu *FileExtractionUpdate) Where(ps ...predicate.FileExtraction) *FileExtractionUpdate {
	feu.mutation.Where(ps...)
	return feu
}

// SetRunID sets the "run_id" field.
func (feu *FileExtractionUpdate) SetRunID(u uuid.UUID) *FileExtractionUpdate {
	feu.mutation.SetRunID(u)
	return feu
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableRunID(u *uuid.UUID) *FileExtractionUpdate {
	if u != nil {
		feu.SetRunID(*u)
	}
	return feu
}

// SetFilename sets the "filename" field.
func (feu *FileExtractionUpdate) SetFilename(s string) *FileExtractionUpdate {
	feu.mutation.SetFilename(s)
	return feu
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableFilename(s *string) *FileExtractionUpdate {
	if s != nil {
		feu.SetFilename(*s)
	}
	return feu
}

// SetFilePath sets the "file_path" field.
func (feu *FileExtractionUpdate) SetFilePath(s string) *FileExtractionUpdate {
	feu.mutation.SetFilePath(s)
	return feu
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableFilePath(s *string) *FileExtractionUpdate {
	if s != nil {
		feu.SetFilePath(*s)
	}
	return feu
}

// SetFileType sets the "file_type" field.
func (feu *FileExtractionUpdate) SetFileType(s string) *FileExtractionUpdate {
	feu.mutation.SetFileType(s)
	return feu
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableFileType(s *string) *FileExtractionUpdate {
	if s != nil {
		feu.SetFileType(*s)
	}
	return feu
}

// SetStatus sets the "status" field.
func (feu *FileExtractionUpdate) SetStatus(s string) *FileExtractionUpdate {
	feu.mutation.SetStatus(s)
	return feu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableStatus(s *string) *FileExtractionUpdate {
	if s != nil {
		feu.SetStatus(*s)
	}
	return feu
}

// SetRetryCount sets the "retry_count" field.
func (feu *FileExtractionUpdate) SetRetryCount(i int) *FileExtractionUpdate {
	feu.mutation.ResetRetryCount()
	feu.mutation.SetRetryCount(i)
	return feu
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableRetryCount(i *int) *FileExtractionUpdate {
	if i != nil {
		feu.SetRetryCount(*i)
	}
	return feu
}

// AddRetryCount adds i to the "retry_count" field.
func (feu *FileExtractionUpdate) AddRetryCount(i int) *FileExtractionUpdate {
	feu.mutation.AddRetryCount(i)
	return feu
}

// SetSourceTag sets the "source_tag" field.
func (feu *FileExtractionUpdate) SetSourceTag(s string) *FileExtractionUpdate {
	feu.mutation.SetSourceTag(s)
	return feu
}

// SetNillableSourceTag sets the "source_tag" field if the given value is not nil.
func (feu *FileExtractionUpdate) SetNillableSourceTag(s *string) *FileExtractionUpdate {
	if s != nil {
		feu.SetSourceTag(*s)
	}
	return feu
}

// SetUpdatedAt sets the "updated_at" field.
func (feu *FileExtractionUpdate) SetUpdatedAt(t time.Time) *FileExtractionUpdate {
	feu.mutation.SetUpdatedAt(t)
	return feu
}

// Mutation returns the FileExtractionMutation object of the builder.
func (feu *FileExtractionUpdate) Mutation() *FileExtractionMutation {
	return feu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (feu *FileExtractionUpdate) Save(ctx context.Context) (int, error) {
	feu.defaults()
	return withHooks(ctx, feu.sqlSave, feu.mutation, feu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (feu *FileExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := feu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (feu *FileExtractionUpdate) Exec(ctx context.Context) error {
	_, err := feu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (feu *FileExtractionUpdate) ExecX(ctx context.Context) {
	if err := feu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (feu *FileExtractionUpdate) defaults() {
	if _, ok := feu.mutation.UpdatedAt(); !ok {
		v := fileextraction.UpdateDefaultUpdatedAt()
		feu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (feu *FileExtractionUpdate) check() error {
	if v, ok := feu.mutation.Filename(); ok {
		if err := fileextraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.filename": %w`, err)}
		}
	}
	if v, ok := feu.mutation.FilePath(); ok {
		if err := fileextraction.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_path": %w`, err)}
		}
	}
	if v, ok := feu.mutation.FileType(); ok {
		if err := fileextraction.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_type": %w`, err)}
		}
	}
	if v, ok := feu.mutation.Status(); ok {
		if err := fileextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.status": %w`, err)}
		}
	}
	if v, ok := feu.mutation.RetryCount(); ok {
		if err := fileextraction.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.retry_count": %w`, err)}
		}
	}
	return nil
}

func (feu *FileExtractionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := feu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileextraction.Table, fileextraction.Columns, sqlgraph.NewFieldSpec(fileextraction.FieldID, field.TypeUUID))
	if ps := feu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := feu.mutation.RunID(); ok {
		_spec.SetField(fileextraction.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := feu.mutation.Filename(); ok {
		_spec.SetField(fileextraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := feu.mutation.FilePath(); ok {
		_spec.SetField(fileextraction.FieldFilePath, field.TypeString, value)
	}
	if value, ok := feu.mutation.FileType(); ok {
		_spec.SetField(fileextraction.FieldFileType, field.TypeString, value)
	}
	if value, ok := feu.mutation.Status(); ok {
		_spec.SetField(fileextraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := feu.mutation.RetryCount(); ok {
		_spec.SetField(fileextraction.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := feu.mutation.AddedRetryCount(); ok {
		_spec.AddField(fileextraction.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := feu.mutation.SourceTag(); ok {
		_spec.SetField(fileextraction.FieldSourceTag, field.TypeString, value)
	}
	if value, ok := feu.mutation.UpdatedAt(); ok {
		_spec.SetField(fileextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, feu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	feu.mutation.done = true
	return n, nil
}

// FileExtractionUpdateOne is the builder for updating a single FileExtraction entity.
type FileExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileExtractionMutation
}

// SetRunID sets the "run_id" field.
func (feuo *FileExtractionUpdateOne) SetRunID(u uuid.UUID) *FileExtractionUpdateOne {
	feuo.mutation.SetRunID(u)
	return feuo
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableRunID(u *uuid.UUID) *FileExtractionUpdateOne {
	if u != nil {
		feuo.SetRunID(*u)
	}
	return feuo
}

// SetFilename sets the "filename" field.
func (feuo *FileExtractionUpdateOne) SetFilename(s string) *FileExtractionUpdateOne {
	feuo.mutation.SetFilename(s)
	return feuo
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableFilename(s *string) *FileExtractionUpdateOne {
	if s != nil {
		feuo.SetFilename(*s)
	}
	return feuo
}

// SetFilePath sets the "file_path" field.
func (feuo *FileExtractionUpdateOne) SetFilePath(s string) *FileExtractionUpdateOne {
	feuo.mutation.SetFilePath(s)
	return feuo
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableFilePath(s *string) *FileExtractionUpdateOne {
	if s != nil {
		feuo.SetFilePath(*s)
	}
	return feuo
}

// SetFileType sets the "file_type" field.
func (feuo *FileExtractionUpdateOne) SetFileType(s string) *FileExtractionUpdateOne {
	feuo.mutation.SetFileType(s)
	return feuo
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableFileType(s *string) *FileExtractionUpdateOne {
	if s != nil {
		feuo.SetFileType(*s)
	}
	return feuo
}

// SetStatus sets the "status" field.
func (feuo *FileExtractionUpdateOne) SetStatus(s string) *FileExtractionUpdateOne {
	feuo.mutation.SetStatus(s)
	return feuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableStatus(s *string) *FileExtractionUpdateOne {
	if s != nil {
		feuo.SetStatus(*s)
	}
	return feuo
}

// SetRetryCount sets the "retry_count" field.
func (feuo *FileExtractionUpdateOne) SetRetryCount(i int) *FileExtractionUpdateOne {
	feuo.mutation.ResetRetryCount()
	feuo.mutation.SetRetryCount(i)
	return feuo
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableRetryCount(i *int) *FileExtractionUpdateOne {
	if i != nil {
		feuo.SetRetryCount(*i)
	}
	return feuo
}

// AddRetryCount adds i to the "retry_count" field.
func (feuo *FileExtractionUpdateOne) AddRetryCount(i int) *FileExtractionUpdateOne {
	feuo.mutation.AddRetryCount(i)
	return feuo
}

// SetSourceTag sets the "source_tag" field.
func (feuo *FileExtractionUpdateOne) SetSourceTag(s string) *FileExtractionUpdateOne {
	feuo.mutation.SetSourceTag(s)
	return feuo
}

// SetNillableSourceTag sets the "source_tag" field if the given value is not nil.
func (feuo *FileExtractionUpdateOne) SetNillableSourceTag(s *string) *FileExtractionUpdateOne {
	if s != nil {
		feuo.SetSourceTag(*s)
	}
	return feuo
}

// SetUpdatedAt sets the "updated_at" field.
func (feuo *FileExtractionUpdateOne) SetUpdatedAt(t time.Time) *FileExtractionUpdateOne {
	feuo.mutation.SetUpdatedAt(t)
	return feuo
}

// Mutation returns the FileExtractionMutation object of the builder.
func (feuo *FileExtractionUpdateOne) Mutation() *FileExtractionMutation {
	return feuo.mutation
}

// Where appends a list predicates to the FileExtractionUpdate builder.
func (feuo *FileExtractionUpdateOne) Where(ps ...predicate.FileExtraction) *FileExtractionUpdateOne {
	feuo.mutation.Where(ps...)
	return feuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (feuo *FileExtractionUpdateOne) Select(field string, fields ...string) *FileExtractionUpdateOne {
	feuo.fields = append([]string{field}, fields...)
	return feuo
}

// Save executes the query and returns the updated FileExtraction entity.
func (feuo *FileExtractionUpdateOne) Save(ctx context.Context) (*FileExtraction, error) {
	feuo.defaults()
	return withHooks(ctx, feuo.sqlSave, feuo.mutation, feuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (feuo *FileExtractionUpdateOne) SaveX(ctx context.Context) *FileExtraction {
	node, err := feuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (feuo *FileExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := feuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (feuo *FileExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := feuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (feuo *FileExtractionUpdateOne) defaults() {
	if _, ok := feuo.mutation.UpdatedAt(); !ok {
		v := fileextraction.UpdateDefaultUpdatedAt()
		feuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (feuo *FileExtractionUpdateOne) check() error {
	if v, ok := feuo.mutation.Filename(); ok {
		if err := fileextraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.filename": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.FilePath(); ok {
		if err := fileextraction.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_path": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.FileType(); ok {
		if err := fileextraction.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_type": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.Status(); ok {
		if err := fileextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.status": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.RetryCount(); ok {
		if err := fileextraction.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.retry_count": %w`, err)}
		}
	}
	return nil
}

func (feuo *FileExtractionUpdateOne) sqlSave(ctx context.Context) (_node *FileExtraction, err error) {
	if err := feuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fileextraction.Table, fileextraction.Columns, sqlgraph.NewFieldSpec(fileextraction.FieldID, field.TypeUUID))
	id, ok := feuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileExtraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := feuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileextraction.FieldID)
		for _, f := range fields {
			if !fileextraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fileextraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := feuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := feuo.mutation.RunID(); ok {
		_spec.SetField(fileextraction.FieldRunID, field.TypeUUID, value)
	}
	if value, ok := feuo.mutation.Filename(); ok {
		_spec.SetField(fileextraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := feuo.mutation.FilePath(); ok {
		_spec.SetField(fileextraction.FieldFilePath, field.TypeString, value)
	}
	if value, ok := feuo.mutation.FileType(); ok {
		_spec.SetField(fileextraction.FieldFileType, field.TypeString, value)
	}
	if value, ok := feuo.mutation.Status(); ok {
		_spec.SetField(fileextraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := feuo.mutation.RetryCount(); ok {
		_spec.SetField(fileextraction.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := feuo.mutation.AddedRetryCount(); ok {
		_spec.AddField(fileextraction.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := feuo.mutation.SourceTag(); ok {
		_spec.SetField(fileextraction.FieldSourceTag, field.TypeString, value)
	}
	if value, ok := feuo.mutation.UpdatedAt(); ok {
		_spec.SetField(fileextraction.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &FileExtraction{config: feuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, feuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileextraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	feuo.mutation.done = true
	return _node, nil
}
