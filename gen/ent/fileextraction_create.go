// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
)

// FileExtractionCreate is the builder for creating a FileExtraction entity.
type FileExtractionCreate struct {
	config
	mutation *FileExtractionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (fec *FileExtractionCreate) SetRunID(u uuid.UUID) *FileExtractionCreate {
	fec.mutation.SetRunID(u)
	return fec
}

// SetFilename sets the "filename" field.
func (fec *FileExtractionCreate) SetFilename(s string) *FileExtractionCreate {
	fec.mutation.SetFilename(s)
	return fec
}

// SetFilePath sets the "file_path" field.
func (fec *FileExtractionCreate) SetFilePath(s string) *FileExtractionCreate {
	fec.mutation.SetFilePath(s)
	return fec
}

// SetFileType sets the "file_type" field.
func (fec *FileExtractionCreate) SetFileType(s string) *FileExtractionCreate {
	fec.mutation.SetFileType(s)
	return fec
}

// SetStatus sets the "status" field.
func (fec *FileExtractionCreate) SetStatus(s string) *FileExtractionCreate {
	fec.mutation.SetStatus(s)
	return fec
}

// SetRetryCount sets the "retry_count" field.
func (fec *FileExtractionCreate) SetRetryCount(i int) *FileExtractionCreate {
	fec.mutation.SetRetryCount(i)
	return fec
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (fec *FileExtractionCreate) SetNillableRetryCount(i *int) *FileExtractionCreate {
	if i != nil {
		fec.SetRetryCount(*i)
	}
	return fec
}

// SetSourceTag sets the "source_tag" field.
func (fec *FileExtractionCreate) SetSourceTag(s string) *FileExtractionCreate {
	fec.mutation.SetSourceTag(s)
	return fec
}

// SetNillableSourceTag sets the "source_tag" field if the given value is not nil.
func (fec *FileExtractionCreate) SetNillableSourceTag(s *string) *FileExtractionCreate {
	if s != nil {
		fec.SetSourceTag(*s)
	}
	return fec
}

// SetCreatedAt sets the "created_at" field.
func (fec *FileExtractionCreate) SetCreatedAt(t time.Time) *FileExtractionCreate {
	fec.mutation.SetCreatedAt(t)
	return fec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (fec *FileExtractionCreate) SetNillableCreatedAt(t *time.Time) *FileExtractionCreate {
	if t != nil {
		fec.SetCreatedAt(*t)
	}
	return fec
}

// SetUpdatedAt sets the "updated_at" field.
func (fec *FileExtractionCreate) SetUpdatedAt(t time.Time) *FileExtractionCreate {
	fec.mutation.SetUpdatedAt(t)
	return fec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (fec *FileExtractionCreate) SetNillableUpdatedAt(t *time.Time) *FileExtractionCreate {
	if t != nil {
		fec.SetUpdatedAt(*t)
	}
	return fec
}

// SetID sets the "id" field.
func (fec *FileExtractionCreate) SetID(u uuid.UUID) *FileExtractionCreate {
	fec.mutation.SetID(u)
	return fec
}

// Mutation returns the FileExtractionMutation object of the builder.
func (fec *FileExtractionCreate) Mutation() *FileExtractionMutation {
	return fec.mutation
}

// Save creates the FileExtraction in the database.
func (fec *FileExtractionCreate) Save(ctx context.Context) (*FileExtraction, error) {
	fec.defaults()
	return withHooks(ctx, fec.sqlSave, fec.mutation, fec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (fec *FileExtractionCreate) SaveX(ctx context.Context) *FileExtraction {
	v, err := fec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fec *FileExtractionCreate) Exec(ctx context.Context) error {
	_, err := fec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fec *FileExtractionCreate) ExecX(ctx context.Context) {
	if err := fec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fec *FileExtractionCreate) defaults() {
	if _, ok := fec.mutation.RetryCount(); !ok {
		v := fileextraction.DefaultRetryCount
		fec.mutation.SetRetryCount(v)
	}
	if _, ok := fec.mutation.SourceTag(); !ok {
		v := fileextraction.DefaultSourceTag
		fec.mutation.SetSourceTag(v)
	}
	if _, ok := fec.mutation.CreatedAt(); !ok {
		v := fileextraction.DefaultCreatedAt()
		fec.mutation.SetCreatedAt(v)
	}
	if _, ok := fec.mutation.UpdatedAt(); !ok {
		v := fileextraction.DefaultUpdatedAt()
		fec.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fec *FileExtractionCreate) check() error {
	if _, ok := fec.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "FileExtraction.run_id"`)}
	}
	if _, ok := fec.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "FileExtraction.filename"`)}
	}
	if v, ok := fec.mutation.Filename(); ok {
		if err := fileextraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.filename": %w`, err)}
		}
	}
	if _, ok := fec.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "FileExtraction.file_path"`)}
	}
	if v, ok := fec.mutation.FilePath(); ok {
		if err := fileextraction.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_path": %w`, err)}
		}
	}
	if _, ok := fec.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "FileExtraction.file_type"`)}
	}
	if v, ok := fec.mutation.FileType(); ok {
		if err := fileextraction.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.file_type": %w`, err)}
		}
	}
	if _, ok := fec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileExtraction.status"`)}
	}
	if v, ok := fec.mutation.Status(); ok {
		if err := fileextraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.status": %w`, err)}
		}
	}
	if _, ok := fec.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "FileExtraction.retry_count"`)}
	}
	if v, ok := fec.mutation.RetryCount(); ok {
		if err := fileextraction.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "FileExtraction.retry_count": %w`, err)}
		}
	}
	if _, ok := fec.mutation.SourceTag(); !ok {
		return &ValidationError{Name: "source_tag", err: errors.New(`ent: missing required field "FileExtraction.source_tag"`)}
	}
	if _, ok := fec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FileExtraction.created_at"`)}
	}
	if _, ok := fec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FileExtraction.updated_at"`)}
	}
	return nil
}

func (fec *FileExtractionCreate) sqlSave(ctx context.Context) (*FileExtraction, error) {
	if err := fec.check(); err != nil {
		return nil, err
	}
	_node, _spec := fec.createSpec()
	if err := sqlgraph.CreateNode(ctx, fec.driver, _spec); err != nil {
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
	fec.mutation.id = &_node.ID
	fec.mutation.done = true
	return _node, nil
}

func (fec *FileExtractionCreate) createSpec() (*FileExtraction, *sqlgraph.CreateSpec) {
	var (
		_node = &FileExtraction{config: fec.config}
		_spec = sqlgraph.NewCreateSpec(fileextraction.Table, sqlgraph.NewFieldSpec(fileextraction.FieldID, field.TypeUUID))
	)
	if id, ok := fec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := fec.mutation.RunID(); ok {
		_spec.SetField(fileextraction.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := fec.mutation.Filename(); ok {
		_spec.SetField(fileextraction.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := fec.mutation.FilePath(); ok {
		_spec.SetField(fileextraction.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := fec.mutation.FileType(); ok {
		_spec.SetField(fileextraction.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := fec.mutation.Status(); ok {
		_spec.SetField(fileextraction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := fec.mutation.RetryCount(); ok {
		_spec.SetField(fileextraction.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := fec.mutation.SourceTag(); ok {
		_spec.SetField(fileextraction.FieldSourceTag, field.TypeString, value)
		_node.SourceTag = value
	}
	if value, ok := fec.mutation.CreatedAt(); ok {
		_spec.SetField(fileextraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := fec.mutation.UpdatedAt(); ok {
		_spec.SetField(fileextraction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// FileExtractionCreateBulk is the builder for creating many FileExtraction entities in bulk.
type FileExtractionCreateBulk struct {
	config
	err      error
	builders []*FileExtractionCreate
}

// Save creates the FileExtraction entities in the database.
func (fecb *FileExtractionCreateBulk) Save(ctx context.Context) ([]*FileExtraction, error) {
	if fecb.err != nil {
		return nil, fecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(fecb.builders))
	nodes := make([]*FileExtraction, len(fecb.builders))
	mutators := make([]Mutator, len(fecb.builders))
	for i := range fecb.builders {
		func(i int, root context.Context) {
			builder := fecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileExtractionMutation)
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
					_, err = mutators[i+1].Mutate(root, fecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, fecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, fecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (fecb *FileExtractionCreateBulk) SaveX(ctx context.Context) []*FileExtraction {
	v, err := fecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fecb *FileExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := fecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fecb *FileExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := fecb.Exec(ctx); err != nil {
		panic(err)
	}
}
