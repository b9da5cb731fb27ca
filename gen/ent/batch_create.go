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
	"github.com/mlevchenko/tenderbatch/gen/ent/batch"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (bc *BatchCreate) SetStatus(s string) *BatchCreate {
	bc.mutation.SetStatus(s)
	return bc
}

// SetRunID sets the "run_id" field.
func (bc *BatchCreate) SetRunID(u uuid.UUID) *BatchCreate {
	bc.mutation.SetRunID(u)
	return bc
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (bc *BatchCreate) SetNillableRunID(u *uuid.UUID) *BatchCreate {
	if u != nil {
		bc.SetRunID(*u)
	}
	return bc
}

// SetTotalFiles sets the "total_files" field.
func (bc *BatchCreate) SetTotalFiles(i int) *BatchCreate {
	bc.mutation.SetTotalFiles(i)
	return bc
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (bc *BatchCreate) SetNillableTotalFiles(i *int) *BatchCreate {
	if i != nil {
		bc.SetTotalFiles(*i)
	}
	return bc
}

// SetErrorMessage sets the "error_message" field.
func (bc *BatchCreate) SetErrorMessage(s string) *BatchCreate {
	bc.mutation.SetErrorMessage(s)
	return bc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (bc *BatchCreate) SetNillableErrorMessage(s *string) *BatchCreate {
	if s != nil {
		bc.SetErrorMessage(*s)
	}
	return bc
}

// SetArchiveKey sets the "archive_key" field.
func (bc *BatchCreate) SetArchiveKey(s string) *BatchCreate {
	bc.mutation.SetArchiveKey(s)
	return bc
}

// SetCreatedAt sets the "created_at" field.
func (bc *BatchCreate) SetCreatedAt(t time.Time) *BatchCreate {
	bc.mutation.SetCreatedAt(t)
	return bc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bc *BatchCreate) SetNillableCreatedAt(t *time.Time) *BatchCreate {
	if t != nil {
		bc.SetCreatedAt(*t)
	}
	return bc
}

// SetUpdatedAt sets the "updated_at" field.
func (bc *BatchCreate) SetUpdatedAt(t time.Time) *BatchCreate {
	bc.mutation.SetUpdatedAt(t)
	return bc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bc *BatchCreate) SetNillableUpdatedAt(t *time.Time) *BatchCreate {
	if t != nil {
		bc.SetUpdatedAt(*t)
	}
	return bc
}

// SetCompletedAt sets the "completed_at" field.
func (bc *BatchCreate) SetCompletedAt(t time.Time) *BatchCreate {
	bc.mutation.SetCompletedAt(t)
	return bc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (bc *BatchCreate) SetNillableCompletedAt(t *time.Time) *BatchCreate {
	if t != nil {
		bc.SetCompletedAt(*t)
	}
	return bc
}

// SetID sets the "id" field.
func (bc *BatchCreate) SetID(u uuid.UUID) *BatchCreate {
	bc.mutation.SetID(u)
	return bc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (bc *BatchCreate) SetNillableID(u *uuid.UUID) *BatchCreate {
	if u != nil {
		bc.SetID(*u)
	}
	return bc
}

// Mutation returns the BatchMutation object of the builder.
func (bc *BatchCreate) Mutation() *BatchMutation {
	return bc.mutation
}

// Save creates the Batch in the database.
func (bc *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	bc.defaults()
	return withHooks(ctx, bc.sqlSave, bc.mutation, bc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bc *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := bc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bc *BatchCreate) Exec(ctx context.Context) error {
	_, err := bc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bc *BatchCreate) ExecX(ctx context.Context) {
	if err := bc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bc *BatchCreate) defaults() {
	if _, ok := bc.mutation.TotalFiles(); !ok {
		v := batch.DefaultTotalFiles
		bc.mutation.SetTotalFiles(v)
	}
	if _, ok := bc.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		bc.mutation.SetCreatedAt(v)
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		v := batch.DefaultUpdatedAt()
		bc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bc.mutation.ID(); !ok {
		v := batch.DefaultID()
		bc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bc *BatchCreate) check() error {
	if _, ok := bc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := bc.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := bc.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "Batch.total_files"`)}
	}
	if v, ok := bc.mutation.TotalFiles(); ok {
		if err := batch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Batch.total_files": %w`, err)}
		}
	}
	if _, ok := bc.mutation.ArchiveKey(); !ok {
		return &ValidationError{Name: "archive_key", err: errors.New(`ent: missing required field "Batch.archive_key"`)}
	}
	if v, ok := bc.mutation.ArchiveKey(); ok {
		if err := batch.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "Batch.archive_key": %w`, err)}
		}
	}
	if _, ok := bc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Batch.updated_at"`)}
	}
	return nil
}

func (bc *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
	if err := bc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bc.driver, _spec); err != nil {
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
	bc.mutation.id = &_node.ID
	bc.mutation.done = true
	return _node, nil
}

func (bc *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: bc.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	)
	if id, ok := bc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := bc.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := bc.mutation.RunID(); ok {
		_spec.SetField(batch.FieldRunID, field.TypeUUID, value)
		_node.RunID = &value
	}
	if value, ok := bc.mutation.TotalFiles(); ok {
		_spec.SetField(batch.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := bc.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := bc.mutation.ArchiveKey(); ok {
		_spec.SetField(batch.FieldArchiveKey, field.TypeString, value)
		_node.ArchiveKey = value
	}
	if value, ok := bc.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bc.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := bc.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (bcb *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if bcb.err != nil {
		return nil, bcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bcb.builders))
	nodes := make([]*Batch, len(bcb.builders))
	mutators := make([]Mutator, len(bcb.builders))
	for i := range bcb.builders {
		func(i int, root context.Context) {
			builder := bcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
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
					_, err = mutators[i+1].Mutate(root, bcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bcb *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := bcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcb *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := bcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcb *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := bcb.Exec(ctx); err != nil {
		panic(err)
	}
}
