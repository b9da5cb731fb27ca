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
	"github.com/mlevchenko/tenderbatch/gen/ent/batch"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (bu *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	bu.mutation.Where(ps...)
	return bu
}

// SetStatus sets the "status" field.
func (bu *BatchUpdate) SetStatus(s string) *BatchUpdate {
	bu.mutation.SetStatus(s)
	return bu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableStatus(s *string) *BatchUpdate {
	if s != nil {
		bu.SetStatus(*s)
	}
	return bu
}

// SetRunID sets the "run_id" field.
func (bu *BatchUpdate) SetRunID(u uuid.UUID) *BatchUpdate {
	bu.mutation.SetRunID(u)
	return bu
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableRunID(u *uuid.UUID) *BatchUpdate {
	if u != nil {
		bu.SetRunID(*u)
	}
	return bu
}

// ClearRunID clears the value of the "run_id" field.
func (bu *BatchUpdate) ClearRunID() *BatchUpdate {
	bu.mutation.ClearRunID()
	return bu
}

// SetTotalFiles sets the "total_files" field.
func (bu *BatchUpdate) SetTotalFiles(i int) *BatchUpdate {
	bu.mutation.ResetTotalFiles()
	bu.mutation.SetTotalFiles(i)
	return bu
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableTotalFiles(i *int) *BatchUpdate {
	if i != nil {
		bu.SetTotalFiles(*i)
	}
	return bu
}

// AddTotalFiles adds i to the "total_files" field.
func (bu *BatchUpdate) AddTotalFiles(i int) *BatchUpdate {
	bu.mutation.AddTotalFiles(i)
	return bu
}

// SetErrorMessage sets the "error_message" field.
func (bu *BatchUpdate) SetErrorMessage(s string) *BatchUpdate {
	bu.mutation.SetErrorMessage(s)
	return bu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableErrorMessage(s *string) *BatchUpdate {
	if s != nil {
		bu.SetErrorMessage(*s)
	}
	return bu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (bu *BatchUpdate) ClearErrorMessage() *BatchUpdate {
	bu.mutation.ClearErrorMessage()
	return bu
}

// SetArchiveKey sets the "archive_key" field.
func (bu *BatchUpdate) SetArchiveKey(s string) *BatchUpdate {
	bu.mutation.SetArchiveKey(s)
	return bu
}

// SetNillableArchiveKey sets the "archive_key" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableArchiveKey(s *string) *BatchUpdate {
	if s != nil {
		bu.SetArchiveKey(*s)
	}
	return bu
}

// SetUpdatedAt sets the "updated_at" field.
func (bu *BatchUpdate) SetUpdatedAt(t time.Time) *BatchUpdate {
	bu.mutation.SetUpdatedAt(t)
	return bu
}

// SetCompletedAt sets the "completed_at" field.
func (bu *BatchUpdate) SetCompletedAt(t time.Time) *BatchUpdate {
	bu.mutation.SetCompletedAt(t)
	return bu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (bu *BatchUpdate) SetNillableCompletedAt(t *time.Time) *BatchUpdate {
	if t != nil {
		bu.SetCompletedAt(*t)
	}
	return bu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (bu *BatchUpdate) ClearCompletedAt() *BatchUpdate {
	bu.mutation.ClearCompletedAt()
	return bu
}

// Mutation returns the BatchMutation object of the builder.
func (bu *BatchUpdate) Mutation() *BatchMutation {
	return bu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bu *BatchUpdate) Save(ctx context.Context) (int, error) {
	bu.defaults()
	return withHooks(ctx, bu.sqlSave, bu.mutation, bu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bu *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := bu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bu *BatchUpdate) Exec(ctx context.Context) error {
	_, err := bu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bu *BatchUpdate) ExecX(ctx context.Context) {
	if err := bu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bu *BatchUpdate) defaults() {
	if _, ok := bu.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		bu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bu *BatchUpdate) check() error {
	if v, ok := bu.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := bu.mutation.TotalFiles(); ok {
		if err := batch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Batch.total_files": %w`, err)}
		}
	}
	if v, ok := bu.mutation.ArchiveKey(); ok {
		if err := batch.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "Batch.archive_key": %w`, err)}
		}
	}
	return nil
}

func (bu *BatchUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := bu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bu.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := bu.mutation.RunID(); ok {
		_spec.SetField(batch.FieldRunID, field.TypeUUID, value)
	}
	if bu.mutation.RunIDCleared() {
		_spec.ClearField(batch.FieldRunID, field.TypeUUID)
	}
	if value, ok := bu.mutation.TotalFiles(); ok {
		_spec.SetField(batch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedTotalFiles(); ok {
		_spec.AddField(batch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := bu.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if bu.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := bu.mutation.ArchiveKey(); ok {
		_spec.SetField(batch.FieldArchiveKey, field.TypeString, value)
	}
	if value, ok := bu.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bu.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if bu.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bu.mutation.done = true
	return n, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetStatus sets the "status" field.
func (buo *BatchUpdateOne) SetStatus(s string) *BatchUpdateOne {
	buo.mutation.SetStatus(s)
	return buo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableStatus(s *string) *BatchUpdateOne {
	if s != nil {
		buo.SetStatus(*s)
	}
	return buo
}

// SetRunID sets the "run_id" field.
func (buo *BatchUpdateOne) SetRunID(u uuid.UUID) *BatchUpdateOne {
	buo.mutation.SetRunID(u)
	return buo
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableRunID(u *uuid.UUID) *BatchUpdateOne {
	if u != nil {
		buo.SetRunID(*u)
	}
	return buo
}

// ClearRunID clears the value of the "run_id" field.
func (buo *BatchUpdateOne) ClearRunID() *BatchUpdateOne {
	buo.mutation.ClearRunID()
	return buo
}

// SetTotalFiles sets the "total_files" field.
func (buo *BatchUpdateOne) SetTotalFiles(i int) *BatchUpdateOne {
	buo.mutation.ResetTotalFiles()
	buo.mutation.SetTotalFiles(i)
	return buo
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableTotalFiles(i *int) *BatchUpdateOne {
	if i != nil {
		buo.SetTotalFiles(*i)
	}
	return buo
}

// AddTotalFiles adds i to the "total_files" field.
func (buo *BatchUpdateOne) AddTotalFiles(i int) *BatchUpdateOne {
	buo.mutation.AddTotalFiles(i)
	return buo
}

// SetErrorMessage sets the "error_message" field.
func (buo *BatchUpdateOne) SetErrorMessage(s string) *BatchUpdateOne {
	buo.mutation.SetErrorMessage(s)
	return buo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableErrorMessage(s *string) *BatchUpdateOne {
	if s != nil {
		buo.SetErrorMessage(*s)
	}
	return buo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (buo *BatchUpdateOne) ClearErrorMessage() *BatchUpdateOne {
	buo.mutation.ClearErrorMessage()
	return buo
}

// SetArchiveKey sets the "archive_key" field.
func (buo *BatchUpdateOne) SetArchiveKey(s string) *BatchUpdateOne {
	buo.mutation.SetArchiveKey(s)
	return buo
}

// SetNillableArchiveKey sets the "archive_key" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableArchiveKey(s *string) *BatchUpdateOne {
	if s != nil {
		buo.SetArchiveKey(*s)
	}
	return buo
}

// SetUpdatedAt sets the "updated_at" field.
func (buo *BatchUpdateOne) SetUpdatedAt(t time.Time) *BatchUpdateOne {
	buo.mutation.SetUpdatedAt(t)
	return buo
}

// SetCompletedAt sets the "completed_at" field.
func (buo *BatchUpdateOne) SetCompletedAt(t time.Time) *BatchUpdateOne {
	buo.mutation.SetCompletedAt(t)
	return buo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (buo *BatchUpdateOne) SetNillableCompletedAt(t *time.Time) *BatchUpdateOne {
	if t != nil {
		buo.SetCompletedAt(*t)
	}
	return buo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (buo *BatchUpdateOne) ClearCompletedAt() *BatchUpdateOne {
	buo.mutation.ClearCompletedAt()
	return buo
}

// Mutation returns the BatchMutation object of the builder.
func (buo *BatchUpdateOne) Mutation() *BatchMutation {
	return buo.mutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (buo *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	buo.mutation.Where(ps...)
	return buo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (buo *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	buo.fields = append([]string{field}, fields...)
	return buo
}

// Save executes the query and returns the updated Batch entity.
func (buo *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	buo.defaults()
	return withHooks(ctx, buo.sqlSave, buo.mutation, buo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (buo *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := buo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (buo *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := buo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (buo *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := buo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (buo *BatchUpdateOne) defaults() {
	if _, ok := buo.mutation.UpdatedAt(); !ok {
		v := batch.UpdateDefaultUpdatedAt()
		buo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (buo *BatchUpdateOne) check() error {
	if v, ok := buo.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if v, ok := buo.mutation.TotalFiles(); ok {
		if err := batch.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Batch.total_files": %w`, err)}
		}
	}
	if v, ok := buo.mutation.ArchiveKey(); ok {
		if err := batch.ArchiveKeyValidator(v); err != nil {
			return &ValidationError{Name: "archive_key", err: fmt.Errorf(`ent: validator failed for field "Batch.archive_key": %w`, err)}
		}
	}
	return nil
}

func (buo *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := buo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := buo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := buo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := buo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := buo.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := buo.mutation.RunID(); ok {
		_spec.SetField(batch.FieldRunID, field.TypeUUID, value)
	}
	if buo.mutation.RunIDCleared() {
		_spec.ClearField(batch.FieldRunID, field.TypeUUID)
	}
	if value, ok := buo.mutation.TotalFiles(); ok {
		_spec.SetField(batch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedTotalFiles(); ok {
		_spec.AddField(batch.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := buo.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if buo.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := buo.mutation.ArchiveKey(); ok {
		_spec.SetField(batch.FieldArchiveKey, field.TypeString, value)
	}
	if value, ok := buo.mutation.UpdatedAt(); ok {
		_spec.SetField(batch.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := buo.mutation.CompletedAt(); ok {
		_spec.SetField(batch.FieldCompletedAt, field.TypeTime, value)
	}
	if buo.mutation.CompletedAtCleared() {
		_spec.ClearField(batch.FieldCompletedAt, field.TypeTime)
	}
	_node = &Batch{config: buo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, buo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	buo.mutation.done = true
	return _node, nil
}
