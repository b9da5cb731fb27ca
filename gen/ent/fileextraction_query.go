// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// FileExtractionQuery is the builder for querying FileExtraction entities.
type FileExtractionQuery struct {
	config
	ctx        *QueryContext
	order      []fileextraction.OrderOption
	inters     []Interceptor
	predicates []predicate.FileExtraction
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FileExtractionQuery builder.
func (feq *FileExtractionQuery) Where(ps ...predicate.FileExtraction) *FileExtractionQuery {
	feq.predicates = append(feq.predicates, ps...)
	return feq
}

// Limit the number of records to be returned by this query.
func (feq *FileExtractionQuery) Limit(limit int) *FileExtractionQuery {
	feq.ctx.Limit = &limit
	return feq
}

// Offset to start from.
func (feq *FileExtractionQuery) Offset(offset int) *FileExtractionQuery {
	feq.ctx.Offset = &offset
	return feq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (feq *FileExtractionQuery) Unique(unique bool) *FileExtractionQuery {
	feq.ctx.Unique = &unique
	return feq
}

// Order specifies how the records should be ordered.
func (feq *FileExtractionQuery) Order(o ...fileextraction.OrderOption) *FileExtractionQuery {
	feq.order = append(feq.order, o...)
	return feq
}

// First returns the first FileExtraction entity from the query.
// Returns a *NotFoundError when no FileExtraction was found.
func (feq *FileExtractionQuery) First(ctx context.Context) (*FileExtraction, error) {
	nodes, err := feq.Limit(1).All(setContextOp(ctx, feq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fileextraction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (feq *FileExtractionQuery) FirstX(ctx context.Context) *FileExtraction {
	node, err := feq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FileExtraction ID from the query.
// Returns a *NotFoundError when no FileExtraction ID was found.
func (feq *FileExtractionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = feq.Limit(1).IDs(setContextOp(ctx, feq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fileextraction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (feq *FileExtractionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := feq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FileExtraction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FileExtraction entity is found.
// Returns a *NotFoundError when no FileExtraction entities are found.
func (feq *FileExtractionQuery) Only(ctx context.Context) (*FileExtraction, error) {
	nodes, err := feq.Limit(2).All(setContextOp(ctx, feq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fileextraction.Label}
	default:
		return nil, &NotSingularError{fileextraction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (feq *FileExtractionQuery) OnlyX(ctx context.Context) *FileExtraction {
	node, err := feq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FileExtraction ID in the query.
// Returns a *NotSingularError when more than one FileExtraction ID is found.
// Returns a *NotFoundError when no entities are found.
func (feq *FileExtractionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = feq.Limit(2).IDs(setContextOp(ctx, feq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fileextraction.Label}
	default:
		err = &NotSingularError{fileextraction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (feq *FileExtractionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := feq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FileExtractions.
func (feq *FileExtractionQuery) All(ctx context.Context) ([]*FileExtraction, error) {
	ctx = setContextOp(ctx, feq.ctx, "All")
	if err := feq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FileExtraction, *FileExtractionQuery]()
	return withInterceptors[[]*FileExtraction](ctx, feq, qr, feq.inters)
}

// AllX is like All, but panics if an error occurs.
func (feq *FileExtractionQuery) AllX(ctx context.Context) []*FileExtraction {
	nodes, err := feq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FileExtraction IDs.
func (feq *FileExtractionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if feq.ctx.Unique == nil && feq.path != nil {
		feq.Unique(true)
	}
	ctx = setContextOp(ctx, feq.ctx, "IDs")
	if err = feq.Select(fileextraction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (feq *FileExtractionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := feq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (feq *FileExtractionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, feq.ctx, "Count")
	if err := feq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, feq, querierCount[*FileExtractionQuery](), feq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (feq *FileExtractionQuery) CountX(ctx context.Context) int {
	count, err := feq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (feq *FileExtractionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, feq.ctx, "Exist")
	switch _, err := feq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (feq *FileExtractionQuery) ExistX(ctx context.Context) bool {
	exist, err := feq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FileExtractionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (feq *FileExtractionQuery) Clone() *FileExtractionQuery {
	if feq == nil {
		return nil
	}
	return &FileExtractionQuery{
		config:     feq.config,
		ctx:        feq.ctx.Clone(),
		order:      append([]fileextraction.OrderOption{}, feq.order...),
		inters:     append([]Interceptor{}, feq.inters...),
		predicates: append([]predicate.FileExtraction{}, feq.predicates...),
		// clone intermediate query.
		sql:  feq.sql.Clone(),
		path: feq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RunID uuid.UUID `json:"run_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FileExtraction.Query().
//		GroupBy(fileextraction.FieldRunID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (feq *FileExtractionQuery) GroupBy(field string, fields ...string) *FileExtractionGroupBy {
	feq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FileExtractionGroupBy{build: feq}
	grbuild.flds = &feq.ctx.Fields
	grbuild.label = fileextraction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RunID uuid.UUID `json:"run_id,omitempty"`
//	}
//
//	client.FileExtraction.Query().
//		Select(fileextraction.FieldRunID).
//		Scan(ctx, &v)
func (feq *FileExtractionQuery) Select(fields ...string) *FileExtractionSelect {
	feq.ctx.Fields = append(feq.ctx.Fields, fields...)
	sbuild := &FileExtractionSelect{FileExtractionQuery: feq}
	sbuild.label = fileextraction.Label
	sbuild.flds, sbuild.scan = &feq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FileExtractionSelect configured with the given aggregations.
func (feq *FileExtractionQuery) Aggregate(fns ...AggregateFunc) *FileExtractionSelect {
	return feq.Select().Aggregate(fns...)
}

func (feq *FileExtractionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range feq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, feq); err != nil {
				return err
			}
		}
	}
	for _, f := range feq.ctx.Fields {
		if !fileextraction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if feq.path != nil {
		prev, err := feq.path(ctx)
		if err != nil {
			return err
		}
		feq.sql = prev
	}
	return nil
}

func (feq *FileExtractionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FileExtraction, error) {
	var (
		nodes = []*FileExtraction{}
		_spec = feq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FileExtraction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FileExtraction{config: feq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, feq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (feq *FileExtractionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := feq.querySpec()
	_spec.Node.Columns = feq.ctx.Fields
	if len(feq.ctx.Fields) > 0 {
		_spec.Unique = feq.ctx.Unique != nil && *feq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, feq.driver, _spec)
}

func (feq *FileExtractionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fileextraction.Table, fileextraction.Columns, sqlgraph.NewFieldSpec(fileextraction.FieldID, field.TypeUUID))
	_spec.From = feq.sql
	if unique := feq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if feq.path != nil {
		_spec.Unique = true
	}
	if fields := feq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileextraction.FieldID)
		for i := range fields {
			if fields[i] != fileextraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := feq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := feq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := feq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := feq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (feq *FileExtractionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(feq.driver.Dialect())
	t1 := builder.Table(fileextraction.Table)
	columns := feq.ctx.Fields
	if len(columns) == 0 {
		columns = fileextraction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if feq.sql != nil {
		selector = feq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if feq.ctx.Unique != nil && *feq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range feq.predicates {
		p(selector)
	}
	for _, p := range feq.order {
		p(selector)
	}
	if offset := feq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := feq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FileExtractionGroupBy is the group-by builder for FileExtraction entities.
type FileExtractionGroupBy struct {
	selector
	build *FileExtractionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (fegb *FileExtractionGroupBy) Aggregate(fns ...AggregateFunc) *FileExtractionGroupBy {
	fegb.fns = append(fegb.fns, fns...)
	return fegb
}

// Scan applies the selector query and scans the result into the given value.
func (fegb *FileExtractionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fegb.build.ctx, "GroupBy")
	if err := fegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FileExtractionQuery, *FileExtractionGroupBy](ctx, fegb.build, fegb, fegb.build.inters, v)
}

func (fegb *FileExtractionGroupBy) sqlScan(ctx context.Context, root *FileExtractionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(fegb.fns))
	for _, fn := range fegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*fegb.flds)+len(fegb.fns))
		for _, f := range *fegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*fegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FileExtractionSelect is the builder for selecting fields of FileExtraction entities.
type FileExtractionSelect struct {
	*FileExtractionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (fes *FileExtractionSelect) Aggregate(fns ...AggregateFunc) *FileExtractionSelect {
	fes.fns = append(fes.fns, fns...)
	return fes
}

// Scan applies the selector query and scans the result into the given value.
func (fes *FileExtractionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fes.ctx, "Select")
	if err := fes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FileExtractionQuery, *FileExtractionSelect](ctx, fes.FileExtractionQuery, fes, fes.inters, v)
}

func (fes *FileExtractionSelect) sqlScan(ctx context.Context, root *FileExtractionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(fes.fns))
	for _, fn := range fes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*fes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
