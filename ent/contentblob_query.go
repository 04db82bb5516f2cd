// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// ContentBlobQuery is the builder for querying ContentBlob entities.
type ContentBlobQuery struct {
	config
	ctx        *QueryContext
	order      []contentblob.OrderOption
	inters     []Interceptor
	predicates []predicate.ContentBlob
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ContentBlobQuery builder.
func (cbq *ContentBlobQuery) Where(ps ...predicate.ContentBlob) *ContentBlobQuery {
	cbq.predicates = append(cbq.predicates, ps...)
	return cbq
}

// Limit the number of records to be returned by this query.
func (cbq *ContentBlobQuery) Limit(limit int) *ContentBlobQuery {
	cbq.ctx.Limit = &limit
	return cbq
}

// Offset to start from.
func (cbq *ContentBlobQuery) Offset(offset int) *ContentBlobQuery {
	cbq.ctx.Offset = &offset
	return cbq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cbq *ContentBlobQuery) Unique(unique bool) *ContentBlobQuery {
	cbq.ctx.Unique = &unique
	return cbq
}

// Order specifies how the records should be ordered.
func (cbq *ContentBlobQuery) Order(o ...contentblob.OrderOption) *ContentBlobQuery {
	cbq.order = append(cbq.order, o...)
	return cbq
}

// First returns the first ContentBlob entity from the query.
// Returns a *NotFoundError when no ContentBlob was found.
func (cbq *ContentBlobQuery) First(ctx context.Context) (*ContentBlob, error) {
	nodes, err := cbq.Limit(1).All(setContextOp(ctx, cbq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{contentblob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cbq *ContentBlobQuery) FirstX(ctx context.Context) *ContentBlob {
	node, err := cbq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ContentBlob ID from the query.
// Returns a *NotFoundError when no ContentBlob ID was found.
func (cbq *ContentBlobQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = cbq.Limit(1).IDs(setContextOp(ctx, cbq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{contentblob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cbq *ContentBlobQuery) FirstIDX(ctx context.Context) uint {
	id, err := cbq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ContentBlob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ContentBlob entity is found.
// Returns a *NotFoundError when no ContentBlob entities are found.
func (cbq *ContentBlobQuery) Only(ctx context.Context) (*ContentBlob, error) {
	nodes, err := cbq.Limit(2).All(setContextOp(ctx, cbq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{contentblob.Label}
	default:
		return nil, &NotSingularError{contentblob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cbq *ContentBlobQuery) OnlyX(ctx context.Context) *ContentBlob {
	node, err := cbq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ContentBlob ID in the query.
// Returns a *NotSingularError when more than one ContentBlob ID is found.
// Returns a *NotFoundError when no entities are found.
func (cbq *ContentBlobQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = cbq.Limit(2).IDs(setContextOp(ctx, cbq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{contentblob.Label}
	default:
		err = &NotSingularError{contentblob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cbq *ContentBlobQuery) OnlyIDX(ctx context.Context) uint {
	id, err := cbq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ContentBlobs.
func (cbq *ContentBlobQuery) All(ctx context.Context) ([]*ContentBlob, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryAll)
	if err := cbq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ContentBlob, *ContentBlobQuery]()
	return withInterceptors[[]*ContentBlob](ctx, cbq, qr, cbq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cbq *ContentBlobQuery) AllX(ctx context.Context) []*ContentBlob {
	nodes, err := cbq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ContentBlob IDs.
func (cbq *ContentBlobQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if cbq.ctx.Unique == nil && cbq.path != nil {
		cbq.Unique(true)
	}
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryIDs)
	if err = cbq.Select(contentblob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cbq *ContentBlobQuery) IDsX(ctx context.Context) []uint {
	ids, err := cbq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cbq *ContentBlobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryCount)
	if err := cbq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cbq, querierCount[*ContentBlobQuery](), cbq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cbq *ContentBlobQuery) CountX(ctx context.Context) int {
	count, err := cbq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cbq *ContentBlobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cbq.ctx, ent.OpQueryExist)
	switch _, err := cbq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cbq *ContentBlobQuery) ExistX(ctx context.Context) bool {
	exist, err := cbq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ContentBlobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cbq *ContentBlobQuery) Clone() *ContentBlobQuery {
	if cbq == nil {
		return nil
	}
	return &ContentBlobQuery{
		config:     cbq.config,
		ctx:        cbq.ctx.Clone(),
		order:      append([]contentblob.OrderOption{}, cbq.order...),
		inters:     append([]Interceptor{}, cbq.inters...),
		predicates: append([]predicate.ContentBlob{}, cbq.predicates...),
		// clone intermediate query.
		sql:  cbq.sql.Clone(),
		path: cbq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ContentBlob.Query().
//		GroupBy(contentblob.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cbq *ContentBlobQuery) GroupBy(field string, fields ...string) *ContentBlobGroupBy {
	cbq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ContentBlobGroupBy{build: cbq}
	grbuild.flds = &cbq.ctx.Fields
	grbuild.label = contentblob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ContentBlob.Query().
//		Select(contentblob.FieldCreatedAt).
//		Scan(ctx, &v)
func (cbq *ContentBlobQuery) Select(fields ...string) *ContentBlobSelect {
	cbq.ctx.Fields = append(cbq.ctx.Fields, fields...)
	sbuild := &ContentBlobSelect{ContentBlobQuery: cbq}
	sbuild.label = contentblob.Label
	sbuild.flds, sbuild.scan = &cbq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ContentBlobSelect configured with the given aggregations.
func (cbq *ContentBlobQuery) Aggregate(fns ...AggregateFunc) *ContentBlobSelect {
	return cbq.Select().Aggregate(fns...)
}

func (cbq *ContentBlobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cbq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cbq); err != nil {
				return err
			}
		}
	}
	for _, f := range cbq.ctx.Fields {
		if !contentblob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cbq.path != nil {
		prev, err := cbq.path(ctx)
		if err != nil {
			return err
		}
		cbq.sql = prev
	}
	return nil
}

func (cbq *ContentBlobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ContentBlob, error) {
	var (
		nodes = []*ContentBlob{}
		_spec = cbq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ContentBlob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ContentBlob{config: cbq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cbq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (cbq *ContentBlobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cbq.querySpec()
	_spec.Node.Columns = cbq.ctx.Fields
	if len(cbq.ctx.Fields) > 0 {
		_spec.Unique = cbq.ctx.Unique != nil && *cbq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cbq.driver, _spec)
}

func (cbq *ContentBlobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(contentblob.Table, contentblob.Columns, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUint))
	_spec.From = cbq.sql
	if unique := cbq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cbq.path != nil {
		_spec.Unique = true
	}
	if fields := cbq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentblob.FieldID)
		for i := range fields {
			if fields[i] != contentblob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cbq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cbq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cbq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cbq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cbq *ContentBlobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cbq.driver.Dialect())
	t1 := builder.Table(contentblob.Table)
	columns := cbq.ctx.Fields
	if len(columns) == 0 {
		columns = contentblob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cbq.sql != nil {
		selector = cbq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cbq.ctx.Unique != nil && *cbq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cbq.predicates {
		p(selector)
	}
	for _, p := range cbq.order {
		p(selector)
	}
	if offset := cbq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cbq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ContentBlobGroupBy is the group-by builder for ContentBlob entities.
type ContentBlobGroupBy struct {
	selector
	build *ContentBlobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cbgb *ContentBlobGroupBy) Aggregate(fns ...AggregateFunc) *ContentBlobGroupBy {
	cbgb.fns = append(cbgb.fns, fns...)
	return cbgb
}

// Scan applies the selector query and scans the result into the given value.
func (cbgb *ContentBlobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cbgb.build.ctx, ent.OpQueryGroupBy)
	if err := cbgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentBlobQuery, *ContentBlobGroupBy](ctx, cbgb.build, cbgb, cbgb.build.inters, v)
}

func (cbgb *ContentBlobGroupBy) sqlScan(ctx context.Context, root *ContentBlobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cbgb.fns))
	for _, fn := range cbgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cbgb.flds)+len(cbgb.fns))
		for _, f := range *cbgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cbgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cbgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ContentBlobSelect is the builder for selecting fields of ContentBlob entities.
type ContentBlobSelect struct {
	*ContentBlobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cbs *ContentBlobSelect) Aggregate(fns ...AggregateFunc) *ContentBlobSelect {
	cbs.fns = append(cbs.fns, fns...)
	return cbs
}

// Scan applies the selector query and scans the result into the given value.
func (cbs *ContentBlobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cbs.ctx, ent.OpQuerySelect)
	if err := cbs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ContentBlobQuery, *ContentBlobSelect](ctx, cbs.ContentBlobQuery, cbs, cbs.inters, v)
}

func (cbs *ContentBlobSelect) sqlScan(ctx context.Context, root *ContentBlobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cbs.fns))
	for _, fn := range cbs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cbs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cbs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
