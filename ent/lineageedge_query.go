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
	"github.com/anzhiyu-c/mediaflow/ent/lineageedge"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
)

// LineageEdgeQuery is the builder for querying LineageEdge entities.
type LineageEdgeQuery struct {
	config
	ctx        *QueryContext
	order      []lineageedge.OrderOption
	inters     []Interceptor
	predicates []predicate.LineageEdge
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LineageEdgeQuery builder.
func (leq *LineageEdgeQuery) Where(ps ...predicate.LineageEdge) *LineageEdgeQuery {
	leq.predicates = append(leq.predicates, ps...)
	return leq
}

// Limit the number of records to be returned by this query.
func (leq *LineageEdgeQuery) Limit(limit int) *LineageEdgeQuery {
	leq.ctx.Limit = &limit
	return leq
}

// Offset to start from.
func (leq *LineageEdgeQuery) Offset(offset int) *LineageEdgeQuery {
	leq.ctx.Offset = &offset
	return leq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (leq *LineageEdgeQuery) Unique(unique bool) *LineageEdgeQuery {
	leq.ctx.Unique = &unique
	return leq
}

// Order specifies how the records should be ordered.
func (leq *LineageEdgeQuery) Order(o ...lineageedge.OrderOption) *LineageEdgeQuery {
	leq.order = append(leq.order, o...)
	return leq
}

// First returns the first LineageEdge entity from the query.
// Returns a *NotFoundError when no LineageEdge was found.
func (leq *LineageEdgeQuery) First(ctx context.Context) (*LineageEdge, error) {
	nodes, err := leq.Limit(1).All(setContextOp(ctx, leq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lineageedge.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (leq *LineageEdgeQuery) FirstX(ctx context.Context) *LineageEdge {
	node, err := leq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LineageEdge ID from the query.
// Returns a *NotFoundError when no LineageEdge ID was found.
func (leq *LineageEdgeQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = leq.Limit(1).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lineageedge.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (leq *LineageEdgeQuery) FirstIDX(ctx context.Context) uint {
	id, err := leq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LineageEdge entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LineageEdge entity is found.
// Returns a *NotFoundError when no LineageEdge entities are found.
func (leq *LineageEdgeQuery) Only(ctx context.Context) (*LineageEdge, error) {
	nodes, err := leq.Limit(2).All(setContextOp(ctx, leq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lineageedge.Label}
	default:
		return nil, &NotSingularError{lineageedge.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (leq *LineageEdgeQuery) OnlyX(ctx context.Context) *LineageEdge {
	node, err := leq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LineageEdge ID in the query.
// Returns a *NotSingularError when more than one LineageEdge ID is found.
// Returns a *NotFoundError when no entities are found.
func (leq *LineageEdgeQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = leq.Limit(2).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lineageedge.Label}
	default:
		err = &NotSingularError{lineageedge.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (leq *LineageEdgeQuery) OnlyIDX(ctx context.Context) uint {
	id, err := leq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LineageEdges.
func (leq *LineageEdgeQuery) All(ctx context.Context) ([]*LineageEdge, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryAll)
	if err := leq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LineageEdge, *LineageEdgeQuery]()
	return withInterceptors[[]*LineageEdge](ctx, leq, qr, leq.inters)
}

// AllX is like All, but panics if an error occurs.
func (leq *LineageEdgeQuery) AllX(ctx context.Context) []*LineageEdge {
	nodes, err := leq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LineageEdge IDs.
func (leq *LineageEdgeQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if leq.ctx.Unique == nil && leq.path != nil {
		leq.Unique(true)
	}
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryIDs)
	if err = leq.Select(lineageedge.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (leq *LineageEdgeQuery) IDsX(ctx context.Context) []uint {
	ids, err := leq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (leq *LineageEdgeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryCount)
	if err := leq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, leq, querierCount[*LineageEdgeQuery](), leq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (leq *LineageEdgeQuery) CountX(ctx context.Context) int {
	count, err := leq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (leq *LineageEdgeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryExist)
	switch _, err := leq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (leq *LineageEdgeQuery) ExistX(ctx context.Context) bool {
	exist, err := leq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LineageEdgeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (leq *LineageEdgeQuery) Clone() *LineageEdgeQuery {
	if leq == nil {
		return nil
	}
	return &LineageEdgeQuery{
		config:     leq.config,
		ctx:        leq.ctx.Clone(),
		order:      append([]lineageedge.OrderOption{}, leq.order...),
		inters:     append([]Interceptor{}, leq.inters...),
		predicates: append([]predicate.LineageEdge{}, leq.predicates...),
		// clone intermediate query.
		sql:  leq.sql.Clone(),
		path: leq.path,
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
//	client.LineageEdge.Query().
//		GroupBy(lineageedge.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (leq *LineageEdgeQuery) GroupBy(field string, fields ...string) *LineageEdgeGroupBy {
	leq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LineageEdgeGroupBy{build: leq}
	grbuild.flds = &leq.ctx.Fields
	grbuild.label = lineageedge.Label
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
//	client.LineageEdge.Query().
//		Select(lineageedge.FieldCreatedAt).
//		Scan(ctx, &v)
func (leq *LineageEdgeQuery) Select(fields ...string) *LineageEdgeSelect {
	leq.ctx.Fields = append(leq.ctx.Fields, fields...)
	sbuild := &LineageEdgeSelect{LineageEdgeQuery: leq}
	sbuild.label = lineageedge.Label
	sbuild.flds, sbuild.scan = &leq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LineageEdgeSelect configured with the given aggregations.
func (leq *LineageEdgeQuery) Aggregate(fns ...AggregateFunc) *LineageEdgeSelect {
	return leq.Select().Aggregate(fns...)
}

func (leq *LineageEdgeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range leq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, leq); err != nil {
				return err
			}
		}
	}
	for _, f := range leq.ctx.Fields {
		if !lineageedge.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if leq.path != nil {
		prev, err := leq.path(ctx)
		if err != nil {
			return err
		}
		leq.sql = prev
	}
	return nil
}

func (leq *LineageEdgeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LineageEdge, error) {
	var (
		nodes = []*LineageEdge{}
		_spec = leq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LineageEdge).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LineageEdge{config: leq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, leq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (leq *LineageEdgeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := leq.querySpec()
	_spec.Node.Columns = leq.ctx.Fields
	if len(leq.ctx.Fields) > 0 {
		_spec.Unique = leq.ctx.Unique != nil && *leq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, leq.driver, _spec)
}

func (leq *LineageEdgeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lineageedge.Table, lineageedge.Columns, sqlgraph.NewFieldSpec(lineageedge.FieldID, field.TypeUint))
	_spec.From = leq.sql
	if unique := leq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if leq.path != nil {
		_spec.Unique = true
	}
	if fields := leq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lineageedge.FieldID)
		for i := range fields {
			if fields[i] != lineageedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := leq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := leq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := leq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := leq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (leq *LineageEdgeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(leq.driver.Dialect())
	t1 := builder.Table(lineageedge.Table)
	columns := leq.ctx.Fields
	if len(columns) == 0 {
		columns = lineageedge.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if leq.sql != nil {
		selector = leq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if leq.ctx.Unique != nil && *leq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range leq.predicates {
		p(selector)
	}
	for _, p := range leq.order {
		p(selector)
	}
	if offset := leq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := leq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LineageEdgeGroupBy is the group-by builder for LineageEdge entities.
type LineageEdgeGroupBy struct {
	selector
	build *LineageEdgeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (legb *LineageEdgeGroupBy) Aggregate(fns ...AggregateFunc) *LineageEdgeGroupBy {
	legb.fns = append(legb.fns, fns...)
	return legb
}

// Scan applies the selector query and scans the result into the given value.
func (legb *LineageEdgeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, legb.build.ctx, ent.OpQueryGroupBy)
	if err := legb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LineageEdgeQuery, *LineageEdgeGroupBy](ctx, legb.build, legb, legb.build.inters, v)
}

func (legb *LineageEdgeGroupBy) sqlScan(ctx context.Context, root *LineageEdgeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(legb.fns))
	for _, fn := range legb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*legb.flds)+len(legb.fns))
		for _, f := range *legb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*legb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := legb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LineageEdgeSelect is the builder for selecting fields of LineageEdge entities.
type LineageEdgeSelect struct {
	*LineageEdgeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (les *LineageEdgeSelect) Aggregate(fns ...AggregateFunc) *LineageEdgeSelect {
	les.fns = append(les.fns, fns...)
	return les
}

// Scan applies the selector query and scans the result into the given value.
func (les *LineageEdgeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, les.ctx, ent.OpQuerySelect)
	if err := les.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LineageEdgeQuery, *LineageEdgeSelect](ctx, les.LineageEdgeQuery, les, les.inters, v)
}

func (les *LineageEdgeSelect) sqlScan(ctx context.Context, root *LineageEdgeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(les.fns))
	for _, fn := range les.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*les.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := les.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
