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
	"github.com/salmon302/DSATrain-sub001/ent/outcomeevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// OutcomeEventQuery is the builder for querying OutcomeEvent entities.
type OutcomeEventQuery struct {
	config
	ctx        *QueryContext
	order      []outcomeevent.OrderOption
	inters     []Interceptor
	predicates []predicate.OutcomeEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OutcomeEventQuery builder.
func (oeq *OutcomeEventQuery) Where(ps ...predicate.OutcomeEvent) *OutcomeEventQuery {
	oeq.predicates = append(oeq.predicates, ps...)
	return oeq
}

// Limit the number of records to be returned by this query.
func (oeq *OutcomeEventQuery) Limit(limit int) *OutcomeEventQuery {
	oeq.ctx.Limit = &limit
	return oeq
}

// Offset to start from.
func (oeq *OutcomeEventQuery) Offset(offset int) *OutcomeEventQuery {
	oeq.ctx.Offset = &offset
	return oeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (oeq *OutcomeEventQuery) Unique(unique bool) *OutcomeEventQuery {
	oeq.ctx.Unique = &unique
	return oeq
}

// Order specifies how the records should be ordered.
func (oeq *OutcomeEventQuery) Order(o ...outcomeevent.OrderOption) *OutcomeEventQuery {
	oeq.order = append(oeq.order, o...)
	return oeq
}

// First returns the first OutcomeEvent entity from the query.
// Returns a *NotFoundError when no OutcomeEvent was found.
func (oeq *OutcomeEventQuery) First(ctx context.Context) (*OutcomeEvent, error) {
	nodes, err := oeq.Limit(1).All(setContextOp(ctx, oeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{outcomeevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (oeq *OutcomeEventQuery) FirstX(ctx context.Context) *OutcomeEvent {
	node, err := oeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OutcomeEvent ID from the query.
// Returns a *NotFoundError when no OutcomeEvent ID was found.
func (oeq *OutcomeEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = oeq.Limit(1).IDs(setContextOp(ctx, oeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{outcomeevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (oeq *OutcomeEventQuery) FirstIDX(ctx context.Context) int {
	id, err := oeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OutcomeEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OutcomeEvent entity is found.
// Returns a *NotFoundError when no OutcomeEvent entities are found.
func (oeq *OutcomeEventQuery) Only(ctx context.Context) (*OutcomeEvent, error) {
	nodes, err := oeq.Limit(2).All(setContextOp(ctx, oeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{outcomeevent.Label}
	default:
		return nil, &NotSingularError{outcomeevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (oeq *OutcomeEventQuery) OnlyX(ctx context.Context) *OutcomeEvent {
	node, err := oeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OutcomeEvent ID in the query.
// Returns a *NotSingularError when more than one OutcomeEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (oeq *OutcomeEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = oeq.Limit(2).IDs(setContextOp(ctx, oeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{outcomeevent.Label}
	default:
		err = &NotSingularError{outcomeevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (oeq *OutcomeEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := oeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OutcomeEvents.
func (oeq *OutcomeEventQuery) All(ctx context.Context) ([]*OutcomeEvent, error) {
	ctx = setContextOp(ctx, oeq.ctx, ent.OpQueryAll)
	if err := oeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OutcomeEvent, *OutcomeEventQuery]()
	return withInterceptors[[]*OutcomeEvent](ctx, oeq, qr, oeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (oeq *OutcomeEventQuery) AllX(ctx context.Context) []*OutcomeEvent {
	nodes, err := oeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OutcomeEvent IDs.
func (oeq *OutcomeEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if oeq.ctx.Unique == nil && oeq.path != nil {
		oeq.Unique(true)
	}
	ctx = setContextOp(ctx, oeq.ctx, ent.OpQueryIDs)
	if err = oeq.Select(outcomeevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (oeq *OutcomeEventQuery) IDsX(ctx context.Context) []int {
	ids, err := oeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (oeq *OutcomeEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, oeq.ctx, ent.OpQueryCount)
	if err := oeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, oeq, querierCount[*OutcomeEventQuery](), oeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (oeq *OutcomeEventQuery) CountX(ctx context.Context) int {
	count, err := oeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (oeq *OutcomeEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, oeq.ctx, ent.OpQueryExist)
	switch _, err := oeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (oeq *OutcomeEventQuery) ExistX(ctx context.Context) bool {
	exist, err := oeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OutcomeEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (oeq *OutcomeEventQuery) Clone() *OutcomeEventQuery {
	if oeq == nil {
		return nil
	}
	return &OutcomeEventQuery{
		config:     oeq.config,
		ctx:        oeq.ctx.Clone(),
		order:      append([]outcomeevent.OrderOption{}, oeq.order...),
		inters:     append([]Interceptor{}, oeq.inters...),
		predicates: append([]predicate.OutcomeEvent{}, oeq.predicates...),
		// clone intermediate query.
		sql:  oeq.sql.Clone(),
		path: oeq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OutcomeEvent.Query().
//		GroupBy(outcomeevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (oeq *OutcomeEventQuery) GroupBy(field string, fields ...string) *OutcomeEventGroupBy {
	oeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OutcomeEventGroupBy{build: oeq}
	grbuild.flds = &oeq.ctx.Fields
	grbuild.label = outcomeevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.OutcomeEvent.Query().
//		Select(outcomeevent.FieldSequence).
//		Scan(ctx, &v)
func (oeq *OutcomeEventQuery) Select(fields ...string) *OutcomeEventSelect {
	oeq.ctx.Fields = append(oeq.ctx.Fields, fields...)
	sbuild := &OutcomeEventSelect{OutcomeEventQuery: oeq}
	sbuild.label = outcomeevent.Label
	sbuild.flds, sbuild.scan = &oeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OutcomeEventSelect configured with the given aggregations.
func (oeq *OutcomeEventQuery) Aggregate(fns ...AggregateFunc) *OutcomeEventSelect {
	return oeq.Select().Aggregate(fns...)
}

func (oeq *OutcomeEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range oeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, oeq); err != nil {
				return err
			}
		}
	}
	for _, f := range oeq.ctx.Fields {
		if !outcomeevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if oeq.path != nil {
		prev, err := oeq.path(ctx)
		if err != nil {
			return err
		}
		oeq.sql = prev
	}
	return nil
}

func (oeq *OutcomeEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OutcomeEvent, error) {
	var (
		nodes = []*OutcomeEvent{}
		_spec = oeq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OutcomeEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OutcomeEvent{config: oeq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, oeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (oeq *OutcomeEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := oeq.querySpec()
	_spec.Node.Columns = oeq.ctx.Fields
	if len(oeq.ctx.Fields) > 0 {
		_spec.Unique = oeq.ctx.Unique != nil && *oeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, oeq.driver, _spec)
}

func (oeq *OutcomeEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(outcomeevent.Table, outcomeevent.Columns, sqlgraph.NewFieldSpec(outcomeevent.FieldID, field.TypeInt))
	_spec.From = oeq.sql
	if unique := oeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if oeq.path != nil {
		_spec.Unique = true
	}
	if fields := oeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomeevent.FieldID)
		for i := range fields {
			if fields[i] != outcomeevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := oeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := oeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := oeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := oeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (oeq *OutcomeEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(oeq.driver.Dialect())
	t1 := builder.Table(outcomeevent.Table)
	columns := oeq.ctx.Fields
	if len(columns) == 0 {
		columns = outcomeevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if oeq.sql != nil {
		selector = oeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if oeq.ctx.Unique != nil && *oeq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range oeq.predicates {
		p(selector)
	}
	for _, p := range oeq.order {
		p(selector)
	}
	if offset := oeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := oeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// OutcomeEventGroupBy is the group-by builder for OutcomeEvent entities.
type OutcomeEventGroupBy struct {
	selector
	build *OutcomeEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (oegb *OutcomeEventGroupBy) Aggregate(fns ...AggregateFunc) *OutcomeEventGroupBy {
	oegb.fns = append(oegb.fns, fns...)
	return oegb
}

// Scan applies the selector query and scans the result into the given value.
func (oegb *OutcomeEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, oegb.build.ctx, ent.OpQueryGroupBy)
	if err := oegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OutcomeEventQuery, *OutcomeEventGroupBy](ctx, oegb.build, oegb, oegb.build.inters, v)
}

func (oegb *OutcomeEventGroupBy) sqlScan(ctx context.Context, root *OutcomeEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(oegb.fns))
	for _, fn := range oegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*oegb.flds)+len(oegb.fns))
		for _, f := range *oegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*oegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := oegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// OutcomeEventSelect is the builder for selecting fields of OutcomeEvent entities.
type OutcomeEventSelect struct {
	*OutcomeEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (oes *OutcomeEventSelect) Aggregate(fns ...AggregateFunc) *OutcomeEventSelect {
	oes.fns = append(oes.fns, fns...)
	return oes
}

// Scan applies the selector query and scans the result into the given value.
func (oes *OutcomeEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, oes.ctx, ent.OpQuerySelect)
	if err := oes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OutcomeEventQuery, *OutcomeEventSelect](ctx, oes.OutcomeEventQuery, oes, oes.inters, v)
}

func (oes *OutcomeEventSelect) sqlScan(ctx context.Context, root *OutcomeEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(oes.fns))
	for _, fn := range oes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*oes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := oes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
