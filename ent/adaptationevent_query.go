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
	"github.com/salmon302/DSATrain-sub001/ent/adaptationevent"
	"github.com/salmon302/DSATrain-sub001/ent/predicate"
)

// AdaptationEventQuery is the builder for querying AdaptationEvent entities.
type AdaptationEventQuery struct {
	config
	ctx        *QueryContext
	order      []adaptationevent.OrderOption
	inters     []Interceptor
	predicates []predicate.AdaptationEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AdaptationEventQuery builder.
func (aeq *AdaptationEventQuery) Where(ps ...predicate.AdaptationEvent) *AdaptationEventQuery {
	aeq.predicates = append(aeq.predicates, ps...)
	return aeq
}

// Limit the number of records to be returned by this query.
func (aeq *AdaptationEventQuery) Limit(limit int) *AdaptationEventQuery {
	aeq.ctx.Limit = &limit
	return aeq
}

// Offset to start from.
func (aeq *AdaptationEventQuery) Offset(offset int) *AdaptationEventQuery {
	aeq.ctx.Offset = &offset
	return aeq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aeq *AdaptationEventQuery) Unique(unique bool) *AdaptationEventQuery {
	aeq.ctx.Unique = &unique
	return aeq
}

// Order specifies how the records should be ordered.
func (aeq *AdaptationEventQuery) Order(o ...adaptationevent.OrderOption) *AdaptationEventQuery {
	aeq.order = append(aeq.order, o...)
	return aeq
}

// First returns the first AdaptationEvent entity from the query.
// Returns a *NotFoundError when no AdaptationEvent was found.
func (aeq *AdaptationEventQuery) First(ctx context.Context) (*AdaptationEvent, error) {
	nodes, err := aeq.Limit(1).All(setContextOp(ctx, aeq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{adaptationevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aeq *AdaptationEventQuery) FirstX(ctx context.Context) *AdaptationEvent {
	node, err := aeq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AdaptationEvent ID from the query.
// Returns a *NotFoundError when no AdaptationEvent ID was found.
func (aeq *AdaptationEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = aeq.Limit(1).IDs(setContextOp(ctx, aeq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{adaptationevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aeq *AdaptationEventQuery) FirstIDX(ctx context.Context) int {
	id, err := aeq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AdaptationEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AdaptationEvent entity is found.
// Returns a *NotFoundError when no AdaptationEvent entities are found.
func (aeq *AdaptationEventQuery) Only(ctx context.Context) (*AdaptationEvent, error) {
	nodes, err := aeq.Limit(2).All(setContextOp(ctx, aeq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{adaptationevent.Label}
	default:
		return nil, &NotSingularError{adaptationevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aeq *AdaptationEventQuery) OnlyX(ctx context.Context) *AdaptationEvent {
	node, err := aeq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AdaptationEvent ID in the query.
// Returns a *NotSingularError when more than one AdaptationEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (aeq *AdaptationEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = aeq.Limit(2).IDs(setContextOp(ctx, aeq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{adaptationevent.Label}
	default:
		err = &NotSingularError{adaptationevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aeq *AdaptationEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := aeq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AdaptationEvents.
func (aeq *AdaptationEventQuery) All(ctx context.Context) ([]*AdaptationEvent, error) {
	ctx = setContextOp(ctx, aeq.ctx, ent.OpQueryAll)
	if err := aeq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AdaptationEvent, *AdaptationEventQuery]()
	return withInterceptors[[]*AdaptationEvent](ctx, aeq, qr, aeq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aeq *AdaptationEventQuery) AllX(ctx context.Context) []*AdaptationEvent {
	nodes, err := aeq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AdaptationEvent IDs.
func (aeq *AdaptationEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if aeq.ctx.Unique == nil && aeq.path != nil {
		aeq.Unique(true)
	}
	ctx = setContextOp(ctx, aeq.ctx, ent.OpQueryIDs)
	if err = aeq.Select(adaptationevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aeq *AdaptationEventQuery) IDsX(ctx context.Context) []int {
	ids, err := aeq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aeq *AdaptationEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aeq.ctx, ent.OpQueryCount)
	if err := aeq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aeq, querierCount[*AdaptationEventQuery](), aeq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aeq *AdaptationEventQuery) CountX(ctx context.Context) int {
	count, err := aeq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aeq *AdaptationEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aeq.ctx, ent.OpQueryExist)
	switch _, err := aeq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aeq *AdaptationEventQuery) ExistX(ctx context.Context) bool {
	exist, err := aeq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AdaptationEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aeq *AdaptationEventQuery) Clone() *AdaptationEventQuery {
	if aeq == nil {
		return nil
	}
	return &AdaptationEventQuery{
		config:     aeq.config,
		ctx:        aeq.ctx.Clone(),
		order:      append([]adaptationevent.OrderOption{}, aeq.order...),
		inters:     append([]Interceptor{}, aeq.inters...),
		predicates: append([]predicate.AdaptationEvent{}, aeq.predicates...),
		// clone intermediate query.
		sql:  aeq.sql.Clone(),
		path: aeq.path,
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
//	client.AdaptationEvent.Query().
//		GroupBy(adaptationevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aeq *AdaptationEventQuery) GroupBy(field string, fields ...string) *AdaptationEventGroupBy {
	aeq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AdaptationEventGroupBy{build: aeq}
	grbuild.flds = &aeq.ctx.Fields
	grbuild.label = adaptationevent.Label
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
//	client.AdaptationEvent.Query().
//		Select(adaptationevent.FieldSequence).
//		Scan(ctx, &v)
func (aeq *AdaptationEventQuery) Select(fields ...string) *AdaptationEventSelect {
	aeq.ctx.Fields = append(aeq.ctx.Fields, fields...)
	sbuild := &AdaptationEventSelect{AdaptationEventQuery: aeq}
	sbuild.label = adaptationevent.Label
	sbuild.flds, sbuild.scan = &aeq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AdaptationEventSelect configured with the given aggregations.
func (aeq *AdaptationEventQuery) Aggregate(fns ...AggregateFunc) *AdaptationEventSelect {
	return aeq.Select().Aggregate(fns...)
}

func (aeq *AdaptationEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aeq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aeq); err != nil {
				return err
			}
		}
	}
	for _, f := range aeq.ctx.Fields {
		if !adaptationevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aeq.path != nil {
		prev, err := aeq.path(ctx)
		if err != nil {
			return err
		}
		aeq.sql = prev
	}
	return nil
}

func (aeq *AdaptationEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AdaptationEvent, error) {
	var (
		nodes = []*AdaptationEvent{}
		_spec = aeq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AdaptationEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AdaptationEvent{config: aeq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aeq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (aeq *AdaptationEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aeq.querySpec()
	_spec.Node.Columns = aeq.ctx.Fields
	if len(aeq.ctx.Fields) > 0 {
		_spec.Unique = aeq.ctx.Unique != nil && *aeq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aeq.driver, _spec)
}

func (aeq *AdaptationEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(adaptationevent.Table, adaptationevent.Columns, sqlgraph.NewFieldSpec(adaptationevent.FieldID, field.TypeInt))
	_spec.From = aeq.sql
	if unique := aeq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aeq.path != nil {
		_spec.Unique = true
	}
	if fields := aeq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, adaptationevent.FieldID)
		for i := range fields {
			if fields[i] != adaptationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := aeq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aeq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aeq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aeq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aeq *AdaptationEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aeq.driver.Dialect())
	t1 := builder.Table(adaptationevent.Table)
	columns := aeq.ctx.Fields
	if len(columns) == 0 {
		columns = adaptationevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aeq.sql != nil {
		selector = aeq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aeq.ctx.Unique != nil && *aeq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aeq.predicates {
		p(selector)
	}
	for _, p := range aeq.order {
		p(selector)
	}
	if offset := aeq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aeq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AdaptationEventGroupBy is the group-by builder for AdaptationEvent entities.
type AdaptationEventGroupBy struct {
	selector
	build *AdaptationEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (aegb *AdaptationEventGroupBy) Aggregate(fns ...AggregateFunc) *AdaptationEventGroupBy {
	aegb.fns = append(aegb.fns, fns...)
	return aegb
}

// Scan applies the selector query and scans the result into the given value.
func (aegb *AdaptationEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aegb.build.ctx, ent.OpQueryGroupBy)
	if err := aegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdaptationEventQuery, *AdaptationEventGroupBy](ctx, aegb.build, aegb, aegb.build.inters, v)
}

func (aegb *AdaptationEventGroupBy) sqlScan(ctx context.Context, root *AdaptationEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(aegb.fns))
	for _, fn := range aegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*aegb.flds)+len(aegb.fns))
		for _, f := range *aegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*aegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AdaptationEventSelect is the builder for selecting fields of AdaptationEvent entities.
type AdaptationEventSelect struct {
	*AdaptationEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (aes *AdaptationEventSelect) Aggregate(fns ...AggregateFunc) *AdaptationEventSelect {
	aes.fns = append(aes.fns, fns...)
	return aes
}

// Scan applies the selector query and scans the result into the given value.
func (aes *AdaptationEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, aes.ctx, ent.OpQuerySelect)
	if err := aes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AdaptationEventQuery, *AdaptationEventSelect](ctx, aes.AdaptationEventQuery, aes, aes.inters, v)
}

func (aes *AdaptationEventSelect) sqlScan(ctx context.Context, root *AdaptationEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(aes.fns))
	for _, fn := range aes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*aes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := aes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
