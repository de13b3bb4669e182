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
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/predicate"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapTopicQuery is the builder for querying GapTopic entities.
type GapTopicQuery struct {
	config
	ctx        *QueryContext
	order      []gaptopic.OrderOption
	inters     []Interceptor
	predicates []predicate.GapTopic
	withGap    *ResearchGapQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GapTopicQuery builder.
func (_q *GapTopicQuery) Where(ps ...predicate.GapTopic) *GapTopicQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GapTopicQuery) Limit(limit int) *GapTopicQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GapTopicQuery) Offset(offset int) *GapTopicQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GapTopicQuery) Unique(unique bool) *GapTopicQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GapTopicQuery) Order(o ...gaptopic.OrderOption) *GapTopicQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGap chains the current query on the "gap" edge.
func (_q *GapTopicQuery) QueryGap() *ResearchGapQuery {
	query := (&ResearchGapClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(gaptopic.Table, gaptopic.FieldID, selector),
			sqlgraph.To(researchgap.Table, researchgap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gaptopic.GapTable, gaptopic.GapColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GapTopic entity from the query.
// Returns a *NotFoundError when no GapTopic was found.
func (_q *GapTopicQuery) First(ctx context.Context) (*GapTopic, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{gaptopic.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GapTopicQuery) FirstX(ctx context.Context) *GapTopic {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GapTopic ID from the query.
// Returns a *NotFoundError when no GapTopic ID was found.
func (_q *GapTopicQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{gaptopic.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GapTopicQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GapTopic entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GapTopic entity is found.
// Returns a *NotFoundError when no GapTopic entities are found.
func (_q *GapTopicQuery) Only(ctx context.Context) (*GapTopic, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{gaptopic.Label}
	default:
		return nil, &NotSingularError{gaptopic.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GapTopicQuery) OnlyX(ctx context.Context) *GapTopic {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GapTopic ID in the query.
// Returns a *NotSingularError when more than one GapTopic ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GapTopicQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{gaptopic.Label}
	default:
		err = &NotSingularError{gaptopic.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GapTopicQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GapTopics.
func (_q *GapTopicQuery) All(ctx context.Context) ([]*GapTopic, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GapTopic, *GapTopicQuery]()
	return withInterceptors[[]*GapTopic](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GapTopicQuery) AllX(ctx context.Context) []*GapTopic {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GapTopic IDs.
func (_q *GapTopicQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(gaptopic.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GapTopicQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GapTopicQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GapTopicQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GapTopicQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GapTopicQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *GapTopicQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GapTopicQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GapTopicQuery) Clone() *GapTopicQuery {
	if _q == nil {
		return nil
	}
	return &GapTopicQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]gaptopic.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.GapTopic{}, _q.predicates...),
		withGap:    _q.withGap.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGap tells the query-builder to eager-load the nodes that are connected to
// the "gap" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GapTopicQuery) WithGap(opts ...func(*ResearchGapQuery)) *GapTopicQuery {
	query := (&ResearchGapClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGap = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ResearchGapID uuid.UUID `json:"research_gap_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GapTopic.Query().
//		GroupBy(gaptopic.FieldResearchGapID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GapTopicQuery) GroupBy(field string, fields ...string) *GapTopicGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GapTopicGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = gaptopic.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ResearchGapID uuid.UUID `json:"research_gap_id,omitempty"`
//	}
//
//	client.GapTopic.Query().
//		Select(gaptopic.FieldResearchGapID).
//		Scan(ctx, &v)
func (_q *GapTopicQuery) Select(fields ...string) *GapTopicSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GapTopicSelect{GapTopicQuery: _q}
	sbuild.label = gaptopic.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GapTopicSelect configured with the given aggregations.
func (_q *GapTopicQuery) Aggregate(fns ...AggregateFunc) *GapTopicSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GapTopicQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !gaptopic.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *GapTopicQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GapTopic, error) {
	var (
		nodes       = []*GapTopic{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withGap != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GapTopic).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GapTopic{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withGap; query != nil {
		if err := _q.loadGap(ctx, query, nodes, nil,
			func(n *GapTopic, e *ResearchGap) { n.Edges.Gap = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GapTopicQuery) loadGap(ctx context.Context, query *ResearchGapQuery, nodes []*GapTopic, init func(*GapTopic), assign func(*GapTopic, *ResearchGap)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*GapTopic)
	for i := range nodes {
		fk := nodes[i].ResearchGapID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(researchgap.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "research_gap_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *GapTopicQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GapTopicQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(gaptopic.Table, gaptopic.Columns, sqlgraph.NewFieldSpec(gaptopic.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gaptopic.FieldID)
		for i := range fields {
			if fields[i] != gaptopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withGap != nil {
			_spec.Node.AddColumnOnce(gaptopic.FieldResearchGapID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *GapTopicQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(gaptopic.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = gaptopic.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GapTopicGroupBy is the group-by builder for GapTopic entities.
type GapTopicGroupBy struct {
	selector
	build *GapTopicQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GapTopicGroupBy) Aggregate(fns ...AggregateFunc) *GapTopicGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GapTopicGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GapTopicQuery, *GapTopicGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GapTopicGroupBy) sqlScan(ctx context.Context, root *GapTopicQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GapTopicSelect is the builder for selecting fields of GapTopic entities.
type GapTopicSelect struct {
	*GapTopicQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GapTopicSelect) Aggregate(fns ...AggregateFunc) *GapTopicSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GapTopicSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GapTopicQuery, *GapTopicSelect](ctx, _s.GapTopicQuery, _s, _s.inters, v)
}

func (_s *GapTopicSelect) sqlScan(ctx context.Context, root *GapTopicQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
