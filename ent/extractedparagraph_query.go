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
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedParagraphQuery is the builder for querying ExtractedParagraph entities.
type ExtractedParagraphQuery struct {
	config
	ctx         *QueryContext
	order       []extractedparagraph.OrderOption
	inters      []Interceptor
	predicates  []predicate.ExtractedParagraph
	withSection *ExtractedSectionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractedParagraphQuery builder.
func (_q *ExtractedParagraphQuery) Where(ps ...predicate.ExtractedParagraph) *ExtractedParagraphQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractedParagraphQuery) Limit(limit int) *ExtractedParagraphQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractedParagraphQuery) Offset(offset int) *ExtractedParagraphQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractedParagraphQuery) Unique(unique bool) *ExtractedParagraphQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractedParagraphQuery) Order(o ...extractedparagraph.OrderOption) *ExtractedParagraphQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySection chains the current query on the "section" edge.
func (_q *ExtractedParagraphQuery) QuerySection() *ExtractedSectionQuery {
	query := (&ExtractedSectionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedparagraph.Table, extractedparagraph.FieldID, selector),
			sqlgraph.To(extractedsection.Table, extractedsection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedparagraph.SectionTable, extractedparagraph.SectionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractedParagraph entity from the query.
// Returns a *NotFoundError when no ExtractedParagraph was found.
func (_q *ExtractedParagraphQuery) First(ctx context.Context) (*ExtractedParagraph, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractedparagraph.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) FirstX(ctx context.Context) *ExtractedParagraph {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractedParagraph ID from the query.
// Returns a *NotFoundError when no ExtractedParagraph ID was found.
func (_q *ExtractedParagraphQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractedparagraph.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractedParagraph entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractedParagraph entity is found.
// Returns a *NotFoundError when no ExtractedParagraph entities are found.
func (_q *ExtractedParagraphQuery) Only(ctx context.Context) (*ExtractedParagraph, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractedparagraph.Label}
	default:
		return nil, &NotSingularError{extractedparagraph.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) OnlyX(ctx context.Context) *ExtractedParagraph {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractedParagraph ID in the query.
// Returns a *NotSingularError when more than one ExtractedParagraph ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractedParagraphQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractedparagraph.Label}
	default:
		err = &NotSingularError{extractedparagraph.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractedParagraphs.
func (_q *ExtractedParagraphQuery) All(ctx context.Context) ([]*ExtractedParagraph, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractedParagraph, *ExtractedParagraphQuery]()
	return withInterceptors[[]*ExtractedParagraph](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) AllX(ctx context.Context) []*ExtractedParagraph {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractedParagraph IDs.
func (_q *ExtractedParagraphQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractedparagraph.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractedParagraphQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractedParagraphQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractedParagraphQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractedParagraphQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractedParagraphQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractedParagraphQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractedParagraphQuery) Clone() *ExtractedParagraphQuery {
	if _q == nil {
		return nil
	}
	return &ExtractedParagraphQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]extractedparagraph.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.ExtractedParagraph{}, _q.predicates...),
		withSection: _q.withSection.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSection tells the query-builder to eager-load the nodes that are connected to
// the "section" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedParagraphQuery) WithSection(opts ...func(*ExtractedSectionQuery)) *ExtractedParagraphQuery {
	query := (&ExtractedSectionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSection = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SectionID uuid.UUID `json:"section_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractedParagraph.Query().
//		GroupBy(extractedparagraph.FieldSectionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractedParagraphQuery) GroupBy(field string, fields ...string) *ExtractedParagraphGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractedParagraphGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractedparagraph.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SectionID uuid.UUID `json:"section_id,omitempty"`
//	}
//
//	client.ExtractedParagraph.Query().
//		Select(extractedparagraph.FieldSectionID).
//		Scan(ctx, &v)
func (_q *ExtractedParagraphQuery) Select(fields ...string) *ExtractedParagraphSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractedParagraphSelect{ExtractedParagraphQuery: _q}
	sbuild.label = extractedparagraph.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractedParagraphSelect configured with the given aggregations.
func (_q *ExtractedParagraphQuery) Aggregate(fns ...AggregateFunc) *ExtractedParagraphSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractedParagraphQuery) prepareQuery(ctx context.Context) error {
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
		if !extractedparagraph.ValidColumn(f) {
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

func (_q *ExtractedParagraphQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractedParagraph, error) {
	var (
		nodes       = []*ExtractedParagraph{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSection != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractedParagraph).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractedParagraph{config: _q.config}
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
	if query := _q.withSection; query != nil {
		if err := _q.loadSection(ctx, query, nodes, nil,
			func(n *ExtractedParagraph, e *ExtractedSection) { n.Edges.Section = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractedParagraphQuery) loadSection(ctx context.Context, query *ExtractedSectionQuery, nodes []*ExtractedParagraph, init func(*ExtractedParagraph), assign func(*ExtractedParagraph, *ExtractedSection)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedParagraph)
	for i := range nodes {
		fk := nodes[i].SectionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(extractedsection.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "section_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ExtractedParagraphQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractedParagraphQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractedparagraph.Table, extractedparagraph.Columns, sqlgraph.NewFieldSpec(extractedparagraph.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedparagraph.FieldID)
		for i := range fields {
			if fields[i] != extractedparagraph.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSection != nil {
			_spec.Node.AddColumnOnce(extractedparagraph.FieldSectionID)
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

func (_q *ExtractedParagraphQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractedparagraph.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractedparagraph.Columns
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

// ExtractedParagraphGroupBy is the group-by builder for ExtractedParagraph entities.
type ExtractedParagraphGroupBy struct {
	selector
	build *ExtractedParagraphQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractedParagraphGroupBy) Aggregate(fns ...AggregateFunc) *ExtractedParagraphGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractedParagraphGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedParagraphQuery, *ExtractedParagraphGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractedParagraphGroupBy) sqlScan(ctx context.Context, root *ExtractedParagraphQuery, v any) error {
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

// ExtractedParagraphSelect is the builder for selecting fields of ExtractedParagraph entities.
type ExtractedParagraphSelect struct {
	*ExtractedParagraphQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractedParagraphSelect) Aggregate(fns ...AggregateFunc) *ExtractedParagraphSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractedParagraphSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedParagraphQuery, *ExtractedParagraphSelect](ctx, _s.ExtractedParagraphQuery, _s, _s.inters, v)
}

func (_s *ExtractedParagraphSelect) sqlScan(ctx context.Context, root *ExtractedParagraphQuery, v any) error {
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
