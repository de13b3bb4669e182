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
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedTableQuery is the builder for querying ExtractedTable entities.
type ExtractedTableQuery struct {
	config
	ctx            *QueryContext
	order          []extractedtable.OrderOption
	inters         []Interceptor
	predicates     []predicate.ExtractedTable
	withExtraction *PaperExtractionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractedTableQuery builder.
func (_q *ExtractedTableQuery) Where(ps ...predicate.ExtractedTable) *ExtractedTableQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractedTableQuery) Limit(limit int) *ExtractedTableQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractedTableQuery) Offset(offset int) *ExtractedTableQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractedTableQuery) Unique(unique bool) *ExtractedTableQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractedTableQuery) Order(o ...extractedtable.OrderOption) *ExtractedTableQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExtraction chains the current query on the "extraction" edge.
func (_q *ExtractedTableQuery) QueryExtraction() *PaperExtractionQuery {
	query := (&PaperExtractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedtable.Table, extractedtable.FieldID, selector),
			sqlgraph.To(paperextraction.Table, paperextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedtable.ExtractionTable, extractedtable.ExtractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractedTable entity from the query.
// Returns a *NotFoundError when no ExtractedTable was found.
func (_q *ExtractedTableQuery) First(ctx context.Context) (*ExtractedTable, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractedtable.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractedTableQuery) FirstX(ctx context.Context) *ExtractedTable {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractedTable ID from the query.
// Returns a *NotFoundError when no ExtractedTable ID was found.
func (_q *ExtractedTableQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractedtable.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractedTableQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractedTable entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractedTable entity is found.
// Returns a *NotFoundError when no ExtractedTable entities are found.
func (_q *ExtractedTableQuery) Only(ctx context.Context) (*ExtractedTable, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractedtable.Label}
	default:
		return nil, &NotSingularError{extractedtable.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractedTableQuery) OnlyX(ctx context.Context) *ExtractedTable {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractedTable ID in the query.
// Returns a *NotSingularError when more than one ExtractedTable ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractedTableQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractedtable.Label}
	default:
		err = &NotSingularError{extractedtable.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractedTableQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractedTables.
func (_q *ExtractedTableQuery) All(ctx context.Context) ([]*ExtractedTable, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractedTable, *ExtractedTableQuery]()
	return withInterceptors[[]*ExtractedTable](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractedTableQuery) AllX(ctx context.Context) []*ExtractedTable {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractedTable IDs.
func (_q *ExtractedTableQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractedtable.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractedTableQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractedTableQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractedTableQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractedTableQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractedTableQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractedTableQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractedTableQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractedTableQuery) Clone() *ExtractedTableQuery {
	if _q == nil {
		return nil
	}
	return &ExtractedTableQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]extractedtable.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ExtractedTable{}, _q.predicates...),
		withExtraction: _q.withExtraction.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExtraction tells the query-builder to eager-load the nodes that are connected to
// the "extraction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedTableQuery) WithExtraction(opts ...func(*PaperExtractionQuery)) *ExtractedTableQuery {
	query := (&PaperExtractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtraction = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PaperExtractionID uuid.UUID `json:"paper_extraction_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExtractedTable.Query().
//		GroupBy(extractedtable.FieldPaperExtractionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractedTableQuery) GroupBy(field string, fields ...string) *ExtractedTableGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractedTableGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractedtable.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PaperExtractionID uuid.UUID `json:"paper_extraction_id,omitempty"`
//	}
//
//	client.ExtractedTable.Query().
//		Select(extractedtable.FieldPaperExtractionID).
//		Scan(ctx, &v)
func (_q *ExtractedTableQuery) Select(fields ...string) *ExtractedTableSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractedTableSelect{ExtractedTableQuery: _q}
	sbuild.label = extractedtable.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractedTableSelect configured with the given aggregations.
func (_q *ExtractedTableQuery) Aggregate(fns ...AggregateFunc) *ExtractedTableSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractedTableQuery) prepareQuery(ctx context.Context) error {
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
		if !extractedtable.ValidColumn(f) {
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

func (_q *ExtractedTableQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractedTable, error) {
	var (
		nodes       = []*ExtractedTable{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withExtraction != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractedTable).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractedTable{config: _q.config}
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
	if query := _q.withExtraction; query != nil {
		if err := _q.loadExtraction(ctx, query, nodes, nil,
			func(n *ExtractedTable, e *PaperExtraction) { n.Edges.Extraction = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractedTableQuery) loadExtraction(ctx context.Context, query *PaperExtractionQuery, nodes []*ExtractedTable, init func(*ExtractedTable), assign func(*ExtractedTable, *PaperExtraction)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedTable)
	for i := range nodes {
		fk := nodes[i].PaperExtractionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(paperextraction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "paper_extraction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ExtractedTableQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractedTableQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractedtable.Table, extractedtable.Columns, sqlgraph.NewFieldSpec(extractedtable.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedtable.FieldID)
		for i := range fields {
			if fields[i] != extractedtable.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExtraction != nil {
			_spec.Node.AddColumnOnce(extractedtable.FieldPaperExtractionID)
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

func (_q *ExtractedTableQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractedtable.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractedtable.Columns
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

// ExtractedTableGroupBy is the group-by builder for ExtractedTable entities.
type ExtractedTableGroupBy struct {
	selector
	build *ExtractedTableQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractedTableGroupBy) Aggregate(fns ...AggregateFunc) *ExtractedTableGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractedTableGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedTableQuery, *ExtractedTableGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractedTableGroupBy) sqlScan(ctx context.Context, root *ExtractedTableQuery, v any) error {
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

// ExtractedTableSelect is the builder for selecting fields of ExtractedTable entities.
type ExtractedTableSelect struct {
	*ExtractedTableQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractedTableSelect) Aggregate(fns ...AggregateFunc) *ExtractedTableSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractedTableSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedTableQuery, *ExtractedTableSelect](ctx, _s.ExtractedTableQuery, _s, _s.inters, v)
}

func (_s *ExtractedTableSelect) sqlScan(ctx context.Context, root *ExtractedTableQuery, v any) error {
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
