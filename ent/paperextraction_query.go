// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// PaperExtractionQuery is the builder for querying PaperExtraction entities.
type PaperExtractionQuery struct {
	config
	ctx          *QueryContext
	order        []paperextraction.OrderOption
	inters       []Interceptor
	predicates   []predicate.PaperExtraction
	withSections *ExtractedSectionQuery
	withFigures  *ExtractedFigureQuery
	withTables   *ExtractedTableQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaperExtractionQuery builder.
func (_q *PaperExtractionQuery) Where(ps ...predicate.PaperExtraction) *PaperExtractionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PaperExtractionQuery) Limit(limit int) *PaperExtractionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PaperExtractionQuery) Offset(offset int) *PaperExtractionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PaperExtractionQuery) Unique(unique bool) *PaperExtractionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PaperExtractionQuery) Order(o ...paperextraction.OrderOption) *PaperExtractionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySections chains the current query on the "sections" edge.
func (_q *PaperExtractionQuery) QuerySections() *ExtractedSectionQuery {
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
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, selector),
			sqlgraph.To(extractedsection.Table, extractedsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.SectionsTable, paperextraction.SectionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFigures chains the current query on the "figures" edge.
func (_q *PaperExtractionQuery) QueryFigures() *ExtractedFigureQuery {
	query := (&ExtractedFigureClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, selector),
			sqlgraph.To(extractedfigure.Table, extractedfigure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.FiguresTable, paperextraction.FiguresColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTables chains the current query on the "tables" edge.
func (_q *PaperExtractionQuery) QueryTables() *ExtractedTableQuery {
	query := (&ExtractedTableClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, selector),
			sqlgraph.To(extractedtable.Table, extractedtable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.TablesTable, paperextraction.TablesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PaperExtraction entity from the query.
// Returns a *NotFoundError when no PaperExtraction was found.
func (_q *PaperExtractionQuery) First(ctx context.Context) (*PaperExtraction, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paperextraction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PaperExtractionQuery) FirstX(ctx context.Context) *PaperExtraction {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaperExtraction ID from the query.
// Returns a *NotFoundError when no PaperExtraction ID was found.
func (_q *PaperExtractionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paperextraction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PaperExtractionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaperExtraction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaperExtraction entity is found.
// Returns a *NotFoundError when no PaperExtraction entities are found.
func (_q *PaperExtractionQuery) Only(ctx context.Context) (*PaperExtraction, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paperextraction.Label}
	default:
		return nil, &NotSingularError{paperextraction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PaperExtractionQuery) OnlyX(ctx context.Context) *PaperExtraction {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaperExtraction ID in the query.
// Returns a *NotSingularError when more than one PaperExtraction ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PaperExtractionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paperextraction.Label}
	default:
		err = &NotSingularError{paperextraction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PaperExtractionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaperExtractions.
func (_q *PaperExtractionQuery) All(ctx context.Context) ([]*PaperExtraction, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaperExtraction, *PaperExtractionQuery]()
	return withInterceptors[[]*PaperExtraction](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PaperExtractionQuery) AllX(ctx context.Context) []*PaperExtraction {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaperExtraction IDs.
func (_q *PaperExtractionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(paperextraction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PaperExtractionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PaperExtractionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PaperExtractionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PaperExtractionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PaperExtractionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PaperExtractionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaperExtractionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PaperExtractionQuery) Clone() *PaperExtractionQuery {
	if _q == nil {
		return nil
	}
	return &PaperExtractionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]paperextraction.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.PaperExtraction{}, _q.predicates...),
		withSections: _q.withSections.Clone(),
		withFigures:  _q.withFigures.Clone(),
		withTables:   _q.withTables.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSections tells the query-builder to eager-load the nodes that are connected to
// the "sections" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperExtractionQuery) WithSections(opts ...func(*ExtractedSectionQuery)) *PaperExtractionQuery {
	query := (&ExtractedSectionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSections = query
	return _q
}

// WithFigures tells the query-builder to eager-load the nodes that are connected to
// the "figures" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperExtractionQuery) WithFigures(opts ...func(*ExtractedFigureQuery)) *PaperExtractionQuery {
	query := (&ExtractedFigureClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFigures = query
	return _q
}

// WithTables tells the query-builder to eager-load the nodes that are connected to
// the "tables" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PaperExtractionQuery) WithTables(opts ...func(*ExtractedTableQuery)) *PaperExtractionQuery {
	query := (&ExtractedTableClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTables = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PaperID uuid.UUID `json:"paper_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PaperExtraction.Query().
//		GroupBy(paperextraction.FieldPaperID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PaperExtractionQuery) GroupBy(field string, fields ...string) *PaperExtractionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaperExtractionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = paperextraction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PaperID uuid.UUID `json:"paper_id,omitempty"`
//	}
//
//	client.PaperExtraction.Query().
//		Select(paperextraction.FieldPaperID).
//		Scan(ctx, &v)
func (_q *PaperExtractionQuery) Select(fields ...string) *PaperExtractionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PaperExtractionSelect{PaperExtractionQuery: _q}
	sbuild.label = paperextraction.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaperExtractionSelect configured with the given aggregations.
func (_q *PaperExtractionQuery) Aggregate(fns ...AggregateFunc) *PaperExtractionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PaperExtractionQuery) prepareQuery(ctx context.Context) error {
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
		if !paperextraction.ValidColumn(f) {
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

func (_q *PaperExtractionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaperExtraction, error) {
	var (
		nodes       = []*PaperExtraction{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withSections != nil,
			_q.withFigures != nil,
			_q.withTables != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaperExtraction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaperExtraction{config: _q.config}
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
	if query := _q.withSections; query != nil {
		if err := _q.loadSections(ctx, query, nodes,
			func(n *PaperExtraction) { n.Edges.Sections = []*ExtractedSection{} },
			func(n *PaperExtraction, e *ExtractedSection) { n.Edges.Sections = append(n.Edges.Sections, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFigures; query != nil {
		if err := _q.loadFigures(ctx, query, nodes,
			func(n *PaperExtraction) { n.Edges.Figures = []*ExtractedFigure{} },
			func(n *PaperExtraction, e *ExtractedFigure) { n.Edges.Figures = append(n.Edges.Figures, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTables; query != nil {
		if err := _q.loadTables(ctx, query, nodes,
			func(n *PaperExtraction) { n.Edges.Tables = []*ExtractedTable{} },
			func(n *PaperExtraction, e *ExtractedTable) { n.Edges.Tables = append(n.Edges.Tables, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PaperExtractionQuery) loadSections(ctx context.Context, query *ExtractedSectionQuery, nodes []*PaperExtraction, init func(*PaperExtraction), assign func(*PaperExtraction, *ExtractedSection)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PaperExtraction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedsection.FieldPaperExtractionID)
	}
	query.Where(predicate.ExtractedSection(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(paperextraction.SectionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperExtractionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_extraction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PaperExtractionQuery) loadFigures(ctx context.Context, query *ExtractedFigureQuery, nodes []*PaperExtraction, init func(*PaperExtraction), assign func(*PaperExtraction, *ExtractedFigure)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PaperExtraction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedfigure.FieldPaperExtractionID)
	}
	query.Where(predicate.ExtractedFigure(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(paperextraction.FiguresColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperExtractionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_extraction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PaperExtractionQuery) loadTables(ctx context.Context, query *ExtractedTableQuery, nodes []*PaperExtraction, init func(*PaperExtraction), assign func(*PaperExtraction, *ExtractedTable)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*PaperExtraction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedtable.FieldPaperExtractionID)
	}
	query.Where(predicate.ExtractedTable(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(paperextraction.TablesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PaperExtractionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "paper_extraction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PaperExtractionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PaperExtractionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paperextraction.Table, paperextraction.Columns, sqlgraph.NewFieldSpec(paperextraction.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paperextraction.FieldID)
		for i := range fields {
			if fields[i] != paperextraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *PaperExtractionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(paperextraction.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = paperextraction.Columns
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

// PaperExtractionGroupBy is the group-by builder for PaperExtraction entities.
type PaperExtractionGroupBy struct {
	selector
	build *PaperExtractionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PaperExtractionGroupBy) Aggregate(fns ...AggregateFunc) *PaperExtractionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PaperExtractionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaperExtractionQuery, *PaperExtractionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PaperExtractionGroupBy) sqlScan(ctx context.Context, root *PaperExtractionQuery, v any) error {
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

// PaperExtractionSelect is the builder for selecting fields of PaperExtraction entities.
type PaperExtractionSelect struct {
	*PaperExtractionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PaperExtractionSelect) Aggregate(fns ...AggregateFunc) *PaperExtractionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PaperExtractionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaperExtractionQuery, *PaperExtractionSelect](ctx, _s.PaperExtractionQuery, _s, _s.inters, v)
}

func (_s *PaperExtractionSelect) sqlScan(ctx context.Context, root *PaperExtractionQuery, v any) error {
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
