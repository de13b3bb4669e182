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
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ExtractedSectionQuery is the builder for querying ExtractedSection entities.
type ExtractedSectionQuery struct {
	config
	ctx            *QueryContext
	order          []extractedsection.OrderOption
	inters         []Interceptor
	predicates     []predicate.ExtractedSection
	withExtraction *PaperExtractionQuery
	withParagraphs *ExtractedParagraphQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExtractedSectionQuery builder.
func (_q *ExtractedSectionQuery) Where(ps ...predicate.ExtractedSection) *ExtractedSectionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExtractedSectionQuery) Limit(limit int) *ExtractedSectionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExtractedSectionQuery) Offset(offset int) *ExtractedSectionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExtractedSectionQuery) Unique(unique bool) *ExtractedSectionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExtractedSectionQuery) Order(o ...extractedsection.OrderOption) *ExtractedSectionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryExtraction chains the current query on the "extraction" edge.
func (_q *ExtractedSectionQuery) QueryExtraction() *PaperExtractionQuery {
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
			sqlgraph.From(extractedsection.Table, extractedsection.FieldID, selector),
			sqlgraph.To(paperextraction.Table, paperextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedsection.ExtractionTable, extractedsection.ExtractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParagraphs chains the current query on the "paragraphs" edge.
func (_q *ExtractedSectionQuery) QueryParagraphs() *ExtractedParagraphQuery {
	query := (&ExtractedParagraphClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedsection.Table, extractedsection.FieldID, selector),
			sqlgraph.To(extractedparagraph.Table, extractedparagraph.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractedsection.ParagraphsTable, extractedsection.ParagraphsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExtractedSection entity from the query.
// Returns a *NotFoundError when no ExtractedSection was found.
func (_q *ExtractedSectionQuery) First(ctx context.Context) (*ExtractedSection, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{extractedsection.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExtractedSectionQuery) FirstX(ctx context.Context) *ExtractedSection {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExtractedSection ID from the query.
// Returns a *NotFoundError when no ExtractedSection ID was found.
func (_q *ExtractedSectionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{extractedsection.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExtractedSectionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExtractedSection entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExtractedSection entity is found.
// Returns a *NotFoundError when no ExtractedSection entities are found.
func (_q *ExtractedSectionQuery) Only(ctx context.Context) (*ExtractedSection, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{extractedsection.Label}
	default:
		return nil, &NotSingularError{extractedsection.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExtractedSectionQuery) OnlyX(ctx context.Context) *ExtractedSection {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExtractedSection ID in the query.
// Returns a *NotSingularError when more than one ExtractedSection ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExtractedSectionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{extractedsection.Label}
	default:
		err = &NotSingularError{extractedsection.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExtractedSectionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExtractedSections.
func (_q *ExtractedSectionQuery) All(ctx context.Context) ([]*ExtractedSection, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExtractedSection, *ExtractedSectionQuery]()
	return withInterceptors[[]*ExtractedSection](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExtractedSectionQuery) AllX(ctx context.Context) []*ExtractedSection {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExtractedSection IDs.
func (_q *ExtractedSectionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(extractedsection.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExtractedSectionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExtractedSectionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExtractedSectionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExtractedSectionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExtractedSectionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExtractedSectionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExtractedSectionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExtractedSectionQuery) Clone() *ExtractedSectionQuery {
	if _q == nil {
		return nil
	}
	return &ExtractedSectionQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]extractedsection.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.ExtractedSection{}, _q.predicates...),
		withExtraction: _q.withExtraction.Clone(),
		withParagraphs: _q.withParagraphs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithExtraction tells the query-builder to eager-load the nodes that are connected to
// the "extraction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedSectionQuery) WithExtraction(opts ...func(*PaperExtractionQuery)) *ExtractedSectionQuery {
	query := (&PaperExtractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtraction = query
	return _q
}

// WithParagraphs tells the query-builder to eager-load the nodes that are connected to
// the "paragraphs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExtractedSectionQuery) WithParagraphs(opts ...func(*ExtractedParagraphQuery)) *ExtractedSectionQuery {
	query := (&ExtractedParagraphClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParagraphs = query
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
//	client.ExtractedSection.Query().
//		GroupBy(extractedsection.FieldPaperExtractionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExtractedSectionQuery) GroupBy(field string, fields ...string) *ExtractedSectionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExtractedSectionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = extractedsection.Label
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
//	client.ExtractedSection.Query().
//		Select(extractedsection.FieldPaperExtractionID).
//		Scan(ctx, &v)
func (_q *ExtractedSectionQuery) Select(fields ...string) *ExtractedSectionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExtractedSectionSelect{ExtractedSectionQuery: _q}
	sbuild.label = extractedsection.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExtractedSectionSelect configured with the given aggregations.
func (_q *ExtractedSectionQuery) Aggregate(fns ...AggregateFunc) *ExtractedSectionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExtractedSectionQuery) prepareQuery(ctx context.Context) error {
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
		if !extractedsection.ValidColumn(f) {
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

func (_q *ExtractedSectionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExtractedSection, error) {
	var (
		nodes       = []*ExtractedSection{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withExtraction != nil,
			_q.withParagraphs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExtractedSection).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExtractedSection{config: _q.config}
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
			func(n *ExtractedSection, e *PaperExtraction) { n.Edges.Extraction = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withParagraphs; query != nil {
		if err := _q.loadParagraphs(ctx, query, nodes,
			func(n *ExtractedSection) { n.Edges.Paragraphs = []*ExtractedParagraph{} },
			func(n *ExtractedSection, e *ExtractedParagraph) { n.Edges.Paragraphs = append(n.Edges.Paragraphs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExtractedSectionQuery) loadExtraction(ctx context.Context, query *PaperExtractionQuery, nodes []*ExtractedSection, init func(*ExtractedSection), assign func(*ExtractedSection, *PaperExtraction)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ExtractedSection)
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
func (_q *ExtractedSectionQuery) loadParagraphs(ctx context.Context, query *ExtractedParagraphQuery, nodes []*ExtractedSection, init func(*ExtractedSection), assign func(*ExtractedSection, *ExtractedParagraph)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ExtractedSection)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedparagraph.FieldSectionID)
	}
	query.Where(predicate.ExtractedParagraph(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(extractedsection.ParagraphsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SectionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "section_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExtractedSectionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExtractedSectionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(extractedsection.Table, extractedsection.Columns, sqlgraph.NewFieldSpec(extractedsection.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedsection.FieldID)
		for i := range fields {
			if fields[i] != extractedsection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withExtraction != nil {
			_spec.Node.AddColumnOnce(extractedsection.FieldPaperExtractionID)
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

func (_q *ExtractedSectionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(extractedsection.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = extractedsection.Columns
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

// ExtractedSectionGroupBy is the group-by builder for ExtractedSection entities.
type ExtractedSectionGroupBy struct {
	selector
	build *ExtractedSectionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExtractedSectionGroupBy) Aggregate(fns ...AggregateFunc) *ExtractedSectionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExtractedSectionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedSectionQuery, *ExtractedSectionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExtractedSectionGroupBy) sqlScan(ctx context.Context, root *ExtractedSectionQuery, v any) error {
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

// ExtractedSectionSelect is the builder for selecting fields of ExtractedSection entities.
type ExtractedSectionSelect struct {
	*ExtractedSectionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExtractedSectionSelect) Aggregate(fns ...AggregateFunc) *ExtractedSectionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExtractedSectionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExtractedSectionQuery, *ExtractedSectionSelect](ctx, _s.ExtractedSectionQuery, _s, _s.inters, v)
}

func (_s *ExtractedSectionSelect) sqlScan(ctx context.Context, root *ExtractedSectionQuery, v any) error {
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
