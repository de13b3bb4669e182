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
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/predicate"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// ResearchGapQuery is the builder for querying ResearchGap entities.
type ResearchGapQuery struct {
	config
	ctx                  *QueryContext
	order                []researchgap.OrderOption
	inters               []Interceptor
	predicates           []predicate.ResearchGap
	withAnalysis         *GapAnalysisQuery
	withTopics           *GapTopicQuery
	withValidationPapers *GapValidationPaperQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResearchGapQuery builder.
func (_q *ResearchGapQuery) Where(ps ...predicate.ResearchGap) *ResearchGapQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResearchGapQuery) Limit(limit int) *ResearchGapQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResearchGapQuery) Offset(offset int) *ResearchGapQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResearchGapQuery) Unique(unique bool) *ResearchGapQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResearchGapQuery) Order(o ...researchgap.OrderOption) *ResearchGapQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAnalysis chains the current query on the "analysis" edge.
func (_q *ResearchGapQuery) QueryAnalysis() *GapAnalysisQuery {
	query := (&GapAnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, selector),
			sqlgraph.To(gapanalysis.Table, gapanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchgap.AnalysisTable, researchgap.AnalysisColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTopics chains the current query on the "topics" edge.
func (_q *ResearchGapQuery) QueryTopics() *GapTopicQuery {
	query := (&GapTopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, selector),
			sqlgraph.To(gaptopic.Table, gaptopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchgap.TopicsTable, researchgap.TopicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryValidationPapers chains the current query on the "validation_papers" edge.
func (_q *ResearchGapQuery) QueryValidationPapers() *GapValidationPaperQuery {
	query := (&GapValidationPaperClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, selector),
			sqlgraph.To(gapvalidationpaper.Table, gapvalidationpaper.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchgap.ValidationPapersTable, researchgap.ValidationPapersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ResearchGap entity from the query.
// Returns a *NotFoundError when no ResearchGap was found.
func (_q *ResearchGapQuery) First(ctx context.Context) (*ResearchGap, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{researchgap.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResearchGapQuery) FirstX(ctx context.Context) *ResearchGap {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ResearchGap ID from the query.
// Returns a *NotFoundError when no ResearchGap ID was found.
func (_q *ResearchGapQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{researchgap.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResearchGapQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ResearchGap entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ResearchGap entity is found.
// Returns a *NotFoundError when no ResearchGap entities are found.
func (_q *ResearchGapQuery) Only(ctx context.Context) (*ResearchGap, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{researchgap.Label}
	default:
		return nil, &NotSingularError{researchgap.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResearchGapQuery) OnlyX(ctx context.Context) *ResearchGap {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ResearchGap ID in the query.
// Returns a *NotSingularError when more than one ResearchGap ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResearchGapQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{researchgap.Label}
	default:
		err = &NotSingularError{researchgap.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResearchGapQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ResearchGaps.
func (_q *ResearchGapQuery) All(ctx context.Context) ([]*ResearchGap, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ResearchGap, *ResearchGapQuery]()
	return withInterceptors[[]*ResearchGap](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResearchGapQuery) AllX(ctx context.Context) []*ResearchGap {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ResearchGap IDs.
func (_q *ResearchGapQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(researchgap.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResearchGapQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResearchGapQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResearchGapQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResearchGapQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResearchGapQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ResearchGapQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResearchGapQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResearchGapQuery) Clone() *ResearchGapQuery {
	if _q == nil {
		return nil
	}
	return &ResearchGapQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]researchgap.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.ResearchGap{}, _q.predicates...),
		withAnalysis:         _q.withAnalysis.Clone(),
		withTopics:           _q.withTopics.Clone(),
		withValidationPapers: _q.withValidationPapers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAnalysis tells the query-builder to eager-load the nodes that are connected to
// the "analysis" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchGapQuery) WithAnalysis(opts ...func(*GapAnalysisQuery)) *ResearchGapQuery {
	query := (&GapAnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalysis = query
	return _q
}

// WithTopics tells the query-builder to eager-load the nodes that are connected to
// the "topics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchGapQuery) WithTopics(opts ...func(*GapTopicQuery)) *ResearchGapQuery {
	query := (&GapTopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTopics = query
	return _q
}

// WithValidationPapers tells the query-builder to eager-load the nodes that are connected to
// the "validation_papers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResearchGapQuery) WithValidationPapers(opts ...func(*GapValidationPaperQuery)) *ResearchGapQuery {
	query := (&GapValidationPaperClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withValidationPapers = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		GapAnalysisID uuid.UUID `json:"gap_analysis_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ResearchGap.Query().
//		GroupBy(researchgap.FieldGapAnalysisID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResearchGapQuery) GroupBy(field string, fields ...string) *ResearchGapGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResearchGapGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = researchgap.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		GapAnalysisID uuid.UUID `json:"gap_analysis_id,omitempty"`
//	}
//
//	client.ResearchGap.Query().
//		Select(researchgap.FieldGapAnalysisID).
//		Scan(ctx, &v)
func (_q *ResearchGapQuery) Select(fields ...string) *ResearchGapSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResearchGapSelect{ResearchGapQuery: _q}
	sbuild.label = researchgap.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResearchGapSelect configured with the given aggregations.
func (_q *ResearchGapQuery) Aggregate(fns ...AggregateFunc) *ResearchGapSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResearchGapQuery) prepareQuery(ctx context.Context) error {
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
		if !researchgap.ValidColumn(f) {
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

func (_q *ResearchGapQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ResearchGap, error) {
	var (
		nodes       = []*ResearchGap{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withAnalysis != nil,
			_q.withTopics != nil,
			_q.withValidationPapers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ResearchGap).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ResearchGap{config: _q.config}
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
	if query := _q.withAnalysis; query != nil {
		if err := _q.loadAnalysis(ctx, query, nodes, nil,
			func(n *ResearchGap, e *GapAnalysis) { n.Edges.Analysis = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTopics; query != nil {
		if err := _q.loadTopics(ctx, query, nodes,
			func(n *ResearchGap) { n.Edges.Topics = []*GapTopic{} },
			func(n *ResearchGap, e *GapTopic) { n.Edges.Topics = append(n.Edges.Topics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withValidationPapers; query != nil {
		if err := _q.loadValidationPapers(ctx, query, nodes,
			func(n *ResearchGap) { n.Edges.ValidationPapers = []*GapValidationPaper{} },
			func(n *ResearchGap, e *GapValidationPaper) {
				n.Edges.ValidationPapers = append(n.Edges.ValidationPapers, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResearchGapQuery) loadAnalysis(ctx context.Context, query *GapAnalysisQuery, nodes []*ResearchGap, init func(*ResearchGap), assign func(*ResearchGap, *GapAnalysis)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ResearchGap)
	for i := range nodes {
		fk := nodes[i].GapAnalysisID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(gapanalysis.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "gap_analysis_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ResearchGapQuery) loadTopics(ctx context.Context, query *GapTopicQuery, nodes []*ResearchGap, init func(*ResearchGap), assign func(*ResearchGap, *GapTopic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ResearchGap)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(gaptopic.FieldResearchGapID)
	}
	query.Where(predicate.GapTopic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchgap.TopicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchGapID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_gap_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResearchGapQuery) loadValidationPapers(ctx context.Context, query *GapValidationPaperQuery, nodes []*ResearchGap, init func(*ResearchGap), assign func(*ResearchGap, *GapValidationPaper)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ResearchGap)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(gapvalidationpaper.FieldResearchGapID)
	}
	query.Where(predicate.GapValidationPaper(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(researchgap.ValidationPapersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ResearchGapID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "research_gap_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResearchGapQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResearchGapQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(researchgap.Table, researchgap.Columns, sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchgap.FieldID)
		for i := range fields {
			if fields[i] != researchgap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAnalysis != nil {
			_spec.Node.AddColumnOnce(researchgap.FieldGapAnalysisID)
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

func (_q *ResearchGapQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(researchgap.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = researchgap.Columns
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

// ResearchGapGroupBy is the group-by builder for ResearchGap entities.
type ResearchGapGroupBy struct {
	selector
	build *ResearchGapQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResearchGapGroupBy) Aggregate(fns ...AggregateFunc) *ResearchGapGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResearchGapGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchGapQuery, *ResearchGapGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResearchGapGroupBy) sqlScan(ctx context.Context, root *ResearchGapQuery, v any) error {
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

// ResearchGapSelect is the builder for selecting fields of ResearchGap entities.
type ResearchGapSelect struct {
	*ResearchGapQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResearchGapSelect) Aggregate(fns ...AggregateFunc) *ResearchGapSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResearchGapSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResearchGapQuery, *ResearchGapSelect](ctx, _s.ResearchGapQuery, _s, _s.inters, v)
}

func (_s *ResearchGapSelect) sqlScan(ctx context.Context, root *ResearchGapQuery, v any) error {
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
