// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/paper"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractedFigure is the client for interacting with the ExtractedFigure builders.
	ExtractedFigure *ExtractedFigureClient
	// ExtractedParagraph is the client for interacting with the ExtractedParagraph builders.
	ExtractedParagraph *ExtractedParagraphClient
	// ExtractedSection is the client for interacting with the ExtractedSection builders.
	ExtractedSection *ExtractedSectionClient
	// ExtractedTable is the client for interacting with the ExtractedTable builders.
	ExtractedTable *ExtractedTableClient
	// GapAnalysis is the client for interacting with the GapAnalysis builders.
	GapAnalysis *GapAnalysisClient
	// GapTopic is the client for interacting with the GapTopic builders.
	GapTopic *GapTopicClient
	// GapValidationPaper is the client for interacting with the GapValidationPaper builders.
	GapValidationPaper *GapValidationPaperClient
	// Paper is the client for interacting with the Paper builders.
	Paper *PaperClient
	// PaperExtraction is the client for interacting with the PaperExtraction builders.
	PaperExtraction *PaperExtractionClient
	// ResearchGap is the client for interacting with the ResearchGap builders.
	ResearchGap *ResearchGapClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractedFigure = NewExtractedFigureClient(c.config)
	c.ExtractedParagraph = NewExtractedParagraphClient(c.config)
	c.ExtractedSection = NewExtractedSectionClient(c.config)
	c.ExtractedTable = NewExtractedTableClient(c.config)
	c.GapAnalysis = NewGapAnalysisClient(c.config)
	c.GapTopic = NewGapTopicClient(c.config)
	c.GapValidationPaper = NewGapValidationPaperClient(c.config)
	c.Paper = NewPaperClient(c.config)
	c.PaperExtraction = NewPaperExtractionClient(c.config)
	c.ResearchGap = NewResearchGapClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ExtractedFigure:    NewExtractedFigureClient(cfg),
		ExtractedParagraph: NewExtractedParagraphClient(cfg),
		ExtractedSection:   NewExtractedSectionClient(cfg),
		ExtractedTable:     NewExtractedTableClient(cfg),
		GapAnalysis:        NewGapAnalysisClient(cfg),
		GapTopic:           NewGapTopicClient(cfg),
		GapValidationPaper: NewGapValidationPaperClient(cfg),
		Paper:              NewPaperClient(cfg),
		PaperExtraction:    NewPaperExtractionClient(cfg),
		ResearchGap:        NewResearchGapClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		ExtractedFigure:    NewExtractedFigureClient(cfg),
		ExtractedParagraph: NewExtractedParagraphClient(cfg),
		ExtractedSection:   NewExtractedSectionClient(cfg),
		ExtractedTable:     NewExtractedTableClient(cfg),
		GapAnalysis:        NewGapAnalysisClient(cfg),
		GapTopic:           NewGapTopicClient(cfg),
		GapValidationPaper: NewGapValidationPaperClient(cfg),
		Paper:              NewPaperClient(cfg),
		PaperExtraction:    NewPaperExtractionClient(cfg),
		ResearchGap:        NewResearchGapClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractedFigure.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ExtractedFigure, c.ExtractedParagraph, c.ExtractedSection, c.ExtractedTable,
		c.GapAnalysis, c.GapTopic, c.GapValidationPaper, c.Paper, c.PaperExtraction,
		c.ResearchGap,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExtractedFigure, c.ExtractedParagraph, c.ExtractedSection, c.ExtractedTable,
		c.GapAnalysis, c.GapTopic, c.GapValidationPaper, c.Paper, c.PaperExtraction,
		c.ResearchGap,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractedFigureMutation:
		return c.ExtractedFigure.mutate(ctx, m)
	case *ExtractedParagraphMutation:
		return c.ExtractedParagraph.mutate(ctx, m)
	case *ExtractedSectionMutation:
		return c.ExtractedSection.mutate(ctx, m)
	case *ExtractedTableMutation:
		return c.ExtractedTable.mutate(ctx, m)
	case *GapAnalysisMutation:
		return c.GapAnalysis.mutate(ctx, m)
	case *GapTopicMutation:
		return c.GapTopic.mutate(ctx, m)
	case *GapValidationPaperMutation:
		return c.GapValidationPaper.mutate(ctx, m)
	case *PaperMutation:
		return c.Paper.mutate(ctx, m)
	case *PaperExtractionMutation:
		return c.PaperExtraction.mutate(ctx, m)
	case *ResearchGapMutation:
		return c.ResearchGap.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractedFigureClient is a client for the ExtractedFigure schema.
type ExtractedFigureClient struct {
	config
}

// NewExtractedFigureClient returns a client for the ExtractedFigure from the given config.
func NewExtractedFigureClient(c config) *ExtractedFigureClient {
	return &ExtractedFigureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedfigure.Hooks(f(g(h())))`.
func (c *ExtractedFigureClient) Use(hooks ...Hook) {
	c.hooks.ExtractedFigure = append(c.hooks.ExtractedFigure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedfigure.Intercept(f(g(h())))`.
func (c *ExtractedFigureClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedFigure = append(c.inters.ExtractedFigure, interceptors...)
}

// Create returns a builder for creating a ExtractedFigure entity.
func (c *ExtractedFigureClient) Create() *ExtractedFigureCreate {
	mutation := newExtractedFigureMutation(c.config, OpCreate)
	return &ExtractedFigureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedFigure entities.
func (c *ExtractedFigureClient) CreateBulk(builders ...*ExtractedFigureCreate) *ExtractedFigureCreateBulk {
	return &ExtractedFigureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedFigureClient) MapCreateBulk(slice any, setFunc func(*ExtractedFigureCreate, int)) *ExtractedFigureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedFigureCreateBulk{err: fmt.Errorf("calling to ExtractedFigureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedFigureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedFigureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedFigure.
func (c *ExtractedFigureClient) Update() *ExtractedFigureUpdate {
	mutation := newExtractedFigureMutation(c.config, OpUpdate)
	return &ExtractedFigureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedFigureClient) UpdateOne(_m *ExtractedFigure) *ExtractedFigureUpdateOne {
	mutation := newExtractedFigureMutation(c.config, OpUpdateOne, withExtractedFigure(_m))
	return &ExtractedFigureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedFigureClient) UpdateOneID(id uuid.UUID) *ExtractedFigureUpdateOne {
	mutation := newExtractedFigureMutation(c.config, OpUpdateOne, withExtractedFigureID(id))
	return &ExtractedFigureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedFigure.
func (c *ExtractedFigureClient) Delete() *ExtractedFigureDelete {
	mutation := newExtractedFigureMutation(c.config, OpDelete)
	return &ExtractedFigureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedFigureClient) DeleteOne(_m *ExtractedFigure) *ExtractedFigureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedFigureClient) DeleteOneID(id uuid.UUID) *ExtractedFigureDeleteOne {
	builder := c.Delete().Where(extractedfigure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedFigureDeleteOne{builder}
}

// Query returns a query builder for ExtractedFigure.
func (c *ExtractedFigureClient) Query() *ExtractedFigureQuery {
	return &ExtractedFigureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedFigure},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedFigure entity by its id.
func (c *ExtractedFigureClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedFigure, error) {
	return c.Query().Where(extractedfigure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedFigureClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedFigure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a ExtractedFigure.
func (c *ExtractedFigureClient) QueryExtraction(_m *ExtractedFigure) *PaperExtractionQuery {
	query := (&PaperExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedfigure.Table, extractedfigure.FieldID, id),
			sqlgraph.To(paperextraction.Table, paperextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedfigure.ExtractionTable, extractedfigure.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedFigureClient) Hooks() []Hook {
	return c.hooks.ExtractedFigure
}

// Interceptors returns the client interceptors.
func (c *ExtractedFigureClient) Interceptors() []Interceptor {
	return c.inters.ExtractedFigure
}

func (c *ExtractedFigureClient) mutate(ctx context.Context, m *ExtractedFigureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedFigureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedFigureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedFigureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedFigureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedFigure mutation op: %q", m.Op())
	}
}

// ExtractedParagraphClient is a client for the ExtractedParagraph schema.
type ExtractedParagraphClient struct {
	config
}

// NewExtractedParagraphClient returns a client for the ExtractedParagraph from the given config.
func NewExtractedParagraphClient(c config) *ExtractedParagraphClient {
	return &ExtractedParagraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedparagraph.Hooks(f(g(h())))`.
func (c *ExtractedParagraphClient) Use(hooks ...Hook) {
	c.hooks.ExtractedParagraph = append(c.hooks.ExtractedParagraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedparagraph.Intercept(f(g(h())))`.
func (c *ExtractedParagraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedParagraph = append(c.inters.ExtractedParagraph, interceptors...)
}

// Create returns a builder for creating a ExtractedParagraph entity.
func (c *ExtractedParagraphClient) Create() *ExtractedParagraphCreate {
	mutation := newExtractedParagraphMutation(c.config, OpCreate)
	return &ExtractedParagraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedParagraph entities.
func (c *ExtractedParagraphClient) CreateBulk(builders ...*ExtractedParagraphCreate) *ExtractedParagraphCreateBulk {
	return &ExtractedParagraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedParagraphClient) MapCreateBulk(slice any, setFunc func(*ExtractedParagraphCreate, int)) *ExtractedParagraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedParagraphCreateBulk{err: fmt.Errorf("calling to ExtractedParagraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedParagraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedParagraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedParagraph.
func (c *ExtractedParagraphClient) Update() *ExtractedParagraphUpdate {
	mutation := newExtractedParagraphMutation(c.config, OpUpdate)
	return &ExtractedParagraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedParagraphClient) UpdateOne(_m *ExtractedParagraph) *ExtractedParagraphUpdateOne {
	mutation := newExtractedParagraphMutation(c.config, OpUpdateOne, withExtractedParagraph(_m))
	return &ExtractedParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedParagraphClient) UpdateOneID(id uuid.UUID) *ExtractedParagraphUpdateOne {
	mutation := newExtractedParagraphMutation(c.config, OpUpdateOne, withExtractedParagraphID(id))
	return &ExtractedParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedParagraph.
func (c *ExtractedParagraphClient) Delete() *ExtractedParagraphDelete {
	mutation := newExtractedParagraphMutation(c.config, OpDelete)
	return &ExtractedParagraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedParagraphClient) DeleteOne(_m *ExtractedParagraph) *ExtractedParagraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedParagraphClient) DeleteOneID(id uuid.UUID) *ExtractedParagraphDeleteOne {
	builder := c.Delete().Where(extractedparagraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedParagraphDeleteOne{builder}
}

// Query returns a query builder for ExtractedParagraph.
func (c *ExtractedParagraphClient) Query() *ExtractedParagraphQuery {
	return &ExtractedParagraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedParagraph},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedParagraph entity by its id.
func (c *ExtractedParagraphClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedParagraph, error) {
	return c.Query().Where(extractedparagraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedParagraphClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedParagraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySection queries the section edge of a ExtractedParagraph.
func (c *ExtractedParagraphClient) QuerySection(_m *ExtractedParagraph) *ExtractedSectionQuery {
	query := (&ExtractedSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedparagraph.Table, extractedparagraph.FieldID, id),
			sqlgraph.To(extractedsection.Table, extractedsection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedparagraph.SectionTable, extractedparagraph.SectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedParagraphClient) Hooks() []Hook {
	return c.hooks.ExtractedParagraph
}

// Interceptors returns the client interceptors.
func (c *ExtractedParagraphClient) Interceptors() []Interceptor {
	return c.inters.ExtractedParagraph
}

func (c *ExtractedParagraphClient) mutate(ctx context.Context, m *ExtractedParagraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedParagraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedParagraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedParagraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedParagraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedParagraph mutation op: %q", m.Op())
	}
}

// ExtractedSectionClient is a client for the ExtractedSection schema.
type ExtractedSectionClient struct {
	config
}

// NewExtractedSectionClient returns a client for the ExtractedSection from the given config.
func NewExtractedSectionClient(c config) *ExtractedSectionClient {
	return &ExtractedSectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedsection.Hooks(f(g(h())))`.
func (c *ExtractedSectionClient) Use(hooks ...Hook) {
	c.hooks.ExtractedSection = append(c.hooks.ExtractedSection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedsection.Intercept(f(g(h())))`.
func (c *ExtractedSectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedSection = append(c.inters.ExtractedSection, interceptors...)
}

// Create returns a builder for creating a ExtractedSection entity.
func (c *ExtractedSectionClient) Create() *ExtractedSectionCreate {
	mutation := newExtractedSectionMutation(c.config, OpCreate)
	return &ExtractedSectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedSection entities.
func (c *ExtractedSectionClient) CreateBulk(builders ...*ExtractedSectionCreate) *ExtractedSectionCreateBulk {
	return &ExtractedSectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedSectionClient) MapCreateBulk(slice any, setFunc func(*ExtractedSectionCreate, int)) *ExtractedSectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedSectionCreateBulk{err: fmt.Errorf("calling to ExtractedSectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedSectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedSectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedSection.
func (c *ExtractedSectionClient) Update() *ExtractedSectionUpdate {
	mutation := newExtractedSectionMutation(c.config, OpUpdate)
	return &ExtractedSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedSectionClient) UpdateOne(_m *ExtractedSection) *ExtractedSectionUpdateOne {
	mutation := newExtractedSectionMutation(c.config, OpUpdateOne, withExtractedSection(_m))
	return &ExtractedSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedSectionClient) UpdateOneID(id uuid.UUID) *ExtractedSectionUpdateOne {
	mutation := newExtractedSectionMutation(c.config, OpUpdateOne, withExtractedSectionID(id))
	return &ExtractedSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedSection.
func (c *ExtractedSectionClient) Delete() *ExtractedSectionDelete {
	mutation := newExtractedSectionMutation(c.config, OpDelete)
	return &ExtractedSectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedSectionClient) DeleteOne(_m *ExtractedSection) *ExtractedSectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedSectionClient) DeleteOneID(id uuid.UUID) *ExtractedSectionDeleteOne {
	builder := c.Delete().Where(extractedsection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedSectionDeleteOne{builder}
}

// Query returns a query builder for ExtractedSection.
func (c *ExtractedSectionClient) Query() *ExtractedSectionQuery {
	return &ExtractedSectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedSection},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedSection entity by its id.
func (c *ExtractedSectionClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedSection, error) {
	return c.Query().Where(extractedsection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedSectionClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedSection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a ExtractedSection.
func (c *ExtractedSectionClient) QueryExtraction(_m *ExtractedSection) *PaperExtractionQuery {
	query := (&PaperExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedsection.Table, extractedsection.FieldID, id),
			sqlgraph.To(paperextraction.Table, paperextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedsection.ExtractionTable, extractedsection.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParagraphs queries the paragraphs edge of a ExtractedSection.
func (c *ExtractedSectionClient) QueryParagraphs(_m *ExtractedSection) *ExtractedParagraphQuery {
	query := (&ExtractedParagraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedsection.Table, extractedsection.FieldID, id),
			sqlgraph.To(extractedparagraph.Table, extractedparagraph.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractedsection.ParagraphsTable, extractedsection.ParagraphsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedSectionClient) Hooks() []Hook {
	return c.hooks.ExtractedSection
}

// Interceptors returns the client interceptors.
func (c *ExtractedSectionClient) Interceptors() []Interceptor {
	return c.inters.ExtractedSection
}

func (c *ExtractedSectionClient) mutate(ctx context.Context, m *ExtractedSectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedSectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedSectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedSectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedSectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedSection mutation op: %q", m.Op())
	}
}

// ExtractedTableClient is a client for the ExtractedTable schema.
type ExtractedTableClient struct {
	config
}

// NewExtractedTableClient returns a client for the ExtractedTable from the given config.
func NewExtractedTableClient(c config) *ExtractedTableClient {
	return &ExtractedTableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedtable.Hooks(f(g(h())))`.
func (c *ExtractedTableClient) Use(hooks ...Hook) {
	c.hooks.ExtractedTable = append(c.hooks.ExtractedTable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedtable.Intercept(f(g(h())))`.
func (c *ExtractedTableClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedTable = append(c.inters.ExtractedTable, interceptors...)
}

// Create returns a builder for creating a ExtractedTable entity.
func (c *ExtractedTableClient) Create() *ExtractedTableCreate {
	mutation := newExtractedTableMutation(c.config, OpCreate)
	return &ExtractedTableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedTable entities.
func (c *ExtractedTableClient) CreateBulk(builders ...*ExtractedTableCreate) *ExtractedTableCreateBulk {
	return &ExtractedTableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedTableClient) MapCreateBulk(slice any, setFunc func(*ExtractedTableCreate, int)) *ExtractedTableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedTableCreateBulk{err: fmt.Errorf("calling to ExtractedTableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedTableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedTableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedTable.
func (c *ExtractedTableClient) Update() *ExtractedTableUpdate {
	mutation := newExtractedTableMutation(c.config, OpUpdate)
	return &ExtractedTableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedTableClient) UpdateOne(_m *ExtractedTable) *ExtractedTableUpdateOne {
	mutation := newExtractedTableMutation(c.config, OpUpdateOne, withExtractedTable(_m))
	return &ExtractedTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedTableClient) UpdateOneID(id uuid.UUID) *ExtractedTableUpdateOne {
	mutation := newExtractedTableMutation(c.config, OpUpdateOne, withExtractedTableID(id))
	return &ExtractedTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedTable.
func (c *ExtractedTableClient) Delete() *ExtractedTableDelete {
	mutation := newExtractedTableMutation(c.config, OpDelete)
	return &ExtractedTableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedTableClient) DeleteOne(_m *ExtractedTable) *ExtractedTableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedTableClient) DeleteOneID(id uuid.UUID) *ExtractedTableDeleteOne {
	builder := c.Delete().Where(extractedtable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedTableDeleteOne{builder}
}

// Query returns a query builder for ExtractedTable.
func (c *ExtractedTableClient) Query() *ExtractedTableQuery {
	return &ExtractedTableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedTable},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedTable entity by its id.
func (c *ExtractedTableClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedTable, error) {
	return c.Query().Where(extractedtable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedTableClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedTable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExtraction queries the extraction edge of a ExtractedTable.
func (c *ExtractedTableClient) QueryExtraction(_m *ExtractedTable) *PaperExtractionQuery {
	query := (&PaperExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedtable.Table, extractedtable.FieldID, id),
			sqlgraph.To(paperextraction.Table, paperextraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedtable.ExtractionTable, extractedtable.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedTableClient) Hooks() []Hook {
	return c.hooks.ExtractedTable
}

// Interceptors returns the client interceptors.
func (c *ExtractedTableClient) Interceptors() []Interceptor {
	return c.inters.ExtractedTable
}

func (c *ExtractedTableClient) mutate(ctx context.Context, m *ExtractedTableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedTableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedTableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedTableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedTableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedTable mutation op: %q", m.Op())
	}
}

// GapAnalysisClient is a client for the GapAnalysis schema.
type GapAnalysisClient struct {
	config
}

// NewGapAnalysisClient returns a client for the GapAnalysis from the given config.
func NewGapAnalysisClient(c config) *GapAnalysisClient {
	return &GapAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gapanalysis.Hooks(f(g(h())))`.
func (c *GapAnalysisClient) Use(hooks ...Hook) {
	c.hooks.GapAnalysis = append(c.hooks.GapAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gapanalysis.Intercept(f(g(h())))`.
func (c *GapAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.GapAnalysis = append(c.inters.GapAnalysis, interceptors...)
}

// Create returns a builder for creating a GapAnalysis entity.
func (c *GapAnalysisClient) Create() *GapAnalysisCreate {
	mutation := newGapAnalysisMutation(c.config, OpCreate)
	return &GapAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GapAnalysis entities.
func (c *GapAnalysisClient) CreateBulk(builders ...*GapAnalysisCreate) *GapAnalysisCreateBulk {
	return &GapAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GapAnalysisClient) MapCreateBulk(slice any, setFunc func(*GapAnalysisCreate, int)) *GapAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GapAnalysisCreateBulk{err: fmt.Errorf("calling to GapAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GapAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GapAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GapAnalysis.
func (c *GapAnalysisClient) Update() *GapAnalysisUpdate {
	mutation := newGapAnalysisMutation(c.config, OpUpdate)
	return &GapAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GapAnalysisClient) UpdateOne(_m *GapAnalysis) *GapAnalysisUpdateOne {
	mutation := newGapAnalysisMutation(c.config, OpUpdateOne, withGapAnalysis(_m))
	return &GapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GapAnalysisClient) UpdateOneID(id uuid.UUID) *GapAnalysisUpdateOne {
	mutation := newGapAnalysisMutation(c.config, OpUpdateOne, withGapAnalysisID(id))
	return &GapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GapAnalysis.
func (c *GapAnalysisClient) Delete() *GapAnalysisDelete {
	mutation := newGapAnalysisMutation(c.config, OpDelete)
	return &GapAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GapAnalysisClient) DeleteOne(_m *GapAnalysis) *GapAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GapAnalysisClient) DeleteOneID(id uuid.UUID) *GapAnalysisDeleteOne {
	builder := c.Delete().Where(gapanalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GapAnalysisDeleteOne{builder}
}

// Query returns a query builder for GapAnalysis.
func (c *GapAnalysisClient) Query() *GapAnalysisQuery {
	return &GapAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGapAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a GapAnalysis entity by its id.
func (c *GapAnalysisClient) Get(ctx context.Context, id uuid.UUID) (*GapAnalysis, error) {
	return c.Query().Where(gapanalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GapAnalysisClient) GetX(ctx context.Context, id uuid.UUID) *GapAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGaps queries the gaps edge of a GapAnalysis.
func (c *GapAnalysisClient) QueryGaps(_m *GapAnalysis) *ResearchGapQuery {
	query := (&ResearchGapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gapanalysis.Table, gapanalysis.FieldID, id),
			sqlgraph.To(researchgap.Table, researchgap.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, gapanalysis.GapsTable, gapanalysis.GapsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GapAnalysisClient) Hooks() []Hook {
	return c.hooks.GapAnalysis
}

// Interceptors returns the client interceptors.
func (c *GapAnalysisClient) Interceptors() []Interceptor {
	return c.inters.GapAnalysis
}

func (c *GapAnalysisClient) mutate(ctx context.Context, m *GapAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GapAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GapAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GapAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GapAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GapAnalysis mutation op: %q", m.Op())
	}
}

// GapTopicClient is a client for the GapTopic schema.
type GapTopicClient struct {
	config
}

// NewGapTopicClient returns a client for the GapTopic from the given config.
func NewGapTopicClient(c config) *GapTopicClient {
	return &GapTopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gaptopic.Hooks(f(g(h())))`.
func (c *GapTopicClient) Use(hooks ...Hook) {
	c.hooks.GapTopic = append(c.hooks.GapTopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gaptopic.Intercept(f(g(h())))`.
func (c *GapTopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.GapTopic = append(c.inters.GapTopic, interceptors...)
}

// Create returns a builder for creating a GapTopic entity.
func (c *GapTopicClient) Create() *GapTopicCreate {
	mutation := newGapTopicMutation(c.config, OpCreate)
	return &GapTopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GapTopic entities.
func (c *GapTopicClient) CreateBulk(builders ...*GapTopicCreate) *GapTopicCreateBulk {
	return &GapTopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GapTopicClient) MapCreateBulk(slice any, setFunc func(*GapTopicCreate, int)) *GapTopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GapTopicCreateBulk{err: fmt.Errorf("calling to GapTopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GapTopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GapTopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GapTopic.
func (c *GapTopicClient) Update() *GapTopicUpdate {
	mutation := newGapTopicMutation(c.config, OpUpdate)
	return &GapTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GapTopicClient) UpdateOne(_m *GapTopic) *GapTopicUpdateOne {
	mutation := newGapTopicMutation(c.config, OpUpdateOne, withGapTopic(_m))
	return &GapTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GapTopicClient) UpdateOneID(id uuid.UUID) *GapTopicUpdateOne {
	mutation := newGapTopicMutation(c.config, OpUpdateOne, withGapTopicID(id))
	return &GapTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GapTopic.
func (c *GapTopicClient) Delete() *GapTopicDelete {
	mutation := newGapTopicMutation(c.config, OpDelete)
	return &GapTopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GapTopicClient) DeleteOne(_m *GapTopic) *GapTopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GapTopicClient) DeleteOneID(id uuid.UUID) *GapTopicDeleteOne {
	builder := c.Delete().Where(gaptopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GapTopicDeleteOne{builder}
}

// Query returns a query builder for GapTopic.
func (c *GapTopicClient) Query() *GapTopicQuery {
	return &GapTopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGapTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a GapTopic entity by its id.
func (c *GapTopicClient) Get(ctx context.Context, id uuid.UUID) (*GapTopic, error) {
	return c.Query().Where(gaptopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GapTopicClient) GetX(ctx context.Context, id uuid.UUID) *GapTopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGap queries the gap edge of a GapTopic.
func (c *GapTopicClient) QueryGap(_m *GapTopic) *ResearchGapQuery {
	query := (&ResearchGapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gaptopic.Table, gaptopic.FieldID, id),
			sqlgraph.To(researchgap.Table, researchgap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gaptopic.GapTable, gaptopic.GapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GapTopicClient) Hooks() []Hook {
	return c.hooks.GapTopic
}

// Interceptors returns the client interceptors.
func (c *GapTopicClient) Interceptors() []Interceptor {
	return c.inters.GapTopic
}

func (c *GapTopicClient) mutate(ctx context.Context, m *GapTopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GapTopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GapTopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GapTopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GapTopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GapTopic mutation op: %q", m.Op())
	}
}

// GapValidationPaperClient is a client for the GapValidationPaper schema.
type GapValidationPaperClient struct {
	config
}

// NewGapValidationPaperClient returns a client for the GapValidationPaper from the given config.
func NewGapValidationPaperClient(c config) *GapValidationPaperClient {
	return &GapValidationPaperClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gapvalidationpaper.Hooks(f(g(h())))`.
func (c *GapValidationPaperClient) Use(hooks ...Hook) {
	c.hooks.GapValidationPaper = append(c.hooks.GapValidationPaper, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gapvalidationpaper.Intercept(f(g(h())))`.
func (c *GapValidationPaperClient) Intercept(interceptors ...Interceptor) {
	c.inters.GapValidationPaper = append(c.inters.GapValidationPaper, interceptors...)
}

// Create returns a builder for creating a GapValidationPaper entity.
func (c *GapValidationPaperClient) Create() *GapValidationPaperCreate {
	mutation := newGapValidationPaperMutation(c.config, OpCreate)
	return &GapValidationPaperCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GapValidationPaper entities.
func (c *GapValidationPaperClient) CreateBulk(builders ...*GapValidationPaperCreate) *GapValidationPaperCreateBulk {
	return &GapValidationPaperCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GapValidationPaperClient) MapCreateBulk(slice any, setFunc func(*GapValidationPaperCreate, int)) *GapValidationPaperCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GapValidationPaperCreateBulk{err: fmt.Errorf("calling to GapValidationPaperClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GapValidationPaperCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GapValidationPaperCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GapValidationPaper.
func (c *GapValidationPaperClient) Update() *GapValidationPaperUpdate {
	mutation := newGapValidationPaperMutation(c.config, OpUpdate)
	return &GapValidationPaperUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GapValidationPaperClient) UpdateOne(_m *GapValidationPaper) *GapValidationPaperUpdateOne {
	mutation := newGapValidationPaperMutation(c.config, OpUpdateOne, withGapValidationPaper(_m))
	return &GapValidationPaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GapValidationPaperClient) UpdateOneID(id uuid.UUID) *GapValidationPaperUpdateOne {
	mutation := newGapValidationPaperMutation(c.config, OpUpdateOne, withGapValidationPaperID(id))
	return &GapValidationPaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GapValidationPaper.
func (c *GapValidationPaperClient) Delete() *GapValidationPaperDelete {
	mutation := newGapValidationPaperMutation(c.config, OpDelete)
	return &GapValidationPaperDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GapValidationPaperClient) DeleteOne(_m *GapValidationPaper) *GapValidationPaperDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GapValidationPaperClient) DeleteOneID(id uuid.UUID) *GapValidationPaperDeleteOne {
	builder := c.Delete().Where(gapvalidationpaper.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GapValidationPaperDeleteOne{builder}
}

// Query returns a query builder for GapValidationPaper.
func (c *GapValidationPaperClient) Query() *GapValidationPaperQuery {
	return &GapValidationPaperQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGapValidationPaper},
		inters: c.Interceptors(),
	}
}

// Get returns a GapValidationPaper entity by its id.
func (c *GapValidationPaperClient) Get(ctx context.Context, id uuid.UUID) (*GapValidationPaper, error) {
	return c.Query().Where(gapvalidationpaper.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GapValidationPaperClient) GetX(ctx context.Context, id uuid.UUID) *GapValidationPaper {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGap queries the gap edge of a GapValidationPaper.
func (c *GapValidationPaperClient) QueryGap(_m *GapValidationPaper) *ResearchGapQuery {
	query := (&ResearchGapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gapvalidationpaper.Table, gapvalidationpaper.FieldID, id),
			sqlgraph.To(researchgap.Table, researchgap.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gapvalidationpaper.GapTable, gapvalidationpaper.GapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GapValidationPaperClient) Hooks() []Hook {
	return c.hooks.GapValidationPaper
}

// Interceptors returns the client interceptors.
func (c *GapValidationPaperClient) Interceptors() []Interceptor {
	return c.inters.GapValidationPaper
}

func (c *GapValidationPaperClient) mutate(ctx context.Context, m *GapValidationPaperMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GapValidationPaperCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GapValidationPaperUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GapValidationPaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GapValidationPaperDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GapValidationPaper mutation op: %q", m.Op())
	}
}

// PaperClient is a client for the Paper schema.
type PaperClient struct {
	config
}

// NewPaperClient returns a client for the Paper from the given config.
func NewPaperClient(c config) *PaperClient {
	return &PaperClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paper.Hooks(f(g(h())))`.
func (c *PaperClient) Use(hooks ...Hook) {
	c.hooks.Paper = append(c.hooks.Paper, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paper.Intercept(f(g(h())))`.
func (c *PaperClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paper = append(c.inters.Paper, interceptors...)
}

// Create returns a builder for creating a Paper entity.
func (c *PaperClient) Create() *PaperCreate {
	mutation := newPaperMutation(c.config, OpCreate)
	return &PaperCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paper entities.
func (c *PaperClient) CreateBulk(builders ...*PaperCreate) *PaperCreateBulk {
	return &PaperCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperClient) MapCreateBulk(slice any, setFunc func(*PaperCreate, int)) *PaperCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperCreateBulk{err: fmt.Errorf("calling to PaperClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paper.
func (c *PaperClient) Update() *PaperUpdate {
	mutation := newPaperMutation(c.config, OpUpdate)
	return &PaperUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperClient) UpdateOne(_m *Paper) *PaperUpdateOne {
	mutation := newPaperMutation(c.config, OpUpdateOne, withPaper(_m))
	return &PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperClient) UpdateOneID(id uuid.UUID) *PaperUpdateOne {
	mutation := newPaperMutation(c.config, OpUpdateOne, withPaperID(id))
	return &PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paper.
func (c *PaperClient) Delete() *PaperDelete {
	mutation := newPaperMutation(c.config, OpDelete)
	return &PaperDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperClient) DeleteOne(_m *Paper) *PaperDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperClient) DeleteOneID(id uuid.UUID) *PaperDeleteOne {
	builder := c.Delete().Where(paper.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperDeleteOne{builder}
}

// Query returns a query builder for Paper.
func (c *PaperClient) Query() *PaperQuery {
	return &PaperQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaper},
		inters: c.Interceptors(),
	}
}

// Get returns a Paper entity by its id.
func (c *PaperClient) Get(ctx context.Context, id uuid.UUID) (*Paper, error) {
	return c.Query().Where(paper.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperClient) GetX(ctx context.Context, id uuid.UUID) *Paper {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaperClient) Hooks() []Hook {
	return c.hooks.Paper
}

// Interceptors returns the client interceptors.
func (c *PaperClient) Interceptors() []Interceptor {
	return c.inters.Paper
}

func (c *PaperClient) mutate(ctx context.Context, m *PaperMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Paper mutation op: %q", m.Op())
	}
}

// PaperExtractionClient is a client for the PaperExtraction schema.
type PaperExtractionClient struct {
	config
}

// NewPaperExtractionClient returns a client for the PaperExtraction from the given config.
func NewPaperExtractionClient(c config) *PaperExtractionClient {
	return &PaperExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paperextraction.Hooks(f(g(h())))`.
func (c *PaperExtractionClient) Use(hooks ...Hook) {
	c.hooks.PaperExtraction = append(c.hooks.PaperExtraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paperextraction.Intercept(f(g(h())))`.
func (c *PaperExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaperExtraction = append(c.inters.PaperExtraction, interceptors...)
}

// Create returns a builder for creating a PaperExtraction entity.
func (c *PaperExtractionClient) Create() *PaperExtractionCreate {
	mutation := newPaperExtractionMutation(c.config, OpCreate)
	return &PaperExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaperExtraction entities.
func (c *PaperExtractionClient) CreateBulk(builders ...*PaperExtractionCreate) *PaperExtractionCreateBulk {
	return &PaperExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperExtractionClient) MapCreateBulk(slice any, setFunc func(*PaperExtractionCreate, int)) *PaperExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperExtractionCreateBulk{err: fmt.Errorf("calling to PaperExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaperExtraction.
func (c *PaperExtractionClient) Update() *PaperExtractionUpdate {
	mutation := newPaperExtractionMutation(c.config, OpUpdate)
	return &PaperExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperExtractionClient) UpdateOne(_m *PaperExtraction) *PaperExtractionUpdateOne {
	mutation := newPaperExtractionMutation(c.config, OpUpdateOne, withPaperExtraction(_m))
	return &PaperExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperExtractionClient) UpdateOneID(id uuid.UUID) *PaperExtractionUpdateOne {
	mutation := newPaperExtractionMutation(c.config, OpUpdateOne, withPaperExtractionID(id))
	return &PaperExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaperExtraction.
func (c *PaperExtractionClient) Delete() *PaperExtractionDelete {
	mutation := newPaperExtractionMutation(c.config, OpDelete)
	return &PaperExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperExtractionClient) DeleteOne(_m *PaperExtraction) *PaperExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperExtractionClient) DeleteOneID(id uuid.UUID) *PaperExtractionDeleteOne {
	builder := c.Delete().Where(paperextraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperExtractionDeleteOne{builder}
}

// Query returns a query builder for PaperExtraction.
func (c *PaperExtractionClient) Query() *PaperExtractionQuery {
	return &PaperExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaperExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a PaperExtraction entity by its id.
func (c *PaperExtractionClient) Get(ctx context.Context, id uuid.UUID) (*PaperExtraction, error) {
	return c.Query().Where(paperextraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperExtractionClient) GetX(ctx context.Context, id uuid.UUID) *PaperExtraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySections queries the sections edge of a PaperExtraction.
func (c *PaperExtractionClient) QuerySections(_m *PaperExtraction) *ExtractedSectionQuery {
	query := (&ExtractedSectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, id),
			sqlgraph.To(extractedsection.Table, extractedsection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.SectionsTable, paperextraction.SectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFigures queries the figures edge of a PaperExtraction.
func (c *PaperExtractionClient) QueryFigures(_m *PaperExtraction) *ExtractedFigureQuery {
	query := (&ExtractedFigureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, id),
			sqlgraph.To(extractedfigure.Table, extractedfigure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.FiguresTable, paperextraction.FiguresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTables queries the tables edge of a PaperExtraction.
func (c *PaperExtractionClient) QueryTables(_m *PaperExtraction) *ExtractedTableQuery {
	query := (&ExtractedTableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paperextraction.Table, paperextraction.FieldID, id),
			sqlgraph.To(extractedtable.Table, extractedtable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, paperextraction.TablesTable, paperextraction.TablesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaperExtractionClient) Hooks() []Hook {
	return c.hooks.PaperExtraction
}

// Interceptors returns the client interceptors.
func (c *PaperExtractionClient) Interceptors() []Interceptor {
	return c.inters.PaperExtraction
}

func (c *PaperExtractionClient) mutate(ctx context.Context, m *PaperExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaperExtraction mutation op: %q", m.Op())
	}
}

// ResearchGapClient is a client for the ResearchGap schema.
type ResearchGapClient struct {
	config
}

// NewResearchGapClient returns a client for the ResearchGap from the given config.
func NewResearchGapClient(c config) *ResearchGapClient {
	return &ResearchGapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchgap.Hooks(f(g(h())))`.
func (c *ResearchGapClient) Use(hooks ...Hook) {
	c.hooks.ResearchGap = append(c.hooks.ResearchGap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchgap.Intercept(f(g(h())))`.
func (c *ResearchGapClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchGap = append(c.inters.ResearchGap, interceptors...)
}

// Create returns a builder for creating a ResearchGap entity.
func (c *ResearchGapClient) Create() *ResearchGapCreate {
	mutation := newResearchGapMutation(c.config, OpCreate)
	return &ResearchGapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchGap entities.
func (c *ResearchGapClient) CreateBulk(builders ...*ResearchGapCreate) *ResearchGapCreateBulk {
	return &ResearchGapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchGapClient) MapCreateBulk(slice any, setFunc func(*ResearchGapCreate, int)) *ResearchGapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchGapCreateBulk{err: fmt.Errorf("calling to ResearchGapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchGapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchGapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchGap.
func (c *ResearchGapClient) Update() *ResearchGapUpdate {
	mutation := newResearchGapMutation(c.config, OpUpdate)
	return &ResearchGapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchGapClient) UpdateOne(_m *ResearchGap) *ResearchGapUpdateOne {
	mutation := newResearchGapMutation(c.config, OpUpdateOne, withResearchGap(_m))
	return &ResearchGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchGapClient) UpdateOneID(id uuid.UUID) *ResearchGapUpdateOne {
	mutation := newResearchGapMutation(c.config, OpUpdateOne, withResearchGapID(id))
	return &ResearchGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchGap.
func (c *ResearchGapClient) Delete() *ResearchGapDelete {
	mutation := newResearchGapMutation(c.config, OpDelete)
	return &ResearchGapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchGapClient) DeleteOne(_m *ResearchGap) *ResearchGapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchGapClient) DeleteOneID(id uuid.UUID) *ResearchGapDeleteOne {
	builder := c.Delete().Where(researchgap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchGapDeleteOne{builder}
}

// Query returns a query builder for ResearchGap.
func (c *ResearchGapClient) Query() *ResearchGapQuery {
	return &ResearchGapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchGap},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchGap entity by its id.
func (c *ResearchGapClient) Get(ctx context.Context, id uuid.UUID) (*ResearchGap, error) {
	return c.Query().Where(researchgap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchGapClient) GetX(ctx context.Context, id uuid.UUID) *ResearchGap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAnalysis queries the analysis edge of a ResearchGap.
func (c *ResearchGapClient) QueryAnalysis(_m *ResearchGap) *GapAnalysisQuery {
	query := (&GapAnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, id),
			sqlgraph.To(gapanalysis.Table, gapanalysis.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, researchgap.AnalysisTable, researchgap.AnalysisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTopics queries the topics edge of a ResearchGap.
func (c *ResearchGapClient) QueryTopics(_m *ResearchGap) *GapTopicQuery {
	query := (&GapTopicClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, id),
			sqlgraph.To(gaptopic.Table, gaptopic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchgap.TopicsTable, researchgap.TopicsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValidationPapers queries the validation_papers edge of a ResearchGap.
func (c *ResearchGapClient) QueryValidationPapers(_m *ResearchGap) *GapValidationPaperQuery {
	query := (&GapValidationPaperClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(researchgap.Table, researchgap.FieldID, id),
			sqlgraph.To(gapvalidationpaper.Table, gapvalidationpaper.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, researchgap.ValidationPapersTable, researchgap.ValidationPapersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResearchGapClient) Hooks() []Hook {
	return c.hooks.ResearchGap
}

// Interceptors returns the client interceptors.
func (c *ResearchGapClient) Interceptors() []Interceptor {
	return c.inters.ResearchGap
}

func (c *ResearchGapClient) mutate(ctx context.Context, m *ResearchGapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchGapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchGapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchGapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchGapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchGap mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractedFigure, ExtractedParagraph, ExtractedSection, ExtractedTable,
		GapAnalysis, GapTopic, GapValidationPaper, Paper, PaperExtraction,
		ResearchGap []ent.Hook
	}
	inters struct {
		ExtractedFigure, ExtractedParagraph, ExtractedSection, ExtractedTable,
		GapAnalysis, GapTopic, GapValidationPaper, Paper, PaperExtraction,
		ResearchGap []ent.Interceptor
	}
)
