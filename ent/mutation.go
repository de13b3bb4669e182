// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/extractedfigure"
	"github.com/scholarai/gapfinder/ent/extractedparagraph"
	"github.com/scholarai/gapfinder/ent/extractedsection"
	"github.com/scholarai/gapfinder/ent/extractedtable"
	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/ent/gaptopic"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/paper"
	"github.com/scholarai/gapfinder/ent/paperextraction"
	"github.com/scholarai/gapfinder/ent/predicate"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractedFigure    = "ExtractedFigure"
	TypeExtractedParagraph = "ExtractedParagraph"
	TypeExtractedSection   = "ExtractedSection"
	TypeExtractedTable     = "ExtractedTable"
	TypeGapAnalysis        = "GapAnalysis"
	TypeGapTopic           = "GapTopic"
	TypeGapValidationPaper = "GapValidationPaper"
	TypePaper              = "Paper"
	TypePaperExtraction    = "PaperExtraction"
	TypeResearchGap        = "ResearchGap"
)

// ExtractedFigureMutation represents an operation that mutates the ExtractedFigure nodes in the graph.
type ExtractedFigureMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	label             *string
	caption           *string
	page              *int
	addpage           *int
	order_index       *int
	addorder_index    *int
	clearedFields     map[string]struct{}
	extraction        *uuid.UUID
	clearedextraction bool
	done              bool
	oldValue          func(context.Context) (*ExtractedFigure, error)
	predicates        []predicate.ExtractedFigure
}

var _ ent.Mutation = (*ExtractedFigureMutation)(nil)

// extractedfigureOption allows management of the mutation configuration using functional options.
type extractedfigureOption func(*ExtractedFigureMutation)

// newExtractedFigureMutation creates new mutation for the ExtractedFigure entity.
func newExtractedFigureMutation(c config, op Op, opts ...extractedfigureOption) *ExtractedFigureMutation {
	m := &ExtractedFigureMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedFigure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedFigureID sets the ID field of the mutation.
func withExtractedFigureID(id uuid.UUID) extractedfigureOption {
	return func(m *ExtractedFigureMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedFigure
		)
		m.oldValue = func(ctx context.Context) (*ExtractedFigure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedFigure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedFigure sets the old ExtractedFigure of the mutation.
func withExtractedFigure(node *ExtractedFigure) extractedfigureOption {
	return func(m *ExtractedFigureMutation) {
		m.oldValue = func(context.Context) (*ExtractedFigure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedFigureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedFigureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedFigure entities.
func (m *ExtractedFigureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedFigureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedFigureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedFigure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (m *ExtractedFigureMutation) SetPaperExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// PaperExtractionID returns the value of the "paper_extraction_id" field in the mutation.
func (m *ExtractedFigureMutation) PaperExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperExtractionID returns the old "paper_extraction_id" field's value of the ExtractedFigure entity.
// If the ExtractedFigure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFigureMutation) OldPaperExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperExtractionID: %w", err)
	}
	return oldValue.PaperExtractionID, nil
}

// ResetPaperExtractionID resets all changes to the "paper_extraction_id" field.
func (m *ExtractedFigureMutation) ResetPaperExtractionID() {
	m.extraction = nil
}

// SetLabel sets the "label" field.
func (m *ExtractedFigureMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ExtractedFigureMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ExtractedFigure entity.
// If the ExtractedFigure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFigureMutation) OldLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *ExtractedFigureMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[extractedfigure.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *ExtractedFigureMutation) LabelCleared() bool {
	_, ok := m.clearedFields[extractedfigure.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *ExtractedFigureMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, extractedfigure.FieldLabel)
}

// SetCaption sets the "caption" field.
func (m *ExtractedFigureMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *ExtractedFigureMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the ExtractedFigure entity.
// If the ExtractedFigure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFigureMutation) OldCaption(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *ExtractedFigureMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[extractedfigure.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *ExtractedFigureMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[extractedfigure.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *ExtractedFigureMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, extractedfigure.FieldCaption)
}

// SetPage sets the "page" field.
func (m *ExtractedFigureMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *ExtractedFigureMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the ExtractedFigure entity.
// If the ExtractedFigure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFigureMutation) OldPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *ExtractedFigureMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *ExtractedFigureMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ClearPage clears the value of the "page" field.
func (m *ExtractedFigureMutation) ClearPage() {
	m.page = nil
	m.addpage = nil
	m.clearedFields[extractedfigure.FieldPage] = struct{}{}
}

// PageCleared returns if the "page" field was cleared in this mutation.
func (m *ExtractedFigureMutation) PageCleared() bool {
	_, ok := m.clearedFields[extractedfigure.FieldPage]
	return ok
}

// ResetPage resets all changes to the "page" field.
func (m *ExtractedFigureMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
	delete(m.clearedFields, extractedfigure.FieldPage)
}

// SetOrderIndex sets the "order_index" field.
func (m *ExtractedFigureMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ExtractedFigureMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ExtractedFigure entity.
// If the ExtractedFigure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFigureMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ExtractedFigureMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ExtractedFigureMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ExtractedFigureMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by id.
func (m *ExtractedFigureMutation) SetExtractionID(id uuid.UUID) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the PaperExtraction entity.
func (m *ExtractedFigureMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[extractedfigure.FieldPaperExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the PaperExtraction entity was cleared.
func (m *ExtractedFigureMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *ExtractedFigureMutation) ExtractionID() (id uuid.UUID, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *ExtractedFigureMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *ExtractedFigureMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the ExtractedFigureMutation builder.
func (m *ExtractedFigureMutation) Where(ps ...predicate.ExtractedFigure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedFigureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedFigureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedFigure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedFigureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedFigureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedFigure).
func (m *ExtractedFigureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedFigureMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.extraction != nil {
		fields = append(fields, extractedfigure.FieldPaperExtractionID)
	}
	if m.label != nil {
		fields = append(fields, extractedfigure.FieldLabel)
	}
	if m.caption != nil {
		fields = append(fields, extractedfigure.FieldCaption)
	}
	if m.page != nil {
		fields = append(fields, extractedfigure.FieldPage)
	}
	if m.order_index != nil {
		fields = append(fields, extractedfigure.FieldOrderIndex)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedFigureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedfigure.FieldPaperExtractionID:
		return m.PaperExtractionID()
	case extractedfigure.FieldLabel:
		return m.Label()
	case extractedfigure.FieldCaption:
		return m.Caption()
	case extractedfigure.FieldPage:
		return m.Page()
	case extractedfigure.FieldOrderIndex:
		return m.OrderIndex()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedFigureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedfigure.FieldPaperExtractionID:
		return m.OldPaperExtractionID(ctx)
	case extractedfigure.FieldLabel:
		return m.OldLabel(ctx)
	case extractedfigure.FieldCaption:
		return m.OldCaption(ctx)
	case extractedfigure.FieldPage:
		return m.OldPage(ctx)
	case extractedfigure.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedFigure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFigureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedfigure.FieldPaperExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperExtractionID(v)
		return nil
	case extractedfigure.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case extractedfigure.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case extractedfigure.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case extractedfigure.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedFigureMutation) AddedFields() []string {
	var fields []string
	if m.addpage != nil {
		fields = append(fields, extractedfigure.FieldPage)
	}
	if m.addorder_index != nil {
		fields = append(fields, extractedfigure.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedFigureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedfigure.FieldPage:
		return m.AddedPage()
	case extractedfigure.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFigureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedfigure.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case extractedfigure.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedFigureMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedfigure.FieldLabel) {
		fields = append(fields, extractedfigure.FieldLabel)
	}
	if m.FieldCleared(extractedfigure.FieldCaption) {
		fields = append(fields, extractedfigure.FieldCaption)
	}
	if m.FieldCleared(extractedfigure.FieldPage) {
		fields = append(fields, extractedfigure.FieldPage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedFigureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedFigureMutation) ClearField(name string) error {
	switch name {
	case extractedfigure.FieldLabel:
		m.ClearLabel()
		return nil
	case extractedfigure.FieldCaption:
		m.ClearCaption()
		return nil
	case extractedfigure.FieldPage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedFigureMutation) ResetField(name string) error {
	switch name {
	case extractedfigure.FieldPaperExtractionID:
		m.ResetPaperExtractionID()
		return nil
	case extractedfigure.FieldLabel:
		m.ResetLabel()
		return nil
	case extractedfigure.FieldCaption:
		m.ResetCaption()
		return nil
	case extractedfigure.FieldPage:
		m.ResetPage()
		return nil
	case extractedfigure.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedFigureMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, extractedfigure.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedFigureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedfigure.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedFigureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedFigureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedFigureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, extractedfigure.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedFigureMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedfigure.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedFigureMutation) ClearEdge(name string) error {
	switch name {
	case extractedfigure.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedFigureMutation) ResetEdge(name string) error {
	switch name {
	case extractedfigure.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedFigure edge %s", name)
}

// ExtractedParagraphMutation represents an operation that mutates the ExtractedParagraph nodes in the graph.
type ExtractedParagraphMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	text           *string
	page           *int
	addpage        *int
	order_index    *int
	addorder_index *int
	clearedFields  map[string]struct{}
	section        *uuid.UUID
	clearedsection bool
	done           bool
	oldValue       func(context.Context) (*ExtractedParagraph, error)
	predicates     []predicate.ExtractedParagraph
}

var _ ent.Mutation = (*ExtractedParagraphMutation)(nil)

// extractedparagraphOption allows management of the mutation configuration using functional options.
type extractedparagraphOption func(*ExtractedParagraphMutation)

// newExtractedParagraphMutation creates new mutation for the ExtractedParagraph entity.
func newExtractedParagraphMutation(c config, op Op, opts ...extractedparagraphOption) *ExtractedParagraphMutation {
	m := &ExtractedParagraphMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedParagraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedParagraphID sets the ID field of the mutation.
func withExtractedParagraphID(id uuid.UUID) extractedparagraphOption {
	return func(m *ExtractedParagraphMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedParagraph
		)
		m.oldValue = func(ctx context.Context) (*ExtractedParagraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedParagraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedParagraph sets the old ExtractedParagraph of the mutation.
func withExtractedParagraph(node *ExtractedParagraph) extractedparagraphOption {
	return func(m *ExtractedParagraphMutation) {
		m.oldValue = func(context.Context) (*ExtractedParagraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedParagraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedParagraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedParagraph entities.
func (m *ExtractedParagraphMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedParagraphMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedParagraphMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedParagraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSectionID sets the "section_id" field.
func (m *ExtractedParagraphMutation) SetSectionID(u uuid.UUID) {
	m.section = &u
}

// SectionID returns the value of the "section_id" field in the mutation.
func (m *ExtractedParagraphMutation) SectionID() (r uuid.UUID, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionID returns the old "section_id" field's value of the ExtractedParagraph entity.
// If the ExtractedParagraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedParagraphMutation) OldSectionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionID: %w", err)
	}
	return oldValue.SectionID, nil
}

// ResetSectionID resets all changes to the "section_id" field.
func (m *ExtractedParagraphMutation) ResetSectionID() {
	m.section = nil
}

// SetText sets the "text" field.
func (m *ExtractedParagraphMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ExtractedParagraphMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ExtractedParagraph entity.
// If the ExtractedParagraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedParagraphMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ExtractedParagraphMutation) ResetText() {
	m.text = nil
}

// SetPage sets the "page" field.
func (m *ExtractedParagraphMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *ExtractedParagraphMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the ExtractedParagraph entity.
// If the ExtractedParagraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedParagraphMutation) OldPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *ExtractedParagraphMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *ExtractedParagraphMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ClearPage clears the value of the "page" field.
func (m *ExtractedParagraphMutation) ClearPage() {
	m.page = nil
	m.addpage = nil
	m.clearedFields[extractedparagraph.FieldPage] = struct{}{}
}

// PageCleared returns if the "page" field was cleared in this mutation.
func (m *ExtractedParagraphMutation) PageCleared() bool {
	_, ok := m.clearedFields[extractedparagraph.FieldPage]
	return ok
}

// ResetPage resets all changes to the "page" field.
func (m *ExtractedParagraphMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
	delete(m.clearedFields, extractedparagraph.FieldPage)
}

// SetOrderIndex sets the "order_index" field.
func (m *ExtractedParagraphMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ExtractedParagraphMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ExtractedParagraph entity.
// If the ExtractedParagraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedParagraphMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ExtractedParagraphMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ExtractedParagraphMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ExtractedParagraphMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// ClearSection clears the "section" edge to the ExtractedSection entity.
func (m *ExtractedParagraphMutation) ClearSection() {
	m.clearedsection = true
	m.clearedFields[extractedparagraph.FieldSectionID] = struct{}{}
}

// SectionCleared reports if the "section" edge to the ExtractedSection entity was cleared.
func (m *ExtractedParagraphMutation) SectionCleared() bool {
	return m.clearedsection
}

// SectionIDs returns the "section" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SectionID instead. It exists only for internal usage by the builders.
func (m *ExtractedParagraphMutation) SectionIDs() (ids []uuid.UUID) {
	if id := m.section; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSection resets all changes to the "section" edge.
func (m *ExtractedParagraphMutation) ResetSection() {
	m.section = nil
	m.clearedsection = false
}

// Where appends a list predicates to the ExtractedParagraphMutation builder.
func (m *ExtractedParagraphMutation) Where(ps ...predicate.ExtractedParagraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedParagraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedParagraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedParagraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedParagraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedParagraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedParagraph).
func (m *ExtractedParagraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedParagraphMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.section != nil {
		fields = append(fields, extractedparagraph.FieldSectionID)
	}
	if m.text != nil {
		fields = append(fields, extractedparagraph.FieldText)
	}
	if m.page != nil {
		fields = append(fields, extractedparagraph.FieldPage)
	}
	if m.order_index != nil {
		fields = append(fields, extractedparagraph.FieldOrderIndex)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedParagraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedparagraph.FieldSectionID:
		return m.SectionID()
	case extractedparagraph.FieldText:
		return m.Text()
	case extractedparagraph.FieldPage:
		return m.Page()
	case extractedparagraph.FieldOrderIndex:
		return m.OrderIndex()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedParagraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedparagraph.FieldSectionID:
		return m.OldSectionID(ctx)
	case extractedparagraph.FieldText:
		return m.OldText(ctx)
	case extractedparagraph.FieldPage:
		return m.OldPage(ctx)
	case extractedparagraph.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedParagraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedParagraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedparagraph.FieldSectionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionID(v)
		return nil
	case extractedparagraph.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case extractedparagraph.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case extractedparagraph.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedParagraphMutation) AddedFields() []string {
	var fields []string
	if m.addpage != nil {
		fields = append(fields, extractedparagraph.FieldPage)
	}
	if m.addorder_index != nil {
		fields = append(fields, extractedparagraph.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedParagraphMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedparagraph.FieldPage:
		return m.AddedPage()
	case extractedparagraph.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedParagraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedparagraph.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case extractedparagraph.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedParagraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedparagraph.FieldPage) {
		fields = append(fields, extractedparagraph.FieldPage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedParagraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedParagraphMutation) ClearField(name string) error {
	switch name {
	case extractedparagraph.FieldPage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedParagraphMutation) ResetField(name string) error {
	switch name {
	case extractedparagraph.FieldSectionID:
		m.ResetSectionID()
		return nil
	case extractedparagraph.FieldText:
		m.ResetText()
		return nil
	case extractedparagraph.FieldPage:
		m.ResetPage()
		return nil
	case extractedparagraph.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedParagraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.section != nil {
		edges = append(edges, extractedparagraph.EdgeSection)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedParagraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedparagraph.EdgeSection:
		if id := m.section; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedParagraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedParagraphMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedParagraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsection {
		edges = append(edges, extractedparagraph.EdgeSection)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedParagraphMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedparagraph.EdgeSection:
		return m.clearedsection
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedParagraphMutation) ClearEdge(name string) error {
	switch name {
	case extractedparagraph.EdgeSection:
		m.ClearSection()
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedParagraphMutation) ResetEdge(name string) error {
	switch name {
	case extractedparagraph.EdgeSection:
		m.ResetSection()
		return nil
	}
	return fmt.Errorf("unknown ExtractedParagraph edge %s", name)
}

// ExtractedSectionMutation represents an operation that mutates the ExtractedSection nodes in the graph.
type ExtractedSectionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	title             *string
	section_type      *string
	level             *int
	addlevel          *int
	order_index       *int
	addorder_index    *int
	clearedFields     map[string]struct{}
	extraction        *uuid.UUID
	clearedextraction bool
	paragraphs        map[uuid.UUID]struct{}
	removedparagraphs map[uuid.UUID]struct{}
	clearedparagraphs bool
	done              bool
	oldValue          func(context.Context) (*ExtractedSection, error)
	predicates        []predicate.ExtractedSection
}

var _ ent.Mutation = (*ExtractedSectionMutation)(nil)

// extractedsectionOption allows management of the mutation configuration using functional options.
type extractedsectionOption func(*ExtractedSectionMutation)

// newExtractedSectionMutation creates new mutation for the ExtractedSection entity.
func newExtractedSectionMutation(c config, op Op, opts ...extractedsectionOption) *ExtractedSectionMutation {
	m := &ExtractedSectionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedSection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedSectionID sets the ID field of the mutation.
func withExtractedSectionID(id uuid.UUID) extractedsectionOption {
	return func(m *ExtractedSectionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedSection
		)
		m.oldValue = func(ctx context.Context) (*ExtractedSection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedSection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedSection sets the old ExtractedSection of the mutation.
func withExtractedSection(node *ExtractedSection) extractedsectionOption {
	return func(m *ExtractedSectionMutation) {
		m.oldValue = func(context.Context) (*ExtractedSection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedSectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedSectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedSection entities.
func (m *ExtractedSectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedSectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedSectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedSection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (m *ExtractedSectionMutation) SetPaperExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// PaperExtractionID returns the value of the "paper_extraction_id" field in the mutation.
func (m *ExtractedSectionMutation) PaperExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperExtractionID returns the old "paper_extraction_id" field's value of the ExtractedSection entity.
// If the ExtractedSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSectionMutation) OldPaperExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperExtractionID: %w", err)
	}
	return oldValue.PaperExtractionID, nil
}

// ResetPaperExtractionID resets all changes to the "paper_extraction_id" field.
func (m *ExtractedSectionMutation) ResetPaperExtractionID() {
	m.extraction = nil
}

// SetTitle sets the "title" field.
func (m *ExtractedSectionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExtractedSectionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ExtractedSection entity.
// If the ExtractedSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSectionMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ExtractedSectionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[extractedsection.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ExtractedSectionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[extractedsection.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ExtractedSectionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, extractedsection.FieldTitle)
}

// SetSectionType sets the "section_type" field.
func (m *ExtractedSectionMutation) SetSectionType(s string) {
	m.section_type = &s
}

// SectionType returns the value of the "section_type" field in the mutation.
func (m *ExtractedSectionMutation) SectionType() (r string, exists bool) {
	v := m.section_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionType returns the old "section_type" field's value of the ExtractedSection entity.
// If the ExtractedSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSectionMutation) OldSectionType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionType: %w", err)
	}
	return oldValue.SectionType, nil
}

// ClearSectionType clears the value of the "section_type" field.
func (m *ExtractedSectionMutation) ClearSectionType() {
	m.section_type = nil
	m.clearedFields[extractedsection.FieldSectionType] = struct{}{}
}

// SectionTypeCleared returns if the "section_type" field was cleared in this mutation.
func (m *ExtractedSectionMutation) SectionTypeCleared() bool {
	_, ok := m.clearedFields[extractedsection.FieldSectionType]
	return ok
}

// ResetSectionType resets all changes to the "section_type" field.
func (m *ExtractedSectionMutation) ResetSectionType() {
	m.section_type = nil
	delete(m.clearedFields, extractedsection.FieldSectionType)
}

// SetLevel sets the "level" field.
func (m *ExtractedSectionMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *ExtractedSectionMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the ExtractedSection entity.
// If the ExtractedSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSectionMutation) OldLevel(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *ExtractedSectionMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *ExtractedSectionMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ClearLevel clears the value of the "level" field.
func (m *ExtractedSectionMutation) ClearLevel() {
	m.level = nil
	m.addlevel = nil
	m.clearedFields[extractedsection.FieldLevel] = struct{}{}
}

// LevelCleared returns if the "level" field was cleared in this mutation.
func (m *ExtractedSectionMutation) LevelCleared() bool {
	_, ok := m.clearedFields[extractedsection.FieldLevel]
	return ok
}

// ResetLevel resets all changes to the "level" field.
func (m *ExtractedSectionMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
	delete(m.clearedFields, extractedsection.FieldLevel)
}

// SetOrderIndex sets the "order_index" field.
func (m *ExtractedSectionMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ExtractedSectionMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ExtractedSection entity.
// If the ExtractedSection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSectionMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ExtractedSectionMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ExtractedSectionMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ExtractedSectionMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by id.
func (m *ExtractedSectionMutation) SetExtractionID(id uuid.UUID) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the PaperExtraction entity.
func (m *ExtractedSectionMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[extractedsection.FieldPaperExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the PaperExtraction entity was cleared.
func (m *ExtractedSectionMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *ExtractedSectionMutation) ExtractionID() (id uuid.UUID, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *ExtractedSectionMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *ExtractedSectionMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// AddParagraphIDs adds the "paragraphs" edge to the ExtractedParagraph entity by ids.
func (m *ExtractedSectionMutation) AddParagraphIDs(ids ...uuid.UUID) {
	if m.paragraphs == nil {
		m.paragraphs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.paragraphs[ids[i]] = struct{}{}
	}
}

// ClearParagraphs clears the "paragraphs" edge to the ExtractedParagraph entity.
func (m *ExtractedSectionMutation) ClearParagraphs() {
	m.clearedparagraphs = true
}

// ParagraphsCleared reports if the "paragraphs" edge to the ExtractedParagraph entity was cleared.
func (m *ExtractedSectionMutation) ParagraphsCleared() bool {
	return m.clearedparagraphs
}

// RemoveParagraphIDs removes the "paragraphs" edge to the ExtractedParagraph entity by IDs.
func (m *ExtractedSectionMutation) RemoveParagraphIDs(ids ...uuid.UUID) {
	if m.removedparagraphs == nil {
		m.removedparagraphs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.paragraphs, ids[i])
		m.removedparagraphs[ids[i]] = struct{}{}
	}
}

// RemovedParagraphs returns the removed IDs of the "paragraphs" edge to the ExtractedParagraph entity.
func (m *ExtractedSectionMutation) RemovedParagraphsIDs() (ids []uuid.UUID) {
	for id := range m.removedparagraphs {
		ids = append(ids, id)
	}
	return
}

// ParagraphsIDs returns the "paragraphs" edge IDs in the mutation.
func (m *ExtractedSectionMutation) ParagraphsIDs() (ids []uuid.UUID) {
	for id := range m.paragraphs {
		ids = append(ids, id)
	}
	return
}

// ResetParagraphs resets all changes to the "paragraphs" edge.
func (m *ExtractedSectionMutation) ResetParagraphs() {
	m.paragraphs = nil
	m.clearedparagraphs = false
	m.removedparagraphs = nil
}

// Where appends a list predicates to the ExtractedSectionMutation builder.
func (m *ExtractedSectionMutation) Where(ps ...predicate.ExtractedSection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedSectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedSectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedSection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedSectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedSectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedSection).
func (m *ExtractedSectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedSectionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.extraction != nil {
		fields = append(fields, extractedsection.FieldPaperExtractionID)
	}
	if m.title != nil {
		fields = append(fields, extractedsection.FieldTitle)
	}
	if m.section_type != nil {
		fields = append(fields, extractedsection.FieldSectionType)
	}
	if m.level != nil {
		fields = append(fields, extractedsection.FieldLevel)
	}
	if m.order_index != nil {
		fields = append(fields, extractedsection.FieldOrderIndex)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedSectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedsection.FieldPaperExtractionID:
		return m.PaperExtractionID()
	case extractedsection.FieldTitle:
		return m.Title()
	case extractedsection.FieldSectionType:
		return m.SectionType()
	case extractedsection.FieldLevel:
		return m.Level()
	case extractedsection.FieldOrderIndex:
		return m.OrderIndex()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedSectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedsection.FieldPaperExtractionID:
		return m.OldPaperExtractionID(ctx)
	case extractedsection.FieldTitle:
		return m.OldTitle(ctx)
	case extractedsection.FieldSectionType:
		return m.OldSectionType(ctx)
	case extractedsection.FieldLevel:
		return m.OldLevel(ctx)
	case extractedsection.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedSection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedSectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedsection.FieldPaperExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperExtractionID(v)
		return nil
	case extractedsection.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case extractedsection.FieldSectionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionType(v)
		return nil
	case extractedsection.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case extractedsection.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedSectionMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, extractedsection.FieldLevel)
	}
	if m.addorder_index != nil {
		fields = append(fields, extractedsection.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedSectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedsection.FieldLevel:
		return m.AddedLevel()
	case extractedsection.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedSectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedsection.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case extractedsection.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedSectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedsection.FieldTitle) {
		fields = append(fields, extractedsection.FieldTitle)
	}
	if m.FieldCleared(extractedsection.FieldSectionType) {
		fields = append(fields, extractedsection.FieldSectionType)
	}
	if m.FieldCleared(extractedsection.FieldLevel) {
		fields = append(fields, extractedsection.FieldLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedSectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedSectionMutation) ClearField(name string) error {
	switch name {
	case extractedsection.FieldTitle:
		m.ClearTitle()
		return nil
	case extractedsection.FieldSectionType:
		m.ClearSectionType()
		return nil
	case extractedsection.FieldLevel:
		m.ClearLevel()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedSectionMutation) ResetField(name string) error {
	switch name {
	case extractedsection.FieldPaperExtractionID:
		m.ResetPaperExtractionID()
		return nil
	case extractedsection.FieldTitle:
		m.ResetTitle()
		return nil
	case extractedsection.FieldSectionType:
		m.ResetSectionType()
		return nil
	case extractedsection.FieldLevel:
		m.ResetLevel()
		return nil
	case extractedsection.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedSectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.extraction != nil {
		edges = append(edges, extractedsection.EdgeExtraction)
	}
	if m.paragraphs != nil {
		edges = append(edges, extractedsection.EdgeParagraphs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedSectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedsection.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	case extractedsection.EdgeParagraphs:
		ids := make([]ent.Value, 0, len(m.paragraphs))
		for id := range m.paragraphs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedSectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedparagraphs != nil {
		edges = append(edges, extractedsection.EdgeParagraphs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedSectionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractedsection.EdgeParagraphs:
		ids := make([]ent.Value, 0, len(m.removedparagraphs))
		for id := range m.removedparagraphs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedSectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedextraction {
		edges = append(edges, extractedsection.EdgeExtraction)
	}
	if m.clearedparagraphs {
		edges = append(edges, extractedsection.EdgeParagraphs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedSectionMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedsection.EdgeExtraction:
		return m.clearedextraction
	case extractedsection.EdgeParagraphs:
		return m.clearedparagraphs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedSectionMutation) ClearEdge(name string) error {
	switch name {
	case extractedsection.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedSectionMutation) ResetEdge(name string) error {
	switch name {
	case extractedsection.EdgeExtraction:
		m.ResetExtraction()
		return nil
	case extractedsection.EdgeParagraphs:
		m.ResetParagraphs()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSection edge %s", name)
}

// ExtractedTableMutation represents an operation that mutates the ExtractedTable nodes in the graph.
type ExtractedTableMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	label             *string
	caption           *string
	page              *int
	addpage           *int
	order_index       *int
	addorder_index    *int
	clearedFields     map[string]struct{}
	extraction        *uuid.UUID
	clearedextraction bool
	done              bool
	oldValue          func(context.Context) (*ExtractedTable, error)
	predicates        []predicate.ExtractedTable
}

var _ ent.Mutation = (*ExtractedTableMutation)(nil)

// extractedtableOption allows management of the mutation configuration using functional options.
type extractedtableOption func(*ExtractedTableMutation)

// newExtractedTableMutation creates new mutation for the ExtractedTable entity.
func newExtractedTableMutation(c config, op Op, opts ...extractedtableOption) *ExtractedTableMutation {
	m := &ExtractedTableMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedTable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedTableID sets the ID field of the mutation.
func withExtractedTableID(id uuid.UUID) extractedtableOption {
	return func(m *ExtractedTableMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedTable
		)
		m.oldValue = func(ctx context.Context) (*ExtractedTable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedTable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedTable sets the old ExtractedTable of the mutation.
func withExtractedTable(node *ExtractedTable) extractedtableOption {
	return func(m *ExtractedTableMutation) {
		m.oldValue = func(context.Context) (*ExtractedTable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedTableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedTableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedTable entities.
func (m *ExtractedTableMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedTableMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedTableMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedTable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (m *ExtractedTableMutation) SetPaperExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// PaperExtractionID returns the value of the "paper_extraction_id" field in the mutation.
func (m *ExtractedTableMutation) PaperExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperExtractionID returns the old "paper_extraction_id" field's value of the ExtractedTable entity.
// If the ExtractedTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTableMutation) OldPaperExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperExtractionID: %w", err)
	}
	return oldValue.PaperExtractionID, nil
}

// ResetPaperExtractionID resets all changes to the "paper_extraction_id" field.
func (m *ExtractedTableMutation) ResetPaperExtractionID() {
	m.extraction = nil
}

// SetLabel sets the "label" field.
func (m *ExtractedTableMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *ExtractedTableMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the ExtractedTable entity.
// If the ExtractedTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTableMutation) OldLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *ExtractedTableMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[extractedtable.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *ExtractedTableMutation) LabelCleared() bool {
	_, ok := m.clearedFields[extractedtable.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *ExtractedTableMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, extractedtable.FieldLabel)
}

// SetCaption sets the "caption" field.
func (m *ExtractedTableMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *ExtractedTableMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the ExtractedTable entity.
// If the ExtractedTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTableMutation) OldCaption(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *ExtractedTableMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[extractedtable.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *ExtractedTableMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[extractedtable.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *ExtractedTableMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, extractedtable.FieldCaption)
}

// SetPage sets the "page" field.
func (m *ExtractedTableMutation) SetPage(i int) {
	m.page = &i
	m.addpage = nil
}

// Page returns the value of the "page" field in the mutation.
func (m *ExtractedTableMutation) Page() (r int, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPage returns the old "page" field's value of the ExtractedTable entity.
// If the ExtractedTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTableMutation) OldPage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPage: %w", err)
	}
	return oldValue.Page, nil
}

// AddPage adds i to the "page" field.
func (m *ExtractedTableMutation) AddPage(i int) {
	if m.addpage != nil {
		*m.addpage += i
	} else {
		m.addpage = &i
	}
}

// AddedPage returns the value that was added to the "page" field in this mutation.
func (m *ExtractedTableMutation) AddedPage() (r int, exists bool) {
	v := m.addpage
	if v == nil {
		return
	}
	return *v, true
}

// ClearPage clears the value of the "page" field.
func (m *ExtractedTableMutation) ClearPage() {
	m.page = nil
	m.addpage = nil
	m.clearedFields[extractedtable.FieldPage] = struct{}{}
}

// PageCleared returns if the "page" field was cleared in this mutation.
func (m *ExtractedTableMutation) PageCleared() bool {
	_, ok := m.clearedFields[extractedtable.FieldPage]
	return ok
}

// ResetPage resets all changes to the "page" field.
func (m *ExtractedTableMutation) ResetPage() {
	m.page = nil
	m.addpage = nil
	delete(m.clearedFields, extractedtable.FieldPage)
}

// SetOrderIndex sets the "order_index" field.
func (m *ExtractedTableMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ExtractedTableMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ExtractedTable entity.
// If the ExtractedTable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTableMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ExtractedTableMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ExtractedTableMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ExtractedTableMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetExtractionID sets the "extraction" edge to the PaperExtraction entity by id.
func (m *ExtractedTableMutation) SetExtractionID(id uuid.UUID) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the PaperExtraction entity.
func (m *ExtractedTableMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[extractedtable.FieldPaperExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the PaperExtraction entity was cleared.
func (m *ExtractedTableMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *ExtractedTableMutation) ExtractionID() (id uuid.UUID, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *ExtractedTableMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *ExtractedTableMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the ExtractedTableMutation builder.
func (m *ExtractedTableMutation) Where(ps ...predicate.ExtractedTable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedTableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedTableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedTable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedTableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedTableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedTable).
func (m *ExtractedTableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedTableMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.extraction != nil {
		fields = append(fields, extractedtable.FieldPaperExtractionID)
	}
	if m.label != nil {
		fields = append(fields, extractedtable.FieldLabel)
	}
	if m.caption != nil {
		fields = append(fields, extractedtable.FieldCaption)
	}
	if m.page != nil {
		fields = append(fields, extractedtable.FieldPage)
	}
	if m.order_index != nil {
		fields = append(fields, extractedtable.FieldOrderIndex)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedTableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedtable.FieldPaperExtractionID:
		return m.PaperExtractionID()
	case extractedtable.FieldLabel:
		return m.Label()
	case extractedtable.FieldCaption:
		return m.Caption()
	case extractedtable.FieldPage:
		return m.Page()
	case extractedtable.FieldOrderIndex:
		return m.OrderIndex()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedTableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedtable.FieldPaperExtractionID:
		return m.OldPaperExtractionID(ctx)
	case extractedtable.FieldLabel:
		return m.OldLabel(ctx)
	case extractedtable.FieldCaption:
		return m.OldCaption(ctx)
	case extractedtable.FieldPage:
		return m.OldPage(ctx)
	case extractedtable.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedTable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedTableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedtable.FieldPaperExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperExtractionID(v)
		return nil
	case extractedtable.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case extractedtable.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case extractedtable.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPage(v)
		return nil
	case extractedtable.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedTableMutation) AddedFields() []string {
	var fields []string
	if m.addpage != nil {
		fields = append(fields, extractedtable.FieldPage)
	}
	if m.addorder_index != nil {
		fields = append(fields, extractedtable.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedTableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedtable.FieldPage:
		return m.AddedPage()
	case extractedtable.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedTableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedtable.FieldPage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPage(v)
		return nil
	case extractedtable.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedTableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedtable.FieldLabel) {
		fields = append(fields, extractedtable.FieldLabel)
	}
	if m.FieldCleared(extractedtable.FieldCaption) {
		fields = append(fields, extractedtable.FieldCaption)
	}
	if m.FieldCleared(extractedtable.FieldPage) {
		fields = append(fields, extractedtable.FieldPage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedTableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedTableMutation) ClearField(name string) error {
	switch name {
	case extractedtable.FieldLabel:
		m.ClearLabel()
		return nil
	case extractedtable.FieldCaption:
		m.ClearCaption()
		return nil
	case extractedtable.FieldPage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedTableMutation) ResetField(name string) error {
	switch name {
	case extractedtable.FieldPaperExtractionID:
		m.ResetPaperExtractionID()
		return nil
	case extractedtable.FieldLabel:
		m.ResetLabel()
		return nil
	case extractedtable.FieldCaption:
		m.ResetCaption()
		return nil
	case extractedtable.FieldPage:
		m.ResetPage()
		return nil
	case extractedtable.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedTableMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, extractedtable.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedTableMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedtable.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedTableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedTableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedTableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, extractedtable.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedTableMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedtable.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedTableMutation) ClearEdge(name string) error {
	switch name {
	case extractedtable.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedTableMutation) ResetEdge(name string) error {
	switch name {
	case extractedtable.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTable edge %s", name)
}

// GapAnalysisMutation represents an operation that mutates the GapAnalysis nodes in the graph.
type GapAnalysisMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	paper_id                 *uuid.UUID
	paper_extraction_id      *uuid.UUID
	correlation_id           *string
	request_id               *string
	status                   *gapanalysis.Status
	started_at               *time.Time
	completed_at             *time.Time
	error_message            *string
	_config                  *map[string]interface{}
	total_gaps_identified    *int
	addtotal_gaps_identified *int
	valid_gaps_count         *int
	addvalid_gaps_count      *int
	invalid_gaps_count       *int
	addinvalid_gaps_count    *int
	modified_gaps_count      *int
	addmodified_gaps_count   *int
	created_at               *time.Time
	clearedFields            map[string]struct{}
	gaps                     map[uuid.UUID]struct{}
	removedgaps              map[uuid.UUID]struct{}
	clearedgaps              bool
	done                     bool
	oldValue                 func(context.Context) (*GapAnalysis, error)
	predicates               []predicate.GapAnalysis
}

var _ ent.Mutation = (*GapAnalysisMutation)(nil)

// gapanalysisOption allows management of the mutation configuration using functional options.
type gapanalysisOption func(*GapAnalysisMutation)

// newGapAnalysisMutation creates new mutation for the GapAnalysis entity.
func newGapAnalysisMutation(c config, op Op, opts ...gapanalysisOption) *GapAnalysisMutation {
	m := &GapAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeGapAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGapAnalysisID sets the ID field of the mutation.
func withGapAnalysisID(id uuid.UUID) gapanalysisOption {
	return func(m *GapAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *GapAnalysis
		)
		m.oldValue = func(ctx context.Context) (*GapAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GapAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGapAnalysis sets the old GapAnalysis of the mutation.
func withGapAnalysis(node *GapAnalysis) gapanalysisOption {
	return func(m *GapAnalysisMutation) {
		m.oldValue = func(context.Context) (*GapAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GapAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GapAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GapAnalysis entities.
func (m *GapAnalysisMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GapAnalysisMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GapAnalysisMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GapAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperID sets the "paper_id" field.
func (m *GapAnalysisMutation) SetPaperID(u uuid.UUID) {
	m.paper_id = &u
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *GapAnalysisMutation) PaperID() (r uuid.UUID, exists bool) {
	v := m.paper_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldPaperID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *GapAnalysisMutation) ResetPaperID() {
	m.paper_id = nil
}

// SetPaperExtractionID sets the "paper_extraction_id" field.
func (m *GapAnalysisMutation) SetPaperExtractionID(u uuid.UUID) {
	m.paper_extraction_id = &u
}

// PaperExtractionID returns the value of the "paper_extraction_id" field in the mutation.
func (m *GapAnalysisMutation) PaperExtractionID() (r uuid.UUID, exists bool) {
	v := m.paper_extraction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperExtractionID returns the old "paper_extraction_id" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldPaperExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperExtractionID: %w", err)
	}
	return oldValue.PaperExtractionID, nil
}

// ResetPaperExtractionID resets all changes to the "paper_extraction_id" field.
func (m *GapAnalysisMutation) ResetPaperExtractionID() {
	m.paper_extraction_id = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *GapAnalysisMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *GapAnalysisMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *GapAnalysisMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *GapAnalysisMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *GapAnalysisMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *GapAnalysisMutation) ResetRequestID() {
	m.request_id = nil
}

// SetStatus sets the "status" field.
func (m *GapAnalysisMutation) SetStatus(ga gapanalysis.Status) {
	m.status = &ga
}

// Status returns the value of the "status" field in the mutation.
func (m *GapAnalysisMutation) Status() (r gapanalysis.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldStatus(ctx context.Context) (v gapanalysis.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GapAnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GapAnalysisMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GapAnalysisMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *GapAnalysisMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[gapanalysis.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *GapAnalysisMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[gapanalysis.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GapAnalysisMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, gapanalysis.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *GapAnalysisMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *GapAnalysisMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *GapAnalysisMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[gapanalysis.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *GapAnalysisMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[gapanalysis.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *GapAnalysisMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, gapanalysis.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *GapAnalysisMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GapAnalysisMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *GapAnalysisMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[gapanalysis.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *GapAnalysisMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[gapanalysis.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GapAnalysisMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, gapanalysis.FieldErrorMessage)
}

// SetConfig sets the "config" field.
func (m *GapAnalysisMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *GapAnalysisMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *GapAnalysisMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[gapanalysis.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *GapAnalysisMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[gapanalysis.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *GapAnalysisMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, gapanalysis.FieldConfig)
}

// SetTotalGapsIdentified sets the "total_gaps_identified" field.
func (m *GapAnalysisMutation) SetTotalGapsIdentified(i int) {
	m.total_gaps_identified = &i
	m.addtotal_gaps_identified = nil
}

// TotalGapsIdentified returns the value of the "total_gaps_identified" field in the mutation.
func (m *GapAnalysisMutation) TotalGapsIdentified() (r int, exists bool) {
	v := m.total_gaps_identified
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalGapsIdentified returns the old "total_gaps_identified" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldTotalGapsIdentified(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalGapsIdentified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalGapsIdentified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalGapsIdentified: %w", err)
	}
	return oldValue.TotalGapsIdentified, nil
}

// AddTotalGapsIdentified adds i to the "total_gaps_identified" field.
func (m *GapAnalysisMutation) AddTotalGapsIdentified(i int) {
	if m.addtotal_gaps_identified != nil {
		*m.addtotal_gaps_identified += i
	} else {
		m.addtotal_gaps_identified = &i
	}
}

// AddedTotalGapsIdentified returns the value that was added to the "total_gaps_identified" field in this mutation.
func (m *GapAnalysisMutation) AddedTotalGapsIdentified() (r int, exists bool) {
	v := m.addtotal_gaps_identified
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalGapsIdentified resets all changes to the "total_gaps_identified" field.
func (m *GapAnalysisMutation) ResetTotalGapsIdentified() {
	m.total_gaps_identified = nil
	m.addtotal_gaps_identified = nil
}

// SetValidGapsCount sets the "valid_gaps_count" field.
func (m *GapAnalysisMutation) SetValidGapsCount(i int) {
	m.valid_gaps_count = &i
	m.addvalid_gaps_count = nil
}

// ValidGapsCount returns the value of the "valid_gaps_count" field in the mutation.
func (m *GapAnalysisMutation) ValidGapsCount() (r int, exists bool) {
	v := m.valid_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// OldValidGapsCount returns the old "valid_gaps_count" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldValidGapsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidGapsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidGapsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidGapsCount: %w", err)
	}
	return oldValue.ValidGapsCount, nil
}

// AddValidGapsCount adds i to the "valid_gaps_count" field.
func (m *GapAnalysisMutation) AddValidGapsCount(i int) {
	if m.addvalid_gaps_count != nil {
		*m.addvalid_gaps_count += i
	} else {
		m.addvalid_gaps_count = &i
	}
}

// AddedValidGapsCount returns the value that was added to the "valid_gaps_count" field in this mutation.
func (m *GapAnalysisMutation) AddedValidGapsCount() (r int, exists bool) {
	v := m.addvalid_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetValidGapsCount resets all changes to the "valid_gaps_count" field.
func (m *GapAnalysisMutation) ResetValidGapsCount() {
	m.valid_gaps_count = nil
	m.addvalid_gaps_count = nil
}

// SetInvalidGapsCount sets the "invalid_gaps_count" field.
func (m *GapAnalysisMutation) SetInvalidGapsCount(i int) {
	m.invalid_gaps_count = &i
	m.addinvalid_gaps_count = nil
}

// InvalidGapsCount returns the value of the "invalid_gaps_count" field in the mutation.
func (m *GapAnalysisMutation) InvalidGapsCount() (r int, exists bool) {
	v := m.invalid_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInvalidGapsCount returns the old "invalid_gaps_count" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldInvalidGapsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvalidGapsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvalidGapsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvalidGapsCount: %w", err)
	}
	return oldValue.InvalidGapsCount, nil
}

// AddInvalidGapsCount adds i to the "invalid_gaps_count" field.
func (m *GapAnalysisMutation) AddInvalidGapsCount(i int) {
	if m.addinvalid_gaps_count != nil {
		*m.addinvalid_gaps_count += i
	} else {
		m.addinvalid_gaps_count = &i
	}
}

// AddedInvalidGapsCount returns the value that was added to the "invalid_gaps_count" field in this mutation.
func (m *GapAnalysisMutation) AddedInvalidGapsCount() (r int, exists bool) {
	v := m.addinvalid_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInvalidGapsCount resets all changes to the "invalid_gaps_count" field.
func (m *GapAnalysisMutation) ResetInvalidGapsCount() {
	m.invalid_gaps_count = nil
	m.addinvalid_gaps_count = nil
}

// SetModifiedGapsCount sets the "modified_gaps_count" field.
func (m *GapAnalysisMutation) SetModifiedGapsCount(i int) {
	m.modified_gaps_count = &i
	m.addmodified_gaps_count = nil
}

// ModifiedGapsCount returns the value of the "modified_gaps_count" field in the mutation.
func (m *GapAnalysisMutation) ModifiedGapsCount() (r int, exists bool) {
	v := m.modified_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedGapsCount returns the old "modified_gaps_count" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldModifiedGapsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedGapsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedGapsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedGapsCount: %w", err)
	}
	return oldValue.ModifiedGapsCount, nil
}

// AddModifiedGapsCount adds i to the "modified_gaps_count" field.
func (m *GapAnalysisMutation) AddModifiedGapsCount(i int) {
	if m.addmodified_gaps_count != nil {
		*m.addmodified_gaps_count += i
	} else {
		m.addmodified_gaps_count = &i
	}
}

// AddedModifiedGapsCount returns the value that was added to the "modified_gaps_count" field in this mutation.
func (m *GapAnalysisMutation) AddedModifiedGapsCount() (r int, exists bool) {
	v := m.addmodified_gaps_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetModifiedGapsCount resets all changes to the "modified_gaps_count" field.
func (m *GapAnalysisMutation) ResetModifiedGapsCount() {
	m.modified_gaps_count = nil
	m.addmodified_gaps_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GapAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GapAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GapAnalysis entity.
// If the GapAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GapAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddGapIDs adds the "gaps" edge to the ResearchGap entity by ids.
func (m *GapAnalysisMutation) AddGapIDs(ids ...uuid.UUID) {
	if m.gaps == nil {
		m.gaps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.gaps[ids[i]] = struct{}{}
	}
}

// ClearGaps clears the "gaps" edge to the ResearchGap entity.
func (m *GapAnalysisMutation) ClearGaps() {
	m.clearedgaps = true
}

// GapsCleared reports if the "gaps" edge to the ResearchGap entity was cleared.
func (m *GapAnalysisMutation) GapsCleared() bool {
	return m.clearedgaps
}

// RemoveGapIDs removes the "gaps" edge to the ResearchGap entity by IDs.
func (m *GapAnalysisMutation) RemoveGapIDs(ids ...uuid.UUID) {
	if m.removedgaps == nil {
		m.removedgaps = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.gaps, ids[i])
		m.removedgaps[ids[i]] = struct{}{}
	}
}

// RemovedGaps returns the removed IDs of the "gaps" edge to the ResearchGap entity.
func (m *GapAnalysisMutation) RemovedGapsIDs() (ids []uuid.UUID) {
	for id := range m.removedgaps {
		ids = append(ids, id)
	}
	return
}

// GapsIDs returns the "gaps" edge IDs in the mutation.
func (m *GapAnalysisMutation) GapsIDs() (ids []uuid.UUID) {
	for id := range m.gaps {
		ids = append(ids, id)
	}
	return
}

// ResetGaps resets all changes to the "gaps" edge.
func (m *GapAnalysisMutation) ResetGaps() {
	m.gaps = nil
	m.clearedgaps = false
	m.removedgaps = nil
}

// Where appends a list predicates to the GapAnalysisMutation builder.
func (m *GapAnalysisMutation) Where(ps ...predicate.GapAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GapAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GapAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GapAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GapAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GapAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GapAnalysis).
func (m *GapAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GapAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.paper_id != nil {
		fields = append(fields, gapanalysis.FieldPaperID)
	}
	if m.paper_extraction_id != nil {
		fields = append(fields, gapanalysis.FieldPaperExtractionID)
	}
	if m.correlation_id != nil {
		fields = append(fields, gapanalysis.FieldCorrelationID)
	}
	if m.request_id != nil {
		fields = append(fields, gapanalysis.FieldRequestID)
	}
	if m.status != nil {
		fields = append(fields, gapanalysis.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, gapanalysis.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, gapanalysis.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, gapanalysis.FieldErrorMessage)
	}
	if m._config != nil {
		fields = append(fields, gapanalysis.FieldConfig)
	}
	if m.total_gaps_identified != nil {
		fields = append(fields, gapanalysis.FieldTotalGapsIdentified)
	}
	if m.valid_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldValidGapsCount)
	}
	if m.invalid_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldInvalidGapsCount)
	}
	if m.modified_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldModifiedGapsCount)
	}
	if m.created_at != nil {
		fields = append(fields, gapanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GapAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gapanalysis.FieldPaperID:
		return m.PaperID()
	case gapanalysis.FieldPaperExtractionID:
		return m.PaperExtractionID()
	case gapanalysis.FieldCorrelationID:
		return m.CorrelationID()
	case gapanalysis.FieldRequestID:
		return m.RequestID()
	case gapanalysis.FieldStatus:
		return m.Status()
	case gapanalysis.FieldStartedAt:
		return m.StartedAt()
	case gapanalysis.FieldCompletedAt:
		return m.CompletedAt()
	case gapanalysis.FieldErrorMessage:
		return m.ErrorMessage()
	case gapanalysis.FieldConfig:
		return m.Config()
	case gapanalysis.FieldTotalGapsIdentified:
		return m.TotalGapsIdentified()
	case gapanalysis.FieldValidGapsCount:
		return m.ValidGapsCount()
	case gapanalysis.FieldInvalidGapsCount:
		return m.InvalidGapsCount()
	case gapanalysis.FieldModifiedGapsCount:
		return m.ModifiedGapsCount()
	case gapanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GapAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gapanalysis.FieldPaperID:
		return m.OldPaperID(ctx)
	case gapanalysis.FieldPaperExtractionID:
		return m.OldPaperExtractionID(ctx)
	case gapanalysis.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case gapanalysis.FieldRequestID:
		return m.OldRequestID(ctx)
	case gapanalysis.FieldStatus:
		return m.OldStatus(ctx)
	case gapanalysis.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case gapanalysis.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case gapanalysis.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case gapanalysis.FieldConfig:
		return m.OldConfig(ctx)
	case gapanalysis.FieldTotalGapsIdentified:
		return m.OldTotalGapsIdentified(ctx)
	case gapanalysis.FieldValidGapsCount:
		return m.OldValidGapsCount(ctx)
	case gapanalysis.FieldInvalidGapsCount:
		return m.OldInvalidGapsCount(ctx)
	case gapanalysis.FieldModifiedGapsCount:
		return m.OldModifiedGapsCount(ctx)
	case gapanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GapAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gapanalysis.FieldPaperID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case gapanalysis.FieldPaperExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperExtractionID(v)
		return nil
	case gapanalysis.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case gapanalysis.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case gapanalysis.FieldStatus:
		v, ok := value.(gapanalysis.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case gapanalysis.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case gapanalysis.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case gapanalysis.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case gapanalysis.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case gapanalysis.FieldTotalGapsIdentified:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalGapsIdentified(v)
		return nil
	case gapanalysis.FieldValidGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidGapsCount(v)
		return nil
	case gapanalysis.FieldInvalidGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvalidGapsCount(v)
		return nil
	case gapanalysis.FieldModifiedGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedGapsCount(v)
		return nil
	case gapanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GapAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GapAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_gaps_identified != nil {
		fields = append(fields, gapanalysis.FieldTotalGapsIdentified)
	}
	if m.addvalid_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldValidGapsCount)
	}
	if m.addinvalid_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldInvalidGapsCount)
	}
	if m.addmodified_gaps_count != nil {
		fields = append(fields, gapanalysis.FieldModifiedGapsCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GapAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gapanalysis.FieldTotalGapsIdentified:
		return m.AddedTotalGapsIdentified()
	case gapanalysis.FieldValidGapsCount:
		return m.AddedValidGapsCount()
	case gapanalysis.FieldInvalidGapsCount:
		return m.AddedInvalidGapsCount()
	case gapanalysis.FieldModifiedGapsCount:
		return m.AddedModifiedGapsCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gapanalysis.FieldTotalGapsIdentified:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalGapsIdentified(v)
		return nil
	case gapanalysis.FieldValidGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidGapsCount(v)
		return nil
	case gapanalysis.FieldInvalidGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInvalidGapsCount(v)
		return nil
	case gapanalysis.FieldModifiedGapsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModifiedGapsCount(v)
		return nil
	}
	return fmt.Errorf("unknown GapAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GapAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gapanalysis.FieldStartedAt) {
		fields = append(fields, gapanalysis.FieldStartedAt)
	}
	if m.FieldCleared(gapanalysis.FieldCompletedAt) {
		fields = append(fields, gapanalysis.FieldCompletedAt)
	}
	if m.FieldCleared(gapanalysis.FieldErrorMessage) {
		fields = append(fields, gapanalysis.FieldErrorMessage)
	}
	if m.FieldCleared(gapanalysis.FieldConfig) {
		fields = append(fields, gapanalysis.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GapAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GapAnalysisMutation) ClearField(name string) error {
	switch name {
	case gapanalysis.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case gapanalysis.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case gapanalysis.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case gapanalysis.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown GapAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GapAnalysisMutation) ResetField(name string) error {
	switch name {
	case gapanalysis.FieldPaperID:
		m.ResetPaperID()
		return nil
	case gapanalysis.FieldPaperExtractionID:
		m.ResetPaperExtractionID()
		return nil
	case gapanalysis.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case gapanalysis.FieldRequestID:
		m.ResetRequestID()
		return nil
	case gapanalysis.FieldStatus:
		m.ResetStatus()
		return nil
	case gapanalysis.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case gapanalysis.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case gapanalysis.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case gapanalysis.FieldConfig:
		m.ResetConfig()
		return nil
	case gapanalysis.FieldTotalGapsIdentified:
		m.ResetTotalGapsIdentified()
		return nil
	case gapanalysis.FieldValidGapsCount:
		m.ResetValidGapsCount()
		return nil
	case gapanalysis.FieldInvalidGapsCount:
		m.ResetInvalidGapsCount()
		return nil
	case gapanalysis.FieldModifiedGapsCount:
		m.ResetModifiedGapsCount()
		return nil
	case gapanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GapAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GapAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gaps != nil {
		edges = append(edges, gapanalysis.EdgeGaps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GapAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gapanalysis.EdgeGaps:
		ids := make([]ent.Value, 0, len(m.gaps))
		for id := range m.gaps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GapAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgaps != nil {
		edges = append(edges, gapanalysis.EdgeGaps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GapAnalysisMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case gapanalysis.EdgeGaps:
		ids := make([]ent.Value, 0, len(m.removedgaps))
		for id := range m.removedgaps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GapAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgaps {
		edges = append(edges, gapanalysis.EdgeGaps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GapAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case gapanalysis.EdgeGaps:
		return m.clearedgaps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GapAnalysisMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown GapAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GapAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case gapanalysis.EdgeGaps:
		m.ResetGaps()
		return nil
	}
	return fmt.Errorf("unknown GapAnalysis edge %s", name)
}

// GapTopicMutation represents an operation that mutates the GapTopic nodes in the graph.
type GapTopicMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	title                    *string
	description              *string
	research_questions       *[]string
	appendresearch_questions []string
	methodology_suggestions  *string
	expected_outcomes        *string
	relevance_score          *float64
	addrelevance_score       *float64
	clearedFields            map[string]struct{}
	gap                      *uuid.UUID
	clearedgap               bool
	done                     bool
	oldValue                 func(context.Context) (*GapTopic, error)
	predicates               []predicate.GapTopic
}

var _ ent.Mutation = (*GapTopicMutation)(nil)

// gaptopicOption allows management of the mutation configuration using functional options.
type gaptopicOption func(*GapTopicMutation)

// newGapTopicMutation creates new mutation for the GapTopic entity.
func newGapTopicMutation(c config, op Op, opts ...gaptopicOption) *GapTopicMutation {
	m := &GapTopicMutation{
		config:        c,
		op:            op,
		typ:           TypeGapTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGapTopicID sets the ID field of the mutation.
func withGapTopicID(id uuid.UUID) gaptopicOption {
	return func(m *GapTopicMutation) {
		var (
			err   error
			once  sync.Once
			value *GapTopic
		)
		m.oldValue = func(ctx context.Context) (*GapTopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GapTopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGapTopic sets the old GapTopic of the mutation.
func withGapTopic(node *GapTopic) gaptopicOption {
	return func(m *GapTopicMutation) {
		m.oldValue = func(context.Context) (*GapTopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GapTopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GapTopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GapTopic entities.
func (m *GapTopicMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GapTopicMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GapTopicMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GapTopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchGapID sets the "research_gap_id" field.
func (m *GapTopicMutation) SetResearchGapID(u uuid.UUID) {
	m.gap = &u
}

// ResearchGapID returns the value of the "research_gap_id" field in the mutation.
func (m *GapTopicMutation) ResearchGapID() (r uuid.UUID, exists bool) {
	v := m.gap
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchGapID returns the old "research_gap_id" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldResearchGapID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchGapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchGapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchGapID: %w", err)
	}
	return oldValue.ResearchGapID, nil
}

// ResetResearchGapID resets all changes to the "research_gap_id" field.
func (m *GapTopicMutation) ResetResearchGapID() {
	m.gap = nil
}

// SetTitle sets the "title" field.
func (m *GapTopicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GapTopicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GapTopicMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *GapTopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GapTopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GapTopicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[gaptopic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GapTopicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[gaptopic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GapTopicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, gaptopic.FieldDescription)
}

// SetResearchQuestions sets the "research_questions" field.
func (m *GapTopicMutation) SetResearchQuestions(s []string) {
	m.research_questions = &s
	m.appendresearch_questions = nil
}

// ResearchQuestions returns the value of the "research_questions" field in the mutation.
func (m *GapTopicMutation) ResearchQuestions() (r []string, exists bool) {
	v := m.research_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchQuestions returns the old "research_questions" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldResearchQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchQuestions: %w", err)
	}
	return oldValue.ResearchQuestions, nil
}

// AppendResearchQuestions adds s to the "research_questions" field.
func (m *GapTopicMutation) AppendResearchQuestions(s []string) {
	m.appendresearch_questions = append(m.appendresearch_questions, s...)
}

// AppendedResearchQuestions returns the list of values that were appended to the "research_questions" field in this mutation.
func (m *GapTopicMutation) AppendedResearchQuestions() ([]string, bool) {
	if len(m.appendresearch_questions) == 0 {
		return nil, false
	}
	return m.appendresearch_questions, true
}

// ClearResearchQuestions clears the value of the "research_questions" field.
func (m *GapTopicMutation) ClearResearchQuestions() {
	m.research_questions = nil
	m.appendresearch_questions = nil
	m.clearedFields[gaptopic.FieldResearchQuestions] = struct{}{}
}

// ResearchQuestionsCleared returns if the "research_questions" field was cleared in this mutation.
func (m *GapTopicMutation) ResearchQuestionsCleared() bool {
	_, ok := m.clearedFields[gaptopic.FieldResearchQuestions]
	return ok
}

// ResetResearchQuestions resets all changes to the "research_questions" field.
func (m *GapTopicMutation) ResetResearchQuestions() {
	m.research_questions = nil
	m.appendresearch_questions = nil
	delete(m.clearedFields, gaptopic.FieldResearchQuestions)
}

// SetMethodologySuggestions sets the "methodology_suggestions" field.
func (m *GapTopicMutation) SetMethodologySuggestions(s string) {
	m.methodology_suggestions = &s
}

// MethodologySuggestions returns the value of the "methodology_suggestions" field in the mutation.
func (m *GapTopicMutation) MethodologySuggestions() (r string, exists bool) {
	v := m.methodology_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldMethodologySuggestions returns the old "methodology_suggestions" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldMethodologySuggestions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethodologySuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethodologySuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethodologySuggestions: %w", err)
	}
	return oldValue.MethodologySuggestions, nil
}

// ClearMethodologySuggestions clears the value of the "methodology_suggestions" field.
func (m *GapTopicMutation) ClearMethodologySuggestions() {
	m.methodology_suggestions = nil
	m.clearedFields[gaptopic.FieldMethodologySuggestions] = struct{}{}
}

// MethodologySuggestionsCleared returns if the "methodology_suggestions" field was cleared in this mutation.
func (m *GapTopicMutation) MethodologySuggestionsCleared() bool {
	_, ok := m.clearedFields[gaptopic.FieldMethodologySuggestions]
	return ok
}

// ResetMethodologySuggestions resets all changes to the "methodology_suggestions" field.
func (m *GapTopicMutation) ResetMethodologySuggestions() {
	m.methodology_suggestions = nil
	delete(m.clearedFields, gaptopic.FieldMethodologySuggestions)
}

// SetExpectedOutcomes sets the "expected_outcomes" field.
func (m *GapTopicMutation) SetExpectedOutcomes(s string) {
	m.expected_outcomes = &s
}

// ExpectedOutcomes returns the value of the "expected_outcomes" field in the mutation.
func (m *GapTopicMutation) ExpectedOutcomes() (r string, exists bool) {
	v := m.expected_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutcomes returns the old "expected_outcomes" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldExpectedOutcomes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutcomes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutcomes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutcomes: %w", err)
	}
	return oldValue.ExpectedOutcomes, nil
}

// ClearExpectedOutcomes clears the value of the "expected_outcomes" field.
func (m *GapTopicMutation) ClearExpectedOutcomes() {
	m.expected_outcomes = nil
	m.clearedFields[gaptopic.FieldExpectedOutcomes] = struct{}{}
}

// ExpectedOutcomesCleared returns if the "expected_outcomes" field was cleared in this mutation.
func (m *GapTopicMutation) ExpectedOutcomesCleared() bool {
	_, ok := m.clearedFields[gaptopic.FieldExpectedOutcomes]
	return ok
}

// ResetExpectedOutcomes resets all changes to the "expected_outcomes" field.
func (m *GapTopicMutation) ResetExpectedOutcomes() {
	m.expected_outcomes = nil
	delete(m.clearedFields, gaptopic.FieldExpectedOutcomes)
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *GapTopicMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *GapTopicMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the GapTopic entity.
// If the GapTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapTopicMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *GapTopicMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *GapTopicMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *GapTopicMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetGapID sets the "gap" edge to the ResearchGap entity by id.
func (m *GapTopicMutation) SetGapID(id uuid.UUID) {
	m.gap = &id
}

// ClearGap clears the "gap" edge to the ResearchGap entity.
func (m *GapTopicMutation) ClearGap() {
	m.clearedgap = true
	m.clearedFields[gaptopic.FieldResearchGapID] = struct{}{}
}

// GapCleared reports if the "gap" edge to the ResearchGap entity was cleared.
func (m *GapTopicMutation) GapCleared() bool {
	return m.clearedgap
}

// GapID returns the "gap" edge ID in the mutation.
func (m *GapTopicMutation) GapID() (id uuid.UUID, exists bool) {
	if m.gap != nil {
		return *m.gap, true
	}
	return
}

// GapIDs returns the "gap" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GapID instead. It exists only for internal usage by the builders.
func (m *GapTopicMutation) GapIDs() (ids []uuid.UUID) {
	if id := m.gap; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGap resets all changes to the "gap" edge.
func (m *GapTopicMutation) ResetGap() {
	m.gap = nil
	m.clearedgap = false
}

// Where appends a list predicates to the GapTopicMutation builder.
func (m *GapTopicMutation) Where(ps ...predicate.GapTopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GapTopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GapTopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GapTopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GapTopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GapTopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GapTopic).
func (m *GapTopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GapTopicMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.gap != nil {
		fields = append(fields, gaptopic.FieldResearchGapID)
	}
	if m.title != nil {
		fields = append(fields, gaptopic.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, gaptopic.FieldDescription)
	}
	if m.research_questions != nil {
		fields = append(fields, gaptopic.FieldResearchQuestions)
	}
	if m.methodology_suggestions != nil {
		fields = append(fields, gaptopic.FieldMethodologySuggestions)
	}
	if m.expected_outcomes != nil {
		fields = append(fields, gaptopic.FieldExpectedOutcomes)
	}
	if m.relevance_score != nil {
		fields = append(fields, gaptopic.FieldRelevanceScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GapTopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gaptopic.FieldResearchGapID:
		return m.ResearchGapID()
	case gaptopic.FieldTitle:
		return m.Title()
	case gaptopic.FieldDescription:
		return m.Description()
	case gaptopic.FieldResearchQuestions:
		return m.ResearchQuestions()
	case gaptopic.FieldMethodologySuggestions:
		return m.MethodologySuggestions()
	case gaptopic.FieldExpectedOutcomes:
		return m.ExpectedOutcomes()
	case gaptopic.FieldRelevanceScore:
		return m.RelevanceScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GapTopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gaptopic.FieldResearchGapID:
		return m.OldResearchGapID(ctx)
	case gaptopic.FieldTitle:
		return m.OldTitle(ctx)
	case gaptopic.FieldDescription:
		return m.OldDescription(ctx)
	case gaptopic.FieldResearchQuestions:
		return m.OldResearchQuestions(ctx)
	case gaptopic.FieldMethodologySuggestions:
		return m.OldMethodologySuggestions(ctx)
	case gaptopic.FieldExpectedOutcomes:
		return m.OldExpectedOutcomes(ctx)
	case gaptopic.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	}
	return nil, fmt.Errorf("unknown GapTopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapTopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gaptopic.FieldResearchGapID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchGapID(v)
		return nil
	case gaptopic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case gaptopic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case gaptopic.FieldResearchQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchQuestions(v)
		return nil
	case gaptopic.FieldMethodologySuggestions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethodologySuggestions(v)
		return nil
	case gaptopic.FieldExpectedOutcomes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutcomes(v)
		return nil
	case gaptopic.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown GapTopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GapTopicMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, gaptopic.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GapTopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gaptopic.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapTopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gaptopic.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown GapTopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GapTopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gaptopic.FieldDescription) {
		fields = append(fields, gaptopic.FieldDescription)
	}
	if m.FieldCleared(gaptopic.FieldResearchQuestions) {
		fields = append(fields, gaptopic.FieldResearchQuestions)
	}
	if m.FieldCleared(gaptopic.FieldMethodologySuggestions) {
		fields = append(fields, gaptopic.FieldMethodologySuggestions)
	}
	if m.FieldCleared(gaptopic.FieldExpectedOutcomes) {
		fields = append(fields, gaptopic.FieldExpectedOutcomes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GapTopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GapTopicMutation) ClearField(name string) error {
	switch name {
	case gaptopic.FieldDescription:
		m.ClearDescription()
		return nil
	case gaptopic.FieldResearchQuestions:
		m.ClearResearchQuestions()
		return nil
	case gaptopic.FieldMethodologySuggestions:
		m.ClearMethodologySuggestions()
		return nil
	case gaptopic.FieldExpectedOutcomes:
		m.ClearExpectedOutcomes()
		return nil
	}
	return fmt.Errorf("unknown GapTopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GapTopicMutation) ResetField(name string) error {
	switch name {
	case gaptopic.FieldResearchGapID:
		m.ResetResearchGapID()
		return nil
	case gaptopic.FieldTitle:
		m.ResetTitle()
		return nil
	case gaptopic.FieldDescription:
		m.ResetDescription()
		return nil
	case gaptopic.FieldResearchQuestions:
		m.ResetResearchQuestions()
		return nil
	case gaptopic.FieldMethodologySuggestions:
		m.ResetMethodologySuggestions()
		return nil
	case gaptopic.FieldExpectedOutcomes:
		m.ResetExpectedOutcomes()
		return nil
	case gaptopic.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	}
	return fmt.Errorf("unknown GapTopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GapTopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gap != nil {
		edges = append(edges, gaptopic.EdgeGap)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GapTopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gaptopic.EdgeGap:
		if id := m.gap; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GapTopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GapTopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GapTopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgap {
		edges = append(edges, gaptopic.EdgeGap)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GapTopicMutation) EdgeCleared(name string) bool {
	switch name {
	case gaptopic.EdgeGap:
		return m.clearedgap
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GapTopicMutation) ClearEdge(name string) error {
	switch name {
	case gaptopic.EdgeGap:
		m.ClearGap()
		return nil
	}
	return fmt.Errorf("unknown GapTopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GapTopicMutation) ResetEdge(name string) error {
	switch name {
	case gaptopic.EdgeGap:
		m.ResetGap()
		return nil
	}
	return fmt.Errorf("unknown GapTopic edge %s", name)
}

// GapValidationPaperMutation represents an operation that mutates the GapValidationPaper nodes in the graph.
type GapValidationPaperMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	title              *string
	doi                *string
	url                *string
	publication_date   *time.Time
	extraction_status  *string
	extracted_text     *string
	extraction_error   *string
	relevance_score    *float64
	addrelevance_score *float64
	supports_gap       *bool
	conflicts_with_gap *bool
	key_findings       *string
	clearedFields      map[string]struct{}
	gap                *uuid.UUID
	clearedgap         bool
	done               bool
	oldValue           func(context.Context) (*GapValidationPaper, error)
	predicates         []predicate.GapValidationPaper
}

var _ ent.Mutation = (*GapValidationPaperMutation)(nil)

// gapvalidationpaperOption allows management of the mutation configuration using functional options.
type gapvalidationpaperOption func(*GapValidationPaperMutation)

// newGapValidationPaperMutation creates new mutation for the GapValidationPaper entity.
func newGapValidationPaperMutation(c config, op Op, opts ...gapvalidationpaperOption) *GapValidationPaperMutation {
	m := &GapValidationPaperMutation{
		config:        c,
		op:            op,
		typ:           TypeGapValidationPaper,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGapValidationPaperID sets the ID field of the mutation.
func withGapValidationPaperID(id uuid.UUID) gapvalidationpaperOption {
	return func(m *GapValidationPaperMutation) {
		var (
			err   error
			once  sync.Once
			value *GapValidationPaper
		)
		m.oldValue = func(ctx context.Context) (*GapValidationPaper, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GapValidationPaper.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGapValidationPaper sets the old GapValidationPaper of the mutation.
func withGapValidationPaper(node *GapValidationPaper) gapvalidationpaperOption {
	return func(m *GapValidationPaperMutation) {
		m.oldValue = func(context.Context) (*GapValidationPaper, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GapValidationPaperMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GapValidationPaperMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GapValidationPaper entities.
func (m *GapValidationPaperMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GapValidationPaperMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GapValidationPaperMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GapValidationPaper.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResearchGapID sets the "research_gap_id" field.
func (m *GapValidationPaperMutation) SetResearchGapID(u uuid.UUID) {
	m.gap = &u
}

// ResearchGapID returns the value of the "research_gap_id" field in the mutation.
func (m *GapValidationPaperMutation) ResearchGapID() (r uuid.UUID, exists bool) {
	v := m.gap
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchGapID returns the old "research_gap_id" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldResearchGapID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchGapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchGapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchGapID: %w", err)
	}
	return oldValue.ResearchGapID, nil
}

// ResetResearchGapID resets all changes to the "research_gap_id" field.
func (m *GapValidationPaperMutation) ResetResearchGapID() {
	m.gap = nil
}

// SetTitle sets the "title" field.
func (m *GapValidationPaperMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GapValidationPaperMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GapValidationPaperMutation) ResetTitle() {
	m.title = nil
}

// SetDoi sets the "doi" field.
func (m *GapValidationPaperMutation) SetDoi(s string) {
	m.doi = &s
}

// Doi returns the value of the "doi" field in the mutation.
func (m *GapValidationPaperMutation) Doi() (r string, exists bool) {
	v := m.doi
	if v == nil {
		return
	}
	return *v, true
}

// OldDoi returns the old "doi" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldDoi(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoi: %w", err)
	}
	return oldValue.Doi, nil
}

// ClearDoi clears the value of the "doi" field.
func (m *GapValidationPaperMutation) ClearDoi() {
	m.doi = nil
	m.clearedFields[gapvalidationpaper.FieldDoi] = struct{}{}
}

// DoiCleared returns if the "doi" field was cleared in this mutation.
func (m *GapValidationPaperMutation) DoiCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldDoi]
	return ok
}

// ResetDoi resets all changes to the "doi" field.
func (m *GapValidationPaperMutation) ResetDoi() {
	m.doi = nil
	delete(m.clearedFields, gapvalidationpaper.FieldDoi)
}

// SetURL sets the "url" field.
func (m *GapValidationPaperMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *GapValidationPaperMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *GapValidationPaperMutation) ClearURL() {
	m.url = nil
	m.clearedFields[gapvalidationpaper.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *GapValidationPaperMutation) URLCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *GapValidationPaperMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, gapvalidationpaper.FieldURL)
}

// SetPublicationDate sets the "publication_date" field.
func (m *GapValidationPaperMutation) SetPublicationDate(t time.Time) {
	m.publication_date = &t
}

// PublicationDate returns the value of the "publication_date" field in the mutation.
func (m *GapValidationPaperMutation) PublicationDate() (r time.Time, exists bool) {
	v := m.publication_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationDate returns the old "publication_date" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldPublicationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationDate: %w", err)
	}
	return oldValue.PublicationDate, nil
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (m *GapValidationPaperMutation) ClearPublicationDate() {
	m.publication_date = nil
	m.clearedFields[gapvalidationpaper.FieldPublicationDate] = struct{}{}
}

// PublicationDateCleared returns if the "publication_date" field was cleared in this mutation.
func (m *GapValidationPaperMutation) PublicationDateCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldPublicationDate]
	return ok
}

// ResetPublicationDate resets all changes to the "publication_date" field.
func (m *GapValidationPaperMutation) ResetPublicationDate() {
	m.publication_date = nil
	delete(m.clearedFields, gapvalidationpaper.FieldPublicationDate)
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *GapValidationPaperMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *GapValidationPaperMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldExtractionStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (m *GapValidationPaperMutation) ClearExtractionStatus() {
	m.extraction_status = nil
	m.clearedFields[gapvalidationpaper.FieldExtractionStatus] = struct{}{}
}

// ExtractionStatusCleared returns if the "extraction_status" field was cleared in this mutation.
func (m *GapValidationPaperMutation) ExtractionStatusCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldExtractionStatus]
	return ok
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *GapValidationPaperMutation) ResetExtractionStatus() {
	m.extraction_status = nil
	delete(m.clearedFields, gapvalidationpaper.FieldExtractionStatus)
}

// SetExtractedText sets the "extracted_text" field.
func (m *GapValidationPaperMutation) SetExtractedText(s string) {
	m.extracted_text = &s
}

// ExtractedText returns the value of the "extracted_text" field in the mutation.
func (m *GapValidationPaperMutation) ExtractedText() (r string, exists bool) {
	v := m.extracted_text
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedText returns the old "extracted_text" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldExtractedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedText: %w", err)
	}
	return oldValue.ExtractedText, nil
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (m *GapValidationPaperMutation) ClearExtractedText() {
	m.extracted_text = nil
	m.clearedFields[gapvalidationpaper.FieldExtractedText] = struct{}{}
}

// ExtractedTextCleared returns if the "extracted_text" field was cleared in this mutation.
func (m *GapValidationPaperMutation) ExtractedTextCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldExtractedText]
	return ok
}

// ResetExtractedText resets all changes to the "extracted_text" field.
func (m *GapValidationPaperMutation) ResetExtractedText() {
	m.extracted_text = nil
	delete(m.clearedFields, gapvalidationpaper.FieldExtractedText)
}

// SetExtractionError sets the "extraction_error" field.
func (m *GapValidationPaperMutation) SetExtractionError(s string) {
	m.extraction_error = &s
}

// ExtractionError returns the value of the "extraction_error" field in the mutation.
func (m *GapValidationPaperMutation) ExtractionError() (r string, exists bool) {
	v := m.extraction_error
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionError returns the old "extraction_error" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldExtractionError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionError: %w", err)
	}
	return oldValue.ExtractionError, nil
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (m *GapValidationPaperMutation) ClearExtractionError() {
	m.extraction_error = nil
	m.clearedFields[gapvalidationpaper.FieldExtractionError] = struct{}{}
}

// ExtractionErrorCleared returns if the "extraction_error" field was cleared in this mutation.
func (m *GapValidationPaperMutation) ExtractionErrorCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldExtractionError]
	return ok
}

// ResetExtractionError resets all changes to the "extraction_error" field.
func (m *GapValidationPaperMutation) ResetExtractionError() {
	m.extraction_error = nil
	delete(m.clearedFields, gapvalidationpaper.FieldExtractionError)
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *GapValidationPaperMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *GapValidationPaperMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldRelevanceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *GapValidationPaperMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *GapValidationPaperMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (m *GapValidationPaperMutation) ClearRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
	m.clearedFields[gapvalidationpaper.FieldRelevanceScore] = struct{}{}
}

// RelevanceScoreCleared returns if the "relevance_score" field was cleared in this mutation.
func (m *GapValidationPaperMutation) RelevanceScoreCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldRelevanceScore]
	return ok
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *GapValidationPaperMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
	delete(m.clearedFields, gapvalidationpaper.FieldRelevanceScore)
}

// SetSupportsGap sets the "supports_gap" field.
func (m *GapValidationPaperMutation) SetSupportsGap(b bool) {
	m.supports_gap = &b
}

// SupportsGap returns the value of the "supports_gap" field in the mutation.
func (m *GapValidationPaperMutation) SupportsGap() (r bool, exists bool) {
	v := m.supports_gap
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportsGap returns the old "supports_gap" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldSupportsGap(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportsGap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportsGap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportsGap: %w", err)
	}
	return oldValue.SupportsGap, nil
}

// ResetSupportsGap resets all changes to the "supports_gap" field.
func (m *GapValidationPaperMutation) ResetSupportsGap() {
	m.supports_gap = nil
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (m *GapValidationPaperMutation) SetConflictsWithGap(b bool) {
	m.conflicts_with_gap = &b
}

// ConflictsWithGap returns the value of the "conflicts_with_gap" field in the mutation.
func (m *GapValidationPaperMutation) ConflictsWithGap() (r bool, exists bool) {
	v := m.conflicts_with_gap
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictsWithGap returns the old "conflicts_with_gap" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldConflictsWithGap(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictsWithGap is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictsWithGap requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictsWithGap: %w", err)
	}
	return oldValue.ConflictsWithGap, nil
}

// ResetConflictsWithGap resets all changes to the "conflicts_with_gap" field.
func (m *GapValidationPaperMutation) ResetConflictsWithGap() {
	m.conflicts_with_gap = nil
}

// SetKeyFindings sets the "key_findings" field.
func (m *GapValidationPaperMutation) SetKeyFindings(s string) {
	m.key_findings = &s
}

// KeyFindings returns the value of the "key_findings" field in the mutation.
func (m *GapValidationPaperMutation) KeyFindings() (r string, exists bool) {
	v := m.key_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFindings returns the old "key_findings" field's value of the GapValidationPaper entity.
// If the GapValidationPaper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapValidationPaperMutation) OldKeyFindings(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFindings: %w", err)
	}
	return oldValue.KeyFindings, nil
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (m *GapValidationPaperMutation) ClearKeyFindings() {
	m.key_findings = nil
	m.clearedFields[gapvalidationpaper.FieldKeyFindings] = struct{}{}
}

// KeyFindingsCleared returns if the "key_findings" field was cleared in this mutation.
func (m *GapValidationPaperMutation) KeyFindingsCleared() bool {
	_, ok := m.clearedFields[gapvalidationpaper.FieldKeyFindings]
	return ok
}

// ResetKeyFindings resets all changes to the "key_findings" field.
func (m *GapValidationPaperMutation) ResetKeyFindings() {
	m.key_findings = nil
	delete(m.clearedFields, gapvalidationpaper.FieldKeyFindings)
}

// SetGapID sets the "gap" edge to the ResearchGap entity by id.
func (m *GapValidationPaperMutation) SetGapID(id uuid.UUID) {
	m.gap = &id
}

// ClearGap clears the "gap" edge to the ResearchGap entity.
func (m *GapValidationPaperMutation) ClearGap() {
	m.clearedgap = true
	m.clearedFields[gapvalidationpaper.FieldResearchGapID] = struct{}{}
}

// GapCleared reports if the "gap" edge to the ResearchGap entity was cleared.
func (m *GapValidationPaperMutation) GapCleared() bool {
	return m.clearedgap
}

// GapID returns the "gap" edge ID in the mutation.
func (m *GapValidationPaperMutation) GapID() (id uuid.UUID, exists bool) {
	if m.gap != nil {
		return *m.gap, true
	}
	return
}

// GapIDs returns the "gap" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GapID instead. It exists only for internal usage by the builders.
func (m *GapValidationPaperMutation) GapIDs() (ids []uuid.UUID) {
	if id := m.gap; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGap resets all changes to the "gap" edge.
func (m *GapValidationPaperMutation) ResetGap() {
	m.gap = nil
	m.clearedgap = false
}

// Where appends a list predicates to the GapValidationPaperMutation builder.
func (m *GapValidationPaperMutation) Where(ps ...predicate.GapValidationPaper) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GapValidationPaperMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GapValidationPaperMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GapValidationPaper, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GapValidationPaperMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GapValidationPaperMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GapValidationPaper).
func (m *GapValidationPaperMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GapValidationPaperMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.gap != nil {
		fields = append(fields, gapvalidationpaper.FieldResearchGapID)
	}
	if m.title != nil {
		fields = append(fields, gapvalidationpaper.FieldTitle)
	}
	if m.doi != nil {
		fields = append(fields, gapvalidationpaper.FieldDoi)
	}
	if m.url != nil {
		fields = append(fields, gapvalidationpaper.FieldURL)
	}
	if m.publication_date != nil {
		fields = append(fields, gapvalidationpaper.FieldPublicationDate)
	}
	if m.extraction_status != nil {
		fields = append(fields, gapvalidationpaper.FieldExtractionStatus)
	}
	if m.extracted_text != nil {
		fields = append(fields, gapvalidationpaper.FieldExtractedText)
	}
	if m.extraction_error != nil {
		fields = append(fields, gapvalidationpaper.FieldExtractionError)
	}
	if m.relevance_score != nil {
		fields = append(fields, gapvalidationpaper.FieldRelevanceScore)
	}
	if m.supports_gap != nil {
		fields = append(fields, gapvalidationpaper.FieldSupportsGap)
	}
	if m.conflicts_with_gap != nil {
		fields = append(fields, gapvalidationpaper.FieldConflictsWithGap)
	}
	if m.key_findings != nil {
		fields = append(fields, gapvalidationpaper.FieldKeyFindings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GapValidationPaperMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gapvalidationpaper.FieldResearchGapID:
		return m.ResearchGapID()
	case gapvalidationpaper.FieldTitle:
		return m.Title()
	case gapvalidationpaper.FieldDoi:
		return m.Doi()
	case gapvalidationpaper.FieldURL:
		return m.URL()
	case gapvalidationpaper.FieldPublicationDate:
		return m.PublicationDate()
	case gapvalidationpaper.FieldExtractionStatus:
		return m.ExtractionStatus()
	case gapvalidationpaper.FieldExtractedText:
		return m.ExtractedText()
	case gapvalidationpaper.FieldExtractionError:
		return m.ExtractionError()
	case gapvalidationpaper.FieldRelevanceScore:
		return m.RelevanceScore()
	case gapvalidationpaper.FieldSupportsGap:
		return m.SupportsGap()
	case gapvalidationpaper.FieldConflictsWithGap:
		return m.ConflictsWithGap()
	case gapvalidationpaper.FieldKeyFindings:
		return m.KeyFindings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GapValidationPaperMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gapvalidationpaper.FieldResearchGapID:
		return m.OldResearchGapID(ctx)
	case gapvalidationpaper.FieldTitle:
		return m.OldTitle(ctx)
	case gapvalidationpaper.FieldDoi:
		return m.OldDoi(ctx)
	case gapvalidationpaper.FieldURL:
		return m.OldURL(ctx)
	case gapvalidationpaper.FieldPublicationDate:
		return m.OldPublicationDate(ctx)
	case gapvalidationpaper.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case gapvalidationpaper.FieldExtractedText:
		return m.OldExtractedText(ctx)
	case gapvalidationpaper.FieldExtractionError:
		return m.OldExtractionError(ctx)
	case gapvalidationpaper.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case gapvalidationpaper.FieldSupportsGap:
		return m.OldSupportsGap(ctx)
	case gapvalidationpaper.FieldConflictsWithGap:
		return m.OldConflictsWithGap(ctx)
	case gapvalidationpaper.FieldKeyFindings:
		return m.OldKeyFindings(ctx)
	}
	return nil, fmt.Errorf("unknown GapValidationPaper field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapValidationPaperMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gapvalidationpaper.FieldResearchGapID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchGapID(v)
		return nil
	case gapvalidationpaper.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case gapvalidationpaper.FieldDoi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoi(v)
		return nil
	case gapvalidationpaper.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case gapvalidationpaper.FieldPublicationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationDate(v)
		return nil
	case gapvalidationpaper.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case gapvalidationpaper.FieldExtractedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedText(v)
		return nil
	case gapvalidationpaper.FieldExtractionError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionError(v)
		return nil
	case gapvalidationpaper.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case gapvalidationpaper.FieldSupportsGap:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportsGap(v)
		return nil
	case gapvalidationpaper.FieldConflictsWithGap:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictsWithGap(v)
		return nil
	case gapvalidationpaper.FieldKeyFindings:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFindings(v)
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GapValidationPaperMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, gapvalidationpaper.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GapValidationPaperMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gapvalidationpaper.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapValidationPaperMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gapvalidationpaper.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GapValidationPaperMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gapvalidationpaper.FieldDoi) {
		fields = append(fields, gapvalidationpaper.FieldDoi)
	}
	if m.FieldCleared(gapvalidationpaper.FieldURL) {
		fields = append(fields, gapvalidationpaper.FieldURL)
	}
	if m.FieldCleared(gapvalidationpaper.FieldPublicationDate) {
		fields = append(fields, gapvalidationpaper.FieldPublicationDate)
	}
	if m.FieldCleared(gapvalidationpaper.FieldExtractionStatus) {
		fields = append(fields, gapvalidationpaper.FieldExtractionStatus)
	}
	if m.FieldCleared(gapvalidationpaper.FieldExtractedText) {
		fields = append(fields, gapvalidationpaper.FieldExtractedText)
	}
	if m.FieldCleared(gapvalidationpaper.FieldExtractionError) {
		fields = append(fields, gapvalidationpaper.FieldExtractionError)
	}
	if m.FieldCleared(gapvalidationpaper.FieldRelevanceScore) {
		fields = append(fields, gapvalidationpaper.FieldRelevanceScore)
	}
	if m.FieldCleared(gapvalidationpaper.FieldKeyFindings) {
		fields = append(fields, gapvalidationpaper.FieldKeyFindings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GapValidationPaperMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GapValidationPaperMutation) ClearField(name string) error {
	switch name {
	case gapvalidationpaper.FieldDoi:
		m.ClearDoi()
		return nil
	case gapvalidationpaper.FieldURL:
		m.ClearURL()
		return nil
	case gapvalidationpaper.FieldPublicationDate:
		m.ClearPublicationDate()
		return nil
	case gapvalidationpaper.FieldExtractionStatus:
		m.ClearExtractionStatus()
		return nil
	case gapvalidationpaper.FieldExtractedText:
		m.ClearExtractedText()
		return nil
	case gapvalidationpaper.FieldExtractionError:
		m.ClearExtractionError()
		return nil
	case gapvalidationpaper.FieldRelevanceScore:
		m.ClearRelevanceScore()
		return nil
	case gapvalidationpaper.FieldKeyFindings:
		m.ClearKeyFindings()
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GapValidationPaperMutation) ResetField(name string) error {
	switch name {
	case gapvalidationpaper.FieldResearchGapID:
		m.ResetResearchGapID()
		return nil
	case gapvalidationpaper.FieldTitle:
		m.ResetTitle()
		return nil
	case gapvalidationpaper.FieldDoi:
		m.ResetDoi()
		return nil
	case gapvalidationpaper.FieldURL:
		m.ResetURL()
		return nil
	case gapvalidationpaper.FieldPublicationDate:
		m.ResetPublicationDate()
		return nil
	case gapvalidationpaper.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case gapvalidationpaper.FieldExtractedText:
		m.ResetExtractedText()
		return nil
	case gapvalidationpaper.FieldExtractionError:
		m.ResetExtractionError()
		return nil
	case gapvalidationpaper.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case gapvalidationpaper.FieldSupportsGap:
		m.ResetSupportsGap()
		return nil
	case gapvalidationpaper.FieldConflictsWithGap:
		m.ResetConflictsWithGap()
		return nil
	case gapvalidationpaper.FieldKeyFindings:
		m.ResetKeyFindings()
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GapValidationPaperMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gap != nil {
		edges = append(edges, gapvalidationpaper.EdgeGap)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GapValidationPaperMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gapvalidationpaper.EdgeGap:
		if id := m.gap; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GapValidationPaperMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GapValidationPaperMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GapValidationPaperMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgap {
		edges = append(edges, gapvalidationpaper.EdgeGap)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GapValidationPaperMutation) EdgeCleared(name string) bool {
	switch name {
	case gapvalidationpaper.EdgeGap:
		return m.clearedgap
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GapValidationPaperMutation) ClearEdge(name string) error {
	switch name {
	case gapvalidationpaper.EdgeGap:
		m.ClearGap()
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GapValidationPaperMutation) ResetEdge(name string) error {
	switch name {
	case gapvalidationpaper.EdgeGap:
		m.ResetGap()
		return nil
	}
	return fmt.Errorf("unknown GapValidationPaper edge %s", name)
}

// PaperMutation represents an operation that mutates the Paper nodes in the graph.
type PaperMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	correlation_id   *string
	title            *string
	abstract_text    *string
	publication_date *time.Time
	doi              *string
	source           *string
	pdf_content_url  *string
	pdf_url          *string
	is_open_access   *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Paper, error)
	predicates       []predicate.Paper
}

var _ ent.Mutation = (*PaperMutation)(nil)

// paperOption allows management of the mutation configuration using functional options.
type paperOption func(*PaperMutation)

// newPaperMutation creates new mutation for the Paper entity.
func newPaperMutation(c config, op Op, opts ...paperOption) *PaperMutation {
	m := &PaperMutation{
		config:        c,
		op:            op,
		typ:           TypePaper,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperID sets the ID field of the mutation.
func withPaperID(id uuid.UUID) paperOption {
	return func(m *PaperMutation) {
		var (
			err   error
			once  sync.Once
			value *Paper
		)
		m.oldValue = func(ctx context.Context) (*Paper, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paper.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaper sets the old Paper of the mutation.
func withPaper(node *Paper) paperOption {
	return func(m *PaperMutation) {
		m.oldValue = func(context.Context) (*Paper, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paper entities.
func (m *PaperMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paper.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCorrelationID sets the "correlation_id" field.
func (m *PaperMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *PaperMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *PaperMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[paper.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *PaperMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[paper.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *PaperMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, paper.FieldCorrelationID)
}

// SetTitle sets the "title" field.
func (m *PaperMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperMutation) ResetTitle() {
	m.title = nil
}

// SetAbstractText sets the "abstract_text" field.
func (m *PaperMutation) SetAbstractText(s string) {
	m.abstract_text = &s
}

// AbstractText returns the value of the "abstract_text" field in the mutation.
func (m *PaperMutation) AbstractText() (r string, exists bool) {
	v := m.abstract_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAbstractText returns the old "abstract_text" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldAbstractText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbstractText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbstractText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbstractText: %w", err)
	}
	return oldValue.AbstractText, nil
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (m *PaperMutation) ClearAbstractText() {
	m.abstract_text = nil
	m.clearedFields[paper.FieldAbstractText] = struct{}{}
}

// AbstractTextCleared returns if the "abstract_text" field was cleared in this mutation.
func (m *PaperMutation) AbstractTextCleared() bool {
	_, ok := m.clearedFields[paper.FieldAbstractText]
	return ok
}

// ResetAbstractText resets all changes to the "abstract_text" field.
func (m *PaperMutation) ResetAbstractText() {
	m.abstract_text = nil
	delete(m.clearedFields, paper.FieldAbstractText)
}

// SetPublicationDate sets the "publication_date" field.
func (m *PaperMutation) SetPublicationDate(t time.Time) {
	m.publication_date = &t
}

// PublicationDate returns the value of the "publication_date" field in the mutation.
func (m *PaperMutation) PublicationDate() (r time.Time, exists bool) {
	v := m.publication_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationDate returns the old "publication_date" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldPublicationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationDate: %w", err)
	}
	return oldValue.PublicationDate, nil
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (m *PaperMutation) ClearPublicationDate() {
	m.publication_date = nil
	m.clearedFields[paper.FieldPublicationDate] = struct{}{}
}

// PublicationDateCleared returns if the "publication_date" field was cleared in this mutation.
func (m *PaperMutation) PublicationDateCleared() bool {
	_, ok := m.clearedFields[paper.FieldPublicationDate]
	return ok
}

// ResetPublicationDate resets all changes to the "publication_date" field.
func (m *PaperMutation) ResetPublicationDate() {
	m.publication_date = nil
	delete(m.clearedFields, paper.FieldPublicationDate)
}

// SetDoi sets the "doi" field.
func (m *PaperMutation) SetDoi(s string) {
	m.doi = &s
}

// Doi returns the value of the "doi" field in the mutation.
func (m *PaperMutation) Doi() (r string, exists bool) {
	v := m.doi
	if v == nil {
		return
	}
	return *v, true
}

// OldDoi returns the old "doi" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldDoi(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoi: %w", err)
	}
	return oldValue.Doi, nil
}

// ClearDoi clears the value of the "doi" field.
func (m *PaperMutation) ClearDoi() {
	m.doi = nil
	m.clearedFields[paper.FieldDoi] = struct{}{}
}

// DoiCleared returns if the "doi" field was cleared in this mutation.
func (m *PaperMutation) DoiCleared() bool {
	_, ok := m.clearedFields[paper.FieldDoi]
	return ok
}

// ResetDoi resets all changes to the "doi" field.
func (m *PaperMutation) ResetDoi() {
	m.doi = nil
	delete(m.clearedFields, paper.FieldDoi)
}

// SetSource sets the "source" field.
func (m *PaperMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *PaperMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *PaperMutation) ClearSource() {
	m.source = nil
	m.clearedFields[paper.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *PaperMutation) SourceCleared() bool {
	_, ok := m.clearedFields[paper.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *PaperMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, paper.FieldSource)
}

// SetPdfContentURL sets the "pdf_content_url" field.
func (m *PaperMutation) SetPdfContentURL(s string) {
	m.pdf_content_url = &s
}

// PdfContentURL returns the value of the "pdf_content_url" field in the mutation.
func (m *PaperMutation) PdfContentURL() (r string, exists bool) {
	v := m.pdf_content_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfContentURL returns the old "pdf_content_url" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldPdfContentURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfContentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfContentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfContentURL: %w", err)
	}
	return oldValue.PdfContentURL, nil
}

// ClearPdfContentURL clears the value of the "pdf_content_url" field.
func (m *PaperMutation) ClearPdfContentURL() {
	m.pdf_content_url = nil
	m.clearedFields[paper.FieldPdfContentURL] = struct{}{}
}

// PdfContentURLCleared returns if the "pdf_content_url" field was cleared in this mutation.
func (m *PaperMutation) PdfContentURLCleared() bool {
	_, ok := m.clearedFields[paper.FieldPdfContentURL]
	return ok
}

// ResetPdfContentURL resets all changes to the "pdf_content_url" field.
func (m *PaperMutation) ResetPdfContentURL() {
	m.pdf_content_url = nil
	delete(m.clearedFields, paper.FieldPdfContentURL)
}

// SetPdfURL sets the "pdf_url" field.
func (m *PaperMutation) SetPdfURL(s string) {
	m.pdf_url = &s
}

// PdfURL returns the value of the "pdf_url" field in the mutation.
func (m *PaperMutation) PdfURL() (r string, exists bool) {
	v := m.pdf_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPdfURL returns the old "pdf_url" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldPdfURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPdfURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPdfURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPdfURL: %w", err)
	}
	return oldValue.PdfURL, nil
}

// ClearPdfURL clears the value of the "pdf_url" field.
func (m *PaperMutation) ClearPdfURL() {
	m.pdf_url = nil
	m.clearedFields[paper.FieldPdfURL] = struct{}{}
}

// PdfURLCleared returns if the "pdf_url" field was cleared in this mutation.
func (m *PaperMutation) PdfURLCleared() bool {
	_, ok := m.clearedFields[paper.FieldPdfURL]
	return ok
}

// ResetPdfURL resets all changes to the "pdf_url" field.
func (m *PaperMutation) ResetPdfURL() {
	m.pdf_url = nil
	delete(m.clearedFields, paper.FieldPdfURL)
}

// SetIsOpenAccess sets the "is_open_access" field.
func (m *PaperMutation) SetIsOpenAccess(b bool) {
	m.is_open_access = &b
}

// IsOpenAccess returns the value of the "is_open_access" field in the mutation.
func (m *PaperMutation) IsOpenAccess() (r bool, exists bool) {
	v := m.is_open_access
	if v == nil {
		return
	}
	return *v, true
}

// OldIsOpenAccess returns the old "is_open_access" field's value of the Paper entity.
// If the Paper object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperMutation) OldIsOpenAccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsOpenAccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsOpenAccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsOpenAccess: %w", err)
	}
	return oldValue.IsOpenAccess, nil
}

// ResetIsOpenAccess resets all changes to the "is_open_access" field.
func (m *PaperMutation) ResetIsOpenAccess() {
	m.is_open_access = nil
}

// Where appends a list predicates to the PaperMutation builder.
func (m *PaperMutation) Where(ps ...predicate.Paper) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paper, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paper).
func (m *PaperMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.correlation_id != nil {
		fields = append(fields, paper.FieldCorrelationID)
	}
	if m.title != nil {
		fields = append(fields, paper.FieldTitle)
	}
	if m.abstract_text != nil {
		fields = append(fields, paper.FieldAbstractText)
	}
	if m.publication_date != nil {
		fields = append(fields, paper.FieldPublicationDate)
	}
	if m.doi != nil {
		fields = append(fields, paper.FieldDoi)
	}
	if m.source != nil {
		fields = append(fields, paper.FieldSource)
	}
	if m.pdf_content_url != nil {
		fields = append(fields, paper.FieldPdfContentURL)
	}
	if m.pdf_url != nil {
		fields = append(fields, paper.FieldPdfURL)
	}
	if m.is_open_access != nil {
		fields = append(fields, paper.FieldIsOpenAccess)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paper.FieldCorrelationID:
		return m.CorrelationID()
	case paper.FieldTitle:
		return m.Title()
	case paper.FieldAbstractText:
		return m.AbstractText()
	case paper.FieldPublicationDate:
		return m.PublicationDate()
	case paper.FieldDoi:
		return m.Doi()
	case paper.FieldSource:
		return m.Source()
	case paper.FieldPdfContentURL:
		return m.PdfContentURL()
	case paper.FieldPdfURL:
		return m.PdfURL()
	case paper.FieldIsOpenAccess:
		return m.IsOpenAccess()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paper.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case paper.FieldTitle:
		return m.OldTitle(ctx)
	case paper.FieldAbstractText:
		return m.OldAbstractText(ctx)
	case paper.FieldPublicationDate:
		return m.OldPublicationDate(ctx)
	case paper.FieldDoi:
		return m.OldDoi(ctx)
	case paper.FieldSource:
		return m.OldSource(ctx)
	case paper.FieldPdfContentURL:
		return m.OldPdfContentURL(ctx)
	case paper.FieldPdfURL:
		return m.OldPdfURL(ctx)
	case paper.FieldIsOpenAccess:
		return m.OldIsOpenAccess(ctx)
	}
	return nil, fmt.Errorf("unknown Paper field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paper.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case paper.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case paper.FieldAbstractText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbstractText(v)
		return nil
	case paper.FieldPublicationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationDate(v)
		return nil
	case paper.FieldDoi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoi(v)
		return nil
	case paper.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case paper.FieldPdfContentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfContentURL(v)
		return nil
	case paper.FieldPdfURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPdfURL(v)
		return nil
	case paper.FieldIsOpenAccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsOpenAccess(v)
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Paper numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paper.FieldCorrelationID) {
		fields = append(fields, paper.FieldCorrelationID)
	}
	if m.FieldCleared(paper.FieldAbstractText) {
		fields = append(fields, paper.FieldAbstractText)
	}
	if m.FieldCleared(paper.FieldPublicationDate) {
		fields = append(fields, paper.FieldPublicationDate)
	}
	if m.FieldCleared(paper.FieldDoi) {
		fields = append(fields, paper.FieldDoi)
	}
	if m.FieldCleared(paper.FieldSource) {
		fields = append(fields, paper.FieldSource)
	}
	if m.FieldCleared(paper.FieldPdfContentURL) {
		fields = append(fields, paper.FieldPdfContentURL)
	}
	if m.FieldCleared(paper.FieldPdfURL) {
		fields = append(fields, paper.FieldPdfURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperMutation) ClearField(name string) error {
	switch name {
	case paper.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case paper.FieldAbstractText:
		m.ClearAbstractText()
		return nil
	case paper.FieldPublicationDate:
		m.ClearPublicationDate()
		return nil
	case paper.FieldDoi:
		m.ClearDoi()
		return nil
	case paper.FieldSource:
		m.ClearSource()
		return nil
	case paper.FieldPdfContentURL:
		m.ClearPdfContentURL()
		return nil
	case paper.FieldPdfURL:
		m.ClearPdfURL()
		return nil
	}
	return fmt.Errorf("unknown Paper nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperMutation) ResetField(name string) error {
	switch name {
	case paper.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case paper.FieldTitle:
		m.ResetTitle()
		return nil
	case paper.FieldAbstractText:
		m.ResetAbstractText()
		return nil
	case paper.FieldPublicationDate:
		m.ResetPublicationDate()
		return nil
	case paper.FieldDoi:
		m.ResetDoi()
		return nil
	case paper.FieldSource:
		m.ResetSource()
		return nil
	case paper.FieldPdfContentURL:
		m.ResetPdfContentURL()
		return nil
	case paper.FieldPdfURL:
		m.ResetPdfURL()
		return nil
	case paper.FieldIsOpenAccess:
		m.ResetIsOpenAccess()
		return nil
	}
	return fmt.Errorf("unknown Paper field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Paper unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Paper edge %s", name)
}

// PaperExtractionMutation represents an operation that mutates the PaperExtraction nodes in the graph.
type PaperExtractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	paper_id               *uuid.UUID
	extraction_id          *string
	title                  *string
	abstract_text          *string
	language               *string
	page_count             *int
	addpage_count          *int
	extraction_coverage    *float64
	addextraction_coverage *float64
	clearedFields          map[string]struct{}
	sections               map[uuid.UUID]struct{}
	removedsections        map[uuid.UUID]struct{}
	clearedsections        bool
	figures                map[uuid.UUID]struct{}
	removedfigures         map[uuid.UUID]struct{}
	clearedfigures         bool
	tables                 map[uuid.UUID]struct{}
	removedtables          map[uuid.UUID]struct{}
	clearedtables          bool
	done                   bool
	oldValue               func(context.Context) (*PaperExtraction, error)
	predicates             []predicate.PaperExtraction
}

var _ ent.Mutation = (*PaperExtractionMutation)(nil)

// paperextractionOption allows management of the mutation configuration using functional options.
type paperextractionOption func(*PaperExtractionMutation)

// newPaperExtractionMutation creates new mutation for the PaperExtraction entity.
func newPaperExtractionMutation(c config, op Op, opts ...paperextractionOption) *PaperExtractionMutation {
	m := &PaperExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypePaperExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaperExtractionID sets the ID field of the mutation.
func withPaperExtractionID(id uuid.UUID) paperextractionOption {
	return func(m *PaperExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *PaperExtraction
		)
		m.oldValue = func(ctx context.Context) (*PaperExtraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaperExtraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaperExtraction sets the old PaperExtraction of the mutation.
func withPaperExtraction(node *PaperExtraction) paperextractionOption {
	return func(m *PaperExtractionMutation) {
		m.oldValue = func(context.Context) (*PaperExtraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaperExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaperExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaperExtraction entities.
func (m *PaperExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaperExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaperExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaperExtraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPaperID sets the "paper_id" field.
func (m *PaperExtractionMutation) SetPaperID(u uuid.UUID) {
	m.paper_id = &u
}

// PaperID returns the value of the "paper_id" field in the mutation.
func (m *PaperExtractionMutation) PaperID() (r uuid.UUID, exists bool) {
	v := m.paper_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaperID returns the old "paper_id" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldPaperID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaperID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaperID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaperID: %w", err)
	}
	return oldValue.PaperID, nil
}

// ResetPaperID resets all changes to the "paper_id" field.
func (m *PaperExtractionMutation) ResetPaperID() {
	m.paper_id = nil
}

// SetExtractionID sets the "extraction_id" field.
func (m *PaperExtractionMutation) SetExtractionID(s string) {
	m.extraction_id = &s
}

// ExtractionID returns the value of the "extraction_id" field in the mutation.
func (m *PaperExtractionMutation) ExtractionID() (r string, exists bool) {
	v := m.extraction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionID returns the old "extraction_id" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldExtractionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionID: %w", err)
	}
	return oldValue.ExtractionID, nil
}

// ClearExtractionID clears the value of the "extraction_id" field.
func (m *PaperExtractionMutation) ClearExtractionID() {
	m.extraction_id = nil
	m.clearedFields[paperextraction.FieldExtractionID] = struct{}{}
}

// ExtractionIDCleared returns if the "extraction_id" field was cleared in this mutation.
func (m *PaperExtractionMutation) ExtractionIDCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldExtractionID]
	return ok
}

// ResetExtractionID resets all changes to the "extraction_id" field.
func (m *PaperExtractionMutation) ResetExtractionID() {
	m.extraction_id = nil
	delete(m.clearedFields, paperextraction.FieldExtractionID)
}

// SetTitle sets the "title" field.
func (m *PaperExtractionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PaperExtractionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *PaperExtractionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[paperextraction.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *PaperExtractionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *PaperExtractionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, paperextraction.FieldTitle)
}

// SetAbstractText sets the "abstract_text" field.
func (m *PaperExtractionMutation) SetAbstractText(s string) {
	m.abstract_text = &s
}

// AbstractText returns the value of the "abstract_text" field in the mutation.
func (m *PaperExtractionMutation) AbstractText() (r string, exists bool) {
	v := m.abstract_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAbstractText returns the old "abstract_text" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldAbstractText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbstractText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbstractText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbstractText: %w", err)
	}
	return oldValue.AbstractText, nil
}

// ClearAbstractText clears the value of the "abstract_text" field.
func (m *PaperExtractionMutation) ClearAbstractText() {
	m.abstract_text = nil
	m.clearedFields[paperextraction.FieldAbstractText] = struct{}{}
}

// AbstractTextCleared returns if the "abstract_text" field was cleared in this mutation.
func (m *PaperExtractionMutation) AbstractTextCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldAbstractText]
	return ok
}

// ResetAbstractText resets all changes to the "abstract_text" field.
func (m *PaperExtractionMutation) ResetAbstractText() {
	m.abstract_text = nil
	delete(m.clearedFields, paperextraction.FieldAbstractText)
}

// SetLanguage sets the "language" field.
func (m *PaperExtractionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *PaperExtractionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *PaperExtractionMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[paperextraction.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *PaperExtractionMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *PaperExtractionMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, paperextraction.FieldLanguage)
}

// SetPageCount sets the "page_count" field.
func (m *PaperExtractionMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *PaperExtractionMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldPageCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *PaperExtractionMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *PaperExtractionMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *PaperExtractionMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[paperextraction.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *PaperExtractionMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *PaperExtractionMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, paperextraction.FieldPageCount)
}

// SetExtractionCoverage sets the "extraction_coverage" field.
func (m *PaperExtractionMutation) SetExtractionCoverage(f float64) {
	m.extraction_coverage = &f
	m.addextraction_coverage = nil
}

// ExtractionCoverage returns the value of the "extraction_coverage" field in the mutation.
func (m *PaperExtractionMutation) ExtractionCoverage() (r float64, exists bool) {
	v := m.extraction_coverage
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionCoverage returns the old "extraction_coverage" field's value of the PaperExtraction entity.
// If the PaperExtraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaperExtractionMutation) OldExtractionCoverage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionCoverage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionCoverage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionCoverage: %w", err)
	}
	return oldValue.ExtractionCoverage, nil
}

// AddExtractionCoverage adds f to the "extraction_coverage" field.
func (m *PaperExtractionMutation) AddExtractionCoverage(f float64) {
	if m.addextraction_coverage != nil {
		*m.addextraction_coverage += f
	} else {
		m.addextraction_coverage = &f
	}
}

// AddedExtractionCoverage returns the value that was added to the "extraction_coverage" field in this mutation.
func (m *PaperExtractionMutation) AddedExtractionCoverage() (r float64, exists bool) {
	v := m.addextraction_coverage
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionCoverage clears the value of the "extraction_coverage" field.
func (m *PaperExtractionMutation) ClearExtractionCoverage() {
	m.extraction_coverage = nil
	m.addextraction_coverage = nil
	m.clearedFields[paperextraction.FieldExtractionCoverage] = struct{}{}
}

// ExtractionCoverageCleared returns if the "extraction_coverage" field was cleared in this mutation.
func (m *PaperExtractionMutation) ExtractionCoverageCleared() bool {
	_, ok := m.clearedFields[paperextraction.FieldExtractionCoverage]
	return ok
}

// ResetExtractionCoverage resets all changes to the "extraction_coverage" field.
func (m *PaperExtractionMutation) ResetExtractionCoverage() {
	m.extraction_coverage = nil
	m.addextraction_coverage = nil
	delete(m.clearedFields, paperextraction.FieldExtractionCoverage)
}

// AddSectionIDs adds the "sections" edge to the ExtractedSection entity by ids.
func (m *PaperExtractionMutation) AddSectionIDs(ids ...uuid.UUID) {
	if m.sections == nil {
		m.sections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sections[ids[i]] = struct{}{}
	}
}

// ClearSections clears the "sections" edge to the ExtractedSection entity.
func (m *PaperExtractionMutation) ClearSections() {
	m.clearedsections = true
}

// SectionsCleared reports if the "sections" edge to the ExtractedSection entity was cleared.
func (m *PaperExtractionMutation) SectionsCleared() bool {
	return m.clearedsections
}

// RemoveSectionIDs removes the "sections" edge to the ExtractedSection entity by IDs.
func (m *PaperExtractionMutation) RemoveSectionIDs(ids ...uuid.UUID) {
	if m.removedsections == nil {
		m.removedsections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sections, ids[i])
		m.removedsections[ids[i]] = struct{}{}
	}
}

// RemovedSections returns the removed IDs of the "sections" edge to the ExtractedSection entity.
func (m *PaperExtractionMutation) RemovedSectionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsections {
		ids = append(ids, id)
	}
	return
}

// SectionsIDs returns the "sections" edge IDs in the mutation.
func (m *PaperExtractionMutation) SectionsIDs() (ids []uuid.UUID) {
	for id := range m.sections {
		ids = append(ids, id)
	}
	return
}

// ResetSections resets all changes to the "sections" edge.
func (m *PaperExtractionMutation) ResetSections() {
	m.sections = nil
	m.clearedsections = false
	m.removedsections = nil
}

// AddFigureIDs adds the "figures" edge to the ExtractedFigure entity by ids.
func (m *PaperExtractionMutation) AddFigureIDs(ids ...uuid.UUID) {
	if m.figures == nil {
		m.figures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.figures[ids[i]] = struct{}{}
	}
}

// ClearFigures clears the "figures" edge to the ExtractedFigure entity.
func (m *PaperExtractionMutation) ClearFigures() {
	m.clearedfigures = true
}

// FiguresCleared reports if the "figures" edge to the ExtractedFigure entity was cleared.
func (m *PaperExtractionMutation) FiguresCleared() bool {
	return m.clearedfigures
}

// RemoveFigureIDs removes the "figures" edge to the ExtractedFigure entity by IDs.
func (m *PaperExtractionMutation) RemoveFigureIDs(ids ...uuid.UUID) {
	if m.removedfigures == nil {
		m.removedfigures = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.figures, ids[i])
		m.removedfigures[ids[i]] = struct{}{}
	}
}

// RemovedFigures returns the removed IDs of the "figures" edge to the ExtractedFigure entity.
func (m *PaperExtractionMutation) RemovedFiguresIDs() (ids []uuid.UUID) {
	for id := range m.removedfigures {
		ids = append(ids, id)
	}
	return
}

// FiguresIDs returns the "figures" edge IDs in the mutation.
func (m *PaperExtractionMutation) FiguresIDs() (ids []uuid.UUID) {
	for id := range m.figures {
		ids = append(ids, id)
	}
	return
}

// ResetFigures resets all changes to the "figures" edge.
func (m *PaperExtractionMutation) ResetFigures() {
	m.figures = nil
	m.clearedfigures = false
	m.removedfigures = nil
}

// AddTableIDs adds the "tables" edge to the ExtractedTable entity by ids.
func (m *PaperExtractionMutation) AddTableIDs(ids ...uuid.UUID) {
	if m.tables == nil {
		m.tables = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tables[ids[i]] = struct{}{}
	}
}

// ClearTables clears the "tables" edge to the ExtractedTable entity.
func (m *PaperExtractionMutation) ClearTables() {
	m.clearedtables = true
}

// TablesCleared reports if the "tables" edge to the ExtractedTable entity was cleared.
func (m *PaperExtractionMutation) TablesCleared() bool {
	return m.clearedtables
}

// RemoveTableIDs removes the "tables" edge to the ExtractedTable entity by IDs.
func (m *PaperExtractionMutation) RemoveTableIDs(ids ...uuid.UUID) {
	if m.removedtables == nil {
		m.removedtables = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tables, ids[i])
		m.removedtables[ids[i]] = struct{}{}
	}
}

// RemovedTables returns the removed IDs of the "tables" edge to the ExtractedTable entity.
func (m *PaperExtractionMutation) RemovedTablesIDs() (ids []uuid.UUID) {
	for id := range m.removedtables {
		ids = append(ids, id)
	}
	return
}

// TablesIDs returns the "tables" edge IDs in the mutation.
func (m *PaperExtractionMutation) TablesIDs() (ids []uuid.UUID) {
	for id := range m.tables {
		ids = append(ids, id)
	}
	return
}

// ResetTables resets all changes to the "tables" edge.
func (m *PaperExtractionMutation) ResetTables() {
	m.tables = nil
	m.clearedtables = false
	m.removedtables = nil
}

// Where appends a list predicates to the PaperExtractionMutation builder.
func (m *PaperExtractionMutation) Where(ps ...predicate.PaperExtraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaperExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaperExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaperExtraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaperExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaperExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaperExtraction).
func (m *PaperExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaperExtractionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.paper_id != nil {
		fields = append(fields, paperextraction.FieldPaperID)
	}
	if m.extraction_id != nil {
		fields = append(fields, paperextraction.FieldExtractionID)
	}
	if m.title != nil {
		fields = append(fields, paperextraction.FieldTitle)
	}
	if m.abstract_text != nil {
		fields = append(fields, paperextraction.FieldAbstractText)
	}
	if m.language != nil {
		fields = append(fields, paperextraction.FieldLanguage)
	}
	if m.page_count != nil {
		fields = append(fields, paperextraction.FieldPageCount)
	}
	if m.extraction_coverage != nil {
		fields = append(fields, paperextraction.FieldExtractionCoverage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaperExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paperextraction.FieldPaperID:
		return m.PaperID()
	case paperextraction.FieldExtractionID:
		return m.ExtractionID()
	case paperextraction.FieldTitle:
		return m.Title()
	case paperextraction.FieldAbstractText:
		return m.AbstractText()
	case paperextraction.FieldLanguage:
		return m.Language()
	case paperextraction.FieldPageCount:
		return m.PageCount()
	case paperextraction.FieldExtractionCoverage:
		return m.ExtractionCoverage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaperExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paperextraction.FieldPaperID:
		return m.OldPaperID(ctx)
	case paperextraction.FieldExtractionID:
		return m.OldExtractionID(ctx)
	case paperextraction.FieldTitle:
		return m.OldTitle(ctx)
	case paperextraction.FieldAbstractText:
		return m.OldAbstractText(ctx)
	case paperextraction.FieldLanguage:
		return m.OldLanguage(ctx)
	case paperextraction.FieldPageCount:
		return m.OldPageCount(ctx)
	case paperextraction.FieldExtractionCoverage:
		return m.OldExtractionCoverage(ctx)
	}
	return nil, fmt.Errorf("unknown PaperExtraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paperextraction.FieldPaperID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaperID(v)
		return nil
	case paperextraction.FieldExtractionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionID(v)
		return nil
	case paperextraction.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case paperextraction.FieldAbstractText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbstractText(v)
		return nil
	case paperextraction.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case paperextraction.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case paperextraction.FieldExtractionCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionCoverage(v)
		return nil
	}
	return fmt.Errorf("unknown PaperExtraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaperExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, paperextraction.FieldPageCount)
	}
	if m.addextraction_coverage != nil {
		fields = append(fields, paperextraction.FieldExtractionCoverage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaperExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paperextraction.FieldPageCount:
		return m.AddedPageCount()
	case paperextraction.FieldExtractionCoverage:
		return m.AddedExtractionCoverage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaperExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paperextraction.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case paperextraction.FieldExtractionCoverage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionCoverage(v)
		return nil
	}
	return fmt.Errorf("unknown PaperExtraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaperExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paperextraction.FieldExtractionID) {
		fields = append(fields, paperextraction.FieldExtractionID)
	}
	if m.FieldCleared(paperextraction.FieldTitle) {
		fields = append(fields, paperextraction.FieldTitle)
	}
	if m.FieldCleared(paperextraction.FieldAbstractText) {
		fields = append(fields, paperextraction.FieldAbstractText)
	}
	if m.FieldCleared(paperextraction.FieldLanguage) {
		fields = append(fields, paperextraction.FieldLanguage)
	}
	if m.FieldCleared(paperextraction.FieldPageCount) {
		fields = append(fields, paperextraction.FieldPageCount)
	}
	if m.FieldCleared(paperextraction.FieldExtractionCoverage) {
		fields = append(fields, paperextraction.FieldExtractionCoverage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaperExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaperExtractionMutation) ClearField(name string) error {
	switch name {
	case paperextraction.FieldExtractionID:
		m.ClearExtractionID()
		return nil
	case paperextraction.FieldTitle:
		m.ClearTitle()
		return nil
	case paperextraction.FieldAbstractText:
		m.ClearAbstractText()
		return nil
	case paperextraction.FieldLanguage:
		m.ClearLanguage()
		return nil
	case paperextraction.FieldPageCount:
		m.ClearPageCount()
		return nil
	case paperextraction.FieldExtractionCoverage:
		m.ClearExtractionCoverage()
		return nil
	}
	return fmt.Errorf("unknown PaperExtraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaperExtractionMutation) ResetField(name string) error {
	switch name {
	case paperextraction.FieldPaperID:
		m.ResetPaperID()
		return nil
	case paperextraction.FieldExtractionID:
		m.ResetExtractionID()
		return nil
	case paperextraction.FieldTitle:
		m.ResetTitle()
		return nil
	case paperextraction.FieldAbstractText:
		m.ResetAbstractText()
		return nil
	case paperextraction.FieldLanguage:
		m.ResetLanguage()
		return nil
	case paperextraction.FieldPageCount:
		m.ResetPageCount()
		return nil
	case paperextraction.FieldExtractionCoverage:
		m.ResetExtractionCoverage()
		return nil
	}
	return fmt.Errorf("unknown PaperExtraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaperExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.sections != nil {
		edges = append(edges, paperextraction.EdgeSections)
	}
	if m.figures != nil {
		edges = append(edges, paperextraction.EdgeFigures)
	}
	if m.tables != nil {
		edges = append(edges, paperextraction.EdgeTables)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaperExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paperextraction.EdgeSections:
		ids := make([]ent.Value, 0, len(m.sections))
		for id := range m.sections {
			ids = append(ids, id)
		}
		return ids
	case paperextraction.EdgeFigures:
		ids := make([]ent.Value, 0, len(m.figures))
		for id := range m.figures {
			ids = append(ids, id)
		}
		return ids
	case paperextraction.EdgeTables:
		ids := make([]ent.Value, 0, len(m.tables))
		for id := range m.tables {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaperExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsections != nil {
		edges = append(edges, paperextraction.EdgeSections)
	}
	if m.removedfigures != nil {
		edges = append(edges, paperextraction.EdgeFigures)
	}
	if m.removedtables != nil {
		edges = append(edges, paperextraction.EdgeTables)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaperExtractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case paperextraction.EdgeSections:
		ids := make([]ent.Value, 0, len(m.removedsections))
		for id := range m.removedsections {
			ids = append(ids, id)
		}
		return ids
	case paperextraction.EdgeFigures:
		ids := make([]ent.Value, 0, len(m.removedfigures))
		for id := range m.removedfigures {
			ids = append(ids, id)
		}
		return ids
	case paperextraction.EdgeTables:
		ids := make([]ent.Value, 0, len(m.removedtables))
		for id := range m.removedtables {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaperExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsections {
		edges = append(edges, paperextraction.EdgeSections)
	}
	if m.clearedfigures {
		edges = append(edges, paperextraction.EdgeFigures)
	}
	if m.clearedtables {
		edges = append(edges, paperextraction.EdgeTables)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaperExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case paperextraction.EdgeSections:
		return m.clearedsections
	case paperextraction.EdgeFigures:
		return m.clearedfigures
	case paperextraction.EdgeTables:
		return m.clearedtables
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaperExtractionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PaperExtraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaperExtractionMutation) ResetEdge(name string) error {
	switch name {
	case paperextraction.EdgeSections:
		m.ResetSections()
		return nil
	case paperextraction.EdgeFigures:
		m.ResetFigures()
		return nil
	case paperextraction.EdgeTables:
		m.ResetTables()
		return nil
	}
	return fmt.Errorf("unknown PaperExtraction edge %s", name)
}

// ResearchGapMutation represents an operation that mutates the ResearchGap nodes in the graph.
type ResearchGapMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	gap_id                     *string
	order_index                *int
	addorder_index             *int
	name                       *string
	description                *string
	category                   *string
	validation_status          *researchgap.ValidationStatus
	validation_confidence      *float64
	addvalidation_confidence   *float64
	initial_reasoning          *string
	initial_evidence           *string
	validation_query           *string
	papers_analyzed_count      *int
	addpapers_analyzed_count   *int
	validation_reasoning       *string
	modification_history       *[]map[string]interface{}
	appendmodification_history []map[string]interface{}
	potential_impact           *string
	research_hints             *string
	implementation_suggestions *string
	risks_and_challenges       *string
	required_resources         *string
	estimated_difficulty       *string
	estimated_timeline         *string
	evidence_anchors           *[]map[string]string
	appendevidence_anchors     []map[string]string
	supporting_papers          *[]map[string]string
	appendsupporting_papers    []map[string]string
	conflicting_papers         *[]map[string]string
	appendconflicting_papers   []map[string]string
	suggested_topics           *[]map[string]interface{}
	appendsuggested_topics     []map[string]interface{}
	created_at                 *time.Time
	validated_at               *time.Time
	clearedFields              map[string]struct{}
	analysis                   *uuid.UUID
	clearedanalysis            bool
	topics                     map[uuid.UUID]struct{}
	removedtopics              map[uuid.UUID]struct{}
	clearedtopics              bool
	validation_papers          map[uuid.UUID]struct{}
	removedvalidation_papers   map[uuid.UUID]struct{}
	clearedvalidation_papers   bool
	done                       bool
	oldValue                   func(context.Context) (*ResearchGap, error)
	predicates                 []predicate.ResearchGap
}

var _ ent.Mutation = (*ResearchGapMutation)(nil)

// researchgapOption allows management of the mutation configuration using functional options.
type researchgapOption func(*ResearchGapMutation)

// newResearchGapMutation creates new mutation for the ResearchGap entity.
func newResearchGapMutation(c config, op Op, opts ...researchgapOption) *ResearchGapMutation {
	m := &ResearchGapMutation{
		config:        c,
		op:            op,
		typ:           TypeResearchGap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearchGapID sets the ID field of the mutation.
func withResearchGapID(id uuid.UUID) researchgapOption {
	return func(m *ResearchGapMutation) {
		var (
			err   error
			once  sync.Once
			value *ResearchGap
		)
		m.oldValue = func(ctx context.Context) (*ResearchGap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResearchGap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearchGap sets the old ResearchGap of the mutation.
func withResearchGap(node *ResearchGap) researchgapOption {
	return func(m *ResearchGapMutation) {
		m.oldValue = func(context.Context) (*ResearchGap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearchGapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearchGapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResearchGap entities.
func (m *ResearchGapMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearchGapMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearchGapMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResearchGap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGapAnalysisID sets the "gap_analysis_id" field.
func (m *ResearchGapMutation) SetGapAnalysisID(u uuid.UUID) {
	m.analysis = &u
}

// GapAnalysisID returns the value of the "gap_analysis_id" field in the mutation.
func (m *ResearchGapMutation) GapAnalysisID() (r uuid.UUID, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldGapAnalysisID returns the old "gap_analysis_id" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldGapAnalysisID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapAnalysisID: %w", err)
	}
	return oldValue.GapAnalysisID, nil
}

// ResetGapAnalysisID resets all changes to the "gap_analysis_id" field.
func (m *ResearchGapMutation) ResetGapAnalysisID() {
	m.analysis = nil
}

// SetGapID sets the "gap_id" field.
func (m *ResearchGapMutation) SetGapID(s string) {
	m.gap_id = &s
}

// GapID returns the value of the "gap_id" field in the mutation.
func (m *ResearchGapMutation) GapID() (r string, exists bool) {
	v := m.gap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGapID returns the old "gap_id" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldGapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapID: %w", err)
	}
	return oldValue.GapID, nil
}

// ResetGapID resets all changes to the "gap_id" field.
func (m *ResearchGapMutation) ResetGapID() {
	m.gap_id = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *ResearchGapMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *ResearchGapMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *ResearchGapMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *ResearchGapMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *ResearchGapMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetName sets the "name" field.
func (m *ResearchGapMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ResearchGapMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ResearchGapMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ResearchGapMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ResearchGapMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ResearchGapMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[researchgap.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ResearchGapMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ResearchGapMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, researchgap.FieldDescription)
}

// SetCategory sets the "category" field.
func (m *ResearchGapMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ResearchGapMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ResearchGapMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[researchgap.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ResearchGapMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ResearchGapMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, researchgap.FieldCategory)
}

// SetValidationStatus sets the "validation_status" field.
func (m *ResearchGapMutation) SetValidationStatus(rs researchgap.ValidationStatus) {
	m.validation_status = &rs
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *ResearchGapMutation) ValidationStatus() (r researchgap.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldValidationStatus(ctx context.Context) (v researchgap.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *ResearchGapMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetValidationConfidence sets the "validation_confidence" field.
func (m *ResearchGapMutation) SetValidationConfidence(f float64) {
	m.validation_confidence = &f
	m.addvalidation_confidence = nil
}

// ValidationConfidence returns the value of the "validation_confidence" field in the mutation.
func (m *ResearchGapMutation) ValidationConfidence() (r float64, exists bool) {
	v := m.validation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationConfidence returns the old "validation_confidence" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldValidationConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationConfidence: %w", err)
	}
	return oldValue.ValidationConfidence, nil
}

// AddValidationConfidence adds f to the "validation_confidence" field.
func (m *ResearchGapMutation) AddValidationConfidence(f float64) {
	if m.addvalidation_confidence != nil {
		*m.addvalidation_confidence += f
	} else {
		m.addvalidation_confidence = &f
	}
}

// AddedValidationConfidence returns the value that was added to the "validation_confidence" field in this mutation.
func (m *ResearchGapMutation) AddedValidationConfidence() (r float64, exists bool) {
	v := m.addvalidation_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearValidationConfidence clears the value of the "validation_confidence" field.
func (m *ResearchGapMutation) ClearValidationConfidence() {
	m.validation_confidence = nil
	m.addvalidation_confidence = nil
	m.clearedFields[researchgap.FieldValidationConfidence] = struct{}{}
}

// ValidationConfidenceCleared returns if the "validation_confidence" field was cleared in this mutation.
func (m *ResearchGapMutation) ValidationConfidenceCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldValidationConfidence]
	return ok
}

// ResetValidationConfidence resets all changes to the "validation_confidence" field.
func (m *ResearchGapMutation) ResetValidationConfidence() {
	m.validation_confidence = nil
	m.addvalidation_confidence = nil
	delete(m.clearedFields, researchgap.FieldValidationConfidence)
}

// SetInitialReasoning sets the "initial_reasoning" field.
func (m *ResearchGapMutation) SetInitialReasoning(s string) {
	m.initial_reasoning = &s
}

// InitialReasoning returns the value of the "initial_reasoning" field in the mutation.
func (m *ResearchGapMutation) InitialReasoning() (r string, exists bool) {
	v := m.initial_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialReasoning returns the old "initial_reasoning" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldInitialReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialReasoning: %w", err)
	}
	return oldValue.InitialReasoning, nil
}

// ClearInitialReasoning clears the value of the "initial_reasoning" field.
func (m *ResearchGapMutation) ClearInitialReasoning() {
	m.initial_reasoning = nil
	m.clearedFields[researchgap.FieldInitialReasoning] = struct{}{}
}

// InitialReasoningCleared returns if the "initial_reasoning" field was cleared in this mutation.
func (m *ResearchGapMutation) InitialReasoningCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldInitialReasoning]
	return ok
}

// ResetInitialReasoning resets all changes to the "initial_reasoning" field.
func (m *ResearchGapMutation) ResetInitialReasoning() {
	m.initial_reasoning = nil
	delete(m.clearedFields, researchgap.FieldInitialReasoning)
}

// SetInitialEvidence sets the "initial_evidence" field.
func (m *ResearchGapMutation) SetInitialEvidence(s string) {
	m.initial_evidence = &s
}

// InitialEvidence returns the value of the "initial_evidence" field in the mutation.
func (m *ResearchGapMutation) InitialEvidence() (r string, exists bool) {
	v := m.initial_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialEvidence returns the old "initial_evidence" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldInitialEvidence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialEvidence: %w", err)
	}
	return oldValue.InitialEvidence, nil
}

// ClearInitialEvidence clears the value of the "initial_evidence" field.
func (m *ResearchGapMutation) ClearInitialEvidence() {
	m.initial_evidence = nil
	m.clearedFields[researchgap.FieldInitialEvidence] = struct{}{}
}

// InitialEvidenceCleared returns if the "initial_evidence" field was cleared in this mutation.
func (m *ResearchGapMutation) InitialEvidenceCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldInitialEvidence]
	return ok
}

// ResetInitialEvidence resets all changes to the "initial_evidence" field.
func (m *ResearchGapMutation) ResetInitialEvidence() {
	m.initial_evidence = nil
	delete(m.clearedFields, researchgap.FieldInitialEvidence)
}

// SetValidationQuery sets the "validation_query" field.
func (m *ResearchGapMutation) SetValidationQuery(s string) {
	m.validation_query = &s
}

// ValidationQuery returns the value of the "validation_query" field in the mutation.
func (m *ResearchGapMutation) ValidationQuery() (r string, exists bool) {
	v := m.validation_query
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationQuery returns the old "validation_query" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldValidationQuery(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationQuery: %w", err)
	}
	return oldValue.ValidationQuery, nil
}

// ClearValidationQuery clears the value of the "validation_query" field.
func (m *ResearchGapMutation) ClearValidationQuery() {
	m.validation_query = nil
	m.clearedFields[researchgap.FieldValidationQuery] = struct{}{}
}

// ValidationQueryCleared returns if the "validation_query" field was cleared in this mutation.
func (m *ResearchGapMutation) ValidationQueryCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldValidationQuery]
	return ok
}

// ResetValidationQuery resets all changes to the "validation_query" field.
func (m *ResearchGapMutation) ResetValidationQuery() {
	m.validation_query = nil
	delete(m.clearedFields, researchgap.FieldValidationQuery)
}

// SetPapersAnalyzedCount sets the "papers_analyzed_count" field.
func (m *ResearchGapMutation) SetPapersAnalyzedCount(i int) {
	m.papers_analyzed_count = &i
	m.addpapers_analyzed_count = nil
}

// PapersAnalyzedCount returns the value of the "papers_analyzed_count" field in the mutation.
func (m *ResearchGapMutation) PapersAnalyzedCount() (r int, exists bool) {
	v := m.papers_analyzed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPapersAnalyzedCount returns the old "papers_analyzed_count" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldPapersAnalyzedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPapersAnalyzedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPapersAnalyzedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPapersAnalyzedCount: %w", err)
	}
	return oldValue.PapersAnalyzedCount, nil
}

// AddPapersAnalyzedCount adds i to the "papers_analyzed_count" field.
func (m *ResearchGapMutation) AddPapersAnalyzedCount(i int) {
	if m.addpapers_analyzed_count != nil {
		*m.addpapers_analyzed_count += i
	} else {
		m.addpapers_analyzed_count = &i
	}
}

// AddedPapersAnalyzedCount returns the value that was added to the "papers_analyzed_count" field in this mutation.
func (m *ResearchGapMutation) AddedPapersAnalyzedCount() (r int, exists bool) {
	v := m.addpapers_analyzed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPapersAnalyzedCount resets all changes to the "papers_analyzed_count" field.
func (m *ResearchGapMutation) ResetPapersAnalyzedCount() {
	m.papers_analyzed_count = nil
	m.addpapers_analyzed_count = nil
}

// SetValidationReasoning sets the "validation_reasoning" field.
func (m *ResearchGapMutation) SetValidationReasoning(s string) {
	m.validation_reasoning = &s
}

// ValidationReasoning returns the value of the "validation_reasoning" field in the mutation.
func (m *ResearchGapMutation) ValidationReasoning() (r string, exists bool) {
	v := m.validation_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationReasoning returns the old "validation_reasoning" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldValidationReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationReasoning: %w", err)
	}
	return oldValue.ValidationReasoning, nil
}

// ClearValidationReasoning clears the value of the "validation_reasoning" field.
func (m *ResearchGapMutation) ClearValidationReasoning() {
	m.validation_reasoning = nil
	m.clearedFields[researchgap.FieldValidationReasoning] = struct{}{}
}

// ValidationReasoningCleared returns if the "validation_reasoning" field was cleared in this mutation.
func (m *ResearchGapMutation) ValidationReasoningCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldValidationReasoning]
	return ok
}

// ResetValidationReasoning resets all changes to the "validation_reasoning" field.
func (m *ResearchGapMutation) ResetValidationReasoning() {
	m.validation_reasoning = nil
	delete(m.clearedFields, researchgap.FieldValidationReasoning)
}

// SetModificationHistory sets the "modification_history" field.
func (m *ResearchGapMutation) SetModificationHistory(value []map[string]interface{}) {
	m.modification_history = &value
	m.appendmodification_history = nil
}

// ModificationHistory returns the value of the "modification_history" field in the mutation.
func (m *ResearchGapMutation) ModificationHistory() (r []map[string]interface{}, exists bool) {
	v := m.modification_history
	if v == nil {
		return
	}
	return *v, true
}

// OldModificationHistory returns the old "modification_history" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldModificationHistory(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModificationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModificationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModificationHistory: %w", err)
	}
	return oldValue.ModificationHistory, nil
}

// AppendModificationHistory adds value to the "modification_history" field.
func (m *ResearchGapMutation) AppendModificationHistory(value []map[string]interface{}) {
	m.appendmodification_history = append(m.appendmodification_history, value...)
}

// AppendedModificationHistory returns the list of values that were appended to the "modification_history" field in this mutation.
func (m *ResearchGapMutation) AppendedModificationHistory() ([]map[string]interface{}, bool) {
	if len(m.appendmodification_history) == 0 {
		return nil, false
	}
	return m.appendmodification_history, true
}

// ClearModificationHistory clears the value of the "modification_history" field.
func (m *ResearchGapMutation) ClearModificationHistory() {
	m.modification_history = nil
	m.appendmodification_history = nil
	m.clearedFields[researchgap.FieldModificationHistory] = struct{}{}
}

// ModificationHistoryCleared returns if the "modification_history" field was cleared in this mutation.
func (m *ResearchGapMutation) ModificationHistoryCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldModificationHistory]
	return ok
}

// ResetModificationHistory resets all changes to the "modification_history" field.
func (m *ResearchGapMutation) ResetModificationHistory() {
	m.modification_history = nil
	m.appendmodification_history = nil
	delete(m.clearedFields, researchgap.FieldModificationHistory)
}

// SetPotentialImpact sets the "potential_impact" field.
func (m *ResearchGapMutation) SetPotentialImpact(s string) {
	m.potential_impact = &s
}

// PotentialImpact returns the value of the "potential_impact" field in the mutation.
func (m *ResearchGapMutation) PotentialImpact() (r string, exists bool) {
	v := m.potential_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldPotentialImpact returns the old "potential_impact" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldPotentialImpact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotentialImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotentialImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotentialImpact: %w", err)
	}
	return oldValue.PotentialImpact, nil
}

// ClearPotentialImpact clears the value of the "potential_impact" field.
func (m *ResearchGapMutation) ClearPotentialImpact() {
	m.potential_impact = nil
	m.clearedFields[researchgap.FieldPotentialImpact] = struct{}{}
}

// PotentialImpactCleared returns if the "potential_impact" field was cleared in this mutation.
func (m *ResearchGapMutation) PotentialImpactCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldPotentialImpact]
	return ok
}

// ResetPotentialImpact resets all changes to the "potential_impact" field.
func (m *ResearchGapMutation) ResetPotentialImpact() {
	m.potential_impact = nil
	delete(m.clearedFields, researchgap.FieldPotentialImpact)
}

// SetResearchHints sets the "research_hints" field.
func (m *ResearchGapMutation) SetResearchHints(s string) {
	m.research_hints = &s
}

// ResearchHints returns the value of the "research_hints" field in the mutation.
func (m *ResearchGapMutation) ResearchHints() (r string, exists bool) {
	v := m.research_hints
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchHints returns the old "research_hints" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldResearchHints(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchHints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchHints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchHints: %w", err)
	}
	return oldValue.ResearchHints, nil
}

// ClearResearchHints clears the value of the "research_hints" field.
func (m *ResearchGapMutation) ClearResearchHints() {
	m.research_hints = nil
	m.clearedFields[researchgap.FieldResearchHints] = struct{}{}
}

// ResearchHintsCleared returns if the "research_hints" field was cleared in this mutation.
func (m *ResearchGapMutation) ResearchHintsCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldResearchHints]
	return ok
}

// ResetResearchHints resets all changes to the "research_hints" field.
func (m *ResearchGapMutation) ResetResearchHints() {
	m.research_hints = nil
	delete(m.clearedFields, researchgap.FieldResearchHints)
}

// SetImplementationSuggestions sets the "implementation_suggestions" field.
func (m *ResearchGapMutation) SetImplementationSuggestions(s string) {
	m.implementation_suggestions = &s
}

// ImplementationSuggestions returns the value of the "implementation_suggestions" field in the mutation.
func (m *ResearchGapMutation) ImplementationSuggestions() (r string, exists bool) {
	v := m.implementation_suggestions
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationSuggestions returns the old "implementation_suggestions" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldImplementationSuggestions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationSuggestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationSuggestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationSuggestions: %w", err)
	}
	return oldValue.ImplementationSuggestions, nil
}

// ClearImplementationSuggestions clears the value of the "implementation_suggestions" field.
func (m *ResearchGapMutation) ClearImplementationSuggestions() {
	m.implementation_suggestions = nil
	m.clearedFields[researchgap.FieldImplementationSuggestions] = struct{}{}
}

// ImplementationSuggestionsCleared returns if the "implementation_suggestions" field was cleared in this mutation.
func (m *ResearchGapMutation) ImplementationSuggestionsCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldImplementationSuggestions]
	return ok
}

// ResetImplementationSuggestions resets all changes to the "implementation_suggestions" field.
func (m *ResearchGapMutation) ResetImplementationSuggestions() {
	m.implementation_suggestions = nil
	delete(m.clearedFields, researchgap.FieldImplementationSuggestions)
}

// SetRisksAndChallenges sets the "risks_and_challenges" field.
func (m *ResearchGapMutation) SetRisksAndChallenges(s string) {
	m.risks_and_challenges = &s
}

// RisksAndChallenges returns the value of the "risks_and_challenges" field in the mutation.
func (m *ResearchGapMutation) RisksAndChallenges() (r string, exists bool) {
	v := m.risks_and_challenges
	if v == nil {
		return
	}
	return *v, true
}

// OldRisksAndChallenges returns the old "risks_and_challenges" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldRisksAndChallenges(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisksAndChallenges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisksAndChallenges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisksAndChallenges: %w", err)
	}
	return oldValue.RisksAndChallenges, nil
}

// ClearRisksAndChallenges clears the value of the "risks_and_challenges" field.
func (m *ResearchGapMutation) ClearRisksAndChallenges() {
	m.risks_and_challenges = nil
	m.clearedFields[researchgap.FieldRisksAndChallenges] = struct{}{}
}

// RisksAndChallengesCleared returns if the "risks_and_challenges" field was cleared in this mutation.
func (m *ResearchGapMutation) RisksAndChallengesCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldRisksAndChallenges]
	return ok
}

// ResetRisksAndChallenges resets all changes to the "risks_and_challenges" field.
func (m *ResearchGapMutation) ResetRisksAndChallenges() {
	m.risks_and_challenges = nil
	delete(m.clearedFields, researchgap.FieldRisksAndChallenges)
}

// SetRequiredResources sets the "required_resources" field.
func (m *ResearchGapMutation) SetRequiredResources(s string) {
	m.required_resources = &s
}

// RequiredResources returns the value of the "required_resources" field in the mutation.
func (m *ResearchGapMutation) RequiredResources() (r string, exists bool) {
	v := m.required_resources
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredResources returns the old "required_resources" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldRequiredResources(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredResources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredResources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredResources: %w", err)
	}
	return oldValue.RequiredResources, nil
}

// ClearRequiredResources clears the value of the "required_resources" field.
func (m *ResearchGapMutation) ClearRequiredResources() {
	m.required_resources = nil
	m.clearedFields[researchgap.FieldRequiredResources] = struct{}{}
}

// RequiredResourcesCleared returns if the "required_resources" field was cleared in this mutation.
func (m *ResearchGapMutation) RequiredResourcesCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldRequiredResources]
	return ok
}

// ResetRequiredResources resets all changes to the "required_resources" field.
func (m *ResearchGapMutation) ResetRequiredResources() {
	m.required_resources = nil
	delete(m.clearedFields, researchgap.FieldRequiredResources)
}

// SetEstimatedDifficulty sets the "estimated_difficulty" field.
func (m *ResearchGapMutation) SetEstimatedDifficulty(s string) {
	m.estimated_difficulty = &s
}

// EstimatedDifficulty returns the value of the "estimated_difficulty" field in the mutation.
func (m *ResearchGapMutation) EstimatedDifficulty() (r string, exists bool) {
	v := m.estimated_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDifficulty returns the old "estimated_difficulty" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldEstimatedDifficulty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDifficulty: %w", err)
	}
	return oldValue.EstimatedDifficulty, nil
}

// ClearEstimatedDifficulty clears the value of the "estimated_difficulty" field.
func (m *ResearchGapMutation) ClearEstimatedDifficulty() {
	m.estimated_difficulty = nil
	m.clearedFields[researchgap.FieldEstimatedDifficulty] = struct{}{}
}

// EstimatedDifficultyCleared returns if the "estimated_difficulty" field was cleared in this mutation.
func (m *ResearchGapMutation) EstimatedDifficultyCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldEstimatedDifficulty]
	return ok
}

// ResetEstimatedDifficulty resets all changes to the "estimated_difficulty" field.
func (m *ResearchGapMutation) ResetEstimatedDifficulty() {
	m.estimated_difficulty = nil
	delete(m.clearedFields, researchgap.FieldEstimatedDifficulty)
}

// SetEstimatedTimeline sets the "estimated_timeline" field.
func (m *ResearchGapMutation) SetEstimatedTimeline(s string) {
	m.estimated_timeline = &s
}

// EstimatedTimeline returns the value of the "estimated_timeline" field in the mutation.
func (m *ResearchGapMutation) EstimatedTimeline() (r string, exists bool) {
	v := m.estimated_timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedTimeline returns the old "estimated_timeline" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldEstimatedTimeline(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedTimeline: %w", err)
	}
	return oldValue.EstimatedTimeline, nil
}

// ClearEstimatedTimeline clears the value of the "estimated_timeline" field.
func (m *ResearchGapMutation) ClearEstimatedTimeline() {
	m.estimated_timeline = nil
	m.clearedFields[researchgap.FieldEstimatedTimeline] = struct{}{}
}

// EstimatedTimelineCleared returns if the "estimated_timeline" field was cleared in this mutation.
func (m *ResearchGapMutation) EstimatedTimelineCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldEstimatedTimeline]
	return ok
}

// ResetEstimatedTimeline resets all changes to the "estimated_timeline" field.
func (m *ResearchGapMutation) ResetEstimatedTimeline() {
	m.estimated_timeline = nil
	delete(m.clearedFields, researchgap.FieldEstimatedTimeline)
}

// SetEvidenceAnchors sets the "evidence_anchors" field.
func (m *ResearchGapMutation) SetEvidenceAnchors(value []map[string]string) {
	m.evidence_anchors = &value
	m.appendevidence_anchors = nil
}

// EvidenceAnchors returns the value of the "evidence_anchors" field in the mutation.
func (m *ResearchGapMutation) EvidenceAnchors() (r []map[string]string, exists bool) {
	v := m.evidence_anchors
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceAnchors returns the old "evidence_anchors" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldEvidenceAnchors(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceAnchors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceAnchors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceAnchors: %w", err)
	}
	return oldValue.EvidenceAnchors, nil
}

// AppendEvidenceAnchors adds value to the "evidence_anchors" field.
func (m *ResearchGapMutation) AppendEvidenceAnchors(value []map[string]string) {
	m.appendevidence_anchors = append(m.appendevidence_anchors, value...)
}

// AppendedEvidenceAnchors returns the list of values that were appended to the "evidence_anchors" field in this mutation.
func (m *ResearchGapMutation) AppendedEvidenceAnchors() ([]map[string]string, bool) {
	if len(m.appendevidence_anchors) == 0 {
		return nil, false
	}
	return m.appendevidence_anchors, true
}

// ClearEvidenceAnchors clears the value of the "evidence_anchors" field.
func (m *ResearchGapMutation) ClearEvidenceAnchors() {
	m.evidence_anchors = nil
	m.appendevidence_anchors = nil
	m.clearedFields[researchgap.FieldEvidenceAnchors] = struct{}{}
}

// EvidenceAnchorsCleared returns if the "evidence_anchors" field was cleared in this mutation.
func (m *ResearchGapMutation) EvidenceAnchorsCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldEvidenceAnchors]
	return ok
}

// ResetEvidenceAnchors resets all changes to the "evidence_anchors" field.
func (m *ResearchGapMutation) ResetEvidenceAnchors() {
	m.evidence_anchors = nil
	m.appendevidence_anchors = nil
	delete(m.clearedFields, researchgap.FieldEvidenceAnchors)
}

// SetSupportingPapers sets the "supporting_papers" field.
func (m *ResearchGapMutation) SetSupportingPapers(value []map[string]string) {
	m.supporting_papers = &value
	m.appendsupporting_papers = nil
}

// SupportingPapers returns the value of the "supporting_papers" field in the mutation.
func (m *ResearchGapMutation) SupportingPapers() (r []map[string]string, exists bool) {
	v := m.supporting_papers
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportingPapers returns the old "supporting_papers" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldSupportingPapers(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportingPapers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportingPapers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportingPapers: %w", err)
	}
	return oldValue.SupportingPapers, nil
}

// AppendSupportingPapers adds value to the "supporting_papers" field.
func (m *ResearchGapMutation) AppendSupportingPapers(value []map[string]string) {
	m.appendsupporting_papers = append(m.appendsupporting_papers, value...)
}

// AppendedSupportingPapers returns the list of values that were appended to the "supporting_papers" field in this mutation.
func (m *ResearchGapMutation) AppendedSupportingPapers() ([]map[string]string, bool) {
	if len(m.appendsupporting_papers) == 0 {
		return nil, false
	}
	return m.appendsupporting_papers, true
}

// ClearSupportingPapers clears the value of the "supporting_papers" field.
func (m *ResearchGapMutation) ClearSupportingPapers() {
	m.supporting_papers = nil
	m.appendsupporting_papers = nil
	m.clearedFields[researchgap.FieldSupportingPapers] = struct{}{}
}

// SupportingPapersCleared returns if the "supporting_papers" field was cleared in this mutation.
func (m *ResearchGapMutation) SupportingPapersCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldSupportingPapers]
	return ok
}

// ResetSupportingPapers resets all changes to the "supporting_papers" field.
func (m *ResearchGapMutation) ResetSupportingPapers() {
	m.supporting_papers = nil
	m.appendsupporting_papers = nil
	delete(m.clearedFields, researchgap.FieldSupportingPapers)
}

// SetConflictingPapers sets the "conflicting_papers" field.
func (m *ResearchGapMutation) SetConflictingPapers(value []map[string]string) {
	m.conflicting_papers = &value
	m.appendconflicting_papers = nil
}

// ConflictingPapers returns the value of the "conflicting_papers" field in the mutation.
func (m *ResearchGapMutation) ConflictingPapers() (r []map[string]string, exists bool) {
	v := m.conflicting_papers
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictingPapers returns the old "conflicting_papers" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldConflictingPapers(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictingPapers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictingPapers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictingPapers: %w", err)
	}
	return oldValue.ConflictingPapers, nil
}

// AppendConflictingPapers adds value to the "conflicting_papers" field.
func (m *ResearchGapMutation) AppendConflictingPapers(value []map[string]string) {
	m.appendconflicting_papers = append(m.appendconflicting_papers, value...)
}

// AppendedConflictingPapers returns the list of values that were appended to the "conflicting_papers" field in this mutation.
func (m *ResearchGapMutation) AppendedConflictingPapers() ([]map[string]string, bool) {
	if len(m.appendconflicting_papers) == 0 {
		return nil, false
	}
	return m.appendconflicting_papers, true
}

// ClearConflictingPapers clears the value of the "conflicting_papers" field.
func (m *ResearchGapMutation) ClearConflictingPapers() {
	m.conflicting_papers = nil
	m.appendconflicting_papers = nil
	m.clearedFields[researchgap.FieldConflictingPapers] = struct{}{}
}

// ConflictingPapersCleared returns if the "conflicting_papers" field was cleared in this mutation.
func (m *ResearchGapMutation) ConflictingPapersCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldConflictingPapers]
	return ok
}

// ResetConflictingPapers resets all changes to the "conflicting_papers" field.
func (m *ResearchGapMutation) ResetConflictingPapers() {
	m.conflicting_papers = nil
	m.appendconflicting_papers = nil
	delete(m.clearedFields, researchgap.FieldConflictingPapers)
}

// SetSuggestedTopics sets the "suggested_topics" field.
func (m *ResearchGapMutation) SetSuggestedTopics(value []map[string]interface{}) {
	m.suggested_topics = &value
	m.appendsuggested_topics = nil
}

// SuggestedTopics returns the value of the "suggested_topics" field in the mutation.
func (m *ResearchGapMutation) SuggestedTopics() (r []map[string]interface{}, exists bool) {
	v := m.suggested_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedTopics returns the old "suggested_topics" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldSuggestedTopics(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedTopics: %w", err)
	}
	return oldValue.SuggestedTopics, nil
}

// AppendSuggestedTopics adds value to the "suggested_topics" field.
func (m *ResearchGapMutation) AppendSuggestedTopics(value []map[string]interface{}) {
	m.appendsuggested_topics = append(m.appendsuggested_topics, value...)
}

// AppendedSuggestedTopics returns the list of values that were appended to the "suggested_topics" field in this mutation.
func (m *ResearchGapMutation) AppendedSuggestedTopics() ([]map[string]interface{}, bool) {
	if len(m.appendsuggested_topics) == 0 {
		return nil, false
	}
	return m.appendsuggested_topics, true
}

// ClearSuggestedTopics clears the value of the "suggested_topics" field.
func (m *ResearchGapMutation) ClearSuggestedTopics() {
	m.suggested_topics = nil
	m.appendsuggested_topics = nil
	m.clearedFields[researchgap.FieldSuggestedTopics] = struct{}{}
}

// SuggestedTopicsCleared returns if the "suggested_topics" field was cleared in this mutation.
func (m *ResearchGapMutation) SuggestedTopicsCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldSuggestedTopics]
	return ok
}

// ResetSuggestedTopics resets all changes to the "suggested_topics" field.
func (m *ResearchGapMutation) ResetSuggestedTopics() {
	m.suggested_topics = nil
	m.appendsuggested_topics = nil
	delete(m.clearedFields, researchgap.FieldSuggestedTopics)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearchGapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearchGapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResearchGapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetValidatedAt sets the "validated_at" field.
func (m *ResearchGapMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *ResearchGapMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the ResearchGap entity.
// If the ResearchGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearchGapMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *ResearchGapMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[researchgap.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *ResearchGapMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[researchgap.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *ResearchGapMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, researchgap.FieldValidatedAt)
}

// SetAnalysisID sets the "analysis" edge to the GapAnalysis entity by id.
func (m *ResearchGapMutation) SetAnalysisID(id uuid.UUID) {
	m.analysis = &id
}

// ClearAnalysis clears the "analysis" edge to the GapAnalysis entity.
func (m *ResearchGapMutation) ClearAnalysis() {
	m.clearedanalysis = true
	m.clearedFields[researchgap.FieldGapAnalysisID] = struct{}{}
}

// AnalysisCleared reports if the "analysis" edge to the GapAnalysis entity was cleared.
func (m *ResearchGapMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisID returns the "analysis" edge ID in the mutation.
func (m *ResearchGapMutation) AnalysisID() (id uuid.UUID, exists bool) {
	if m.analysis != nil {
		return *m.analysis, true
	}
	return
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *ResearchGapMutation) AnalysisIDs() (ids []uuid.UUID) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *ResearchGapMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// AddTopicIDs adds the "topics" edge to the GapTopic entity by ids.
func (m *ResearchGapMutation) AddTopicIDs(ids ...uuid.UUID) {
	if m.topics == nil {
		m.topics = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.topics[ids[i]] = struct{}{}
	}
}

// ClearTopics clears the "topics" edge to the GapTopic entity.
func (m *ResearchGapMutation) ClearTopics() {
	m.clearedtopics = true
}

// TopicsCleared reports if the "topics" edge to the GapTopic entity was cleared.
func (m *ResearchGapMutation) TopicsCleared() bool {
	return m.clearedtopics
}

// RemoveTopicIDs removes the "topics" edge to the GapTopic entity by IDs.
func (m *ResearchGapMutation) RemoveTopicIDs(ids ...uuid.UUID) {
	if m.removedtopics == nil {
		m.removedtopics = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.topics, ids[i])
		m.removedtopics[ids[i]] = struct{}{}
	}
}

// RemovedTopics returns the removed IDs of the "topics" edge to the GapTopic entity.
func (m *ResearchGapMutation) RemovedTopicsIDs() (ids []uuid.UUID) {
	for id := range m.removedtopics {
		ids = append(ids, id)
	}
	return
}

// TopicsIDs returns the "topics" edge IDs in the mutation.
func (m *ResearchGapMutation) TopicsIDs() (ids []uuid.UUID) {
	for id := range m.topics {
		ids = append(ids, id)
	}
	return
}

// ResetTopics resets all changes to the "topics" edge.
func (m *ResearchGapMutation) ResetTopics() {
	m.topics = nil
	m.clearedtopics = false
	m.removedtopics = nil
}

// AddValidationPaperIDs adds the "validation_papers" edge to the GapValidationPaper entity by ids.
func (m *ResearchGapMutation) AddValidationPaperIDs(ids ...uuid.UUID) {
	if m.validation_papers == nil {
		m.validation_papers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.validation_papers[ids[i]] = struct{}{}
	}
}

// ClearValidationPapers clears the "validation_papers" edge to the GapValidationPaper entity.
func (m *ResearchGapMutation) ClearValidationPapers() {
	m.clearedvalidation_papers = true
}

// ValidationPapersCleared reports if the "validation_papers" edge to the GapValidationPaper entity was cleared.
func (m *ResearchGapMutation) ValidationPapersCleared() bool {
	return m.clearedvalidation_papers
}

// RemoveValidationPaperIDs removes the "validation_papers" edge to the GapValidationPaper entity by IDs.
func (m *ResearchGapMutation) RemoveValidationPaperIDs(ids ...uuid.UUID) {
	if m.removedvalidation_papers == nil {
		m.removedvalidation_papers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.validation_papers, ids[i])
		m.removedvalidation_papers[ids[i]] = struct{}{}
	}
}

// RemovedValidationPapers returns the removed IDs of the "validation_papers" edge to the GapValidationPaper entity.
func (m *ResearchGapMutation) RemovedValidationPapersIDs() (ids []uuid.UUID) {
	for id := range m.removedvalidation_papers {
		ids = append(ids, id)
	}
	return
}

// ValidationPapersIDs returns the "validation_papers" edge IDs in the mutation.
func (m *ResearchGapMutation) ValidationPapersIDs() (ids []uuid.UUID) {
	for id := range m.validation_papers {
		ids = append(ids, id)
	}
	return
}

// ResetValidationPapers resets all changes to the "validation_papers" edge.
func (m *ResearchGapMutation) ResetValidationPapers() {
	m.validation_papers = nil
	m.clearedvalidation_papers = false
	m.removedvalidation_papers = nil
}

// Where appends a list predicates to the ResearchGapMutation builder.
func (m *ResearchGapMutation) Where(ps ...predicate.ResearchGap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearchGapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearchGapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResearchGap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearchGapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearchGapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResearchGap).
func (m *ResearchGapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearchGapMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.analysis != nil {
		fields = append(fields, researchgap.FieldGapAnalysisID)
	}
	if m.gap_id != nil {
		fields = append(fields, researchgap.FieldGapID)
	}
	if m.order_index != nil {
		fields = append(fields, researchgap.FieldOrderIndex)
	}
	if m.name != nil {
		fields = append(fields, researchgap.FieldName)
	}
	if m.description != nil {
		fields = append(fields, researchgap.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, researchgap.FieldCategory)
	}
	if m.validation_status != nil {
		fields = append(fields, researchgap.FieldValidationStatus)
	}
	if m.validation_confidence != nil {
		fields = append(fields, researchgap.FieldValidationConfidence)
	}
	if m.initial_reasoning != nil {
		fields = append(fields, researchgap.FieldInitialReasoning)
	}
	if m.initial_evidence != nil {
		fields = append(fields, researchgap.FieldInitialEvidence)
	}
	if m.validation_query != nil {
		fields = append(fields, researchgap.FieldValidationQuery)
	}
	if m.papers_analyzed_count != nil {
		fields = append(fields, researchgap.FieldPapersAnalyzedCount)
	}
	if m.validation_reasoning != nil {
		fields = append(fields, researchgap.FieldValidationReasoning)
	}
	if m.modification_history != nil {
		fields = append(fields, researchgap.FieldModificationHistory)
	}
	if m.potential_impact != nil {
		fields = append(fields, researchgap.FieldPotentialImpact)
	}
	if m.research_hints != nil {
		fields = append(fields, researchgap.FieldResearchHints)
	}
	if m.implementation_suggestions != nil {
		fields = append(fields, researchgap.FieldImplementationSuggestions)
	}
	if m.risks_and_challenges != nil {
		fields = append(fields, researchgap.FieldRisksAndChallenges)
	}
	if m.required_resources != nil {
		fields = append(fields, researchgap.FieldRequiredResources)
	}
	if m.estimated_difficulty != nil {
		fields = append(fields, researchgap.FieldEstimatedDifficulty)
	}
	if m.estimated_timeline != nil {
		fields = append(fields, researchgap.FieldEstimatedTimeline)
	}
	if m.evidence_anchors != nil {
		fields = append(fields, researchgap.FieldEvidenceAnchors)
	}
	if m.supporting_papers != nil {
		fields = append(fields, researchgap.FieldSupportingPapers)
	}
	if m.conflicting_papers != nil {
		fields = append(fields, researchgap.FieldConflictingPapers)
	}
	if m.suggested_topics != nil {
		fields = append(fields, researchgap.FieldSuggestedTopics)
	}
	if m.created_at != nil {
		fields = append(fields, researchgap.FieldCreatedAt)
	}
	if m.validated_at != nil {
		fields = append(fields, researchgap.FieldValidatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearchGapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researchgap.FieldGapAnalysisID:
		return m.GapAnalysisID()
	case researchgap.FieldGapID:
		return m.GapID()
	case researchgap.FieldOrderIndex:
		return m.OrderIndex()
	case researchgap.FieldName:
		return m.Name()
	case researchgap.FieldDescription:
		return m.Description()
	case researchgap.FieldCategory:
		return m.Category()
	case researchgap.FieldValidationStatus:
		return m.ValidationStatus()
	case researchgap.FieldValidationConfidence:
		return m.ValidationConfidence()
	case researchgap.FieldInitialReasoning:
		return m.InitialReasoning()
	case researchgap.FieldInitialEvidence:
		return m.InitialEvidence()
	case researchgap.FieldValidationQuery:
		return m.ValidationQuery()
	case researchgap.FieldPapersAnalyzedCount:
		return m.PapersAnalyzedCount()
	case researchgap.FieldValidationReasoning:
		return m.ValidationReasoning()
	case researchgap.FieldModificationHistory:
		return m.ModificationHistory()
	case researchgap.FieldPotentialImpact:
		return m.PotentialImpact()
	case researchgap.FieldResearchHints:
		return m.ResearchHints()
	case researchgap.FieldImplementationSuggestions:
		return m.ImplementationSuggestions()
	case researchgap.FieldRisksAndChallenges:
		return m.RisksAndChallenges()
	case researchgap.FieldRequiredResources:
		return m.RequiredResources()
	case researchgap.FieldEstimatedDifficulty:
		return m.EstimatedDifficulty()
	case researchgap.FieldEstimatedTimeline:
		return m.EstimatedTimeline()
	case researchgap.FieldEvidenceAnchors:
		return m.EvidenceAnchors()
	case researchgap.FieldSupportingPapers:
		return m.SupportingPapers()
	case researchgap.FieldConflictingPapers:
		return m.ConflictingPapers()
	case researchgap.FieldSuggestedTopics:
		return m.SuggestedTopics()
	case researchgap.FieldCreatedAt:
		return m.CreatedAt()
	case researchgap.FieldValidatedAt:
		return m.ValidatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearchGapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researchgap.FieldGapAnalysisID:
		return m.OldGapAnalysisID(ctx)
	case researchgap.FieldGapID:
		return m.OldGapID(ctx)
	case researchgap.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case researchgap.FieldName:
		return m.OldName(ctx)
	case researchgap.FieldDescription:
		return m.OldDescription(ctx)
	case researchgap.FieldCategory:
		return m.OldCategory(ctx)
	case researchgap.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case researchgap.FieldValidationConfidence:
		return m.OldValidationConfidence(ctx)
	case researchgap.FieldInitialReasoning:
		return m.OldInitialReasoning(ctx)
	case researchgap.FieldInitialEvidence:
		return m.OldInitialEvidence(ctx)
	case researchgap.FieldValidationQuery:
		return m.OldValidationQuery(ctx)
	case researchgap.FieldPapersAnalyzedCount:
		return m.OldPapersAnalyzedCount(ctx)
	case researchgap.FieldValidationReasoning:
		return m.OldValidationReasoning(ctx)
	case researchgap.FieldModificationHistory:
		return m.OldModificationHistory(ctx)
	case researchgap.FieldPotentialImpact:
		return m.OldPotentialImpact(ctx)
	case researchgap.FieldResearchHints:
		return m.OldResearchHints(ctx)
	case researchgap.FieldImplementationSuggestions:
		return m.OldImplementationSuggestions(ctx)
	case researchgap.FieldRisksAndChallenges:
		return m.OldRisksAndChallenges(ctx)
	case researchgap.FieldRequiredResources:
		return m.OldRequiredResources(ctx)
	case researchgap.FieldEstimatedDifficulty:
		return m.OldEstimatedDifficulty(ctx)
	case researchgap.FieldEstimatedTimeline:
		return m.OldEstimatedTimeline(ctx)
	case researchgap.FieldEvidenceAnchors:
		return m.OldEvidenceAnchors(ctx)
	case researchgap.FieldSupportingPapers:
		return m.OldSupportingPapers(ctx)
	case researchgap.FieldConflictingPapers:
		return m.OldConflictingPapers(ctx)
	case researchgap.FieldSuggestedTopics:
		return m.OldSuggestedTopics(ctx)
	case researchgap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researchgap.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResearchGap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchGapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researchgap.FieldGapAnalysisID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapAnalysisID(v)
		return nil
	case researchgap.FieldGapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapID(v)
		return nil
	case researchgap.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case researchgap.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case researchgap.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case researchgap.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case researchgap.FieldValidationStatus:
		v, ok := value.(researchgap.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case researchgap.FieldValidationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationConfidence(v)
		return nil
	case researchgap.FieldInitialReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialReasoning(v)
		return nil
	case researchgap.FieldInitialEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialEvidence(v)
		return nil
	case researchgap.FieldValidationQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationQuery(v)
		return nil
	case researchgap.FieldPapersAnalyzedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPapersAnalyzedCount(v)
		return nil
	case researchgap.FieldValidationReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationReasoning(v)
		return nil
	case researchgap.FieldModificationHistory:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModificationHistory(v)
		return nil
	case researchgap.FieldPotentialImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotentialImpact(v)
		return nil
	case researchgap.FieldResearchHints:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchHints(v)
		return nil
	case researchgap.FieldImplementationSuggestions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationSuggestions(v)
		return nil
	case researchgap.FieldRisksAndChallenges:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisksAndChallenges(v)
		return nil
	case researchgap.FieldRequiredResources:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredResources(v)
		return nil
	case researchgap.FieldEstimatedDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDifficulty(v)
		return nil
	case researchgap.FieldEstimatedTimeline:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedTimeline(v)
		return nil
	case researchgap.FieldEvidenceAnchors:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceAnchors(v)
		return nil
	case researchgap.FieldSupportingPapers:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportingPapers(v)
		return nil
	case researchgap.FieldConflictingPapers:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictingPapers(v)
		return nil
	case researchgap.FieldSuggestedTopics:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedTopics(v)
		return nil
	case researchgap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researchgap.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchGap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearchGapMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, researchgap.FieldOrderIndex)
	}
	if m.addvalidation_confidence != nil {
		fields = append(fields, researchgap.FieldValidationConfidence)
	}
	if m.addpapers_analyzed_count != nil {
		fields = append(fields, researchgap.FieldPapersAnalyzedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearchGapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case researchgap.FieldOrderIndex:
		return m.AddedOrderIndex()
	case researchgap.FieldValidationConfidence:
		return m.AddedValidationConfidence()
	case researchgap.FieldPapersAnalyzedCount:
		return m.AddedPapersAnalyzedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearchGapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case researchgap.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	case researchgap.FieldValidationConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValidationConfidence(v)
		return nil
	case researchgap.FieldPapersAnalyzedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPapersAnalyzedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ResearchGap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearchGapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researchgap.FieldDescription) {
		fields = append(fields, researchgap.FieldDescription)
	}
	if m.FieldCleared(researchgap.FieldCategory) {
		fields = append(fields, researchgap.FieldCategory)
	}
	if m.FieldCleared(researchgap.FieldValidationConfidence) {
		fields = append(fields, researchgap.FieldValidationConfidence)
	}
	if m.FieldCleared(researchgap.FieldInitialReasoning) {
		fields = append(fields, researchgap.FieldInitialReasoning)
	}
	if m.FieldCleared(researchgap.FieldInitialEvidence) {
		fields = append(fields, researchgap.FieldInitialEvidence)
	}
	if m.FieldCleared(researchgap.FieldValidationQuery) {
		fields = append(fields, researchgap.FieldValidationQuery)
	}
	if m.FieldCleared(researchgap.FieldValidationReasoning) {
		fields = append(fields, researchgap.FieldValidationReasoning)
	}
	if m.FieldCleared(researchgap.FieldModificationHistory) {
		fields = append(fields, researchgap.FieldModificationHistory)
	}
	if m.FieldCleared(researchgap.FieldPotentialImpact) {
		fields = append(fields, researchgap.FieldPotentialImpact)
	}
	if m.FieldCleared(researchgap.FieldResearchHints) {
		fields = append(fields, researchgap.FieldResearchHints)
	}
	if m.FieldCleared(researchgap.FieldImplementationSuggestions) {
		fields = append(fields, researchgap.FieldImplementationSuggestions)
	}
	if m.FieldCleared(researchgap.FieldRisksAndChallenges) {
		fields = append(fields, researchgap.FieldRisksAndChallenges)
	}
	if m.FieldCleared(researchgap.FieldRequiredResources) {
		fields = append(fields, researchgap.FieldRequiredResources)
	}
	if m.FieldCleared(researchgap.FieldEstimatedDifficulty) {
		fields = append(fields, researchgap.FieldEstimatedDifficulty)
	}
	if m.FieldCleared(researchgap.FieldEstimatedTimeline) {
		fields = append(fields, researchgap.FieldEstimatedTimeline)
	}
	if m.FieldCleared(researchgap.FieldEvidenceAnchors) {
		fields = append(fields, researchgap.FieldEvidenceAnchors)
	}
	if m.FieldCleared(researchgap.FieldSupportingPapers) {
		fields = append(fields, researchgap.FieldSupportingPapers)
	}
	if m.FieldCleared(researchgap.FieldConflictingPapers) {
		fields = append(fields, researchgap.FieldConflictingPapers)
	}
	if m.FieldCleared(researchgap.FieldSuggestedTopics) {
		fields = append(fields, researchgap.FieldSuggestedTopics)
	}
	if m.FieldCleared(researchgap.FieldValidatedAt) {
		fields = append(fields, researchgap.FieldValidatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearchGapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearchGapMutation) ClearField(name string) error {
	switch name {
	case researchgap.FieldDescription:
		m.ClearDescription()
		return nil
	case researchgap.FieldCategory:
		m.ClearCategory()
		return nil
	case researchgap.FieldValidationConfidence:
		m.ClearValidationConfidence()
		return nil
	case researchgap.FieldInitialReasoning:
		m.ClearInitialReasoning()
		return nil
	case researchgap.FieldInitialEvidence:
		m.ClearInitialEvidence()
		return nil
	case researchgap.FieldValidationQuery:
		m.ClearValidationQuery()
		return nil
	case researchgap.FieldValidationReasoning:
		m.ClearValidationReasoning()
		return nil
	case researchgap.FieldModificationHistory:
		m.ClearModificationHistory()
		return nil
	case researchgap.FieldPotentialImpact:
		m.ClearPotentialImpact()
		return nil
	case researchgap.FieldResearchHints:
		m.ClearResearchHints()
		return nil
	case researchgap.FieldImplementationSuggestions:
		m.ClearImplementationSuggestions()
		return nil
	case researchgap.FieldRisksAndChallenges:
		m.ClearRisksAndChallenges()
		return nil
	case researchgap.FieldRequiredResources:
		m.ClearRequiredResources()
		return nil
	case researchgap.FieldEstimatedDifficulty:
		m.ClearEstimatedDifficulty()
		return nil
	case researchgap.FieldEstimatedTimeline:
		m.ClearEstimatedTimeline()
		return nil
	case researchgap.FieldEvidenceAnchors:
		m.ClearEvidenceAnchors()
		return nil
	case researchgap.FieldSupportingPapers:
		m.ClearSupportingPapers()
		return nil
	case researchgap.FieldConflictingPapers:
		m.ClearConflictingPapers()
		return nil
	case researchgap.FieldSuggestedTopics:
		m.ClearSuggestedTopics()
		return nil
	case researchgap.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchGap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearchGapMutation) ResetField(name string) error {
	switch name {
	case researchgap.FieldGapAnalysisID:
		m.ResetGapAnalysisID()
		return nil
	case researchgap.FieldGapID:
		m.ResetGapID()
		return nil
	case researchgap.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case researchgap.FieldName:
		m.ResetName()
		return nil
	case researchgap.FieldDescription:
		m.ResetDescription()
		return nil
	case researchgap.FieldCategory:
		m.ResetCategory()
		return nil
	case researchgap.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case researchgap.FieldValidationConfidence:
		m.ResetValidationConfidence()
		return nil
	case researchgap.FieldInitialReasoning:
		m.ResetInitialReasoning()
		return nil
	case researchgap.FieldInitialEvidence:
		m.ResetInitialEvidence()
		return nil
	case researchgap.FieldValidationQuery:
		m.ResetValidationQuery()
		return nil
	case researchgap.FieldPapersAnalyzedCount:
		m.ResetPapersAnalyzedCount()
		return nil
	case researchgap.FieldValidationReasoning:
		m.ResetValidationReasoning()
		return nil
	case researchgap.FieldModificationHistory:
		m.ResetModificationHistory()
		return nil
	case researchgap.FieldPotentialImpact:
		m.ResetPotentialImpact()
		return nil
	case researchgap.FieldResearchHints:
		m.ResetResearchHints()
		return nil
	case researchgap.FieldImplementationSuggestions:
		m.ResetImplementationSuggestions()
		return nil
	case researchgap.FieldRisksAndChallenges:
		m.ResetRisksAndChallenges()
		return nil
	case researchgap.FieldRequiredResources:
		m.ResetRequiredResources()
		return nil
	case researchgap.FieldEstimatedDifficulty:
		m.ResetEstimatedDifficulty()
		return nil
	case researchgap.FieldEstimatedTimeline:
		m.ResetEstimatedTimeline()
		return nil
	case researchgap.FieldEvidenceAnchors:
		m.ResetEvidenceAnchors()
		return nil
	case researchgap.FieldSupportingPapers:
		m.ResetSupportingPapers()
		return nil
	case researchgap.FieldConflictingPapers:
		m.ResetConflictingPapers()
		return nil
	case researchgap.FieldSuggestedTopics:
		m.ResetSuggestedTopics()
		return nil
	case researchgap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researchgap.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResearchGap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearchGapMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.analysis != nil {
		edges = append(edges, researchgap.EdgeAnalysis)
	}
	if m.topics != nil {
		edges = append(edges, researchgap.EdgeTopics)
	}
	if m.validation_papers != nil {
		edges = append(edges, researchgap.EdgeValidationPapers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearchGapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researchgap.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	case researchgap.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.topics))
		for id := range m.topics {
			ids = append(ids, id)
		}
		return ids
	case researchgap.EdgeValidationPapers:
		ids := make([]ent.Value, 0, len(m.validation_papers))
		for id := range m.validation_papers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearchGapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtopics != nil {
		edges = append(edges, researchgap.EdgeTopics)
	}
	if m.removedvalidation_papers != nil {
		edges = append(edges, researchgap.EdgeValidationPapers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearchGapMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researchgap.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.removedtopics))
		for id := range m.removedtopics {
			ids = append(ids, id)
		}
		return ids
	case researchgap.EdgeValidationPapers:
		ids := make([]ent.Value, 0, len(m.removedvalidation_papers))
		for id := range m.removedvalidation_papers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearchGapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedanalysis {
		edges = append(edges, researchgap.EdgeAnalysis)
	}
	if m.clearedtopics {
		edges = append(edges, researchgap.EdgeTopics)
	}
	if m.clearedvalidation_papers {
		edges = append(edges, researchgap.EdgeValidationPapers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearchGapMutation) EdgeCleared(name string) bool {
	switch name {
	case researchgap.EdgeAnalysis:
		return m.clearedanalysis
	case researchgap.EdgeTopics:
		return m.clearedtopics
	case researchgap.EdgeValidationPapers:
		return m.clearedvalidation_papers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearchGapMutation) ClearEdge(name string) error {
	switch name {
	case researchgap.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown ResearchGap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearchGapMutation) ResetEdge(name string) error {
	switch name {
	case researchgap.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	case researchgap.EdgeTopics:
		m.ResetTopics()
		return nil
	case researchgap.EdgeValidationPapers:
		m.ResetValidationPapers()
		return nil
	}
	return fmt.Errorf("unknown ResearchGap edge %s", name)
}
