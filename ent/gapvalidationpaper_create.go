// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/researchgap"
)

// GapValidationPaperCreate is the builder for creating a GapValidationPaper entity.
type GapValidationPaperCreate struct {
	config
	mutation *GapValidationPaperMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResearchGapID sets the "research_gap_id" field.
func (_c *GapValidationPaperCreate) SetResearchGapID(v uuid.UUID) *GapValidationPaperCreate {
	_c.mutation.SetResearchGapID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *GapValidationPaperCreate) SetTitle(v string) *GapValidationPaperCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDoi sets the "doi" field.
func (_c *GapValidationPaperCreate) SetDoi(v string) *GapValidationPaperCreate {
	_c.mutation.SetDoi(v)
	return _c
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableDoi(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetDoi(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *GapValidationPaperCreate) SetURL(v string) *GapValidationPaperCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableURL(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetPublicationDate sets the "publication_date" field.
func (_c *GapValidationPaperCreate) SetPublicationDate(v time.Time) *GapValidationPaperCreate {
	_c.mutation.SetPublicationDate(v)
	return _c
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillablePublicationDate(v *time.Time) *GapValidationPaperCreate {
	if v != nil {
		_c.SetPublicationDate(*v)
	}
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *GapValidationPaperCreate) SetExtractionStatus(v string) *GapValidationPaperCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableExtractionStatus(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *GapValidationPaperCreate) SetExtractedText(v string) *GapValidationPaperCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableExtractedText(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetExtractionError sets the "extraction_error" field.
func (_c *GapValidationPaperCreate) SetExtractionError(v string) *GapValidationPaperCreate {
	_c.mutation.SetExtractionError(v)
	return _c
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableExtractionError(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetExtractionError(*v)
	}
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *GapValidationPaperCreate) SetRelevanceScore(v float64) *GapValidationPaperCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableRelevanceScore(v *float64) *GapValidationPaperCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetSupportsGap sets the "supports_gap" field.
func (_c *GapValidationPaperCreate) SetSupportsGap(v bool) *GapValidationPaperCreate {
	_c.mutation.SetSupportsGap(v)
	return _c
}

// SetNillableSupportsGap sets the "supports_gap" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableSupportsGap(v *bool) *GapValidationPaperCreate {
	if v != nil {
		_c.SetSupportsGap(*v)
	}
	return _c
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (_c *GapValidationPaperCreate) SetConflictsWithGap(v bool) *GapValidationPaperCreate {
	_c.mutation.SetConflictsWithGap(v)
	return _c
}

// SetNillableConflictsWithGap sets the "conflicts_with_gap" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableConflictsWithGap(v *bool) *GapValidationPaperCreate {
	if v != nil {
		_c.SetConflictsWithGap(*v)
	}
	return _c
}

// SetKeyFindings sets the "key_findings" field.
func (_c *GapValidationPaperCreate) SetKeyFindings(v string) *GapValidationPaperCreate {
	_c.mutation.SetKeyFindings(v)
	return _c
}

// SetNillableKeyFindings sets the "key_findings" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableKeyFindings(v *string) *GapValidationPaperCreate {
	if v != nil {
		_c.SetKeyFindings(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GapValidationPaperCreate) SetID(v uuid.UUID) *GapValidationPaperCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GapValidationPaperCreate) SetNillableID(v *uuid.UUID) *GapValidationPaperCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetGapID sets the "gap" edge to the ResearchGap entity by ID.
func (_c *GapValidationPaperCreate) SetGapID(id uuid.UUID) *GapValidationPaperCreate {
	_c.mutation.SetGapID(id)
	return _c
}

// SetGap sets the "gap" edge to the ResearchGap entity.
func (_c *GapValidationPaperCreate) SetGap(v *ResearchGap) *GapValidationPaperCreate {
	return _c.SetGapID(v.ID)
}

// Mutation returns the GapValidationPaperMutation object of the builder.
func (_c *GapValidationPaperCreate) Mutation() *GapValidationPaperMutation {
	return _c.mutation
}

// Save creates the GapValidationPaper in the database.
func (_c *GapValidationPaperCreate) Save(ctx context.Context) (*GapValidationPaper, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapValidationPaperCreate) SaveX(ctx context.Context) *GapValidationPaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapValidationPaperCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapValidationPaperCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapValidationPaperCreate) defaults() {
	if _, ok := _c.mutation.SupportsGap(); !ok {
		v := gapvalidationpaper.DefaultSupportsGap
		_c.mutation.SetSupportsGap(v)
	}
	if _, ok := _c.mutation.ConflictsWithGap(); !ok {
		v := gapvalidationpaper.DefaultConflictsWithGap
		_c.mutation.SetConflictsWithGap(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := gapvalidationpaper.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapValidationPaperCreate) check() error {
	if _, ok := _c.mutation.ResearchGapID(); !ok {
		return &ValidationError{Name: "research_gap_id", err: errors.New(`ent: missing required field "GapValidationPaper.research_gap_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "GapValidationPaper.title"`)}
	}
	if _, ok := _c.mutation.SupportsGap(); !ok {
		return &ValidationError{Name: "supports_gap", err: errors.New(`ent: missing required field "GapValidationPaper.supports_gap"`)}
	}
	if _, ok := _c.mutation.ConflictsWithGap(); !ok {
		return &ValidationError{Name: "conflicts_with_gap", err: errors.New(`ent: missing required field "GapValidationPaper.conflicts_with_gap"`)}
	}
	if len(_c.mutation.GapIDs()) == 0 {
		return &ValidationError{Name: "gap", err: errors.New(`ent: missing required edge "GapValidationPaper.gap"`)}
	}
	return nil
}

func (_c *GapValidationPaperCreate) sqlSave(ctx context.Context) (*GapValidationPaper, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GapValidationPaperCreate) createSpec() (*GapValidationPaper, *sqlgraph.CreateSpec) {
	var (
		_node = &GapValidationPaper{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gapvalidationpaper.Table, sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(gapvalidationpaper.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Doi(); ok {
		_spec.SetField(gapvalidationpaper.FieldDoi, field.TypeString, value)
		_node.Doi = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(gapvalidationpaper.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.PublicationDate(); ok {
		_spec.SetField(gapvalidationpaper.FieldPublicationDate, field.TypeTime, value)
		_node.PublicationDate = &value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = &value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.ExtractionError(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionError, field.TypeString, value)
		_node.ExtractionError = &value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = &value
	}
	if value, ok := _c.mutation.SupportsGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldSupportsGap, field.TypeBool, value)
		_node.SupportsGap = value
	}
	if value, ok := _c.mutation.ConflictsWithGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldConflictsWithGap, field.TypeBool, value)
		_node.ConflictsWithGap = value
	}
	if value, ok := _c.mutation.KeyFindings(); ok {
		_spec.SetField(gapvalidationpaper.FieldKeyFindings, field.TypeString, value)
		_node.KeyFindings = &value
	}
	if nodes := _c.mutation.GapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gapvalidationpaper.GapTable,
			Columns: []string{gapvalidationpaper.GapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchgap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResearchGapID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapValidationPaper.Create().
//		SetResearchGapID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapValidationPaperUpsert) {
//			SetResearchGapID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapValidationPaperCreate) OnConflict(opts ...sql.ConflictOption) *GapValidationPaperUpsertOne {
	_c.conflict = opts
	return &GapValidationPaperUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapValidationPaperCreate) OnConflictColumns(columns ...string) *GapValidationPaperUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapValidationPaperUpsertOne{
		create: _c,
	}
}

type (
	// GapValidationPaperUpsertOne is the builder for "upsert"-ing
	//  one GapValidationPaper node.
	GapValidationPaperUpsertOne struct {
		create *GapValidationPaperCreate
	}

	// GapValidationPaperUpsert is the "OnConflict" setter.
	GapValidationPaperUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *GapValidationPaperUpsert) SetTitle(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateTitle() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldTitle)
	return u
}

// SetDoi sets the "doi" field.
func (u *GapValidationPaperUpsert) SetDoi(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldDoi, v)
	return u
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateDoi() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldDoi)
	return u
}

// ClearDoi clears the value of the "doi" field.
func (u *GapValidationPaperUpsert) ClearDoi() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldDoi)
	return u
}

// SetURL sets the "url" field.
func (u *GapValidationPaperUpsert) SetURL(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateURL() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *GapValidationPaperUpsert) ClearURL() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldURL)
	return u
}

// SetPublicationDate sets the "publication_date" field.
func (u *GapValidationPaperUpsert) SetPublicationDate(v time.Time) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldPublicationDate, v)
	return u
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdatePublicationDate() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldPublicationDate)
	return u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *GapValidationPaperUpsert) ClearPublicationDate() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldPublicationDate)
	return u
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *GapValidationPaperUpsert) SetExtractionStatus(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldExtractionStatus, v)
	return u
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateExtractionStatus() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldExtractionStatus)
	return u
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (u *GapValidationPaperUpsert) ClearExtractionStatus() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldExtractionStatus)
	return u
}

// SetExtractedText sets the "extracted_text" field.
func (u *GapValidationPaperUpsert) SetExtractedText(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldExtractedText, v)
	return u
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateExtractedText() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldExtractedText)
	return u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (u *GapValidationPaperUpsert) ClearExtractedText() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldExtractedText)
	return u
}

// SetExtractionError sets the "extraction_error" field.
func (u *GapValidationPaperUpsert) SetExtractionError(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldExtractionError, v)
	return u
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateExtractionError() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldExtractionError)
	return u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *GapValidationPaperUpsert) ClearExtractionError() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldExtractionError)
	return u
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapValidationPaperUpsert) SetRelevanceScore(v float64) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldRelevanceScore, v)
	return u
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateRelevanceScore() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldRelevanceScore)
	return u
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapValidationPaperUpsert) AddRelevanceScore(v float64) *GapValidationPaperUpsert {
	u.Add(gapvalidationpaper.FieldRelevanceScore, v)
	return u
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (u *GapValidationPaperUpsert) ClearRelevanceScore() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldRelevanceScore)
	return u
}

// SetSupportsGap sets the "supports_gap" field.
func (u *GapValidationPaperUpsert) SetSupportsGap(v bool) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldSupportsGap, v)
	return u
}

// UpdateSupportsGap sets the "supports_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateSupportsGap() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldSupportsGap)
	return u
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (u *GapValidationPaperUpsert) SetConflictsWithGap(v bool) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldConflictsWithGap, v)
	return u
}

// UpdateConflictsWithGap sets the "conflicts_with_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateConflictsWithGap() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldConflictsWithGap)
	return u
}

// SetKeyFindings sets the "key_findings" field.
func (u *GapValidationPaperUpsert) SetKeyFindings(v string) *GapValidationPaperUpsert {
	u.Set(gapvalidationpaper.FieldKeyFindings, v)
	return u
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *GapValidationPaperUpsert) UpdateKeyFindings() *GapValidationPaperUpsert {
	u.SetExcluded(gapvalidationpaper.FieldKeyFindings)
	return u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *GapValidationPaperUpsert) ClearKeyFindings() *GapValidationPaperUpsert {
	u.SetNull(gapvalidationpaper.FieldKeyFindings)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gapvalidationpaper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapValidationPaperUpsertOne) UpdateNewValues() *GapValidationPaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gapvalidationpaper.FieldID)
		}
		if _, exists := u.create.mutation.ResearchGapID(); exists {
			s.SetIgnore(gapvalidationpaper.FieldResearchGapID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GapValidationPaperUpsertOne) Ignore() *GapValidationPaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapValidationPaperUpsertOne) DoNothing() *GapValidationPaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapValidationPaperCreate.OnConflict
// documentation for more info.
func (u *GapValidationPaperUpsertOne) Update(set func(*GapValidationPaperUpsert)) *GapValidationPaperUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapValidationPaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *GapValidationPaperUpsertOne) SetTitle(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateTitle() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateTitle()
	})
}

// SetDoi sets the "doi" field.
func (u *GapValidationPaperUpsertOne) SetDoi(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateDoi() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *GapValidationPaperUpsertOne) ClearDoi() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearDoi()
	})
}

// SetURL sets the "url" field.
func (u *GapValidationPaperUpsertOne) SetURL(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateURL() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *GapValidationPaperUpsertOne) ClearURL() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearURL()
	})
}

// SetPublicationDate sets the "publication_date" field.
func (u *GapValidationPaperUpsertOne) SetPublicationDate(v time.Time) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetPublicationDate(v)
	})
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdatePublicationDate() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdatePublicationDate()
	})
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *GapValidationPaperUpsertOne) ClearPublicationDate() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearPublicationDate()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *GapValidationPaperUpsertOne) SetExtractionStatus(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateExtractionStatus() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractionStatus()
	})
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (u *GapValidationPaperUpsertOne) ClearExtractionStatus() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractionStatus()
	})
}

// SetExtractedText sets the "extracted_text" field.
func (u *GapValidationPaperUpsertOne) SetExtractedText(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractedText(v)
	})
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateExtractedText() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractedText()
	})
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (u *GapValidationPaperUpsertOne) ClearExtractedText() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractedText()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *GapValidationPaperUpsertOne) SetExtractionError(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateExtractionError() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *GapValidationPaperUpsertOne) ClearExtractionError() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractionError()
	})
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapValidationPaperUpsertOne) SetRelevanceScore(v float64) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapValidationPaperUpsertOne) AddRelevanceScore(v float64) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateRelevanceScore() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateRelevanceScore()
	})
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (u *GapValidationPaperUpsertOne) ClearRelevanceScore() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearRelevanceScore()
	})
}

// SetSupportsGap sets the "supports_gap" field.
func (u *GapValidationPaperUpsertOne) SetSupportsGap(v bool) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetSupportsGap(v)
	})
}

// UpdateSupportsGap sets the "supports_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateSupportsGap() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateSupportsGap()
	})
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (u *GapValidationPaperUpsertOne) SetConflictsWithGap(v bool) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetConflictsWithGap(v)
	})
}

// UpdateConflictsWithGap sets the "conflicts_with_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateConflictsWithGap() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateConflictsWithGap()
	})
}

// SetKeyFindings sets the "key_findings" field.
func (u *GapValidationPaperUpsertOne) SetKeyFindings(v string) *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetKeyFindings(v)
	})
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *GapValidationPaperUpsertOne) UpdateKeyFindings() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateKeyFindings()
	})
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *GapValidationPaperUpsertOne) ClearKeyFindings() *GapValidationPaperUpsertOne {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearKeyFindings()
	})
}

// Exec executes the query.
func (u *GapValidationPaperUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapValidationPaperCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapValidationPaperUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GapValidationPaperUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GapValidationPaperUpsertOne.ID is not supported by MySQL driver. Use GapValidationPaperUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GapValidationPaperUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GapValidationPaperCreateBulk is the builder for creating many GapValidationPaper entities in bulk.
type GapValidationPaperCreateBulk struct {
	config
	err      error
	builders []*GapValidationPaperCreate
	conflict []sql.ConflictOption
}

// Save creates the GapValidationPaper entities in the database.
func (_c *GapValidationPaperCreateBulk) Save(ctx context.Context) ([]*GapValidationPaper, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GapValidationPaper, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapValidationPaperMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GapValidationPaperCreateBulk) SaveX(ctx context.Context) []*GapValidationPaper {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapValidationPaperCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapValidationPaperCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GapValidationPaper.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GapValidationPaperUpsert) {
//			SetResearchGapID(v+v).
//		}).
//		Exec(ctx)
func (_c *GapValidationPaperCreateBulk) OnConflict(opts ...sql.ConflictOption) *GapValidationPaperUpsertBulk {
	_c.conflict = opts
	return &GapValidationPaperUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GapValidationPaperCreateBulk) OnConflictColumns(columns ...string) *GapValidationPaperUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GapValidationPaperUpsertBulk{
		create: _c,
	}
}

// GapValidationPaperUpsertBulk is the builder for "upsert"-ing
// a bulk of GapValidationPaper nodes.
type GapValidationPaperUpsertBulk struct {
	create *GapValidationPaperCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gapvalidationpaper.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GapValidationPaperUpsertBulk) UpdateNewValues() *GapValidationPaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gapvalidationpaper.FieldID)
			}
			if _, exists := b.mutation.ResearchGapID(); exists {
				s.SetIgnore(gapvalidationpaper.FieldResearchGapID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GapValidationPaper.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GapValidationPaperUpsertBulk) Ignore() *GapValidationPaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GapValidationPaperUpsertBulk) DoNothing() *GapValidationPaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GapValidationPaperCreateBulk.OnConflict
// documentation for more info.
func (u *GapValidationPaperUpsertBulk) Update(set func(*GapValidationPaperUpsert)) *GapValidationPaperUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GapValidationPaperUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *GapValidationPaperUpsertBulk) SetTitle(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateTitle() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateTitle()
	})
}

// SetDoi sets the "doi" field.
func (u *GapValidationPaperUpsertBulk) SetDoi(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetDoi(v)
	})
}

// UpdateDoi sets the "doi" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateDoi() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateDoi()
	})
}

// ClearDoi clears the value of the "doi" field.
func (u *GapValidationPaperUpsertBulk) ClearDoi() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearDoi()
	})
}

// SetURL sets the "url" field.
func (u *GapValidationPaperUpsertBulk) SetURL(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateURL() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *GapValidationPaperUpsertBulk) ClearURL() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearURL()
	})
}

// SetPublicationDate sets the "publication_date" field.
func (u *GapValidationPaperUpsertBulk) SetPublicationDate(v time.Time) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetPublicationDate(v)
	})
}

// UpdatePublicationDate sets the "publication_date" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdatePublicationDate() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdatePublicationDate()
	})
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (u *GapValidationPaperUpsertBulk) ClearPublicationDate() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearPublicationDate()
	})
}

// SetExtractionStatus sets the "extraction_status" field.
func (u *GapValidationPaperUpsertBulk) SetExtractionStatus(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractionStatus(v)
	})
}

// UpdateExtractionStatus sets the "extraction_status" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateExtractionStatus() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractionStatus()
	})
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (u *GapValidationPaperUpsertBulk) ClearExtractionStatus() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractionStatus()
	})
}

// SetExtractedText sets the "extracted_text" field.
func (u *GapValidationPaperUpsertBulk) SetExtractedText(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractedText(v)
	})
}

// UpdateExtractedText sets the "extracted_text" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateExtractedText() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractedText()
	})
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (u *GapValidationPaperUpsertBulk) ClearExtractedText() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractedText()
	})
}

// SetExtractionError sets the "extraction_error" field.
func (u *GapValidationPaperUpsertBulk) SetExtractionError(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetExtractionError(v)
	})
}

// UpdateExtractionError sets the "extraction_error" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateExtractionError() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateExtractionError()
	})
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (u *GapValidationPaperUpsertBulk) ClearExtractionError() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearExtractionError()
	})
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *GapValidationPaperUpsertBulk) SetRelevanceScore(v float64) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *GapValidationPaperUpsertBulk) AddRelevanceScore(v float64) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateRelevanceScore() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateRelevanceScore()
	})
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (u *GapValidationPaperUpsertBulk) ClearRelevanceScore() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearRelevanceScore()
	})
}

// SetSupportsGap sets the "supports_gap" field.
func (u *GapValidationPaperUpsertBulk) SetSupportsGap(v bool) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetSupportsGap(v)
	})
}

// UpdateSupportsGap sets the "supports_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateSupportsGap() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateSupportsGap()
	})
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (u *GapValidationPaperUpsertBulk) SetConflictsWithGap(v bool) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetConflictsWithGap(v)
	})
}

// UpdateConflictsWithGap sets the "conflicts_with_gap" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateConflictsWithGap() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateConflictsWithGap()
	})
}

// SetKeyFindings sets the "key_findings" field.
func (u *GapValidationPaperUpsertBulk) SetKeyFindings(v string) *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.SetKeyFindings(v)
	})
}

// UpdateKeyFindings sets the "key_findings" field to the value that was provided on create.
func (u *GapValidationPaperUpsertBulk) UpdateKeyFindings() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.UpdateKeyFindings()
	})
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (u *GapValidationPaperUpsertBulk) ClearKeyFindings() *GapValidationPaperUpsertBulk {
	return u.Update(func(s *GapValidationPaperUpsert) {
		s.ClearKeyFindings()
	})
}

// Exec executes the query.
func (u *GapValidationPaperUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GapValidationPaperCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GapValidationPaperCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GapValidationPaperUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
