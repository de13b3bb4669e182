// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scholarai/gapfinder/ent/gapvalidationpaper"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// GapValidationPaperUpdate is the builder for updating GapValidationPaper entities.
type GapValidationPaperUpdate struct {
	config
	hooks    []Hook
	mutation *GapValidationPaperMutation
}

// Where appends a list predicates to the GapValidationPaperUpdate builder.
func (_u *GapValidationPaperUpdate) Where(ps ...predicate.GapValidationPaper) *GapValidationPaperUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *GapValidationPaperUpdate) SetTitle(v string) *GapValidationPaperUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableTitle(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *GapValidationPaperUpdate) SetDoi(v string) *GapValidationPaperUpdate {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableDoi(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *GapValidationPaperUpdate) ClearDoi() *GapValidationPaperUpdate {
	_u.mutation.ClearDoi()
	return _u
}

// SetURL sets the "url" field.
func (_u *GapValidationPaperUpdate) SetURL(v string) *GapValidationPaperUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableURL(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *GapValidationPaperUpdate) ClearURL() *GapValidationPaperUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *GapValidationPaperUpdate) SetPublicationDate(v time.Time) *GapValidationPaperUpdate {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillablePublicationDate(v *time.Time) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (_u *GapValidationPaperUpdate) ClearPublicationDate() *GapValidationPaperUpdate {
	_u.mutation.ClearPublicationDate()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *GapValidationPaperUpdate) SetExtractionStatus(v string) *GapValidationPaperUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableExtractionStatus(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (_u *GapValidationPaperUpdate) ClearExtractionStatus() *GapValidationPaperUpdate {
	_u.mutation.ClearExtractionStatus()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *GapValidationPaperUpdate) SetExtractedText(v string) *GapValidationPaperUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableExtractedText(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *GapValidationPaperUpdate) ClearExtractedText() *GapValidationPaperUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *GapValidationPaperUpdate) SetExtractionError(v string) *GapValidationPaperUpdate {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableExtractionError(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *GapValidationPaperUpdate) ClearExtractionError() *GapValidationPaperUpdate {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *GapValidationPaperUpdate) SetRelevanceScore(v float64) *GapValidationPaperUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableRelevanceScore(v *float64) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *GapValidationPaperUpdate) AddRelevanceScore(v float64) *GapValidationPaperUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (_u *GapValidationPaperUpdate) ClearRelevanceScore() *GapValidationPaperUpdate {
	_u.mutation.ClearRelevanceScore()
	return _u
}

// SetSupportsGap sets the "supports_gap" field.
func (_u *GapValidationPaperUpdate) SetSupportsGap(v bool) *GapValidationPaperUpdate {
	_u.mutation.SetSupportsGap(v)
	return _u
}

// SetNillableSupportsGap sets the "supports_gap" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableSupportsGap(v *bool) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetSupportsGap(*v)
	}
	return _u
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (_u *GapValidationPaperUpdate) SetConflictsWithGap(v bool) *GapValidationPaperUpdate {
	_u.mutation.SetConflictsWithGap(v)
	return _u
}

// SetNillableConflictsWithGap sets the "conflicts_with_gap" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableConflictsWithGap(v *bool) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetConflictsWithGap(*v)
	}
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *GapValidationPaperUpdate) SetKeyFindings(v string) *GapValidationPaperUpdate {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// SetNillableKeyFindings sets the "key_findings" field if the given value is not nil.
func (_u *GapValidationPaperUpdate) SetNillableKeyFindings(v *string) *GapValidationPaperUpdate {
	if v != nil {
		_u.SetKeyFindings(*v)
	}
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *GapValidationPaperUpdate) ClearKeyFindings() *GapValidationPaperUpdate {
	_u.mutation.ClearKeyFindings()
	return _u
}

// Mutation returns the GapValidationPaperMutation object of the builder.
func (_u *GapValidationPaperUpdate) Mutation() *GapValidationPaperMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapValidationPaperUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapValidationPaperUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapValidationPaperUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapValidationPaperUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapValidationPaperUpdate) check() error {
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GapValidationPaper.gap"`)
	}
	return nil
}

func (_u *GapValidationPaperUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapvalidationpaper.Table, gapvalidationpaper.Columns, sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gapvalidationpaper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(gapvalidationpaper.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(gapvalidationpaper.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(gapvalidationpaper.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(gapvalidationpaper.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(gapvalidationpaper.FieldPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.PublicationDateCleared() {
		_spec.ClearField(gapvalidationpaper.FieldPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionStatus, field.TypeString, value)
	}
	if _u.mutation.ExtractionStatusCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.RelevanceScoreCleared() {
		_spec.ClearField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SupportsGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldSupportsGap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConflictsWithGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldConflictsWithGap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(gapvalidationpaper.FieldKeyFindings, field.TypeString, value)
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(gapvalidationpaper.FieldKeyFindings, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapvalidationpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapValidationPaperUpdateOne is the builder for updating a single GapValidationPaper entity.
type GapValidationPaperUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapValidationPaperMutation
}

// SetTitle sets the "title" field.
func (_u *GapValidationPaperUpdateOne) SetTitle(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableTitle(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDoi sets the "doi" field.
func (_u *GapValidationPaperUpdateOne) SetDoi(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableDoi(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *GapValidationPaperUpdateOne) ClearDoi() *GapValidationPaperUpdateOne {
	_u.mutation.ClearDoi()
	return _u
}

// SetURL sets the "url" field.
func (_u *GapValidationPaperUpdateOne) SetURL(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableURL(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *GapValidationPaperUpdateOne) ClearURL() *GapValidationPaperUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetPublicationDate sets the "publication_date" field.
func (_u *GapValidationPaperUpdateOne) SetPublicationDate(v time.Time) *GapValidationPaperUpdateOne {
	_u.mutation.SetPublicationDate(v)
	return _u
}

// SetNillablePublicationDate sets the "publication_date" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillablePublicationDate(v *time.Time) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetPublicationDate(*v)
	}
	return _u
}

// ClearPublicationDate clears the value of the "publication_date" field.
func (_u *GapValidationPaperUpdateOne) ClearPublicationDate() *GapValidationPaperUpdateOne {
	_u.mutation.ClearPublicationDate()
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *GapValidationPaperUpdateOne) SetExtractionStatus(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableExtractionStatus(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// ClearExtractionStatus clears the value of the "extraction_status" field.
func (_u *GapValidationPaperUpdateOne) ClearExtractionStatus() *GapValidationPaperUpdateOne {
	_u.mutation.ClearExtractionStatus()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *GapValidationPaperUpdateOne) SetExtractedText(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableExtractedText(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *GapValidationPaperUpdateOne) ClearExtractedText() *GapValidationPaperUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetExtractionError sets the "extraction_error" field.
func (_u *GapValidationPaperUpdateOne) SetExtractionError(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetExtractionError(v)
	return _u
}

// SetNillableExtractionError sets the "extraction_error" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableExtractionError(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetExtractionError(*v)
	}
	return _u
}

// ClearExtractionError clears the value of the "extraction_error" field.
func (_u *GapValidationPaperUpdateOne) ClearExtractionError() *GapValidationPaperUpdateOne {
	_u.mutation.ClearExtractionError()
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *GapValidationPaperUpdateOne) SetRelevanceScore(v float64) *GapValidationPaperUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableRelevanceScore(v *float64) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *GapValidationPaperUpdateOne) AddRelevanceScore(v float64) *GapValidationPaperUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// ClearRelevanceScore clears the value of the "relevance_score" field.
func (_u *GapValidationPaperUpdateOne) ClearRelevanceScore() *GapValidationPaperUpdateOne {
	_u.mutation.ClearRelevanceScore()
	return _u
}

// SetSupportsGap sets the "supports_gap" field.
func (_u *GapValidationPaperUpdateOne) SetSupportsGap(v bool) *GapValidationPaperUpdateOne {
	_u.mutation.SetSupportsGap(v)
	return _u
}

// SetNillableSupportsGap sets the "supports_gap" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableSupportsGap(v *bool) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetSupportsGap(*v)
	}
	return _u
}

// SetConflictsWithGap sets the "conflicts_with_gap" field.
func (_u *GapValidationPaperUpdateOne) SetConflictsWithGap(v bool) *GapValidationPaperUpdateOne {
	_u.mutation.SetConflictsWithGap(v)
	return _u
}

// SetNillableConflictsWithGap sets the "conflicts_with_gap" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableConflictsWithGap(v *bool) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetConflictsWithGap(*v)
	}
	return _u
}

// SetKeyFindings sets the "key_findings" field.
func (_u *GapValidationPaperUpdateOne) SetKeyFindings(v string) *GapValidationPaperUpdateOne {
	_u.mutation.SetKeyFindings(v)
	return _u
}

// SetNillableKeyFindings sets the "key_findings" field if the given value is not nil.
func (_u *GapValidationPaperUpdateOne) SetNillableKeyFindings(v *string) *GapValidationPaperUpdateOne {
	if v != nil {
		_u.SetKeyFindings(*v)
	}
	return _u
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (_u *GapValidationPaperUpdateOne) ClearKeyFindings() *GapValidationPaperUpdateOne {
	_u.mutation.ClearKeyFindings()
	return _u
}

// Mutation returns the GapValidationPaperMutation object of the builder.
func (_u *GapValidationPaperUpdateOne) Mutation() *GapValidationPaperMutation {
	return _u.mutation
}

// Where appends a list predicates to the GapValidationPaperUpdate builder.
func (_u *GapValidationPaperUpdateOne) Where(ps ...predicate.GapValidationPaper) *GapValidationPaperUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapValidationPaperUpdateOne) Select(field string, fields ...string) *GapValidationPaperUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GapValidationPaper entity.
func (_u *GapValidationPaperUpdateOne) Save(ctx context.Context) (*GapValidationPaper, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapValidationPaperUpdateOne) SaveX(ctx context.Context) *GapValidationPaper {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapValidationPaperUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapValidationPaperUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GapValidationPaperUpdateOne) check() error {
	if _u.mutation.GapCleared() && len(_u.mutation.GapIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GapValidationPaper.gap"`)
	}
	return nil
}

func (_u *GapValidationPaperUpdateOne) sqlSave(ctx context.Context) (_node *GapValidationPaper, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gapvalidationpaper.Table, gapvalidationpaper.Columns, sqlgraph.NewFieldSpec(gapvalidationpaper.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GapValidationPaper.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gapvalidationpaper.FieldID)
		for _, f := range fields {
			if !gapvalidationpaper.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gapvalidationpaper.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(gapvalidationpaper.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(gapvalidationpaper.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(gapvalidationpaper.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(gapvalidationpaper.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(gapvalidationpaper.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.PublicationDate(); ok {
		_spec.SetField(gapvalidationpaper.FieldPublicationDate, field.TypeTime, value)
	}
	if _u.mutation.PublicationDateCleared() {
		_spec.ClearField(gapvalidationpaper.FieldPublicationDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionStatus, field.TypeString, value)
	}
	if _u.mutation.ExtractionStatusCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractionStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionError(); ok {
		_spec.SetField(gapvalidationpaper.FieldExtractionError, field.TypeString, value)
	}
	if _u.mutation.ExtractionErrorCleared() {
		_spec.ClearField(gapvalidationpaper.FieldExtractionError, field.TypeString)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.RelevanceScoreCleared() {
		_spec.ClearField(gapvalidationpaper.FieldRelevanceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SupportsGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldSupportsGap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConflictsWithGap(); ok {
		_spec.SetField(gapvalidationpaper.FieldConflictsWithGap, field.TypeBool, value)
	}
	if value, ok := _u.mutation.KeyFindings(); ok {
		_spec.SetField(gapvalidationpaper.FieldKeyFindings, field.TypeString, value)
	}
	if _u.mutation.KeyFindingsCleared() {
		_spec.ClearField(gapvalidationpaper.FieldKeyFindings, field.TypeString)
	}
	_node = &GapValidationPaper{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapvalidationpaper.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
