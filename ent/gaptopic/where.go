// Code generated by ent, DO NOT EDIT.

package gaptopic

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/scholarai/gapfinder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldID, id))
}

// ResearchGapID applies equality check predicate on the "research_gap_id" field. It's identical to ResearchGapIDEQ.
func ResearchGapID(v uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldResearchGapID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldDescription, v))
}

// MethodologySuggestions applies equality check predicate on the "methodology_suggestions" field. It's identical to MethodologySuggestionsEQ.
func MethodologySuggestions(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldMethodologySuggestions, v))
}

// ExpectedOutcomes applies equality check predicate on the "expected_outcomes" field. It's identical to ExpectedOutcomesEQ.
func ExpectedOutcomes(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldExpectedOutcomes, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldRelevanceScore, v))
}

// ResearchGapIDEQ applies the EQ predicate on the "research_gap_id" field.
func ResearchGapIDEQ(v uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldResearchGapID, v))
}

// ResearchGapIDNEQ applies the NEQ predicate on the "research_gap_id" field.
func ResearchGapIDNEQ(v uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldResearchGapID, v))
}

// ResearchGapIDIn applies the In predicate on the "research_gap_id" field.
func ResearchGapIDIn(vs ...uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldResearchGapID, vs...))
}

// ResearchGapIDNotIn applies the NotIn predicate on the "research_gap_id" field.
func ResearchGapIDNotIn(vs ...uuid.UUID) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldResearchGapID, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContainsFold(FieldDescription, v))
}

// ResearchQuestionsIsNil applies the IsNil predicate on the "research_questions" field.
func ResearchQuestionsIsNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIsNull(FieldResearchQuestions))
}

// ResearchQuestionsNotNil applies the NotNil predicate on the "research_questions" field.
func ResearchQuestionsNotNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotNull(FieldResearchQuestions))
}

// MethodologySuggestionsEQ applies the EQ predicate on the "methodology_suggestions" field.
func MethodologySuggestionsEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsNEQ applies the NEQ predicate on the "methodology_suggestions" field.
func MethodologySuggestionsNEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsIn applies the In predicate on the "methodology_suggestions" field.
func MethodologySuggestionsIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldMethodologySuggestions, vs...))
}

// MethodologySuggestionsNotIn applies the NotIn predicate on the "methodology_suggestions" field.
func MethodologySuggestionsNotIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldMethodologySuggestions, vs...))
}

// MethodologySuggestionsGT applies the GT predicate on the "methodology_suggestions" field.
func MethodologySuggestionsGT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsGTE applies the GTE predicate on the "methodology_suggestions" field.
func MethodologySuggestionsGTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsLT applies the LT predicate on the "methodology_suggestions" field.
func MethodologySuggestionsLT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsLTE applies the LTE predicate on the "methodology_suggestions" field.
func MethodologySuggestionsLTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsContains applies the Contains predicate on the "methodology_suggestions" field.
func MethodologySuggestionsContains(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContains(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsHasPrefix applies the HasPrefix predicate on the "methodology_suggestions" field.
func MethodologySuggestionsHasPrefix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasPrefix(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsHasSuffix applies the HasSuffix predicate on the "methodology_suggestions" field.
func MethodologySuggestionsHasSuffix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasSuffix(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsIsNil applies the IsNil predicate on the "methodology_suggestions" field.
func MethodologySuggestionsIsNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIsNull(FieldMethodologySuggestions))
}

// MethodologySuggestionsNotNil applies the NotNil predicate on the "methodology_suggestions" field.
func MethodologySuggestionsNotNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotNull(FieldMethodologySuggestions))
}

// MethodologySuggestionsEqualFold applies the EqualFold predicate on the "methodology_suggestions" field.
func MethodologySuggestionsEqualFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEqualFold(FieldMethodologySuggestions, v))
}

// MethodologySuggestionsContainsFold applies the ContainsFold predicate on the "methodology_suggestions" field.
func MethodologySuggestionsContainsFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContainsFold(FieldMethodologySuggestions, v))
}

// ExpectedOutcomesEQ applies the EQ predicate on the "expected_outcomes" field.
func ExpectedOutcomesEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesNEQ applies the NEQ predicate on the "expected_outcomes" field.
func ExpectedOutcomesNEQ(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesIn applies the In predicate on the "expected_outcomes" field.
func ExpectedOutcomesIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldExpectedOutcomes, vs...))
}

// ExpectedOutcomesNotIn applies the NotIn predicate on the "expected_outcomes" field.
func ExpectedOutcomesNotIn(vs ...string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldExpectedOutcomes, vs...))
}

// ExpectedOutcomesGT applies the GT predicate on the "expected_outcomes" field.
func ExpectedOutcomesGT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesGTE applies the GTE predicate on the "expected_outcomes" field.
func ExpectedOutcomesGTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesLT applies the LT predicate on the "expected_outcomes" field.
func ExpectedOutcomesLT(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesLTE applies the LTE predicate on the "expected_outcomes" field.
func ExpectedOutcomesLTE(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesContains applies the Contains predicate on the "expected_outcomes" field.
func ExpectedOutcomesContains(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContains(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesHasPrefix applies the HasPrefix predicate on the "expected_outcomes" field.
func ExpectedOutcomesHasPrefix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasPrefix(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesHasSuffix applies the HasSuffix predicate on the "expected_outcomes" field.
func ExpectedOutcomesHasSuffix(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldHasSuffix(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesIsNil applies the IsNil predicate on the "expected_outcomes" field.
func ExpectedOutcomesIsNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIsNull(FieldExpectedOutcomes))
}

// ExpectedOutcomesNotNil applies the NotNil predicate on the "expected_outcomes" field.
func ExpectedOutcomesNotNil() predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotNull(FieldExpectedOutcomes))
}

// ExpectedOutcomesEqualFold applies the EqualFold predicate on the "expected_outcomes" field.
func ExpectedOutcomesEqualFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEqualFold(FieldExpectedOutcomes, v))
}

// ExpectedOutcomesContainsFold applies the ContainsFold predicate on the "expected_outcomes" field.
func ExpectedOutcomesContainsFold(v string) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldContainsFold(FieldExpectedOutcomes, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.GapTopic {
	return predicate.GapTopic(sql.FieldLTE(FieldRelevanceScore, v))
}

// HasGap applies the HasEdge predicate on the "gap" edge.
func HasGap() predicate.GapTopic {
	return predicate.GapTopic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GapTable, GapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGapWith applies the HasEdge predicate on the "gap" edge with a given conditions (other predicates).
func HasGapWith(preds ...predicate.ResearchGap) predicate.GapTopic {
	return predicate.GapTopic(func(s *sql.Selector) {
		step := newGapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GapTopic) predicate.GapTopic {
	return predicate.GapTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GapTopic) predicate.GapTopic {
	return predicate.GapTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GapTopic) predicate.GapTopic {
	return predicate.GapTopic(sql.NotPredicates(p))
}
