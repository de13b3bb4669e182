// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

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
	"github.com/scholarai/gapfinder/ent/researchgap"
	"github.com/scholarai/gapfinder/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractedfigureFields := schema.ExtractedFigure{}.Fields()
	_ = extractedfigureFields
	// extractedfigureDescOrderIndex is the schema descriptor for order_index field.
	extractedfigureDescOrderIndex := extractedfigureFields[5].Descriptor()
	// extractedfigure.DefaultOrderIndex holds the default value on creation for the order_index field.
	extractedfigure.DefaultOrderIndex = extractedfigureDescOrderIndex.Default.(int)
	// extractedfigureDescID is the schema descriptor for id field.
	extractedfigureDescID := extractedfigureFields[0].Descriptor()
	// extractedfigure.DefaultID holds the default value on creation for the id field.
	extractedfigure.DefaultID = extractedfigureDescID.Default.(func() uuid.UUID)
	extractedparagraphFields := schema.ExtractedParagraph{}.Fields()
	_ = extractedparagraphFields
	// extractedparagraphDescOrderIndex is the schema descriptor for order_index field.
	extractedparagraphDescOrderIndex := extractedparagraphFields[4].Descriptor()
	// extractedparagraph.DefaultOrderIndex holds the default value on creation for the order_index field.
	extractedparagraph.DefaultOrderIndex = extractedparagraphDescOrderIndex.Default.(int)
	// extractedparagraphDescID is the schema descriptor for id field.
	extractedparagraphDescID := extractedparagraphFields[0].Descriptor()
	// extractedparagraph.DefaultID holds the default value on creation for the id field.
	extractedparagraph.DefaultID = extractedparagraphDescID.Default.(func() uuid.UUID)
	extractedsectionFields := schema.ExtractedSection{}.Fields()
	_ = extractedsectionFields
	// extractedsectionDescOrderIndex is the schema descriptor for order_index field.
	extractedsectionDescOrderIndex := extractedsectionFields[5].Descriptor()
	// extractedsection.DefaultOrderIndex holds the default value on creation for the order_index field.
	extractedsection.DefaultOrderIndex = extractedsectionDescOrderIndex.Default.(int)
	// extractedsectionDescID is the schema descriptor for id field.
	extractedsectionDescID := extractedsectionFields[0].Descriptor()
	// extractedsection.DefaultID holds the default value on creation for the id field.
	extractedsection.DefaultID = extractedsectionDescID.Default.(func() uuid.UUID)
	extractedtableFields := schema.ExtractedTable{}.Fields()
	_ = extractedtableFields
	// extractedtableDescOrderIndex is the schema descriptor for order_index field.
	extractedtableDescOrderIndex := extractedtableFields[5].Descriptor()
	// extractedtable.DefaultOrderIndex holds the default value on creation for the order_index field.
	extractedtable.DefaultOrderIndex = extractedtableDescOrderIndex.Default.(int)
	// extractedtableDescID is the schema descriptor for id field.
	extractedtableDescID := extractedtableFields[0].Descriptor()
	// extractedtable.DefaultID holds the default value on creation for the id field.
	extractedtable.DefaultID = extractedtableDescID.Default.(func() uuid.UUID)
	gapanalysisFields := schema.GapAnalysis{}.Fields()
	_ = gapanalysisFields
	// gapanalysisDescCorrelationID is the schema descriptor for correlation_id field.
	gapanalysisDescCorrelationID := gapanalysisFields[3].Descriptor()
	// gapanalysis.CorrelationIDValidator is a validator for the "correlation_id" field. It is called by the builders before save.
	gapanalysis.CorrelationIDValidator = gapanalysisDescCorrelationID.Validators[0].(func(string) error)
	// gapanalysisDescRequestID is the schema descriptor for request_id field.
	gapanalysisDescRequestID := gapanalysisFields[4].Descriptor()
	// gapanalysis.RequestIDValidator is a validator for the "request_id" field. It is called by the builders before save.
	gapanalysis.RequestIDValidator = gapanalysisDescRequestID.Validators[0].(func(string) error)
	// gapanalysisDescTotalGapsIdentified is the schema descriptor for total_gaps_identified field.
	gapanalysisDescTotalGapsIdentified := gapanalysisFields[10].Descriptor()
	// gapanalysis.DefaultTotalGapsIdentified holds the default value on creation for the total_gaps_identified field.
	gapanalysis.DefaultTotalGapsIdentified = gapanalysisDescTotalGapsIdentified.Default.(int)
	// gapanalysisDescValidGapsCount is the schema descriptor for valid_gaps_count field.
	gapanalysisDescValidGapsCount := gapanalysisFields[11].Descriptor()
	// gapanalysis.DefaultValidGapsCount holds the default value on creation for the valid_gaps_count field.
	gapanalysis.DefaultValidGapsCount = gapanalysisDescValidGapsCount.Default.(int)
	// gapanalysisDescInvalidGapsCount is the schema descriptor for invalid_gaps_count field.
	gapanalysisDescInvalidGapsCount := gapanalysisFields[12].Descriptor()
	// gapanalysis.DefaultInvalidGapsCount holds the default value on creation for the invalid_gaps_count field.
	gapanalysis.DefaultInvalidGapsCount = gapanalysisDescInvalidGapsCount.Default.(int)
	// gapanalysisDescModifiedGapsCount is the schema descriptor for modified_gaps_count field.
	gapanalysisDescModifiedGapsCount := gapanalysisFields[13].Descriptor()
	// gapanalysis.DefaultModifiedGapsCount holds the default value on creation for the modified_gaps_count field.
	gapanalysis.DefaultModifiedGapsCount = gapanalysisDescModifiedGapsCount.Default.(int)
	// gapanalysisDescCreatedAt is the schema descriptor for created_at field.
	gapanalysisDescCreatedAt := gapanalysisFields[14].Descriptor()
	// gapanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	gapanalysis.DefaultCreatedAt = gapanalysisDescCreatedAt.Default.(func() time.Time)
	// gapanalysisDescID is the schema descriptor for id field.
	gapanalysisDescID := gapanalysisFields[0].Descriptor()
	// gapanalysis.DefaultID holds the default value on creation for the id field.
	gapanalysis.DefaultID = gapanalysisDescID.Default.(func() uuid.UUID)
	gaptopicFields := schema.GapTopic{}.Fields()
	_ = gaptopicFields
	// gaptopicDescRelevanceScore is the schema descriptor for relevance_score field.
	gaptopicDescRelevanceScore := gaptopicFields[7].Descriptor()
	// gaptopic.DefaultRelevanceScore holds the default value on creation for the relevance_score field.
	gaptopic.DefaultRelevanceScore = gaptopicDescRelevanceScore.Default.(float64)
	// gaptopicDescID is the schema descriptor for id field.
	gaptopicDescID := gaptopicFields[0].Descriptor()
	// gaptopic.DefaultID holds the default value on creation for the id field.
	gaptopic.DefaultID = gaptopicDescID.Default.(func() uuid.UUID)
	gapvalidationpaperFields := schema.GapValidationPaper{}.Fields()
	_ = gapvalidationpaperFields
	// gapvalidationpaperDescSupportsGap is the schema descriptor for supports_gap field.
	gapvalidationpaperDescSupportsGap := gapvalidationpaperFields[10].Descriptor()
	// gapvalidationpaper.DefaultSupportsGap holds the default value on creation for the supports_gap field.
	gapvalidationpaper.DefaultSupportsGap = gapvalidationpaperDescSupportsGap.Default.(bool)
	// gapvalidationpaperDescConflictsWithGap is the schema descriptor for conflicts_with_gap field.
	gapvalidationpaperDescConflictsWithGap := gapvalidationpaperFields[11].Descriptor()
	// gapvalidationpaper.DefaultConflictsWithGap holds the default value on creation for the conflicts_with_gap field.
	gapvalidationpaper.DefaultConflictsWithGap = gapvalidationpaperDescConflictsWithGap.Default.(bool)
	// gapvalidationpaperDescID is the schema descriptor for id field.
	gapvalidationpaperDescID := gapvalidationpaperFields[0].Descriptor()
	// gapvalidationpaper.DefaultID holds the default value on creation for the id field.
	gapvalidationpaper.DefaultID = gapvalidationpaperDescID.Default.(func() uuid.UUID)
	paperFields := schema.Paper{}.Fields()
	_ = paperFields
	// paperDescIsOpenAccess is the schema descriptor for is_open_access field.
	paperDescIsOpenAccess := paperFields[9].Descriptor()
	// paper.DefaultIsOpenAccess holds the default value on creation for the is_open_access field.
	paper.DefaultIsOpenAccess = paperDescIsOpenAccess.Default.(bool)
	// paperDescID is the schema descriptor for id field.
	paperDescID := paperFields[0].Descriptor()
	// paper.DefaultID holds the default value on creation for the id field.
	paper.DefaultID = paperDescID.Default.(func() uuid.UUID)
	paperextractionFields := schema.PaperExtraction{}.Fields()
	_ = paperextractionFields
	// paperextractionDescID is the schema descriptor for id field.
	paperextractionDescID := paperextractionFields[0].Descriptor()
	// paperextraction.DefaultID holds the default value on creation for the id field.
	paperextraction.DefaultID = paperextractionDescID.Default.(func() uuid.UUID)
	researchgapFields := schema.ResearchGap{}.Fields()
	_ = researchgapFields
	// researchgapDescGapID is the schema descriptor for gap_id field.
	researchgapDescGapID := researchgapFields[2].Descriptor()
	// researchgap.GapIDValidator is a validator for the "gap_id" field. It is called by the builders before save.
	researchgap.GapIDValidator = researchgapDescGapID.Validators[0].(func(string) error)
	// researchgapDescOrderIndex is the schema descriptor for order_index field.
	researchgapDescOrderIndex := researchgapFields[3].Descriptor()
	// researchgap.DefaultOrderIndex holds the default value on creation for the order_index field.
	researchgap.DefaultOrderIndex = researchgapDescOrderIndex.Default.(int)
	// researchgapDescPapersAnalyzedCount is the schema descriptor for papers_analyzed_count field.
	researchgapDescPapersAnalyzedCount := researchgapFields[12].Descriptor()
	// researchgap.DefaultPapersAnalyzedCount holds the default value on creation for the papers_analyzed_count field.
	researchgap.DefaultPapersAnalyzedCount = researchgapDescPapersAnalyzedCount.Default.(int)
	// researchgapDescCreatedAt is the schema descriptor for created_at field.
	researchgapDescCreatedAt := researchgapFields[26].Descriptor()
	// researchgap.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchgap.DefaultCreatedAt = researchgapDescCreatedAt.Default.(func() time.Time)
	// researchgapDescID is the schema descriptor for id field.
	researchgapDescID := researchgapFields[0].Descriptor()
	// researchgap.DefaultID holds the default value on creation for the id field.
	researchgap.DefaultID = researchgapDescID.Default.(func() uuid.UUID)
}
