// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractedFigure is the predicate function for extractedfigure builders.
type ExtractedFigure func(*sql.Selector)

// ExtractedParagraph is the predicate function for extractedparagraph builders.
type ExtractedParagraph func(*sql.Selector)

// ExtractedSection is the predicate function for extractedsection builders.
type ExtractedSection func(*sql.Selector)

// ExtractedTable is the predicate function for extractedtable builders.
type ExtractedTable func(*sql.Selector)

// GapAnalysis is the predicate function for gapanalysis builders.
type GapAnalysis func(*sql.Selector)

// GapTopic is the predicate function for gaptopic builders.
type GapTopic func(*sql.Selector)

// GapValidationPaper is the predicate function for gapvalidationpaper builders.
type GapValidationPaper func(*sql.Selector)

// Paper is the predicate function for paper builders.
type Paper func(*sql.Selector)

// PaperExtraction is the predicate function for paperextraction builders.
type PaperExtraction func(*sql.Selector)

// ResearchGap is the predicate function for researchgap builders.
type ResearchGap func(*sql.Selector)
