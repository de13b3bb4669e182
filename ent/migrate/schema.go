// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractedFiguresColumns holds the columns for the "extracted_figures" table.
	ExtractedFiguresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "page", Type: field.TypeInt, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "paper_extraction_id", Type: field.TypeUUID},
	}
	// ExtractedFiguresTable holds the schema information for the "extracted_figures" table.
	ExtractedFiguresTable = &schema.Table{
		Name:       "extracted_figures",
		Columns:    ExtractedFiguresColumns,
		PrimaryKey: []*schema.Column{ExtractedFiguresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_figures_paper_extractions_figures",
				Columns:    []*schema.Column{ExtractedFiguresColumns[5]},
				RefColumns: []*schema.Column{PaperExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ExtractedParagraphsColumns holds the columns for the "extracted_paragraphs" table.
	ExtractedParagraphsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "page", Type: field.TypeInt, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "section_id", Type: field.TypeUUID},
	}
	// ExtractedParagraphsTable holds the schema information for the "extracted_paragraphs" table.
	ExtractedParagraphsTable = &schema.Table{
		Name:       "extracted_paragraphs",
		Columns:    ExtractedParagraphsColumns,
		PrimaryKey: []*schema.Column{ExtractedParagraphsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_paragraphs_extracted_sections_paragraphs",
				Columns:    []*schema.Column{ExtractedParagraphsColumns[4]},
				RefColumns: []*schema.Column{ExtractedSectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedparagraph_section_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ExtractedParagraphsColumns[4], ExtractedParagraphsColumns[3]},
			},
		},
	}
	// ExtractedSectionsColumns holds the columns for the "extracted_sections" table.
	ExtractedSectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "section_type", Type: field.TypeString, Nullable: true},
		{Name: "level", Type: field.TypeInt, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "paper_extraction_id", Type: field.TypeUUID},
	}
	// ExtractedSectionsTable holds the schema information for the "extracted_sections" table.
	ExtractedSectionsTable = &schema.Table{
		Name:       "extracted_sections",
		Columns:    ExtractedSectionsColumns,
		PrimaryKey: []*schema.Column{ExtractedSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_sections_paper_extractions_sections",
				Columns:    []*schema.Column{ExtractedSectionsColumns[5]},
				RefColumns: []*schema.Column{PaperExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedsection_paper_extraction_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ExtractedSectionsColumns[5], ExtractedSectionsColumns[4]},
			},
		},
	}
	// ExtractedTablesColumns holds the columns for the "extracted_tables" table.
	ExtractedTablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "caption", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "page", Type: field.TypeInt, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "paper_extraction_id", Type: field.TypeUUID},
	}
	// ExtractedTablesTable holds the schema information for the "extracted_tables" table.
	ExtractedTablesTable = &schema.Table{
		Name:       "extracted_tables",
		Columns:    ExtractedTablesColumns,
		PrimaryKey: []*schema.Column{ExtractedTablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_tables_paper_extractions_tables",
				Columns:    []*schema.Column{ExtractedTablesColumns[5]},
				RefColumns: []*schema.Column{PaperExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// GapAnalysesColumns holds the columns for the "gap_analyses" table.
	GapAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "paper_id", Type: field.TypeUUID},
		{Name: "paper_extraction_id", Type: field.TypeUUID},
		{Name: "correlation_id", Type: field.TypeString, Unique: true},
		{Name: "request_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "PROCESSING", "COMPLETED", "FAILED"}, Default: "PENDING"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "total_gaps_identified", Type: field.TypeInt, Default: 0},
		{Name: "valid_gaps_count", Type: field.TypeInt, Default: 0},
		{Name: "invalid_gaps_count", Type: field.TypeInt, Default: 0},
		{Name: "modified_gaps_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GapAnalysesTable holds the schema information for the "gap_analyses" table.
	GapAnalysesTable = &schema.Table{
		Name:       "gap_analyses",
		Columns:    GapAnalysesColumns,
		PrimaryKey: []*schema.Column{GapAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gapanalysis_status",
				Unique:  false,
				Columns: []*schema.Column{GapAnalysesColumns[5]},
			},
			{
				Name:    "gapanalysis_paper_id",
				Unique:  false,
				Columns: []*schema.Column{GapAnalysesColumns[1]},
			},
			{
				Name:    "gapanalysis_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{GapAnalysesColumns[5], GapAnalysesColumns[14]},
			},
		},
	}
	// GapTopicsColumns holds the columns for the "gap_topics" table.
	GapTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "research_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "methodology_suggestions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expected_outcomes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 0},
		{Name: "research_gap_id", Type: field.TypeUUID},
	}
	// GapTopicsTable holds the schema information for the "gap_topics" table.
	GapTopicsTable = &schema.Table{
		Name:       "gap_topics",
		Columns:    GapTopicsColumns,
		PrimaryKey: []*schema.Column{GapTopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gap_topics_research_gaps_topics",
				Columns:    []*schema.Column{GapTopicsColumns[7]},
				RefColumns: []*schema.Column{ResearchGapsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// GapValidationPapersColumns holds the columns for the "gap_validation_papers" table.
	GapValidationPapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "doi", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "publication_date", Type: field.TypeTime, Nullable: true},
		{Name: "extraction_status", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "relevance_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "supports_gap", Type: field.TypeBool, Default: false},
		{Name: "conflicts_with_gap", Type: field.TypeBool, Default: false},
		{Name: "key_findings", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "research_gap_id", Type: field.TypeUUID},
	}
	// GapValidationPapersTable holds the schema information for the "gap_validation_papers" table.
	GapValidationPapersTable = &schema.Table{
		Name:       "gap_validation_papers",
		Columns:    GapValidationPapersColumns,
		PrimaryKey: []*schema.Column{GapValidationPapersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "gap_validation_papers_research_gaps_validation_papers",
				Columns:    []*schema.Column{GapValidationPapersColumns[12]},
				RefColumns: []*schema.Column{ResearchGapsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// PapersColumns holds the columns for the "papers" table.
	PapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 2147483647},
		{Name: "abstract_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "publication_date", Type: field.TypeTime, Nullable: true},
		{Name: "doi", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "pdf_content_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pdf_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_open_access", Type: field.TypeBool, Default: false},
	}
	// PapersTable holds the schema information for the "papers" table.
	PapersTable = &schema.Table{
		Name:       "papers",
		Columns:    PapersColumns,
		PrimaryKey: []*schema.Column{PapersColumns[0]},
	}
	// PaperExtractionsColumns holds the columns for the "paper_extractions" table.
	PaperExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "paper_id", Type: field.TypeUUID},
		{Name: "extraction_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "abstract_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "extraction_coverage", Type: field.TypeFloat64, Nullable: true},
	}
	// PaperExtractionsTable holds the schema information for the "paper_extractions" table.
	PaperExtractionsTable = &schema.Table{
		Name:       "paper_extractions",
		Columns:    PaperExtractionsColumns,
		PrimaryKey: []*schema.Column{PaperExtractionsColumns[0]},
	}
	// ResearchGapsColumns holds the columns for the "research_gaps" table.
	ResearchGapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "gap_id", Type: field.TypeString, Unique: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "name", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"INITIAL", "VALIDATING", "VALID", "INVALID", "MODIFIED"}, Default: "INITIAL"},
		{Name: "validation_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "initial_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "initial_evidence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validation_query", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "papers_analyzed_count", Type: field.TypeInt, Default: 0},
		{Name: "validation_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "modification_history", Type: field.TypeJSON, Nullable: true},
		{Name: "potential_impact", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "research_hints", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "implementation_suggestions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risks_and_challenges", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "required_resources", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "estimated_difficulty", Type: field.TypeString, Nullable: true},
		{Name: "estimated_timeline", Type: field.TypeString, Nullable: true},
		{Name: "evidence_anchors", Type: field.TypeJSON, Nullable: true},
		{Name: "supporting_papers", Type: field.TypeJSON, Nullable: true},
		{Name: "conflicting_papers", Type: field.TypeJSON, Nullable: true},
		{Name: "suggested_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "gap_analysis_id", Type: field.TypeUUID},
	}
	// ResearchGapsTable holds the schema information for the "research_gaps" table.
	ResearchGapsTable = &schema.Table{
		Name:       "research_gaps",
		Columns:    ResearchGapsColumns,
		PrimaryKey: []*schema.Column{ResearchGapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_gaps_gap_analyses_gaps",
				Columns:    []*schema.Column{ResearchGapsColumns[27]},
				RefColumns: []*schema.Column{GapAnalysesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchgap_validation_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchGapsColumns[6]},
			},
			{
				Name:    "researchgap_gap_analysis_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{ResearchGapsColumns[27], ResearchGapsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractedFiguresTable,
		ExtractedParagraphsTable,
		ExtractedSectionsTable,
		ExtractedTablesTable,
		GapAnalysesTable,
		GapTopicsTable,
		GapValidationPapersTable,
		PapersTable,
		PaperExtractionsTable,
		ResearchGapsTable,
	}
)

func init() {
	ExtractedFiguresTable.ForeignKeys[0].RefTable = PaperExtractionsTable
	ExtractedParagraphsTable.ForeignKeys[0].RefTable = ExtractedSectionsTable
	ExtractedSectionsTable.ForeignKeys[0].RefTable = PaperExtractionsTable
	ExtractedTablesTable.ForeignKeys[0].RefTable = PaperExtractionsTable
	GapAnalysesTable.Annotation = &entsql.Annotation{
		Table: "gap_analyses",
	}
	GapTopicsTable.ForeignKeys[0].RefTable = ResearchGapsTable
	GapValidationPapersTable.ForeignKeys[0].RefTable = ResearchGapsTable
	ResearchGapsTable.ForeignKeys[0].RefTable = GapAnalysesTable
}
