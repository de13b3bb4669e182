package models

// PaperSearchResult is one hit from the academic search API.
type PaperSearchResult struct {
	Title           string   `json:"title"`
	Abstract        string   `json:"abstract,omitempty"`
	DOI             string   `json:"doi,omitempty"`
	URL             string   `json:"url,omitempty"`
	PDFURL          string   `json:"pdf_url,omitempty"`
	PublicationDate string   `json:"publication_date,omitempty"`
	Authors         []string `json:"authors,omitempty"`
	Venue           string   `json:"venue,omitempty"`
}

// ContentSection is one titled passage of extracted full text.
type ContentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ExtractedContent is the structured full text of a related paper,
// produced by the PDF extraction service (or synthesized from search
// metadata when no PDF is available).
type ExtractedContent struct {
	Title             string           `json:"title"`
	Abstract          string           `json:"abstract,omitempty"`
	Sections          []ContentSection `json:"sections,omitempty"`
	Methods           string           `json:"methods,omitempty"`
	Results           string           `json:"results,omitempty"`
	Conclusion        string           `json:"conclusion,omitempty"`
	ExtractionSuccess bool             `json:"extraction_success"`
	Error             string           `json:"error,omitempty"`
}

// PaperData is the stored metadata of the paper under analysis.
type PaperData struct {
	ID           string
	Title        string
	AbstractText string
	DOI          string
}

// PaperSection is a stored full-text section with its ordered paragraphs.
type PaperSection struct {
	Title      string
	Paragraphs []string
}

// ExtractedPaperContent is the stored full-text structure of the paper
// under analysis, assembled from the extraction tables. It feeds the
// initial gap generation context.
type ExtractedPaperContent struct {
	Sections       []PaperSection
	Conclusion     string
	FigureCaptions []string
	TableCaptions  []string
}
