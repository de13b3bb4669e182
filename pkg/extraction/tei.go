package extraction

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/scholarai/gapfinder/pkg/models"
)

type teiDocument struct {
	Title    string   `xml:"teiHeader>fileDesc>titleStmt>title"`
	Abstract flatText `xml:"teiHeader>profileDesc>abstract"`
	Divs     []teiDiv `xml:"text>body>div"`
}

type teiDiv struct {
	Head       string     `xml:"head"`
	Paragraphs []flatText `xml:"p"`
	Divs       []teiDiv   `xml:"div"`
}

// flatText accumulates every piece of character data beneath an
// element. Plain string decoding would drop the text of nested markup
// (reference markers, formulas), which belongs in the section content.
type flatText string

func (t *flatText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			sb.Write(v)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	*t = flatText(sb.String())
	return nil
}

// parseTEI converts a TEI XML document from the extractor into
// structured content. Body divisions become sections; the methods,
// results and conclusion fields are derived from section titles, the
// last matching section winning.
func parseTEI(body []byte) models.ExtractedContent {
	var doc teiDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return failedExtraction(fmt.Sprintf("XML parsing error: %v", err))
	}

	content := models.ExtractedContent{
		Title:             strings.TrimSpace(doc.Title),
		Abstract:          strings.TrimSpace(string(doc.Abstract)),
		ExtractionSuccess: true,
	}

	for _, div := range flattenDivs(doc.Divs) {
		section, ok := extractSection(div)
		if !ok {
			continue
		}
		content.Sections = append(content.Sections, section)

		title := strings.ToLower(section.Title)
		switch {
		case strings.Contains(title, "method") || strings.Contains(title, "approach"):
			content.Methods = section.Content
		case strings.Contains(title, "result") || strings.Contains(title, "experiment"):
			content.Results = section.Content
		case strings.Contains(title, "conclusion") || strings.Contains(title, "discussion"):
			content.Conclusion = section.Content
		}
	}
	return content
}

// flattenDivs lists divisions in document order, parents before their
// nested children.
func flattenDivs(divs []teiDiv) []teiDiv {
	var flat []teiDiv
	for _, div := range divs {
		flat = append(flat, div)
		flat = append(flat, flattenDivs(div.Divs)...)
	}
	return flat
}

// extractSection renders one body division. Divisions without any
// paragraph text carry no content and are dropped.
func extractSection(div teiDiv) (models.ContentSection, bool) {
	var paragraphs []string
	for _, p := range div.Paragraphs {
		if text := strings.TrimSpace(string(p)); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	if len(paragraphs) == 0 {
		return models.ContentSection{}, false
	}
	return models.ContentSection{
		Title:   strings.TrimSpace(div.Head),
		Content: strings.Join(paragraphs, " "),
	}, true
}
