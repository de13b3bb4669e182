package llm

import (
	"fmt"

	"github.com/scholarai/gapfinder/pkg/models"
)

func initialGapsPrompt(paperContext string) string {
	return fmt.Sprintf(`Analyze the following academic paper and identify research gaps:

%s

Identify 3-7 significant research gaps in this paper. For each gap, provide:
1. A concise name (max 100 characters)
2. A detailed description of the gap
3. Category (theoretical, methodological, empirical, application, or interdisciplinary)
4. Reasoning why this is a gap
5. Evidence from the paper supporting this gap

Format your response as a JSON array with objects containing:
{
    "name": "gap name",
    "description": "detailed description",
    "category": "category",
    "reasoning": "why this is a gap",
    "evidence": "evidence from paper"
}

Focus on:
- Limitations explicitly mentioned by authors
- Future work suggestions
- Unexplored methodologies or approaches
- Missing comparative analyses
- Scalability or generalization issues
- Theoretical gaps or assumptions
- Interdisciplinary opportunities

Respond ONLY with valid JSON array.`, paperContext)
}

func searchQueryPrompt(gap models.InitialGap) string {
	return fmt.Sprintf(`Generate a simple search query for arXiv to find papers related to this research gap:

Gap Name: %s
Description: %s
Category: %s

Create a simple search query that:
1. Uses only 2-4 key terms (no boolean operators)
2. Focuses on the main topic/domain
3. Uses common academic terminology
4. Is suitable for arXiv's simple search

Examples of good queries:
- "machine learning protein structure"
- "neural networks computer vision"
- "quantum computing algorithms"
- "natural language processing"

Return ONLY the search terms separated by spaces, nothing else.`,
		gap.Name, gap.Description, gap.Category)
}

func validateGapPrompt(gap models.InitialGap, papersContext string) string {
	return fmt.Sprintf(`Validate if the following research gap is still valid based on recent papers:

RESEARCH GAP:
Name: %s
Description: %s
Category: %s
Reasoning: %s

RELATED PAPERS ANALYZED:
%s

Analyze whether this gap:
1. Has been fully addressed by any of these papers
2. Has been partially addressed
3. Remains completely unaddressed
4. Should be modified based on new findings

Provide your analysis as JSON:
{
    "is_valid": true/false,
    "confidence": 0.0-1.0,
    "reasoning": "detailed reasoning",
    "should_modify": true/false,
    "modification_suggestion": "suggestion if modification needed or null",
    "supporting_papers": [
        {"title": "paper title", "reason": "why it supports the gap"}
    ],
    "conflicting_papers": [
        {"title": "paper title", "reason": "why it conflicts with the gap"}
    ]
}

Be critical and thorough. A gap is only invalid if it has been comprehensively addressed.
Respond ONLY with valid JSON.`,
		gap.Name, gap.Description, gap.Category, gap.Reasoning, papersContext)
}

func expandGapPrompt(gap models.InitialGap, validation models.ValidationResult) string {
	return fmt.Sprintf(`Provide comprehensive details about this validated research gap:

GAP INFORMATION:
Name: %s
Description: %s
Category: %s
Validation Confidence: %.2f

Generate detailed information in JSON format:
{
    "potential_impact": "Explain the potential scientific and practical impact",
    "research_hints": "Provide specific hints and directions for researchers",
    "implementation_suggestions": "Suggest concrete steps to address this gap",
    "risks_and_challenges": "Identify potential risks and challenges",
    "required_resources": "List required resources (expertise, equipment, data, etc.)",
    "estimated_difficulty": "low/medium/high with justification",
    "estimated_timeline": "Realistic timeline estimate with milestones",
    "suggested_topics": [
        {
            "title": "Research topic title",
            "description": "Topic description",
            "research_questions": ["question1", "question2"],
            "methodology_suggestions": "Suggested methodologies",
            "expected_outcomes": "Expected outcomes",
            "relevance_score": 0.0-1.0
        }
    ]
}

Provide at least 3-5 suggested research topics.
Be specific, practical, and actionable.
Respond ONLY with valid JSON.`,
		gap.Name, gap.Description, gap.Category, validation.Confidence)
}
