package draft

import "strings"

// paperStructures maps each paper type to its ordered section list.
var paperStructures = map[PaperType][]string{
	TypeStandard: {
		"abstract",
		"introduction",
		"literature_review",
		"methodology",
		"results",
		"discussion",
		"conclusion",
	},
	TypeReview: {
		"abstract",
		"introduction",
		"methods",
		"findings",
		"discussion",
		"conclusion",
	},
	TypeCaseStudy: {
		"abstract",
		"introduction",
		"background",
		"case_presentation",
		"discussion",
		"conclusion",
	},
	TypeProposal: {
		"abstract",
		"introduction",
		"literature_review",
		"proposed_methodology",
		"expected_results",
		"timeline",
		"conclusion",
	},
}

// PaperStructure returns the ordered section names for a paper type.
// Unknown types fall back to the standard structure.
func PaperStructure(t PaperType) []string {
	if structure, ok := paperStructures[t]; ok {
		return append([]string(nil), structure...)
	}
	return append([]string(nil), paperStructures[TypeStandard]...)
}

// SectionDisplayName converts a section key to its heading form
// ("literature_review" -> "Literature Review").
func SectionDisplayName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SectionGuideline describes how a section should be written; it feeds both
// the generation prompts and the fallback bullet prompts.
type SectionGuideline struct {
	WordCount  string
	Components []string
	Style      string
}

// sectionGuidelines holds writing guidance per section.
var sectionGuidelines = map[string]SectionGuideline{
	"abstract": {
		WordCount: "150-250",
		Components: []string{
			"Research problem/question",
			"Methodology overview",
			"Key findings or expected contributions",
			"Significance statement",
		},
		Style: "Concise, clear, and self-contained",
	},
	"introduction": {
		WordCount: "500-750",
		Components: []string{
			"Research context and background",
			"Problem statement",
			"Research gap identification",
			"Purpose/aims of the study",
			"Significance of the research",
			"Paper structure overview",
		},
		Style: "Engaging, logical flow, establishes importance",
	},
	"literature_review": {
		WordCount: "1000-2000",
		Components: []string{
			"Theoretical framework",
			"Previous research synthesis",
			"Thematic organization",
			"Critical analysis of existing work",
			"Identification of patterns, trends, and gaps",
		},
		Style: "Analytical, not just descriptive; shows relationships between studies",
	},
	"methodology": {
		WordCount: "750-1500",
		Components: []string{
			"Research design justification",
			"Data collection methods",
			"Analysis techniques",
			"Limitations and considerations",
			"Ethical aspects (if applicable)",
		},
		Style: "Detailed, precise, replicable",
	},
	"results": {
		WordCount: "1000-1500",
		Components: []string{
			"Factual presentation of findings",
			"Statistical analysis (if applicable)",
			"Patterns and trends",
			"No interpretation (save for discussion)",
		},
		Style: "Objective, clear, organized logically",
	},
	"discussion": {
		WordCount: "1000-1500",
		Components: []string{
			"Interpretation of results",
			"Relationship to existing literature",
			"Implications of findings",
			"Limitations of the study",
			"Future research directions",
		},
		Style: "Analytical, connects back to literature, acknowledges constraints",
	},
	"conclusion": {
		WordCount: "300-500",
		Components: []string{
			"Summary of key findings",
			"Contribution to the field",
			"Broader implications",
			"Final thought or call to action",
		},
		Style: "Concise, no new information, emphasizes significance",
	},
}

// SectionGuidelines returns the writing guidance for a section. Unknown
// sections get a generic academic guideline.
func SectionGuidelines(section string) SectionGuideline {
	if g, ok := sectionGuidelines[section]; ok {
		return g
	}
	return SectionGuideline{
		WordCount:  "Varies",
		Components: []string{"Context appropriate elements"},
		Style:      "Academic, formal",
	}
}

// CitationStyle describes one citation format.
type CitationStyle struct {
	InText       string
	Bibliography string
	LaTeXStyle   string
}

// citationStyles holds the supported citation formats.
var citationStyles = map[string]CitationStyle{
	"apa": {
		InText:       "(Author, Year)",
		Bibliography: "Author, A. (Year). Title. Journal, Volume(Issue), Pages.",
		LaTeXStyle:   `\bibliographystyle{apalike}`,
	},
	"mla": {
		InText:       "(Author Page)",
		Bibliography: "Author. Title. Journal, Volume, Issue, Year, Pages.",
		LaTeXStyle:   `\bibliographystyle{mla}`,
	},
	"chicago": {
		InText:       "(Author Year, Page)",
		Bibliography: "Author. Year. Title. Journal Volume, Issue: Pages.",
		LaTeXStyle:   `\bibliographystyle{chicago}`,
	},
	"ieee": {
		InText:       "[1]",
		Bibliography: `[1] A. Author, "Title," Journal, vol. x, no. x, pp. xxx-xxx, Month Year.`,
		LaTeXStyle:   `\bibliographystyle{IEEEtran}`,
	},
}

// GetCitationStyle returns the named citation style, defaulting to APA.
func GetCitationStyle(name string) CitationStyle {
	if s, ok := citationStyles[name]; ok {
		return s
	}
	return citationStyles["apa"]
}

// JournalFormat describes per-journal formatting constraints.
type JournalFormat struct {
	AbstractLength string
	WordLimit      string
	CitationStyle  string
	Structure      []string
	LaTeXClass     string
}

// journalFormats holds formatting guidelines for well-known venues.
var journalFormats = map[string]JournalFormat{
	"nature": {
		AbstractLength: "150-250 words",
		WordLimit:      "3000-5000 words",
		CitationStyle:  "nature",
		Structure:      []string{"abstract", "introduction", "results", "discussion", "methods"},
		LaTeXClass:     "nature",
	},
	"science": {
		AbstractLength: "125 words",
		WordLimit:      "4500 words",
		CitationStyle:  "science",
		Structure:      []string{"abstract", "introduction", "results", "discussion", "materials_and_methods"},
		LaTeXClass:     "science",
	},
	"plos": {
		AbstractLength: "250-300 words",
		WordLimit:      "No formal limit",
		CitationStyle:  "vancouver",
		Structure:      []string{"abstract", "introduction", "methods", "results", "discussion", "conclusion"},
		LaTeXClass:     "plos",
	},
	"ieee": {
		AbstractLength: "150-250 words",
		WordLimit:      "8000 words",
		CitationStyle:  "ieee",
		Structure:      []string{"abstract", "introduction", "related_work", "methodology", "results", "discussion", "conclusion"},
		LaTeXClass:     "IEEEtran",
	},
}

// GetJournalFormat returns the formatting guidelines for a journal, or a
// default academic format if the journal is not recognized.
func GetJournalFormat(journal string) JournalFormat {
	if f, ok := journalFormats[journal]; ok {
		return f
	}
	return JournalFormat{
		AbstractLength: "150-250 words",
		WordLimit:      "5000-8000 words",
		CitationStyle:  "apa",
		Structure:      paperStructures[TypeStandard],
		LaTeXClass:     "article",
	}
}
