package draft

// PaperType selects the section structure of a generated paper.
type PaperType string

const (
	TypeStandard  PaperType = "standard"
	TypeReview    PaperType = "review"
	TypeCaseStudy PaperType = "case_study"
	TypeProposal  PaperType = "proposal"
)

// LiteratureItem is the subset of a search result the drafting pipeline needs
// for citations and prompting.
type LiteratureItem struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Year    string `json:"year"`
	Venue   string `json:"venue"`
	Summary string `json:"summary,omitempty"`
}

// Metadata carries the document-level fields for LaTeX assembly.
type Metadata struct {
	Title        string `json:"title"`
	Authors      string `json:"authors"`
	Institution  string `json:"institution,omitempty"`
	Date         string `json:"date,omitempty"`
	TemplateType string `json:"template_type,omitempty"` // LaTeX documentclass
}

// Paper is a generated draft: an ordered section structure plus the body text
// for each section keyed by section name.
type Paper struct {
	Type     PaperType         `json:"paper_type"`
	Topic    string            `json:"topic"`
	Sections map[string]string `json:"sections"`
	Order    []string          `json:"order"`
}
