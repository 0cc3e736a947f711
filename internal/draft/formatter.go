package draft

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Formatter assembles generated paper content into a LaTeX document with
// citation handling and BibTeX output.
type Formatter struct {
	class        string
	bibStyle     string
	citations    map[string]LiteratureItem
	citationKeys []string // insertion order
}

// NewFormatter creates a Formatter for the given template type. A known
// journal name (nature, science, plos, ieee) selects that journal's
// documentclass and citation style; any other non-empty value is used as the
// documentclass directly, and the default is "article".
func NewFormatter(templateType string) *Formatter {
	f := &Formatter{
		class:     "article",
		bibStyle:  `\bibliographystyle{plainnat}`,
		citations: make(map[string]LiteratureItem),
	}
	if templateType == "" {
		return f
	}

	if journal, ok := journalFormats[templateType]; ok {
		f.class = journal.LaTeXClass
		f.bibStyle = GetCitationStyle(journal.CitationStyle).LaTeXStyle
		return f
	}
	f.class = templateType
	return f
}

// latexEscapes maps special characters to their LaTeX escape sequences.
var latexEscapes = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\^{}`,
	'\\': `\textbackslash{}`,
}

// escapeLaTeX escapes LaTeX special characters in a single pass, so escape
// sequences never get re-escaped.
func escapeLaTeX(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// citationPattern matches author-year style citations such as (Smith, 2020)
// and (Smith et al., 2020).
var citationPattern = regexp.MustCompile(`\(([A-Za-z]+)( et al\.)?[,\s]+(\d{4})\)`)

// RegisterLiterature adds literature items to the citation table, deriving a
// key from the first author's last name and the year.
func (f *Formatter) RegisterLiterature(literature []LiteratureItem) {
	for _, item := range literature {
		if item.Authors == "" || item.Year == "" {
			continue
		}
		first := strings.TrimSpace(strings.Split(item.Authors, ",")[0])
		parts := strings.Fields(first)
		if len(parts) == 0 {
			continue
		}
		key := parts[len(parts)-1] + item.Year
		if _, exists := f.citations[key]; !exists {
			f.citationKeys = append(f.citationKeys, key)
		}
		f.citations[key] = item
	}
}

// ProcessCitations replaces recognized author-year citations in the text with
// \cite commands against the registered citation table. Unrecognized
// citations stay as written.
func (f *Formatter) ProcessCitations(text string) string {
	return citationPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := citationPattern.FindStringSubmatch(match)
		author, year := groups[1], groups[3]

		for key := range f.citations {
			if strings.Contains(strings.ToLower(key), strings.ToLower(author)) && strings.Contains(key, year) {
				return fmt.Sprintf(`\cite{%s}`, key)
			}
		}
		return match
	})
}

// FormatSection renders one section in LaTeX. The abstract becomes an
// abstract environment; every other section gets a \section heading.
func (f *Formatter) FormatSection(section, content string) string {
	content = escapeLaTeX(content)
	if len(f.citations) > 0 {
		content = f.ProcessCitations(content)
	}

	if section == "abstract" {
		return fmt.Sprintf("\\begin{abstract}\n%s\n\\end{abstract}", content)
	}
	return fmt.Sprintf("\\section{%s}\n%s", SectionDisplayName(section), content)
}

// CompleteDocument assembles all paper sections into a full LaTeX document.
func (f *Formatter) CompleteDocument(paper *Paper, meta Metadata, literature []LiteratureItem) string {
	f.RegisterLiterature(literature)

	title := meta.Title
	if title == "" {
		title = "Research Paper"
	}
	authors := meta.Authors
	if authors == "" {
		authors = "Author"
	}
	if meta.Institution != "" {
		authors += ` \\ ` + escapeLaTeX(meta.Institution)
	}
	date := meta.Date
	if date == "" {
		date = `\today`
	}

	var b strings.Builder
	fmt.Fprintf(&b, `\documentclass{%s}
\usepackage[utf8]{inputenc}
\usepackage{hyperref}
\usepackage{graphicx}
\usepackage{amsmath}
\usepackage{natbib}

\title{%s}
\author{%s}
\date{%s}

\begin{document}

\maketitle

`, f.class, escapeLaTeX(title), authors, date)

	for _, section := range paper.Order {
		content, ok := paper.Sections[section]
		if !ok {
			continue
		}
		b.WriteString(f.FormatSection(section, content))
		b.WriteString("\n\n")
	}

	b.WriteString(f.bibStyle + `
\bibliography{references}

\end{document}
`)

	return b.String()
}

// Bibliography generates BibTeX entries for all registered citations, in
// registration order.
func (f *Formatter) Bibliography() string {
	keys := append([]string(nil), f.citationKeys...)
	if len(keys) == 0 {
		for key := range f.citations {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	var entries []string
	for _, key := range keys {
		item := f.citations[key]
		if item.Title == "" {
			continue
		}
		journal := item.Venue
		if journal == "" {
			journal = "Journal"
		}
		entries = append(entries, fmt.Sprintf(`@article{%s,
  author = {%s},
  title = {%s},
  year = {%s},
  journal = {%s},
}`, key, item.Authors, item.Title, item.Year, journal))
	}

	return strings.Join(entries, "\n")
}
