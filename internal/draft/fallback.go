package draft

import (
	"fmt"
	"strings"
)

// titleTemplates are the deterministic title suggestions used when no
// provider is reachable. Each interpolates the topic.
var titleTemplates = []string{
	"A Systematic Review of %s: Current Trends and Future Directions",
	"%s: An Empirical Investigation",
	"Towards a Deeper Understanding of %s",
	"Rethinking %s: Challenges and Opportunities",
	"The Role of %s in Contemporary Research",
}

// FallbackTitles returns the five template-based title suggestions for a topic.
func FallbackTitles(topic string) []string {
	titles := make([]string, 0, len(titleTemplates))
	for _, tmpl := range titleTemplates {
		titles = append(titles, fmt.Sprintf(tmpl, topic))
	}
	return titles
}

// FallbackOutline builds a markdown outline for the topic using the fixed
// section structure of the paper type, each section pre-filled with generic
// bullet prompts.
func FallbackOutline(topic string, paperType PaperType) string {
	var b strings.Builder
	b.WriteString("# " + topic + "\n\n")

	for _, section := range PaperStructure(paperType) {
		b.WriteString("## " + SectionDisplayName(section) + "\n")
		for _, component := range SectionGuidelines(section).Components {
			b.WriteString("- " + component + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FallbackPaper builds a complete paper with a short generic paragraph per
// section referencing the topic.
func FallbackPaper(topic string, paperType PaperType) *Paper {
	order := PaperStructure(paperType)
	sections := make(map[string]string, len(order))
	for _, section := range order {
		sections[section] = fallbackSectionText(topic, section)
	}
	return &Paper{
		Type:     paperType,
		Topic:    topic,
		Sections: sections,
		Order:    order,
	}
}

// fallbackSectionText produces the placeholder body for one section.
func fallbackSectionText(topic, section string) string {
	display := strings.ToLower(SectionDisplayName(section))
	guideline := SectionGuidelines(section)
	return fmt.Sprintf(
		"This %s addresses the research topic of %s. %s It should cover: %s. "+
			"Replace this placeholder with generated or hand-written content.",
		display, topic,
		fmt.Sprintf("A complete %s typically runs %s words.", display, guideline.WordCount),
		strings.Join(guideline.Components, "; "),
	)
}

// FallbackLaTeX returns a complete static LaTeX document for the topic with a
// placeholder bibliography. title may be empty, in which case the topic
// doubles as the title.
func FallbackLaTeX(topic, title, author string) string {
	if title == "" {
		title = topic
	}
	if author == "" {
		author = "Author"
	}

	return fmt.Sprintf(`\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage{hyperref}
\usepackage{graphicx}
\usepackage{amsmath}

\title{%s}
\author{%s}
\date{\today}

\begin{document}

\maketitle

\begin{abstract}
This paper examines %s. The abstract summarizes the research problem,
methodology, and significance of the study.
\end{abstract}

\section{Introduction}
The study of %s has attracted growing attention. This section establishes
the research context and outlines the contribution of the paper.

\section{Methods}
This section describes the research design, data collection procedures, and
analysis techniques used to investigate %s.

\section{Discussion}
This section interprets the findings in relation to existing literature and
identifies limitations and directions for future work.

\section{Conclusion}
This section summarizes the key findings and their significance for research
on %s.

\begin{thebibliography}{9}
\bibitem{placeholder1} Author, A. (2024). A foundational study. Journal of Research, 1(1), 1-10.
\bibitem{placeholder2} Author, B. (2023). A related investigation. Research Letters, 2(3), 11-20.
\end{thebibliography}

\end{document}
`, escapeLaTeX(title), escapeLaTeX(author), escapeLaTeX(topic), escapeLaTeX(topic), escapeLaTeX(topic), escapeLaTeX(topic))
}
