package markup

import (
	"fmt"
	"strings"
)

// Document is the structured form of a parsed LaTeX source, an approximation
// sufficient for HTML preview. It is not a full LaTeX AST.
type Document struct {
	Title        string
	Author       string
	Abstract     string
	Sections     []Section
	Bibliography []string
}

// Section is one top-level \section block.
type Section struct {
	Title       string
	Content     string       // content before the first subsection
	Subsections []Subsection
}

// Subsection is one \subsection block inside a section.
type Subsection struct {
	Title   string
	Content string
}

// LaTeXToHTML parses a LaTeX document and renders an HTML preview.
// fallbackTitle is used when the source carries no \title command.
func LaTeXToHTML(src, fallbackTitle string) string {
	doc := ParseLaTeX(src)
	if doc.Title == "" {
		doc.Title = fallbackTitle
	}
	return doc.HTML()
}

// ParseLaTeX extracts title, author, abstract, sections with subsections, and
// bibliography entries from a LaTeX source. Malformed input degrades rather
// than fails: a brace argument with no closing brace extends to the end of
// the input, and missing blocks simply come back empty.
func ParseLaTeX(src string) Document {
	var doc Document

	doc.Title = commandArg(src, `\title`)
	doc.Author = commandArg(src, `\author`)
	doc.Abstract = strings.TrimSpace(envBody(src, "abstract"))

	body := src
	if end := strings.Index(body, `\end{document}`); end >= 0 {
		body = body[:end]
	}
	bibStart := strings.Index(body, `\begin{thebibliography}`)
	if bibStart >= 0 {
		doc.Bibliography = parseBibliography(src[bibStart:])
		body = body[:bibStart]
	}

	doc.Sections = parseSections(body)
	return doc
}

// parseSections splits the body into top-level sections. A section's content
// runs from the end of its title argument to the next \section or the end of
// the body; subsections are carved out of that span afterwards, so a section
// never swallows a sibling or its own subsections.
func parseSections(body string) []Section {
	var sections []Section

	idx := 0
	for {
		start := strings.Index(body[idx:], `\section{`)
		if start < 0 {
			break
		}
		start += idx

		title, afterTitle := braceArg(body, start+len(`\section`))

		end := len(body)
		if next := strings.Index(body[afterTitle:], `\section{`); next >= 0 {
			end = afterTitle + next
		}

		span := body[afterTitle:end]
		content, subs := splitSubsections(span)

		sections = append(sections, Section{
			Title:       title,
			Content:     strings.TrimSpace(content),
			Subsections: subs,
		})

		idx = end
	}

	return sections
}

// splitSubsections separates a section span into the content before the first
// \subsection and the ordered list of subsections after it.
func splitSubsections(span string) (string, []Subsection) {
	first := strings.Index(span, `\subsection{`)
	if first < 0 {
		return span, nil
	}

	content := span[:first]
	rest := span[first:]

	var subs []Subsection
	idx := 0
	for {
		start := strings.Index(rest[idx:], `\subsection{`)
		if start < 0 {
			break
		}
		start += idx

		title, afterTitle := braceArg(rest, start+len(`\subsection`))

		end := len(rest)
		if next := strings.Index(rest[afterTitle:], `\subsection{`); next >= 0 {
			end = afterTitle + next
		}

		subs = append(subs, Subsection{
			Title:   title,
			Content: strings.TrimSpace(rest[afterTitle:end]),
		})

		idx = end
	}

	return content, subs
}

// parseBibliography splits a thebibliography block into its \bibitem entries,
// stripping the citation keys and keeping the texts in order.
func parseBibliography(src string) []string {
	body := envBody(src, "thebibliography")
	if body == "" {
		return nil
	}

	// Drop the widest-label argument that follows \begin{thebibliography}.
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "{") {
		_, after := braceArg(body, 0)
		body = body[after:]
	}

	var entries []string
	parts := strings.Split(body, `\bibitem`)
	for _, part := range parts[1:] {
		// Strip the {key} label.
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "{") {
			_, after := braceArg(part, 0)
			part = part[after:]
		}
		part = strings.TrimSpace(part)
		if part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}

// HTML renders the parsed document as a preview fragment. Section headings
// are numbered 1-based; subsection headings are numbered <section>.<n>,
// resetting for each section.
func (d Document) HTML() string {
	var b strings.Builder

	if d.Title != "" {
		b.WriteString(`<h1 class="paper-title">` + renderInlineLaTeX(d.Title) + "</h1>\n")
	}
	if d.Author != "" {
		b.WriteString(`<p class="paper-author">` + renderInlineLaTeX(d.Author) + "</p>\n")
	}
	if d.Abstract != "" {
		b.WriteString("<h2>Abstract</h2>\n")
		writeParagraphs(&b, d.Abstract)
	}

	for i, sec := range d.Sections {
		num := i + 1
		b.WriteString(fmt.Sprintf("<h2>%d. %s</h2>\n", num, renderInlineLaTeX(sec.Title)))
		if sec.Content != "" {
			writeParagraphs(&b, sec.Content)
		}
		for j, sub := range sec.Subsections {
			b.WriteString(fmt.Sprintf("<h3>%d.%d %s</h3>\n", num, j+1, renderInlineLaTeX(sub.Title)))
			if sub.Content != "" {
				writeParagraphs(&b, sub.Content)
			}
		}
	}

	if len(d.Bibliography) > 0 {
		b.WriteString("<h2>References</h2>\n")
		for i, entry := range d.Bibliography {
			b.WriteString(fmt.Sprintf(`<p class="reference">[%d] %s</p>`+"\n", i+1, renderInlineLaTeX(entry)))
		}
	}

	return b.String()
}

// writeParagraphs renders a content span as paragraphs split on blank lines,
// with itemize environments converted to lists.
func writeParagraphs(b *strings.Builder, content string) {
	content = renderItemize(content)

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		// Already-converted list markup stands on its own.
		if strings.HasPrefix(para, "<ul>") {
			b.WriteString(para + "\n")
			continue
		}
		b.WriteString("<p>" + renderInlineLaTeX(para) + "</p>\n")
	}
}

// renderItemize converts itemize environments into <ul> lists.
func renderItemize(s string) string {
	for {
		start := strings.Index(s, `\begin{itemize}`)
		if start < 0 {
			return s
		}
		end := strings.Index(s[start:], `\end{itemize}`)
		if end < 0 {
			end = len(s) - start
		}

		inner := s[start+len(`\begin{itemize}`) : start+end]
		var list strings.Builder
		list.WriteString("<ul>")
		for _, item := range strings.Split(inner, `\item`)[1:] {
			item = strings.TrimSpace(item)
			if item != "" {
				list.WriteString("<li>" + item + "</li>")
			}
		}
		list.WriteString("</ul>")

		tail := start + end
		if tail < len(s) {
			tail += len(`\end{itemize}`)
			if tail > len(s) {
				tail = len(s)
			}
		}
		s = s[:start] + "\n\n" + list.String() + "\n\n" + s[tail:]
	}
}

// renderInlineLaTeX converts inline commands: \textbf, \textit, \emph, and
// $...$ math (kept literal inside a span, no typesetting).
func renderInlineLaTeX(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case strings.HasPrefix(s[i:], `\textbf`):
			arg, after := braceArg(s, i+len(`\textbf`))
			b.WriteString("<strong>" + renderInlineLaTeX(arg) + "</strong>")
			i = after
		case strings.HasPrefix(s[i:], `\textit`):
			arg, after := braceArg(s, i+len(`\textit`))
			b.WriteString("<em>" + renderInlineLaTeX(arg) + "</em>")
			i = after
		case strings.HasPrefix(s[i:], `\emph`):
			arg, after := braceArg(s, i+len(`\emph`))
			b.WriteString("<em>" + renderInlineLaTeX(arg) + "</em>")
			i = after
		case strings.HasPrefix(s[i:], `\cite`):
			arg, after := braceArg(s, i+len(`\cite`))
			b.WriteString("[" + arg + "]")
			i = after
		case strings.HasPrefix(s[i:], `\maketitle`):
			i += len(`\maketitle`)
		case s[i] == '$':
			if end := strings.IndexByte(s[i+1:], '$'); end >= 0 {
				b.WriteString(`<span class="math">$` + s[i+1:i+1+end] + `$</span>`)
				i += 1 + end + 1
				continue
			}
			b.WriteByte(s[i])
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// commandArg returns the brace argument of the first occurrence of the given
// command, or "" if the command is absent.
func commandArg(src, command string) string {
	idx := strings.Index(src, command+"{")
	if idx < 0 {
		return ""
	}
	arg, _ := braceArg(src, idx+len(command))
	return strings.TrimSpace(arg)
}

// envBody returns the content between \begin{name} and \end{name}, or "" if
// the environment is absent. A missing \end extends the body to the end of
// the input.
func envBody(src, name string) string {
	begin := `\begin{` + name + `}`
	start := strings.Index(src, begin)
	if start < 0 {
		return ""
	}
	start += len(begin)

	end := strings.Index(src[start:], `\end{`+name+`}`)
	if end < 0 {
		return src[start:]
	}
	return src[start : start+end]
}

// braceArg reads a {...} argument starting at src[start] using a depth
// counter, so nested braces stay inside the argument. If the argument never
// closes it extends to the end of the input; this is the deterministic
// recovery for unbalanced braces. Returns the argument content and the index
// just past the closing brace.
func braceArg(src string, start int) (string, int) {
	// Skip whitespace between the command and its argument.
	for start < len(src) && (src[start] == ' ' || src[start] == '\n' || src[start] == '\t') {
		start++
	}
	if start >= len(src) || src[start] != '{' {
		return "", start
	}

	depth := 0
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[start+1 : i], i + 1
			}
		}
	}
	return src[start+1:], len(src)
}
