// Package markup converts the markdown outline dialect and generated LaTeX
// sources into HTML for on-screen preview. Both converters parse into a small
// intermediate structure before rendering instead of chaining regex
// replacements over the raw string.
//
// Neither converter escapes its input: generated content is trusted the same
// way the backend's own output is, and embedded HTML passes through as-is.
package markup

import "strings"

// blockKind identifies a parsed markdown block.
type blockKind int

const (
	blockHeading blockKind = iota
	blockList
	blockText
)

// mdBlock is one block-level element of the outline dialect.
type mdBlock struct {
	kind  blockKind
	level int      // heading level 1..3
	lines []string // list items, or raw text lines
}

// MarkdownToHTML converts the minimal markdown subset used for outlines
// (#/##/### headings, "- " bullets, **bold**, *italic*) into HTML.
// Contiguous bullet lines are wrapped in a single <ul>; remaining newlines
// become <br> tags.
func MarkdownToHTML(src string) string {
	blocks := parseMarkdownBlocks(src)

	var b strings.Builder
	for _, blk := range blocks {
		switch blk.kind {
		case blockHeading:
			tag := headingTag(blk.level)
			b.WriteString("<" + tag + ">")
			b.WriteString(renderInlineMarkdown(blk.lines[0]))
			b.WriteString("</" + tag + ">\n")
		case blockList:
			b.WriteString("<ul>\n")
			for _, item := range blk.lines {
				b.WriteString("<li>")
				b.WriteString(renderInlineMarkdown(item))
				b.WriteString("</li>\n")
			}
			b.WriteString("</ul>\n")
		case blockText:
			for i, line := range blk.lines {
				b.WriteString(renderInlineMarkdown(line))
				if i < len(blk.lines)-1 {
					b.WriteString("<br>\n")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func headingTag(level int) string {
	switch level {
	case 1:
		return "h1"
	case 2:
		return "h2"
	default:
		return "h3"
	}
}

// parseMarkdownBlocks tokenizes the source line by line into blocks.
// Contiguous "- " lines collapse into one list block; contiguous plain lines
// collapse into one text block.
func parseMarkdownBlocks(src string) []mdBlock {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	var blocks []mdBlock
	flushText := func(buf []string) []string {
		if len(buf) > 0 {
			blocks = append(blocks, mdBlock{kind: blockText, lines: buf})
		}
		return nil
	}

	var textBuf []string
	listOpen := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if level, rest, ok := headingLine(trimmed); ok {
			textBuf = flushText(textBuf)
			listOpen = false
			blocks = append(blocks, mdBlock{kind: blockHeading, level: level, lines: []string{rest}})
			continue
		}

		if item, ok := strings.CutPrefix(trimmed, "- "); ok {
			textBuf = flushText(textBuf)
			if listOpen {
				blocks[len(blocks)-1].lines = append(blocks[len(blocks)-1].lines, item)
			} else {
				blocks = append(blocks, mdBlock{kind: blockList, lines: []string{item}})
				listOpen = true
			}
			continue
		}

		listOpen = false
		if trimmed == "" {
			// Blank lines end the current text block but keep the break.
			if len(textBuf) > 0 {
				textBuf = append(textBuf, "")
			}
			continue
		}

		textBuf = append(textBuf, trimmed)
	}
	flushText(textBuf)

	return blocks
}

// headingLine reports whether the line is a #/##/### heading and returns its
// level and text. Four or more hashes are treated as plain text.
func headingLine(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 3 || n >= len(line) || line[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n+1:]), true
}

// renderInlineMarkdown converts **bold** and *italic* spans. A single
// left-to-right scan keeps unbalanced markers literal.
func renderInlineMarkdown(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "**") {
			if end := strings.Index(s[i+2:], "**"); end >= 0 {
				b.WriteString("<strong>")
				b.WriteString(renderInlineMarkdown(s[i+2 : i+2+end]))
				b.WriteString("</strong>")
				i += 2 + end + 2
				continue
			}
		}
		if s[i] == '*' {
			if end := strings.IndexByte(s[i+1:], '*'); end >= 0 {
				b.WriteString("<em>")
				b.WriteString(s[i+1 : i+1+end])
				b.WriteString("</em>")
				i += 1 + end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
